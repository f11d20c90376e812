package main

import (
	auth "Stratum/internal/auth"
	bearing "Stratum/internal/calc/bearing"
	estimate "Stratum/internal/calc/estimate"
	autodesign "Stratum/internal/calc/premium/autodesign"
	batch "Stratum/internal/calc/premium/batch"
	importer "Stratum/internal/calc/premium/importer"
	recommend "Stratum/internal/calc/premium/recommend"
	report "Stratum/internal/calc/report"
	soil "Stratum/internal/calc/soil"
	spt "Stratum/internal/calc/spt"
	profile "Stratum/internal/profile"
	repo "Stratum/internal/repo"
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, db *sql.DB) {
	userRepo := repo.NewPostgresUserDB(db)
	if err := godotenv.Load(); err != nil {
		log.Fatal("Error loading .env file")
	}
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: userRepo}
	profileH := &profile.ProfileHandler{Repo: userRepo}

	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	secureApi.HandleFunc("/profile", profileH.GetProfile).Methods("GET")
	secureApi.HandleFunc("/profile", profileH.UpdateProfile).Methods("PATCH", "PUT")

	soilH := &soil.Handler{}
	sptH := &spt.Handler{}
	bearingH := &bearing.Handler{}
	estimateH := &estimate.Handler{}
	reportH := &report.Handler{}
	batchH := &batch.Handler{}
	importerH := &importer.Handler{}
	recommendH := &recommend.Handler{}
	autodesignH := &autodesign.Handler{}

	secureApi.HandleFunc("/tools/soil/uscs", soilH.USCS).Methods("POST")
	secureApi.HandleFunc("/tools/soil/aashto", soilH.AASHTO).Methods("POST")
	secureApi.HandleFunc("/tools/spt/calc", sptH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/bearing/calc", bearingH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/estimate/unit-weight", estimateH.UnitWeight).Methods("POST")
	secureApi.HandleFunc("/tools/estimate/compression-index", estimateH.CompressionIndex).Methods("POST")
	secureApi.HandleFunc("/tools/estimate/friction-angle", estimateH.FrictionAngle).Methods("POST")
	secureApi.HandleFunc("/tools/estimate/shear-strength", estimateH.ShearStrength).Methods("POST")
	secureApi.HandleFunc("/tools/estimate/elastic-modulus", estimateH.ElasticModulus).Methods("POST")
	secureApi.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")

	secureApi.HandleFunc("/tools-pro/classify/batch", batchH.Classify).Methods("POST")
	secureApi.HandleFunc("/tools-pro/classify/import", importerH.Samples).Methods("POST")
	secureApi.HandleFunc("/tools-pro/recommend/foundation-depth", recommendH.FoundationDepth).Methods("POST")
	secureApi.HandleFunc("/tools-pro/autodesign/footing", autodesignH.Footing).Methods("POST")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db := auth.InitDB()
	defer db.Close()
	mux := mux.NewRouter()

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	log.Println("Starting server on", addr)
	HandleList(mux, db)
	handler := CORS(mux)

	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
