package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"wingman-service/internal/domain/entity"
	domainRepo "wingman-service/internal/domain/repository"
	"wingman-service/internal/infrastructure/config"
	"wingman-service/internal/infrastructure/oauth"
	"wingman-service/internal/infrastructure/persistence"
	"wingman-service/internal/interface/mailer"
	"wingman-service/internal/interface/repository"
	"wingman-service/internal/usecase"
	"wingman-service/pkg/flighttime"
	"wingman-service/pkg/logger"
	"wingman-service/pkg/metrics"
	"wingman-service/templates"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	// Create logger
	log := logger.NewLogger(cfg.LogLevel)
	log.Info("Starting Wingman Logbook Service", "version", cfg.AppVersion)

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up MongoDB connection (flight record store)
	log.Info("Connecting to MongoDB")
	mongoClient, db, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoUser, cfg.MongoPassword)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}

	// Set up PostgreSQL connection (aircraft directory)
	gormDB, err := gorm.Open(postgres.Open(cfg.PostgresURI), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}

	// Set up repositories
	flightRepo := repository.NewMongoFlightRepository(db)
	aircraftRepo := repository.NewGormAircraftRepository(gormDB)

	// Set up metrics
	appMetrics := metrics.NewMetrics("wingman")

	// Set up the summary mailer when Gmail credentials are configured
	var summaryMailer domainRepo.MailerRepository
	if cfg.GmailClientID != "" && cfg.GmailRefreshToken != "" {
		gmailOAuth := oauth.NewGmailOAuth(
			cfg.GmailClientID,
			cfg.GmailClientSecret,
			cfg.GmailRefreshToken,
			log,
		)
		tokenSource := gmailOAuth.GetTokenSource(ctx)

		summaryMailer, err = mailer.NewGmailMailer(ctx, tokenSource, cfg.GmailSender, log)
		if err != nil {
			log.Fatal("Failed to create Gmail mailer", "error", err)
		}
	} else {
		log.Warn("Gmail credentials not configured; logbook exports will not be mailed")
	}

	// Set up the engines and orchestrators
	validator := usecase.NewFlightValidator(cfg.Policy)
	decomposer := usecase.NewTimeDecomposer(cfg.Policy)
	aggregator := usecase.NewFlightAggregator()
	renderer := usecase.NewLogbookRenderer()

	recorder := usecase.NewFlightRecorder(flightRepo, aircraftRepo, decomposer, validator, aggregator, appMetrics, log)
	exporter := usecase.NewExportOrchestrator(flightRepo, aircraftRepo, renderer, aggregator, summaryMailer, appMetrics, log)

	// Set up HTTP server for metrics, stats and exports
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})
	mux.HandleFunc("/api/stats", func(w http.ResponseWriter, r *http.Request) {
		pilotID := r.URL.Query().Get("pilot")
		if pilotID == "" {
			http.Error(w, "pilot query parameter is required", http.StatusBadRequest)
			return
		}

		totals, err := recorder.CareerTotals(r.Context(), pilotID)
		if err != nil {
			log.Error("Failed to compute career totals", "pilotID", pilotID, "error", err)
			http.Error(w, "failed to compute stats", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(statsResponse{
			Flights:           totals.Flights,
			Landings:          totals.Landings,
			TotalTime:         flighttime.FormatMinutes(totals.TotalTime),
			TotalHours:        flighttime.FormatHours(totals.TotalTime),
			NightHours:        flighttime.FormatHours(totals.NightTime),
			InstrumentHours:   flighttime.FormatHours(totals.InstrumentTime),
			CrossCountryHours: flighttime.FormatHours(totals.CrossCountryTime),
			DualHours:         flighttime.FormatHours(totals.DualTime),
			SoloHours:         flighttime.FormatHours(totals.SoloTime),
			PICHours:          flighttime.FormatHours(totals.PICTime),
		})
	})
	mux.HandleFunc("/api/export", func(w http.ResponseWriter, r *http.Request) {
		req, err := exportRequestFromQuery(r, cfg.Policy.PageCapacity)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		result, err := exporter.ExportLogbook(r.Context(), req)
		switch {
		case err == nil:
		case err == entity.ErrEmptyExport, err == entity.ErrPageCapacity:
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		default:
			log.Error("Export failed", "pilotID", req.PilotID, "error", err)
			http.Error(w, "export failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("X-Document-ID", result.DocumentID)
		w.Write([]byte(result.Document))
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel() // Cancel the context to stop all goroutines

	// Disconnect from MongoDB
	if err := mongoClient.Disconnect(context.Background()); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("Wingman Logbook Service stopped")
}

// exportRequestFromQuery builds an export request from URL parameters.
func exportRequestFromQuery(r *http.Request, defaultCapacity int) (usecase.ExportRequest, error) {
	q := r.URL.Query()

	req := usecase.ExportRequest{
		PilotID:      q.Get("pilot"),
		PageCapacity: defaultCapacity,
		EmailTo:      q.Get("email"),
		Pilot: templates.PilotHeader{
			Name:          q.Get("name"),
			LicenseType:   q.Get("license_type"),
			LicenseNumber: q.Get("license_number"),
		},
	}
	if req.PilotID == "" {
		return req, errNoPilot
	}

	if v := q.Get("capacity"); v != "" {
		capacity, err := strconv.Atoi(v)
		if err != nil {
			return req, errBadCapacity
		}
		req.PageCapacity = capacity
	}
	if v := q.Get("aircraft"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return req, errBadAircraft
		}
		req.AircraftID = uint(id)
	}
	if v := q.Get("from"); v != "" {
		from, err := time.Parse("2006-01-02", v)
		if err != nil {
			return req, errBadDate
		}
		req.DateRange.From = from
	}
	if v := q.Get("to"); v != "" {
		to, err := time.Parse("2006-01-02", v)
		if err != nil {
			return req, errBadDate
		}
		req.DateRange.To = to
	}

	return req, nil
}

var (
	errNoPilot     = paramError("pilot query parameter is required")
	errBadCapacity = paramError("capacity must be an integer")
	errBadAircraft = paramError("aircraft must be a numeric id")
	errBadDate     = paramError("dates must use YYYY-MM-DD")
)

type paramError string

func (e paramError) Error() string { return string(e) }

// statsResponse mirrors the chart feed: counts stay integers, durations are
// reported as decimal hours.
type statsResponse struct {
	Flights           int    `json:"flights"`
	Landings          int    `json:"landings"`
	TotalTime         string `json:"totalTime"`
	TotalHours        string `json:"totalHours"`
	NightHours        string `json:"nightHours"`
	InstrumentHours   string `json:"instrumentHours"`
	CrossCountryHours string `json:"crossCountryHours"`
	DualHours         string `json:"dualHours"`
	SoloHours         string `json:"soloHours"`
	PICHours          string `json:"picHours"`
}
