/*
main.go - HTTP server entry point

PURPOSE:
  Initializes and starts the payroll engine server. Handles
  configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Load .env (if present) and parse command-line flags
  2. Initialize the record store (memory or sqlite)
  3. Build ledger, roster, and API handler
  4. Configure HTTP router and optional pay run scheduler
  5. Start server with graceful shutdown

COMMAND-LINE FLAGS (env-var defaults in parentheses):
  -addr          Listen address (PAYROLL_ADDR, default :8080)
  -store         Record store: memory or sqlite (PAYROLL_STORE)
  -sqlite-dsn    SQLite DSN (PAYROLL_SQLITE_DSN, default ":memory:";
                 records are ephemeral either way by default)
  -auto-run      Enable the monthly pay run scheduler (PAYROLL_AUTO_RUN)
  -run-interval  Scheduler check interval (default 1h)
  -seed          Seed the sample roster

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop the scheduler
  2. Stop accepting new connections
  3. Wait for active requests to complete (30s timeout)
  4. Close the store

SEE ALSO:
  - api/server.go: Router configuration
  - api/scheduler.go: Automated pay runs
  - store/sqlite/sqlite.go: SQLite store
*/
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/warp/payroll-engine/api"
	"github.com/warp/payroll-engine/employee"
	"github.com/warp/payroll-engine/metrics"
	"github.com/warp/payroll-engine/payroll"
	memstore "github.com/warp/payroll-engine/payroll/store"
	"github.com/warp/payroll-engine/store/sqlite"
)

func main() {
	// .env is optional; flags below fall back to env vars.
	_ = godotenv.Load()

	addr := flag.String("addr", getEnv("PAYROLL_ADDR", ":8080"), "listen address")
	storeKind := flag.String("store", getEnv("PAYROLL_STORE", "memory"), "record store: memory or sqlite")
	sqliteDSN := flag.String("sqlite-dsn", getEnv("PAYROLL_SQLITE_DSN", sqlite.DefaultDSN), "SQLite DSN")
	autoRun := flag.Bool("auto-run", getEnvBool("PAYROLL_AUTO_RUN", false), "enable the monthly pay run scheduler")
	runInterval := flag.Duration("run-interval", 1*time.Hour, "scheduler check interval")
	seed := flag.Bool("seed", false, "seed the sample roster")
	flag.Parse()

	// Store
	var recordStore payroll.Store
	switch *storeKind {
	case "memory":
		recordStore = memstore.NewMemory()
	case "sqlite":
		s, err := sqlite.New(*sqliteDSN)
		if err != nil {
			log.Fatalf("Failed to initialize sqlite store: %v", err)
		}
		defer s.Close()
		recordStore = s
	default:
		log.Fatalf("Unknown store kind: %q (want memory or sqlite)", *storeKind)
	}

	// Engine wiring
	ledger := payroll.NewLedger(recordStore)
	roster := payroll.NewRoster()
	if *seed {
		seeded, err := employee.SampleRoster()
		if err != nil {
			log.Fatalf("Failed to build sample roster: %v", err)
		}
		roster = seeded
		log.Printf("Seeded sample roster with %d employees", roster.Size())
	}
	metrics.SetRosterSize(roster.Size())

	handler := api.NewHandler(roster, ledger)
	router := api.NewRouter(handler)

	// Scheduler
	scheduler := api.NewPayRunScheduler(handler.Runner)
	scheduler.Enabled = *autoRun
	scheduler.CheckInterval = *runInterval
	scheduler.Start()
	defer scheduler.Stop()

	// Server
	server := &http.Server{
		Addr:         *addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Payroll engine listening on %s (store: %s)", *addr, *storeKind)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
