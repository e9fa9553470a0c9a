// Package main is the entry point for the library catalog API server.
// It wires together configuration, logging, the database pool and the HTTP router.
package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/aoideee/library-catalog/internal/config"
	"github.com/aoideee/library-catalog/internal/data"
	"github.com/aoideee/library-catalog/internal/logging"

	_ "github.com/lib/pq" // Register the PostgreSQL driver with database/sql.
)

// appVersion is the current version of the API, shown in logs and the healthcheck.
const appVersion = "1.0.0"

// applicationDependencies bundles every shared resource that HTTP handlers need.
// A pointer to this struct is passed as the receiver on all handler and route methods.
type applicationDependencies struct {
	config config.Config // Server configuration
	logger *slog.Logger  // Console logger that also appends errors to the error log
	models data.Models   // Database model layer for all tables
}

func main() {
	settings, err := config.Load(configPath(os.Args[1:]))
	if err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}

	// Command-line flags override every other source.
	flag.String("config", "", "Path to a YAML config file")
	flag.IntVar(&settings.Port, "port", settings.Port, "Server port")
	flag.StringVar(&settings.Environment, "env", settings.Environment, "Environment(development|staging|production)")
	flag.StringVar(&settings.ErrorLog, "error-log", settings.ErrorLog, "Append-only error log file (empty disables it)")
	flag.StringVar(&settings.DB.Host, "db-host", settings.DB.Host, "PostgreSQL host")
	flag.IntVar(&settings.DB.Port, "db-port", settings.DB.Port, "PostgreSQL port")
	flag.StringVar(&settings.DB.User, "db-user", settings.DB.User, "PostgreSQL user")
	flag.StringVar(&settings.DB.Name, "db-name", settings.DB.Name, "PostgreSQL database name")
	flag.IntVar(&settings.DB.MaxOpenConns, "db-max-open-conns", settings.DB.MaxOpenConns, "PostgreSQL max open connections")
	flag.IntVar(&settings.DB.MaxIdleConns, "db-max-idle-conns", settings.DB.MaxIdleConns, "PostgreSQL max idle connections")
	flag.DurationVar(&settings.DB.MaxIdleTime, "db-max-idle-time", settings.DB.MaxIdleTime, "PostgreSQL max connection idle time")
	flag.BoolVar(&settings.Limiter.Enabled, "limiter-enabled", settings.Limiter.Enabled, "Enable rate limiter")
	flag.Float64Var(&settings.Limiter.RPS, "limiter-rps", settings.Limiter.RPS, "Rate limiter maximum requests per second")
	flag.IntVar(&settings.Limiter.Burst, "limiter-burst", settings.Limiter.Burst, "Rate limiter maximum burst")

	flag.Parse()

	logger, logFile, err := logging.New(os.Stdout, settings.ErrorLog, slog.LevelInfo)
	if err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
	defer logFile.Close()

	db, err := openDB(settings.DB)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
	defer db.Close()

	logger.Info("database connection pool established")

	app := &applicationDependencies{
		config: settings,
		logger: logger,
		models: data.NewModels(db, logger),
	}

	if err := app.serve(); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

// configPath returns the value of the -config flag in args. It is read
// ahead of flag.Parse because the file supplies the other flags' defaults.
func configPath(args []string) string {
	for i, a := range args {
		name := strings.TrimLeft(a, "-")
		if name == a {
			continue
		}
		if name == "config" && i+1 < len(args) {
			return args[i+1]
		}
		if v, ok := strings.CutPrefix(name, "config="); ok {
			return v
		}
	}
	return ""
}

// openDB opens a bounded PostgreSQL connection pool and pings the database
// with a 5-second timeout to confirm it is reachable.
func openDB(cfg config.DBConfig) (*sql.DB, error) {
	// sql.Open only validates the DSN format; it does not actually connect yet.
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxIdleTime(cfg.MaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "ping database")
	}
	return db, nil
}
