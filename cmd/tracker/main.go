package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"teenpatti_tracker/internal/app"
	"teenpatti_tracker/internal/config"
	"teenpatti_tracker/internal/pkg/auth"
	"teenpatti_tracker/internal/pkg/logger"
	"teenpatti_tracker/internal/pkg/metrics"
	"teenpatti_tracker/internal/pkg/upload"
	"teenpatti_tracker/internal/service"
	"teenpatti_tracker/internal/storage"
	"teenpatti_tracker/internal/storage/memory"
)

func main() {
	var l *logger.Logger
	var err error
	if l, err = logger.CreateLogger(config.LogLevel); err != nil {
		log.Fatal("Failed to create logger:", err)
	}

	db, err := openStorage(l)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	issuer, err := auth.NewIssuer(config.AdminPassword, config.TokenSecret)
	if err != nil {
		log.Fatal(err)
	}
	if !issuer.Enabled() {
		l.Warn("ADMIN_PASSWORD is not set, API writes are not protected")
	}

	uploads, err := upload.New(config.UploadDir, config.MaxUploadBytes)
	if err != nil {
		log.Fatal(err)
	}

	m := metrics.New()
	app := app.NewApp(db, l, m, issuer)
	service := service.NewService(app, config.ServerRunAddress, l, m, issuer, uploads, config.StaticDir)

	const readHeaderTimeout = 5 * time.Second
	server := &http.Server{Addr: config.ServerRunAddress, Handler: service.NewRouter(), ReadHeaderTimeout: readHeaderTimeout}

	serverCtx, serverStopCtx := context.WithCancel(context.Background())

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		<-sig

		const shutdownTimeout = 30 * time.Second
		shutdownCtx, cancel := context.WithTimeout(serverCtx, shutdownTimeout)
		defer cancel()

		go func() {
			<-shutdownCtx.Done()
			if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
				log.Fatal("graceful shutdown timed out.. forcing exit.")
			}
		}()

		err := server.Shutdown(shutdownCtx)
		if err != nil {
			log.Fatal(err)
		}
		serverStopCtx()
	}()

	l.Info("starting server",
		zap.String("address", config.ServerRunAddress),
		zap.String("storage", config.Storage),
		zap.Bool("auth", issuer.Enabled()))

	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		db.Close()
		log.Fatal(err)
	}

	<-serverCtx.Done()
}

// openStorage connects to the configured backend, applying migrations to PostgreSQL first when enabled.
func openStorage(l *logger.Logger) (storage.Storage, error) {
	if config.Storage == config.StorageMemory {
		l.Warn("using in-memory storage, data is lost on restart")
		return memory.New(), nil
	}

	if config.MigrateOnStart {
		if err := storage.Migrate(config.DatabaseURI); err != nil {
			return nil, err
		}
	}
	return storage.NewPostgreSQL(config.DatabaseURI, l)
}
