package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/configs"
	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/middlewares"
	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/pkg/mailer"
	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/pkg/storage"
	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/routes"
	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/ws"

	"github.com/gin-gonic/gin"
)

func setupLogger(ginMode string) {
	var h slog.Handler
	if ginMode == gin.ReleaseMode {
		h = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		h = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	slog.SetDefault(slog.New(h))
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}

func main() {
	cfg := configs.LoadConfig()
	setupLogger(cfg.GinMode)
	gin.SetMode(cfg.GinMode)

	// DB
	db, err := configs.OpenDB(cfg.DBDriver, cfg.DBSource)
	if err != nil {
		fatal("open database failed", err)
	}

	// migrate + seed
	if err := configs.SetupDatabase(db); err != nil {
		fatal("migrate failed", err)
	}
	if err := configs.SeedSequences(db); err != nil {
		fatal("seed sequences failed", err)
	}
	if err := configs.SeedAdmin(db, cfg); err != nil {
		fatal("seed admin failed", err)
	}

	// Mail
	composer := mailer.NewComposer(configs.LoadSite(cfg.SiteConfig))
	var transport mailer.Transport = mailer.LogTransport{}
	if cfg.MailHost != "" {
		transport = mailer.NewSMTPTransport(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass)
	}
	dispatcher := mailer.NewDispatcher(transport, mailer.DispatcherOptions{
		Workers:   cfg.MailWorkers,
		QueueSize: cfg.MailQueue,
		Retries:   cfg.MailRetries,
		BaseDelay: time.Second,
	})
	dispatcher.Start()

	// Activity feed
	hubCtx, stopHub := context.WithCancel(context.Background())
	hub := ws.NewActivityHub()
	go hub.Run(hubCtx)

	images, err := storage.NewLocalImageStore(cfg.UploadDir, "/uploads")
	if err != nil {
		fatal("upload dir not usable", err)
	}

	// HTTP
	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLogger())
	r.MaxMultipartMemory = 16 << 20

	routes.RegisterRoutes(r, routes.Deps{
		DB:       db,
		Config:   cfg,
		Composer: composer,
		Notifier: dispatcher,
		Hub:      hub,
		Images:   images,
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port, "db", cfg.DBDriver)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fatal("server failed to listen and serve", err)
		}
	}()

	<-stop
	slog.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}
	stopHub()
	// mail queued by the last requests still goes out
	if err := dispatcher.Stop(ctx); err != nil {
		slog.Warn("mail queue not fully drained", "error", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	slog.Info("server exited")
}
