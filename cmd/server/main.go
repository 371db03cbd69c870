package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	sheetapp "github.com/pricesheet/backend/internal/application/sheet"
	"github.com/pricesheet/backend/internal/domain/sheet"
	"github.com/pricesheet/backend/internal/infrastructure/assets"
	"github.com/pricesheet/backend/internal/infrastructure/config"
	"github.com/pricesheet/backend/internal/infrastructure/logger"
	"github.com/pricesheet/backend/internal/infrastructure/output"
	"github.com/pricesheet/backend/internal/infrastructure/printing"
	"github.com/pricesheet/backend/internal/infrastructure/render"
	"github.com/pricesheet/backend/internal/infrastructure/spreadsheet"
	"github.com/pricesheet/backend/internal/interfaces/http/handler"
	"github.com/pricesheet/backend/internal/interfaces/http/middleware"
	"github.com/pricesheet/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync(log) }()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	log.Info("starting server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	layout := sheet.DefaultLayout().WithColumns(cfg.Render.Columns)

	cardRenderer, err := render.NewCardRenderer(layout, log)
	if err != nil {
		log.Fatal("failed to create card renderer", zap.Error(err))
	}

	store, err := output.NewStore(cfg.Output.Dir, log)
	if err != nil {
		log.Fatal("failed to create artifact store", zap.Error(err))
	}

	exporter, err := printing.NewChromedpRenderer(&printing.ChromedpConfig{
		DefaultTimeout: cfg.Chrome.Timeout,
		RemoteURL:      cfg.Chrome.RemoteURL,
		NoSandbox:      cfg.Chrome.NoSandbox,
		Logger:         log,
	})
	if err != nil {
		log.Fatal("failed to create PDF renderer", zap.Error(err))
	}
	defer func() { _ = exporter.Close() }()

	service := sheetapp.NewService(
		spreadsheet.NewLoader(log),
		assets.NewResolver(cfg.Assets.ImageDir, log),
		cardRenderer,
		render.NewGridCompositor(layout),
		exporter,
		store,
		log,
	)

	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
		middleware.BodyLimit(cfg.HTTP.MaxBodySize),
	)

	r := router.New(engine)
	r.Register(
		handler.NewSheetHandler(service, log),
		handler.NewSystemHandler(cfg.App.Name, cfg.App.Env),
	)
	r.Mount(
		router.StaticMount{URLPath: "/" + output.PNGFile, Target: store.PNGPath()},
		router.StaticMount{URLPath: "/" + output.PDFFile, Target: store.PDFPath()},
		router.StaticMount{URLPath: "/images", Target: cfg.Assets.ImageDir, Dir: true},
	)

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}

	log.Info("server stopped")
}
