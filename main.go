package main

import (
	"log"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"advice-engine/internal/config"
	"advice-engine/internal/handler"
	"advice-engine/internal/logger"
	"advice-engine/internal/ratelimit"
	"advice-engine/internal/recorder"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	zlog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zlog.Sync()

	var rec recorder.Recorder = recorder.NewNoopRecorder()
	if cfg.Recorder.Path != "" {
		sqlRec, err := recorder.NewSQLiteRecorder(cfg.Recorder.Path, zlog)
		if err != nil {
			zlog.Fatal("failed to open recorder", zap.Error(err))
		}
		rec = sqlRec
	}
	defer rec.Close()

	redisClient := ratelimit.NewClient(cfg.Redis)
	if redisClient != nil {
		defer redisClient.Close()
	}
	limiter := ratelimit.New(cfg.RateLimit, redisClient, zlog)

	h := handler.New(cfg, zlog, rec, limiter)

	server := &fasthttp.Server{
		Handler:      h.Router(),
		Name:         cfg.App.Name,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Millisecond,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Millisecond,
	}

	zlog.Info("advice engine starting",
		zap.String("addr", cfg.Server.Addr()),
		zap.String("environment", cfg.App.Environment),
	)
	if err := server.ListenAndServe(cfg.Server.Addr()); err != nil {
		zlog.Fatal("server failed", zap.Error(err))
	}
}
