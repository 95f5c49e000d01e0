package main

import (
	"errors"
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/anudeepm/insight-service/internal/api"
	"github.com/anudeepm/insight-service/internal/config"
	"github.com/anudeepm/insight-service/internal/extract"
	"github.com/anudeepm/insight-service/internal/pool"
	"github.com/anudeepm/insight-service/internal/store"
	"github.com/anudeepm/insight-service/internal/summarize"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer logger.Sync()

	st, err := store.Open(cfg.DatabasePath)
	if err != nil {
		logger.Fatal("open store", zap.String("path", cfg.DatabasePath), zap.Error(err))
	}
	defer st.Close()

	workers := pool.New(cfg.SummarizerWorkers, logger)
	defer workers.Close()

	remote := summarize.NewRemote(cfg.SarvamAPIKey, cfg.SummarizerURL, cfg.SummarizerModel, logger)
	summarizer := summarize.NewSummarizer(remote, workers)
	extractor := extract.NewPDFExtractor(logger)

	handler := api.NewHandler(st, extractor, summarizer, cfg.MaxUploadMB, logger)
	router := api.NewRouter(handler, cfg.AllowedOrigins)

	logger.Info("insight service listening", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, router); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server error", zap.Error(err))
	}
}
