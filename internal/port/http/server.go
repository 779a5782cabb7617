package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/DaliGabriel/yo-compro/internal/app/config"
	custommw "github.com/DaliGabriel/yo-compro/internal/port/http/middleware"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Server struct {
	httpServer *http.Server
}

func NewServer(cfg config.HTTPServerConfig, handler *Handler, zapLogger *zap.Logger) *Server {
	r := chi.NewRouter()
	r.Use(custommw.Logger(zapLogger))

	r.Get("/health", handler.HandleHealth)

	r.Post("/api/buyer-requests", handler.HandleCreateBuyerRequest)
	r.Post("/api/listings", handler.HandleCreateListing)
	r.Post("/api/notify", handler.HandleNotify)
	r.Get("/api/listings", handler.HandleListRecent)
	r.Get("/api/listings/{id}", handler.HandleGetListing)
	r.Post("/api/photos", handler.HandleUploadPhoto)

	return &Server{
		httpServer: &http.Server{
			Addr:         ":" + cfg.Port,
			Handler:      r,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
	}
}

func (s *Server) Start() error {
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
