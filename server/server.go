// Package server exposes the disambiguation pipeline as a JSON HTTP API.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/revelaction/lesk/config"
	sent "github.com/revelaction/lesk/sentence"
	"github.com/revelaction/lesk/storage"
	"github.com/revelaction/lesk/wsd"
)

// Pipeline disambiguates request sentences.
type Pipeline interface {
	Disambiguate(ctx context.Context, sentence, target string) ([]wsd.Result, error)
	Tokenize(sentence string) sent.Sentence
}

type Server struct {
	pipeline Pipeline
	kb       storage.SenseReader
	cfg      config.ServerConfig
	log      *zap.Logger
}

func New(p Pipeline, kb storage.SenseReader, cfg config.ServerConfig, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}

	return &Server{
		pipeline: p,
		kb:       kb,
		cfg:      cfg,
		log:      log,
	}
}

// Handler returns the routes wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/disambiguate", s.handleDisambiguate)
	mux.HandleFunc("/api/senses", s.handleSenses)
	mux.HandleFunc("/healthz", s.handleHealth)

	c := cors.New(cors.Options{
		AllowedOrigins: s.cfg.Origins(),
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
	})

	return Chain(
		RequestID,
		Logger(s.log),
		Recovery(s.log),
		c.Handler,
	)(mux)
}

// Serve accepts connections on l until ctx is done, then shuts down
// gracefully within the configured shutdown timeout.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	srv := &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  s.cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", l.Addr().String()))
		errCh <- srv.Serve(l)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	s.log.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// ListenAndServe listens on the configured address and calls Serve.
func (s *Server) ListenAndServe(ctx context.Context) error {
	l, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, l)
}
