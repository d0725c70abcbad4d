package delivery

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/Blackdeer1524/joaat/src"
)

const RequestIDHeader = "X-Request-ID"

type Server struct {
	Host string
	Port int

	handler *APIHandler
	log     src.Logger
	http    *http.Server
}

func NewServer(host string, port int, handler *APIHandler, log src.Logger) *Server {
	return &Server{
		Host:    host,
		Port:    port,
		handler: handler,
		log:     log,
	}
}

// Router returns the routes with request logging applied.
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.Use(s.requestID)
	s.handler.RegisterRoutes(router)

	return router
}

func (s *Server) Run() error {
	s.http = &http.Server{
		Addr: fmt.Sprintf(
			"%s:%d",
			s.Host,
			s.Port,
		),
		Handler:           s.Router(),
		ReadHeaderTimeout: time.Second * 10,
	}

	s.log.Infof(
		"Server is running on %s:%d",
		s.Host,
		s.Port,
	)

	if err := s.http.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("Server.Run http.ListenAndServe: %w", err)
	}

	return nil
}

func (s *Server) Close(ctx context.Context) error {
	if s.http == nil {
		return nil
	}

	if err := s.http.Shutdown(ctx); err != nil &&
		!errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("Server.Close http.Shutdown: %w", err)
	}

	s.log.Info("Server is closed")

	return nil
}

func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		started := time.Now()
		next.ServeHTTP(w, r)

		s.log.Infow("request served",
			"request_id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"elapsed", time.Since(started),
		)
	})
}
