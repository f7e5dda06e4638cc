package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/extremtechniker/mailtxt/app"
	"github.com/extremtechniker/mailtxt/logger"
	"github.com/extremtechniker/mailtxt/model"
	"github.com/extremtechniker/mailtxt/store"
	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
)

// HistoryFetcher returns previously saved reports, newest first.
type HistoryFetcher interface {
	FetchReports(ctx context.Context, domain string, limit int) ([]model.Report, error)
}

type Server struct {
	Addr      string
	Resolver  app.Reporter
	Persister app.Persister
	History   HistoryFetcher // optional
	JwtSecret []byte
}

func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()

	// Middleware applied to all routes
	r.Use(s.jwtMiddleware)

	r.HandleFunc("/txt/{domain}", s.LookupTXT).Methods(http.MethodGet)
	r.HandleFunc("/txt/{domain}", s.SaveTXT).Methods(http.MethodPost)
	if s.History != nil {
		r.HandleFunc("/history/{domain}", s.ListHistory).Methods(http.MethodGet)
	}
	return r
}

// Run serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Logger.Infof("HTTP API listening on %s", s.Addr)
		errChan <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Logger.Infof("shutting down HTTP API")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// ---------------- JWT Middleware ----------------
func (s *Server) jwtMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := r.Header.Get("Authorization")
		if !strings.HasPrefix(tokenStr, "Bearer ") {
			http.Error(w, "missing bearer token", http.StatusUnauthorized)
			return
		}
		tokenStr = strings.TrimPrefix(tokenStr, "Bearer ")

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			return s.JwtSecret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err == nil && token.Valid {
			next.ServeHTTP(w, r)
			return
		}
		logger.Logger.Debugf("invalid token: %v", err)
		http.Error(w, "invalid token", http.StatusUnauthorized)
	})
}

// domainVar returns the trimmed {domain} path variable, answering 400 when
// it is blank.
func domainVar(w http.ResponseWriter, r *http.Request) (string, bool) {
	domain := strings.TrimSpace(mux.Vars(r)["domain"])
	if domain == "" {
		http.Error(w, "domain must not be empty", http.StatusBadRequest)
		return "", false
	}
	return domain, true
}

// lookup runs the three queries; it writes an error status and returns
// false when the domain is blank or nothing was found.
func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (model.Report, bool) {
	domain, ok := domainVar(w, r)
	if !ok {
		return model.Report{}, false
	}
	rep := s.Resolver.Report(r.Context(), domain)
	if !rep.Found() {
		http.Error(w, fmt.Sprintf("no TXT records found for %s", domain), http.StatusNotFound)
		return rep, false
	}
	return rep, true
}

func writeBlocks(w http.ResponseWriter, status int, reps ...model.Report) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	for _, rep := range reps {
		_, _ = io.WriteString(w, store.Format(rep))
	}
}

func (s *Server) LookupTXT(w http.ResponseWriter, r *http.Request) {
	rep, ok := s.lookup(w, r)
	if !ok {
		return
	}
	writeBlocks(w, http.StatusOK, rep)
}

func (s *Server) SaveTXT(w http.ResponseWriter, r *http.Request) {
	rep, ok := s.lookup(w, r)
	if !ok {
		return
	}
	if err := s.Persister.Persist(r.Context(), rep); err != nil {
		logger.Logger.Errorf("failed to save %s: %v", rep.Domain, err)
		http.Error(w, "failed to save records", http.StatusInternalServerError)
		return
	}
	writeBlocks(w, http.StatusCreated, rep)
}

func (s *Server) ListHistory(w http.ResponseWriter, r *http.Request) {
	domain, ok := domainVar(w, r)
	if !ok {
		return
	}
	reps, err := s.History.FetchReports(r.Context(), domain, 0)
	if err != nil {
		logger.Logger.Errorf("history fetch error: %v", err)
		http.Error(w, "failed to fetch history", http.StatusInternalServerError)
		return
	}
	if len(reps) == 0 {
		http.Error(w, "no history", http.StatusNotFound)
		return
	}
	writeBlocks(w, http.StatusOK, reps...)
}
