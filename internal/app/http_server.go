package app

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"timegrid/internal/clock"
	"timegrid/internal/domain"
)

// HTTPServer returns a configured http.Server exposing read-only views over
// the store. Call ListenAndServe on the returned server in a goroutine and
// Shutdown it on exit.
func (a *App) HTTPServer(addr string) *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// /api/day?date=YYYY-MM-DD (default: today)
	mux.HandleFunc("/api/day", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		date := r.URL.Query().Get("date")
		if date == "" {
			date = clock.FormatDate(time.Now())
		} else if _, err := clock.ParseDate(date); err != nil {
			writeError(w, err)
			return
		}
		blocks, err := a.DayView().Run(r.Context(), date)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, map[string]any{"date": date, "blocks": blocks})
	})

	// /api/summary?from=YYYY-MM-DD&to=YYYY-MM-DD (default: today)
	mux.HandleFunc("/api/summary", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		q := r.URL.Query()
		today := clock.FormatDate(time.Now())
		from, to := q.Get("from"), q.Get("to")
		if from == "" {
			from = today
		}
		if to == "" {
			to = today
		}
		summary, err := a.Summary().Run(r.Context(), from, to)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, summary)
	})

	srv := &http.Server{Addr: addr, Handler: loggingMiddleware(a.Log, mux)}
	a.Log.Info("http server configured", slog.String("addr", addr))
	return srv
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidInterval):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrServiceUnavailable):
		status = http.StatusBadGateway
	case errors.Is(err, domain.ErrAuthorization):
		status = http.StatusUnauthorized
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"status": "error", "error": err.Error()})
}

// loggingMiddleware provides basic request logging.
func loggingMiddleware(log *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Info("http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote", r.RemoteAddr),
			slog.Duration("dur", time.Since(start)),
		)
	})
}
