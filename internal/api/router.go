package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/Dab1n-Lee/TDD-Study-hh/internal/api/httpx"
	"github.com/Dab1n-Lee/TDD-Study-hh/internal/metrics"
	"github.com/Dab1n-Lee/TDD-Study-hh/internal/middleware"
	"github.com/Dab1n-Lee/TDD-Study-hh/internal/services"
)

type amountRequest struct {
	Amount int64 `json:"amount"`
}

func NewRouter(ps *services.PointService) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.HTTPMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	r.Route("/point", func(r chi.Router) {
		r.Get("/{id}", func(w http.ResponseWriter, r *http.Request) {
			userID, ok := userIDParam(w, r)
			if !ok {
				return
			}
			b, err := ps.Balance(userID)
			if err != nil {
				httpx.WriteError(w, http.StatusInternalServerError, "internal_error", err.Error(), nil)
				return
			}
			httpx.WriteJSON(w, http.StatusOK, b)
		})

		r.Get("/{id}/histories", func(w http.ResponseWriter, r *http.Request) {
			userID, ok := userIDParam(w, r)
			if !ok {
				return
			}
			hs, err := ps.History(userID)
			if err != nil {
				httpx.WriteError(w, http.StatusInternalServerError, "internal_error", err.Error(), nil)
				return
			}
			httpx.WriteJSON(w, http.StatusOK, hs)
		})

		r.Patch("/{id}/charge", func(w http.ResponseWriter, r *http.Request) {
			userID, ok := userIDParam(w, r)
			if !ok {
				return
			}
			var req amountRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid body", nil)
				return
			}
			b, err := ps.Charge(userID, req.Amount)
			if err != nil {
				writeServiceError(w, err)
				return
			}
			httpx.WriteJSON(w, http.StatusOK, b)
		})

		r.Patch("/{id}/use", func(w http.ResponseWriter, r *http.Request) {
			userID, ok := userIDParam(w, r)
			if !ok {
				return
			}
			var req amountRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid body", nil)
				return
			}
			b, err := ps.Use(userID, req.Amount)
			if err != nil {
				writeServiceError(w, err)
				return
			}
			httpx.WriteJSON(w, http.StatusOK, b)
		})
	})

	return r
}

func userIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid user id", nil)
		return 0, false
	}
	return id, true
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidAmount):
		httpx.WriteError(w, http.StatusBadRequest, "invalid_amount", err.Error(), nil)
	case errors.Is(err, services.ErrInsufficientBalance):
		httpx.WriteError(w, http.StatusConflict, "insufficient_balance", err.Error(), nil)
	default:
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", err.Error(), nil)
	}
}
