// Package handler exposes the expense service over HTTP as JSON.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mmynk/nomikai/internal/models"
	"github.com/mmynk/nomikai/internal/service"
)

const healthTimeout = 2 * time.Second

// Pinger reports whether the storage backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler routes HTTP requests to an ExpenseService.
type Handler struct {
	svc     *service.ExpenseService
	health  Pinger
	metrics http.Handler
}

// New creates a Handler. health and metrics may be nil, in which case
// /healthz and /metrics are not registered.
func New(svc *service.ExpenseService, health Pinger, metrics http.Handler) *Handler {
	return &Handler{svc: svc, health: health, metrics: metrics}
}

// Routes registers every endpoint on a new ServeMux.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /calculate", h.calculate)
	mux.HandleFunc("GET /history", h.listPayments)
	mux.HandleFunc("POST /history", h.saveEvent)
	mux.HandleFunc("POST /savenomikai", h.saveNomikai)
	mux.HandleFunc("GET /nomikai/search", h.searchNomikai)
	mux.HandleFunc("POST /updatepaymentflags", h.updatePaymentFlags)
	if h.health != nil {
		mux.HandleFunc("GET /healthz", h.healthz)
	}
	if h.metrics != nil {
		mux.Handle("GET /metrics", h.metrics)
	}
	return mux
}

type messageResponse struct {
	Message string `json:"message"`
}

func (h *Handler) calculate(w http.ResponseWriter, r *http.Request) {
	var req service.CalculateRequest
	if !decode(w, r, &req) {
		return
	}

	result, err := h.svc.Calculate(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) listPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.svc.ListPayments(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if payments == nil {
		payments = []models.Payment{}
	}
	writeJSON(w, http.StatusOK, payments)
}

func (h *Handler) saveEvent(w http.ResponseWriter, r *http.Request) {
	var req service.SaveEventRequest
	if !decode(w, r, &req) {
		return
	}

	if err := h.svc.SaveEvent(r.Context(), req); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Data has been saved successfully."})
}

func (h *Handler) saveNomikai(w http.ResponseWriter, r *http.Request) {
	var req service.SaveNomikaiRequest
	if !decode(w, r, &req) {
		return
	}

	rows, err := h.svc.SaveNomikai(r.Context(), req)
	if err != nil {
		// Storage failures on this route are reported as 400 with their text.
		if errors.Is(err, service.ErrBackend) {
			writeJSON(w, http.StatusBadRequest, messageResponse{Message: err.Error()})
			return
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Nomikai event saved for all %d participants.", len(rows)),
	})
}

func (h *Handler) searchNomikai(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	results, err := h.svc.SearchNomikai(r.Context(), service.SearchRequest{
		EventName: q.Get("eventname"),
		EventDate: q.Get("eventdate"),
		Name:      q.Get("name"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	if results == nil {
		results = []models.Nomikai{}
	}
	writeJSON(w, http.StatusOK, results)
}

func (h *Handler) updatePaymentFlags(w http.ResponseWriter, r *http.Request) {
	var updates []models.PaymentFlagUpdate
	if !decode(w, r, &updates) {
		return
	}

	if err := h.svc.UpdatePaymentFlags(r.Context(), updates); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Payment flags updated."})
}

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := h.health.Ping(ctx); err != nil {
		slog.Warn("Health check failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decode reads the JSON body into v. On failure it writes a 400 and
// returns false.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		slog.Debug("Failed to decode request body", "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid request body: " + err.Error()})
		return false
	}
	return true
}

// writeError maps a service error to its HTTP status.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, service.ErrInvalidRequest) || errors.Is(err, service.ErrNotFound) {
		status = http.StatusBadRequest
	}

	msg := "internal server error"
	var svcErr *service.Error
	if errors.As(err, &svcErr) && status != http.StatusInternalServerError {
		msg = svcErr.Message
	}
	writeJSON(w, status, messageResponse{Message: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}
