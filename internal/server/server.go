// Package server exposes the comparison engine over a JSON HTTP API.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/iwvelando/loan-compare/internal/config"
	"github.com/iwvelando/loan-compare/internal/engine"
	"github.com/iwvelando/loan-compare/internal/metrics"
	"github.com/iwvelando/loan-compare/pkg/constants"
	"github.com/iwvelando/loan-compare/pkg/validation"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type handler struct {
	logger          *zap.Logger
	engine          *engine.Engine
	maxRequestBytes int64
	version         string
}

type errorResponse struct {
	Error string `json:"error"`
}

type compareResponse struct {
	Result   engine.ComparisonResult `json:"result"`
	Warnings []string                `json:"warnings,omitempty"`
}

type maxPriceRequest struct {
	TargetPayment float64           `json:"targetPayment"`
	Inputs        config.LoanInputs `json:"inputs"`
}

type maxPriceResponse struct {
	MaxPrice       float64  `json:"maxPrice"`
	MonthlyPayment float64  `json:"monthlyPayment"`
	Warnings       []string `json:"warnings,omitempty"`
}

// NewHandler constructs the HTTP handler that serves the comparison API.
func NewHandler(logger *zap.Logger, eng *engine.Engine, maxRequestBytes int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxRequestBytes <= 0 {
		maxRequestBytes = constants.DefaultMaxRequestBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:          logger,
		engine:          eng,
		maxRequestBytes: maxRequestBytes,
		version:         trimmedVersion,
	}

	mux := http.NewServeMux()

	// Comparison API endpoint
	mux.HandleFunc("/api/compare", h.handleCompare)

	// Max-affordable-price solver endpoint
	mux.HandleFunc("/api/maxprice", h.handleMaxPrice)

	// Version endpoints for client metadata
	mux.HandleFunc("/api/version", h.handleVersion)
	mux.HandleFunc("/api/rates/version", h.handleRatesVersion)

	// Prometheus metrics
	mux.Handle("/metrics", promhttp.Handler())

	return mux
}

func (h *handler) handleCompare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	defer func() {
		metrics.RequestDuration.WithLabelValues("compare").Observe(time.Since(start).Seconds())
	}()

	inputs, ok := h.decodeInputs(w, r)
	if !ok {
		return
	}

	warnings := validation.ValidateInputs(inputs)
	config.ApplyStateDefaults(h.logger, &inputs, h.engine.Rates())

	result := h.engine.Compare(inputs)
	h.logger.Debug(fmt.Sprintf("computed comparison for %.0f home in %s", inputs.HomePrice, inputs.State),
		zap.String("op", "server.handleCompare"),
	)

	h.writeJSON(w, http.StatusOK, compareResponse{Result: result, Warnings: warnings})
}

func (h *handler) handleMaxPrice(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	defer func() {
		metrics.RequestDuration.WithLabelValues("maxprice").Observe(time.Since(start).Seconds())
	}()

	r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestBytes)

	var payload maxPriceRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.respondDecodeError(w, err, "server.handleMaxPrice")
		return
	}

	if payload.TargetPayment <= 0 {
		h.respondError(w, http.StatusBadRequest, "targetPayment must be positive")
		return
	}

	inputs := payload.Inputs
	warnings := validation.ValidateInputs(inputs)
	config.ApplyStateDefaults(h.logger, &inputs, h.engine.Rates())

	price := h.engine.MaxAffordablePrice(payload.TargetPayment, inputs)
	atPrice := h.engine.CalculateVA(inputs.WithHomePrice(price))

	h.writeJSON(w, http.StatusOK, maxPriceResponse{
		MaxPrice:       price,
		MonthlyPayment: atPrice.MonthlyPayment.Total,
		Warnings:       warnings,
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleRatesVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	meta := h.engine.Rates().Metadata()
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"dataYear":    meta.DataYear,
		"lastUpdated": meta.LastUpdated,
		"source":      meta.Source,
	})
}

// decodeInputs decodes a borrower profile from the request body, responding
// with an error and returning false when the payload is unusable.
func (h *handler) decodeInputs(w http.ResponseWriter, r *http.Request) (config.LoanInputs, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestBytes)

	var inputs config.LoanInputs
	if err := json.NewDecoder(r.Body).Decode(&inputs); err != nil {
		h.respondDecodeError(w, err, "server.handleCompare")
		return inputs, false
	}
	return inputs, true
}

func (h *handler) respondDecodeError(w http.ResponseWriter, err error, op string) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		h.respondError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("request exceeds limit of %d bytes", h.maxRequestBytes))
		return
	}

	h.logger.Debug("failed to decode request payload",
		zap.String("op", op),
		zap.Error(err),
	)
	h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err))
}

func (h *handler) respondError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, errorResponse{Error: message})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Warn("failed to encode response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}
