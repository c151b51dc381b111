package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/damon-houk/exchange-rate-converter/internal/application/service"
	"github.com/damon-houk/exchange-rate-converter/internal/infrastructure/logger"
	"github.com/damon-houk/exchange-rate-converter/internal/infrastructure/middleware"
	"github.com/gorilla/mux"
)

// RateHandler handles HTTP requests for converted exchange rates
type RateHandler struct {
	service *service.RateService
	logger  logger.Logger
}

// NewRateHandler creates a new rate handler
func NewRateHandler(service *service.RateService, log logger.Logger) *RateHandler {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &RateHandler{
		service: service,
		logger:  log,
	}
}

// GetRate handles retrieving a rate by currency and date
func (h *RateHandler) GetRate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	vars := mux.Vars(r)
	currency := vars["currency"]
	date := vars["date"]

	h.logger.Info("Handling get rate request", map[string]interface{}{
		"request_id": requestID,
		"currency":   currency,
		"date":       date,
	})

	rate, err := h.service.GetRate(r.Context(), currency, date)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			h.logger.Warn("Rate not found", map[string]interface{}{
				"request_id": requestID,
				"currency":   currency,
				"date":       date,
			})
			sendErrorResponse(w, h.logger, "Rate not found",
				"No exchange rate is stored for the requested currency and date",
				http.StatusNotFound, requestID)
			return
		}

		h.logger.Error("Unexpected error in get rate", map[string]interface{}{
			"request_id": requestID,
			"currency":   currency,
			"date":       date,
			"error":      err.Error(),
		})
		sendErrorResponse(w, h.logger, "Internal server error",
			"An unexpected error occurred while retrieving the rate",
			http.StatusInternalServerError, requestID)
		return
	}

	resp := RateResponse{
		Date:     rate.Date,
		Currency: rate.Currency,
		Rate:     rate.Rate,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// Health reports service liveness
func (h *RateHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// RegisterRoutes registers the rate handler routes
func (h *RateHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/rates/{currency}/{date}", h.GetRate).Methods("GET")
	router.HandleFunc("/health", h.Health).Methods("GET")

	h.logger.Info("Rate routes registered", map[string]interface{}{
		"routes": []string{
			"GET /rates/{currency}/{date}",
			"GET /health",
		},
	})
}

// sendErrorResponse sends a standardized error response
func sendErrorResponse(w http.ResponseWriter, log logger.Logger, message, description string, statusCode int, requestID string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	resp := ErrorResponse{
		Error:       message,
		Status:      statusCode,
		Description: description,
		RequestID:   requestID,
	}

	log.Debug("Sending error response", map[string]interface{}{
		"request_id":  requestID,
		"status_code": statusCode,
		"message":     message,
	})

	json.NewEncoder(w).Encode(resp)
}
