package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"cakeshop-api/internal/models"
	"cakeshop-api/internal/store"
)

type OrderHandler struct {
	orders store.OrderStore
	logger zerolog.Logger
}

func NewOrderHandler(orders store.OrderStore, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		orders: orders,
		logger: logger,
	}
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.List(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Error listing orders")
		respondWithError(w, http.StatusInternalServerError, "store_error", "Could not list orders")
		return
	}

	respondWithJSON(w, http.StatusOK, orders)
}

// Create is open to unauthenticated callers: this is the customer-facing
// checkout. The total is stored as supplied, without recomputing it from the
// items and delivery fee.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input models.OrderInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	if msg, ok := validateOrderInput(&input); !ok {
		respondWithError(w, http.StatusUnprocessableEntity, "validation_failed", msg)
		return
	}

	order, err := h.orders.Create(r.Context(), &input)
	if err != nil {
		h.logger.Error().Err(err).Msg("Error creating order")
		respondWithError(w, http.StatusInternalServerError, "store_error", "Could not create order")
		return
	}

	h.logger.Info().Str("order_id", order.ID).Float64("total", order.Total).Msg("Order received")
	respondWithJSON(w, http.StatusOK, order)
}

func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	status := r.URL.Query().Get("status")
	if status == "" {
		respondWithError(w, http.StatusUnprocessableEntity, "validation_failed", "A status value is required")
		return
	}

	err := h.orders.UpdateStatus(r.Context(), id, status)
	if errors.Is(err, store.ErrNotFound) {
		respondWithError(w, http.StatusNotFound, "order_not_found", "Order not found")
		return
	}
	if err != nil {
		h.logger.Error().Err(err).Str("order_id", id).Msg("Error updating order status")
		respondWithError(w, http.StatusInternalServerError, "store_error", "Could not update order status")
		return
	}

	h.logger.Info().Str("order_id", id).Str("status", status).Msg("Order status updated")
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	err := h.orders.Delete(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		respondWithError(w, http.StatusNotFound, "order_not_found", "Order not found")
		return
	}
	if err != nil {
		h.logger.Error().Err(err).Str("order_id", id).Msg("Error deleting order")
		respondWithError(w, http.StatusInternalServerError, "store_error", "Could not delete order")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func validateOrderInput(input *models.OrderInput) (string, bool) {
	if input.CustomerName == "" || input.CustomerPhone == "" || input.CustomerAddress == "" {
		return "Customer name, phone and address are required", false
	}
	if len(input.Items) == 0 {
		return "An order needs at least one item", false
	}
	if input.PaymentMethod == "" {
		return "A payment method is required", false
	}
	return "", true
}
