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

type ProductHandler struct {
	products store.ProductStore
	logger   zerolog.Logger
}

func NewProductHandler(products store.ProductStore, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		products: products,
		logger:   logger,
	}
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	products, err := h.products.List(r.Context(), category)
	if err != nil {
		h.logger.Error().Err(err).Msg("Error listing products")
		respondWithError(w, http.StatusInternalServerError, "store_error", "Could not list products")
		return
	}

	respondWithJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := h.products.GetByID(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		respondWithError(w, http.StatusNotFound, "product_not_found", "Product not found")
		return
	}
	if err != nil {
		h.logger.Error().Err(err).Str("product_id", id).Msg("Error fetching product")
		respondWithError(w, http.StatusInternalServerError, "store_error", "Could not fetch product")
		return
	}

	respondWithJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input models.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	if msg, ok := validateProductInput(&input); !ok {
		respondWithError(w, http.StatusUnprocessableEntity, "validation_failed", msg)
		return
	}

	product, err := h.products.Create(r.Context(), &input)
	if err != nil {
		h.logger.Error().Err(err).Msg("Error creating product")
		respondWithError(w, http.StatusInternalServerError, "store_error", "Could not create product")
		return
	}

	h.logger.Info().Str("product_id", product.ID).Str("name", product.Name).Msg("Product created")
	respondWithJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var input models.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	if msg, ok := validateProductInput(&input); !ok {
		respondWithError(w, http.StatusUnprocessableEntity, "validation_failed", msg)
		return
	}

	product, err := h.products.Replace(r.Context(), id, &input)
	if errors.Is(err, store.ErrNotFound) {
		respondWithError(w, http.StatusNotFound, "product_not_found", "Product not found")
		return
	}
	if err != nil {
		h.logger.Error().Err(err).Str("product_id", id).Msg("Error updating product")
		respondWithError(w, http.StatusInternalServerError, "store_error", "Could not update product")
		return
	}

	respondWithJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	err := h.products.Delete(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		respondWithError(w, http.StatusNotFound, "product_not_found", "Product not found")
		return
	}
	if err != nil {
		h.logger.Error().Err(err).Str("product_id", id).Msg("Error deleting product")
		respondWithError(w, http.StatusInternalServerError, "store_error", "Could not delete product")
		return
	}

	h.logger.Info().Str("product_id", id).Msg("Product deleted")
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Deleted"})
}

func validateProductInput(input *models.ProductInput) (string, bool) {
	if input.Name == "" {
		return "Product name is required", false
	}
	if input.Category == "" {
		return "Product category is required", false
	}
	if input.Price < 0 {
		return "Product price must not be negative", false
	}
	return "", true
}
