package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pantrykit/apiserver/internal/services"
	"github.com/pantrykit/apiserver/internal/store"
	"github.com/pantrykit/apiserver/types"
)

// IngredientHandler provides HTTP handlers for the shared ingredient catalog.
type IngredientHandler struct {
	inventoryService *services.InventoryService
}

func NewIngredientHandler(inventoryService *services.InventoryService) *IngredientHandler {
	return &IngredientHandler{inventoryService: inventoryService}
}

// IngredientRouter registers catalog routes on the given router.
func IngredientRouter(r chi.Router, inventoryService *services.InventoryService) {
	handler := NewIngredientHandler(inventoryService)

	r.Post("/", handler.AddIngredient)
	r.Get("/{name}/unit", handler.GetMeasurementUnit)
}

// IngredientCreatedResponse carries the generated catalog id.
type IngredientCreatedResponse struct {
	IngredientID int64 `json:"ingredient_id"`
}

// MeasurementUnitResponse carries a catalog unit lookup result.
type MeasurementUnitResponse struct {
	Name     string                `json:"name"`
	UnitType types.MeasurementUnit `json:"unit_type"`
}

func (h *IngredientHandler) AddIngredient(w http.ResponseWriter, r *http.Request) {
	var req types.IngredientInsertion
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	id, err := h.inventoryService.AddIngredientToCatalog(r.Context(), req)
	if err != nil {
		if errors.Is(err, store.ErrIngredientAlreadyInCatalog) {
			writeError(w, http.StatusConflict, "ingredient already exists")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to add ingredient")
		return
	}

	writeJSON(w, http.StatusCreated, IngredientCreatedResponse{IngredientID: id})
}

func (h *IngredientHandler) GetMeasurementUnit(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	unit, err := h.inventoryService.MeasurementUnit(r.Context(), name)
	if err != nil {
		if errors.Is(err, store.ErrIngredientNotFound) {
			writeError(w, http.StatusNotFound, "ingredient not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to fetch measurement unit")
		return
	}

	writeJSON(w, http.StatusOK, MeasurementUnitResponse{Name: name, UnitType: unit})
}
