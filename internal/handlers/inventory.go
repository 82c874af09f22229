package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pantrykit/apiserver/internal/services"
	"github.com/pantrykit/apiserver/internal/store"
	"github.com/pantrykit/apiserver/types"
)

// InventoryHandler provides HTTP handlers for the caller's inventory. Every
// route requires the caller identity injected by RequireUser.
type InventoryHandler struct {
	inventoryService *services.InventoryService
}

func NewInventoryHandler(inventoryService *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// InventoryRouter registers inventory routes on the given router.
func InventoryRouter(r chi.Router, inventoryService *services.InventoryService) {
	handler := NewInventoryHandler(inventoryService)

	r.Use(RequireUser)
	r.Get("/", handler.ListInventory)
	r.Post("/", handler.AddToInventory)
	r.Route("/{name}", func(r chi.Router) {
		r.Get("/", handler.GetInfo)
		r.Get("/quantity", handler.GetQuantity)
		r.Patch("/", handler.UpdateItem)
		r.Delete("/", handler.DeleteItem)
	})
}

// InventoryListResponse wraps the caller's composed inventory rows.
type InventoryListResponse struct {
	Items []types.InventoryItem `json:"items"`
}

// QuantityResponse carries a quantity lookup result. Quantity is zero when
// the caller never added the ingredient.
type QuantityResponse struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
}

func (h *InventoryHandler) ListInventory(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing user id")
		return
	}

	items, err := h.inventoryService.List(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list inventory")
		return
	}

	writeJSON(w, http.StatusOK, InventoryListResponse{Items: items})
}

func (h *InventoryHandler) AddToInventory(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing user id")
		return
	}

	var req types.Ingredient
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	item, err := h.inventoryService.Add(r.Context(), userID, req)
	if err != nil {
		if errors.Is(err, store.ErrIngredientAlreadyInInventory) {
			writeError(w, http.StatusConflict, "ingredient already in inventory")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to add to inventory")
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

func (h *InventoryHandler) GetInfo(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing user id")
		return
	}
	name := chi.URLParam(r, "name")

	item, err := h.inventoryService.Info(r.Context(), name, userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch inventory item")
		return
	}
	if item == nil {
		writeError(w, http.StatusNotFound, "ingredient not in inventory")
		return
	}

	writeJSON(w, http.StatusOK, item)
}

func (h *InventoryHandler) GetQuantity(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing user id")
		return
	}
	name := chi.URLParam(r, "name")

	quantity, err := h.inventoryService.Quantity(r.Context(), name, userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch quantity")
		return
	}

	writeJSON(w, http.StatusOK, QuantityResponse{Name: name, Quantity: quantity})
}

func (h *InventoryHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing user id")
		return
	}
	name := chi.URLParam(r, "name")

	var patch types.InventoryPatch
	if err := decodeBody(r, &patch); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if patch.IsEmpty() {
		writeError(w, http.StatusBadRequest, "no fields to update")
		return
	}

	item, err := h.inventoryService.Update(r.Context(), name, userID, patch)
	if err != nil {
		if errors.Is(err, store.ErrInventoryUpdate) {
			writeError(w, http.StatusNotFound, "ingredient not in inventory")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update inventory item")
		return
	}

	writeJSON(w, http.StatusOK, item)
}

func (h *InventoryHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing user id")
		return
	}
	name := chi.URLParam(r, "name")

	deleted, err := h.inventoryService.Delete(r.Context(), name, userID)
	if err != nil {
		if errors.Is(err, store.ErrInventoryDeletion) {
			writeError(w, http.StatusNotFound, "ingredient not in inventory")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete inventory item")
		return
	}
	if !deleted {
		// The row vanished between the existence check and the delete.
		writeError(w, http.StatusNotFound, "ingredient not in inventory")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
