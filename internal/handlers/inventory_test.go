package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pantrykit/apiserver/config"
	"github.com/pantrykit/apiserver/internal/server"
	"github.com/pantrykit/apiserver/types"
)

// newTestServer wires the full router over a temp database and returns its
// base URL.
func newTestServer(t *testing.T) string {
	t.Helper()

	cfg := config.Config{
		Database: config.DatabaseConfig{
			DBName: filepath.Join(t.TempDir(), "test.db"),
		},
		Log: config.LogConfig{Level: "error", Format: "json"},
	}

	srv, err := server.New(context.Background(), cfg)
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Router())
	t.Cleanup(func() {
		ts.Close()
		_ = srv.Shutdown()
	})
	return ts.URL
}

func doJSON(t *testing.T, method, url string, userID int64, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if userID > 0 {
		req.Header.Set("X-User-Id", fmt.Sprintf("%d", userID))
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeInto(t *testing.T, resp *http.Response, dst any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
}

func registerUser(t *testing.T, baseURL, email string) int64 {
	t.Helper()

	resp := doJSON(t, http.MethodPost, baseURL+"/users", 0, map[string]string{
		"email":    email,
		"password": "super-secret",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var user types.User
	decodeInto(t, resp, &user)
	require.Positive(t, user.ID)
	return user.ID
}

func flourPayload() map[string]any {
	return map[string]any{
		"name":              "flour",
		"category":          "staple",
		"unit_type":         "grams",
		"quantity":          5.0,
		"minimum_threshold": 1.0,
		"expiration_date":   "2025-01-01",
	}
}

func TestHealthz(t *testing.T) {
	baseURL := newTestServer(t)

	resp, err := http.Get(baseURL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestInventoryLifecycle(t *testing.T) {
	baseURL := newTestServer(t)
	userID := registerUser(t, baseURL, "cook@example.com")

	// Add to inventory; the catalog entry is created lazily.
	resp := doJSON(t, http.MethodPost, baseURL+"/inventory", userID, flourPayload())
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var item types.InventoryItem
	decodeInto(t, resp, &item)
	require.Equal(t, "flour", item.Name)
	require.Equal(t, 5.0, item.Quantity)
	require.Equal(t, userID, item.UserID)

	// Adding the same ingredient again conflicts.
	resp = doJSON(t, http.MethodPost, baseURL+"/inventory", userID, flourPayload())
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	// Quantity lookup.
	resp = doJSON(t, http.MethodGet, baseURL+"/inventory/flour/quantity", userID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var quantity struct {
		Quantity float64 `json:"quantity"`
	}
	decodeInto(t, resp, &quantity)
	require.Equal(t, 5.0, quantity.Quantity)

	// A never-added ingredient has zero quantity, not an error.
	resp = doJSON(t, http.MethodGet, baseURL+"/inventory/saffron/quantity", userID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeInto(t, resp, &quantity)
	require.Zero(t, quantity.Quantity)

	// Composed info.
	resp = doJSON(t, http.MethodGet, baseURL+"/inventory/flour", userID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeInto(t, resp, &item)
	require.Equal(t, "staple", string(item.Category))
	require.NotNil(t, item.ExpirationDate)
	require.Equal(t, "2025-01-01", *item.ExpirationDate)

	resp = doJSON(t, http.MethodGet, baseURL+"/inventory/saffron", userID, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Partial update.
	resp = doJSON(t, http.MethodPatch, baseURL+"/inventory/flour", userID, map[string]any{
		"quantity": 9.0,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeInto(t, resp, &item)
	require.Equal(t, 9.0, item.Quantity)
	require.Equal(t, 1.0, item.MinimumThreshold)

	// An empty patch is rejected.
	resp = doJSON(t, http.MethodPatch, baseURL+"/inventory/flour", userID, map[string]any{})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// List.
	resp = doJSON(t, http.MethodGet, baseURL+"/inventory", userID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list struct {
		Items []types.InventoryItem `json:"items"`
	}
	decodeInto(t, resp, &list)
	require.Len(t, list.Items, 1)

	// Delete, then delete again.
	resp = doJSON(t, http.MethodDelete, baseURL+"/inventory/flour", userID, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, http.MethodDelete, baseURL+"/inventory/flour", userID, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestInventoryRequiresUserHeader(t *testing.T) {
	baseURL := newTestServer(t)

	resp := doJSON(t, http.MethodGet, baseURL+"/inventory", 0, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestInventoryRejectsInvalidPayload(t *testing.T) {
	baseURL := newTestServer(t)
	userID := registerUser(t, baseURL, "cook@example.com")

	payload := flourPayload()
	payload["quantity"] = -1.0
	resp := doJSON(t, http.MethodPost, baseURL+"/inventory", userID, payload)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	payload = flourPayload()
	payload["category"] = "frozen"
	resp = doJSON(t, http.MethodPost, baseURL+"/inventory", userID, payload)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestIngredientCatalogEndpoints(t *testing.T) {
	baseURL := newTestServer(t)

	payload := map[string]string{
		"name":      "milk",
		"category":  "dairy",
		"unit_type": "millilitres",
	}
	resp := doJSON(t, http.MethodPost, baseURL+"/ingredients", 0, payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, http.MethodPost, baseURL+"/ingredients", 0, payload)
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, baseURL+"/ingredients/milk/unit", 0, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var unit struct {
		UnitType string `json:"unit_type"`
	}
	decodeInto(t, resp, &unit)
	require.Equal(t, "millilitres", unit.UnitType)

	resp = doJSON(t, http.MethodGet, baseURL+"/ingredients/saffron/unit", 0, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	baseURL := newTestServer(t)

	registerUser(t, baseURL, "cook@example.com")

	resp := doJSON(t, http.MethodPost, baseURL+"/users", 0, map[string]string{
		"email":    "cook@example.com",
		"password": "super-secret",
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
}
