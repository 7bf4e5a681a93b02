package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHealthRoute(t *testing.T) {
	router := SetupRoutes()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Errorf("Unexpected health body: %s", w.Body.String())
	}
}

func TestGetMarketsRequiresLeague(t *testing.T) {
	router := SetupRoutes()

	// Binding fails before any database access.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/markets", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for missing league param, got %d", w.Code)
	}
}
