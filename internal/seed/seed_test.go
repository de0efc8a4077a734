package seed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": 1, "brand": "Aurora", "model": "GT", "type": "sports", "price": 120000, "horsepower": 520},
			{"id": 2, "brand": "Verdant", "model": "E1", "type": "electric", "price": 48000, "horsepower": 310}
		]`))
	}))
	defer srv.Close()

	cars, err := NewClient(srv.URL).Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, cars, 2)
	assert.Equal(t, "Aurora", cars[0].Brand)
	assert.Equal(t, 310, cars[1].Horsepower)
}

func TestClient_Fetch_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Fetch(context.Background())
	assert.ErrorContains(t, err, "unexpected status 500")
}

func TestClient_Fetch_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not": "an array"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Fetch(context.Background())
	assert.ErrorContains(t, err, "decode seed")
}

func TestClient_Fetch_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := NewClient(srv.URL).Fetch(context.Background())
	assert.Error(t, err)
}
