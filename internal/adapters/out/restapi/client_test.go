package restapi_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backoffice/internal/adapters/out/restapi"
	"backoffice/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *restapi.Client {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	collaboratorMetrics := metrics.NewCollaboratorMetricsWithRegisterer(prometheus.NewRegistry())
	return restapi.NewClient(baseURL, 5*time.Second, logger, collaboratorMetrics)
}

func TestClient_List(t *testing.T) {
	t.Run("should decode an array payload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/cliente/get", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"id":"C1"},{"id":"C2"}]`))
		}))
		defer server.Close()

		var out []struct {
			ID string `json:"id"`
		}
		err := newTestClient(server.URL).List(context.Background(), "cliente", "/cliente/get", &out)

		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.Equal(t, "C1", out[0].ID)
	})

	t.Run("should fail with a shape error on a non-array payload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"message":"maintenance"}`))
		}))
		defer server.Close()

		var out []struct{}
		err := newTestClient(server.URL).List(context.Background(), "cliente", "/cliente/get", &out)

		require.Error(t, err)
		assert.ErrorIs(t, err, restapi.ErrUnexpectedShape)
		assert.Empty(t, out)
	})

	t.Run("should fail with a shape error on an empty body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		var out []struct{}
		err := newTestClient(server.URL).List(context.Background(), "cliente", "/cliente/get", &out)

		assert.ErrorIs(t, err, restapi.ErrUnexpectedShape)
	})

	t.Run("should propagate non-2xx responses as plain errors", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		var out []struct{}
		err := newTestClient(server.URL).List(context.Background(), "cliente", "/cliente/get", &out)

		require.Error(t, err)
		assert.NotErrorIs(t, err, restapi.ErrUnexpectedShape)
		assert.Contains(t, err.Error(), "500")
	})
}

func TestClient_RequestHeaders(t *testing.T) {
	var gotRequestID, gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get("X-Request-ID")
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	body := map[string]string{"nome": "Ajax"}
	err := newTestClient(server.URL).Create(context.Background(), "cliente", "/cliente/add", body, nil)

	require.NoError(t, err)
	assert.NotEmpty(t, gotRequestID)
	assert.Equal(t, "application/json", gotContentType)
}

func TestClient_Delete(t *testing.T) {
	t.Run("should issue exactly one request", func(t *testing.T) {
		var calls int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			assert.Equal(t, http.MethodDelete, r.Method)
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		err := newTestClient(server.URL).Delete(context.Background(), "cliente", "/cliente/delete/C1")

		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("should not retry a failed delete", func(t *testing.T) {
		var calls int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		err := newTestClient(server.URL).Delete(context.Background(), "cliente", "/cliente/delete/C1")

		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})
}

func TestClient_RecordsMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	collaboratorMetrics := metrics.NewCollaboratorMetricsWithRegisterer(registry)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"oops":true}`))
	}))
	defer server.Close()

	client := restapi.NewClient(server.URL, time.Second, logger, collaboratorMetrics)

	var out []struct{}
	_ = client.List(context.Background(), "pedido", "/pedido/get", &out)

	families, err := registry.Gather()
	require.NoError(t, err)

	var shapeErrors float64
	for _, family := range families {
		if family.GetName() != "backoffice_collaborator_calls_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "outcome" && label.GetValue() == metrics.OutcomeShape {
					shapeErrors += metric.GetCounter().GetValue()
				}
			}
		}
	}
	assert.InDelta(t, 1, shapeErrors, 0.0001)
}
