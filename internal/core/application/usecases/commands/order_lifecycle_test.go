package commands_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backoffice/internal/adapters/out/restapi"
	"backoffice/internal/adapters/out/restapi/orderrepo"
	"backoffice/internal/adapters/out/restapi/productrepo"
	"backoffice/internal/core/application/stores"
	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Exercises the full order lifecycle against a fake collaborator: placement
// with a computed value, a forward transition over the standard endpoint, a
// cancellation over the devolucao endpoint, and the terminal guard afterward.
func TestOrderLifecycle(t *testing.T) {
	ctx := context.Background()

	var standardCalls, devolucaoCalls []string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /produto/get", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"P1","nome":"Caixa","preco":200,"quantidadeDisponivel":50}]`))
	})
	mux.HandleFunc("POST /pedido/add/{clienteId}/{produtoId}", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.InDelta(t, 600, body["valor"], 0.0001)
		assert.Equal(t, "PEDIDO_REALIZADO", body["statusPedido"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":42,"clienteId":"` + r.PathValue("clienteId") +
			`","produtoId":"` + r.PathValue("produtoId") +
			`","qtd":3,"valor":600,"statusPedido":"PEDIDO_REALIZADO"}`))
	})
	mux.HandleFunc("PUT /pedido/update/status/{id}", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		standardCalls = append(standardCalls, body["statusPedido"])
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("PUT /pedido/update/status/devolucao/{id}", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		devolucaoCalls = append(devolucaoCalls, body["statusPedido"])
		w.WriteHeader(http.StatusOK)
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	api := restapi.NewClient(server.URL, 5*time.Second, logger,
		metrics.NewCollaboratorMetricsWithRegisterer(prometheus.NewRegistry()))

	orderStore := stores.NewOrderStore()
	productStore := stores.NewProductStore()
	orders := commands.OrderAccess{Repo: orderrepo.NewRestOrderRepository(api), Store: orderStore}
	products := commands.ProductAccess{Repo: productrepo.NewRestProductRepository(api), Store: productStore}

	createHandler := commands.NewCreateOrderCommandHandler(orders, products)
	statusHandler := commands.NewUpdateOrderStatusCommandHandler(orders)

	// place: value is 200 x 3, resolved through a product store refresh
	createCmd, err := commands.NewCreateOrderCommand("C1", "P1", 3)
	require.NoError(t, err)

	created, err := createHandler.Handle(ctx, createCmd)
	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID())
	assert.Equal(t, float64(600), created.Value().Amount())
	assert.Equal(t, order.StatusPlaced, created.Status())

	// forward transition over the standard endpoint
	forwardCmd, err := commands.NewUpdateOrderStatusCommand(42, order.StatusInTransit)
	require.NoError(t, err)
	require.NoError(t, statusHandler.Handle(ctx, forwardCmd))

	assert.Equal(t, []string{"MERCADORIA_TRANSITO"}, standardCalls)
	assert.Empty(t, devolucaoCalls)

	// cancellation over the devolucao endpoint
	cancelCmd, err := commands.NewUpdateOrderStatusCommand(42, order.StatusCancelled)
	require.NoError(t, err)
	require.NoError(t, statusHandler.Handle(ctx, cancelCmd))

	assert.Equal(t, []string{"PEDIDO_CANCELADO"}, devolucaoCalls)
	assert.Len(t, standardCalls, 1)

	final, ok := orderStore.Get(stores.OrderKey(42))
	require.True(t, ok)
	assert.Equal(t, order.StatusCancelled, final.Status())
	assert.Equal(t, "Pedido Cancelado", final.Status().DisplayLabel())

	// cancelled is terminal, nothing moves it anymore
	reviveCmd, err := commands.NewUpdateOrderStatusCommand(42, order.StatusPlaced)
	require.NoError(t, err)
	err = statusHandler.Handle(ctx, reviveCmd)

	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Len(t, standardCalls, 1)
	assert.Len(t, devolucaoCalls, 1)
}
