package backend_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Carrelage-api/internal/domain"
	"github.com/jhoicas/Carrelage-api/internal/domain/entity"
	"github.com/jhoicas/Carrelage-api/internal/infrastructure/backend"
)

const orderJSON = `{
	"id": 17,
	"reference": "CMD-2024-017",
	"fournisseurId": "f-3",
	"fournisseurNom": "Céramiques du Sud",
	"entrepotId": 2,
	"statut": "PLACED",
	"dateCommande": "2024-03-01",
	"dateLivraisonPrevue": "2024-03-15T10:00:00Z",
	"lignes": [
		{"produitId": 5, "produitDesignation": "Grès 60x60", "qualite": "PREMIERE_QUALITE", "quantite": 12.5, "prixUnitaire": "19.90"}
	]
}`

func newClient(t *testing.T, h http.HandlerFunc) *backend.OrderClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return backend.NewOrderClient(backend.Config{BaseURL: srv.URL + "/", Token: "tok-123", Timeout: 2 * time.Second}, zerolog.Nop())
}

func TestGetByID_DecodificaOrden(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/commandes/17", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		_, err := uuid.Parse(r.Header.Get("X-Request-ID"))
		assert.NoError(t, err, "X-Request-ID debe ser un UUID")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(orderJSON))
	})

	o, err := client.GetByID(context.Background(), "17")
	require.NoError(t, err)
	assert.Equal(t, "17", o.ID)
	assert.Equal(t, "2", o.WarehouseID)
	assert.Equal(t, entity.OrderStatusPlaced, o.Status)
	assert.Equal(t, 2024, o.OrderDate.Year())
	require.NotNil(t, o.ExpectedDate)
	assert.Equal(t, 15, o.ExpectedDate.Day())
	require.Len(t, o.Lines, 1)
	assert.Equal(t, "5", o.Lines[0].ProductID)
	assert.True(t, decimal.RequireFromString("12.5").Equal(o.Lines[0].Quantity))
	assert.True(t, decimal.RequireFromString("19.90").Equal(o.Lines[0].UnitPrice))
}

func TestGetByID_404EsNotFound(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	_, err := client.GetByID(context.Background(), "99")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateStatus_EnviaQuery(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/commandes/17/statut", r.URL.Path)
		assert.Equal(t, "PARTIALLY_DELIVERED", r.URL.Query().Get("statut"))
		_, _ = w.Write([]byte(`{"id": 17, "statut": "PARTIALLY_DELIVERED"}`))
	})

	o, err := client.UpdateStatus(context.Background(), "17", entity.OrderStatusPartiallyDelivered)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPartiallyDelivered, o.Status)
}

func TestUpdateStatus_SinCuerpo(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	o, err := client.UpdateStatus(context.Background(), "17", entity.OrderStatusCancelled)
	require.NoError(t, err)
	assert.Nil(t, o)
}

func TestUpdateStatus_ErrorDelBackend(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message": "Transition non autorisée"}`))
	})

	_, err := client.UpdateStatus(context.Background(), "17", entity.OrderStatusValidated)
	var apiErr *backend.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "Transition non autorisée", apiErr.Message)
}

func TestConvertToReception_FormatosDeRespuesta(t *testing.T) {
	cases := map[string]string{
		"objeto con id texto":  `{"id": "rec-7"}`,
		"objeto con id número": `{"id": 7}`,
		"id a secas":           `"rec-7"`,
		"número a secas":       `7`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/api/commandes/17/convertir-reception", r.URL.Path)
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte(body))
			})
			id, err := client.ConvertToReception(context.Background(), "17")
			require.NoError(t, err)
			assert.Contains(t, []string{"rec-7", "7"}, id)
		})
	}
}

func TestConvertToReception_SinID(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})
	_, err := client.ConvertToReception(context.Background(), "17")
	assert.Error(t, err)
}

func TestTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)
	client := backend.NewOrderClient(backend.Config{BaseURL: srv.URL, Timeout: 50 * time.Millisecond}, zerolog.Nop())

	_, err := client.GetByID(context.Background(), "1")
	require.Error(t, err)
	var apiErr *backend.APIError
	assert.False(t, errors.As(err, &apiErr), "un fallo de transporte no es APIError")
}

func TestErrorDelBackend_MensajeLargoSinPartirRunas(t *testing.T) {
	long := strings.Repeat("é", 300)
	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(long))
	})

	_, err := client.GetByID(context.Background(), "17")
	var apiErr *backend.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, utf8.ValidString(apiErr.Message), "el mensaje recortado debe seguir siendo UTF-8 válido")
	assert.Equal(t, 200, utf8.RuneCountInString(apiErr.Message))
	assert.Equal(t, strings.Repeat("é", 200), apiErr.Message)
}

func TestRequestID_SeReenviaDesdeElContexto(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "req-entrante-1", r.Header.Get("X-Request-ID"))
		_, _ = w.Write([]byte(orderJSON))
	})

	ctx := backend.WithRequestID(context.Background(), "req-entrante-1")
	assert.Equal(t, "req-entrante-1", backend.RequestIDFromContext(ctx))
	_, err := client.GetByID(ctx, "17")
	require.NoError(t, err)

	assert.Empty(t, backend.RequestIDFromContext(backend.WithRequestID(context.Background(), "")))
}
