package http_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Carrelage-api/internal/application/dto"
)

func TestCatalogos_Publicos(t *testing.T) {
	app := buildAPI(&orderServiceMock{}, nil)

	resp := call(t, app, http.MethodGet, "/api/catalog/order-statuses", "", "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"), "el middleware de log asigna un request id")

	var body []dto.CatalogEntryDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 6)
	assert.Equal(t, "DRAFT", body[0].Code)
}
