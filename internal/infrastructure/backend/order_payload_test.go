package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Carrelage-api/internal/domain/entity"
)

func TestDecodeReception_ObjetoCompleto(t *testing.T) {
	body := []byte(`{"id": 31, "commandeId": 17, "entrepotId": "ent-2", "statut": "en_attente", "dateReception": "2024-03-05"}`)

	rec := decodeReception(body, "17")
	assert.Equal(t, "31", rec.ID)
	assert.Equal(t, "17", rec.OrderID)
	assert.Equal(t, "ent-2", rec.WarehouseID)
	assert.Equal(t, entity.ReceptionStatusPending, rec.Status)
	assert.True(t, rec.Status.IsValid())
	require.NotNil(t, rec.ReceivedAt)
	assert.Equal(t, 5, rec.ReceivedAt.Day())
}

func TestDecodeReception_IDaSecas(t *testing.T) {
	rec := decodeReception([]byte(` "rec-7" `), "17")
	assert.Equal(t, "rec-7", rec.ID)
	assert.Equal(t, "17", rec.OrderID, "sin commandeId se toma la orden de origen")
	assert.Empty(t, rec.Status)

	assert.Empty(t, decodeReception([]byte(`{}`), "17").ID)
	assert.Empty(t, decodeReception([]byte(`null`), "17").ID)
}

func TestFlexID_NumeroOCadena(t *testing.T) {
	var id flexID
	require.NoError(t, id.UnmarshalJSON([]byte(`42`)))
	assert.Equal(t, flexID("42"), id)
	require.NoError(t, id.UnmarshalJSON([]byte(`"cmd-1"`)))
	assert.Equal(t, flexID("cmd-1"), id)
}
