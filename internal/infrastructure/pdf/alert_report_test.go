package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Carrelage-api/internal/application/dto"
	appinventory "github.com/jhoicas/Carrelage-api/internal/application/inventory"
)

func TestGenerateAlertReport_ProducePDF(t *testing.T) {
	five := decimal.NewFromInt(5)
	fifty := decimal.NewFromInt(50)
	gen := NewAlertReportGenerator("carrelage-api")

	out, err := gen.GenerateAlertReport(context.Background(), appinventory.AlertReport{
		Title:       "Alertes de stock",
		GeneratedAt: time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
		Alerts: []dto.AlertEntryDTO{{
			StockID: "stk-1", ProductDescription: "Grès 60x60", WarehouseName: "Dépôt Nord",
			Quality: "DEUXIEME_QUALITE", QualityLabel: "2ème Qualité",
			AvailableQuantity: &five, AlertThreshold: &fifty,
			Level: "CRITICAL", LevelLabel: "Critique", LevelColor: dto.ColorDTO{Text: "#721c24", Background: "#f8d7da"},
		}},
		Totals: []dto.QualityTotalsDTO{{Quality: "DEUXIEME_QUALITE", QualityLabel: "2ème Qualité", Available: five, Alerts: 1}},
	})
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "el documento debe empezar por la cabecera PDF")
}

func TestGenerateAlertReport_SinAlertas(t *testing.T) {
	out, err := NewAlertReportGenerator("").GenerateAlertReport(context.Background(), appinventory.AlertReport{Title: "Vide"})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestHexColor(t *testing.T) {
	c := hexColor("#721c24")
	require.NotNil(t, c)
	assert.Equal(t, 0x72, c.Red)
	assert.Equal(t, 0x1c, c.Green)
	assert.Equal(t, 0x24, c.Blue)
	assert.Nil(t, hexColor("rojo"))
	assert.Equal(t, "—", formatQtyPtr(nil))
}
