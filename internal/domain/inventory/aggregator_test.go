package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Carrelage-api/internal/domain/entity"
	"github.com/jhoicas/Carrelage-api/internal/domain/inventory"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func sq(q entity.Quality, available, reserved, threshold *decimal.Decimal) entity.StockQuality {
	return entity.StockQuality{
		Quality:           q,
		AvailableQuantity: available,
		ReservedQuantity:  reserved,
		AlertThreshold:    threshold,
	}
}

func stockWith(id string, breakdown ...entity.StockQuality) entity.Stock {
	return entity.Stock{
		ID:                 id,
		ProductID:          "prod-" + id,
		ProductDescription: "Grès cérame 60x60 " + id,
		WarehouseID:        "wh-1",
		WarehouseName:      "Dépôt Nord",
		QualityBreakdown:   breakdown,
	}
}

// ── Totales ───────────────────────────────────────────────────────────────────

func TestTotalAvailable_SumaDesglose(t *testing.T) {
	stock := stockWith("s1",
		sq(entity.QualityFirst, dec("10.5"), dec("2"), nil),
		sq(entity.QualitySecond, dec("4"), nil, nil),
		sq(entity.QualityThird, nil, dec("1"), nil),
	)

	assert.True(t, decimal.RequireFromString("14.5").Equal(inventory.TotalAvailable(stock)),
		"el total disponible debe sumar las cantidades presentes y tratar nil como 0")
	assert.True(t, decimal.RequireFromString("3").Equal(inventory.TotalReserved(stock)),
		"el total reservado debe sumar las cantidades presentes y tratar nil como 0")
}

func TestTotales_DesgloseVacio(t *testing.T) {
	stock := stockWith("vacio")

	assert.True(t, inventory.TotalAvailable(stock).IsZero())
	assert.True(t, inventory.TotalReserved(stock).IsZero())
}

func TestHeldQuantity_DisponibleMasReservado(t *testing.T) {
	assert.True(t, decimal.NewFromInt(12).Equal(inventory.HeldQuantity(sq(entity.QualityFirst, dec("7"), dec("5"), nil))))
	assert.True(t, decimal.NewFromInt(7).Equal(inventory.HeldQuantity(sq(entity.QualityFirst, dec("7"), nil, nil))))
	assert.True(t, inventory.HeldQuantity(entity.StockQuality{}).IsZero())
}

// ── FindByQuality ─────────────────────────────────────────────────────────────

func TestFindByQuality_PrimeraCoincidencia(t *testing.T) {
	stock := stockWith("s1",
		sq(entity.QualityFirst, dec("1"), nil, nil),
		sq(entity.QualitySecond, dec("2"), nil, nil),
	)
	stock.QualityBreakdown[1].ID = "sq-2"

	found, ok := inventory.FindByQuality(stock, entity.QualitySecond)
	require.True(t, ok)
	assert.Equal(t, "sq-2", found.ID)
}

func TestFindByQuality_AusenteNoEsError(t *testing.T) {
	stock := stockWith("s1", sq(entity.QualityFirst, dec("1"), nil, nil))

	_, ok := inventory.FindByQuality(stock, entity.QualityThird)
	assert.False(t, ok, "un grado no presente debe devolver ok=false")
}

// ── AlertLevelFor ─────────────────────────────────────────────────────────────

func TestAlertLevelFor_TablaDeCortes(t *testing.T) {
	cases := []struct {
		name      string
		available string
		threshold *decimal.Decimal
		want      entity.AlertLevel
	}{
		{"cero sin umbral", "0", nil, entity.AlertCritical},
		{"cero con umbral cero", "0", dec("0"), entity.AlertCritical},
		{"negativo", "-3", dec("10"), entity.AlertCritical},
		{"positivo sin umbral", "0.01", nil, entity.AlertGood},
		{"igual a 0.2T", "4", dec("20"), entity.AlertCritical},
		{"justo sobre 0.2T", "4.0001", dec("20"), entity.AlertLow},
		{"escenario 1: 5 de 20", "5", dec("20"), entity.AlertLow},
		{"igual a 0.5T", "10", dec("20"), entity.AlertLow},
		{"justo sobre 0.5T", "10.0001", dec("20"), entity.AlertMedium},
		{"escenario 2: igual al umbral", "20", dec("20"), entity.AlertMedium},
		{"sobre el umbral", "20.0001", dec("20"), entity.AlertGood},
		{"positivo con umbral cero", "1", dec("0"), entity.AlertGood},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := inventory.AlertLevelFor(decimal.RequireFromString(tc.available), tc.threshold)
			assert.Equal(t, tc.want, got)
		})
	}
}

// Para un umbral fijo el nivel nunca empeora al aumentar la cantidad.
func TestAlertLevelFor_Monotono(t *testing.T) {
	severity := map[entity.AlertLevel]int{
		entity.AlertCritical: 3, entity.AlertLow: 2, entity.AlertMedium: 1, entity.AlertGood: 0,
	}
	threshold := dec("50")
	prev := severity[entity.AlertCritical]
	for q := 0; q <= 120; q++ {
		level := inventory.AlertLevelFor(decimal.NewFromInt(int64(q)), threshold)
		assert.LessOrEqual(t, severity[level], prev, "cantidad %d: la severidad no debe aumentar", q)
		prev = severity[level]
	}
}

func TestAlertLevelFor_NoModificaUmbral(t *testing.T) {
	threshold := dec("20")
	_ = inventory.AlertLevelFor(decimal.NewFromInt(5), threshold)
	assert.True(t, decimal.NewFromInt(20).Equal(*threshold))
}

// ── IsInAlert ─────────────────────────────────────────────────────────────────

func TestIsInAlert_SinUmbralNuncaAlerta(t *testing.T) {
	assert.False(t, inventory.IsInAlert(sq(entity.QualityFirst, dec("0"), nil, nil)),
		"sin umbral no debe alertar aunque la cantidad sea 0")
	assert.False(t, inventory.IsInAlert(sq(entity.QualityFirst, nil, nil, nil)))
}

func TestIsInAlert_ConUmbral(t *testing.T) {
	assert.True(t, inventory.IsInAlert(sq(entity.QualityFirst, dec("20"), nil, dec("20"))), "el umbral es inclusivo")
	assert.True(t, inventory.IsInAlert(sq(entity.QualityFirst, nil, nil, dec("5"))), "cantidad ausente cuenta como 0")
	assert.False(t, inventory.IsInAlert(sq(entity.QualityFirst, dec("21"), nil, dec("20"))))
}

// ── CollectAlerts ─────────────────────────────────────────────────────────────

func TestCollectAlerts_VacioDevuelveVacio(t *testing.T) {
	alerts := inventory.CollectAlerts(nil)
	require.NotNil(t, alerts)
	assert.Empty(t, alerts)

	ok := []entity.Stock{stockWith("s1", sq(entity.QualityFirst, dec("100"), nil, dec("10")))}
	assert.Empty(t, inventory.CollectAlerts(ok), "sin grados en alerta no debe haber entradas")
}

func TestCollectAlerts_OrdenEstableYDatosDelStock(t *testing.T) {
	stocks := []entity.Stock{
		stockWith("s1",
			sq(entity.QualityFirst, dec("2"), nil, dec("20")),
			sq(entity.QualitySecond, dec("50"), nil, dec("20")),
			sq(entity.QualityThird, dec("15"), nil, dec("20")),
		),
		stockWith("s2",
			sq(entity.QualityFirst, dec("0"), nil, nil),
			sq(entity.QualitySecond, dec("8"), nil, dec("20")),
		),
	}

	alerts := inventory.CollectAlerts(stocks)
	require.Len(t, alerts, 3)

	assert.Equal(t, "s1", alerts[0].StockID)
	assert.Equal(t, entity.QualityFirst, alerts[0].StockQuality.Quality)
	assert.Equal(t, entity.AlertCritical, alerts[0].Level)

	assert.Equal(t, "s1", alerts[1].StockID)
	assert.Equal(t, entity.QualityThird, alerts[1].StockQuality.Quality)
	assert.Equal(t, entity.AlertMedium, alerts[1].Level)

	assert.Equal(t, "s2", alerts[2].StockID)
	assert.Equal(t, "prod-s2", alerts[2].ProductID)
	assert.Equal(t, "Dépôt Nord", alerts[2].WarehouseName)
	assert.Equal(t, entity.AlertLow, alerts[2].Level)
}

// ── Unicidad y resumen por calidad ────────────────────────────────────────────

func TestHasDuplicateQuality(t *testing.T) {
	assert.False(t, inventory.HasDuplicateQuality(stockWith("s1",
		sq(entity.QualityFirst, nil, nil, nil), sq(entity.QualitySecond, nil, nil, nil))))
	assert.True(t, inventory.HasDuplicateQuality(stockWith("s1",
		sq(entity.QualityFirst, nil, nil, nil), sq(entity.QualityFirst, nil, nil, nil))))
}

func TestSummarizeByQuality_OrdenCanonicoYDesconocidosAlFinal(t *testing.T) {
	stocks := []entity.Stock{
		stockWith("s1",
			sq("CHOIX_SPECIAL", dec("1"), nil, nil),
			sq(entity.QualityThird, dec("3"), dec("1"), dec("5")),
		),
		stockWith("s2",
			sq(entity.QualityFirst, dec("10"), dec("2"), dec("5")),
			sq(entity.QualityThird, dec("7"), nil, nil),
		),
	}

	summary := inventory.SummarizeByQuality(stocks)
	require.Len(t, summary, 3)

	assert.Equal(t, entity.QualityFirst, summary[0].Quality)
	assert.True(t, decimal.NewFromInt(10).Equal(summary[0].Available))
	assert.Equal(t, 0, summary[0].Alerts)

	assert.Equal(t, entity.QualityThird, summary[1].Quality)
	assert.True(t, decimal.NewFromInt(10).Equal(summary[1].Available))
	assert.True(t, decimal.NewFromInt(1).Equal(summary[1].Reserved))
	assert.Equal(t, 1, summary[1].Alerts)

	assert.Equal(t, entity.Quality("CHOIX_SPECIAL"), summary[2].Quality)
}
