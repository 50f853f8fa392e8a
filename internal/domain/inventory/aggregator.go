// Package inventory contiene la lógica pura de stock por calidad: totales, niveles de alerta
// y catálogos de presentación. No hace I/O y nunca modifica la entrada.
package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Carrelage-api/internal/domain/entity"
)

// Multiplicadores del umbral de alerta. Son contrato con la UI: no modificar.
var (
	criticalRatio = decimal.RequireFromString("0.2")
	lowRatio      = decimal.RequireFromString("0.5")
)

// TotalAvailable suma la cantidad disponible de todo el desglose (0 si está vacío).
func TotalAvailable(stock entity.Stock) decimal.Decimal {
	total := decimal.Zero
	for _, sq := range stock.QualityBreakdown {
		total = total.Add(sq.Available())
	}
	return total
}

// TotalReserved suma la cantidad reservada de todo el desglose (0 si está vacío).
func TotalReserved(stock entity.Stock) decimal.Decimal {
	total := decimal.Zero
	for _, sq := range stock.QualityBreakdown {
		total = total.Add(sq.Reserved())
	}
	return total
}

// HeldQuantity cantidad total en posesión de un grado: disponible + reservada.
func HeldQuantity(sq entity.StockQuality) decimal.Decimal {
	return sq.Available().Add(sq.Reserved())
}

// FindByQuality devuelve la primera entrada del desglose con el grado indicado.
// ok es false (no es error) si el grado no está presente.
func FindByQuality(stock entity.Stock, q entity.Quality) (entity.StockQuality, bool) {
	for _, sq := range stock.QualityBreakdown {
		if sq.Quality == q {
			return sq, true
		}
	}
	return entity.StockQuality{}, false
}

// AlertLevelFor deriva el nivel de alerta. Orden de evaluación (gana la primera regla):
//
//	disponible <= 0            → CRITICAL (no consulta el umbral)
//	sin umbral                 → GOOD
//	disponible <= umbral * 0.2 → CRITICAL
//	disponible <= umbral * 0.5 → LOW
//	disponible <= umbral       → MEDIUM
//	resto                      → GOOD
func AlertLevelFor(available decimal.Decimal, threshold *decimal.Decimal) entity.AlertLevel {
	if available.LessThanOrEqual(decimal.Zero) {
		return entity.AlertCritical
	}
	if threshold == nil {
		return entity.AlertGood
	}
	t := *threshold
	switch {
	case available.LessThanOrEqual(t.Mul(criticalRatio)):
		return entity.AlertCritical
	case available.LessThanOrEqual(t.Mul(lowRatio)):
		return entity.AlertLow
	case available.LessThanOrEqual(t):
		return entity.AlertMedium
	default:
		return entity.AlertGood
	}
}

// IsInAlert chequeo binario: false sin umbral; si hay umbral, disponible <= umbral.
// Es independiente de AlertLevelFor (una cantidad 0 sin umbral no está "en alerta").
func IsInAlert(sq entity.StockQuality) bool {
	if sq.AlertThreshold == nil {
		return false
	}
	return sq.Available().LessThanOrEqual(*sq.AlertThreshold)
}

// CollectAlerts aplana todos los pares (stock, calidad) en alerta, en el orden de entrada
// (orden de stocks y luego orden del desglose). No ordena ni elimina duplicados.
func CollectAlerts(stocks []entity.Stock) []entity.AlertEntry {
	alerts := make([]entity.AlertEntry, 0)
	for _, stock := range stocks {
		for _, sq := range stock.QualityBreakdown {
			if !IsInAlert(sq) {
				continue
			}
			alerts = append(alerts, entity.AlertEntry{
				StockID:            stock.ID,
				ProductID:          stock.ProductID,
				ProductDescription: stock.ProductDescription,
				WarehouseID:        stock.WarehouseID,
				WarehouseName:      stock.WarehouseName,
				StockQuality:       sq,
				Level:              AlertLevelFor(sq.Available(), sq.AlertThreshold),
			})
		}
	}
	return alerts
}

// HasDuplicateQuality informa si el desglose repite algún grado (rompe la unicidad por grado).
func HasDuplicateQuality(stock entity.Stock) bool {
	seen := make(map[entity.Quality]struct{}, len(stock.QualityBreakdown))
	for _, sq := range stock.QualityBreakdown {
		if _, ok := seen[sq.Quality]; ok {
			return true
		}
		seen[sq.Quality] = struct{}{}
	}
	return false
}

// QualityTotals acumulado de un grado sobre varios stocks.
type QualityTotals struct {
	Quality   entity.Quality
	Available decimal.Decimal
	Reserved  decimal.Decimal
	Alerts    int
}

// SummarizeByQuality acumula disponible, reservado y número de alertas por grado.
// Los grados conocidos salen en orden canónico (solo si aparecen); los desconocidos
// al final, en el orden en que se vieron.
func SummarizeByQuality(stocks []entity.Stock) []QualityTotals {
	byQuality := make(map[entity.Quality]*QualityTotals)
	var unknown []entity.Quality
	for _, stock := range stocks {
		for _, sq := range stock.QualityBreakdown {
			t, ok := byQuality[sq.Quality]
			if !ok {
				t = &QualityTotals{Quality: sq.Quality, Available: decimal.Zero, Reserved: decimal.Zero}
				byQuality[sq.Quality] = t
				if !sq.Quality.IsKnown() {
					unknown = append(unknown, sq.Quality)
				}
			}
			t.Available = t.Available.Add(sq.Available())
			t.Reserved = t.Reserved.Add(sq.Reserved())
			if IsInAlert(sq) {
				t.Alerts++
			}
		}
	}

	out := make([]QualityTotals, 0, len(byQuality))
	for _, q := range append(entity.Qualities(), unknown...) {
		if t, ok := byQuality[q]; ok {
			out = append(out, *t)
		}
	}
	return out
}
