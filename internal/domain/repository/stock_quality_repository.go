package repository

import (
	"context"

	"github.com/jhoicas/Carrelage-api/internal/domain/entity"
)

// StockQualityRepository puerto de lectura/escritura del stock desglosado por calidad.
// GetStock devuelve domain.ErrNotFound si el stock no existe.
type StockQualityRepository interface {
	GetStock(ctx context.Context, id string) (*entity.Stock, error)
	// ListStocks lista stocks con su desglose; warehouseID vacío = todas las bodegas.
	ListStocks(ctx context.Context, warehouseID string, limit, offset int) ([]entity.Stock, error)
	// UpsertStockQuality crea o reemplaza la fila (stock_id, quality). Devuelve el ID de la fila.
	UpsertStockQuality(ctx context.Context, stockID string, sq entity.StockQuality) (string, error)
}
