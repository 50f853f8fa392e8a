package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Carrelage-api/internal/domain"
	"github.com/jhoicas/Carrelage-api/internal/domain/entity"
	"github.com/jhoicas/Carrelage-api/internal/domain/repository"
)

var _ repository.StockQualityRepository = (*StockQualityRepo)(nil)

// StockQualityRepo implementación de StockQualityRepository sobre PostgreSQL (usable con pool o tx).
type StockQualityRepo struct {
	q Querier
}

// NewStockQualityRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockQualityRepository(q Querier) *StockQualityRepo {
	return &StockQualityRepo{q: q}
}

const stockHeaderColumns = `
	s.id::text, s.product_id::text, COALESCE(p.designation, ''),
	s.warehouse_id::text, COALESCE(w.name, '')
	FROM stocks s
	LEFT JOIN products p ON p.id = s.product_id
	LEFT JOIN warehouses w ON w.id = s.warehouse_id`

// El desglose sale en orden canónico de grados; los desconocidos al final.
const qualitiesByStockQuery = `
	SELECT id::text, stock_id::text, quality, available_quantity, reserved_quantity, alert_threshold, last_updated
	FROM stock_qualities
	WHERE stock_id::text = ANY($1)
	ORDER BY stock_id,
		CASE quality
			WHEN 'PREMIERE_QUALITE' THEN 1
			WHEN 'DEUXIEME_QUALITE' THEN 2
			WHEN 'TROISIEME_QUALITE' THEN 3
			ELSE 4
		END,
		id`

// GetStock obtiene un stock con su desglose por calidad. domain.ErrNotFound si no existe.
func (r *StockQualityRepo) GetStock(ctx context.Context, id string) (*entity.Stock, error) {
	query := `SELECT ` + stockHeaderColumns + ` WHERE s.id::text = $1`
	var s entity.Stock
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.ProductID, &s.ProductDescription, &s.WarehouseID, &s.WarehouseName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	stocks := []entity.Stock{s}
	if err := r.attachQualities(ctx, stocks); err != nil {
		return nil, err
	}
	return &stocks[0], nil
}

// ListStocks lista stocks ordenados por designación de producto, con su desglose.
func (r *StockQualityRepo) ListStocks(ctx context.Context, warehouseID string, limit, offset int) ([]entity.Stock, error) {
	query := `SELECT ` + stockHeaderColumns + `
		WHERE ($1 = '' OR s.warehouse_id::text = $1)
		ORDER BY p.designation NULLS LAST, s.id
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, warehouseID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stocks: %w", err)
	}
	defer rows.Close()

	stocks := make([]entity.Stock, 0, limit)
	for rows.Next() {
		var s entity.Stock
		if err := rows.Scan(&s.ID, &s.ProductID, &s.ProductDescription, &s.WarehouseID, &s.WarehouseName); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		stocks = append(stocks, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list stocks: %w", err)
	}
	if err := r.attachQualities(ctx, stocks); err != nil {
		return nil, err
	}
	return stocks, nil
}

// attachQualities carga en una sola consulta el desglose de todos los stocks dados.
func (r *StockQualityRepo) attachQualities(ctx context.Context, stocks []entity.Stock) error {
	if len(stocks) == 0 {
		return nil
	}
	ids := make([]string, len(stocks))
	index := make(map[string]int, len(stocks))
	for i, s := range stocks {
		ids[i] = s.ID
		index[s.ID] = i
		stocks[i].QualityBreakdown = []entity.StockQuality{}
	}

	rows, err := r.q.Query(ctx, qualitiesByStockQuery, ids)
	if err != nil {
		return fmt.Errorf("list stock qualities: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			sq          entity.StockQuality
			stockID     string
			quality     string
			available   *decimal.Decimal
			reserved    *decimal.Decimal
			threshold   *decimal.Decimal
			lastUpdated *time.Time
		)
		if err := rows.Scan(&sq.ID, &stockID, &quality, &available, &reserved, &threshold, &lastUpdated); err != nil {
			return fmt.Errorf("scan stock quality: %w", err)
		}
		i, ok := index[stockID]
		if !ok {
			continue
		}
		sq.Quality = entity.Quality(quality)
		sq.AvailableQuantity = available
		sq.ReservedQuantity = reserved
		sq.AlertThreshold = threshold
		if lastUpdated != nil {
			sq.LastUpdated = *lastUpdated
		}
		sq.ProductID = stocks[i].ProductID
		sq.ProductDescription = stocks[i].ProductDescription
		sq.WarehouseID = stocks[i].WarehouseID
		sq.WarehouseName = stocks[i].WarehouseName
		stocks[i].QualityBreakdown = append(stocks[i].QualityBreakdown, sq)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("list stock qualities: %w", err)
	}
	return nil
}

// UpsertStockQuality inserta o reemplaza la fila (stock_id, quality); conserva el ID existente.
// Un stock inexistente devuelve domain.ErrNotFound y un valor rechazado por CHECK, domain.ErrInvalidInput.
func (r *StockQualityRepo) UpsertStockQuality(ctx context.Context, stockID string, sq entity.StockQuality) (string, error) {
	id := sq.ID
	if id == "" {
		id = uuid.New().String()
	}
	lastUpdated := sq.LastUpdated
	if lastUpdated.IsZero() {
		lastUpdated = time.Now()
	}
	query := `
		INSERT INTO stock_qualities
			(id, stock_id, quality, available_quantity, reserved_quantity, alert_threshold, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (stock_id, quality) DO UPDATE SET
			available_quantity = EXCLUDED.available_quantity,
			reserved_quantity  = EXCLUDED.reserved_quantity,
			alert_threshold    = EXCLUDED.alert_threshold,
			last_updated       = EXCLUDED.last_updated
		RETURNING id::text`
	var out string
	err := r.q.QueryRow(ctx, query,
		id, stockID, string(sq.Quality),
		sq.AvailableQuantity, sq.ReservedQuantity, sq.AlertThreshold, lastUpdated,
	).Scan(&out)
	if err != nil {
		switch {
		case isForeignKeyViolation(err):
			return "", fmt.Errorf("upsert stock quality %s: %w", stockID, domain.ErrNotFound)
		case isCheckViolation(err):
			return "", fmt.Errorf("upsert stock quality %s: %w", stockID, domain.ErrInvalidInput)
		}
		return "", fmt.Errorf("upsert stock quality: %w", err)
	}
	return out, nil
}
