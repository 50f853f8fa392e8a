package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Carrelage-api/internal/application/dto"
	"github.com/jhoicas/Carrelage-api/internal/domain"
	"github.com/jhoicas/Carrelage-api/internal/domain/entity"
	"github.com/jhoicas/Carrelage-api/internal/domain/inventory"
	"github.com/jhoicas/Carrelage-api/internal/domain/repository"
)

// ImportUseCase carga filas de stock por calidad exportadas por la herramienta anterior.
// Valida todo el lote antes de escribir y aplica las filas en una única transacción.
type ImportUseCase struct {
	txRunner TxRunner
	log      zerolog.Logger
	now      func() time.Time
}

// NewImportUseCase construye el caso de uso.
func NewImportUseCase(txRunner TxRunner, log zerolog.Logger) *ImportUseCase {
	return &ImportUseCase{txRunner: txRunner, log: log, now: time.Now}
}

// ImportStockQualities valida las filas y las escribe. Cualquier fila inválida rechaza el lote
// entero con domain.ErrInvalidInput (el mensaje indica la línea).
func (uc *ImportUseCase) ImportStockQualities(ctx context.Context, rows []dto.StockQualityImportRow) (*dto.ImportResultDTO, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: fichero sin filas", domain.ErrInvalidInput)
	}

	now := uc.now()
	byStock := make(map[string]*entity.Stock)
	var order []string
	for _, r := range rows {
		sq, err := validateRow(r, now)
		if err != nil {
			return nil, err
		}
		stockID := strings.TrimSpace(r.StockID)
		s, ok := byStock[stockID]
		if !ok {
			s = &entity.Stock{ID: stockID}
			byStock[stockID] = s
			order = append(order, stockID)
		}
		s.QualityBreakdown = append(s.QualityBreakdown, sq)
		if inventory.HasDuplicateQuality(*s) {
			return nil, fmt.Errorf("%w: línea %d: calidad %s repetida para el stock %s",
				domain.ErrInvalidInput, r.Line, sq.Quality, stockID)
		}
	}

	result := &dto.ImportResultDTO{Stocks: len(order), RowIDs: make([]string, 0, len(rows))}
	err := uc.txRunner.Run(ctx, func(repo repository.StockQualityRepository) error {
		for _, stockID := range order {
			for _, sq := range byStock[stockID].QualityBreakdown {
				id, err := repo.UpsertStockQuality(ctx, stockID, sq)
				if err != nil {
					return fmt.Errorf("stock %s calidad %s: %w", stockID, sq.Quality, err)
				}
				result.RowIDs = append(result.RowIDs, id)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	result.Rows = len(result.RowIDs)

	uc.log.Info().Int("stocks", result.Stocks).Int("rows", result.Rows).Msg("stock importado")
	return result, nil
}

func validateRow(r dto.StockQualityImportRow, now time.Time) (entity.StockQuality, error) {
	if strings.TrimSpace(r.StockID) == "" {
		return entity.StockQuality{}, fmt.Errorf("%w: línea %d: stock_id vacío", domain.ErrInvalidInput, r.Line)
	}
	q := entity.Quality(strings.ToUpper(strings.TrimSpace(r.Quality)))
	if !q.IsKnown() {
		return entity.StockQuality{}, fmt.Errorf("%w: línea %d: calidad desconocida %q", domain.ErrInvalidInput, r.Line, r.Quality)
	}
	for name, v := range map[string]*decimal.Decimal{
		"available": r.Available,
		"reserved":  r.Reserved,
		"threshold": r.Threshold,
	} {
		if v != nil && v.IsNegative() {
			return entity.StockQuality{}, fmt.Errorf("%w: línea %d: %s negativo", domain.ErrInvalidInput, r.Line, name)
		}
	}
	return entity.StockQuality{
		ID:                uuid.New().String(),
		Quality:           q,
		AvailableQuantity: r.Available,
		ReservedQuantity:  r.Reserved,
		AlertThreshold:    r.Threshold,
		LastUpdated:       now,
	}, nil
}
