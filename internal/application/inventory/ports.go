package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/Carrelage-api/internal/application/dto"
	"github.com/jhoicas/Carrelage-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando el repositorio atado a esa tx.
// Una importación se aplica entera o no se aplica.
type TxRunner interface {
	Run(ctx context.Context, fn func(repo repository.StockQualityRepository) error) error
}

// AlertReportGenerator genera el informe PDF de alertas de stock.
type AlertReportGenerator interface {
	GenerateAlertReport(ctx context.Context, report AlertReport) ([]byte, error)
}

// AlertReport datos que recibe el generador del informe.
type AlertReport struct {
	Title       string
	WarehouseID string
	GeneratedAt time.Time
	Alerts      []dto.AlertEntryDTO
	Totals      []dto.QualityTotalsDTO
}
