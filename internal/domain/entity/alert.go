package entity

// AlertLevel nivel de alerta derivado (no se persiste).
type AlertLevel string

const (
	AlertCritical AlertLevel = "CRITICAL"
	AlertLow      AlertLevel = "LOW"
	AlertMedium   AlertLevel = "MEDIUM"
	AlertGood     AlertLevel = "GOOD"
)

// AlertEntry un grado de calidad en alerta, con los datos del stock al que pertenece.
type AlertEntry struct {
	StockID            string
	ProductID          string
	ProductDescription string
	WarehouseID        string
	WarehouseName      string
	StockQuality       StockQuality
	Level              AlertLevel
}
