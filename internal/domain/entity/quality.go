package entity

// Quality grado de calidad de un lote de carrelage. Llega del backend como string libre,
// por eso se modela como string y no como enum cerrado.
type Quality string

// Grados de calidad conocidos.
const (
	QualityFirst  Quality = "PREMIERE_QUALITE"
	QualitySecond Quality = "DEUXIEME_QUALITE"
	QualityThird  Quality = "TROISIEME_QUALITE"
)

// Qualities devuelve los grados conocidos en orden canónico (primera, segunda, tercera).
func Qualities() []Quality {
	return []Quality{QualityFirst, QualitySecond, QualityThird}
}

// IsKnown informa si el grado es uno de los tres definidos.
func (q Quality) IsKnown() bool {
	switch q {
	case QualityFirst, QualitySecond, QualityThird:
		return true
	default:
		return false
	}
}

// ColorPair par de colores de presentación (texto y fondo).
type ColorPair struct {
	Text       string `json:"text"`
	Background string `json:"background"`
}
