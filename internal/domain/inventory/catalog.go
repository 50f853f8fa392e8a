package inventory

import "github.com/jhoicas/Carrelage-api/internal/domain/entity"

// Badges semánticos usados por la UI.
const (
	BadgeSuccess   = "success"
	BadgeWarning   = "warning"
	BadgeInfo      = "info"
	BadgeDanger    = "danger"
	BadgeSecondary = "secondary"
)

// ── Paleta ────────────────────────────────────────────────────────────────────

var (
	colorSuccess = entity.ColorPair{Text: "#155724", Background: "#d4edda"}
	colorWarning = entity.ColorPair{Text: "#856404", Background: "#fff3cd"}
	colorInfo    = entity.ColorPair{Text: "#0c5460", Background: "#d1ecf1"}
	colorDanger  = entity.ColorPair{Text: "#721c24", Background: "#f8d7da"}
	colorNeutral = entity.ColorPair{Text: "#383d41", Background: "#e2e3e5"}
)

// NeutralColor color por defecto para valores desconocidos.
func NeutralColor() entity.ColorPair { return colorNeutral }

// ── Calidades ─────────────────────────────────────────────────────────────────

// QualityLabel etiqueta visible del grado. Un grado desconocido se devuelve tal cual.
func QualityLabel(q entity.Quality) string {
	switch q {
	case entity.QualityFirst:
		return "1ère Qualité"
	case entity.QualitySecond:
		return "2ème Qualité"
	case entity.QualityThird:
		return "3ème Qualité"
	default:
		return string(q)
	}
}

// QualityColor colores de texto/fondo del grado; neutro si es desconocido.
func QualityColor(q entity.Quality) entity.ColorPair {
	switch q {
	case entity.QualityFirst:
		return colorSuccess
	case entity.QualitySecond:
		return colorWarning
	case entity.QualityThird:
		return colorInfo
	default:
		return colorNeutral
	}
}

// QualityBadgeColor badge semántico del grado: success/warning/info, secondary si es desconocido.
func QualityBadgeColor(q entity.Quality) string {
	switch q {
	case entity.QualityFirst:
		return BadgeSuccess
	case entity.QualitySecond:
		return BadgeWarning
	case entity.QualityThird:
		return BadgeInfo
	default:
		return BadgeSecondary
	}
}

// ── Niveles de alerta ─────────────────────────────────────────────────────────

// AlertLevelLabel etiqueta visible del nivel de alerta.
func AlertLevelLabel(l entity.AlertLevel) string {
	switch l {
	case entity.AlertCritical:
		return "Critique"
	case entity.AlertLow:
		return "Faible"
	case entity.AlertMedium:
		return "Moyen"
	case entity.AlertGood:
		return "Bon"
	default:
		return string(l)
	}
}

// AlertLevelColor colores del nivel de alerta; neutro si es desconocido.
func AlertLevelColor(l entity.AlertLevel) entity.ColorPair {
	switch l {
	case entity.AlertCritical:
		return colorDanger
	case entity.AlertLow:
		return colorWarning
	case entity.AlertMedium:
		return colorInfo
	case entity.AlertGood:
		return colorSuccess
	default:
		return colorNeutral
	}
}

// AlertLevels niveles en orden de severidad decreciente.
func AlertLevels() []entity.AlertLevel {
	return []entity.AlertLevel{entity.AlertCritical, entity.AlertLow, entity.AlertMedium, entity.AlertGood}
}
