package dto

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores por defecto y acota Limit a 100.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Count  int `json:"count"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CatalogEntryDTO entrada de un catálogo (calidades, niveles de alerta, estados).
type CatalogEntryDTO struct {
	Code  string    `json:"code"`
	Label string    `json:"label"`
	Color *ColorDTO `json:"color,omitempty"`
	Badge string    `json:"badge,omitempty"`
}

// ColorDTO par de colores texto/fondo.
type ColorDTO struct {
	Text       string `json:"text"`
	Background string `json:"background"`
}
