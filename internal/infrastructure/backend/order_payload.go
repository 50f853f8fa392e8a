package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Carrelage-api/internal/domain/entity"
)

// ── Estructuras del protocolo del backend (campos en francés) ─────────────────

type commandePayload struct {
	ID                  flexID         `json:"id"`
	Reference           string         `json:"reference"`
	FournisseurID       flexID         `json:"fournisseurId"`
	FournisseurNom      string         `json:"fournisseurNom"`
	EntrepotID          flexID         `json:"entrepotId"`
	Statut              string         `json:"statut"`
	DateCommande        string         `json:"dateCommande"`
	DateLivraisonPrevue string         `json:"dateLivraisonPrevue"`
	Lignes              []lignePayload `json:"lignes"`
	CreatedAt           string         `json:"createdAt"`
	UpdatedAt           string         `json:"updatedAt"`
}

type lignePayload struct {
	ProduitID          flexID           `json:"produitId"`
	ProduitDesignation string           `json:"produitDesignation"`
	Qualite            string           `json:"qualite"`
	Quantite           decimal.Decimal  `json:"quantite"`
	PrixUnitaire       *decimal.Decimal `json:"prixUnitaire"`
}

// flexID identificador que el backend envía como número o como cadena.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	*f = flexID(rawScalar(b))
	return nil
}

var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

func decodeOrder(body []byte) (*entity.PurchaseOrder, error) {
	var p commandePayload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("backend: deserializar orden: %w", err)
	}
	return p.toEntity(), nil
}

func (p commandePayload) toEntity() *entity.PurchaseOrder {
	o := &entity.PurchaseOrder{
		ID:           string(p.ID),
		Reference:    p.Reference,
		SupplierID:   string(p.FournisseurID),
		SupplierName: p.FournisseurNom,
		WarehouseID:  string(p.EntrepotID),
		Status:       entity.OrderStatus(strings.ToUpper(strings.TrimSpace(p.Statut))),
		ExpectedDate: parseDate(p.DateLivraisonPrevue),
		Lines:        make([]entity.OrderLine, 0, len(p.Lignes)),
	}
	if d := parseDate(p.DateCommande); d != nil {
		o.OrderDate = *d
	}
	if d := parseDate(p.CreatedAt); d != nil {
		o.CreatedAt = *d
	}
	if d := parseDate(p.UpdatedAt); d != nil {
		o.UpdatedAt = *d
	}
	for _, l := range p.Lignes {
		line := entity.OrderLine{
			ProductID:          string(l.ProduitID),
			ProductDescription: l.ProduitDesignation,
			Quality:            entity.Quality(l.Qualite),
			Quantity:           l.Quantite,
			UnitPrice:          decimal.Zero,
		}
		if l.PrixUnitaire != nil {
			line.UnitPrice = *l.PrixUnitaire
		}
		o.Lines = append(o.Lines, line)
	}
	return o
}

// receptionPayload respuesta de /convertir-reception cuando el backend devuelve el objeto completo.
type receptionPayload struct {
	ID            flexID `json:"id"`
	CommandeID    flexID `json:"commandeId"`
	EntrepotID    flexID `json:"entrepotId"`
	Statut        string `json:"statut"`
	DateReception string `json:"dateReception"`
}

// decodeReception acepta un objeto {"id": ...} o el ID a secas.
// Sin commandeId en la respuesta se usa la orden de origen.
func decodeReception(body []byte, orderID string) entity.Reception {
	trimmed := bytes.TrimSpace(body)
	var p receptionPayload
	if err := json.Unmarshal(trimmed, &p); err != nil || p.ID == "" {
		return entity.Reception{ID: rawScalar(trimmed), OrderID: orderID}
	}
	rec := entity.Reception{
		ID:          string(p.ID),
		OrderID:     string(p.CommandeID),
		WarehouseID: string(p.EntrepotID),
		Status:      entity.ReceptionStatus(strings.ToUpper(strings.TrimSpace(p.Statut))),
		ReceivedAt:  parseDate(p.DateReception),
	}
	if rec.OrderID == "" {
		rec.OrderID = orderID
	}
	return rec
}

// parseDate acepta RFC 3339, fecha-hora local o solo fecha; vacío o inválido → nil.
func parseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
