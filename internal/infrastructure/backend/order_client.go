// Package backend adaptador REST hacia el servicio de órdenes de compra y recepciones.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Carrelage-api/internal/domain"
	"github.com/jhoicas/Carrelage-api/internal/domain/entity"
	"github.com/jhoicas/Carrelage-api/internal/domain/purchasing"
)

// Verificar en tiempo de compilación que OrderClient implementa OrderService.
var _ purchasing.OrderService = (*OrderClient)(nil)

const (
	headerRequestID = "X-Request-ID"
	maxBodyBytes    = 1 << 20
	maxMessageRunes = 200
)

// Config parámetros del cliente. Token se envía como Bearer en cada llamada (vacío = sin cabecera).
type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// APIError respuesta no 2xx del backend.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend: HTTP %d: %s", e.StatusCode, e.Message)
}

// OrderClient implementa purchasing.OrderService sobre la API REST del backend.
// Usa net/http de la librería estándar.
type OrderClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewOrderClient construye el cliente. Un Timeout <= 0 usa 10 s.
func NewOrderClient(cfg Config, log zerolog.Logger) *OrderClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &OrderClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// GetByID GET /api/commandes/{id}. Un 404 se traduce a domain.ErrNotFound.
func (c *OrderClient) GetByID(ctx context.Context, orderID string) (*entity.PurchaseOrder, error) {
	status, body, err := c.do(ctx, http.MethodGet, c.orderPath(orderID), nil, nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, domain.ErrNotFound
	}
	if err := checkStatus(status, body); err != nil {
		return nil, err
	}
	return decodeOrder(body)
}

// UpdateStatus PUT /api/commandes/{id}/statut?statut=X. Si el backend no devuelve cuerpo
// el resultado es nil y el llamador conserva su copia de la orden.
func (c *OrderClient) UpdateStatus(ctx context.Context, orderID string, status entity.OrderStatus) (*entity.PurchaseOrder, error) {
	q := url.Values{}
	q.Set("statut", string(status))
	code, body, err := c.do(ctx, http.MethodPut, c.orderPath(orderID)+"/statut", q, nil)
	if err != nil {
		return nil, err
	}
	if err := checkStatus(code, body); err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}
	return decodeOrder(body)
}

// ConvertToReception POST /api/commandes/{id}/convertir-reception. La respuesta puede ser
// un objeto {"id": ...} o el ID a secas.
func (c *OrderClient) ConvertToReception(ctx context.Context, orderID string) (string, error) {
	code, body, err := c.do(ctx, http.MethodPost, c.orderPath(orderID)+"/convertir-reception", nil, []byte("{}"))
	if err != nil {
		return "", err
	}
	if err := checkStatus(code, body); err != nil {
		return "", err
	}
	rec := decodeReception(body, orderID)
	if rec.ID == "" {
		return "", fmt.Errorf("backend: respuesta de conversión sin ID de recepción")
	}
	if rec.Status != "" && !rec.Status.IsValid() {
		c.log.Warn().Str("reception_id", rec.ID).Str("statut", string(rec.Status)).Msg("estado de recepción desconocido")
	}
	return rec.ID, nil
}

// ── HTTP ──────────────────────────────────────────────────────────────────────

func (c *OrderClient) orderPath(orderID string) string {
	return "/api/commandes/" + url.PathEscape(orderID)
}

// do ejecuta la llamada y devuelve el código y el cuerpo; solo los fallos de transporte son error.
func (c *OrderClient) do(ctx context.Context, method, path string, query url.Values, payload []byte) (int, []byte, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("backend: crear HTTP request: %w", err)
	}
	requestID := RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.New().String()
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(headerRequestID, requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return 0, nil, fmt.Errorf("backend: timeout o cancelación: %w", ctx.Err())
		}
		return 0, nil, fmt.Errorf("backend: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return 0, nil, fmt.Errorf("backend: leer respuesta: %w", err)
	}
	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Str("request_id", requestID).
		Dur("latency", time.Since(start)).
		Msg("backend call")
	return resp.StatusCode, body, nil
}

// checkStatus convierte una respuesta no 2xx en *APIError con el mensaje del backend si lo hay.
func checkStatus(status int, body []byte) error {
	if status >= 200 && status < 300 {
		return nil
	}
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	msg := ""
	if err := json.Unmarshal(body, &payload); err == nil {
		msg = payload.Message
		if msg == "" {
			msg = payload.Error
		}
	}
	if msg == "" {
		msg = truncateRunes(strings.TrimSpace(string(body)), maxMessageRunes)
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &APIError{StatusCode: status, Message: msg}
}

// truncateRunes corta s a n runas como máximo, sin partir caracteres multibyte.
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// rawScalar "abc" → abc, 42 → 42; cualquier otro JSON no escalar → "".
func rawScalar(raw []byte) string {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" || strings.HasPrefix(s, "{") || strings.HasPrefix(s, "[") {
		return ""
	}
	var str string
	if err := json.Unmarshal([]byte(s), &str); err == nil {
		return str
	}
	return strings.Trim(s, `"`)
}
