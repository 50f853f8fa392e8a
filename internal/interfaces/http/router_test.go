package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	appinventory "github.com/jhoicas/Carrelage-api/internal/application/inventory"
	"github.com/jhoicas/Carrelage-api/internal/application/purchasing"
	"github.com/jhoicas/Carrelage-api/internal/domain"
	"github.com/jhoicas/Carrelage-api/internal/domain/entity"
	apphttp "github.com/jhoicas/Carrelage-api/internal/interfaces/http"
)

// ── dobles ────────────────────────────────────────────────────────────────────

type orderServiceMock struct {
	mock.Mock
}

func (m *orderServiceMock) GetByID(ctx context.Context, orderID string) (*entity.PurchaseOrder, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(*entity.PurchaseOrder)
	return o, args.Error(1)
}

func (m *orderServiceMock) UpdateStatus(ctx context.Context, orderID string, status entity.OrderStatus) (*entity.PurchaseOrder, error) {
	args := m.Called(ctx, orderID, status)
	o, _ := args.Get(0).(*entity.PurchaseOrder)
	return o, args.Error(1)
}

func (m *orderServiceMock) ConvertToReception(ctx context.Context, orderID string) (string, error) {
	args := m.Called(ctx, orderID)
	return args.String(0), args.Error(1)
}

type stockRepoStub struct {
	stocks []entity.Stock
}

func (r *stockRepoStub) GetStock(_ context.Context, id string) (*entity.Stock, error) {
	for i := range r.stocks {
		if r.stocks[i].ID == id {
			return &r.stocks[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stockRepoStub) ListStocks(_ context.Context, _ string, _, offset int) ([]entity.Stock, error) {
	if offset > 0 {
		return nil, nil
	}
	return r.stocks, nil
}

func (r *stockRepoStub) UpsertStockQuality(context.Context, string, entity.StockQuality) (string, error) {
	return "", nil
}

func buildAPI(svc *orderServiceMock, stocks []entity.Stock) *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		StockUC:   appinventory.NewStockQualityUseCase(&stockRepoStub{stocks: stocks}, nil, zerolog.Nop()),
		OrderUC:   purchasing.NewOrderUseCase(svc, zerolog.Nop()),
		JWTSecret: testJWTSecret,
		JWTIssuer: testIssuer,
		Logger:    zerolog.Nop(),
	})
	return app
}

func call(t *testing.T, app *fiber.App, method, path, role, body string) *http.Response {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if role != "" {
		req.Header.Set("Authorization", tokenForRole(t, role))
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}
