package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/manzil-geoservice/internal/delivery/http/handler"
	"github.com/manzil-geoservice/internal/domain"
	"github.com/manzil-geoservice/internal/usecase"
)

// emptyHierarchyStub отдаёт пустую иерархию: любая валидная точка
// резолвится в пустую цепочку, хендлеру этого достаточно
type emptyHierarchyStub struct{}

func (emptyHierarchyStub) ListRegions(context.Context) ([]domain.Region, error) { return nil, nil }
func (emptyHierarchyStub) ListDistricts(context.Context, *int64) ([]domain.District, error) {
	return nil, nil
}
func (emptyHierarchyStub) ListMahallas(context.Context, domain.CountScope) ([]domain.Mahalla, error) {
	return nil, nil
}
func (emptyHierarchyStub) ListStreets(context.Context, domain.CountScope) ([]domain.Street, error) {
	return nil, nil
}
func (emptyHierarchyStub) ListRealEstate(context.Context, int64) ([]domain.RealEstate, error) {
	return nil, nil
}
func (emptyHierarchyStub) CountRegions(context.Context) (int, error) { return 0, nil }
func (emptyHierarchyStub) CountDistricts(context.Context, domain.CountScope) (int, error) {
	return 0, nil
}
func (emptyHierarchyStub) CountMahallas(context.Context, domain.CountScope) (int, error) {
	return 0, nil
}
func (emptyHierarchyStub) CountStreets(context.Context, domain.CountScope) (int, error) {
	return 0, nil
}
func (emptyHierarchyStub) CountRealEstate(context.Context, domain.CountScope) (int, error) {
	return 0, nil
}
func (emptyHierarchyStub) CountMahallasByDistricts(context.Context, []int64) (map[int64]int, error) {
	return nil, nil
}
func (emptyHierarchyStub) CountStreetsByDistricts(context.Context, []int64) (map[int64]int, error) {
	return nil, nil
}
func (emptyHierarchyStub) CountRealEstateByDistricts(context.Context, []int64) (map[int64]int, error) {
	return nil, nil
}
func (emptyHierarchyStub) GetRegionByID(context.Context, int64) (*domain.Region, error) {
	return nil, nil
}
func (emptyHierarchyStub) GetDistrictByID(context.Context, int64) (*domain.District, error) {
	return nil, nil
}
func (emptyHierarchyStub) GetMahallaWithAncestors(context.Context, int64) (*domain.MahallaAncestors, error) {
	return nil, nil
}
func (emptyHierarchyStub) GetStreetWithAncestors(context.Context, int64) (*domain.StreetAncestors, error) {
	return nil, nil
}
func (emptyHierarchyStub) SearchDashboard(context.Context, string, int) ([]domain.DashboardItem, error) {
	return nil, nil
}

func newResolveApp() *fiber.App {
	logger := zap.NewNop()
	resolveUC := usecase.NewResolveUseCase(emptyHierarchyStub{}, logger)
	h := handler.NewLocationHandler(resolveUC, logger)

	app := fiber.New()
	app.Get("/api/v1/resolve", h.ResolveGET)
	return app
}

func errorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))
	return payload.Error.Code
}

func TestLocationHandler_ResolveGET(t *testing.T) {
	app := newResolveApp()

	t.Run("валидные координаты резолвятся", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/resolve?lat=41.3&lng=69.2", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("отсутствующий lng отклоняется", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/resolve?lat=41.3", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_COORDINATES", errorCode(t, resp))
	})

	t.Run("нечисловые параметры отклоняются", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/resolve?lat=abc&lng=xyz", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_COORDINATES", errorCode(t, resp))
	})

	t.Run("координаты вне WGS84 отклоняются", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/resolve?lat=95&lng=69.2", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_COORDINATES", errorCode(t, resp))
	})
}
