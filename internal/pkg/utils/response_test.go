package utils_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manzil-geoservice/internal/pkg/errors"
	"github.com/manzil-geoservice/internal/pkg/utils"
)

func TestSendError(t *testing.T) {
	newApp := func(err error) *fiber.App {
		app := fiber.New()
		app.Get("/", func(c *fiber.Ctx) error {
			return utils.SendError(c, err)
		})
		return app
	}

	t.Run("AppError отдаёт свой статус", func(t *testing.T) {
		app := newApp(errors.ErrMahallaNotFound)
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("обёрнутый AppError сохраняет статус", func(t *testing.T) {
		wrapped := fmt.Errorf("backfill mahalla ancestors: %w", errors.ErrMahallaNotFound)
		app := newApp(wrapped)
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("неизвестная ошибка становится 500", func(t *testing.T) {
		app := newApp(fmt.Errorf("connection reset"))
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
}
