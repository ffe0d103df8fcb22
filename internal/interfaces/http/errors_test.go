package http

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestistock/wms-api/internal/application/dto"
	"github.com/gestistock/wms-api/internal/domain"
)

func TestWriteErrorMapsDomainErrors(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"quantité invalide", domain.ErrInvalidQuantity, fiber.StatusBadRequest, "QUANTITE_INVALIDE"},
		{"emplacement requis", domain.ErrMissingLocation, fiber.StatusBadRequest, "EMPLACEMENT_REQUIS"},
		{"transfert invalide", domain.ErrInvalidTransfer, fiber.StatusBadRequest, "TRANSFERT_INVALIDE"},
		{"entrée invalide", domain.ErrInvalidInput, fiber.StatusBadRequest, "ENTREE_INVALIDE"},
		{"introuvable", domain.ErrNotFound, fiber.StatusNotFound, "INTROUVABLE"},
		{"mauvais emplacement", domain.ErrLocationMismatch, fiber.StatusNotFound, "EMPLACEMENT_INCONNU"},
		{"stock insuffisant", domain.ErrInsufficientStock, fiber.StatusConflict, "STOCK_INSUFFISANT"},
		{"doublon", domain.ErrDuplicate, fiber.StatusConflict, "DOUBLON"},
		{"inconnue", fmt.Errorf("panne quelconque"), fiber.StatusInternalServerError, "INTERNE"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			// L'erreur arrive enrichie, comme depuis les cas d'usage.
			wrapped := fmt.Errorf("%w: contexte", tc.err)
			app.Get("/err", func(c *fiber.Ctx) error {
				return writeError(c, wrapped)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/err", nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tc.wantStatus, resp.StatusCode)
			var body dto.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tc.wantCode, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}
