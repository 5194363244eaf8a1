package mailer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Samvel1-1/Electronics/internal/domain"
)

func TestRenderPurchase_LinePriceUsesDisplayRate(t *testing.T) {
	order := &domain.Order{
		ID:    "order-1",
		Email: "ann@example.com",
		Items: []domain.OrderItem{{Name: "Phone", Quantity: 2, UnitPrice: 5}},
		Total: "3900",
	}

	text, html := renderPurchase("Electronics Store", order)

	// 2 * 5 * 390 = 3900 in the rendered line; the totals row shows the
	// stored total verbatim, not a recomputation.
	require.Contains(t, text, "Phone")
	require.Contains(t, text, "3900")
	require.Contains(t, text, "Total: 3900")
	require.Contains(t, html, "<td>3900</td>")
	require.Contains(t, html, "<b>3900</b>")
}

func TestRenderPurchase_FractionalUnitPrice(t *testing.T) {
	order := &domain.Order{
		ID:    "order-2",
		Email: "ann@example.com",
		Items: []domain.OrderItem{{Name: "Cable", Quantity: 3, UnitPrice: 2.5}},
		Total: "2925",
	}

	text, _ := renderPurchase("Electronics Store", order)
	// 3 * 2.5 * 390 = 2925, with no float drift.
	require.Contains(t, text, "2925")
}

func TestRenderPurchase_LegacySingleProduct(t *testing.T) {
	order := &domain.Order{
		ID:          "order-3",
		Email:       "ann@example.com",
		ProductName: "Phone",
		Total:       "3900",
	}

	text, html := renderPurchase("Electronics Store", order)
	require.Contains(t, text, "You purchased Phone, total 3900.")
	require.NotContains(t, text, "Quantity")
	require.Contains(t, html, "<b>Phone</b>")
}

func TestRenderCancellation_AdminWordingDiffers(t *testing.T) {
	ownerText, _ := renderCancellation("Electronics Store", "order-1", "3900", false)
	adminText, _ := renderCancellation("Electronics Store", "order-1", "3900", true)

	require.Contains(t, ownerText, "as you requested")
	require.NotContains(t, ownerText, "administrator")
	require.Contains(t, adminText, "administrator")
	require.Contains(t, adminText, "order-1")
	require.Contains(t, adminText, "3900")
}

func TestNew_RejectsIncompleteCredentials(t *testing.T) {
	_, err := New(Config{
		Sender:   "shop@example.com",
		ClientID: "id",
		// client secret and refresh token missing
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "mail config incomplete")

	m, err := New(Config{
		Sender:       "shop@example.com",
		ShopName:     "Electronics Store",
		ClientID:     "id",
		ClientSecret: "secret",
		RefreshToken: "refresh",
	})
	require.NoError(t, err)
	require.Equal(t, "smtp.gmail.com", m.cfg.Host)
	require.Equal(t, 587, m.cfg.Port)
}
