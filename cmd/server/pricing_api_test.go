package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rollashield/screenquote/internal/order"
	"github.com/rollashield/screenquote/internal/pricing"
)

func TestPriceScreen(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.do(t, http.MethodPost, "/api/screens/price", map[string]any{
		"screenName":    "Patio",
		"widthInches":   120,
		"widthFraction": "1/2",
		"heightInches":  96,
		"trackType":     "sunair-zipper",
		"operatorType":  "gaposa-rts",
		"accessories":   []string{"gaposa-remote-1ch"},
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	screen := decodeBody[pricing.Screen](t, rr)
	assert.Equal(t, 10, screen.Width.PricingSize)
	assert.Equal(t, 8, screen.Height.PricingSize)
	assert.Len(t, screen.Accessories, 1)
	assert.Greater(t, screen.CustomerPrice, screen.TotalCost)
}

func TestPriceScreen_NoPricingAtSize(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.do(t, http.MethodPost, "/api/screens/price", map[string]any{
		"widthInches":  480,
		"heightInches": 96,
		"trackType":    "sunair-cable",
		"operatorType": "gear",
	})
	require.Equal(t, http.StatusUnprocessableEntity, rr.Code, rr.Body.String())
	assert.Contains(t, rr.Body.String(), "no pricing available")

	rr = ts.do(t, http.MethodGet, "/metrics", nil)
	assert.Contains(t, rr.Body.String(), `screenquote_pricing_misses_total{track="sunair-cable"} 1`)
}

func TestPriceScreen_RejectsBadInput(t *testing.T) {
	ts := newTestServer(t)

	cases := []struct {
		name string
		body map[string]any
	}{
		{"unknown track", map[string]any{"widthInches": 120, "heightInches": 96, "trackType": "vinyl", "operatorType": "gear"}},
		{"unknown operator", map[string]any{"widthInches": 120, "heightInches": 96, "trackType": "sunair-zipper", "operatorType": "crank"}},
		{"zero width", map[string]any{"widthInches": 0, "heightInches": 96, "trackType": "sunair-zipper", "operatorType": "gear"}},
		{"accessory on gear", map[string]any{"widthInches": 120, "heightInches": 96, "trackType": "sunair-zipper", "operatorType": "gear", "accessories": []string{"gaposa-remote-1ch"}}},
		{"unknown field", map[string]any{"widthInches": 120, "heightInches": 96, "trackType": "sunair-zipper", "operatorType": "gear", "color": "red"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := ts.do(t, http.MethodPost, "/api/screens/price", tc.body)
			assert.Equal(t, http.StatusBadRequest, rr.Code, rr.Body.String())
		})
	}
}

func TestTrackLimits(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/tracks/sunair-cable/limits", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("track", "sunair-cable")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	rr := httptest.NewRecorder()
	ts.handleTrackLimits(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	limits := decodeBody[pricing.Limits](t, rr)
	assert.Equal(t, pricing.Limits{MaxWidth: 22, MaxHeight: 14}, limits)

	rr = ts.do(t, http.MethodGet, "/api/tracks/vinyl/limits", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAccessories(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.do(t, http.MethodGet, "/api/operators/gaposa-solar/accessories", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	accessories := decodeBody[[]pricing.Accessory](t, rr)
	ids := make([]string, 0, len(accessories))
	for _, acc := range accessories {
		ids = append(ids, acc.ID)
	}
	assert.Contains(t, ids, "gaposa-solar-ext")

	rr = ts.do(t, http.MethodGet, "/api/operators/gear/accessories", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, decodeBody[[]pricing.Accessory](t, rr))
}

func TestAggregate(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.do(t, http.MethodPost, "/api/orders/aggregate", map[string]any{
		"screens": []any{
			zipperScreen("Patio", 120, 96, "gaposa-rts"),
			zipperScreen("", 108, 96, "gear"),
		},
		"discountPercent":   10,
		"miscInstallAmount": 100,
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	totals := decodeBody[order.Totals](t, rr)
	assert.InDelta(t, totals.DiscountedMaterials+totals.InstallationPrice+totals.WiringPrice+100, totals.OrderTotalPrice, 1e-9)
	assert.InDelta(t, 70, totals.MiscInstallCost, 1e-9)
}

func TestAggregate_IncompleteOrder(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.do(t, http.MethodPost, "/api/orders/aggregate", map[string]any{
		"screens": []any{
			zipperScreen("Patio", 120, 96, "gear"),
			openingOnly("Side Yard", 108, 96),
		},
	})
	require.Equal(t, http.StatusConflict, rr.Code, rr.Body.String())

	resp := decodeBody[errorResponse](t, rr)
	assert.Equal(t, []string{"Side Yard"}, resp.Openings)
}

func TestAggregate_RejectsBadDiscount(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.do(t, http.MethodPost, "/api/orders/aggregate", map[string]any{
		"screens":         []any{zipperScreen("Patio", 120, 96, "gear")},
		"discountPercent": 120,
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestConfigure_PartialFailure(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.do(t, http.MethodPost, "/api/orders/configure", map[string]any{
		"order": map[string]any{
			"screens": []any{
				openingOnly("Patio", 120, 96),
				openingOnly("Huge", 480, 96),
			},
		},
		"indices": []int{0, 1},
		"selection": map[string]any{
			"trackType":    "sunair-zipper",
			"operatorType": "somfy-rts",
		},
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	resp := decodeBody[configureResponse](t, rr)

	assert.Equal(t, []string{"Patio"}, resp.Result.Configured)
	require.Len(t, resp.Result.Failed, 1)
	assert.Equal(t, "Huge", resp.Result.Failed[0].Name)
	require.Len(t, resp.Order.Entries, 2)
	assert.Equal(t, order.PhaseConfigured, resp.Order.Entries[0].Phase())
	assert.Equal(t, order.PhaseOpening, resp.Order.Entries[1].Phase())

	rr = ts.do(t, http.MethodPost, "/api/orders/configure", map[string]any{
		"order":     map[string]any{"screens": []any{openingOnly("Patio", 120, 96)}},
		"indices":   []int{4},
		"selection": map[string]any{"trackType": "sunair-zipper", "operatorType": "gear"},
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t)
	ts.do(t, http.MethodPost, "/api/screens/price", map[string]any{
		"widthInches": 120, "heightInches": 96, "trackType": "sunair-zipper", "operatorType": "gear",
	})

	rr := ts.do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `screenquote_screens_priced_total{operator="gear",track="sunair-zipper"} 1`)
}
