package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rollashield/screenquote/internal/order"
	"github.com/rollashield/screenquote/internal/pricing"
)

func TestObservePricing(t *testing.T) {
	r := New()

	r.ObservePricing(pricing.TrackZipper, pricing.OperatorGear, nil)
	r.ObservePricing(pricing.TrackZipper, pricing.OperatorGear, nil)
	miss := &pricing.NoPricingAtSizeError{Track: pricing.TrackCable, Width: 30, Height: 8}
	r.ObservePricing(pricing.TrackCable, pricing.OperatorGear, miss)
	r.ObservePricing(pricing.TrackCable, pricing.OperatorGear, errors.New("boom"))

	assert.Equal(t, 2.0, testutil.ToFloat64(r.screensPriced.WithLabelValues("sunair-zipper", "gear")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.pricingMisses.WithLabelValues("sunair-cable")))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.screensPriced.WithLabelValues("sunair-cable", "gear")))
}

func TestObserveAggregate(t *testing.T) {
	r := New()

	r.ObserveAggregate(nil)
	r.ObserveAggregate(&order.IncompleteOrderError{Openings: []string{"Patio"}})

	assert.Equal(t, 1.0, testutil.ToFloat64(r.ordersAggregated))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.incompleteOrders))
}

func TestNilRecorderIsSafe(t *testing.T) {
	var r *Recorder
	r.ObservePricing(pricing.TrackZipper, pricing.OperatorGear, nil)
	r.ObserveAggregate(nil)
	r.QuoteSaved()
}

func TestHandlerExposesCounters(t *testing.T) {
	r := New()
	r.QuoteSaved()

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "screenquote_quotes_saved_total 1"))
}
