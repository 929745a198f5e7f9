package metrics

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rollashield/screenquote/internal/order"
	"github.com/rollashield/screenquote/internal/pricing"
)

// Recorder counts pricing engine activity on its own registry.
type Recorder struct {
	registry         *prometheus.Registry
	screensPriced    *prometheus.CounterVec
	pricingMisses    *prometheus.CounterVec
	ordersAggregated prometheus.Counter
	incompleteOrders prometheus.Counter
	quotesSaved      prometheus.Counter
}

// New registers the screenquote collectors plus the Go runtime collectors.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		screensPriced: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "screenquote",
			Name:      "screens_priced_total",
			Help:      "Screens priced, by track and operator.",
		}, []string{"track", "operator"}),
		pricingMisses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "screenquote",
			Name:      "pricing_misses_total",
			Help:      "Pricing requests with no table entry at the rounded size, by track.",
		}, []string{"track"}),
		ordersAggregated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "screenquote",
			Name:      "orders_aggregated_total",
			Help:      "Complete orders totalled.",
		}),
		incompleteOrders: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "screenquote",
			Name:      "incomplete_orders_total",
			Help:      "Totals or documents refused because openings remain.",
		}),
		quotesSaved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "screenquote",
			Name:      "quotes_saved_total",
			Help:      "Quotes created or updated.",
		}),
	}
	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.screensPriced,
		r.pricingMisses,
		r.ordersAggregated,
		r.incompleteOrders,
		r.quotesSaved,
	)
	return r
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// ObservePricing records the outcome of one PriceScreen call.
func (r *Recorder) ObservePricing(track pricing.TrackType, op pricing.OperatorType, err error) {
	if r == nil {
		return
	}
	if err != nil {
		if errors.Is(err, pricing.ErrNoPricingAtSize) {
			r.pricingMisses.WithLabelValues(string(track)).Inc()
		}
		return
	}
	r.screensPriced.WithLabelValues(string(track), string(op)).Inc()
}

// ObserveAggregate records the outcome of one Aggregate call.
func (r *Recorder) ObserveAggregate(err error) {
	if r == nil {
		return
	}
	switch {
	case err == nil:
		r.ordersAggregated.Inc()
	case errors.Is(err, order.ErrIncompleteOrder):
		r.incompleteOrders.Inc()
	}
}

// QuoteSaved counts a stored quote.
func (r *Recorder) QuoteSaved() {
	if r == nil {
		return
	}
	r.quotesSaved.Inc()
}
