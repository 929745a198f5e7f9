package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/rollashield/screenquote/internal/metrics"
	"github.com/rollashield/screenquote/internal/order"
	"github.com/rollashield/screenquote/internal/pricing"
	"github.com/rollashield/screenquote/internal/quotedoc"
	"github.com/rollashield/screenquote/internal/store"
)

type server struct {
	quotes  *store.Store
	log     *zap.Logger
	metrics *metrics.Recorder
	now     func() time.Time
}

func newServer(quotes *store.Store, log *zap.Logger, rec *metrics.Recorder) *server {
	if log == nil {
		log = zap.NewNop()
	}
	return &server{quotes: quotes, log: log, metrics: rec, now: time.Now}
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	if s.metrics != nil {
		r.Handle("/metrics", s.metrics.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Post("/screens/price", s.handlePriceScreen)
		r.Get("/tracks/{track}/limits", s.handleTrackLimits)
		r.Get("/operators/{operator}/accessories", s.handleAccessories)
		r.Post("/orders/aggregate", s.handleAggregate)
		r.Post("/orders/configure", s.handleConfigure)

		r.Get("/quotes", s.handleQuotesList)
		r.Post("/quotes", s.handleQuoteCreate)
		r.Get("/quotes/{id}", s.handleQuoteGet)
		r.Put("/quotes/{id}", s.handleQuoteUpdate)
		r.Delete("/quotes/{id}", s.handleQuoteDelete)
		r.Get("/quotes/{id}/text", s.handleQuoteText)
		r.Get("/quotes/{id}/pdf", s.handleQuotePDF)
	})
	return r
}

func (s *server) handlePriceScreen(w http.ResponseWriter, r *http.Request) {
	var req priceScreenRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	opening, err := req.toOpening()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	sel, err := req.toSelection()
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	screen, err := pricing.PriceScreen(pricing.ScreenConfig{
		ScreenName:   opening.ScreenName,
		Measurements: opening.Measurements,
		Selection:    sel,
	})
	s.metrics.ObservePricing(sel.TrackType, sel.OperatorType, err)
	if err != nil {
		s.writeError(w, r, err,
			zap.String("track", string(sel.TrackType)),
			zap.Int("width", opening.Width.PricingSize),
			zap.Int("height", opening.Height.PricingSize),
		)
		return
	}
	writeJSON(w, http.StatusOK, screen)
}

func (s *server) handleTrackLimits(w http.ResponseWriter, r *http.Request) {
	track, err := pricing.ParseTrackType(chi.URLParam(r, "track"))
	if err != nil {
		s.writeError(w, r, &validationError{msg: err.Error()})
		return
	}
	limits, _ := pricing.TrackLimits(track)
	writeJSON(w, http.StatusOK, limits)
}

func (s *server) handleAccessories(w http.ResponseWriter, r *http.Request) {
	op, err := pricing.ParseOperatorType(chi.URLParam(r, "operator"))
	if err != nil {
		s.writeError(w, r, &validationError{msg: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, pricing.AvailableAccessories(op))
}

func (s *server) handleAggregate(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	o, err := req.toOrder()
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	totals, err := order.Aggregate(o)
	s.metrics.ObserveAggregate(err)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, totals)
}

type configureResponse struct {
	Order  order.Order       `json:"order"`
	Result order.BatchResult `json:"result"`
}

func (s *server) handleConfigure(w http.ResponseWriter, r *http.Request) {
	var req configureRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	o, err := req.Order.toOrder()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	sel, err := req.Selection.toSelection()
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := o.ConfigureOpenings(req.Indices, sel)
	if err != nil {
		s.writeError(w, r, &validationError{msg: err.Error()})
		return
	}
	for _, f := range result.Failed {
		s.metrics.ObservePricing(sel.TrackType, sel.OperatorType, f.Err)
	}
	for range result.Configured {
		s.metrics.ObservePricing(sel.TrackType, sel.OperatorType, nil)
	}
	writeJSON(w, http.StatusOK, configureResponse{Order: o, Result: result})
}

func (s *server) handleQuotesList(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	quotes, err := s.quotes.List(r.Context(), query)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, quotes)
}

func (s *server) handleQuoteCreate(w http.ResponseWriter, r *http.Request) {
	s.saveQuote(w, r, "", http.StatusCreated)
}

func (s *server) handleQuoteUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := s.quotes.Get(r.Context(), id); err != nil {
		s.writeError(w, r, err, zap.String("quote_id", id))
		return
	}
	s.saveQuote(w, r, id, http.StatusOK)
}

func (s *server) saveQuote(w http.ResponseWriter, r *http.Request, id string, status int) {
	var req quoteRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	q, err := req.toQuote(id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.quotes.Save(r.Context(), &q); err != nil {
		s.writeError(w, r, err, zap.String("quote_id", id))
		return
	}
	s.metrics.QuoteSaved()
	s.log.Info("quote saved",
		zap.String("quote_id", q.ID),
		zap.Int("screens", len(q.Order.Entries)),
		zap.Bool("complete", q.Totals != nil),
	)
	writeJSON(w, status, q)
}

func (s *server) handleQuoteGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	q, err := s.quotes.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err, zap.String("quote_id", id))
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (s *server) handleQuoteDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.quotes.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err, zap.String("quote_id", id))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *server) handleQuoteText(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.quoteDocument(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(doc.Text()))
}

func (s *server) handleQuotePDF(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.quoteDocument(w, r)
	if !ok {
		return
	}
	data, err := doc.PDF()
	if err != nil {
		s.writeError(w, r, err, zap.String("quote_number", doc.QuoteNumber))
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+doc.Filename()+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *server) quoteDocument(w http.ResponseWriter, r *http.Request) (quotedoc.Document, bool) {
	id := chi.URLParam(r, "id")
	q, err := s.quotes.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err, zap.String("quote_id", id))
		return quotedoc.Document{}, false
	}
	doc, err := quotedoc.Build(q, s.now())
	if err != nil {
		s.metrics.ObserveAggregate(err)
		s.writeError(w, r, err, zap.String("quote_id", id))
		return quotedoc.Document{}, false
	}
	return doc, true
}

type errorResponse struct {
	Error    string   `json:"error"`
	Openings []string `json:"openings,omitempty"`
}

func errorStatus(err error) int {
	switch {
	case isValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, pricing.ErrNoPricingAtSize):
		return http.StatusUnprocessableEntity
	case errors.Is(err, order.ErrIncompleteOrder):
		return http.StatusConflict
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func (s *server) writeError(w http.ResponseWriter, r *http.Request, err error, fields ...zap.Field) {
	status := errorStatus(err)
	resp := errorResponse{Error: err.Error()}

	var incomplete *order.IncompleteOrderError
	if errors.As(err, &incomplete) {
		resp.Openings = incomplete.Openings
	}

	fields = append(fields,
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.String("request_id", middleware.GetReqID(r.Context())),
		zap.Int("status", status),
		zap.Error(err),
	)
	if status >= http.StatusInternalServerError {
		s.log.Error("request failed", fields...)
		resp.Error = http.StatusText(status)
	} else {
		s.log.Info("request rejected", fields...)
	}
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
