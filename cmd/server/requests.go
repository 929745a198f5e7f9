package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"

	"github.com/rollashield/screenquote/internal/order"
	"github.com/rollashield/screenquote/internal/pricing"
	"github.com/rollashield/screenquote/internal/store"
)

const maxBodyBytes = 1 << 20

// validationError is a malformed request; it maps to 400.
type validationError struct {
	msg string
}

func (e *validationError) Error() string { return e.msg }

func invalidf(format string, args ...any) error {
	return &validationError{msg: fmt.Sprintf(format, args...)}
}

// openingRequest carries the measured fields of one opening.
type openingRequest struct {
	ScreenName          string   `json:"screenName"`
	WidthInches         float64  `json:"widthInches"`
	WidthFraction       string   `json:"widthFraction"`
	HeightInches        float64  `json:"heightInches"`
	HeightFraction      string   `json:"heightFraction"`
	FrameColor          string   `json:"frameColor"`
	IncludeInstallation bool     `json:"includeInstallation"`
	WiringDistance      float64  `json:"wiringDistance"`
	Photos              []string `json:"photos"`
}

// selectionRequest is a product selection by catalog id.
type selectionRequest struct {
	TrackType             string   `json:"trackType"`
	OperatorType          string   `json:"operatorType"`
	FabricColor           string   `json:"fabricColor"`
	NoTracks              bool     `json:"noTracks"`
	InstallationGuarantee bool     `json:"installationGuarantee"`
	Accessories           []string `json:"accessories"`
}

// screenRequest is one order entry. A nil selection keeps it an opening.
type screenRequest struct {
	openingRequest
	Selection *selectionRequest `json:"selection"`
}

type priceScreenRequest struct {
	openingRequest
	selectionRequest
}

type orderRequest struct {
	Screens            []screenRequest          `json:"screens"`
	ProjectAccessories []order.ProjectAccessory `json:"projectAccessories"`
	MiscInstallLabel   string                   `json:"miscInstallLabel"`
	MiscInstallAmount  float64                  `json:"miscInstallAmount"`
	DiscountPercent    float64                  `json:"discountPercent"`
	DiscountLabel      string                   `json:"discountLabel"`
	EnableComparison   bool                     `json:"enableComparison"`
	ComparisonMotor    string                   `json:"comparisonMotor"`
}

type configureRequest struct {
	Order     orderRequest     `json:"order"`
	Indices   []int            `json:"indices"`
	Selection selectionRequest `json:"selection"`
}

type quoteRequest struct {
	QuoteNumber      string         `json:"quoteNumber"`
	Customer         store.Customer `json:"customer"`
	SalesRep         store.SalesRep `json:"salesRep"`
	InternalComments string         `json:"internalComments"`
	Order            orderRequest   `json:"order"`
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return invalidf("invalid JSON body: %v", err)
	}
	return nil
}

func (req openingRequest) toOpening() (order.Opening, error) {
	if err := checkPositive(req.WidthInches, "widthInches"); err != nil {
		return order.Opening{}, err
	}
	if err := checkPositive(req.HeightInches, "heightInches"); err != nil {
		return order.Opening{}, err
	}
	if err := checkNonNegative(req.WiringDistance, "wiringDistance"); err != nil {
		return order.Opening{}, err
	}

	return order.Opening{
		ScreenName: strings.TrimSpace(req.ScreenName),
		Measurements: pricing.Measurements{
			Width:               pricing.NewDimension(req.WidthInches, req.WidthFraction),
			Height:              pricing.NewDimension(req.HeightInches, req.HeightFraction),
			FrameColor:          strings.TrimSpace(req.FrameColor),
			IncludeInstallation: req.IncludeInstallation,
			WiringDistance:      req.WiringDistance,
		},
		Photos: req.Photos,
	}, nil
}

func (req selectionRequest) toSelection() (pricing.Selection, error) {
	track, err := pricing.ParseTrackType(req.TrackType)
	if err != nil {
		return pricing.Selection{}, &validationError{msg: err.Error()}
	}
	op, err := pricing.ParseOperatorType(req.OperatorType)
	if err != nil {
		return pricing.Selection{}, &validationError{msg: err.Error()}
	}

	sel := pricing.Selection{
		TrackType:             track,
		OperatorType:          op,
		FabricColor:           strings.TrimSpace(req.FabricColor),
		NoTracks:              req.NoTracks,
		InstallationGuarantee: req.InstallationGuarantee,
	}.Normalize()

	available := make(map[string]bool)
	for _, acc := range pricing.AvailableAccessories(sel.OperatorType) {
		available[acc.ID] = true
	}
	for _, id := range req.Accessories {
		acc, ok := pricing.LookupAccessory(id)
		if !ok {
			return pricing.Selection{}, invalidf("unknown accessory %q", id)
		}
		if !available[id] {
			return pricing.Selection{}, invalidf("accessory %q is not offered for operator %s", id, sel.OperatorType)
		}
		sel.Accessories = append(sel.Accessories, acc)
	}
	return sel, nil
}

// toOrder builds an order from req. Configured entries are priced here, so
// every price in the result is derived from the request's inputs.
func (req orderRequest) toOrder() (order.Order, error) {
	o := order.Order{
		ProjectAccessories: req.ProjectAccessories,
		MiscInstallLabel:   strings.TrimSpace(req.MiscInstallLabel),
		MiscInstallAmount:  req.MiscInstallAmount,
		DiscountPercent:    req.DiscountPercent,
		DiscountLabel:      strings.TrimSpace(req.DiscountLabel),
		EnableComparison:   req.EnableComparison,
	}

	if err := checkNonNegative(req.MiscInstallAmount, "miscInstallAmount"); err != nil {
		return order.Order{}, err
	}
	if err := checkPercent(req.DiscountPercent, "discountPercent"); err != nil {
		return order.Order{}, err
	}
	for i, acc := range req.ProjectAccessories {
		if strings.TrimSpace(acc.Name) == "" {
			return order.Order{}, invalidf("projectAccessories[%d].name is required", i)
		}
		if err := checkNonNegative(float64(acc.Quantity), fmt.Sprintf("projectAccessories[%d].quantity", i)); err != nil {
			return order.Order{}, err
		}
		if err := checkNonNegative(acc.UnitCost, fmt.Sprintf("projectAccessories[%d].unitCost", i)); err != nil {
			return order.Order{}, err
		}
		if err := checkNonNegative(acc.UnitPrice, fmt.Sprintf("projectAccessories[%d].unitPrice", i)); err != nil {
			return order.Order{}, err
		}
	}
	if req.ComparisonMotor != "" {
		op, err := pricing.ParseOperatorType(req.ComparisonMotor)
		if err != nil {
			return order.Order{}, &validationError{msg: err.Error()}
		}
		o.ComparisonMotor = op
	}

	for i, s := range req.Screens {
		opening, err := s.toOpening()
		if err != nil {
			return order.Order{}, fmt.Errorf("screens[%d]: %w", i, err)
		}
		if s.Selection == nil {
			o.AddOpening(opening)
			continue
		}
		sel, err := s.Selection.toSelection()
		if err != nil {
			return order.Order{}, fmt.Errorf("screens[%d]: %w", i, err)
		}
		if _, err := o.AddScreen(opening, sel); err != nil {
			name := opening.ScreenName
			if name == "" {
				name = fmt.Sprintf("Screen %d", i+1)
			}
			return order.Order{}, fmt.Errorf("price %s: %w", name, err)
		}
	}
	if err := checkComparisonMotor(o); err != nil {
		return order.Order{}, err
	}
	return o, nil
}

// checkComparisonMotor rejects a comparison motor that none of the order's
// configured screens can be re-priced under. Orders with no configured screen
// yet are accepted.
func checkComparisonMotor(o order.Order) error {
	if o.ComparisonMotor == "" {
		return nil
	}
	configured := false
	for _, e := range o.Entries {
		c, ok := e.(*order.Configured)
		if !ok {
			continue
		}
		configured = true
		if slices.Contains(pricing.ComparisonOptions(c.Screen.TrackType, c.Screen.OperatorType), o.ComparisonMotor) {
			return nil
		}
	}
	if !configured {
		return nil
	}
	return invalidf("comparisonMotor %s is not an alternative for any screen in the order", o.ComparisonMotor)
}

func (req quoteRequest) toQuote(id string) (store.Quote, error) {
	o, err := req.Order.toOrder()
	if err != nil {
		return store.Quote{}, err
	}
	return store.Quote{
		ID:               id,
		QuoteNumber:      strings.TrimSpace(req.QuoteNumber),
		Customer:         req.Customer,
		SalesRep:         req.SalesRep,
		InternalComments: req.InternalComments,
		Order:            o,
	}, nil
}

func checkNonNegative(value float64, field string) error {
	if value < 0 {
		return invalidf("%s must be greater than or equal to 0", field)
	}
	return nil
}

func checkPercent(value float64, field string) error {
	if err := checkNonNegative(value, field); err != nil {
		return err
	}
	if value > 100 {
		return invalidf("%s must be between 0 and 100", field)
	}
	return nil
}

func checkPositive(value float64, field string) error {
	if value <= 0 {
		return invalidf("%s must be greater than 0", field)
	}
	return nil
}

func isValidation(err error) bool {
	var v *validationError
	return errors.As(err, &v)
}
