package order

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rollashield/screenquote/internal/pricing"
)

// ErrIncompleteOrder is matched by every IncompleteOrderError.
var ErrIncompleteOrder = errors.New("incomplete order")

// IncompleteOrderError lists the openings that still need a product selection.
type IncompleteOrderError struct {
	Openings []string
}

func (e *IncompleteOrderError) Error() string {
	return "order has unconfigured openings: " + strings.Join(e.Openings, ", ")
}

func (e *IncompleteOrderError) Is(target error) bool {
	return target == ErrIncompleteOrder
}

// ProjectAccessory is an order-level line item such as a shared hub.
type ProjectAccessory struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitCost  float64 `json:"unitCost"`
	UnitPrice float64 `json:"unitPrice"`
}

// Price is quantity times unit price; a zero quantity bills nothing.
func (a ProjectAccessory) Price() float64 {
	return float64(a.Quantity) * a.UnitPrice
}

// Cost is quantity times unit cost.
func (a ProjectAccessory) Cost() float64 {
	return float64(a.Quantity) * a.UnitCost
}

// Order is the aggregate a quote is built from. Entry order is significant:
// the cable surcharge is charged on the first cable screen.
type Order struct {
	Entries            []Entry              `json:"-"`
	ProjectAccessories []ProjectAccessory   `json:"projectAccessories"`
	MiscInstallLabel   string               `json:"miscInstallLabel"`
	MiscInstallAmount  float64              `json:"miscInstallAmount"`
	DiscountPercent    float64              `json:"discountPercent"`
	DiscountLabel      string               `json:"discountLabel"`
	EnableComparison   bool                 `json:"enableComparison"`
	ComparisonMotor    pricing.OperatorType `json:"comparisonMotor,omitempty"`
}

// DisplayName is the entry's screen name, or "Screen N" when unnamed.
func (o *Order) DisplayName(i int) string {
	if i >= 0 && i < len(o.Entries) {
		if name := strings.TrimSpace(o.Entries[i].Base().ScreenName); name != "" {
			return name
		}
	}
	return fmt.Sprintf("Screen %d", i+1)
}

func (o *Order) checkIndex(i int) error {
	if i < 0 || i >= len(o.Entries) {
		return fmt.Errorf("screen index %d out of range (0..%d)", i, len(o.Entries)-1)
	}
	return nil
}

// Outstanding names every entry still in the opening phase.
func (o *Order) Outstanding() []string {
	var names []string
	for i, e := range o.Entries {
		if e.Phase() == PhaseOpening {
			names = append(names, o.DisplayName(i))
		}
	}
	return names
}

// Screens returns the priced screens in entry order, or an
// *IncompleteOrderError while any opening remains.
func (o *Order) Screens() ([]pricing.Screen, error) {
	if pending := o.Outstanding(); len(pending) > 0 {
		return nil, &IncompleteOrderError{Openings: pending}
	}
	screens := make([]pricing.Screen, 0, len(o.Entries))
	for _, e := range o.Entries {
		screens = append(screens, e.(*Configured).Screen)
	}
	return screens, nil
}
