package order

import "github.com/rollashield/screenquote/internal/pricing"

// Totals are the order-level figures of a complete order.
type Totals struct {
	TotalCost              float64 `json:"orderTotalCost"`
	MaterialsPrice         float64 `json:"orderTotalMaterialsPrice"`
	InstallationPrice      float64 `json:"orderTotalInstallationPrice"`
	InstallationCost       float64 `json:"orderTotalInstallationCost"`
	WiringPrice            float64 `json:"orderTotalWiringPrice"`
	WiringCost             float64 `json:"orderTotalWiringCost"`
	MiscInstallLabel       string  `json:"miscInstallLabel"`
	MiscInstallAmount      float64 `json:"miscInstallAmount"`
	MiscInstallCost        float64 `json:"miscInstallCost"`
	DiscountPercent        float64 `json:"discountPercent"`
	DiscountLabel          string  `json:"discountLabel"`
	DiscountAmount         float64 `json:"discountAmount"`
	DiscountedMaterials    float64 `json:"discountedMaterialsPrice"`
	OrderTotalPrice        float64 `json:"orderTotalPrice"`
	TotalProfit            float64 `json:"totalProfit"`
	MarginPercent          float64 `json:"marginPercent"`
	HasCableScreen         bool    `json:"hasCableScreen"`
	TotalCableSurcharge    float64 `json:"totalCableSurcharge"`
	TotalScreenCosts       float64 `json:"totalScreenCosts"`
	TotalMotorCosts        float64 `json:"totalMotorCosts"`
	TotalAccessoriesCosts  float64 `json:"totalAccessoriesCosts"`
	TotalGuaranteeDiscount float64 `json:"totalGuaranteeDiscount"`

	Comparison *ComparisonTotals `json:"comparison,omitempty"`
}

// ComparisonTotals are the order totals under one alternate operator.
type ComparisonTotals struct {
	Motor               pricing.OperatorType `json:"comparisonMotor"`
	Screens             []ComparisonLine     `json:"screens"`
	MaterialsPrice      float64              `json:"comparisonTotalMaterialsPrice"`
	DiscountAmount      float64              `json:"comparisonDiscountAmount"`
	DiscountedMaterials float64              `json:"comparisonDiscountedMaterialsPrice"`
	WiringPrice         float64              `json:"comparisonWiringPrice"`
	TotalPrice          float64              `json:"comparisonTotalPrice"`
}

// ComparisonLine is one screen's price under the comparison operator.
type ComparisonLine struct {
	Name string `json:"name"`
	pricing.AlternatePrice
}

// Aggregate totals a complete order. It refuses with *IncompleteOrderError
// while any opening remains.
//
// Screens are visited in entry order. Per-screen cable surcharges are
// replaced by a single surcharge charged on the first cable screen, so an
// order pays CableSurcharge once however many cable screens it holds. The
// discount applies to materials only, never to installation, wiring, or the
// misc install line.
func Aggregate(o Order) (Totals, error) {
	screens, err := o.Screens()
	if err != nil {
		return Totals{}, err
	}

	t := Totals{
		MiscInstallLabel:  o.MiscInstallLabel,
		MiscInstallAmount: o.MiscInstallAmount,
		DiscountPercent:   o.DiscountPercent,
		DiscountLabel:     o.DiscountLabel,
	}
	if t.DiscountLabel == "" {
		t.DiscountLabel = "Discount"
	}

	compare := o.EnableComparison && o.ComparisonMotor != ""
	var comp ComparisonTotals

	for i, s := range screens {
		surcharge := s.CableSurcharge * pricing.CustomerMarkup
		materials := s.MaterialsPrice() - surcharge
		cost := s.TotalCost - s.CableSurcharge
		var orderSurcharge float64

		if s.TrackType == pricing.TrackCable && !t.HasCableScreen {
			t.HasCableScreen = true
			t.TotalCableSurcharge += pricing.CableSurcharge
			cost += pricing.CableSurcharge
			orderSurcharge = pricing.CableSurcharge * pricing.CustomerMarkup
		}

		t.TotalCost += cost
		t.MaterialsPrice += materials + orderSurcharge
		t.InstallationPrice += s.InstallationPrice
		t.InstallationCost += s.InstallationCost
		t.WiringPrice += s.WiringPrice
		t.WiringCost += s.WiringCost

		t.TotalScreenCosts += s.ScreenCostOnly
		t.TotalMotorCosts += s.MotorCost
		t.TotalAccessoriesCosts += s.AccessoriesCost
		t.TotalGuaranteeDiscount += s.GuaranteeDiscount

		if compare {
			alt := pricing.PriceAlternate(s, o.ComparisonMotor)
			comp.Screens = append(comp.Screens, ComparisonLine{Name: o.DisplayName(i), AlternatePrice: alt})
			comp.MaterialsPrice += alt.MaterialsPrice - surcharge + orderSurcharge
			comp.WiringPrice += alt.WiringPrice
		}
	}

	for _, acc := range o.ProjectAccessories {
		t.MaterialsPrice += acc.Price()
		t.TotalCost += acc.Cost()
		comp.MaterialsPrice += acc.Price()
	}

	t.MiscInstallCost = o.MiscInstallAmount * pricing.InstallerShare
	t.InstallationCost += t.MiscInstallCost

	t.DiscountAmount = t.MaterialsPrice * o.DiscountPercent / 100
	t.DiscountedMaterials = t.MaterialsPrice - t.DiscountAmount
	services := t.InstallationPrice + t.WiringPrice + o.MiscInstallAmount
	t.OrderTotalPrice = t.DiscountedMaterials + services

	t.TotalProfit = t.OrderTotalPrice - t.TotalCost - t.InstallationCost - t.WiringCost
	if t.OrderTotalPrice != 0 {
		t.MarginPercent = t.TotalProfit / t.OrderTotalPrice * 100
	}

	if compare {
		comp.Motor = o.ComparisonMotor
		comp.DiscountAmount = comp.MaterialsPrice * o.DiscountPercent / 100
		comp.DiscountedMaterials = comp.MaterialsPrice - comp.DiscountAmount
		comp.TotalPrice = comp.DiscountedMaterials + t.InstallationPrice + comp.WiringPrice + o.MiscInstallAmount
		t.Comparison = &comp
	}

	return t, nil
}
