package pricing

// AlternatePrice is a screen re-priced under a different operator.
type AlternatePrice struct {
	OperatorType   OperatorType `json:"operatorType"`
	MotorCost      float64      `json:"motorCost"`
	MaterialsPrice float64      `json:"materialsPrice"`
	WiringPrice    float64      `json:"wiringPrice"`
	CustomerPrice  float64      `json:"customerPrice"`
}

// PriceAlternate re-prices s with alt as its operator. Installation carries
// over unchanged; wiring is recomputed, so an alternate that cannot be wired
// carries none. A gear alternate drops every accessory since there is no
// motor to pair them with. Screens already on alt, and keder screens, pass
// through unchanged.
func PriceAlternate(s Screen, alt OperatorType) AlternatePrice {
	if s.OperatorType == alt || !s.TrackType.Allows(alt) {
		return AlternatePrice{
			OperatorType:   s.OperatorType,
			MotorCost:      s.MotorCost,
			MaterialsPrice: s.MaterialsPrice(),
			WiringPrice:    s.WiringPrice,
			CustomerPrice:  s.CustomerPrice,
		}
	}

	var accessories []Accessory
	if alt != OperatorGear {
		accessories = s.Accessories
	}
	acc := PriceAccessories(accessories, SunairDiscount, CustomerMarkup)

	materials := sunairMaterials(
		s.ScreenCostOnly+s.CableSurcharge,
		EffectiveMotorCost(alt, s.InstallationGuarantee),
		s.TrackDeduction,
		acc.Price,
	)
	wiring := Wiring(s.IncludeInstallation, alt, s.WiringDistance)
	return AlternatePrice{
		OperatorType:   alt,
		MotorCost:      alt.MotorCost(),
		MaterialsPrice: materials,
		WiringPrice:    wiring.Price,
		CustomerPrice:  materials + s.InstallationPrice + wiring.Price,
	}
}
