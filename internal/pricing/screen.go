package pricing

// Measurements are the per-opening inputs recorded on site.
type Measurements struct {
	Width               Dimension `json:"width"`
	Height              Dimension `json:"height"`
	FrameColor          string    `json:"frameColor"`
	IncludeInstallation bool      `json:"includeInstallation"`
	// WiringDistance is the wire run in inches from the motor to power.
	WiringDistance float64 `json:"wiringDistance"`
}

// Selection is the product choice that can be shared by many openings.
type Selection struct {
	TrackType    TrackType    `json:"trackType"`
	OperatorType OperatorType `json:"operatorType"`
	FabricColor  string       `json:"fabricColor"`
	NoTracks     bool         `json:"noTracks"`
	// InstallationGuarantee prices a solar motor at the RTS motor's price.
	InstallationGuarantee bool        `json:"installationGuarantee"`
	Accessories           []Accessory `json:"accessories"`
}

// ScreenConfig is everything PriceScreen needs for one screen.
type ScreenConfig struct {
	ScreenName string `json:"screenName,omitempty"`
	Measurements
	Selection
}

// Screen is a priced screen. Every currency field is derived from the
// embedded configuration and the package constants.
type Screen struct {
	ScreenConfig

	IsFenetex         bool    `json:"isFenetex"`
	ScreenCostOnly    float64 `json:"screenCostOnly"`
	MotorCost         float64 `json:"motorCost"`
	CableSurcharge    float64 `json:"cableSurcharge"`
	TrackDeduction    float64 `json:"trackDeduction"`
	BaseCost          float64 `json:"baseCost"`
	AccessoriesCost   float64 `json:"accessoriesCost"`
	AccessoriesPrice  float64 `json:"accessoriesPrice"`
	TotalCost         float64 `json:"totalCost"`
	InstallationCost  float64 `json:"installationCost"`
	InstallationPrice float64 `json:"installationPrice"`
	WiringCost        float64 `json:"wiringCost"`
	WiringPrice       float64 `json:"wiringPrice"`
	CustomerPrice     float64 `json:"customerPrice"`
	GuaranteeDiscount float64 `json:"guaranteeDiscount"`
}

// MaterialsPrice is the customer price without installation and wiring.
func (s Screen) MaterialsPrice() float64 {
	return s.CustomerPrice - s.InstallationPrice - s.WiringPrice
}

// Normalize applies the catalog rules to a selection: keder ships only with
// its bundled RTS motor and only zipper track supports a no-track install.
func (sel Selection) Normalize() Selection {
	if sel.TrackType == TrackKeder {
		sel.OperatorType = OperatorGaposaRTS
	}
	if !sel.TrackType.SupportsNoTracks() {
		sel.NoTracks = false
	}
	return sel
}

// PriceScreen prices one screen. The only failure is a size missing from the
// track's table, returned as *NoPricingAtSizeError.
func PriceScreen(cfg ScreenConfig) (Screen, error) {
	cfg.Selection = cfg.Selection.Normalize()
	width := cfg.Width.PricingSize
	height := cfg.Height.PricingSize

	raw, err := LookupCost(cfg.TrackType, width, height)
	if err != nil {
		return Screen{}, err
	}

	s := Screen{ScreenConfig: cfg}
	acc := PriceAccessories(cfg.Accessories, SunairDiscount, CustomerMarkup)
	s.AccessoriesCost = acc.Cost
	s.AccessoriesPrice = acc.Price

	if cfg.TrackType == TrackKeder {
		// Priced as a markup over the equivalent zipper screen with an RTS
		// motor; the keder matrix value is only the dealer cost.
		zipperRaw, err := LookupCost(TrackZipper, width, height)
		if err != nil {
			return Screen{}, err
		}
		equivalent := zipperRaw * (1 - SunairDiscount)

		s.IsFenetex = true
		s.ScreenCostOnly = raw
		s.BaseCost = raw
		s.CustomerPrice = (equivalent+OperatorGaposaRTS.MotorCost())*CustomerMarkup*FenetexMarkup + acc.Price
	} else {
		s.ScreenCostOnly = raw * (1 - SunairDiscount)
		if cfg.TrackType == TrackCable {
			s.CableSurcharge = CableSurcharge
		}
		s.MotorCost = cfg.OperatorType.MotorCost()
		if cfg.NoTracks {
			s.TrackDeduction = trackDeductions[height] * (1 - SunairDiscount)
		}
		s.BaseCost = s.ScreenCostOnly + s.CableSurcharge + s.MotorCost + s.TrackDeduction

		effective := EffectiveMotorCost(cfg.OperatorType, cfg.InstallationGuarantee)
		s.GuaranteeDiscount = (s.MotorCost - effective) * CustomerMarkup
		s.CustomerPrice = sunairMaterials(s.BaseCost-s.MotorCost-s.TrackDeduction, effective, s.TrackDeduction, acc.Price)
	}

	s.TotalCost = s.BaseCost + s.AccessoriesCost

	install := Installation(cfg.IncludeInstallation, width, cfg.OperatorType)
	wiring := Wiring(cfg.IncludeInstallation, cfg.OperatorType, cfg.WiringDistance)
	s.InstallationCost = install.Cost
	s.InstallationPrice = install.Price
	s.WiringCost = wiring.Cost
	s.WiringPrice = wiring.Price
	s.CustomerPrice += install.Price + wiring.Price

	return s, nil
}

// EffectiveMotorCost is the motor cost used for customer pricing. Under the
// installation guarantee a solar motor is sold at the RTS motor's price.
func EffectiveMotorCost(op OperatorType, guarantee bool) float64 {
	if guarantee && op.Solar() {
		return OperatorGaposaRTS.MotorCost()
	}
	return op.MotorCost()
}

// sunairMaterials marks up the screen and motor; the track deduction and the
// accessory prices pass through as-is.
func sunairMaterials(screenCost, motorCost, trackDeduction, accessoriesPrice float64) float64 {
	return screenCost*CustomerMarkup + motorCost*CustomerMarkup + trackDeduction + accessoriesPrice
}
