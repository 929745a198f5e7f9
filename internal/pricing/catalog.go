package pricing

import "fmt"

// TrackType identifies the track system a screen is built on. Each track
// type owns exactly one PricingTable.
type TrackType string

const (
	TrackZipper TrackType = "sunair-zipper"
	TrackCable  TrackType = "sunair-cable"
	TrackKeder  TrackType = "fenetex-keder"
)

// OperatorType identifies how a screen is raised and lowered.
type OperatorType string

const (
	OperatorGear        OperatorType = "gear"
	OperatorGaposaRTS   OperatorType = "gaposa-rts"
	OperatorGaposaSolar OperatorType = "gaposa-solar"
	OperatorSomfyRTS    OperatorType = "somfy-rts"
)

// MotorBrand groups accessories that only work with one manufacturer's motors.
type MotorBrand string

const (
	BrandNone   MotorBrand = ""
	BrandGaposa MotorBrand = "gaposa"
	BrandSomfy  MotorBrand = "somfy"
)

// Pricing constants shared by every quote.
const (
	SunairDiscount = 0.20
	CustomerMarkup = 1.8
	FenetexMarkup  = 1.2
	CableSurcharge = 250.0

	InstallerShare = 0.70

	WiringCostPerInch  = 0.85
	WiringPricePerInch = 1.65

	// Installation tiers split at this rounded width.
	LargeScreenWidth = 12
)

var motorCosts = map[OperatorType]float64{
	OperatorGear:        0,
	OperatorGaposaRTS:   350,
	OperatorGaposaSolar: 565,
	OperatorSomfyRTS:    475,
}

// Dealer track deductions for no-track installs, by rounded height. Values are
// negative list amounts; SunairDiscount is applied before use.
var trackDeductions = map[int]float64{
	3:  -95,
	4:  -110,
	5:  -125,
	6:  -140,
	7:  -160,
	8:  -175,
	9:  -190,
	10: -210,
	11: -225,
	12: -240,
	13: -260,
	14: -275,
	15: -290,
	16: -310,
}

type installTier struct {
	large bool
	solar bool
}

var installationPricing = map[installTier]float64{
	{large: false, solar: false}: 350,
	{large: true, solar: false}:  495,
	{large: false, solar: true}:  395,
	{large: true, solar: true}:   545,
}

// ParseTrackType converts the wire value of a track type.
func ParseTrackType(raw string) (TrackType, error) {
	switch t := TrackType(raw); t {
	case TrackZipper, TrackCable, TrackKeder:
		return t, nil
	}
	return "", fmt.Errorf("unknown track type %q", raw)
}

// ParseOperatorType converts the wire value of an operator type.
func ParseOperatorType(raw string) (OperatorType, error) {
	switch o := OperatorType(raw); o {
	case OperatorGear, OperatorGaposaRTS, OperatorGaposaSolar, OperatorSomfyRTS:
		return o, nil
	}
	return "", fmt.Errorf("unknown operator type %q", raw)
}

// Operators lists the operators a track can be ordered with.
func (t TrackType) Operators() []OperatorType {
	switch t {
	case TrackZipper, TrackCable:
		return []OperatorType{OperatorGear, OperatorGaposaRTS, OperatorGaposaSolar, OperatorSomfyRTS}
	case TrackKeder:
		return []OperatorType{OperatorGaposaRTS}
	}
	return nil
}

// Allows reports whether op can be ordered on t.
func (t TrackType) Allows(op OperatorType) bool {
	for _, candidate := range t.Operators() {
		if candidate == op {
			return true
		}
	}
	return false
}

// SupportsNoTracks reports whether a no-track install can be ordered.
func (t TrackType) SupportsNoTracks() bool {
	return t == TrackZipper
}

// ClientName is the track label shown to customers, without the brand.
func (t TrackType) ClientName() string {
	switch t {
	case TrackZipper:
		return "Zipper Track"
	case TrackCable:
		return "Cable Track"
	case TrackKeder:
		return "Keder Track"
	}
	return string(t)
}

// MotorCost returns the dealer cost of the operator's motor; gear has none.
func (o OperatorType) MotorCost() float64 {
	return motorCosts[o]
}

// Brand returns the accessory family of the operator's motor.
func (o OperatorType) Brand() MotorBrand {
	switch o {
	case OperatorGaposaRTS, OperatorGaposaSolar:
		return BrandGaposa
	case OperatorSomfyRTS:
		return BrandSomfy
	}
	return BrandNone
}

// Solar reports whether the operator uses the solar installation tier.
func (o OperatorType) Solar() bool {
	return o == OperatorGaposaSolar
}

// WiringEligible reports whether the motor is hard-wired during installation.
func (o OperatorType) WiringEligible() bool {
	switch o {
	case OperatorGaposaRTS, OperatorSomfyRTS:
		return true
	}
	return false
}

// ClientName is the operator label shown to customers.
func (o OperatorType) ClientName() string {
	switch o {
	case OperatorGear:
		return "Manual Gear Operation"
	case OperatorGaposaRTS, OperatorSomfyRTS:
		return "Remote-Operated Motor"
	case OperatorGaposaSolar:
		return "Solar Motor"
	}
	return string(o)
}

// ComparisonOptions lists the operators a screen of this track and operator
// can be compared against.
func ComparisonOptions(track TrackType, current OperatorType) []OperatorType {
	if track == TrackKeder {
		return nil
	}
	options := make([]OperatorType, 0, 3)
	for _, op := range track.Operators() {
		if op != current {
			options = append(options, op)
		}
	}
	return options
}
