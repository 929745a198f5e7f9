package pricing

// Charge is a cost/price pair for one service line.
type Charge struct {
	Cost  float64
	Price float64
}

// Installation returns the flat installation charge for a screen. Only the
// solar motor uses the solar tier; gear and RTS screens use the RTS tier.
func Installation(include bool, width int, op OperatorType) Charge {
	if !include {
		return Charge{}
	}
	price := installationPricing[installTier{
		large: width >= LargeScreenWidth,
		solar: op.Solar(),
	}]
	return Charge{
		Cost:  price * InstallerShare,
		Price: price,
	}
}

// Wiring returns the hard-wiring charge for distanceInches of run. It applies
// only to installed screens with a wired remote motor.
func Wiring(includeInstallation bool, op OperatorType, distanceInches float64) Charge {
	if !includeInstallation || !op.WiringEligible() || distanceInches <= 0 {
		return Charge{}
	}
	return Charge{
		Cost:  distanceInches * WiringCostPerInch,
		Price: distanceInches * WiringPricePerInch,
	}
}
