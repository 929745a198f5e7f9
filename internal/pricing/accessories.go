package pricing

// Accessory is an add-on sold with a motorized screen. Accessories with
// NeedsMarkup carry a dealer cost; the rest are already at customer price.
type Accessory struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Cost        float64 `json:"cost"`
	NeedsMarkup bool    `json:"needsMarkup"`
}

const solarExtensionID = "gaposa-solar-ext"

var accessoryCatalog = map[MotorBrand][]Accessory{
	BrandGaposa: {
		{ID: "gaposa-remote-1ch", Name: "Gaposa 1-Channel Remote", Cost: 68, NeedsMarkup: true},
		{ID: "gaposa-remote-5ch", Name: "Gaposa 5-Channel Remote", Cost: 96, NeedsMarkup: true},
		{ID: "gaposa-wall-switch", Name: "Gaposa Wireless Wall Switch", Cost: 54, NeedsMarkup: true},
		{ID: solarExtensionID, Name: "Gaposa Solar Panel Extension Cord", Cost: 42, NeedsMarkup: true},
		{ID: "gaposa-smart-hub", Name: "Gaposa Smart Home Hub", Cost: 249, NeedsMarkup: false},
	},
	BrandSomfy: {
		{ID: "somfy-situo-1", Name: "Somfy Situo 1 Remote", Cost: 88, NeedsMarkup: true},
		{ID: "somfy-situo-5", Name: "Somfy Situo 5 Remote", Cost: 124, NeedsMarkup: true},
		{ID: "somfy-telis-wall", Name: "Somfy Telis Wall Switch", Cost: 112, NeedsMarkup: true},
		{ID: "somfy-tahoma", Name: "Somfy TaHoma Switch", Cost: 299, NeedsMarkup: false},
	},
}

// AvailableAccessories lists the accessories offered for an operator. Gear
// screens have no motor and therefore no accessories.
func AvailableAccessories(op OperatorType) []Accessory {
	list := accessoryCatalog[op.Brand()]
	out := make([]Accessory, 0, len(list))
	for _, acc := range list {
		if acc.ID == solarExtensionID && !op.Solar() {
			continue
		}
		out = append(out, acc)
	}
	return out
}

// LookupAccessory resolves a catalog id.
func LookupAccessory(id string) (Accessory, bool) {
	for _, list := range accessoryCatalog {
		for _, acc := range list {
			if acc.ID == id {
				return acc, true
			}
		}
	}
	return Accessory{}, false
}

// AccessoryTotals keeps cost and price apart: cost feeds margin reporting,
// price feeds the customer total.
type AccessoryTotals struct {
	Cost  float64
	Price float64
}

// AccessoryPrice is the customer price of one accessory.
func AccessoryPrice(acc Accessory, discount, markup float64) float64 {
	if !acc.NeedsMarkup {
		return acc.Cost
	}
	return acc.Cost * (1 - discount) * markup
}

// PriceAccessories totals a selection. discount is a fraction (0.2 for 20%).
func PriceAccessories(selected []Accessory, discount, markup float64) AccessoryTotals {
	var totals AccessoryTotals
	for _, acc := range selected {
		totals.Cost += acc.Cost
		totals.Price += AccessoryPrice(acc, discount, markup)
	}
	return totals
}
