package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rollashield/screenquote/internal/order"
	"github.com/rollashield/screenquote/internal/pricing"
	"github.com/rollashield/screenquote/internal/store"
)

// SampleQuoteID is the fixed id of the development sample quote.
const SampleQuoteID = "6f1f4a52-9d0e-4c59-8a0b-2f8e3c1d7a10"

// Stats contains seed operation counters.
type Stats struct {
	Inserts int
	Updates int
}

// Run seeds the development sample quote in an idempotent way. An existing
// sample is left alone, including any edits made to it.
func Run(ctx context.Context, quotes *store.Store) (Stats, error) {
	stats := Stats{}

	_, err := quotes.Get(ctx, SampleQuoteID)
	switch {
	case err == nil:
		return stats, nil
	case !errors.Is(err, store.ErrNotFound):
		return Stats{}, fmt.Errorf("check sample quote existence: %w", err)
	}

	q, err := sampleQuote()
	if err != nil {
		return Stats{}, err
	}
	if err := quotes.Save(ctx, &q); err != nil {
		return Stats{}, fmt.Errorf("insert sample quote: %w", err)
	}
	stats.Inserts++
	return stats, nil
}

func sampleQuote() (store.Quote, error) {
	remote, ok := pricing.LookupAccessory("gaposa-remote-5ch")
	if !ok {
		return store.Quote{}, errors.New("sample accessory gaposa-remote-5ch missing from catalog")
	}

	var o order.Order
	patio := order.Opening{
		ScreenName: "Back Patio",
		Measurements: pricing.Measurements{
			Width:               pricing.NewDimension(143, "3/8"),
			Height:              pricing.NewDimension(101, "1/4"),
			FrameColor:          "Bronze",
			IncludeInstallation: true,
			WiringDistance:      240,
		},
	}
	if _, err := o.AddScreen(patio, pricing.Selection{
		TrackType:    pricing.TrackZipper,
		OperatorType: pricing.OperatorGaposaRTS,
		FabricColor:  "Charcoal 95%",
		Accessories:  []pricing.Accessory{remote},
	}); err != nil {
		return store.Quote{}, fmt.Errorf("price sample patio screen: %w", err)
	}

	side := order.Opening{
		ScreenName: "Side Yard",
		Measurements: pricing.Measurements{
			Width:               pricing.NewDimension(118, ""),
			Height:              pricing.NewDimension(95, "7/8"),
			FrameColor:          "White",
			IncludeInstallation: true,
		},
	}
	if _, err := o.AddScreen(side, pricing.Selection{
		TrackType:             pricing.TrackCable,
		OperatorType:          pricing.OperatorGaposaSolar,
		FabricColor:           "Black 90%",
		InstallationGuarantee: true,
	}); err != nil {
		return store.Quote{}, fmt.Errorf("price sample side screen: %w", err)
	}

	o.MiscInstallLabel = "Remove existing awning"
	o.MiscInstallAmount = 150
	o.DiscountPercent = 5
	o.DiscountLabel = "Spring promotion"
	o.EnableComparison = true
	o.ComparisonMotor = pricing.OperatorGear

	return store.Quote{
		ID:          SampleQuoteID,
		QuoteNumber: "SAMPLE-0001",
		Customer: store.Customer{
			Name:    "Jordan Avery",
			Company: "Avery Residence",
			Address: "1200 E Camelback Rd, Phoenix, AZ 85014",
			Email:   "jordan.avery@example.com",
			Phone:   "(602) 555-0142",
		},
		SalesRep: store.SalesRep{
			Name:  "Morgan Lee",
			Email: "morgan.lee@example.com",
		},
		InternalComments: "Sample quote seeded for local development.",
		Order:            o,
	}, nil
}
