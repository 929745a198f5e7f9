package quotedoc

import (
	"fmt"
	"strings"
	"time"

	"github.com/gosimple/slug"

	"github.com/rollashield/screenquote/internal/order"
	"github.com/rollashield/screenquote/internal/store"
)

// ValidFor is how long a quote's prices are honored.
const ValidFor = 30 * 24 * time.Hour

const dateLayout = "January 2, 2006"

// Line is one screen as the customer sees it.
type Line struct {
	Name            string   `json:"name"`
	Track           string   `json:"track"`
	Operator        string   `json:"operator"`
	Fabric          string   `json:"fabric"`
	Frame           string   `json:"frame"`
	Width           string   `json:"width"`
	Height          string   `json:"height"`
	MaterialsPrice  float64  `json:"materialsPrice"`
	ComparisonPrice *float64 `json:"comparisonPrice,omitempty"`
}

// Pricing is the customer-facing price summary. Tax is not charged.
type Pricing struct {
	Materials           float64 `json:"materials"`
	DiscountLabel       string  `json:"discountLabel"`
	DiscountPercent     float64 `json:"discountPercent"`
	DiscountAmount      float64 `json:"discountAmount"`
	DiscountedMaterials float64 `json:"discountedMaterials"`
	Installation        float64 `json:"installation"`
	Wiring              float64 `json:"wiring"`
	MiscInstallLabel    string  `json:"miscInstallLabel"`
	MiscInstall         float64 `json:"miscInstall"`
	Subtotal            float64 `json:"subtotal"`
	Total               float64 `json:"total"`
	Deposit             float64 `json:"deposit"`
	Balance             float64 `json:"balance"`
}

// Comparison prices the same order under the alternate operator.
type Comparison struct {
	Option1Label   string  `json:"option1Label"`
	Option2Label   string  `json:"option2Label"`
	Materials      float64 `json:"materials"`
	DiscountAmount float64 `json:"discountAmount"`
	Subtotal       float64 `json:"subtotal"`
	Total          float64 `json:"total"`
	Deposit        float64 `json:"deposit"`
	Balance        float64 `json:"balance"`
}

// Document is the customer-facing quote.
type Document struct {
	QuoteNumber  string         `json:"quoteNumber"`
	Date         time.Time      `json:"date"`
	ValidThrough time.Time      `json:"validThrough"`
	Customer     store.Customer `json:"customer"`
	SalesRep     store.SalesRep `json:"salesRep"`
	Lines        []Line         `json:"screens"`
	Pricing      Pricing        `json:"pricing"`
	Comparison   *Comparison    `json:"comparisonPricing,omitempty"`
}

// Build assembles the document for q as of now. It refuses with
// *order.IncompleteOrderError while any opening remains.
func Build(q store.Quote, now time.Time) (Document, error) {
	screens, err := q.Order.Screens()
	if err != nil {
		return Document{}, err
	}
	totals, err := order.Aggregate(q.Order)
	if err != nil {
		return Document{}, err
	}

	doc := Document{
		QuoteNumber:  strings.TrimSpace(q.QuoteNumber),
		Date:         now,
		ValidThrough: now.Add(ValidFor),
		Customer:     q.Customer,
		SalesRep:     q.SalesRep,
		Lines:        make([]Line, 0, len(screens)),
	}
	if doc.QuoteNumber == "" {
		doc.QuoteNumber = "DRAFT"
	}

	for i, s := range screens {
		line := Line{
			Name:           q.Order.DisplayName(i),
			Track:          s.TrackType.ClientName(),
			Operator:       s.OperatorType.ClientName(),
			Fabric:         s.FabricColor,
			Frame:          s.FrameColor,
			Width:          s.Width.Display,
			Height:         s.Height.Display,
			MaterialsPrice: s.MaterialsPrice(),
		}
		if totals.Comparison != nil {
			price := totals.Comparison.Screens[i].MaterialsPrice
			line.ComparisonPrice = &price
		}
		doc.Lines = append(doc.Lines, line)
	}

	services := totals.InstallationPrice + totals.WiringPrice + totals.MiscInstallAmount
	doc.Pricing = Pricing{
		Materials:           totals.MaterialsPrice,
		DiscountLabel:       totals.DiscountLabel,
		DiscountPercent:     totals.DiscountPercent,
		DiscountAmount:      totals.DiscountAmount,
		DiscountedMaterials: totals.DiscountedMaterials,
		Installation:        totals.InstallationPrice,
		Wiring:              totals.WiringPrice,
		MiscInstallLabel:    totals.MiscInstallLabel,
		MiscInstall:         totals.MiscInstallAmount,
		Subtotal:            totals.DiscountedMaterials + services,
		Total:               totals.OrderTotalPrice,
	}
	doc.Pricing.Deposit, doc.Pricing.Balance = half(doc.Pricing.Total)

	if c := totals.Comparison; c != nil {
		option1 := "Option 1"
		if len(screens) > 0 {
			option1 = screens[0].OperatorType.ClientName()
		}
		comp := &Comparison{
			Option1Label:   option1,
			Option2Label:   c.Motor.ClientName(),
			Materials:      c.MaterialsPrice,
			DiscountAmount: c.DiscountAmount,
			Subtotal:       c.DiscountedMaterials + totals.InstallationPrice + c.WiringPrice + totals.MiscInstallAmount,
			Total:          c.TotalPrice,
		}
		comp.Deposit, comp.Balance = half(comp.Total)
		doc.Comparison = comp
	}

	return doc, nil
}

// Filename is the download name for the document's PDF.
func (d Document) Filename() string {
	name := slug.Make(strings.Join([]string{"quote", d.QuoteNumber, d.Customer.Name}, " "))
	return name + ".pdf"
}

// Text renders the document as plain text.
func (d Document) Text() string {
	var b strings.Builder

	fmt.Fprintf(&b, "QUOTE %s\n", d.QuoteNumber)
	fmt.Fprintf(&b, "Date: %s\n", d.Date.Format(dateLayout))
	fmt.Fprintf(&b, "Valid through: %s\n\n", d.ValidThrough.Format(dateLayout))

	b.WriteString("Prepared for:\n")
	writeNonEmpty(&b, d.Customer.Name, d.Customer.Company, d.Customer.Address, d.Customer.Email, d.Customer.Phone)
	b.WriteString("\nPrepared by:\n")
	writeNonEmpty(&b, d.SalesRep.Name, d.SalesRep.Email, d.SalesRep.Phone)

	b.WriteString("\nSCREENS\n")
	for _, l := range d.Lines {
		fmt.Fprintf(&b, "- %s: %s x %s, %s, %s\n", l.Name, l.Width, l.Height, l.Track, l.Operator)
		if l.Fabric != "" || l.Frame != "" {
			fmt.Fprintf(&b, "  Fabric: %s  Frame: %s\n", l.Fabric, l.Frame)
		}
		if l.ComparisonPrice != nil {
			fmt.Fprintf(&b, "  %s / %s\n", Money(l.MaterialsPrice), Money(*l.ComparisonPrice))
		} else {
			fmt.Fprintf(&b, "  %s\n", Money(l.MaterialsPrice))
		}
	}

	p := d.Pricing
	b.WriteString("\nPRICING\n")
	fmt.Fprintf(&b, "Materials: %s\n", Money(p.Materials))
	if p.DiscountPercent > 0 {
		fmt.Fprintf(&b, "%s (%s%%): -%s\n", p.DiscountLabel, trimPercent(p.DiscountPercent), Money(p.DiscountAmount))
	}
	if p.Installation > 0 {
		fmt.Fprintf(&b, "Installation: %s\n", Money(p.Installation))
	}
	if p.Wiring > 0 {
		fmt.Fprintf(&b, "Wiring: %s\n", Money(p.Wiring))
	}
	if p.MiscInstall > 0 {
		label := p.MiscInstallLabel
		if label == "" {
			label = "Additional installation"
		}
		fmt.Fprintf(&b, "%s: %s\n", label, Money(p.MiscInstall))
	}
	fmt.Fprintf(&b, "Subtotal: %s\n", Money(p.Subtotal))
	fmt.Fprintf(&b, "Total: %s\n", Money(p.Total))
	fmt.Fprintf(&b, "Deposit due (50%%): %s\n", Money(p.Deposit))
	fmt.Fprintf(&b, "Balance on completion: %s\n", Money(p.Balance))

	if c := d.Comparison; c != nil {
		fmt.Fprintf(&b, "\nCOMPARISON: %s vs %s\n", c.Option1Label, c.Option2Label)
		fmt.Fprintf(&b, "Materials: %s\n", Money(c.Materials))
		if c.DiscountAmount > 0 {
			fmt.Fprintf(&b, "Discount: -%s\n", Money(c.DiscountAmount))
		}
		fmt.Fprintf(&b, "Total: %s\n", Money(c.Total))
		fmt.Fprintf(&b, "Deposit due (50%%): %s\n", Money(c.Deposit))
		fmt.Fprintf(&b, "Balance on completion: %s\n", Money(c.Balance))
	}

	return b.String()
}

func writeNonEmpty(b *strings.Builder, values ...string) {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			b.WriteString("  " + v + "\n")
		}
	}
}

func trimPercent(p float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", p), "0"), ".")
}
