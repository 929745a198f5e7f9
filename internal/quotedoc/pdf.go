package quotedoc

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	small     = props.Text{Size: 9}
	smallBold = props.Text{Size: 9, Style: fontstyle.Bold}
	amount    = props.Text{Size: 9, Align: align.Right}
	amountB   = props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}
)

// PDF renders the document as a PDF file.
func (d Document) PDF() ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(12,
		text.NewCol(8, "Screen Quote", props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
		text.NewCol(4, "No. "+d.QuoteNumber, props.Text{
			Size:  12,
			Style: fontstyle.Bold,
			Align: align.Right,
			Top:   3,
		}),
	)

	m.AddRow(12,
		col.New(6).Add(
			text.New("Date: "+d.Date.Format(dateLayout), props.Text{Top: 0}),
			text.New("Valid through: "+d.ValidThrough.Format(dateLayout), props.Text{Top: 4}),
		),
		col.New(6),
	)

	m.AddRow(30,
		col.New(6).Add(addressBlock("Prepared for",
			d.Customer.Name, d.Customer.Company, d.Customer.Address, d.Customer.Email, d.Customer.Phone)...),
		col.New(6).Add(addressBlock("Prepared by",
			d.SalesRep.Name, d.SalesRep.Email, d.SalesRep.Phone)...),
	)

	compare := d.Comparison != nil
	priceHeader := "Price"
	if compare {
		priceHeader = d.Comparison.Option1Label
	}

	m.AddRow(8,
		text.NewCol(3, "Screen", smallBold),
		text.NewCol(3, "Product", smallBold),
		text.NewCol(2, "Size (W x H)", smallBold),
		text.NewCol(2, priceHeader, amountB),
		comparisonHeader(d.Comparison),
	)

	for _, l := range d.Lines {
		compPrice := ""
		if l.ComparisonPrice != nil {
			compPrice = Money(*l.ComparisonPrice)
		}
		m.AddRow(12,
			col.New(3).Add(
				text.New(l.Name, smallBold),
				text.New(fmt.Sprintf("%s / %s", l.Fabric, l.Frame), props.Text{Size: 8, Top: 4}),
			),
			col.New(3).Add(
				text.New(l.Track, small),
				text.New(l.Operator, props.Text{Size: 8, Top: 4}),
			),
			text.NewCol(2, l.Width+" x "+l.Height, small),
			text.NewCol(2, Money(l.MaterialsPrice), amount),
			text.NewCol(2, compPrice, amount),
		)
	}

	p := d.Pricing
	totalRow(m, "Materials", Money(p.Materials), false)
	if p.DiscountPercent > 0 {
		totalRow(m, fmt.Sprintf("%s (%s%%)", p.DiscountLabel, trimPercent(p.DiscountPercent)), "-"+Money(p.DiscountAmount), false)
	}
	if p.Installation > 0 {
		totalRow(m, "Installation", Money(p.Installation), false)
	}
	if p.Wiring > 0 {
		totalRow(m, "Wiring", Money(p.Wiring), false)
	}
	if p.MiscInstall > 0 {
		label := p.MiscInstallLabel
		if label == "" {
			label = "Additional installation"
		}
		totalRow(m, label, Money(p.MiscInstall), false)
	}
	totalRow(m, "Subtotal", Money(p.Subtotal), false)
	totalRow(m, "Total", Money(p.Total), true)
	totalRow(m, "Deposit due (50%)", Money(p.Deposit), false)
	totalRow(m, "Balance on completion", Money(p.Balance), false)

	if compare {
		c := d.Comparison
		m.AddRow(12,
			text.NewCol(12, "With "+c.Option2Label, props.Text{
				Size:  12,
				Style: fontstyle.Bold,
				Top:   4,
			}),
		)
		totalRow(m, "Materials", Money(c.Materials), false)
		if c.DiscountAmount > 0 {
			totalRow(m, "Discount", "-"+Money(c.DiscountAmount), false)
		}
		totalRow(m, "Total", Money(c.Total), true)
		totalRow(m, "Deposit due (50%)", Money(c.Deposit), false)
		totalRow(m, "Balance on completion", Money(c.Balance), false)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate quote pdf: %w", err)
	}
	return doc.GetBytes(), nil
}

func comparisonHeader(c *Comparison) core.Col {
	if c == nil {
		return col.New(2)
	}
	return text.NewCol(2, c.Option2Label, amountB)
}

func addressBlock(title string, lines ...string) []core.Component {
	out := []core.Component{text.New(title, props.Text{Style: fontstyle.Bold})}
	top := 5.0
	for _, line := range lines {
		if line == "" {
			continue
		}
		out = append(out, text.New(line, props.Text{Size: 9, Top: top}))
		top += 4
	}
	return out
}

func totalRow(m core.Maroto, label, value string, bold bool) {
	labelProps, valueProps := small, amount
	if bold {
		labelProps, valueProps = smallBold, amountB
	}
	m.AddRow(6,
		col.New(7),
		text.NewCol(3, label, labelProps),
		text.NewCol(2, value, valueProps),
	)
}
