package order

import (
	"fmt"
	"slices"

	"github.com/rollashield/screenquote/internal/pricing"
)

// AddOpening appends a measured opening and returns its index.
func (o *Order) AddOpening(op Opening) int {
	o.Entries = append(o.Entries, &op)
	return len(o.Entries) - 1
}

// AddScreen prices op with sel and appends it as a configured screen. Nothing
// is appended when pricing fails.
func (o *Order) AddScreen(op Opening, sel pricing.Selection) (int, error) {
	c, err := configure(op, sel)
	if err != nil {
		return -1, err
	}
	o.Entries = append(o.Entries, c)
	return len(o.Entries) - 1, nil
}

// Remove deletes the entry at i. The entries slice is rebuilt, so copies of
// the order taken earlier keep their own entries.
func (o *Order) Remove(i int) error {
	if err := o.checkIndex(i); err != nil {
		return err
	}
	o.Entries = slices.Delete(slices.Clone(o.Entries), i, i+1)
	return nil
}

// Duplicate appends a deep copy of entry i, suffixing a set name with " (Copy)".
func (o *Order) Duplicate(i int) error {
	if err := o.checkIndex(i); err != nil {
		return err
	}
	dup := o.Entries[i].clone()
	switch v := dup.(type) {
	case *Opening:
		if v.ScreenName != "" {
			v.ScreenName += " (Copy)"
		}
	case *Configured:
		if v.Screen.ScreenName != "" {
			v.Screen.ScreenName += " (Copy)"
		}
	}
	o.Entries = append(o.Entries, dup)
	return nil
}

// Remeasure replaces the measured fields of entry i. A configured screen
// whose rounded size changes goes back to the opening phase, since its price
// bracket may no longer exist. At the same rounded size the new fields are
// merged into the screen, which keeps its product selection. The screen is
// priced again so installation and wiring follow the new fields; its materials
// price cannot change, since the rounded size and selection are the same.
func (o *Order) Remeasure(i int, updated Opening) error {
	if err := o.checkIndex(i); err != nil {
		return err
	}

	c, ok := o.Entries[i].(*Configured)
	if !ok {
		o.Entries[i] = &updated
		return nil
	}

	prev := c.Screen.Measurements
	if prev.Width.PricingSize != updated.Width.PricingSize || prev.Height.PricingSize != updated.Height.PricingSize {
		o.Entries[i] = &updated
		return nil
	}

	merged, err := configure(updated, c.Screen.Selection)
	if err != nil {
		// The bracket is unchanged, so this only happens if the tables did.
		o.Entries[i] = &updated
		return nil
	}
	o.Entries[i] = merged
	return nil
}

// Reconfigure re-prices entry i with a new selection, replacing any previous
// pricing wholesale. The entry is left untouched when pricing fails.
func (o *Order) Reconfigure(i int, sel pricing.Selection) error {
	if err := o.checkIndex(i); err != nil {
		return err
	}
	c, err := configure(o.Entries[i].Base(), sel)
	if err != nil {
		return fmt.Errorf("reconfigure %s: %w", o.DisplayName(i), err)
	}
	o.Entries[i] = c
	return nil
}

// BatchFailure is an opening that could not be priced in a bulk configure.
type BatchFailure struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Err   error  `json:"-"`
	Cause string `json:"error"`
}

// BatchResult reports a bulk configure. Failures stay in the opening phase.
type BatchResult struct {
	Configured []string       `json:"configured"`
	Failed     []BatchFailure `json:"failed"`
}

// ConfigureOpenings applies one shared selection to the openings at indices.
// Each opening keeps its own measurements and photos. Openings that cannot be
// priced are reported and left as openings; the rest are promoted. Indices
// that point at configured screens are skipped.
func (o *Order) ConfigureOpenings(indices []int, sel pricing.Selection) (BatchResult, error) {
	for _, i := range indices {
		if err := o.checkIndex(i); err != nil {
			return BatchResult{}, err
		}
	}

	result := BatchResult{Configured: []string{}, Failed: []BatchFailure{}}
	seen := make(map[int]bool, len(indices))
	for _, i := range indices {
		if seen[i] {
			continue
		}
		seen[i] = true

		opening, ok := o.Entries[i].(*Opening)
		if !ok {
			continue
		}
		c, err := configure(*opening, sel)
		if err != nil {
			result.Failed = append(result.Failed, BatchFailure{
				Index: i,
				Name:  o.DisplayName(i),
				Err:   err,
				Cause: err.Error(),
			})
			continue
		}
		o.Entries[i] = c
		result.Configured = append(result.Configured, o.DisplayName(i))
	}
	return result, nil
}
