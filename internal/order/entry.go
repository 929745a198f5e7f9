package order

import (
	"encoding/json"
	"fmt"

	"github.com/rollashield/screenquote/internal/pricing"
)

// Phase is the lifecycle state of an order entry.
type Phase string

const (
	PhaseOpening    Phase = "opening"
	PhaseConfigured Phase = "configured"
)

// Entry is either an *Opening (measured only) or a *Configured screen.
type Entry interface {
	Phase() Phase
	// Base returns the measured opening underneath the entry.
	Base() Opening
	clone() Entry
}

// Opening is a measured location with no product selected yet.
type Opening struct {
	ScreenName string `json:"screenName,omitempty"`
	pricing.Measurements
	Photos []string `json:"photos,omitempty"`
}

func (o *Opening) Phase() Phase { return PhaseOpening }

func (o *Opening) Base() Opening { return *o }

func (o *Opening) clone() Entry {
	c := *o
	c.Photos = append([]string(nil), o.Photos...)
	return &c
}

// Configured is an opening with a product selection and computed pricing.
type Configured struct {
	Screen pricing.Screen `json:"screen"`
	Photos []string       `json:"photos,omitempty"`
}

func (c *Configured) Phase() Phase { return PhaseConfigured }

func (c *Configured) Base() Opening {
	return Opening{
		ScreenName:   c.Screen.ScreenName,
		Measurements: c.Screen.Measurements,
		Photos:       c.Photos,
	}
}

func (c *Configured) clone() Entry {
	out := *c
	out.Photos = append([]string(nil), c.Photos...)
	out.Screen.Accessories = append([]pricing.Accessory(nil), c.Screen.Accessories...)
	return &out
}

// configure prices the opening with sel.
func configure(o Opening, sel pricing.Selection) (*Configured, error) {
	screen, err := pricing.PriceScreen(pricing.ScreenConfig{
		ScreenName:   o.ScreenName,
		Measurements: o.Measurements,
		Selection:    sel,
	})
	if err != nil {
		return nil, err
	}
	return &Configured{Screen: screen, Photos: o.Photos}, nil
}

type entryJSON struct {
	Phase      Phase       `json:"phase"`
	Opening    *Opening    `json:"opening,omitempty"`
	Configured *Configured `json:"configured,omitempty"`
}

func marshalEntry(e Entry) entryJSON {
	switch v := e.(type) {
	case *Opening:
		return entryJSON{Phase: PhaseOpening, Opening: v}
	case *Configured:
		return entryJSON{Phase: PhaseConfigured, Configured: v}
	}
	return entryJSON{}
}

func (w entryJSON) entry() (Entry, error) {
	switch w.Phase {
	case PhaseOpening:
		if w.Opening == nil {
			return nil, fmt.Errorf("opening entry has no opening payload")
		}
		return w.Opening, nil
	case PhaseConfigured:
		if w.Configured == nil {
			return nil, fmt.Errorf("configured entry has no screen payload")
		}
		return w.Configured, nil
	}
	return nil, fmt.Errorf("unknown entry phase %q", w.Phase)
}

// MarshalJSON writes entries as {"phase": ..., "opening"|"configured": ...}.
func (o Order) MarshalJSON() ([]byte, error) {
	type plain Order
	entries := make([]entryJSON, 0, len(o.Entries))
	for _, e := range o.Entries {
		entries = append(entries, marshalEntry(e))
	}
	return json.Marshal(struct {
		plain
		Screens []entryJSON `json:"screens"`
	}{plain: plain(o), Screens: entries})
}

func (o *Order) UnmarshalJSON(data []byte) error {
	type plain Order
	var raw struct {
		plain
		Screens []entryJSON `json:"screens"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*o = Order(raw.plain)
	o.Entries = make([]Entry, 0, len(raw.Screens))
	for i, w := range raw.Screens {
		e, err := w.entry()
		if err != nil {
			return fmt.Errorf("decode screen %d: %w", i+1, err)
		}
		o.Entries = append(o.Entries, e)
	}
	return nil
}
