package pricing

import (
	"errors"
	"fmt"
)

// ErrNoPricingAtSize is matched by every NoPricingAtSizeError.
var ErrNoPricingAtSize = errors.New("no pricing at size")

// NoPricingAtSizeError reports a rounded size that a track's table does not price.
type NoPricingAtSizeError struct {
	Track  TrackType
	Width  int
	Height int
}

func (e *NoPricingAtSizeError) Error() string {
	return fmt.Sprintf("no pricing available for %d' W x %d' H on %s", e.Width, e.Height, e.Track)
}

func (e *NoPricingAtSizeError) Is(target error) bool {
	return target == ErrNoPricingAtSize
}

// PricingTable maps rounded width to a row of costs by rounded height.
// Rows[w][i] is the cost at height MinHeight+i; zero means not offered.
type PricingTable struct {
	MinHeight int
	Rows      map[int][]float64
}

// Cost returns the cost at width x height, or false when the size is not offered.
func (t PricingTable) Cost(width, height int) (float64, bool) {
	row, ok := t.Rows[width]
	if !ok {
		return 0, false
	}
	i := height - t.MinHeight
	if i < 0 || i >= len(row) || row[i] <= 0 {
		return 0, false
	}
	return row[i], true
}

// Limits is the largest width and height a table enumerates.
type Limits struct {
	MaxWidth  int `json:"maxWidth"`
	MaxHeight int `json:"maxHeight"`
}

// Limits scans the table for its largest priced width and height.
func (t PricingTable) Limits() Limits {
	var l Limits
	for w, row := range t.Rows {
		for i, cost := range row {
			if cost <= 0 {
				continue
			}
			if w > l.MaxWidth {
				l.MaxWidth = w
			}
			if h := t.MinHeight + i; h > l.MaxHeight {
				l.MaxHeight = h
			}
		}
	}
	return l
}

// TableFor returns the pricing table of a track type.
func TableFor(track TrackType) (PricingTable, bool) {
	switch track {
	case TrackZipper:
		return zipperTable, true
	case TrackCable:
		return cableTable, true
	case TrackKeder:
		return kederTable, true
	}
	return PricingTable{}, false
}

// LookupCost returns the raw table cost for a track at a rounded size.
func LookupCost(track TrackType, width, height int) (float64, error) {
	table, ok := TableFor(track)
	if !ok {
		return 0, &NoPricingAtSizeError{Track: track, Width: width, Height: height}
	}
	cost, ok := table.Cost(width, height)
	if !ok {
		return 0, &NoPricingAtSizeError{Track: track, Width: width, Height: height}
	}
	return cost, nil
}

// TrackLimits reports the input bounds for a track, used to warn before a
// size is submitted.
func TrackLimits(track TrackType) (Limits, bool) {
	table, ok := TableFor(track)
	if !ok {
		return Limits{}, false
	}
	return table.Limits(), true
}
