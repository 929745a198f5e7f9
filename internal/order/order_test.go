package order

import (
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/rollashield/screenquote/internal/pricing"
)

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func opening(name string, widthFeet, heightFeet float64) Opening {
	return Opening{
		ScreenName: name,
		Measurements: pricing.Measurements{
			Width:      pricing.NewDimension(widthFeet*12, ""),
			Height:     pricing.NewDimension(heightFeet*12, ""),
			FrameColor: "white",
		},
		Photos: []string{name + ".jpg"},
	}
}

func selection(track pricing.TrackType, op pricing.OperatorType) pricing.Selection {
	return pricing.Selection{TrackType: track, OperatorType: op, FabricColor: "black-90"}
}

func mustAdd(t *testing.T, o *Order, op Opening, sel pricing.Selection) pricing.Screen {
	t.Helper()
	i, err := o.AddScreen(op, sel)
	if err != nil {
		t.Fatalf("AddScreen(%s): %v", op.ScreenName, err)
	}
	return o.Entries[i].(*Configured).Screen
}

func TestConfigureOpenings_PartialFailure(t *testing.T) {
	var o Order
	o.AddOpening(opening("Patio", 10, 8))
	o.AddOpening(opening("Huge", 40, 8))
	o.AddOpening(opening("", 12, 9))
	o.AddOpening(opening("Skipped", 10, 8))

	result, err := o.ConfigureOpenings([]int{0, 1, 2}, selection(pricing.TrackZipper, pricing.OperatorGaposaRTS))
	if err != nil {
		t.Fatalf("ConfigureOpenings: %v", err)
	}

	if !reflect.DeepEqual(result.Configured, []string{"Patio", "Screen 3"}) {
		t.Fatalf("configured = %v", result.Configured)
	}
	if len(result.Failed) != 1 || result.Failed[0].Name != "Huge" || !errors.Is(result.Failed[0].Err, pricing.ErrNoPricingAtSize) {
		t.Fatalf("failed = %+v", result.Failed)
	}

	phases := []Phase{PhaseConfigured, PhaseOpening, PhaseConfigured, PhaseOpening}
	for i, want := range phases {
		if got := o.Entries[i].Phase(); got != want {
			t.Fatalf("entry %d phase = %s, want %s", i, got, want)
		}
	}

	c := o.Entries[0].(*Configured)
	if c.Screen.Width.PricingSize != 10 || c.Screen.FrameColor != "white" || c.Photos[0] != "Patio.jpg" {
		t.Fatalf("opening fields not carried over: %+v", c)
	}

	if !reflect.DeepEqual(o.Outstanding(), []string{"Huge", "Skipped"}) {
		t.Fatalf("outstanding = %v", o.Outstanding())
	}
}

func TestConfigureOpenings_RejectsBadIndex(t *testing.T) {
	var o Order
	o.AddOpening(opening("Patio", 10, 8))
	if _, err := o.ConfigureOpenings([]int{0, 3}, selection(pricing.TrackZipper, pricing.OperatorGear)); err == nil {
		t.Fatalf("expected out of range error")
	}
	if o.Entries[0].Phase() != PhaseOpening {
		t.Fatalf("entry changed despite rejected batch")
	}
}

func TestRemeasure_DemotesOnNewSizeAndMergesOnSameSize(t *testing.T) {
	var o Order
	before := mustAdd(t, &o, opening("Patio", 10, 8), selection(pricing.TrackZipper, pricing.OperatorGaposaRTS))

	same := opening("Patio West", 10, 8)
	same.Width = pricing.NewDimension(121, "1/4")
	same.IncludeInstallation = true
	if err := o.Remeasure(0, same); err != nil {
		t.Fatalf("Remeasure same size: %v", err)
	}
	c, ok := o.Entries[0].(*Configured)
	if !ok {
		t.Fatalf("same-size remeasure demoted the screen")
	}
	if c.Screen.ScreenName != "Patio West" || c.Screen.Width.Display != `10' 1.25"` {
		t.Fatalf("fields not merged: %+v", c.Screen.ScreenConfig)
	}
	if c.Screen.OperatorType != pricing.OperatorGaposaRTS || c.Screen.InstallationPrice == 0 {
		t.Fatalf("selection or installation lost: %+v", c.Screen)
	}
	nearlyEqual(t, "materials after same-size remeasure", c.Screen.MaterialsPrice(), before.MaterialsPrice())

	if err := o.Remeasure(0, opening("Patio West", 11, 8)); err != nil {
		t.Fatalf("Remeasure new size: %v", err)
	}
	if o.Entries[0].Phase() != PhaseOpening {
		t.Fatalf("new-size remeasure kept configured phase")
	}
}

func TestReconfigure_FailureLeavesEntry(t *testing.T) {
	var o Order
	mustAdd(t, &o, opening("Patio", 21, 8), selection(pricing.TrackZipper, pricing.OperatorGear))

	err := o.Reconfigure(0, selection(pricing.TrackKeder, pricing.OperatorGaposaRTS))
	if !errors.Is(err, pricing.ErrNoPricingAtSize) {
		t.Fatalf("expected no pricing error, got %v", err)
	}
	if o.Entries[0].(*Configured).Screen.TrackType != pricing.TrackZipper {
		t.Fatalf("failed reconfigure replaced the screen")
	}

	if err := o.Reconfigure(0, selection(pricing.TrackZipper, pricing.OperatorSomfyRTS)); err != nil {
		t.Fatalf("Reconfigure: %v", err)
	}
	if got := o.Entries[0].(*Configured).Screen.OperatorType; got != pricing.OperatorSomfyRTS {
		t.Fatalf("operator = %s", got)
	}
}

func TestDuplicateAndRemove(t *testing.T) {
	var o Order
	mustAdd(t, &o, opening("Patio", 10, 8), selection(pricing.TrackZipper, pricing.OperatorGear))
	o.AddOpening(opening("", 9, 8))

	if err := o.Duplicate(0); err != nil {
		t.Fatalf("Duplicate: %v", err)
	}
	if err := o.Duplicate(1); err != nil {
		t.Fatalf("Duplicate: %v", err)
	}
	if o.DisplayName(2) != "Patio (Copy)" || o.DisplayName(3) != "Screen 4" {
		t.Fatalf("names = %q, %q", o.DisplayName(2), o.DisplayName(3))
	}

	o.Entries[2].(*Configured).Photos[0] = "changed.jpg"
	if o.Entries[0].(*Configured).Photos[0] != "Patio.jpg" {
		t.Fatalf("duplicate shares photo slice with original")
	}

	if err := o.Remove(1); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if len(o.Entries) != 3 || o.Entries[1].Phase() != PhaseConfigured {
		t.Fatalf("unexpected entries after remove: %d", len(o.Entries))
	}
	if err := o.Remove(5); err == nil {
		t.Fatalf("expected out of range error")
	}
}

func TestRemoveLeavesEarlierCopiesIntact(t *testing.T) {
	var o Order
	o.AddOpening(opening("A", 10, 8))
	o.AddOpening(opening("B", 10, 8))
	o.AddOpening(opening("C", 10, 8))
	snapshot := o

	if err := o.Remove(0); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if o.DisplayName(0) != "B" || o.DisplayName(1) != "C" || len(o.Entries) != 2 {
		t.Fatalf("unexpected entries after remove: %d", len(o.Entries))
	}

	var names []string
	for i := range snapshot.Entries {
		names = append(names, snapshot.DisplayName(i))
	}
	if !reflect.DeepEqual(names, []string{"A", "B", "C"}) {
		t.Fatalf("copy changed by remove: %v", names)
	}
}

func TestOrderJSONRoundTrip(t *testing.T) {
	o := Order{
		ProjectAccessories: []ProjectAccessory{{Name: "Hub", Quantity: 1, UnitCost: 150, UnitPrice: 249}},
		MiscInstallLabel:   "Haul away",
		MiscInstallAmount:  120,
		DiscountPercent:    10,
		DiscountLabel:      "Spring",
		EnableComparison:   true,
		ComparisonMotor:    pricing.OperatorGear,
	}
	remote, _ := pricing.LookupAccessory("gaposa-remote-1ch")
	sel := selection(pricing.TrackCable, pricing.OperatorGaposaRTS)
	sel.Accessories = []pricing.Accessory{remote}
	mustAdd(t, &o, opening("Patio", 10, 8), sel)
	o.AddOpening(opening("Side", 8, 8))

	data, err := json.Marshal(o)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded Order
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !reflect.DeepEqual(decoded, o) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", decoded, o)
	}
}

func TestOrderJSONRejectsUnknownPhase(t *testing.T) {
	var o Order
	err := json.Unmarshal([]byte(`{"screens":[{"phase":"draft"}]}`), &o)
	if err == nil {
		t.Fatalf("expected unknown phase error")
	}
}
