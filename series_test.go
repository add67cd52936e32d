package linechart

import "testing"

func TestDataset_MaxLength(t *testing.T) {
	ds := Dataset{Series: []Series{
		{Data: []float64{1, 2, 3}},
		{Data: []float64{1, 2, 3, 4, 5}},
		{Data: nil},
	}}
	if got := ds.MaxLength(); got != 5 {
		t.Errorf("MaxLength = %d, want 5", got)
	}
	if got := (Dataset{}).MaxLength(); got != 0 {
		t.Errorf("empty MaxLength = %d, want 0", got)
	}
}

func TestDataset_HasNegative(t *testing.T) {
	pos := Dataset{Series: []Series{{Data: []float64{0, 1, 2}}}}
	if pos.HasNegative() {
		t.Error("HasNegative true for non-negative data")
	}
	neg := Dataset{Series: []Series{{Data: []float64{1}}, {Data: []float64{3, -0.5}}}}
	if !neg.HasNegative() {
		t.Error("HasNegative false for data containing -0.5")
	}
}

func TestDataset_Values(t *testing.T) {
	ds := Dataset{Series: []Series{
		{Data: []float64{1, 2}},
		{Data: []float64{3}},
	}}
	got := ds.Values()
	want := []float64{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("Values = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Values[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDataset_AssignDefaults(t *testing.T) {
	custom := PaletteColor(5)
	ds := Dataset{Series: []Series{
		{Label: "auto"},
		{Label: "explicit", Color: custom},
	}}
	ds.assignDefaults()

	if ds.Series[0].Color == (Series{}.Color) {
		t.Error("unset colour not assigned from palette")
	}
	if ds.Series[1].Color != custom {
		t.Error("explicit colour overwritten")
	}
}

func TestPaletteColor_Cycles(t *testing.T) {
	if PaletteColor(0) != PaletteColor(len(defaultPalette)) {
		t.Error("palette does not cycle")
	}
}
