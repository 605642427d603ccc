package css

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseString(t *testing.T) {
	sheet, err := NewParser().ParseString(`
		/* shared */
		dialog, #intro { color: #fff; border-width: 3px }
		{ color: red }
		#intro { background-color: black !important; }
	`)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	if len(sheet.Rules) != 2 {
		t.Fatalf("got %d rules, want 2", len(sheet.Rules))
	}
	if diff := cmp.Diff([]string{"dialog", "#intro"}, sheet.Rules[0].Selectors); diff != "" {
		t.Errorf("selectors mismatch (-want +got):\n%s", diff)
	}

	got := sheet.Matching("#intro")
	want := []*Declaration{
		{Property: "color", Value: "#fff"},
		{Property: "border-width", Value: "3px"},
		{Property: "background-color", Value: "black", Important: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Matching mismatch (-want +got):\n%s", diff)
	}
	if got := sheet.Matching("#other"); len(got) != 0 {
		t.Errorf("Matching(#other) = %v, want none", got)
	}
}

func TestParseDeclarations(t *testing.T) {
	got := ParseDeclarations("Color : red;; border-width:2px; broken; :x")
	want := []*Declaration{
		{Property: "color", Value: "red"},
		{Property: "border-width", Value: "2px"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseDeclarations mismatch (-want +got):\n%s", diff)
	}
}
