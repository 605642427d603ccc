package text

import (
	"testing"
)

func TestFixedMetrics(t *testing.T) {
	w, h := CharacterSize(FixedMetrics{Width: 8, Height: 16})
	if w != 8 || h != 16 {
		t.Errorf("CharacterSize = %v x %v, want 8 x 16", w, h)
	}
	if w, h := CharacterSize(nil); w != 0 || h != 0 {
		t.Errorf("CharacterSize(nil) = %v x %v, want 0 x 0", w, h)
	}
}

func TestFaceMetricsBasic(t *testing.T) {
	m := NewFaceMetrics(Basic())
	w, h := m.MeasureCharacter('W')
	if w != 7 || h != 13 {
		t.Errorf("basic face cell = %v x %v, want 7 x 13", w, h)
	}
	if a := Ascent(Basic()); a != 11 {
		t.Errorf("Ascent = %v, want 11", a)
	}
}

func TestGoMono(t *testing.T) {
	face, err := GoMono(16)
	if err != nil {
		t.Fatalf("GoMono: %v", err)
	}
	m := NewFaceMetrics(face)
	wW, h := m.MeasureCharacter('W')
	wi, _ := m.MeasureCharacter('i')
	if wW <= 0 || h <= 0 {
		t.Fatalf("non-positive cell %v x %v", wW, h)
	}
	if wW != wi {
		t.Errorf("monospaced face advances differ: W=%v i=%v", wW, wi)
	}
}

func TestNewFaceErrors(t *testing.T) {
	if _, err := NewFace([]byte("not a font"), 12, 72); err == nil {
		t.Errorf("expected an error for garbage font data")
	}
	if _, err := NewFace(nil, 0, 72); err == nil {
		t.Errorf("expected an error for a zero size")
	}
}
