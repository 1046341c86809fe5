package render

import "testing"

func TestParseTemplateAcceptsKnownIDs(t *testing.T) {
	for _, want := range Templates() {
		got, err := ParseTemplate(want.String())
		if err != nil {
			t.Fatalf("ParseTemplate(%q): %v", want.String(), err)
		}
		if got != want {
			t.Fatalf("ParseTemplate(%q) = %v, want %v", want.String(), got, want)
		}
	}
}

func TestParseTemplateNormalizesInput(t *testing.T) {
	got, err := ParseTemplate("  Classic ")
	if err != nil {
		t.Fatalf("ParseTemplate should trim and lowercase: %v", err)
	}
	if got != TemplateClassic {
		t.Fatalf("got %v, want classic", got)
	}
}

func TestParseTemplateRejectsUnknownIDs(t *testing.T) {
	for _, id := range []string{"", "fancy", "modern-2"} {
		if _, err := ParseTemplate(id); err == nil {
			t.Fatalf("ParseTemplate(%q) must fail", id)
		}
	}
}
