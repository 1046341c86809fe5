package resume

import "testing"

func TestSetAndGetRoundTrip(t *testing.T) {
	var r Record
	r.Set(FieldName, "Jane Doe")
	r.Set(FieldExperience, "5 years at Acme")
	r.Set(FieldEducation, "BSc CS")
	r.Set(FieldSkills, "Python, Go")
	if r.Get(FieldName) != "Jane Doe" {
		t.Fatalf("name: got %q", r.Get(FieldName))
	}
	if r.Get(FieldExperience) != "5 years at Acme" {
		t.Fatalf("experience: got %q", r.Get(FieldExperience))
	}
	if r.Get(FieldEducation) != "BSc CS" {
		t.Fatalf("education: got %q", r.Get(FieldEducation))
	}
	if r.Get(FieldSkills) != "Python, Go" {
		t.Fatalf("skills: got %q", r.Get(FieldSkills))
	}
}

func TestFilledAndComplete(t *testing.T) {
	var r Record
	if r.Filled() != 0 || r.Complete() {
		t.Fatalf("empty record should have no filled sections")
	}
	r.Set(FieldName, "Jane")
	r.Set(FieldSkills, "Go")
	if got := r.Filled(); got != 2 {
		t.Fatalf("expected 2 filled sections, got %d", got)
	}
	r.Set(FieldExperience, "Acme")
	r.Set(FieldEducation, "BSc")
	if !r.Complete() {
		t.Fatalf("record with all sections set must be complete")
	}
}

func TestParseFieldKnowsEverySection(t *testing.T) {
	for _, f := range Fields() {
		parsed, ok := ParseField(f.String())
		if !ok || parsed != f {
			t.Fatalf("ParseField(%q) = %v, %v", f.String(), parsed, ok)
		}
	}
	if _, ok := ParseField("salary"); ok {
		t.Fatalf("unknown section must not parse")
	}
}
