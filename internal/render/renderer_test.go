package render

import (
	"strings"
	"testing"

	"github.com/Diveyam-Mishra/Resume-Technex/internal/resume"
)

func filledRecord() resume.Record {
	return resume.Record{
		Name:       "Jane Doe",
		Experience: "5 years at Acme",
		Education:  "BSc CS",
		Skills:     "Python, Go",
	}
}

func TestRenderCarriesRecordVerbatim(t *testing.T) {
	r := Render(filledRecord(), TemplateModern)
	if len(r.Sections) != resume.FieldCount {
		t.Fatalf("expected %d sections, got %d", resume.FieldCount, len(r.Sections))
	}
	checks := map[resume.Field]string{
		resume.FieldName:       "Jane Doe",
		resume.FieldExperience: "5 years at Acme",
		resume.FieldEducation:  "BSc CS",
		resume.FieldSkills:     "Python, Go",
	}
	for f, want := range checks {
		section := r.Section(f)
		if section.Content != want {
			t.Fatalf("%v content: got %q, want %q", f, section.Content, want)
		}
		if section.Placeholder {
			t.Fatalf("%v wrongly marked as placeholder", f)
		}
	}
}

func TestRenderSubstitutesPlaceholdersForEmptyFields(t *testing.T) {
	for _, template := range Templates() {
		r := Render(resume.Record{}, template)
		for _, f := range resume.Fields() {
			section := r.Section(f)
			if !section.Placeholder {
				t.Fatalf("%s/%v: empty field must be marked placeholder", template, f)
			}
			if section.Content == "" {
				t.Fatalf("%s/%v: rendered section must never be empty", template, f)
			}
			if section.Content != Placeholder(f) {
				t.Fatalf("%s/%v: got %q, want %q", template, f, section.Content, Placeholder(f))
			}
		}
	}
}

func TestTemplatesShareSectionContents(t *testing.T) {
	record := filledRecord()
	base := Render(record, TemplateModern)
	for _, template := range []Template{TemplateClassic, TemplateCreative} {
		other := Render(record, template)
		for i := range base.Sections {
			if base.Sections[i].Content != other.Sections[i].Content {
				t.Fatalf("%s changed section content: %q vs %q",
					template, base.Sections[i].Content, other.Sections[i].Content)
			}
			if base.Sections[i].Placeholder != other.Sections[i].Placeholder {
				t.Fatalf("%s changed placeholder flag for %v", template, base.Sections[i].Field)
			}
		}
	}
}

func TestRenderIsPure(t *testing.T) {
	record := filledRecord()
	first := Render(record, TemplateCreative)
	second := Render(record, TemplateCreative)
	for i := range first.Sections {
		if first.Sections[i] != second.Sections[i] {
			t.Fatalf("render not deterministic at section %d", i)
		}
	}
}

func TestViewContainsEverySection(t *testing.T) {
	record := filledRecord()
	for _, template := range Templates() {
		view := Render(record, template).View(80)
		for _, f := range resume.Fields() {
			if !strings.Contains(view, record.Get(f)) {
				t.Fatalf("%s view missing %q", template, record.Get(f))
			}
		}
	}
}

func TestPlainTextLayout(t *testing.T) {
	text := Render(filledRecord(), TemplateClassic).PlainText()
	for _, want := range []string{"JANE DOE", "EXPERIENCE", "5 years at Acme", "EDUCATION", "BSc CS", "SKILLS", "Python, Go"} {
		if !strings.Contains(text, want) {
			t.Fatalf("plain text missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "\x1b[") {
		t.Fatalf("plain text must carry no styling escapes")
	}
}
