// internal/render/renderer.go
//
// Derives the displayable resume from the current record and the selected
// template. Render is a pure function: section contents depend only on the
// record, and the template contributes styling alone. The two never mix —
// that separation is the whole point of this package.

package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Diveyam-Mishra/Resume-Technex/internal/resume"
)

// Stand-ins shown while a section is unanswered. The preview never shows a
// raw empty section.
var placeholders = map[resume.Field]string{
	resume.FieldName:       "[Your Name]",
	resume.FieldExperience: "[Your Experience]",
	resume.FieldEducation:  "[Your Education]",
	resume.FieldSkills:     "[Your Skills]",
}

// Placeholder returns the stand-in text for an unanswered section.
func Placeholder(f resume.Field) string {
	return placeholders[f]
}

// Section is one rendered block of the resume.
type Section struct {
	Field   resume.Field
	Label   string
	Content string
	// Placeholder marks Content as the stand-in rather than user data.
	Placeholder bool
}

// RenderedResume pairs section contents with the template that styles them.
// Contents are identical for the same record regardless of template; only
// View output differs.
type RenderedResume struct {
	Template Template
	Sections []Section
}

// Render builds the displayable resume for the given record and template.
func Render(record resume.Record, t Template) RenderedResume {
	sections := make([]Section, 0, resume.FieldCount)
	for _, f := range resume.Fields() {
		value := record.Get(f)
		section := Section{Field: f, Label: f.Title(), Content: value}
		if value == "" {
			section.Content = Placeholder(f)
			section.Placeholder = true
		}
		sections = append(sections, section)
	}
	return RenderedResume{Template: t, Sections: sections}
}

// Section returns the rendered block for one record field.
func (r RenderedResume) Section(f resume.Field) Section {
	for _, s := range r.Sections {
		if s.Field == f {
			return s
		}
	}
	return Section{Field: f, Label: f.Title()}
}

// PlainText returns the unstyled document, suitable for export to a file.
func (r RenderedResume) PlainText() string {
	var b strings.Builder
	name := r.Section(resume.FieldName)
	b.WriteString(strings.ToUpper(name.Content))
	b.WriteString("\n")
	for _, s := range r.Sections {
		if s.Field == resume.FieldName {
			continue
		}
		b.WriteString("\n")
		b.WriteString(strings.ToUpper(s.Label))
		b.WriteString("\n  ")
		b.WriteString(s.Content)
		b.WriteString("\n")
	}
	return b.String()
}

type templateStyles struct {
	frame       lipgloss.Style
	name        lipgloss.Style
	heading     lipgloss.Style
	body        lipgloss.Style
	placeholder lipgloss.Style
}

var modernStyles = templateStyles{
	frame: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color("#5B8DEF")).
		Padding(0, 1),
	name:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF")),
	heading:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4CAF50")),
	body:        lipgloss.NewStyle().Foreground(lipgloss.Color("#CCCCCC")),
	placeholder: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#666666")),
}

var classicStyles = templateStyles{
	frame: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#888888")).
		Padding(0, 2),
	name:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Align(lipgloss.Center),
	heading:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#AAAAAA")),
	body:        lipgloss.NewStyle().Foreground(lipgloss.Color("#DDDDDD")),
	placeholder: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#777777")),
}

var creativeStyles = templateStyles{
	frame: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#F25D94")).
		Padding(0, 1),
	name:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F25D94")),
	heading:     lipgloss.NewStyle().Italic(true).Bold(true).Foreground(lipgloss.Color("#F7B801")),
	body:        lipgloss.NewStyle().Foreground(lipgloss.Color("#E0E0E0")),
	placeholder: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#8A6E8A")),
}

func stylesFor(t Template) templateStyles {
	switch t {
	case TemplateClassic:
		return classicStyles
	case TemplateCreative:
		return creativeStyles
	default:
		return modernStyles
	}
}

// View lays the sections out under the template's styling. Width caps the
// rendered block; anything below the minimum falls back to an unwrapped
// layout.
func (r RenderedResume) View(width int) string {
	styles := stylesFor(r.Template)
	inner := width - 6
	if inner < 20 {
		inner = 20
	}

	name := r.Section(resume.FieldName)
	nameStyle := styles.name
	if name.Placeholder {
		nameStyle = styles.placeholder
	}
	header := nameStyle.Width(inner).Render(name.Content)
	if r.Template == TemplateClassic {
		header = lipgloss.JoinVertical(lipgloss.Left,
			header,
			styles.heading.Render(strings.Repeat("─", min(inner, 40))),
		)
	}

	blocks := []string{header}
	for _, s := range r.Sections {
		if s.Field == resume.FieldName {
			continue
		}
		label := s.Label
		switch r.Template {
		case TemplateClassic:
			label = strings.ToUpper(label)
		case TemplateCreative:
			label = fmt.Sprintf("✦ %s", label)
		}
		bodyStyle := styles.body
		if s.Placeholder {
			bodyStyle = styles.placeholder
		}
		blocks = append(blocks, lipgloss.JoinVertical(lipgloss.Left,
			styles.heading.Render(label),
			bodyStyle.Width(inner).Render(s.Content),
		))
	}

	return styles.frame.Render(strings.Join(blocks, "\n\n"))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
