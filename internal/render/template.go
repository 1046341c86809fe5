package render

import (
	"fmt"
	"strings"
)

// Template selects a presentation layout. It only ever affects how the
// record is displayed, never which sections exist or what they contain.
type Template int

const (
	TemplateModern Template = iota
	TemplateClassic
	TemplateCreative
)

// Templates returns every available template in display order.
func Templates() []Template {
	return []Template{TemplateModern, TemplateClassic, TemplateCreative}
}

// String returns the stable identifier used in config files and the picker.
func (t Template) String() string {
	switch t {
	case TemplateModern:
		return "modern"
	case TemplateClassic:
		return "classic"
	case TemplateCreative:
		return "creative"
	default:
		return "unknown"
	}
}

// FriendlyName returns the display name shown in the template picker.
func (t Template) FriendlyName() string {
	switch t {
	case TemplateModern:
		return "Modern"
	case TemplateClassic:
		return "Classic"
	case TemplateCreative:
		return "Creative"
	default:
		return "Unknown"
	}
}

// Tagline returns a short description for the picker.
func (t Template) Tagline() string {
	switch t {
	case TemplateModern:
		return "Accent bar, bold headings, tight spacing"
	case TemplateClassic:
		return "Centered name, ruled headings, understated"
	case TemplateCreative:
		return "Rounded frame, color, a little flair"
	default:
		return ""
	}
}

// ParseTemplate resolves a template identifier. An unrecognized id is a
// configuration error and is rejected rather than silently defaulted.
func ParseTemplate(id string) (Template, error) {
	normalized := strings.ToLower(strings.TrimSpace(id))
	for _, t := range Templates() {
		if t.String() == normalized {
			return t, nil
		}
	}
	return TemplateModern, fmt.Errorf("render: unknown template %q", id)
}
