// internal/resume/record.go
//
// The resume record is the shared data both halves of the app revolve
// around: the intake engine writes it, the renderer reads it. It is plain
// data on purpose — no behavior beyond field access.

package resume

// Field identifies one of the four sections collected during intake.
type Field int

const (
	FieldName Field = iota
	FieldExperience
	FieldEducation
	FieldSkills
)

// FieldCount is the number of sections a finished record contains.
const FieldCount = 4

// String returns the stable identifier used in config files and logs.
func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldExperience:
		return "experience"
	case FieldEducation:
		return "education"
	case FieldSkills:
		return "skills"
	default:
		return "unknown"
	}
}

// Title returns the section heading shown on the rendered resume.
func (f Field) Title() string {
	switch f {
	case FieldName:
		return "Name"
	case FieldExperience:
		return "Experience"
	case FieldEducation:
		return "Education"
	case FieldSkills:
		return "Skills"
	default:
		return "Unknown"
	}
}

// Fields returns every section in intake order.
func Fields() []Field {
	return []Field{FieldName, FieldExperience, FieldEducation, FieldSkills}
}

// ParseField resolves a section identifier as written in config files.
func ParseField(id string) (Field, bool) {
	for _, f := range Fields() {
		if f.String() == id {
			return f, true
		}
	}
	return FieldName, false
}

// Record is the resume being assembled for one session. Lives for the
// session only; the intake engine is its single writer.
type Record struct {
	Name       string
	Experience string
	Education  string
	Skills     string
}

// Set stores a value into the given section.
func (r *Record) Set(f Field, value string) {
	switch f {
	case FieldName:
		r.Name = value
	case FieldExperience:
		r.Experience = value
	case FieldEducation:
		r.Education = value
	case FieldSkills:
		r.Skills = value
	}
}

// Get returns the value stored in the given section.
func (r Record) Get(f Field) string {
	switch f {
	case FieldName:
		return r.Name
	case FieldExperience:
		return r.Experience
	case FieldEducation:
		return r.Education
	case FieldSkills:
		return r.Skills
	default:
		return ""
	}
}

// Filled reports how many sections hold an answer.
func (r Record) Filled() int {
	n := 0
	for _, f := range Fields() {
		if r.Get(f) != "" {
			n++
		}
	}
	return n
}

// Complete reports whether every section has been answered.
func (r Record) Complete() bool {
	return r.Filled() == FieldCount
}
