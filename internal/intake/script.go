// internal/intake/script.go
//
// The intake script: a fixed, strictly ordered sequence of steps, each bound
// to one record section and one scripted prompt.

package intake

import (
	"github.com/Diveyam-Mishra/Resume-Technex/internal/resume"
)

// Step is the engine's position in the intake script.
type Step int

const (
	StepName Step = iota
	StepExperience
	StepEducation
	StepSkills
	// StepIdle is terminal: the script is finished and further submissions
	// are acknowledged but discarded.
	StepIdle
)

// String returns a human-readable name for the step.
func (s Step) String() string {
	switch s {
	case StepName:
		return "Name"
	case StepExperience:
		return "Experience"
	case StepEducation:
		return "Education"
	case StepSkills:
		return "Skills"
	case StepIdle:
		return "Complete"
	default:
		return "Unknown"
	}
}

// Field returns the record section this step fills. Only meaningful for
// non-terminal steps.
func (s Step) Field() resume.Field {
	switch s {
	case StepName:
		return resume.FieldName
	case StepExperience:
		return resume.FieldExperience
	case StepEducation:
		return resume.FieldEducation
	default:
		return resume.FieldSkills
	}
}

// Next returns the step that follows an accepted submission. StepIdle
// self-loops; no transition is reversible.
func (s Step) Next() Step {
	if s >= StepIdle {
		return StepIdle
	}
	return s + 1
}

// IsTerminal reports whether the script has run out of questions.
func (s Step) IsTerminal() bool {
	return s == StepIdle
}

// Steps returns the askable steps in script order.
func Steps() []Step {
	return []Step{StepName, StepExperience, StepEducation, StepSkills}
}

// Default wording for each question. Individual prompts can be replaced per
// engine via WithPrompt.
var defaultPrompts = map[resume.Field]string{
	resume.FieldName:       "Hi! Let's build your resume. What's your full name?",
	resume.FieldExperience: "Tell me about your work experience.",
	resume.FieldEducation:  "What's your education background?",
	resume.FieldSkills:     "List a few skills you want to highlight.",
}

const (
	// Emitted once, after the final question is answered.
	completionMessage = "That's everything — your resume is ready. Switch templates any time to change the look."
	// Emitted for every submission after completion.
	idleMessage = "Your resume is already complete. Switch templates or export it whenever you like."
)
