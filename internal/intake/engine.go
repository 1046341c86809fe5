// internal/intake/engine.go
//
// The conversation engine turns free-text replies into a filled resume
// record while keeping a transcript of the exchange. It has no knowledge of
// any UI toolkit: interested parties register a change listener and re-read
// the record when it fires.

package intake

import (
	"strings"

	"github.com/Diveyam-Mishra/Resume-Technex/internal/resume"
)

// Outcome reports what a submission did. There are no recoverable errors in
// this component: empty input is dropped, not failed.
type Outcome int

const (
	// OutcomeIgnored means the reply was empty after trimming. Nothing
	// changed: no record write, no transcript entry, no prompt.
	OutcomeIgnored Outcome = iota
	// OutcomeAccepted means the reply was stored and the script advanced.
	OutcomeAccepted
	// OutcomeAcknowledged means the script was already finished; the reply
	// was answered with a courtesy message and discarded.
	OutcomeAcknowledged
)

// String returns a short label for logs and status lines.
func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeAccepted:
		return "accepted"
	case OutcomeAcknowledged:
		return "acknowledged"
	default:
		return "unknown"
	}
}

// Option customizes Engine construction.
type Option func(*Engine)

// WithChangeListener registers fn to run after every accepted submission,
// once the record and transcript already reflect the reply.
func WithChangeListener(fn func()) Option {
	return func(e *Engine) {
		if fn != nil {
			e.onChange = fn
		}
	}
}

// WithPrompt replaces the scripted question for one section.
func WithPrompt(f resume.Field, text string) Option {
	return func(e *Engine) {
		text = strings.TrimSpace(text)
		if text != "" {
			e.prompts[f] = text
		}
	}
}

// Engine walks the intake script over a single record. It is the record's
// only writer; see session.Session for the locking boundary.
type Engine struct {
	record   *resume.Record
	step     Step
	log      []Entry
	prompts  map[resume.Field]string
	onChange func()
}

// New creates an engine positioned at the first step. The opening prompt is
// already on the transcript when New returns.
func New(record *resume.Record, opts ...Option) *Engine {
	e := &Engine{
		record:  record,
		step:    StepName,
		prompts: make(map[resume.Field]string, len(defaultPrompts)),
	}
	for f, text := range defaultPrompts {
		e.prompts[f] = text
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	e.append(OriginAssistant, e.prompts[e.step.Field()])
	return e
}

// Submit processes one user reply. Whitespace-only input is a no-op. An
// accepted reply is stored verbatim in the section bound to the current
// step, the script advances, and the next prompt (or the completion
// acknowledgment) joins the transcript before the change listener fires.
func (e *Engine) Submit(reply string) Outcome {
	trimmed := strings.TrimSpace(reply)
	if trimmed == "" {
		return OutcomeIgnored
	}

	e.append(OriginUser, trimmed)

	if e.step.IsTerminal() {
		e.append(OriginAssistant, idleMessage)
		return OutcomeAcknowledged
	}

	e.record.Set(e.step.Field(), trimmed)
	e.step = e.step.Next()
	if e.step.IsTerminal() {
		e.append(OriginAssistant, completionMessage)
	} else {
		e.append(OriginAssistant, e.prompts[e.step.Field()])
	}
	if e.onChange != nil {
		e.onChange()
	}
	return OutcomeAccepted
}

// Step returns the engine's current position in the script.
func (e *Engine) Step() Step {
	return e.step
}

// Done reports whether the script has been completed.
func (e *Engine) Done() bool {
	return e.step.IsTerminal()
}

// Transcript returns a copy of the conversation so far, oldest first.
func (e *Engine) Transcript() []Entry {
	out := make([]Entry, len(e.log))
	copy(out, e.log)
	return out
}

func (e *Engine) append(origin Origin, text string) {
	e.log = append(e.log, Entry{Text: text, Origin: origin})
}
