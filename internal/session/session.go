// internal/session/session.go
//
// A session binds one resume record to its intake engine and presentation
// state. The record has exactly one writer (the engine) and the session's
// lock makes every mutation and the re-render that follows a single
// observable step: callers never see a mutated record with a stale render.

package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/Diveyam-Mishra/Resume-Technex/internal/intake"
	"github.com/Diveyam-Mishra/Resume-Technex/internal/journal"
	"github.com/Diveyam-Mishra/Resume-Technex/internal/render"
	"github.com/Diveyam-Mishra/Resume-Technex/internal/resume"
)

// Option customizes session construction.
type Option func(*Session)

// WithJournal attaches a journal for session activity.
func WithJournal(j *journal.Journal) Option {
	return func(s *Session) {
		s.journal = j
	}
}

// WithTemplate sets the template the session starts with.
func WithTemplate(t render.Template) Option {
	return func(s *Session) {
		s.template = t
	}
}

// WithPrompts replaces scripted intake questions per section.
func WithPrompts(prompts map[resume.Field]string) Option {
	return func(s *Session) {
		for f, text := range prompts {
			s.engineOpts = append(s.engineOpts, intake.WithPrompt(f, text))
		}
	}
}

// Session owns the record for its whole lifetime. Discard the session,
// discard the resume — nothing is persisted across sessions.
type Session struct {
	mu         sync.Mutex
	id         string
	record     resume.Record
	engine     *intake.Engine
	template   render.Template
	rendered   render.RenderedResume
	journal    *journal.Journal
	engineOpts []intake.Option
}

// New creates a session positioned at the first intake question, with the
// empty record already rendered under the starting template.
func New(opts ...Option) *Session {
	s := &Session{
		id:       uuid.NewString(),
		template: render.TemplateModern,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	engineOpts := append([]intake.Option{intake.WithChangeListener(s.rerender)}, s.engineOpts...)
	s.engine = intake.New(&s.record, engineOpts...)
	s.rendered = render.Render(s.record, s.template)
	return s
}

// rerender recomputes the view from the current record. Always called with
// s.mu held (Submit and SelectTemplate both lock before mutating).
func (s *Session) rerender() {
	s.rendered = render.Render(s.record, s.template)
}

// Submit forwards one user reply to the intake engine and returns the
// outcome together with the render that reflects it.
func (s *Session) Submit(reply string) (intake.Outcome, render.RenderedResume) {
	s.mu.Lock()
	defer s.mu.Unlock()
	outcome := s.engine.Submit(reply)
	switch outcome {
	case intake.OutcomeAccepted:
		s.journal.Info("intake · %d/%d sections captured", s.record.Filled(), resume.FieldCount)
	case intake.OutcomeAcknowledged:
		s.journal.Info("intake · reply after completion discarded")
	}
	return outcome, s.rendered
}

// SelectTemplate switches the presentation template and re-renders the same
// record under it. An unrecognized id is rejected: the record, template, and
// previous render all stay as they were.
func (s *Session) SelectTemplate(id string) (render.RenderedResume, error) {
	t, err := render.ParseTemplate(id)
	if err != nil {
		s.journal.Warn("template · rejected %q", id)
		return s.Rendered(), err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.template = t
	s.rerender()
	s.journal.Info("template · switched to %s", t)
	return s.rendered, nil
}

// ID returns the session identifier used in journal lines and export names.
func (s *Session) ID() string {
	return s.id
}

// Template returns the currently selected template.
func (s *Session) Template() render.Template {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.template
}

// Rendered returns the latest render of the record.
func (s *Session) Rendered() render.RenderedResume {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rendered
}

// Record returns a copy of the record as it stands.
func (s *Session) Record() resume.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record
}

// Transcript returns a copy of the conversation so far.
func (s *Session) Transcript() []intake.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Transcript()
}

// Step returns the engine's position in the intake script.
func (s *Session) Step() intake.Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Step()
}

// Done reports whether the intake script has been completed.
func (s *Session) Done() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Done()
}
