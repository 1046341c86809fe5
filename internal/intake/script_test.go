package intake

import (
	"testing"

	"github.com/Diveyam-Mishra/Resume-Technex/internal/resume"
)

func TestStepsAdvanceStrictlyInOrder(t *testing.T) {
	want := []Step{StepName, StepExperience, StepEducation, StepSkills}
	step := StepName
	for i, expected := range want {
		if step != expected {
			t.Fatalf("step %d: got %v, want %v", i, step, expected)
		}
		if step.IsTerminal() {
			t.Fatalf("%v must not be terminal", step)
		}
		step = step.Next()
	}
	if step != StepIdle {
		t.Fatalf("script must end at StepIdle, got %v", step)
	}
	if !step.IsTerminal() {
		t.Fatalf("StepIdle must be terminal")
	}
	if step.Next() != StepIdle {
		t.Fatalf("StepIdle must self-loop")
	}
}

func TestStepFieldBinding(t *testing.T) {
	bindings := map[Step]resume.Field{
		StepName:       resume.FieldName,
		StepExperience: resume.FieldExperience,
		StepEducation:  resume.FieldEducation,
		StepSkills:     resume.FieldSkills,
	}
	for step, field := range bindings {
		if got := step.Field(); got != field {
			t.Fatalf("%v bound to %v, want %v", step, got, field)
		}
	}
}

func TestEveryStepHasAPrompt(t *testing.T) {
	for _, step := range Steps() {
		if defaultPrompts[step.Field()] == "" {
			t.Fatalf("%v has no scripted prompt", step)
		}
	}
}
