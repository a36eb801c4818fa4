package counsel

import (
	"errors"
	"strings"
	"testing"
)

func TestBuildPromptFillsAllSlots(t *testing.T) {
	prompt := BuildPrompt(PromptContext{
		Interests:     " robotics ",
		SkillsToLearn: "ROS",
		CareerGoals:   "robotics engineer",
	})

	for _, want := range []string{"- robotics", "- ROS", "- robotics engineer"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if strings.Contains(prompt, "{{") {
		t.Errorf("unreplaced slot in prompt: %q", prompt)
	}
	// The format contract the parser relies on must be spelled out.
	for _, header := range []string{"Career Paths:", "Skills to Learn:", "Learning Resources:"} {
		if !strings.Contains(prompt, header) {
			t.Errorf("prompt missing format header %q", header)
		}
	}
}

func TestPromptContextValidate(t *testing.T) {
	cases := []struct {
		name string
		pc   PromptContext
		ok   bool
	}{
		{"complete", PromptContext{"a", "b", "c"}, true},
		{"missing interests", PromptContext{"", "b", "c"}, false},
		{"whitespace skills", PromptContext{"a", "  ", "c"}, false},
		{"missing goals", PromptContext{"a", "b", ""}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.pc.Validate()
			if tc.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.ok && !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}
