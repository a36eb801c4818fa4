package counsel

import (
	"fmt"
	"strings"
)

// PromptContext carries the three user-supplied free-text fields. It is
// immutable once built and is only used to render the shared prompt.
type PromptContext struct {
	Interests     string
	SkillsToLearn string
	CareerGoals   string
}

// Validate enforces that all three fields are present.
func (p PromptContext) Validate() error {
	if strings.TrimSpace(p.Interests) == "" ||
		strings.TrimSpace(p.SkillsToLearn) == "" ||
		strings.TrimSpace(p.CareerGoals) == "" {
		return fmt.Errorf("%w: all fields are required", ErrValidation)
	}
	return nil
}

// Recommendation is the structured result recovered from one provider's raw
// text. Every sequence holds at least one entry: real items, the per-section
// "No … provided" placeholder, or the "Error parsing …" record.
type Recommendation struct {
	CareerPaths []string `json:"career_paths"`
	Skills      []string `json:"skills"`
	Resources   []string `json:"resources"`
}

func (r *Recommendation) setSection(section Section, items []string) {
	switch section {
	case SectionCareerPaths:
		r.CareerPaths = items
	case SectionSkills:
		r.Skills = items
	case SectionResources:
		r.Resources = items
	}
}

// ProviderResult is one provider's outcome: a parsed recommendation, or the
// provider-call error when no text was produced at all.
type ProviderResult struct {
	Recommendation Recommendation
	Err            error
}

// CombinedResult maps provider name to that provider's outcome.
type CombinedResult map[string]ProviderResult
