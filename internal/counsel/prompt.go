package counsel

import (
	_ "embed"
	"strings"
)

//go:embed prompts/counsel_v1.txt
var counselPromptV1 string

// BuildPrompt renders the shared counseling prompt. The same rendered text is
// sent to every provider so results stay comparable.
func BuildPrompt(p PromptContext) string {
	replacer := strings.NewReplacer(
		"{{INTERESTS}}", strings.TrimSpace(p.Interests),
		"{{SKILLS_TO_LEARN}}", strings.TrimSpace(p.SkillsToLearn),
		"{{CAREER_GOALS}}", strings.TrimSpace(p.CareerGoals),
	)
	return replacer.Replace(counselPromptV1)
}
