package aitip

import (
	"fmt"
	"strings"
)

const tipPromptTemplate = `You are a friendly health assistant. The user has the following habit data from the past week:

%s

Based on this data, generate a personalized, encouraging health tip for today. The tip should be:
- Specific and actionable
- Motivational and positive
- 1-2 sentences maximum
- Focused on improvement or maintaining good progress
- Consider their completion rates and performance

If they're doing well, encourage them to keep going. If they're struggling, provide gentle motivation and practical suggestions.`

// BuildTipPrompt renders the deterministic weekly digest into the fixed
// instructional template. One bullet per habit, target line included only
// when the habit has a numeric target.
func BuildTipPrompt(summaries []HabitSummary) string {
	lines := make([]string, 0, len(summaries))
	for _, s := range summaries {
		line := fmt.Sprintf("- %s (%s): %d%% completion rate this week", s.Name, s.Category, s.CompletionRate)
		if s.TargetValue != nil {
			unit := s.Unit
			if unit == "" {
				unit = "units"
			}
			line += fmt.Sprintf(", averaging %.1f %s (target: %g %s)", s.AverageValue, unit, *s.TargetValue, unit)
		}
		lines = append(lines, line)
	}

	return fmt.Sprintf(tipPromptTemplate, strings.Join(lines, "\n"))
}
