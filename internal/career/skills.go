// Package career implements the lookup-table and regex transforms behind job
// matching, bias checking and mock interview questions.
package career

import (
	"encoding/json"
	"strings"
)

// SkillList accepts either a JSON array of strings or a comma separated string.
type SkillList []string

func (s *SkillList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = Clean(list)
		return nil
	}

	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return err
	}
	*s = Clean(strings.Split(joined, ","))
	return nil
}

// Clean trims skills and drops empty entries.
func Clean(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, skill := range skills {
		if skill = strings.TrimSpace(skill); skill != "" {
			out = append(out, skill)
		}
	}
	return out
}
