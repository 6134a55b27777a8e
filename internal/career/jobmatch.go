package career

import (
	"fmt"
	"math"
	"strings"

	"github.com/polkiloo/careerpath/internal/domain/model"
)

const maxMissingSkills = 5

var jobSkills = map[string][]string{
	"software engineer": {"javascript", "react", "node.js", "python", "sql", "git", "agile"},
	"data scientist":    {"python", "machine learning", "statistics", "sql", "r", "pandas", "numpy"},
	"web developer":     {"html", "css", "javascript", "react", "node.js", "sql"},
	"product manager":   {"leadership", "analytics", "strategy", "agile", "user research"},
	"ui/ux designer":    {"figma", "sketch", "adobe xd", "user research", "prototyping", "wireframing"},
}

var defaultJobSkills = []string{"communication", "problem solving", "teamwork", "adaptability"}

// TargetSkills returns the skills expected for role, or the generic soft skills for unknown roles.
func TargetSkills(role string) []string {
	if skills, ok := jobSkills[strings.ToLower(strings.TrimSpace(role))]; ok {
		return skills
	}
	return defaultJobSkills
}

// MatchJob scores resume skills against the skills expected for role.
// A skill matches when either string contains the other, case-insensitively.
func MatchJob(role string, skills []string) model.JobMatch {
	target := TargetSkills(role)
	skills = Clean(skills)

	relevant := make([]string, 0, len(skills))
	for _, skill := range skills {
		lower := strings.ToLower(skill)
		for _, t := range target {
			if overlaps(t, lower) {
				relevant = append(relevant, skill)
				break
			}
		}
	}

	missing := make([]string, 0, maxMissingSkills)
	for _, t := range target {
		if len(missing) == maxMissingSkills {
			break
		}
		found := false
		for _, skill := range skills {
			if overlaps(t, strings.ToLower(skill)) {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, t)
		}
	}

	score := int(math.Min(100, math.Round(float64(len(relevant))/float64(len(target))*100)))

	return model.JobMatch{
		JobRole:        role,
		MatchScore:     score,
		RelevantSkills: relevant,
		MissingSkills:  missing,
		Recommendations: []string{
			fmt.Sprintf("Focus on developing %s skills for %s position.", strings.Join(target[:min(3, len(target))], ", "), role),
			"Consider taking online courses in the missing skills areas.",
			"Gain practical experience through personal projects related to " + role,
		},
		SalaryData: model.SalaryRange{
			Avg: 85000 + score*500,
			Min: 60000 + score*200,
			Max: 120000 + score*400,
		},
	}
}

func overlaps(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}
