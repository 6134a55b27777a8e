package career

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/polkiloo/careerpath/internal/domain/model"
)

type biasTerm struct {
	term       string
	suggestion string
	re         *regexp.Regexp
}

type biasCategory struct {
	name  string
	terms []biasTerm
}

var (
	biasCategories = []biasCategory{
		{name: "Gendered Language", terms: terms(
			"manpower", "workforce or personnel",
			"chairman", "chairperson",
			"fireman", "firefighter",
			"policeman", "police officer",
			"stewardess", "flight attendant",
			"housewife", "homemaker",
			"businessman", "business person",
		)},
		{name: "Age-Based Language", terms: terms(
			"young", "early in career",
			"old", "experienced",
			"recent graduate", "new graduate",
		)},
		{name: "Cultural Bias", terms: terms(
			"native speaker", "fluent speaker",
			"American", "US-based (when referring to location)",
		)},
	}

	masculinePronouns = regexp.MustCompile(`(?i)\b(he|him|his)\b`)
	femininePronouns  = regexp.MustCompile(`(?i)\b(she|her|hers)\b`)
)

func terms(pairs ...string) []biasTerm {
	out := make([]biasTerm, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, biasTerm{
			term:       pairs[i],
			suggestion: pairs[i+1],
			re:         regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(pairs[i]) + `\b`),
		})
	}
	return out
}

// CheckBias finds biased terms in text, counts gendered pronouns and rewrites the text
// with the suggested replacements. Matching is whole-word and case-insensitive.
func CheckBias(text string) model.BiasReport {
	report := model.BiasReport{
		WordCount:     len(strings.Fields(text)),
		BiasIssues:    []model.BiasIssue{},
		Suggestions:   []string{},
		CorrectedText: text,
		GenderPronouns: model.PronounCounts{
			Masculine: len(masculinePronouns.FindAllStringIndex(text, -1)),
			Feminine:  len(femininePronouns.FindAllStringIndex(text, -1)),
		},
	}

	for _, category := range biasCategories {
		for _, t := range category.terms {
			count := len(t.re.FindAllStringIndex(text, -1))
			if count == 0 {
				continue
			}
			report.BiasIssues = append(report.BiasIssues, model.BiasIssue{
				Category:   category.name,
				Term:       t.term,
				Suggestion: t.suggestion,
				Count:      count,
			})
			report.Suggestions = append(report.Suggestions, suggestion(t, count))
			report.CorrectedText = t.re.ReplaceAllLiteralString(report.CorrectedText, t.suggestion)
		}
	}

	return report
}

func suggestion(t biasTerm, count int) string {
	plural := ""
	if count > 1 {
		plural = "s"
	}
	return fmt.Sprintf("Replace %q with %q (%d occurrence%s)", t.term, t.suggestion, count, plural)
}
