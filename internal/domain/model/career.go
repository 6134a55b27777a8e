package model

// SalaryRange is an estimated salary band.
type SalaryRange struct {
	Avg int `json:"avg"`
	Min int `json:"min"`
	Max int `json:"max"`
}

// JobMatch is the result of matching resume skills against a job role.
type JobMatch struct {
	JobRole         string      `json:"jobRole"`
	MatchScore      int         `json:"matchScore"`
	RelevantSkills  []string    `json:"relevantSkills"`
	MissingSkills   []string    `json:"missingSkills"`
	Recommendations []string    `json:"recommendations"`
	SalaryData      SalaryRange `json:"salary_data"`
}

// BiasIssue is a single biased term found in a text.
type BiasIssue struct {
	Category   string `json:"category"`
	Term       string `json:"term"`
	Suggestion string `json:"suggestion"`
	Count      int    `json:"count"`
}

// PronounCounts counts gendered pronouns in a text.
type PronounCounts struct {
	Masculine int `json:"masculine"`
	Feminine  int `json:"feminine"`
}

// BiasReport is the result of a bias check.
type BiasReport struct {
	WordCount      int           `json:"wordCount"`
	BiasIssues     []BiasIssue   `json:"biasIssues"`
	GenderPronouns PronounCounts `json:"genderPronouns"`
	Suggestions    []string      `json:"suggestions"`
	CorrectedText  string        `json:"correctedText"`
}

// Difficulty of an interview question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// InterviewQuestion is a generated mock interview question.
type InterviewQuestion struct {
	ID         int        `json:"id"`
	Question   string     `json:"question"`
	Category   string     `json:"category"`
	Difficulty Difficulty `json:"difficulty"`
}
