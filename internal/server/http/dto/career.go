package dto

import (
	"time"

	"github.com/polkiloo/careerpath/internal/career"
	"github.com/polkiloo/careerpath/internal/domain/model"
)

// MatchRequest carries the role to score and the candidate's skills.
type MatchRequest struct {
	JobRole      string           `json:"jobRole"`
	ResumeSkills career.SkillList `json:"resumeSkills"`
}

// MatchResponse is a JobMatch plus the snake_case aliases read by the bundled frontend.
type MatchResponse struct {
	model.JobMatch
	JobTitle       string   `json:"job_title"`
	Score          int      `json:"match_score"`
	MatchingSkills []string `json:"matching_skills"`
	Missing        []string `json:"missing_skills"`
}

// NewMatchResponse builds MatchResponse from m.
func NewMatchResponse(m *model.JobMatch) MatchResponse {
	return MatchResponse{
		JobMatch:       *m,
		JobTitle:       m.JobRole,
		Score:          m.MatchScore,
		MatchingSkills: m.RelevantSkills,
		Missing:        m.MissingSkills,
	}
}

// BiasRequest carries resume text to inspect.
type BiasRequest struct {
	ResumeText string `json:"resumeText"`
}

// QuestionsRequest carries the skills to generate interview questions for.
type QuestionsRequest struct {
	Skills career.SkillList `json:"skills"`
}

// QuestionsResponse wraps generated questions.
type QuestionsResponse struct {
	Questions []model.InterviewQuestion `json:"questions"`
}

// StatusResponse is returned by the liveness check.
type StatusResponse struct {
	Status string `json:"status"`
}

// DatabaseHealthResponse is returned by the database health check.
type DatabaseHealthResponse struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	UserCount int64     `json:"userCount"`
	Timestamp time.Time `json:"timestamp"`
}
