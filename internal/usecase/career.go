package usecase

import (
	"strings"

	"github.com/polkiloo/careerpath/internal/career"
	domainErrors "github.com/polkiloo/careerpath/internal/domain/errors"
	"github.com/polkiloo/careerpath/internal/domain/model"
)

// CareerUseCase validates input for the career helpers.
type CareerUseCase struct{}

func NewCareerUseCase() *CareerUseCase {
	return &CareerUseCase{}
}

func (u *CareerUseCase) MatchJob(role string, skills []string) (*model.JobMatch, error) {
	role = strings.TrimSpace(role)
	if role == "" {
		return nil, domainErrors.NewValidationError("jobRole", "is required")
	}
	skills = career.Clean(skills)
	if len(skills) == 0 {
		return nil, domainErrors.NewValidationError("resumeSkills", "is required")
	}
	m := career.MatchJob(role, skills)
	return &m, nil
}

func (u *CareerUseCase) CheckBias(text string) (*model.BiasReport, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domainErrors.NewValidationError("resumeText", "is required")
	}
	r := career.CheckBias(text)
	return &r, nil
}

func (u *CareerUseCase) InterviewQuestions(skills []string) []model.InterviewQuestion {
	return career.InterviewQuestions(skills)
}
