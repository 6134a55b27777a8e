package handlers

import (
	"context"

	"github.com/polkiloo/careerpath/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, in model.Registration) (*model.AuthResult, error)
	Login(ctx context.Context, email, password string) (*model.AuthResult, error)
	Profile(ctx context.Context, token string) (*model.User, error)
	ParseToken(token string) (string, error)
}

// ResumeFacade parses uploaded resumes.
type ResumeFacade interface {
	UploadResume(ctx context.Context, in model.UploadedFile) (*model.ResumeUpload, error)
}

// CareerFacade exposes the career helpers.
type CareerFacade interface {
	MatchJob(role string, skills []string) (*model.JobMatch, error)
	CheckBias(text string) (*model.BiasReport, error)
	InterviewQuestions(skills []string) []model.InterviewQuestion
}

// HealthFacade reports backing store health.
type HealthFacade interface {
	DatabaseHealth(ctx context.Context) (int64, error)
}

// PlatformFacade aggregates the full set of operations used across handlers.
type PlatformFacade interface {
	AuthFacade
	ResumeFacade
	CareerFacade
	HealthFacade
}
