package app

import (
	"context"

	"github.com/polkiloo/careerpath/internal/domain/model"
	"github.com/polkiloo/careerpath/internal/usecase"
)

// HealthChecker reports whether the credential store is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type PlatformFacade struct {
	auth   *usecase.AuthUseCase
	resume *usecase.ResumeUseCase
	career *usecase.CareerUseCase
	health HealthChecker
}

func NewPlatformFacade(auth *usecase.AuthUseCase, resume *usecase.ResumeUseCase, career *usecase.CareerUseCase, health HealthChecker) *PlatformFacade {
	return &PlatformFacade{auth: auth, resume: resume, career: career, health: health}
}

func (f *PlatformFacade) Register(ctx context.Context, in model.Registration) (*model.AuthResult, error) {
	return f.auth.Register(ctx, in)
}

func (f *PlatformFacade) Login(ctx context.Context, email, password string) (*model.AuthResult, error) {
	return f.auth.Login(ctx, email, password)
}

func (f *PlatformFacade) Profile(ctx context.Context, token string) (*model.User, error) {
	return f.auth.Profile(ctx, token)
}

func (f *PlatformFacade) ParseToken(token string) (string, error) {
	return f.auth.ParseToken(token)
}

func (f *PlatformFacade) UploadResume(ctx context.Context, in model.UploadedFile) (*model.ResumeUpload, error) {
	return f.resume.Upload(ctx, in)
}

func (f *PlatformFacade) MatchJob(role string, skills []string) (*model.JobMatch, error) {
	return f.career.MatchJob(role, skills)
}

func (f *PlatformFacade) CheckBias(text string) (*model.BiasReport, error) {
	return f.career.CheckBias(text)
}

func (f *PlatformFacade) InterviewQuestions(skills []string) []model.InterviewQuestion {
	return f.career.InterviewQuestions(skills)
}

// DatabaseHealth pings the store and returns the number of registered users.
func (f *PlatformFacade) DatabaseHealth(ctx context.Context) (int64, error) {
	if f.health != nil {
		if err := f.health.HealthCheck(ctx); err != nil {
			return 0, err
		}
	}
	return f.auth.UserCount(ctx)
}
