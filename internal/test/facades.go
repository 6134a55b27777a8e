package test

import (
	"context"
	"sync"

	"github.com/polkiloo/careerpath/internal/domain/model"
)

// PlatformFacadeStub provides controllable behaviour for HTTP handler tests.
type PlatformFacadeStub struct {
	RegisterFn  func(context.Context, model.Registration) (*model.AuthResult, error)
	LoginFn     func(context.Context, string, string) (*model.AuthResult, error)
	ProfileFn   func(context.Context, string) (*model.User, error)
	ParseFn     func(string) (string, error)
	UploadFn    func(context.Context, model.UploadedFile) (*model.ResumeUpload, error)
	MatchFn     func(string, []string) (*model.JobMatch, error)
	BiasFn      func(string) (*model.BiasReport, error)
	QuestionsFn func([]string) []model.InterviewQuestion
	HealthFn    func(context.Context) (int64, error)
}

// Register returns a fixed account for successful registration scenarios.
func (s PlatformFacadeStub) Register(ctx context.Context, in model.Registration) (*model.AuthResult, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, in)
	}
	return &model.AuthResult{ID: "user-1", Name: in.Name, Email: in.Email, Token: "token"}, nil
}

// Login returns a fixed account for successful login scenarios.
func (s PlatformFacadeStub) Login(ctx context.Context, email, password string) (*model.AuthResult, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, email, password)
	}
	return &model.AuthResult{ID: "user-1", Name: "User", Email: email, Token: "token"}, nil
}

// Profile returns the profile of the token owner.
func (s PlatformFacadeStub) Profile(ctx context.Context, token string) (*model.User, error) {
	if s.ProfileFn != nil {
		return s.ProfileFn(ctx, token)
	}
	return &model.User{ID: "user-1", Name: "User", Email: "user@example.com"}, nil
}

// ParseToken returns identifier of authenticated user.
func (s PlatformFacadeStub) ParseToken(token string) (string, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return "user-1", nil
}

// UploadResume returns a successful upload carrying the sample resume.
func (s PlatformFacadeStub) UploadResume(ctx context.Context, in model.UploadedFile) (*model.ResumeUpload, error) {
	if s.UploadFn != nil {
		return s.UploadFn(ctx, in)
	}
	return &model.ResumeUpload{Success: true, Filename: in.Filename, Message: "ok", ExtractedInfo: &model.ParsedResume{Name: "John Doe"}}, nil
}

// MatchJob returns an empty match for role.
func (s PlatformFacadeStub) MatchJob(role string, skills []string) (*model.JobMatch, error) {
	if s.MatchFn != nil {
		return s.MatchFn(role, skills)
	}
	return &model.JobMatch{JobRole: role, MatchScore: 50, RelevantSkills: skills}, nil
}

// CheckBias returns a clean report.
func (s PlatformFacadeStub) CheckBias(text string) (*model.BiasReport, error) {
	if s.BiasFn != nil {
		return s.BiasFn(text)
	}
	return &model.BiasReport{CorrectedText: text}, nil
}

// InterviewQuestions returns a single general question.
func (s PlatformFacadeStub) InterviewQuestions(skills []string) []model.InterviewQuestion {
	if s.QuestionsFn != nil {
		return s.QuestionsFn(skills)
	}
	return []model.InterviewQuestion{{ID: 1, Question: "Tell me about yourself.", Category: "General", Difficulty: model.DifficultyEasy}}
}

// DatabaseHealth reports a single registered user.
func (s PlatformFacadeStub) DatabaseHealth(ctx context.Context) (int64, error) {
	if s.HealthFn != nil {
		return s.HealthFn(ctx)
	}
	return 1, nil
}

// HealthCheckerStub returns Err from HealthCheck.
type HealthCheckerStub struct {
	Err error
}

// HealthCheck returns configured error.
func (s HealthCheckerStub) HealthCheck(context.Context) error {
	return s.Err
}

// EventSinkStub records enqueued events.
type EventSinkStub struct {
	mu     sync.Mutex
	Events []model.UserRegistered
	Reject bool
}

// Enqueue stores event unless Reject is set.
func (s *EventSinkStub) Enqueue(event model.UserRegistered) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Reject {
		return false
	}
	s.Events = append(s.Events, event)
	return true
}

// Recorded returns a copy of accepted events.
func (s *EventSinkStub) Recorded() []model.UserRegistered {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.UserRegistered(nil), s.Events...)
}

// PublisherStub records published events and can fail on demand.
type PublisherStub struct {
	mu        sync.Mutex
	PublishFn func(context.Context, model.UserRegistered) error
	events    []model.UserRegistered
	calls     int
}

// Publish records event after consulting PublishFn.
func (s *PublisherStub) Publish(ctx context.Context, event model.UserRegistered) error {
	s.mu.Lock()
	s.calls++
	fn := s.PublishFn
	s.mu.Unlock()

	if fn != nil {
		if err := fn(ctx, event); err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

// Published returns a copy of successfully published events.
func (s *PublisherStub) Published() []model.UserRegistered {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.UserRegistered(nil), s.events...)
}

// Calls returns the number of Publish invocations.
func (s *PublisherStub) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// ParserStub implements the resume parser contract.
type ParserStub struct {
	ParseFn func(context.Context, string, model.FileType) (*model.ParsedResume, error)
}

// Parse returns a minimal resume by default.
func (s ParserStub) Parse(ctx context.Context, path string, fileType model.FileType) (*model.ParsedResume, error) {
	if s.ParseFn != nil {
		return s.ParseFn(ctx, path, fileType)
	}
	return &model.ParsedResume{Name: "Jane Roe", Skills: []string{"Go"}}, nil
}
