package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/polkiloo/careerpath/internal/adapter/resumeparser"
	domainErrors "github.com/polkiloo/careerpath/internal/domain/errors"
	"github.com/polkiloo/careerpath/internal/domain/model"
)

const uploadSuccessMessage = "Resume uploaded and parsed successfully"

// ResumeUseCase runs uploaded resumes through the configured parser.
type ResumeUseCase struct {
	parser resumeparser.Parser
	logger *slog.Logger
}

// NewResumeUseCase constructs ResumeUseCase.
func NewResumeUseCase(parser resumeparser.Parser, logger *slog.Logger) *ResumeUseCase {
	return &ResumeUseCase{parser: parser, logger: logger}
}

// Upload parses the stored file and reports the extracted information.
func (u *ResumeUseCase) Upload(ctx context.Context, in model.UploadedFile) (*model.ResumeUpload, error) {
	if in.Path == "" {
		return nil, domainErrors.NewValidationError("resume", "file is required")
	}

	fileType := model.DetectFileType(baseMIME(in.MimeType))
	u.logger.InfoContext(ctx, "parsing resume",
		slog.String("filename", filepath.Base(in.Filename)),
		slog.String("type", string(fileType)),
	)

	parsed, err := u.parser.Parse(ctx, in.Path, fileType)
	if err != nil {
		return nil, fmt.Errorf("parse resume: %w", err)
	}

	return &model.ResumeUpload{
		Success:       true,
		Filename:      in.Filename,
		Message:       uploadSuccessMessage,
		ExtractedInfo: parsed,
	}, nil
}

func baseMIME(mimeType string) string {
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = mimeType[:i]
	}
	return strings.ToLower(strings.TrimSpace(mimeType))
}
