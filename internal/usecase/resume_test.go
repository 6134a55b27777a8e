package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	domainErrors "github.com/polkiloo/careerpath/internal/domain/errors"
	"github.com/polkiloo/careerpath/internal/domain/model"
	testhelpers "github.com/polkiloo/careerpath/internal/test"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestResumeUseCaseUpload(t *testing.T) {
	var gotPath string
	var gotType model.FileType
	parser := testhelpers.ParserStub{ParseFn: func(_ context.Context, path string, fileType model.FileType) (*model.ParsedResume, error) {
		gotPath, gotType = path, fileType
		return &model.ParsedResume{Name: "Jane Roe"}, nil
	}}
	uc := NewResumeUseCase(parser, discardLogger())

	res, err := uc.Upload(context.Background(), model.UploadedFile{
		Path:     "/tmp/uploads/1-cv.pdf",
		Filename: "cv.pdf",
		MimeType: "application/pdf",
	})
	if err != nil {
		t.Fatalf("upload returned error: %v", err)
	}
	if gotPath != "/tmp/uploads/1-cv.pdf" || gotType != model.FileTypePDF {
		t.Fatalf("unexpected parser call %q %q", gotPath, gotType)
	}
	if !res.Success || res.Filename != "cv.pdf" || res.Message != uploadSuccessMessage {
		t.Fatalf("unexpected upload result %+v", res)
	}
	if res.ExtractedInfo == nil || res.ExtractedInfo.Name != "Jane Roe" {
		t.Fatalf("unexpected extracted info %+v", res.ExtractedInfo)
	}
}

func TestResumeUseCaseUploadDetectsFileType(t *testing.T) {
	cases := map[string]model.FileType{
		"application/pdf":                 model.FileTypePDF,
		"Application/PDF; charset=binary": model.FileTypePDF,
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document": model.FileTypeDOCX,
		"text/plain": model.FileTypeText,
		"":           model.FileTypeText,
	}
	for mimeType, want := range cases {
		var got model.FileType
		parser := testhelpers.ParserStub{ParseFn: func(_ context.Context, _ string, fileType model.FileType) (*model.ParsedResume, error) {
			got = fileType
			return &model.ParsedResume{}, nil
		}}
		uc := NewResumeUseCase(parser, discardLogger())
		if _, err := uc.Upload(context.Background(), model.UploadedFile{Path: "f", MimeType: mimeType}); err != nil {
			t.Fatalf("upload returned error: %v", err)
		}
		if got != want {
			t.Fatalf("mime %q: expected %q, got %q", mimeType, want, got)
		}
	}
}

func TestResumeUseCaseUploadRequiresFile(t *testing.T) {
	uc := NewResumeUseCase(testhelpers.ParserStub{}, discardLogger())
	_, err := uc.Upload(context.Background(), model.UploadedFile{})
	var verr *domainErrors.ValidationError
	if !errors.As(err, &verr) || verr.Field != "resume" {
		t.Fatalf("expected resume validation error, got %v", err)
	}
}

func TestResumeUseCaseUploadParserError(t *testing.T) {
	parseErr := errors.New("parser crashed")
	uc := NewResumeUseCase(testhelpers.ParserStub{ParseFn: func(context.Context, string, model.FileType) (*model.ParsedResume, error) {
		return nil, parseErr
	}}, discardLogger())
	if _, err := uc.Upload(context.Background(), model.UploadedFile{Path: "f"}); !errors.Is(err, parseErr) {
		t.Fatalf("expected parser error, got %v", err)
	}
}
