package resumeparser

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"time"

	"github.com/polkiloo/careerpath/internal/domain/model"
)

const defaultRetryAfter = 5 * time.Second

// TooManyRequestsError reports that the parsing service throttled the request.
type TooManyRequestsError struct {
	RetryAfter time.Duration
}

func (e TooManyRequestsError) Error() string {
	return fmt.Sprintf("too many requests, retry after %s", e.RetryAfter)
}

// HTTPParser posts resumes to a remote parsing service as multipart/form-data
// (fields "resume" and "fileType") on <base>/parse.
type HTTPParser struct {
	endpoint   *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPParser creates HTTPParser for baseURL.
func NewHTTPParser(baseURL string, timeout time.Duration, logger *slog.Logger) (*HTTPParser, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse resume parser url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("resume parser url must be absolute")
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	endpoint := *parsed
	endpoint.Path = path.Join(endpoint.Path, "/parse")
	return &HTTPParser{
		endpoint:   &endpoint,
		logger:     logger,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

func (p *HTTPParser) Parse(ctx context.Context, filePath string, fileType model.FileType) (*model.ParsedResume, error) {
	body, contentType, err := multipartResume(filePath, fileType)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint.String(), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var out output
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return nil, fmt.Errorf("decode resume parser response: %w", err)
		}
		if out.Error != "" {
			return nil, fmt.Errorf("resume parser: %s", out.Error)
		}
		return &out.ParsedResume, nil
	case http.StatusTooManyRequests:
		return nil, TooManyRequestsError{RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"))}
	default:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<10))
		p.logger.ErrorContext(ctx, "resume parser request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(msg)))
		return nil, fmt.Errorf("resume parser error: %s", resp.Status)
	}
}

func multipartResume(filePath string, fileType model.FileType) (*bytes.Buffer, string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, "", fmt.Errorf("open resume: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("fileType", string(fileType)); err != nil {
		return nil, "", err
	}
	part, err := w.CreateFormFile("resume", filepath.Base(filePath))
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, "", fmt.Errorf("read resume: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return defaultRetryAfter
	}
	if seconds, err := strconv.Atoi(header); err == nil {
		return time.Duration(seconds) * time.Second
	}
	if t, err := http.ParseTime(header); err == nil {
		return time.Until(t)
	}
	return defaultRetryAfter
}
