package resumeparser

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/polkiloo/careerpath/internal/domain/model"
)

// ErrNotConfigured is returned when no external parser command is set.
var ErrNotConfigured = errors.New("resume parser command not configured")

// Parser extracts structured information from a resume file.
type Parser interface {
	Parse(ctx context.Context, path string, fileType model.FileType) (*model.ParsedResume, error)
}

// CommandParser delegates parsing to an external program. The program receives the file
// path and type as its last two arguments and prints a JSON object on stdout.
type CommandParser struct {
	args    []string
	timeout time.Duration
	logger  *slog.Logger
}

// output mirrors the JSON printed by the parser program.
type output struct {
	model.ParsedResume
	Error string `json:"error,omitempty"`
}

// NewCommandParser builds CommandParser for argv.
func NewCommandParser(args []string, timeout time.Duration, logger *slog.Logger) *CommandParser {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &CommandParser{args: args, timeout: timeout, logger: logger}
}

func (p *CommandParser) Parse(ctx context.Context, path string, fileType model.FileType) (*model.ParsedResume, error) {
	if len(p.args) == 0 {
		return nil, ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	argv := append(append([]string{}, p.args[1:]...), path, string(fileType))
	cmd := exec.CommandContext(ctx, p.args[0], argv...)
	cmd.WaitDelay = time.Second

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("run resume parser: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	p.logger.Debug("resume parsed", slog.Duration("latency", time.Since(start)), slog.String("type", string(fileType)))

	var out output
	if err := json.Unmarshal(stdout.Bytes(), &out); err != nil {
		return nil, fmt.Errorf("decode resume parser output: %w", err)
	}
	if out.Error != "" {
		return nil, fmt.Errorf("resume parser: %s", out.Error)
	}

	return &out.ParsedResume, nil
}

// FallbackParser uses primary and returns SampleResume when it fails.
type FallbackParser struct {
	primary Parser
	logger  *slog.Logger
}

func NewFallbackParser(primary Parser, logger *slog.Logger) *FallbackParser {
	return &FallbackParser{primary: primary, logger: logger}
}

func (p *FallbackParser) Parse(ctx context.Context, path string, fileType model.FileType) (*model.ParsedResume, error) {
	parsed, err := p.primary.Parse(ctx, path, fileType)
	if err == nil {
		return parsed, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	if errors.Is(err, ErrNotConfigured) {
		p.logger.InfoContext(ctx, "resume parser not configured, using sample data")
	} else {
		p.logger.WarnContext(ctx, "resume parser unavailable, using sample data", slog.String("error", err.Error()))
	}
	return SampleResume(), nil
}

// SampleResume returns the canned extraction used when no parser is available.
func SampleResume() *model.ParsedResume {
	return &model.ParsedResume{
		Name:   "John Doe",
		Email:  "john.doe@example.com",
		Phone:  "+1-234-567-8900",
		Skills: []string{"JavaScript", "React", "Node.js", "Python", "Machine Learning"},
		Experience: []model.Experience{{
			Title:       "Software Engineer",
			Company:     "Tech Company Inc.",
			Duration:    "2020 - Present",
			Description: "Developed web applications using modern JavaScript frameworks.",
		}},
		Education: []model.Education{{
			Degree:      "Bachelor of Science",
			Field:       "Computer Science",
			Institution: "University of Technology",
			Year:        "2016 - 2020",
		}},
		Summary: "Experienced software engineer with expertise in full-stack development and machine learning.",
		Projects: []model.Project{{
			Title:        "E-commerce Platform",
			Description:  "Built a full-stack e-commerce solution with React and Node.js",
			Technologies: []string{"React", "Node.js", "MongoDB"},
		}},
	}
}
