package resumeparser

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/careerpath/internal/config"
)

// Module exposes the resume parser to fx graph.
var Module = fx.Provide(newParser)

type parserParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// newParser prefers the parsing service over the local command when both are configured.
func newParser(p parserParams) (Parser, error) {
	var primary Parser = NewCommandParser(p.Config.ParserArgs(), p.Config.ResumeParserTimeout, p.Logger)
	if p.Config.ResumeParserURL != "" {
		remote, err := NewHTTPParser(p.Config.ResumeParserURL, p.Config.ResumeParserTimeout, p.Logger)
		if err != nil {
			return nil, err
		}
		primary = remote
	}
	return NewFallbackParser(primary, p.Logger), nil
}
