package checkers

import (
	"context"
	"errors"

	"github.com/artem13815/resume-match/pkg/nlp"
)

// AnalyzerChecker verifies the language-analysis resource answers queries.
type AnalyzerChecker struct {
	analyzer *nlp.Analyzer
}

func NewAnalyzerChecker(an *nlp.Analyzer) *AnalyzerChecker {
	return &AnalyzerChecker{analyzer: an}
}

func (c *AnalyzerChecker) Name() string { return "analyzer" }

func (c *AnalyzerChecker) Check(ctx context.Context) error {
	if c.analyzer == nil {
		return errors.New("analyzer is not initialized")
	}
	if toks := c.analyzer.Normalize("running tests").Tokens; len(toks) == 0 {
		return errors.New("analyzer returned no tokens for probe text")
	}
	return nil
}
