package checkers

import (
	"context"
	"errors"

	"github.com/artem13815/resume-match/pkg/vocabulary"
)

// VocabularyChecker verifies the skill vocabulary is loaded and non-empty.
type VocabularyChecker struct {
	vocab *vocabulary.Vocabulary
}

func NewVocabularyChecker(vocab *vocabulary.Vocabulary) *VocabularyChecker {
	return &VocabularyChecker{vocab: vocab}
}

func (c *VocabularyChecker) Name() string { return "vocabulary" }

func (c *VocabularyChecker) Check(ctx context.Context) error {
	if c.vocab == nil || c.vocab.Len() == 0 {
		return errors.New("skill vocabulary is not loaded")
	}
	return nil
}
