package analysis

import (
	"sort"

	"github.com/artem13815/resume-match/pkg/nlp"
	"github.com/artem13815/resume-match/pkg/vocabulary"
)

// Extractor ищет навыки словаря в нормализованном документе. Таблицы
// строятся один раз из словаря и лемматизатора и дальше только читаются.
type Extractor struct {
	// single-token alias -> canonical name
	single map[string]string
	// multi-token phrases, matched as contiguous in-order token runs
	phrases []phrase
}

type phrase struct {
	tokens    []string
	canonical string
}

// NewExtractor normalizes every canonical name and alias through the same
// pipeline documents go through, so both sides always agree on token shape.
func NewExtractor(an *nlp.Analyzer, vocab *vocabulary.Vocabulary) *Extractor {
	e := &Extractor{single: make(map[string]string)}
	for _, term := range vocab.Terms() {
		variants := append([]string{term.Canonical}, term.Aliases...)
		for _, variant := range variants {
			toks := an.Normalize(variant).Tokens
			switch len(toks) {
			case 0:
				continue
			case 1:
				// first spelling wins; canonical names are registered
				// before aliases
				if _, taken := e.single[toks[0]]; !taken {
					e.single[toks[0]] = term.Canonical
				}
			default:
				e.phrases = append(e.phrases, phrase{tokens: toks, canonical: term.Canonical})
			}
		}
	}
	return e
}

// Extract возвращает отсортированный список канонических навыков документа.
// Матчинг только по целым токенам: "java" не сработает внутри "javascript",
// многословные термины требуют подряд идущих токенов в исходном порядке.
func (e *Extractor) Extract(doc nlp.Document) []string {
	found := make(map[string]struct{})
	for _, tok := range doc.Tokens {
		if canonical, ok := e.single[tok]; ok {
			found[canonical] = struct{}{}
		}
	}
	for _, p := range e.phrases {
		if containsRun(doc.Tokens, p.tokens) {
			found[p.canonical] = struct{}{}
		}
	}
	out := make([]string, 0, len(found))
	for name := range found {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func containsRun(tokens, run []string) bool {
	if len(run) == 0 || len(run) > len(tokens) {
		return false
	}
outer:
	for i := 0; i+len(run) <= len(tokens); i++ {
		for j, want := range run {
			if tokens[i+j] != want {
				continue outer
			}
		}
		return true
	}
	return false
}
