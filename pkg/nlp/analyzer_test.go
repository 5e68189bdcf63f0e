package nlp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	an, err := NewAnalyzer()
	require.NoError(t, err)
	return an
}

func TestNormalizeEmptyInput(t *testing.T) {
	an := newAnalyzer(t)

	for _, text := range []string{"", "   ", "\n\t"} {
		doc := an.Normalize(text)
		assert.Empty(t, doc.Tokens, "input %q", text)
	}
}

func TestNormalizeKeepsSpecialSkillTokens(t *testing.T) {
	an := newAnalyzer(t)

	doc := an.Normalize("Expert in C++ and C#, shipped .NET services")

	assert.Contains(t, doc.Tokens, "c++")
	assert.Contains(t, doc.Tokens, "c#")
	assert.Contains(t, doc.Tokens, ".net")
	// "and", "in" are stopwords
	assert.NotContains(t, doc.Tokens, "and")
	assert.NotContains(t, doc.Tokens, "in")
}

func TestNormalizeLowercasesAndLemmatizes(t *testing.T) {
	an := newAnalyzer(t)

	doc := an.Normalize("Looking for Developers with strong SQL skills")

	assert.Contains(t, doc.Tokens, "look")
	assert.Contains(t, doc.Tokens, "developer")
	assert.Contains(t, doc.Tokens, "sql")
	assert.Contains(t, doc.Tokens, "skill")
}

func TestNormalizeStripsPunctuationOnlyTokens(t *testing.T) {
	an := newAnalyzer(t)

	doc := an.Normalize("skills: python, sql... +++ ###")

	assert.Equal(t, []string{"skill", "python", "sql"}, doc.Tokens)
}

func TestNormalizeKeepsRawText(t *testing.T) {
	an := newAnalyzer(t)

	raw := "5 years of experience"
	doc := an.Normalize(raw)
	assert.Equal(t, raw, doc.Raw)
}

func TestNormalizeIdempotent(t *testing.T) {
	an := newAnalyzer(t)

	texts := []string{
		"Senior Python developer with strong SQL skills",
		"Expert in C++ and machine learning, 5 years of experience",
		"Built REST APIs with Go and PostgreSQL on Kubernetes",
	}
	for _, text := range texts {
		once := an.Normalize(text).Tokens
		again := an.Normalize(strings.Join(once, " ")).Tokens
		assert.Equal(t, once, again, "input %q", text)
	}
}
