package nlp

import (
	"strings"
	"unicode"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
)

// Analyzer держит языковой ресурс (английский лемматизатор). Загружается один
// раз при старте процесса и дальше используется всеми запросами только на чтение.
type Analyzer struct {
	lemmatizer *golem.Lemmatizer
}

// NewAnalyzer loads the english language pack. Load failure is fatal for the
// service, callers are expected to abort startup.
func NewAnalyzer() (*Analyzer, error) {
	lem, err := golem.New(en.New())
	if err != nil {
		return nil, err
	}
	return &Analyzer{lemmatizer: lem}, nil
}

// Document — нормализованное представление текста: упорядоченные
// лемматизированные токены плюс исходный текст (нужен для поиска
// числовых паттернов опыта по «сырым» цифрам).
type Document struct {
	Raw    string
	Tokens []string
}

// Normalize приводит текст к виду для сравнения:
// - нижний регистр
// - все символы кроме букв, цифр и "+", "#", "." заменяются на пробелы
//   (так "c++", "c#" и ".net" остаются различимыми токенами)
// - отбрасываются стоп-слова
// - буквенные токены лемматизируются
// Пустой вход даёт пустой список токенов, а не ошибку.
func (a *Analyzer) Normalize(text string) Document {
	doc := Document{Raw: text}
	if strings.TrimSpace(text) == "" {
		return doc
	}
	lowered := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			return unicode.ToLower(r)
		case r == '+' || r == '#' || r == '.':
			return r
		default:
			return ' '
		}
	}, text)

	for _, raw := range strings.Fields(lowered) {
		tok := strings.TrimRight(raw, ".")
		if !hasAlnum(tok) {
			continue
		}
		if _, stop := stopwords[tok]; stop {
			continue
		}
		if isAlpha(tok) {
			tok = a.lemmatizer.Lemma(tok)
			// a lemma may itself be a stopword ("cans" -> "can")
			if _, stop := stopwords[tok]; stop {
				continue
			}
		}
		doc.Tokens = append(doc.Tokens, tok)
	}
	return doc
}

func hasAlnum(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return s != ""
}
