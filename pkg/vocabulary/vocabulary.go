package vocabulary

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Term — канонический навык и его алиасы. Неизменяем после загрузки словаря.
type Term struct {
	Canonical string   `json:"canonical"`
	Aliases   []string `json:"aliases,omitempty"`
}

// Vocabulary — справочник известных навыков. Строится один раз при старте,
// передаётся по ссылке и дальше никем не мутируется.
type Vocabulary struct {
	terms []Term
}

// New validates the term list: canonical names must be non-empty and unique
// (case-insensitive).
func New(terms []Term) (*Vocabulary, error) {
	seen := make(map[string]struct{}, len(terms))
	out := make([]Term, 0, len(terms))
	for _, t := range terms {
		name := strings.ToLower(strings.TrimSpace(t.Canonical))
		if name == "" {
			return nil, fmt.Errorf("vocabulary term with empty canonical name")
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("duplicate vocabulary term %q", name)
		}
		seen[name] = struct{}{}
		out = append(out, Term{Canonical: name, Aliases: t.Aliases})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("vocabulary is empty")
	}
	return &Vocabulary{terms: out}, nil
}

// Terms returns the term list. Callers must treat it as read-only.
func (v *Vocabulary) Terms() []Term { return v.terms }

func (v *Vocabulary) Len() int { return len(v.terms) }

// LoadFile reads a JSON array of terms, overriding the built-in vocabulary.
func LoadFile(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vocabulary file: %w", err)
	}
	var terms []Term
	if err := json.Unmarshal(data, &terms); err != nil {
		return nil, fmt.Errorf("parse vocabulary file %s: %w", path, err)
	}
	return New(terms)
}

// Load returns the vocabulary from path when it is set, the built-in set
// otherwise.
func Load(path string) (*Vocabulary, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}
