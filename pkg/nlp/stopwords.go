package nlp

// stopwords contains common English words excluded from token streams before
// matching and similarity. Kept small on purpose: skill terms must never
// collide with it.
var stopwords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "is": {}, "are": {},
	"was": {}, "were": {}, "do": {}, "does": {}, "did": {},
	"have": {}, "has": {}, "had": {}, "be": {}, "been": {},
	"being": {}, "will": {}, "would": {}, "could": {}, "should": {},
	"may": {}, "might": {}, "can": {}, "shall": {}, "not": {},
	"no": {}, "and": {}, "or": {}, "but": {}, "if": {},
	"then": {}, "than": {}, "so": {}, "as": {}, "at": {},
	"by": {}, "for": {}, "from": {}, "in": {}, "into": {},
	"of": {}, "on": {}, "to": {}, "with": {}, "about": {},
	"up": {}, "out": {}, "it": {}, "its": {}, "this": {},
	"that": {}, "these": {}, "those": {}, "what": {}, "which": {},
	"who": {}, "whom": {}, "how": {}, "when": {}, "where": {},
	"why": {}, "you": {}, "your": {}, "yours": {}, "me": {},
	"i": {}, "my": {}, "we": {}, "our": {}, "they": {},
	"their": {}, "them": {}, "he": {}, "she": {}, "her": {},
	"him": {}, "his": {}, "us": {}, "am": {}, "also": {},
	"such": {}, "both": {}, "each": {}, "any": {}, "all": {},
	"etc": {},
}
