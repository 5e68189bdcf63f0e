package vocabulary

// defaultTerms — встроенный словарь навыков (технические + общие).
// Алиасы отображаются на канонические имена, чтобы документ никогда не
// засчитывался дважды за один навык через два разных написания.
var defaultTerms = []Term{
	// Programming languages
	{Canonical: "python"},
	{Canonical: "java"},
	{Canonical: "c"},
	{Canonical: "c++", Aliases: []string{"cpp"}},
	{Canonical: "c#", Aliases: []string{"csharp"}},
	{Canonical: "javascript", Aliases: []string{"js"}},
	{Canonical: "typescript", Aliases: []string{"ts"}},
	{Canonical: "go", Aliases: []string{"golang"}},
	{Canonical: "rust"},
	{Canonical: "php"},
	{Canonical: "r"},
	{Canonical: "sql"},
	{Canonical: ".net", Aliases: []string{"dotnet"}},
	{Canonical: "node.js", Aliases: []string{"nodejs"}},

	// Data / machine learning
	{Canonical: "machine learning", Aliases: []string{"ml"}},
	{Canonical: "deep learning"},
	{Canonical: "nlp", Aliases: []string{"natural language processing"}},
	{Canonical: "data analysis"},
	{Canonical: "data analytics"},
	{Canonical: "data engineering"},
	{Canonical: "statistics"},
	{Canonical: "eda"},
	{Canonical: "computer vision"},

	// Python libraries
	{Canonical: "pandas"},
	{Canonical: "numpy"},
	{Canonical: "scikit-learn", Aliases: []string{"sklearn"}},
	{Canonical: "tensorflow"},
	{Canonical: "pytorch"},
	{Canonical: "matplotlib"},
	{Canonical: "seaborn"},

	// Databases
	{Canonical: "mysql"},
	{Canonical: "postgresql", Aliases: []string{"postgres"}},
	{Canonical: "mongodb", Aliases: []string{"mongo"}},
	{Canonical: "redis"},

	// Cloud / devops
	{Canonical: "aws", Aliases: []string{"amazon web services"}},
	{Canonical: "azure"},
	{Canonical: "gcp", Aliases: []string{"google cloud"}},
	{Canonical: "docker"},
	{Canonical: "kubernetes", Aliases: []string{"k8s"}},
	{Canonical: "ci/cd", Aliases: []string{"cicd", "ci cd"}},
	{Canonical: "git"},
	{Canonical: "github"},

	// General / soft skills
	{Canonical: "problem solving"},
	{Canonical: "teamwork"},
	{Canonical: "communication"},
	{Canonical: "leadership"},
	{Canonical: "api development"},
	{Canonical: "rest api", Aliases: []string{"rest"}},
}

// Default returns the built-in skill vocabulary.
func Default() (*Vocabulary, error) {
	return New(defaultTerms)
}
