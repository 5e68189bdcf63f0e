package analysis

import (
	"time"

	"github.com/google/uuid"
)

// Result — результирующий отчёт сопоставления резюме и описания вакансии.
// Создаётся заново на каждый запрос и нигде не сохраняется.
type Result struct {
	ID                uuid.UUID `json:"id"`
	OverallScore      float64   `json:"overallScore"`
	SkillMatchPercent float64   `json:"skillMatchPercent"`
	SimilarityScore   float64   `json:"similarityScore"`
	MatchedSkills     []string  `json:"matchedSkills"`
	MissingSkills     []string  `json:"missingSkills"`
	ExtraSkills       []string  `json:"extraSkills"`
	// nil означает «в тексте не нашлось информации об опыте» — это не ноль лет.
	ExperienceYears         *float64 `json:"experienceYears"`
	RequiredExperienceYears *float64 `json:"requiredExperienceYears"`
	Suggestions             []string `json:"suggestions"`
	// Опциональное обогащение от LLM; пустое, когда модель не настроена
	// или недоступна.
	AIAdvice  string    `json:"aiAdvice,omitempty"`
	Model     string    `json:"model,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
