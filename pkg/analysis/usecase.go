package analysis

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/resume-match/pkg/llm"
	"github.com/artem13815/resume-match/pkg/nlp"
)

// UseCase — сценарий сопоставления текста резюме с текстом вакансии.
type UseCase interface {
	Analyze(ctx context.Context, resumeText, jobText string) Result
}

// Weights задаёт смешивание компонент итогового балла и штраф за нехватку
// опыта. Конфигурационная поверхность, значения по умолчанию: 70% навыки,
// 30% текстовая близость, 5 баллов за недостающий год, потолок 15.
type Weights struct {
	Skill                    float64
	Similarity               float64
	ExperiencePenaltyPerYear float64
	ExperiencePenaltyMax     float64
}

type service struct {
	analyzer   *nlp.Analyzer
	extractor  *Extractor
	weights    Weights
	llm        llm.ChatModel
	modelName  string
	maxTextLen int
}

// NewService wires the scoring pipeline. The LLM is optional: pass nil to get
// a purely deterministic service.
func NewService(an *nlp.Analyzer, ex *Extractor, w Weights, model llm.ChatModel, modelName string) UseCase {
	return &service{
		analyzer:   an,
		extractor:  ex,
		weights:    w,
		llm:        model,
		modelName:  modelName,
		maxTextLen: 12000,
	}
}

// Analyze прогоняет оба текста через нормализацию, извлечение навыков,
// оценку опыта и косинусную близость, затем агрегирует результат.
// На корректном тексте не ошибается никогда: пустые документы и пустые
// множества разрешаются в определённые значения, а не в ошибку.
func (s *service) Analyze(ctx context.Context, resumeText, jobText string) Result {
	resumeDoc := s.analyzer.Normalize(resumeText)
	jobDoc := s.analyzer.Normalize(jobText)

	resumeSkills := s.extractor.Extract(resumeDoc)
	jobSkills := s.extractor.Extract(jobDoc)

	matched, missing, extra := splitSkills(resumeSkills, jobSkills)

	// Пустой набор требований — валидный случай: ничего не требуется,
	// ничего не пропущено, совпадение 100%.
	skillPct := 100.0
	if len(jobSkills) > 0 {
		skillPct = round2(100 * float64(len(matched)) / float64(len(jobSkills)))
	}

	sim := round3(nlp.CosineSimilarity(resumeDoc, jobDoc))

	var expYears, reqYears *float64
	if v, ok := nlp.YearsOfExperience(resumeText); ok {
		expYears = &v
	}
	if v, ok := nlp.YearsOfExperience(jobText); ok {
		reqYears = &v
	}

	overall := s.combine(skillPct, sim, expYears, reqYears)

	res := Result{
		ID:                      uuid.New(),
		OverallScore:            overall,
		SkillMatchPercent:       skillPct,
		SimilarityScore:         sim,
		MatchedSkills:           matched,
		MissingSkills:           missing,
		ExtraSkills:             extra,
		ExperienceYears:         expYears,
		RequiredExperienceYears: reqYears,
		Suggestions:             buildSuggestions(missing, expYears, reqYears),
		CreatedAt:               time.Now().UTC(),
	}

	// Try to enrich with LLM; on failure keep the deterministic result.
	if s.llm != nil {
		if advice, err := s.askLLM(ctx, resumeText, jobText, res); err == nil {
			res.AIAdvice = advice
			res.Model = s.modelName
		}
	}
	return res
}

// combine смешивает процент навыков и близость с весами, затем применяет
// ограниченный штраф за нехватку опыта (только когда известны обе величины).
// Итог зажимается в [0, 100].
func (s *service) combine(skillPct, sim float64, expYears, reqYears *float64) float64 {
	total := s.weights.Skill + s.weights.Similarity
	score := (s.weights.Skill*skillPct + s.weights.Similarity*sim*100) / total

	if expYears != nil && reqYears != nil && *expYears < *reqYears {
		penalty := s.weights.ExperiencePenaltyPerYear * (*reqYears - *expYears)
		if penalty > s.weights.ExperiencePenaltyMax {
			penalty = s.weights.ExperiencePenaltyMax
		}
		score -= penalty
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return round2(score)
}

// splitSkills раскладывает навыки на пересечение и разности. Все три списка
// отсортированы, поэтому результат детерминирован.
func splitSkills(resumeSkills, jobSkills []string) (matched, missing, extra []string) {
	matched = []string{}
	missing = []string{}
	extra = []string{}

	inResume := toSet(resumeSkills)
	inJob := toSet(jobSkills)

	for _, sk := range jobSkills {
		if _, ok := inResume[sk]; ok {
			matched = append(matched, sk)
		} else {
			missing = append(missing, sk)
		}
	}
	for _, sk := range resumeSkills {
		if _, ok := inJob[sk]; !ok {
			extra = append(extra, sk)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)
	sort.Strings(extra)
	return matched, missing, extra
}

// buildSuggestions формирует рекомендации только из разрывов: нет разрыва —
// нет рекомендации.
func buildSuggestions(missing []string, expYears, reqYears *float64) []string {
	out := []string{}
	if len(missing) > 0 {
		out = append(out, "Consider learning or explicitly mentioning these skills: "+strings.Join(missing, ", ")+".")
	}
	if expYears != nil && reqYears != nil && *expYears < *reqYears {
		out = append(out, fmt.Sprintf(
			"The job asks for %s+ years of experience, the resume mentions %s. Make relevant experience more visible.",
			formatYears(*reqYears), formatYears(*expYears)))
	}
	return out
}

func (s *service) askLLM(ctx context.Context, resumeText, jobText string, res Result) (string, error) {
	resumeText = truncate(resumeText, s.maxTextLen)
	jobText = truncate(jobText, s.maxTextLen)
	system := "Ты карьерный консультант. Дай кандидату 3-5 коротких советов, как усилить резюме под вакансию. Отвечай списком, без воды."
	user := fmt.Sprintf(
		"Вакансия:\n<<<\n%s\n>>>\n\nРезюме:\n<<<\n%s\n>>>\n\nСовпавшие навыки: %s\nОтсутствующие навыки: %s\nИтоговый балл: %.2f из 100\n",
		jobText,
		resumeText,
		strings.Join(res.MatchedSkills, ", "),
		strings.Join(res.MissingSkills, ", "),
		res.OverallScore,
	)
	answer, err := s.llm.Ask(ctx, system, user)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

func toSet(items []string) map[string]struct{} {
	out := make(map[string]struct{}, len(items))
	for _, it := range items {
		out[it] = struct{}{}
	}
	return out
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}

func formatYears(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
