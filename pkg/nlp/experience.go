package nlp

import (
	"regexp"
	"strconv"
	"strings"
)

// maxPlausibleYears отсекает мусор из извлечения («99 years» из шума разметки).
const maxPlausibleYears = 60

var reYears = regexp.MustCompile(`(\d{1,2}(?:[.,]\d{1,2})?)\s*\+?\s*(?:years?|yrs?)\b`)

// YearsOfExperience оценивает суммарный опыт по фразам вида
// "5 years of experience", "3+ years", "10 yrs exp". Когда кандидатов
// несколько, берётся максимум: резюме с опытом по ролям и общим итогом
// должно отдавать итог, а он как правило наибольший.
// ok=false означает «информации нет» — это не то же самое, что ноль лет.
func YearsOfExperience(text string) (years float64, ok bool) {
	if text == "" {
		return 0, false
	}
	t := strings.ToLower(text)
	for _, m := range reYears.FindAllStringSubmatch(t, -1) {
		v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
		if err != nil {
			continue
		}
		if v < 0 || v > maxPlausibleYears {
			continue
		}
		if !ok || v > years {
			years, ok = v, true
		}
	}
	return years, ok
}
