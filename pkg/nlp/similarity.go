package nlp

import "gonum.org/v1/gonum/floats"

// CosineSimilarity считает косинусную близость term-frequency векторов двух
// документов над объединённым словарём их токенов. Результат в [0, 1].
// Пустой документ (нулевой вектор) даёт 0, а не NaN.
func CosineSimilarity(a, b Document) float64 {
	if len(a.Tokens) == 0 || len(b.Tokens) == 0 {
		return 0
	}

	// One shared dimension ordering for both vectors within the call.
	index := make(map[string]int, len(a.Tokens)+len(b.Tokens))
	for _, t := range a.Tokens {
		if _, ok := index[t]; !ok {
			index[t] = len(index)
		}
	}
	for _, t := range b.Tokens {
		if _, ok := index[t]; !ok {
			index[t] = len(index)
		}
	}

	va := make([]float64, len(index))
	vb := make([]float64, len(index))
	for _, t := range a.Tokens {
		va[index[t]]++
	}
	for _, t := range b.Tokens {
		vb[index[t]]++
	}

	na := floats.Norm(va, 2)
	nb := floats.Norm(vb, 2)
	if na == 0 || nb == 0 {
		return 0
	}
	sim := floats.Dot(va, vb) / (na * nb)
	// float drift guard
	if sim < 0 {
		sim = 0
	}
	if sim > 1 {
		sim = 1
	}
	return sim
}
