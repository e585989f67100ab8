// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rank

import (
	"math"
	"regexp"
	"slices"
	"sort"
	"strings"
)

// tokenRe matches runs of two or more word characters.
var tokenRe = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// Tokenize lowercases text and splits it into terms.
func Tokenize(text string) []string {
	return tokenRe.FindAllString(strings.ToLower(text), -1)
}

// Vector is a sparse, L2-normalized term-weight vector. Terms are kept
// sorted so that arithmetic over equal vectors is reproducible bit for bit.
type Vector struct {
	terms   []string
	weights []float64
}

// Len returns the number of distinct terms.
func (v Vector) Len() int { return len(v.terms) }

// Weight returns the weight of term, zero when absent.
func (v Vector) Weight(term string) float64 {
	if i, ok := slices.BinarySearch(v.terms, term); ok {
		return v.weights[i]
	}
	return 0
}

// FitTransform weights every document of corpus by TF-IDF: raw term counts
// scaled by the smoothed inverse document frequency
// ln((1+n)/(1+df)) + 1, then normalized to unit length. A document with no
// terms yields an empty vector.
func FitTransform(corpus []string) []Vector {
	counts := make([]map[string]int, len(corpus))
	df := make(map[string]int)
	for i, doc := range corpus {
		c := make(map[string]int)
		for _, tok := range Tokenize(doc) {
			c[tok]++
		}
		for term := range c {
			df[term]++
		}
		counts[i] = c
	}

	n := float64(len(corpus))
	vectors := make([]Vector, len(corpus))
	for i, c := range counts {
		terms := make([]string, 0, len(c))
		for term := range c {
			terms = append(terms, term)
		}
		sort.Strings(terms)

		weights := make([]float64, len(terms))
		var norm float64
		for j, term := range terms {
			idf := math.Log((1+n)/(1+float64(df[term]))) + 1
			weights[j] = float64(c[term]) * idf
			norm += weights[j] * weights[j]
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for j := range weights {
				weights[j] /= norm
			}
		}
		vectors[i] = Vector{terms: terms, weights: weights}
	}
	return vectors
}

// Cosine returns the cosine similarity of two normalized vectors, clamped
// to [0, 1].
func Cosine(a, b Vector) float64 {
	var dot float64
	for i, j := 0, 0; i < len(a.terms) && j < len(b.terms); {
		switch strings.Compare(a.terms[i], b.terms[j]) {
		case 0:
			dot += a.weights[i] * b.weights[j]
			i++
			j++
		case -1:
			i++
		default:
			j++
		}
	}
	return min(max(dot, 0), 1)
}
