// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	assert.Equal(t,
		[]string{"salesforce", "apex", "developer", "ci", "cd", "5000", "rest_api", "josé"},
		Tokenize("Salesforce APEX-Developer, a CI/CD 5000 rest_api José x"))
	assert.Empty(t, Tokenize("a b c !"))
}

func TestFitTransform_SmoothedIDF(t *testing.T) {
	vectors := FitTransform([]string{"apex apex soql", "apex"})
	require.Len(t, vectors, 2)

	assert.InDelta(t, 0.8181802073667197, vectors[0].Weight("apex"), 1e-12)
	assert.InDelta(t, 0.5749618667993135, vectors[0].Weight("soql"), 1e-12)
	assert.InDelta(t, 1.0, vectors[1].Weight("apex"), 1e-12)
	assert.InDelta(t, 0.8181802073667197, Cosine(vectors[0], vectors[1]), 1e-12)
}

func TestFitTransform_EmptyDocument(t *testing.T) {
	vectors := FitTransform([]string{"apex developer", "", "!!"})
	assert.Zero(t, vectors[1].Len())
	assert.Zero(t, vectors[2].Len())
	assert.Zero(t, Cosine(vectors[0], vectors[1]))
}

func TestCosine_Range(t *testing.T) {
	vectors := FitTransform([]string{"apex soql lwc", "apex soql lwc", "lwc", "cobol"})
	assert.InDelta(t, 1.0, Cosine(vectors[0], vectors[1]), 1e-12)
	assert.Zero(t, Cosine(vectors[0], vectors[3]))
	for _, v := range vectors[1:] {
		s := Cosine(vectors[0], v)
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 1.0)
	}
}
