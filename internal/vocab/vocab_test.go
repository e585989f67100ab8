// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/resume-screener/pkg/types"
)

func TestDefault(t *testing.T) {
	v := Default()
	assert.Equal(t, DefaultVersion, v.Version())
	assert.Equal(t, 48, v.Len())
	assert.True(t, v.Contains("lightning web components"))
	assert.False(t, v.Contains("kubernetes"))
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		version string
		phrases []string
		want    []string
		wantErr bool
	}{
		{
			name:    "normalizes case and spacing",
			version: "t1",
			phrases: []string{"  Apex ", "Rest   API"},
			want:    []string{"apex", "rest api"},
		},
		{
			name:    "drops duplicates keeping first order",
			version: "t1",
			phrases: []string{"git", "apex", "GIT"},
			want:    []string{"git", "apex"},
		},
		{
			name:    "rejects empty list",
			version: "t1",
			phrases: []string{" ", ""},
			wantErr: true,
		},
		{
			name:    "rejects missing version",
			phrases: []string{"apex"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := New(tt.version, tt.phrases)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.Phrases())
		})
	}
}

func TestPhrasesReturnsCopy(t *testing.T) {
	v, err := New("t1", []string{"apex", "soql"})
	require.NoError(t, err)

	p := v.Phrases()
	p[0] = "mutated"
	assert.Equal(t, []string{"apex", "soql"}, v.Phrases())
}

func TestColumns(t *testing.T) {
	v, err := New("t1", []string{"apex", "rest api"})
	require.NoError(t, err)
	assert.Equal(t, []string{"skill_apex", "skill_rest api"}, v.Columns())
}

func TestFromConfig(t *testing.T) {
	v, err := FromConfig(types.VocabularyConfig{})
	require.NoError(t, err)
	assert.Equal(t, DefaultVersion, v.Version())

	v, err = FromConfig(types.VocabularyConfig{Skills: []string{"go", "grpc"}})
	require.NoError(t, err)
	assert.Equal(t, "custom", v.Version())
	assert.Equal(t, []string{"go", "grpc"}, v.Phrases())
}
