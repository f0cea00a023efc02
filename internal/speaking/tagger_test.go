package speaking

import (
	"context"
	"testing"

	"speak-byte/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractRoles(t *testing.T) {
	tests := []struct {
		name   string
		tokens []TaggedToken
		want   domain.Roles
	}{
		{
			name: "declarative",
			tokens: []TaggedToken{
				{"I", "PRP"}, {"eat", "VBP"}, {"an", "DT"}, {"apple", "NN"},
				{"every", "DT"}, {"day", "NN"},
			},
			want: domain.Roles{
				Subjects: []string{"i"},
				Verbs:    []string{"eat"},
				Objects:  []string{"apple", "day"},
			},
		},
		{
			name: "question promotes first object",
			tokens: []TaggedToken{
				{"Where", "WRB"}, {"is", "VBZ"}, {"the", "DT"}, {"counter", "NN"},
				{"for", "IN"}, {"Korean", "NNP"}, {"Air", "NNP"},
			},
			want: domain.Roles{
				Subjects: []string{"counter"},
				Verbs:    []string{"is"},
				Objects:  []string{"korean", "air"},
			},
		},
		{
			name: "compound subject and auxiliary",
			tokens: []TaggedToken{
				{"Tom", "NNP"}, {"and", "CC"}, {"Jane", "NNP"}, {"are", "VBP"},
				{"going", "VBG"}, {"home", "NN"},
			},
			want: domain.Roles{
				Subjects: []string{"tom", "jane"},
				Verbs:    []string{"are", "going"},
				Objects:  []string{"home"},
			},
		},
		{
			name:   "fragment without roles",
			tokens: []TaggedToken{{"very", "RB"}, {"quickly", "RB"}},
			want:   domain.Roles{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractRoles(tt.tokens))
		})
	}
}

func TestProseTagger_EmptyText(t *testing.T) {
	roles, err := NewProseTagger().TagRoles(context.Background(), "  ")
	require.NoError(t, err)
	assert.Equal(t, domain.Roles{}, roles)
}

func TestProseTagger_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewProseTagger().TagRoles(ctx, "I eat an apple")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTaggerFunc(t *testing.T) {
	var tagger domain.RoleTagger = TaggerFunc(func(ctx context.Context, text string) (domain.Roles, error) {
		return domain.Roles{Verbs: []string{text}}, nil
	})
	roles, err := tagger.TagRoles(context.Background(), "run")
	require.NoError(t, err)
	assert.Equal(t, []string{"run"}, roles.Verbs)
}
