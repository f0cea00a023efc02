package speaking

import (
	"context"
	"fmt"
	"strings"

	"speak-byte/internal/domain"

	"github.com/jdkato/prose/v2"
)

// TaggerFunc adapts a plain function to domain.RoleTagger.
type TaggerFunc func(ctx context.Context, text string) (domain.Roles, error)

func (f TaggerFunc) TagRoles(ctx context.Context, text string) (domain.Roles, error) {
	return f(ctx, text)
}

// TaggedToken is a word with its Penn Treebank part-of-speech tag.
type TaggedToken struct {
	Text string
	Tag  string
}

// ProseTagger extracts grammatical roles with the prose averaged-perceptron
// POS tagger. It runs in-process and needs no network.
type ProseTagger struct{}

func NewProseTagger() *ProseTagger {
	return &ProseTagger{}
}

func (t *ProseTagger) TagRoles(ctx context.Context, text string) (domain.Roles, error) {
	if err := ctx.Err(); err != nil {
		return domain.Roles{}, err
	}
	if strings.TrimSpace(text) == "" {
		return domain.Roles{}, nil
	}

	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithExtraction(false))
	if err != nil {
		return domain.Roles{}, fmt.Errorf("failed to tag %q: %w", text, err)
	}

	tokens := make([]TaggedToken, 0, len(doc.Tokens()))
	for _, tok := range doc.Tokens() {
		tokens = append(tokens, TaggedToken{Text: tok.Text, Tag: tok.Tag})
	}
	return ExtractRoles(tokens), nil
}

// ExtractRoles assigns subject, verb and object roles from a tagged token
// stream. Nominals before the first verb are subjects, verbs are collected
// in order and nominals after the first verb are objects. Questions that
// open with a verb ("where is the counter") promote the first object to
// subject.
func ExtractRoles(tokens []TaggedToken) domain.Roles {
	var roles domain.Roles
	seenVerb := false

	for _, tok := range tokens {
		word := strings.Trim(strings.ToLower(tok.Text), "'")
		if word == "" {
			continue
		}
		switch {
		case isVerbTag(tok.Tag):
			seenVerb = true
			roles.Verbs = append(roles.Verbs, word)
		case isNominalTag(tok.Tag):
			if seenVerb {
				roles.Objects = append(roles.Objects, word)
			} else {
				roles.Subjects = append(roles.Subjects, word)
			}
		}
	}

	if len(roles.Subjects) == 0 && len(roles.Objects) > 0 {
		roles.Subjects = roles.Objects[:1]
		roles.Objects = roles.Objects[1:]
	}
	return roles
}

func isVerbTag(tag string) bool {
	return strings.HasPrefix(tag, "VB")
}

func isNominalTag(tag string) bool {
	switch tag {
	case "NN", "NNS", "NNP", "NNPS", "PRP":
		return true
	}
	return false
}
