package session_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"picoweb/core/session"
)

// seqSource yields scripted indices, wrapping modulo the bound.
type seqSource struct {
	values []int
	pos    int
}

func (s *seqSource) IntN(n int) (int, error) {
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v % n, nil
}

func TestNewTokenGenerator(t *testing.T) {
	t.Parallel()

	t.Run("rejects an alphabet shorter than two characters", func(t *testing.T) {
		t.Parallel()

		_, err := session.NewTokenGenerator(session.WithAlphabet("a"))
		require.ErrorIs(t, err, session.ErrInvalidAlphabet)
	})
}

func TestTokenGeneratorGenerate(t *testing.T) {
	t.Parallel()

	t.Run("tokens are always sixteen characters from the alphabet", func(t *testing.T) {
		t.Parallel()

		gen, err := session.NewTokenGenerator()
		require.NoError(t, err)

		for i := 0; i < 500; i++ {
			token, err := gen.Generate()
			require.NoError(t, err)
			assert.Len(t, token, session.TokenLength)
			for _, c := range token {
				assert.Contains(t, session.DefaultAlphabet, string(c))
			}
		}
	})

	t.Run("the final alphabet index is never drawn", func(t *testing.T) {
		t.Parallel()

		// The exclusion applies to the final index, so it is only visible
		// in token text when the last character is unique in the alphabet.
		gen, err := session.NewTokenGenerator(session.WithAlphabet("adfgksnejz"))
		require.NoError(t, err)

		for i := 0; i < 500; i++ {
			token, err := gen.Generate()
			require.NoError(t, err)
			assert.NotContains(t, token, "z")
		}
	})

	t.Run("deterministic with an injected source", func(t *testing.T) {
		t.Parallel()

		gen, err := session.NewTokenGenerator(
			session.WithAlphabet("abcz"),
			session.WithSource(&seqSource{values: []int{0, 1, 2}}),
		)
		require.NoError(t, err)

		token, err := gen.Generate()
		require.NoError(t, err)
		assert.Equal(t, "abcabcabcabcabca", token)
		// Index bound is len(alphabet)-1, so "z" cannot appear.
		assert.False(t, strings.Contains(token, "z"))
	})
}
