package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJoinCodeLengthAndAlphabet(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := GenerateJoinCode(CodeLength, func(string) bool { return false })
		require.Len(t, code, CodeLength)
		for _, r := range code {
			assert.Contains(t, codeAlphabet, string(r))
		}
	}
}

func TestGenerateJoinCodeAvoidsLiveCodes(t *testing.T) {
	// Reject the first few candidates and make sure the final code is
	// never one of them.
	rejected := map[string]bool{}
	misses := 0
	code := GenerateJoinCode(CodeLength, func(c string) bool {
		if misses < 5 {
			misses++
			rejected[c] = true
			return true
		}
		return false
	})
	assert.False(t, rejected[code])
	assert.Equal(t, 5, misses)
}

func TestGenerateJoinCodeUppercase(t *testing.T) {
	code := GenerateJoinCode(CodeLength, func(string) bool { return false })
	assert.Equal(t, strings.ToUpper(code), code)
}
