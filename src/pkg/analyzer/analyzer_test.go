package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name             string
		value            string
		length           int
		isPalindrome     bool
		uniqueCharacters int
		wordCount        int
	}{
		{
			name:             "simple word",
			value:            "hello",
			length:           5,
			isPalindrome:     false,
			uniqueCharacters: 4,
			wordCount:        1,
		},
		{
			name:             "palindrome word",
			value:            "racecar",
			length:           7,
			isPalindrome:     true,
			uniqueCharacters: 4,
			wordCount:        1,
		},
		{
			name:             "palindrome with punctuation and case",
			value:            "A man, a plan, a canal: Panama",
			length:           30,
			isPalindrome:     true,
			uniqueCharacters: 11,
			wordCount:        7,
		},
		{
			name:             "case sensitive unique characters",
			value:            "Aa",
			length:           2,
			isPalindrome:     true,
			uniqueCharacters: 2,
			wordCount:        1,
		},
		{
			name:             "multiple spaces between words",
			value:            "two   words",
			length:           11,
			isPalindrome:     false,
			uniqueCharacters: 7,
			wordCount:        2,
		},
		{
			name:             "unicode runes counted not bytes",
			value:            "héllo",
			length:           5,
			isPalindrome:     false,
			uniqueCharacters: 4,
			wordCount:        1,
		},
		{
			name:             "single character",
			value:            "x",
			length:           1,
			isPalindrome:     true,
			uniqueCharacters: 1,
			wordCount:        1,
		},
		{
			name:             "digits participate in palindrome check",
			value:            "1a1",
			length:           3,
			isPalindrome:     true,
			uniqueCharacters: 2,
			wordCount:        1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props := Analyze(tt.value)

			assert.Equal(t, tt.length, props.Length, "length")
			assert.Equal(t, tt.isPalindrome, props.IsPalindrome, "palindrome")
			assert.Equal(t, tt.uniqueCharacters, props.UniqueCharacters, "unique characters")
			assert.Equal(t, tt.wordCount, props.WordCount, "word count")
			assert.Len(t, props.SHA256Hash, 64)
		})
	}
}

func TestComputeSHA256(t *testing.T) {
	// Known digest, stable across runs
	assert.Equal(t,
		"2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		ComputeSHA256("hello"))

	// Identity: the digest of the same input never changes
	assert.Equal(t, ComputeSHA256("same input"), ComputeSHA256("same input"))
	assert.NotEqual(t, ComputeSHA256("a"), ComputeSHA256("b"))
}

func TestIsPalindromeNormalization(t *testing.T) {
	assert.True(t, IsPalindrome("Racecar"))
	assert.True(t, IsPalindrome("No 'x' in Nixon"))
	assert.True(t, IsPalindrome("!!!"), "no alphanumerics collapses to empty, which is a palindrome")
	assert.False(t, IsPalindrome("hello world"))
}

func TestCharacterFrequency(t *testing.T) {
	props := Analyze("aab b")

	assert.Equal(t, map[string]int{
		"a": 2,
		"b": 2,
		" ": 1,
	}, props.CharacterFrequency)
}

func TestAnalyzeEmptyString(t *testing.T) {
	props := Analyze("")

	assert.Equal(t, 0, props.Length)
	assert.True(t, props.IsPalindrome)
	assert.Equal(t, 0, props.UniqueCharacters)
	assert.Equal(t, 0, props.WordCount)
	assert.Empty(t, props.CharacterFrequency)
	assert.Len(t, props.SHA256Hash, 64)
}
