// Package analyzer computes the stored properties of a string: length,
// palindrome check, unique character count, word count, per-character
// frequency and a SHA-256 digest that doubles as the record identity.
package analyzer

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Properties holds everything computed from a single input string.
// All fields are derived from the raw value except IsPalindrome,
// which normalizes first.
type Properties struct {
	Length             int            `json:"length"`
	IsPalindrome       bool           `json:"is_palindrome"`
	UniqueCharacters   int            `json:"unique_characters"`
	WordCount          int            `json:"word_count"`
	SHA256Hash         string         `json:"sha256_hash"`
	CharacterFrequency map[string]int `json:"character_frequency_map"`
}

// Analyze computes all properties of value in a single pass per property.
func Analyze(value string) Properties {
	return Properties{
		Length:             utf8.RuneCountInString(value),
		IsPalindrome:       IsPalindrome(value),
		UniqueCharacters:   countUniqueCharacters(value),
		WordCount:          countWords(value),
		SHA256Hash:         ComputeSHA256(value),
		CharacterFrequency: characterFrequency(value),
	}
}

// ComputeSHA256 returns the hex-encoded SHA-256 digest of text.
func ComputeSHA256(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// IsPalindrome reports whether text reads the same forwards and
// backwards after lowercasing and stripping everything outside [a-z0-9].
func IsPalindrome(text string) bool {
	var cleaned []rune
	for _, r := range strings.ToLower(text) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			cleaned = append(cleaned, r)
		}
	}

	for i, j := 0, len(cleaned)-1; i < j; i, j = i+1, j-1 {
		if cleaned[i] != cleaned[j] {
			return false
		}
	}
	return true
}

// countUniqueCharacters counts distinct characters in the raw,
// unnormalized value. Case matters: "Aa" has two unique characters.
func countUniqueCharacters(text string) int {
	seen := make(map[rune]struct{})
	for _, r := range text {
		seen[r] = struct{}{}
	}
	return len(seen)
}

// countWords counts whitespace-delimited tokens in the raw value.
func countWords(text string) int {
	count := 0
	inWord := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			inWord = false
		} else if !inWord {
			inWord = true
			count++
		}
	}
	return count
}

// characterFrequency maps each character of the raw value to its
// occurrence count. Keys are single-character strings so the map
// serializes naturally to JSON.
func characterFrequency(text string) map[string]int {
	freq := make(map[string]int)
	for _, r := range text {
		freq[string(r)]++
	}
	return freq
}
