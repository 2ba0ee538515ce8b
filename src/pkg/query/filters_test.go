package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"strlens/src/pkg/analyzer"
	"strlens/src/pkg/store"
)

func makeRecord(value string) store.Record {
	props := analyzer.Analyze(value)
	return store.Record{
		ID:         props.SHA256Hash,
		Value:      value,
		Properties: props,
		CreatedAt:  time.Now().UTC(),
	}
}

func values(records []store.Record) []string {
	out := make([]string, 0, len(records))
	for _, rec := range records {
		out = append(out, rec.Value)
	}
	return out
}

func TestApply(t *testing.T) {
	records := []store.Record{
		makeRecord("racecar"),
		makeRecord("hello world"),
		makeRecord("noon"),
		makeRecord("Zebra"),
		makeRecord("a"),
	}

	tests := []struct {
		name     string
		filters  FilterSet
		expected []string
	}{
		{
			name:     "empty filter matches everything",
			filters:  FilterSet{},
			expected: []string{"racecar", "hello world", "noon", "Zebra", "a"},
		},
		{
			name:     "palindromes only",
			filters:  FilterSet{IsPalindrome: boolPtr(true)},
			expected: []string{"racecar", "noon", "a"},
		},
		{
			name:     "non palindromes only",
			filters:  FilterSet{IsPalindrome: boolPtr(false)},
			expected: []string{"hello world", "Zebra"},
		},
		{
			name:     "min length inclusive",
			filters:  FilterSet{MinLength: intPtr(5)},
			expected: []string{"racecar", "hello world", "Zebra"},
		},
		{
			name:     "max length inclusive",
			filters:  FilterSet{MaxLength: intPtr(4)},
			expected: []string{"noon", "a"},
		},
		{
			name:     "word count",
			filters:  FilterSet{WordCount: intPtr(2)},
			expected: []string{"hello world"},
		},
		{
			name:     "contains is case sensitive",
			filters:  FilterSet{ContainsCharacter: strPtr("z")},
			expected: []string{},
		},
		{
			name:     "contains uppercase",
			filters:  FilterSet{ContainsCharacter: strPtr("Z")},
			expected: []string{"Zebra"},
		},
		{
			name: "filters combine with AND",
			filters: FilterSet{
				IsPalindrome: boolPtr(true),
				MinLength:    intPtr(5),
			},
			expected: []string{"racecar"},
		},
		{
			name: "contradictory bounds yield empty result",
			filters: FilterSet{
				MinLength: intPtr(10),
				MaxLength: intPtr(2),
			},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched := Apply(records, tt.filters)
			assert.NotNil(t, matched)
			assert.Equal(t, tt.expected, values(matched))
		})
	}
}

func TestApplyPreservesOrder(t *testing.T) {
	records := []store.Record{
		makeRecord("bb"),
		makeRecord("aa"),
		makeRecord("cc"),
	}

	matched := Apply(records, FilterSet{IsPalindrome: boolPtr(true)})
	assert.Equal(t, []string{"bb", "aa", "cc"}, values(matched))
}

func TestFilterSetIsEmpty(t *testing.T) {
	assert.True(t, FilterSet{}.IsEmpty())
	assert.False(t, FilterSet{MinLength: intPtr(0)}.IsEmpty())
	assert.False(t, FilterSet{IsPalindrome: boolPtr(false)}.IsEmpty())
}
