package api

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"strlens/src/pkg/query"
	"strlens/src/pkg/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	st, err := store.Open(filepath.Join(t.TempDir(), "strings.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	return NewService(st, nil, "test")
}

func TestServiceCreate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	rec, err := svc.Create(ctx, "racecar")
	require.NoError(t, err)

	assert.Equal(t, "racecar", rec.Value)
	assert.Equal(t, rec.Properties.SHA256Hash, rec.ID)
	assert.True(t, rec.Properties.IsPalindrome)
	assert.Equal(t, 7, rec.Properties.Length)
	assert.False(t, rec.CreatedAt.IsZero())
}

func TestServiceCreateEmptyValue(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyValue)
}

func TestServiceCreateDuplicate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "once")
	require.NoError(t, err)

	_, err = svc.Create(ctx, "once")
	assert.ErrorIs(t, err, store.ErrExists)
}

func TestServiceGetAndDelete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "keep me around")
	require.NoError(t, err)

	rec, err := svc.Get(ctx, "keep me around")
	require.NoError(t, err)
	assert.Equal(t, 3, rec.Properties.WordCount)

	require.NoError(t, svc.Delete(ctx, "keep me around"))

	_, err = svc.Get(ctx, "keep me around")
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, "keep me around"), store.ErrNotFound)
}

func TestServiceList(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, v := range []string{"noon", "hello world", "kayak"} {
		_, err := svc.Create(ctx, v)
		require.NoError(t, err)
	}

	// Unfiltered list returns everything in insertion order
	records, err := svc.List(ctx, query.FilterSet{})
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "noon", records[0].Value)

	// Structured filter narrows the result
	palindrome := true
	records, err = svc.List(ctx, query.FilterSet{IsPalindrome: &palindrome})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "noon", records[0].Value)
	assert.Equal(t, "kayak", records[1].Value)
}

func TestServiceQueryNatural(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, v := range []string{"racecar", "ab", "hello world"} {
		_, err := svc.Create(ctx, v)
		require.NoError(t, err)
	}

	records, filters, err := svc.QueryNatural(ctx, "all palindromic strings longer than 5 characters")
	require.NoError(t, err)

	require.NotNil(t, filters.IsPalindrome)
	assert.True(t, *filters.IsPalindrome)
	require.NotNil(t, filters.MinLength)
	assert.Equal(t, 6, *filters.MinLength)

	require.Len(t, records, 1)
	assert.Equal(t, "racecar", records[0].Value)
}

func TestServiceQueryNaturalNoMatches(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "hello world")
	require.NoError(t, err)

	// A parsed query with zero matches is a valid empty result
	records, _, err := svc.QueryNatural(ctx, "palindromic strings")
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestServiceQueryNaturalUnparseable(t *testing.T) {
	svc := newTestService(t)

	_, _, err := svc.QueryNatural(context.Background(), "tell me something nice")
	assert.ErrorIs(t, err, query.ErrUnparseable)
}

func TestServiceGetStatus(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "counted")
	require.NoError(t, err)

	status, err := svc.GetStatus(ctx)
	require.NoError(t, err)

	assert.Equal(t, "running", status.Status)
	assert.Equal(t, 1, status.RecordCount)
	assert.Equal(t, "test", status.Version)
}
