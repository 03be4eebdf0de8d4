package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeSlugStore struct {
	existing map[string]bool
}

func (f *fakeSlugStore) SlugExists(s string) (bool, error) {
	return f.existing[s], nil
}

func TestUniqueSlug(t *testing.T) {
	store := &fakeSlugStore{existing: map[string]bool{}}

	s, err := uniqueSlug(store, "Soft Skills 101", 280)
	require.NoError(t, err)
	assert.Equal(t, "soft-skills-101", s)
}

func TestUniqueSlugResolvesCollisions(t *testing.T) {
	store := &fakeSlugStore{existing: map[string]bool{
		"soft-skills-101":   true,
		"soft-skills-101-1": true,
	}}

	s, err := uniqueSlug(store, "Soft Skills 101", 280)
	require.NoError(t, err)
	assert.Equal(t, "soft-skills-101-2", s)
}

func TestUniqueSlugTruncates(t *testing.T) {
	store := &fakeSlugStore{existing: map[string]bool{}}

	long := strings.Repeat("mot ", 100)
	s, err := uniqueSlug(store, long, 50)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(s), 50)
	assert.False(t, strings.HasSuffix(s, "-"))
}

func TestUniqueSlugFallbackForEmptySource(t *testing.T) {
	store := &fakeSlugStore{existing: map[string]bool{}}

	s, err := uniqueSlug(store, "!!!", 280)
	require.NoError(t, err)
	assert.NotEmpty(t, s)
}

func TestCreateWithUniqueSlugRetriesAfterLostRace(t *testing.T) {
	store := &fakeSlugStore{existing: map[string]bool{}}

	// The first insert loses to a concurrent writer that claimed the
	// same candidate after our existence check.
	var got []string
	err := createWithUniqueSlug(store, "Soft Skills 101", 280, func(s string) error {
		got = append(got, s)
		if len(got) == 1 {
			store.existing[s] = true
			return gorm.ErrDuplicatedKey
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"soft-skills-101", "soft-skills-101-1"}, got)
}

func TestCreateWithUniqueSlugGivesUpAfterRepeatedLosses(t *testing.T) {
	store := &fakeSlugStore{existing: map[string]bool{}}

	attempts := 0
	err := createWithUniqueSlug(store, "Soft Skills 101", 280, func(s string) error {
		attempts++
		store.existing[s] = true
		return gorm.ErrDuplicatedKey
	})
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	assert.Equal(t, slugCreateAttempts, attempts)
}

func TestCreateWithUniqueSlugPassesThroughOtherErrors(t *testing.T) {
	store := &fakeSlugStore{existing: map[string]bool{}}

	boom := errors.New("connection reset")
	attempts := 0
	err := createWithUniqueSlug(store, "Soft Skills 101", 280, func(s string) error {
		attempts++
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, attempts)
}
