package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// slugStore is the one repository capability slug generation needs.
type slugStore interface {
	SlugExists(slug string) (bool, error)
}

// uniqueSlug derives a URL-safe slug from source, truncated to baseLen,
// and resolves collisions by appending "-1", "-2", ... For a fixed
// source and set of existing slugs the result is deterministic.
func uniqueSlug(store slugStore, source string, baseLen int) (string, error) {
	base := slug.Make(source)
	if len(base) > baseLen {
		base = strings.TrimRight(base[:baseLen], "-")
	}
	if base == "" {
		base = "n-a"
	}

	candidate := base
	for i := 1; ; i++ {
		exists, err := store.SlugExists(candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

const slugCreateAttempts = 3

// createWithUniqueSlug runs the check-then-insert under the slug unique
// index. A concurrent insert can win the same candidate between the
// existence check and our insert; the violation comes back as
// gorm.ErrDuplicatedKey and we pick a fresh suffix and try again. After
// slugCreateAttempts losses the last duplicate error is returned as is.
func createWithUniqueSlug(store slugStore, source string, baseLen int, create func(slug string) error) error {
	var err error
	for attempt := 0; attempt < slugCreateAttempts; attempt++ {
		var candidate string
		candidate, err = uniqueSlug(store, source, baseLen)
		if err != nil {
			return err
		}
		err = create(candidate)
		if err == nil || !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
	}
	return err
}
