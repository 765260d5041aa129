// Package services holds the tracker's business rules. Every operation runs
// inside a dbx.TxRunner scope and reaches storage through a
// repomanager.RepositoryManager.
package services

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Column widths from the initial migration, counted in characters.
const (
	maxNameLen    = 100
	maxEmailLen   = 120
	maxTitleLen   = 200
	maxTextLen    = 500
	maxEndDateLen = 100
)

// ParseID converts a form or path id. Anything that is not a positive
// base-10 integer is rejected and should be treated as a missing row.
func ParseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func blank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}

// tooLong reports whether any value exceeds limit characters.
func tooLong(limit int, values ...string) bool {
	for _, v := range values {
		if utf8.RuneCountInString(v) > limit {
			return true
		}
	}
	return false
}

func utcNow() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
