package tui

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/addrbook/internal/domain"
)

// userMessage turns loader and iterator errors into a one-line hint.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, domain.ErrInvalidBatchSize):
		return "Batch size must be a positive number"
	case errors.Is(err, domain.ErrInvalidName):
		return "Invalid contact name" + fieldSuffix(err)
	case errors.Is(err, domain.ErrInvalidPhone):
		return "Invalid phone" + fieldSuffix(err)
	case errors.Is(err, domain.ErrInvalidBirthday):
		return "Invalid birthday" + fieldSuffix(err)
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		base := "book"
		if strings.TrimSpace(oe.Path) != "" {
			base = filepath.Base(oe.Path)
		}
		switch oe.Kind {
		case domain.KindNotFound:
			return "Book not found: " + base
		case domain.KindInvalidConfig:
			return "Invalid YAML in " + base
		}
	}

	return crashText
}

// fieldSuffix extracts the "field contacts[i]..." fragment the mapper adds.
func fieldSuffix(err error) string {
	s := err.Error()
	i := strings.Index(s, "field ")
	if i < 0 {
		return ""
	}
	rest := s[i+len("field "):]
	if j := strings.Index(rest, ":"); j >= 0 {
		rest = rest[:j]
	}
	return " at " + rest
}
