package tui

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/aalvaropc/addrbook/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func phoneList(r *domain.Record) string {
	phones := r.Phones()
	if len(phones) == 0 {
		return "(no phones)"
	}
	parts := make([]string, 0, len(phones))
	for _, p := range phones {
		parts = append(parts, p.Value())
	}
	return strings.Join(parts, ", ")
}

func renderContactDetails(r *domain.Record, today time.Time) string {
	var b strings.Builder

	b.WriteString("Name:     ")
	b.WriteString(r.Name().Value())
	b.WriteString("\nPhones:   ")
	b.WriteString(phoneList(r))
	b.WriteString("\nBirthday: ")
	if bd, ok := r.Birthday(); ok {
		days, _ := r.DaysToBirthday(today)
		switch days {
		case 0:
			b.WriteString(bd.String() + " (today)")
		default:
			b.WriteString(fmt.Sprintf("%s (in %d days)", bd.String(), days))
		}
	} else {
		b.WriteString("(not set)")
	}
	return b.String()
}
