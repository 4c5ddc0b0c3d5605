package domain

import (
	"math"
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 2
	MaxLimit     = 100

	// MaxPage keeps Offset from overflowing; any higher page is past the end
	// of every collection anyway.
	MaxPage = math.MaxInt / MaxLimit
)

// Page is a 1-based page request.
type Page struct {
	Number int
	Limit  int
}

// ParsePage reads page and limit query values. Missing, malformed or
// non-positive values fall back to the defaults. page is capped at MaxPage
// and limit at MaxLimit.
func ParsePage(page, limit string) Page {
	p := Page{Number: DefaultPage, Limit: DefaultLimit}
	if n, err := strconv.Atoi(page); err == nil && n > 0 {
		p.Number = min(n, MaxPage)
	}
	if n, err := strconv.Atoi(limit); err == nil && n > 0 {
		p.Limit = min(n, MaxLimit)
	}
	return p
}

// Offset is the number of records to skip.
func (p Page) Offset() int { return (p.Number - 1) * p.Limit }
