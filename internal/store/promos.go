package store

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexanderramin/herald/internal/domain"
)

// Promos is the read-only list of gift codes, in source order.
type Promos struct {
	entries []domain.PromoEntry
	dropped int
}

// ParsePromos reads whitespace-delimited "code expiry" pairs, one per
// line. Lines with any other token count are discarded. Duplicate codes
// pass through untouched; source order is display order.
func ParsePromos(r io.Reader) (*Promos, error) {
	s := &Promos{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) != 2 {
			s.dropped++
			continue
		}
		s.entries = append(s.entries, domain.PromoEntry{Code: parts[0], Expires: parts[1]})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading promo list: %w", err)
	}
	return s, nil
}

// LoadPromos reads the promo list from a file. A missing or unreadable
// file is reported as ErrSourceUnavailable.
func LoadPromos(path string) (*Promos, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w: %v", path, ErrSourceUnavailable, err)
	}
	defer f.Close()
	return ParsePromos(f)
}

// Active returns every loaded entry in insertion order. Expiry text is
// display-only; nothing is filtered by clock time.
func (s *Promos) Active() []domain.PromoEntry {
	return s.entries
}

// Dropped returns the number of lines discarded during parsing.
func (s *Promos) Dropped() int {
	return s.dropped
}
