// Package store loads the bot's static data sources into immutable
// in-memory stores. All loaders are best-effort: malformed lines are
// dropped, never fatal. Stores are built once at startup and only read
// afterwards, so they are safe for concurrent use without locking.
package store

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/alexanderramin/herald/internal/domain"
)

const requirementFieldCount = 7

// Requirements is the read-only town center requirement table, keyed by level.
type Requirements struct {
	byLevel map[int]domain.RequirementRecord
	dropped int
}

// ParseRequirements reads a pipe-delimited requirement table. The first
// line is a header and is skipped. Rows with a field count other than 7
// or a non-integer level are discarded silently.
func ParseRequirements(r io.Reader) (*Requirements, error) {
	s := &Requirements{byLevel: make(map[int]domain.RequirementRecord)}

	scanner := bufio.NewScanner(r)
	first := true
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if first {
			first = false
			continue
		}
		if line == "" {
			continue
		}
		parts := strings.Split(line, "|")
		if len(parts) != requirementFieldCount {
			s.dropped++
			continue
		}
		level, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			s.dropped++
			continue
		}
		s.byLevel[level] = domain.RequirementRecord{
			Level:         level,
			Prerequisites: parts[1],
			Bread:         parts[2],
			Wood:          parts[3],
			Coal:          parts[4],
			Iron:          parts[5],
			UpgradeTime:   parts[6],
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading requirement table: %w", err)
	}
	return s, nil
}

// LoadRequirements reads the requirement table from a file. A missing or
// unreadable file is reported as ErrSourceUnavailable.
func LoadRequirements(path string) (*Requirements, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w: %v", path, ErrSourceUnavailable, err)
	}
	defer f.Close()
	return ParseRequirements(f)
}

// Lookup returns the record for the given level. The second return is
// false for any level absent from the table; absence is a normal state,
// not an error.
func (s *Requirements) Lookup(level int) (domain.RequirementRecord, bool) {
	rec, ok := s.byLevel[level]
	return rec, ok
}

// Len returns the number of loaded records.
func (s *Requirements) Len() int {
	return len(s.byLevel)
}

// Dropped returns the number of rows discarded during parsing.
func (s *Requirements) Dropped() int {
	return s.dropped
}

// Levels returns the loaded levels in ascending order.
func (s *Requirements) Levels() []int {
	levels := make([]int, 0, len(s.byLevel))
	for l := range s.byLevel {
		levels = append(levels, l)
	}
	sort.Ints(levels)
	return levels
}
