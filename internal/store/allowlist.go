package store

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Allowlist is the set of channel IDs the bot is permitted to answer in.
type Allowlist struct {
	ids map[string]bool
}

// ParseAllowlist reads one channel ID per line. Only the first token of
// each line is considered, and it must parse as an integer; anything else
// is skipped. Trailing tokens act as free-form comments.
func ParseAllowlist(r io.Reader) (*Allowlist, error) {
	s := &Allowlist{ids: make(map[string]bool)}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		if _, err := strconv.ParseInt(parts[0], 10, 64); err != nil {
			continue
		}
		s.ids[parts[0]] = true
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading channel allowlist: %w", err)
	}
	return s, nil
}

// LoadAllowlist reads the allowlist from a file. A missing or unreadable
// file is reported as ErrSourceUnavailable.
func LoadAllowlist(path string) (*Allowlist, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w: %v", path, ErrSourceUnavailable, err)
	}
	defer f.Close()
	return ParseAllowlist(f)
}

// Allows reports whether the channel is eligible for classification.
func (s *Allowlist) Allows(channelID string) bool {
	return s.ids[channelID]
}

// Len returns the number of allowed channels.
func (s *Allowlist) Len() int {
	return len(s.ids)
}
