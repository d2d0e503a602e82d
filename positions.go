package strsearch

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatPositions returns pos as a comma-separated list without spaces,
// for example "0,2,4". It returns "" for no positions.
func FormatPositions(pos []int) string {
	if len(pos) == 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(len(pos) * 4)
	for i, p := range pos {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(p))
	}
	return b.String()
}

// ParsePositions parses the output of FormatPositions. The positions must be
// non-negative and strictly ascending.
func ParsePositions(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}

	fields := strings.Split(s, ",")
	pos := make([]int, 0, len(fields))
	for i, f := range fields {
		p, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("strsearch: invalid position %q: %w", f, err)
		}
		if p < 0 {
			return nil, fmt.Errorf("strsearch: negative position %d", p)
		}
		if i > 0 && p <= pos[i-1] {
			return nil, fmt.Errorf("strsearch: position %d not ascending after %d", p, pos[i-1])
		}
		pos = append(pos, p)
	}
	return pos, nil
}
