// Package sitelist loads the list of raw site entries the wheel is built
// from. The list format is newline-delimited text whose first line is a
// header and is always discarded.
package sitelist

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// List is an ordered sequence of raw site entries.
type List []string

const maxLineBytes = 64 * 1024

// Parse reads a site list. The first line is skipped, blank lines are
// dropped and every other line, trimmed of surrounding whitespace, becomes
// one entry in file order.
func Parse(r io.Reader) (List, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)

	var list List
	first := true
	for sc.Scan() {
		if first {
			first = false
			continue
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		list = append(list, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read site list: %w", err)
	}
	return list, nil
}
