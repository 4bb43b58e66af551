// Package extract pulls the second column out of a ranked domain CSV
// (rank,"domain",score) and writes one site per line, ready to be served
// as a site list.
package extract

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"luckywheel/internal/logger"
)

// ProgressEvery is how many extracted sites pass between progress reports.
const ProgressEvery = 1000

const maxLineBytes = 1 << 20

var (
	errUnterminatedQuote = errors.New("unterminated quote")
	errInvalidUTF8       = errors.New("invalid UTF-8")
)

// Stats summarises one extraction run.
type Stats struct {
	Lines     int
	Extracted int
	Skipped   int
}

// Warning describes a line that could not be parsed.
type Warning struct {
	Line int
	Text string
	Err  error
}

func (w Warning) String() string {
	return fmt.Sprintf("Warning: could not parse line %d: %q: %v", w.Line, w.Text, w.Err)
}

// Extractor copies site names from a CSV stream. Progress and Warn are
// optional callbacks.
type Extractor struct {
	Progress func(extracted int)
	Warn     func(Warning)
}

// Run reads CSV lines from r and writes the second field of each to w.
// Blank lines are ignored. Lines with fewer than two fields or an empty
// second field are dropped silently; malformed lines are reported via Warn.
func (e *Extractor) Run(r io.Reader, w io.Writer) (Stats, error) {
	var stats Stats
	bw := bufio.NewWriter(w)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		stats.Lines++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields, err := SplitLine(line)
		if err != nil {
			stats.Skipped++
			if e.Warn != nil {
				e.Warn(Warning{Line: stats.Lines, Text: line, Err: err})
			}
			continue
		}
		if len(fields) < 2 || fields[1] == "" {
			continue
		}

		if _, err := bw.WriteString(fields[1] + "\n"); err != nil {
			return stats, fmt.Errorf("write output: %w", err)
		}
		stats.Extracted++
		if stats.Extracted%ProgressEvery == 0 && e.Progress != nil {
			e.Progress(stats.Extracted)
		}
	}
	if err := sc.Err(); err != nil {
		return stats, fmt.Errorf("read input: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return stats, fmt.Errorf("write output: %w", err)
	}
	return stats, nil
}

// SplitLine splits line on commas outside double quotes. Quote characters
// toggle quoting and are dropped; each field is then trimmed.
func SplitLine(line string) ([]string, error) {
	if !utf8.ValidString(line) {
		return nil, errInvalidUTF8
	}

	var (
		fields   []string
		current  strings.Builder
		inQuotes bool
	)
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	if inQuotes {
		return nil, errUnterminatedQuote
	}
	fields = append(fields, strings.TrimSpace(current.String()))
	return fields, nil
}

// File extracts inPath into outPath, creating the output directory if
// needed.
func (e *Extractor) File(inPath, outPath string) (Stats, error) {
	if dir := filepath.Dir(outPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Stats{}, fmt.Errorf("creating directory for output: %w", err)
		}
	}

	in, err := os.Open(inPath)
	if err != nil {
		return Stats{}, fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return Stats{}, fmt.Errorf("create output: %w", err)
	}

	stats, err := e.Run(in, out)
	if closeErr := out.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("close output: %w", closeErr)
	}
	if err != nil {
		return stats, err
	}

	logger.L().Info("extraction finished",
		"input", inPath, "output", outPath,
		"lines", stats.Lines, "extracted", stats.Extracted, "skipped", stats.Skipped)
	return stats, nil
}
