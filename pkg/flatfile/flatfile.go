// Package flatfile reads and writes the line-oriented text files the change maker works on.
package flatfile

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrSamePath is returned when the output path would overwrite the input.
var ErrSamePath = errors.New("output path must differ from input path")

// ScanLines is a bufio.SplitFunc that accepts CR, LF and CRLF terminators.
// Terminators are stripped and a trailing empty segment is not a line.
func ScanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		// CR: need one more byte to tell CR from CRLF.
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// ReadLines returns every line of r with terminators removed.
func ReadLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(ScanLines)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lines: %w", err)
	}
	return lines, nil
}

// WriteLines writes lines joined by "\n" to path. Nothing is created when lines is empty.
func WriteLines(path string, lines []string) error {
	if len(lines) == 0 {
		return nil
	}
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// CheckInput verifies that path names an existing regular file.
func CheckInput(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("input file %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("input file %s is not a regular file", path)
	}
	return nil
}

// DefaultOutputPath is "<input-stem>_change.txt" next to the input.
func DefaultOutputPath(input string) string {
	dir := filepath.Dir(input)
	stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(dir, stem+"_change.txt")
}

// CheckOutput verifies that output is not input and that its directory exists.
func CheckOutput(input, output string) error {
	in, err := filepath.Abs(input)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", input, err)
	}
	out, err := filepath.Abs(output)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", output, err)
	}
	if in == out {
		return fmt.Errorf("%w: %s", ErrSamePath, output)
	}
	info, err := os.Stat(filepath.Dir(out))
	if err != nil {
		return fmt.Errorf("output directory for %s: %w", output, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("output directory %s is not a directory", filepath.Dir(out))
	}
	return nil
}
