/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package x

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// ReadInput returns the contents of path, or of stdin when path is "-" or
// empty.
func ReadInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return data, Wrapf(err, "while reading stdin")
	}
	data, err := os.ReadFile(path)
	return data, Wrapf(err, "while reading %s", path)
}

// ReadLines returns the non blank lines of path with surrounding space
// trimmed. Lines starting with '#' are skipped.
func ReadLines(path string) ([]string, error) {
	data, err := ReadInput(path)
	if err != nil {
		return nil, err
	}
	var lines []string
	sc := bufio.NewScanner(strings.NewReader(string(data)))
	sc.Buffer(make([]byte, 0, 64<<10), 64<<20)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, Wrapf(sc.Err(), "while scanning %s", path)
}
