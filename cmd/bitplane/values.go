package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const maxLineSize = 1024 * 1024

// readSamples reads decimal values separated by whitespace or commas. Lines
// starting with '#' are skipped. Rows of a multi-channel file are read in
// order, which is the row-major interleaving frames use.
func readSamples(r io.Reader) ([]float64, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var samples []float64
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		for _, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			samples = append(samples, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read samples: %w", err)
	}

	return samples, nil
}

// writeSamples writes samples with perRow values per line.
func writeSamples(w io.Writer, samples []float64, perRow int) error {
	bw := bufio.NewWriter(w)
	perRow = max(1, perRow)

	buf := make([]byte, 0, 32)
	for i, v := range samples {
		buf = strconv.AppendFloat(buf[:0], v, 'g', -1, 64)
		if (i+1)%perRow == 0 || i == len(samples)-1 {
			buf = append(buf, '\n')
		} else {
			buf = append(buf, ' ')
		}
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func splitNames(list string) []string {
	var names []string
	for _, name := range strings.Split(list, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}

	return names
}
