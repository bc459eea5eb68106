// SPDX-License-Identifier: MIT

package graphio

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/graphstats/match"
	"github.com/katalvlaran/graphstats/network"
)

// ReadDense parses a comma-separated matrix, one row per record.
// Every record must have the same number of fields.
func ReadDense(r io.Reader) (*mat.Dense, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	var (
		data []float64
		rows int
		cols int
	)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			if errors.Is(err, csv.ErrFieldCount) {
				return nil, fmt.Errorf("ReadDense: %v: %w", err, ErrShape)
			}
			return nil, fmt.Errorf("ReadDense: %v: %w", err, ErrParse)
		}
		if rows == 0 {
			cols = len(rec)
		}
		line, _ := cr.FieldPos(0)
		for j, field := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("ReadDense: line %d field %d %q: %w", line, j+1, field, ErrParse)
			}
			data = append(data, v)
		}
		rows++
	}
	if rows == 0 {
		return nil, fmt.Errorf("ReadDense: %w", ErrEmptyInput)
	}

	return mat.NewDense(rows, cols, data), nil
}

// ReadEdgeList parses "u v [w]" lines into edges. When n > 0 every index must
// lie in [0,n); otherwise n is inferred as the largest index plus one.
// It returns the edges and the node count.
func ReadEdgeList(r io.Reader, n int) ([]network.Edge, int, error) {
	var (
		edges []network.Edge
		maxID = -1
	)
	err := eachLine(r, func(line int, fields []string) error {
		if len(fields) != 2 && len(fields) != 3 {
			return fmt.Errorf("line %d: %d fields, want 2 or 3: %w", line, len(fields), ErrShape)
		}
		u, err := atoi(line, fields[0])
		if err != nil {
			return err
		}
		v, err := atoi(line, fields[1])
		if err != nil {
			return err
		}
		e := network.Edge{From: u, To: v}
		if len(fields) == 3 {
			if e.Weight, err = strconv.ParseFloat(fields[2], 64); err != nil {
				return fmt.Errorf("line %d: weight %q: %w", line, fields[2], ErrParse)
			}
		}
		if n > 0 && (u >= n || v >= n) {
			return fmt.Errorf("line %d: edge (%d,%d) with n=%d: %w", line, u, v, n, ErrOutOfRange)
		}
		maxID = max(maxID, u, v)
		edges = append(edges, e)

		return nil
	})
	if err != nil {
		return nil, 0, fmt.Errorf("ReadEdgeList: %w", err)
	}
	if n <= 0 {
		if maxID < 0 {
			return nil, 0, fmt.Errorf("ReadEdgeList: %w", ErrEmptyInput)
		}
		n = maxID + 1
	}

	return edges, n, nil
}

// ReadLabels parses one non-negative integer label per line.
func ReadLabels(r io.Reader) ([]int, error) {
	var out []int
	err := eachLine(r, func(line int, fields []string) error {
		if len(fields) != 1 {
			return fmt.Errorf("line %d: %d fields, want 1: %w", line, len(fields), ErrShape)
		}
		v, err := atoi(line, fields[0])
		if err != nil {
			return err
		}
		out = append(out, v)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ReadLabels: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("ReadLabels: %w", ErrEmptyInput)
	}

	return out, nil
}

// ReadInts parses non-negative integers separated by whitespace or commas,
// any number per line.
func ReadInts(r io.Reader) ([]int, error) {
	var out []int
	err := eachLine(r, func(line int, fields []string) error {
		for _, f := range fields {
			v, err := atoi(line, f)
			if err != nil {
				return err
			}
			out = append(out, v)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ReadInts: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("ReadInts: %w", ErrEmptyInput)
	}

	return out, nil
}

// ReadSeedPairs parses "a b" lines pairing node a of the first network with
// node b of the second. An empty input yields no pairs.
func ReadSeedPairs(r io.Reader) ([]match.SeedPair, error) {
	var out []match.SeedPair
	err := eachLine(r, func(line int, fields []string) error {
		if len(fields) != 2 {
			return fmt.Errorf("line %d: %d fields, want 2: %w", line, len(fields), ErrShape)
		}
		a, err := atoi(line, fields[0])
		if err != nil {
			return err
		}
		b, err := atoi(line, fields[1])
		if err != nil {
			return err
		}
		out = append(out, match.SeedPair{A: a, B: b})

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ReadSeedPairs: %w", err)
	}

	return out, nil
}

// eachLine feeds the fields of every data line to fn.
func eachLine(r io.Reader, fn func(line int, fields []string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.FieldsFunc(text, func(c rune) bool {
			return c == ',' || c == ' ' || c == '\t'
		})
		if err := fn(line, fields); err != nil {
			return err
		}
	}

	return sc.Err()
}

func atoi(line int, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("line %d: %q: %w", line, s, ErrParse)
	}
	if v < 0 {
		return 0, fmt.Errorf("line %d: negative index %d: %w", line, v, ErrOutOfRange)
	}

	return v, nil
}
