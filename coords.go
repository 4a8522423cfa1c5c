// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gridparse

import (
	"fmt"
	"regexp"
	"strconv"
)

// External coordinate keys use the fixed textual form R{row}C{col} with
// decimal, 1-indexed row and column. Ranges join two references with a
// colon and no whitespace: R{r1}C{c1}:R{r2}C{c2}.

var (
	refExact   = regexp.MustCompile(`^R(\d+)C(\d+)$`)
	rangeExact = regexp.MustCompile(`^R(\d+)C(\d+):R(\d+)C(\d+)$`)
)

// FormatRef renders p as an external coordinate key.
func FormatRef(p Point) string {
	return fmt.Sprintf("R%dC%d", p.Row, p.Col)
}

// ParseRef parses an external coordinate key. It returns ErrBadCoordinate
// (wrapped) for any string not strictly matching R{row}C{col}.
func ParseRef(s string) (Point, error) {
	m := refExact.FindStringSubmatch(s)
	if m == nil {
		return Point{}, wrapError("parse ref "+strconv.Quote(s), ErrBadCoordinate)
	}
	row, err := strconv.Atoi(m[1])
	if err != nil {
		return Point{}, wrapError("parse ref "+strconv.Quote(s), ErrBadCoordinate)
	}
	col, err := strconv.Atoi(m[2])
	if err != nil {
		return Point{}, wrapError("parse ref "+strconv.Quote(s), ErrBadCoordinate)
	}
	return Point{Row: row, Col: col}, nil
}

// FormatRange renders r as an external range key.
func FormatRange(r Rect) string {
	return fmt.Sprintf("R%dC%d:R%dC%d", r.Top, r.Left, r.Bottom, r.Right)
}

// ParseRange parses an external range key into a rectangle. The first
// reference is the top-left corner, the second the bottom-right.
func ParseRange(s string) (Rect, error) {
	m := rangeExact.FindStringSubmatch(s)
	if m == nil {
		return Rect{}, wrapError("parse range "+strconv.Quote(s), ErrBadCoordinate)
	}
	nums := make([]int, 4)
	for i := 0; i < 4; i++ {
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return Rect{}, wrapError("parse range "+strconv.Quote(s), ErrBadCoordinate)
		}
		nums[i] = n
	}
	r := Rect{Top: nums[0], Left: nums[1], Bottom: nums[2], Right: nums[3]}
	if r.Top > r.Bottom || r.Left > r.Right {
		return Rect{}, wrapError("parse range "+strconv.Quote(s), ErrBadCoordinate)
	}
	return r, nil
}
