// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command gridparse reads a delimited grid file and prints the spatial
// structures the parser discovers in it.
//
// Usage:
//
//	gridparse [options] grid.tsv
//
// Modes: styles (the style map as JSON), blocks (a structural summary),
// constructs (one line per detected construct).
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Textrux/gridparse"
)

func main() {
	mode := flag.String("mode", "styles", "Output mode: styles, blocks, constructs")
	sep := flag.String("sep", "", "Field separator: tab or comma (default: by file extension)")
	verbose := flag.Bool("v", false, "Log pipeline phases to stderr")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: gridparse [options] grid.tsv")
		flag.PrintDefaults()
		os.Exit(2)
	}

	filePath := flag.Arg(0)
	f, err := os.Open(filePath)
	if err != nil {
		log.Fatalf("open %s: %v", filePath, err)
	}
	defer f.Close()

	grid, err := readGrid(f, separatorFor(*sep, filePath))
	if err != nil {
		log.Fatalf("read %s: %v", filePath, err)
	}

	opts := &gridparse.Options{}
	if *verbose {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.DebugLevel).With().Timestamp().Logger()
		opts.Logger = &logger
	}
	result := gridparse.Parse(grid, opts)

	switch strings.ToLower(*mode) {
	case "styles":
		handleStyles(result)
	case "blocks":
		handleBlocks(result)
	case "constructs":
		handleConstructs(result)
	default:
		log.Fatalf("unknown mode %q", *mode)
	}
}

// separatorFor resolves the field separator from the flag or the file
// extension; anything that is not a .csv defaults to tab.
func separatorFor(flagValue, path string) rune {
	switch strings.ToLower(flagValue) {
	case "comma":
		return ','
	case "tab":
		return '\t'
	}
	if strings.HasSuffix(strings.ToLower(path), ".csv") {
		return ','
	}
	return '\t'
}

// readGrid loads a delimited file into a cell grid. Rows and fields are
// 1-indexed top-left; ragged rows are allowed.
func readGrid(r io.Reader, sep rune) (*gridparse.CellGrid, error) {
	reader := csv.NewReader(r)
	reader.Comma = sep
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	rows := len(records)
	cols := 0
	for _, rec := range records {
		if len(rec) > cols {
			cols = len(rec)
		}
	}
	if rows == 0 || cols == 0 {
		rows, cols = 1, 1
	}

	grid, err := gridparse.NewCellGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	for ri, rec := range records {
		for ci, text := range rec {
			if strings.TrimSpace(text) == "" {
				continue
			}
			if err := grid.Set(ri+1, ci+1, text); err != nil {
				return nil, err
			}
		}
	}
	return grid, nil
}

func handleStyles(result *gridparse.Result) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result.Styles); err != nil {
		log.Fatalf("encode styles: %v", err)
	}
}

func handleBlocks(result *gridparse.Result) {
	for i, b := range result.Blocks {
		fmt.Printf("block %d: %s canvas=%d clusters=%d\n",
			i, gridparse.FormatRange(b.Bounds), len(b.Canvas), len(b.Clusters))
	}
	for _, j := range result.Joins {
		fmt.Printf("join %d-%d: %s linked=%d locked=%d\n",
			j.A, j.B, j.Type, len(j.LinkedPoints), len(j.LockedPoints))
	}
	for i, s := range result.Subclusters {
		fmt.Printf("subcluster %d: %s blocks=%d\n", i, gridparse.FormatRange(s.Bounds), len(s.BlockIDs))
	}
	for i, k := range result.BlockClusters {
		fmt.Printf("cluster %d: %s subclusters=%d\n", i, gridparse.FormatRange(k.Canvas), len(k.SubclusterIDs))
	}
}

func handleConstructs(result *gridparse.Result) {
	for _, match := range result.Constructs() {
		kind := match.Construct.Kind
		line := fmt.Sprintf("%s %s", gridparse.FormatRange(match.Cluster.Bounds), kind)
		if kind == gridparse.ConstructKeyValue || kind == gridparse.ConstructTree {
			line += " " + match.Construct.Orientation.String()
		}
		fmt.Println(line)
	}
}
