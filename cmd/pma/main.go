// Copyright 2014 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command pma is a line-oriented driver over a [github.com/google/pma.PMA]
// of integers. It reads one command per line from an input file and
// writes successor/dump output to an output file.
//
//	INC v   insert integer v
//	REM v   remove integer v
//	SUC v   write successor(v) to the output file
//	IMP     write all keys in ascending order, space separated
//
// An empty line terminates processing. A malformed command (wrong token
// count) is fatal and cites the 1-indexed line number; an unrecognized
// command is diagnosed and skipped.
//
// Usage:
//
//	pma <input_path> <output_path>
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/pma"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "Incorrect usage")
		fmt.Fprintln(os.Stderr, "Usage example:")
		fmt.Fprintf(os.Stderr, "\n\t%s <input_file>.txt <output_file>.txt\n", os.Args[0])
		os.Exit(1)
	}

	if err := run(os.Args[1], os.Args[2]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(inputPath, outputPath string) error {
	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("could not open input file %s: %w", inputPath, err)
	}
	defer in.Close()

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("could not open output file %s: %w", outputPath, err)
	}
	defer out.Close()

	return process(in, out, os.Stderr)
}

// process drives a PMA from in's command stream, writing SUC/IMP results
// to out and diagnostics to errOut. It mirrors file_handler.cpp's control
// flow line for line.
func process(in io.Reader, out io.Writer, errOut io.Writer) error {
	set := pma.NewOrdered[int](pma.DefaultLeafSize)
	writer := bufio.NewWriter(out)
	defer writer.Flush()

	scanner := bufio.NewScanner(in)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			break
		}

		switch tokens[0] {
		case "INC":
			v, err := parseArg(tokens, "INC", lineNum, line)
			if err != nil {
				return err
			}
			set.Insert(v)
		case "REM":
			v, err := parseArg(tokens, "REM", lineNum, line)
			if err != nil {
				return err
			}
			set.Erase(v)
		case "SUC":
			v, err := parseArg(tokens, "SUC", lineNum, line)
			if err != nil {
				return err
			}
			succ, ok := set.Successor(v)
			if !ok {
				succ = v
			}
			fmt.Fprintln(writer, succ)
		case "IMP":
			if len(tokens) != 1 {
				return fmt.Errorf("Error on IMP\nline %d: %s", lineNum, line)
			}
			writeOrderedDump(writer, set)
		default:
			fmt.Fprintf(errOut, "Undefined command %s\nline %d: %s\n", tokens[0], lineNum, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}
	return writer.Flush()
}

func parseArg(tokens []string, cmd string, lineNum int, line string) (int, error) {
	if len(tokens) != 2 {
		return 0, fmt.Errorf("Error on %s\nline %d: %s", cmd, lineNum, line)
	}
	v, err := strconv.Atoi(tokens[1])
	if err != nil {
		return 0, fmt.Errorf("Error on %s\nline %d: %s: %w", cmd, lineNum, line, err)
	}
	return v, nil
}

func writeOrderedDump(w io.Writer, set *pma.PMA[int]) {
	first := true
	for v := range set.All() {
		if !first {
			fmt.Fprint(w, " ")
		}
		fmt.Fprint(w, v)
		first = false
	}
	fmt.Fprintln(w)
}
