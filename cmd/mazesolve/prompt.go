package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
)

// errNoInput is returned when stdin closes before a valid answer.
var errNoInput = errors.New("mazesolve: no answer on input")

// chooseMaze lists mazes as a numbered menu and returns the chosen path.
// Invalid answers are reported and asked again.
func chooseMaze(in *bufio.Reader, out io.Writer, mazes []string) (string, error) {
	fmt.Fprintln(out, "Available mazes:")
	for i, m := range mazes {
		fmt.Fprintf(out, "  %d) %s\n", i+1, filepath.Base(m))
	}
	for {
		fmt.Fprintf(out, "Choose a maze [1-%d]: ", len(mazes))
		answer, err := readAnswer(in)
		if err != nil {
			return "", err
		}
		n, err := strconv.Atoi(answer)
		if err == nil && n >= 1 && n <= len(mazes) {
			return mazes[n-1], nil
		}
		fmt.Fprintf(out, "%q is not a listed maze\n", answer)
	}
}

// askRuns asks how many timed runs each algorithm gets.
func askRuns(in *bufio.Reader, out io.Writer) (int, error) {
	for {
		fmt.Fprint(out, "How many runs per algorithm? ")
		answer, err := readAnswer(in)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(answer)
		if err == nil && n >= 1 {
			return n, nil
		}
		fmt.Fprintf(out, "%q is not a positive number\n", answer)
	}
}

// readAnswer returns the next trimmed line; a final line without a newline counts.
func readAnswer(in *bufio.Reader) (string, error) {
	line, err := in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", errNoInput
		}
		return "", err
	}

	return strings.TrimSpace(line), nil
}
