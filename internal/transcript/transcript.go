// Package transcript reads plain-text move logs, one command per line:
//
//	place <row> <col>
//	skip
//	revert <index>
//
// Blank lines and lines starting with '#' are ignored.
package transcript

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/othello-backend/internal/othello"
)

var ErrInvalidCommand = errors.New("invalid command")

type Kind string

const (
	KindPlace  Kind = "place"
	KindSkip   Kind = "skip"
	KindRevert Kind = "revert"
)

type Command struct {
	Kind  Kind
	Coord othello.Coord
	Index int
	Line  int
}

func Parse(r io.Reader) ([]Command, error) {
	var commands []Command

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		cmd, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		cmd.Line = lineNum

		commands = append(commands, cmd)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transcript: %w", err)
	}

	return commands, nil
}

func parseLine(line string) (Command, error) {
	fields := strings.Fields(line)

	switch kind := Kind(strings.ToLower(fields[0])); kind {
	case KindPlace:
		if len(fields) != 3 {
			return Command{}, fmt.Errorf("%w: place expects row and column", ErrInvalidCommand)
		}

		row, err := parseNumber(fields[1])
		if err != nil {
			return Command{}, err
		}

		col, err := parseNumber(fields[2])
		if err != nil {
			return Command{}, err
		}

		return Command{Kind: kind, Coord: othello.Coord{Row: row, Col: col}}, nil
	case KindSkip:
		if len(fields) != 1 {
			return Command{}, fmt.Errorf("%w: skip takes no arguments", ErrInvalidCommand)
		}

		return Command{Kind: kind}, nil
	case KindRevert:
		if len(fields) != 2 {
			return Command{}, fmt.Errorf("%w: revert expects a history index", ErrInvalidCommand)
		}

		index, err := parseNumber(fields[1])
		if err != nil {
			return Command{}, err
		}

		return Command{Kind: kind, Index: index}, nil
	default:
		return Command{}, fmt.Errorf("%w: unknown command %q", ErrInvalidCommand, fields[0])
	}
}

func parseNumber(field string) (int, error) {
	n, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidCommand, field)
	}

	return n, nil
}
