package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/cricklet/chessmoves/internal/board"
	. "github.com/cricklet/chessmoves/internal/helpers"
	"github.com/cricklet/chessmoves/internal/snapshot"
	"github.com/davecgh/go-spew/spew"
	"github.com/dustin/go-humanize"
	"github.com/pkg/profile"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: movegen [profile] [lenient] fen <fen>")
	fmt.Fprintln(os.Stderr, "       movegen [profile] [lenient] file <path>")
	fmt.Fprintln(os.Stderr, "       movegen [profile] dump <fen>")
}

func buildOptions(lenient bool) []board.BuildOption {
	if !lenient {
		return nil
	}
	return []board.BuildOption{
		board.WithStrictness(board.Lenient),
		board.WithLogger(FuncLogger(func(s string) {
			fmt.Fprint(os.Stderr, s)
		})),
	}
}

func printMoves(fen string, lenient bool) Error {
	b, err := board.BuildFromFen(fen, buildOptions(lenient)...)
	if !IsNil(err) {
		return err
	}

	fmt.Print(b.Unicode())
	fmt.Println(b.CurrentPlayer(), "to move")
	for _, p := range b.PiecesOfColor(b.CurrentPlayer()) {
		moves := MapSlice(b.MovesFrom(p.Position()), func(m board.Move) string {
			return m.DebugString()
		})
		fmt.Printf("%v: %v\n", board.Describe(p), strings.Join(moves, " "))
	}
	fmt.Println(len(b.Moves(b.CurrentPlayer())), "moves")
	return NilError
}

// countMoves reads one FEN per line and totals the moves of the side to move.
func countMoves(path string, lenient bool) Error {
	data, err := WrapReturn(os.ReadFile(path))
	if !IsNil(err) {
		return err
	}
	lines := FilterSlice(strings.Split(string(data), "\n"), func(line string) bool {
		return strings.TrimSpace(line) != ""
	})

	progress := CreateProgressBar(len(lines), "positions")

	total, failures := 0, []Error{}
	for i, line := range lines {
		b, err := board.BuildFromFen(line, buildOptions(lenient)...)
		if IsNil(err) {
			total += len(b.Moves(b.CurrentPlayer()))
		} else {
			failures = append(failures, Errorf("line %v: %w", i+1, err))
		}
		progress.Add(1)
	}
	progress.Close()

	fmt.Printf("%v moves across %v positions\n", humanize.Comma(int64(total)), humanize.Comma(int64(len(lines))))
	return Join(failures...)
}

func dump(fen string) Error {
	g, err := snapshot.FromFen(fen)
	if !IsNil(err) {
		return err
	}
	fmt.Print(spew.Sdump(g))
	return NilError
}

func run(args []string) (bool, Error) {
	lenient := Contains(args, "lenient")
	args = FilterSlice(args, func(arg string) bool {
		return arg != "lenient"
	})
	if len(args) < 2 {
		return false, NilError
	}

	rest := strings.Join(args[1:], " ")
	switch args[0] {
	case "fen":
		return true, printMoves(rest, lenient)
	case "file":
		return true, countMoves(rest, lenient)
	case "dump":
		return true, dump(rest)
	}
	return false, NilError
}

func main() {
	args := os.Args[1:]

	status := 0
	if Contains(args, "profile") {
		p := profile.Start(profile.ProfilePath("."))
		defer func() {
			p.Stop()
			os.Exit(status)
		}()
	} else {
		defer func() {
			os.Exit(status)
		}()
	}
	args = FilterSlice(args, func(arg string) bool {
		return arg != "profile"
	})

	ok, err := run(args)
	if !ok {
		usage()
		status = 2
	} else if !IsNil(err) {
		fmt.Fprint(os.Stderr, err.String())
		status = 1
	}
}
