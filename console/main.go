package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/LilConsul/Endless-TicTacToe/engine"
	"github.com/LilConsul/Endless-TicTacToe/match"
)

type shell struct {
	in         *bufio.Scanner
	out        io.Writer
	controller *match.Controller
}

func newShell(in io.Reader, out io.Writer, settings match.Settings) *shell {
	return &shell{
		in:         bufio.NewScanner(in),
		out:        out,
		controller: match.NewController(settings),
	}
}

var errInputClosed = errors.New("input closed")

func (s *shell) prompt(text string) (string, error) {
	fmt.Fprint(s.out, text)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(s.in.Text()), nil
}

// run plays the match to its end and returns the final status.
func (s *shell) run() (match.Status, error) {
	for {
		state := s.controller.State()
		if state.Status != match.StatusRunning {
			renderGrid(s.out, state.Grid)
			s.announce(state.Status)
			return state.Status, nil
		}
		if !s.controller.CurrentPlayerIsHuman() {
			move, err := s.controller.PlayBotMove()
			if errors.Is(err, match.ErrNoMove) {
				continue
			}
			if err != nil {
				return state.Status, err
			}
			fmt.Fprintf(s.out, "Computer played %d %d\n", move.Row, move.Col)
			continue
		}

		renderGrid(s.out, state.Grid)
		line, err := s.prompt(fmt.Sprintf("%s to move (row col): ", markLabel(state.ToMove)))
		if err != nil {
			return state.Status, err
		}
		row, col, err := parseMove(line)
		if err != nil {
			fmt.Fprintf(s.out, "Invalid input: %v\n", err)
			continue
		}
		if _, err := s.controller.ApplyHumanMove(row, col); err != nil {
			if errors.Is(err, match.ErrIllegalMove) {
				fmt.Fprintln(s.out, "Invalid move, try again.")
				continue
			}
			return state.Status, err
		}
	}
}

func (s *shell) announce(status match.Status) {
	settings := s.controller.Settings()
	switch status {
	case match.StatusBotWon:
		if settings.BotEnabled {
			fmt.Fprintln(s.out, "Computer won!")
		} else {
			fmt.Fprintln(s.out, "Player X won!")
		}
	case match.StatusOpponentWon:
		if settings.BotEnabled {
			fmt.Fprintln(s.out, "You won!")
		} else {
			fmt.Fprintln(s.out, "Player 0 won!")
		}
	case match.StatusStalled:
		fmt.Fprintln(s.out, "No moves left, draw.")
	}
}

func markLabel(mark engine.Cell) string {
	switch mark {
	case engine.CellBot:
		return "X"
	case engine.CellOpponent:
		return "0"
	default:
		return "."
	}
}

func renderGrid(w io.Writer, g engine.Grid) {
	size := g.Size()
	width := len(strconv.Itoa(size - 1))
	if width < 1 {
		width = 1
	}
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", width+1))
	for c := 0; c < size; c++ {
		fmt.Fprintf(&b, "%*d ", width, c)
	}
	b.WriteByte('\n')
	for r := 0; r < size; r++ {
		fmt.Fprintf(&b, "%*d ", width, r)
		for c := 0; c < size; c++ {
			fmt.Fprintf(&b, "%*s ", width, markLabel(g.At(r, c)))
		}
		b.WriteByte('\n')
	}
	fmt.Fprint(w, b.String())
}

func parseMove(line string) (int, int, error) {
	fields := strings.Fields(strings.ReplaceAll(line, ",", " "))
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("expected two numbers, got %q", line)
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("row: %w", err)
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("col: %w", err)
	}
	return row, col, nil
}

func askBotEnabled(s *shell, fallback bool) (bool, error) {
	for {
		answer, err := s.prompt("Play against the computer? (y/n): ")
		if err != nil {
			return fallback, err
		}
		switch strings.ToLower(answer) {
		case "":
			return fallback, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
	}
}

func main() {
	envFile := flag.String("env", "", "optional .env file with GOMOKU_* settings")
	ask := flag.Bool("ask", true, "ask whether to play against the computer")
	verbose := flag.Bool("v", false, "keep match and search logs on stderr")
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}
	var files []string
	if *envFile != "" {
		files = append(files, *envFile)
	}
	settings, err := match.LoadSettings(files...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "settings: %v\n", err)
	}

	s := newShell(os.Stdin, os.Stdout, settings)
	if *ask {
		enabled, err := askBotEnabled(s, settings.BotEnabled)
		if err != nil {
			os.Exit(1)
		}
		if enabled != settings.BotEnabled {
			settings.BotEnabled = enabled
			s.controller.Reset(settings)
		}
	}
	if _, err := s.run(); err != nil && !errors.Is(err, errInputClosed) {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
