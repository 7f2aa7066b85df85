package main

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/cubetwin/rubik"
	"github.com/cubetwin/rubik/internal/render"
)

func playCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Turn the cube interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := newPlayModel()
			_, err := tea.NewProgram(m).Run()
			return err
		},
	}
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	solvedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("34"))
)

type playModel struct {
	session *rubik.Session
	rng     *rand.Rand
	status  string
}

func newPlayModel() playModel {
	return playModel{
		session: rubik.NewSession(),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		status:  "ready",
	}
}

func (m playModel) Init() tea.Cmd {
	return nil
}

// Lowercase letters turn clockwise, uppercase counter-clockwise.
var keyMoves = map[string]rubik.Move{
	"w": rubik.W, "W": rubik.WPrime,
	"r": rubik.R, "R": rubik.RPrime,
	"b": rubik.B, "B": rubik.BPrime,
	"o": rubik.O, "O": rubik.OPrime,
	"g": rubik.G, "G": rubik.GPrime,
	"y": rubik.Y, "Y": rubik.YPrime,
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := keyMsg.String(); key {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "s":
		moves := make([]rubik.Move, 10)
		for i := range moves {
			moves[i] = rubik.RandomMove(m.rng)
		}
		m.session.ApplyMoves(moves)
		m.status = "scrambled: " + rubik.FormatMoves(moves)
	case "z":
		if m.session.Undo() {
			m.status = "undid last move"
		} else {
			m.status = "nothing to undo"
		}
	case "n":
		m.session.Reset()
		m.status = "reset to solved"
	default:
		if move, ok := keyMoves[key]; ok {
			m.session.Apply(move)
			m.status = "applied " + move.Notation()
		}
	}

	return m, nil
}

func (m playModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("rubik play"))
	b.WriteString("\n\n")
	b.WriteString(render.Net(m.session.Cube()))
	b.WriteString("\n")

	if m.session.IsSolved() {
		b.WriteString(solvedStyle.Render("SOLVED"))
	} else {
		b.WriteString(fmt.Sprintf("phase: %s", m.session.CurrentPhase().DisplayName()))
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("moves: %d  %s\n", len(m.session.Moves()), m.status))
	b.WriteString(helpStyle.Render("w/r/b/o/g/y turn (shift = reverse) · s scramble · z undo · n reset · q quit"))
	b.WriteString("\n")

	return b.String()
}
