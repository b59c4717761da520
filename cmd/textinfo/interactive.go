package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/Ilgrim/pennmush/casemap"
	"github.com/Ilgrim/pennmush/charset"
	"github.com/Ilgrim/pennmush/pstr"
	"github.com/Ilgrim/pennmush/textscan"
	"github.com/Ilgrim/pennmush/walk"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	opStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type opInfo struct {
	name string
	desc string
	run  func(string) (string, error)
}

type modelState int

const (
	stateSelectOp modelState = iota
	stateEnterText
	stateShowResult
)

type interactiveModel struct {
	err      error
	result   string
	ops      []opInfo
	input    textinput.Model
	selected int
	state    modelState
}

func newInteractiveModel() *interactiveModel {
	ti := textinput.New()
	ti.Prompt = "text: "
	ti.Width = 60
	return &interactiveModel{
		ops:   buildOps(),
		input: ti,
		state: stateSelectOp,
	}
}

func buildOps() []opInfo {
	return []opInfo{
		{"counts", "byte, codepoint, grapheme and visible lengths", func(s string) (string, error) {
			return fmt.Sprintf("bytes %d, codepoints %d, graphemes %d, visible %d, cells %d",
				len(s), walk.CodepointCount(s), walk.GraphemeCount(s),
				textscan.VisibleLen(s), runewidth.StringWidth(s)), nil
		}},
		{"graphemes", "per-cluster table with codepoints and cell widths", func(s string) (string, error) {
			var b strings.Builder
			fmt.Fprintf(&b, "%-4s %-12s %-6s %s\n", "off", "cluster", "cells", "codepoints")
			walk.ForEachGrapheme(s, func(g walk.Grapheme) bool {
				var cps []string
				walk.ForEachCodepoint(g.Cluster, func(cp walk.Codepoint) bool {
					cps = append(cps, fmt.Sprintf("U+%04X", cp.R))
					return true
				})
				fmt.Fprintf(&b, "%-4d %-12q %-6d %s\n",
					g.Offset, g.Cluster, runewidth.StringWidth(g.Cluster),
					strings.Join(cps, " "))
				return true
			})
			return strings.TrimSuffix(b.String(), "\n"), nil
		}},
		{"tokens", "split on spaces, markup spans kept whole", func(s string) (string, error) {
			var toks []string
			rest := s
			for {
				var tok string
				var more bool
				tok, rest, more = textscan.SplitToken(rest, ' ')
				toks = append(toks, fmt.Sprintf("%q", tok))
				if !more {
					break
				}
			}
			return strings.Join(toks, " "), nil
		}},
		{"upper", "full Unicode uppercase", func(s string) (string, error) {
			return casemap.Upper(s), nil
		}},
		{"lower", "full Unicode lowercase", func(s string) (string, error) {
			return casemap.Lower(s), nil
		}},
		{"initial", "first codepoint title-cased, rest lowered", func(s string) (string, error) {
			return casemap.Initial(s), nil
		}},
		{"latin1", "downconvert to Latin-1 and back", func(s string) (string, error) {
			l1 := charset.UTF8ToLatin1String(s)
			return fmt.Sprintf("% x -> %s", l1, charset.Latin1ToUTF8String(l1)), nil
		}},
		{"like", "glob pattern to SQL LIKE with '$' escape", func(s string) (string, error) {
			return pstr.GlobToLike(s, '$'), nil
		}},
		{"validate", "structural UTF-8 check", func(s string) (string, error) {
			if charset.ValidUTF8(s) {
				return "valid UTF-8", nil
			}
			return "invalid UTF-8", nil
		}},
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateEnterText {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectOp && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectOp && m.selected < len(m.ops)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectOp:
				m.input.SetValue("")
				m.input.Focus()
				m.state = stateEnterText

			case stateEnterText:
				m.input.Blur()
				m.result, m.err = m.ops[m.selected].run(m.input.Value())
				m.state = stateShowResult

			case stateShowResult:
				m.state = stateSelectOp
				m.result = ""
				m.err = nil
			}

		case "esc":
			switch m.state {
			case stateEnterText:
				m.input.Blur()
				m.state = stateSelectOp
			case stateShowResult:
				m.state = stateSelectOp
				m.result = ""
				m.err = nil
			}
		}
	}

	if m.state == stateEnterText {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Text Inspector"))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectOp:
		b.WriteString("Select an operation:\n\n")
		for i, op := range m.ops {
			line := opStyle.Render(op.name) + "  " + helpStyle.Render(op.desc)
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + op.name))
				b.WriteString("  ")
				b.WriteString(helpStyle.Render(op.desc))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter choose • q quit"))

	case stateEnterText:
		b.WriteString(fmt.Sprintf("Operation: %s\n\n", opStyle.Render(m.ops[m.selected].name)))
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter run • esc back"))

	case stateShowResult:
		b.WriteString(fmt.Sprintf("Result of %s:\n\n", opStyle.Render(m.ops[m.selected].name)))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func runInteractive() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("interactive mode needs a terminal")
	}
	p := tea.NewProgram(newInteractiveModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
