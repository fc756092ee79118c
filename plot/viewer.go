// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package plot

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Viewer shows a chart full screen in a terminal and returns when the user
// quits it.
type Viewer struct {
	In  io.Reader // nil for stdin.
	Out io.Writer // nil for stdout.
}

func (v *Viewer) Present(ctx context.Context, c *Chart) error {
	opts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}
	if v.In != nil {
		opts = append(opts, tea.WithInput(v.In))
	}
	if v.Out != nil {
		opts = append(opts, tea.WithOutput(v.Out))
	}
	p := tea.NewProgram(newViewModel(c), opts...)
	if _, e := p.Run(); e != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return presentErr("terminal viewer: %s", e)
	}
	return nil
}

type viewKeys struct {
	Quit key.Binding
}

type viewStyles struct {
	Title lipgloss.Style
	Help  lipgloss.Style
	Lines []lipgloss.Style
}

type viewModel struct {
	chart  *Chart
	keys   viewKeys
	styles viewStyles
	width  int
	height int
}

func newViewModel(c *Chart) viewModel {
	st := viewStyles{
		Title: lipgloss.NewStyle().Bold(true).MarginBottom(1),
		Help:  lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")).MarginTop(1),
	}
	for _, ln := range c.Lines {
		st.Lines = append(st.Lines, lipgloss.NewStyle().Foreground(lipgloss.Color(ln.Color)))
	}
	return viewModel{
		chart:  c,
		styles: st,
		keys: viewKeys{
			Quit: key.NewBinding(
				key.WithKeys("q", "esc", "ctrl+c"),
				key.WithHelp("q", "quit")),
		},
		width:  80,
		height: 24,
	}
}

func (m viewModel) Init() tea.Cmd {
	return nil
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
	}
	return m, nil
}

// plotSize leaves room for the axes labels, legend, title and help.
func (m viewModel) plotSize() (cols, rows int) {
	cols = m.width - 16
	rows = m.height - 10 - len(m.chart.Lines)
	return max(cols, 10), max(rows, 4)
}

func (m viewModel) View() string {
	c := *m.chart
	title := c.Title
	c.Title = ""
	cols, rows := m.plotSize()
	body := Utf8(&c, cols, rows, func(i int, s string) string {
		return m.styles.Lines[i].Render(s)
	})
	help := m.keys.Quit.Help()
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render(title),
		strings.TrimRight(body, "\n"),
		m.styles.Help.Render(help.Key+" "+help.Desc))
}
