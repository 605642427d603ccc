package main

import (
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gompdf/gomdialog/internal/input"
	"github.com/gompdf/gomdialog/internal/render/term"
	"github.com/gompdf/gomdialog/internal/sound"
	"github.com/gompdf/gomdialog/pkg/api"
)

const (
	defaultCols = 80
	defaultRows = 24
)

// blinkInterval is how often the view is redrawn so the indicator blinks.
const blinkInterval = 100 * time.Millisecond

type tickMsg time.Time

type model struct {
	box   *api.DialogBox
	keys  *input.Latch
	next  string
	cols  int
	rows  int
	err   error
	sound *sound.Player
	copy  func(string) error
}

// newModel creates a model showing text. next is shown when O is pressed
// after the box closes.
func newModel(text, next string, opts ...api.Option) (model, error) {
	cols, rows := defaultCols, defaultRows
	vw, vh := term.Viewport(cols, rows)
	opts = append([]api.Option{api.WithViewport(vw, vh)}, opts...)

	m := model{
		box:  api.New(term.Metrics(), opts...),
		keys: &input.Latch{},
		next: next,
		cols: cols,
		rows: rows,
		copy: clipboard.WriteAll,
	}
	if err := m.box.Show(text); err != nil {
		return m, err
	}
	return m, nil
}

func (m model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(blinkInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			return m, tea.Quit
		case "enter", " ", "space":
			m.keys.Press(input.ActionConfirm)
		case "x":
			m.keys.Press(input.ActionSkip)
		case "o":
			if !m.box.Active() {
				m.err = m.box.Show(m.next)
			}
			return m, nil
		case "c":
			if f, ok := m.box.Frame(); ok && f.Text != "" {
				m.err = m.copy(f.Text)
			}
			return m, nil
		}
		m.sound.Play(sound.Cue(m.box.Update(m.keys)))
		return m, nil

	case tea.WindowSizeMsg:
		m.cols, m.rows = msg.Width, msg.Height
		m.err = m.box.SetViewport(term.Viewport(m.cols, m.rows))
		return m, nil

	case tickMsg:
		return m, tickCmd()
	}
	return m, nil
}

func (m model) View() string {
	if m.err != nil {
		return "dialog: " + m.err.Error() + "\n"
	}
	s := term.NewSurface(m.cols, m.rows, m.box.Options().Background)
	m.box.Draw(s)
	return s.Render()
}
