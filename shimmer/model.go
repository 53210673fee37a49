package shimmer

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type tickMsg time.Time

// Model animates a Shimmer over a fixed text inside a bubbletea program.
type Model struct {
	shimmer  Shimmer
	text     string
	frame    int
	interval time.Duration
	paused   bool
	quitting bool

	keymap keymap
	help   help.Model
}

// NewModel builds a model advancing one frame every 1/fps seconds.
func NewModel(s Shimmer, text string, fps int) Model {
	if fps < 1 {
		fps = 1
	}
	return Model{
		shimmer:  s,
		text:     text,
		interval: time.Second / time.Duration(fps),
		keymap:   newKeymap(),
		help:     help.New(),
	}
}

func (m Model) Frame() int   { return m.frame }
func (m Model) Paused() bool { return m.paused }

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keymap.pause):
			m.paused = !m.paused
		}
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tickMsg:
		if !m.paused {
			m.frame = (m.frame + 1) % m.shimmer.Period(len([]rune(m.text)))
		}
		return m, m.tick()
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.shimmer.Render(m.text, m.frame) + "\n\n" + m.help.View(m.keymap)
}

// Run starts the animation and blocks until the user quits.
func Run(s Shimmer, text string, fps int) error {
	_, err := tea.NewProgram(NewModel(s, text, fps)).Run()
	return err
}
