package actions

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/unitctl-tools/cli/internal/store"
	"github.com/unitctl-tools/cli/internal/ui/style"
)

// HistoryInteractive opens the invocation journal in a scrollable
// full-screen viewer.
func HistoryInteractive(args []string) error {
	return historyInteractive(args, DefaultDeps())
}

func historyInteractive(args []string, deps Deps) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("interactive history requires an interactive terminal")
	}

	events, err := loadHistory(args, deps)
	if err != nil {
		return err
	}

	m := newHistoryModel(events)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}

type historyModel struct {
	viewport viewport.Model
	events   []store.UnitEvent
	ready    bool
}

func newHistoryModel(events []store.UnitEvent) historyModel {
	return historyModel{events: events}
}

func (m historyModel) Init() tea.Cmd {
	return nil
}

func (m historyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		headerHeight := 2
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight)
			m.viewport.SetContent(m.content())
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m historyModel) View() string {
	if !m.ready {
		return "loading journal..."
	}

	header := style.Header(fmt.Sprintf("journal — %d event(s)", len(m.events)))
	help := style.Muted("  ↑/↓ scroll · q quit")
	return header + help + "\n\n" + m.viewport.View()
}

func (m historyModel) content() string {
	if len(m.events) == 0 {
		return style.Muted("journal is empty")
	}

	var b strings.Builder
	for _, e := range m.events {
		b.WriteString(formatEvent(e))
		b.WriteByte('\n')
	}
	return b.String()
}
