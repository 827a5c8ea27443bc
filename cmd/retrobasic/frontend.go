package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("24")).Padding(0, 1)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type model struct {
	cfg      config
	src      string
	viewport viewport.Model
	input    textinput.Model
	ready    bool
	status   string
	events   <-chan tea.Msg
	pending  *machinePromptMsg
	history  []string
	tail     string
	done     bool
	runErr   error
}

func newModel(cfg config, src string) model {
	ti := textinput.New()
	ti.Prompt = "? "
	ti.CharLimit = 256
	return model{
		cfg:      cfg,
		src:      src,
		viewport: viewport.New(80, 24),
		input:    ti,
		status:   "starting",
	}
}

func runTUI(cfg config, path string) error {
	src, err := loadSource(path)
	if err != nil {
		return err
	}
	p := tea.NewProgram(newModel(cfg, src), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func startMachine(cfg config, src string) tea.Cmd {
	return func() tea.Msg {
		events := make(chan tea.Msg, 256)
		go runMachine(cfg, src, events)
		return machineStartedMsg{events: events}
	}
}

func waitEvent(events <-chan tea.Msg) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		msg, ok := <-events
		if !ok {
			return nil
		}
		return msg
	}
}

func (m model) Init() tea.Cmd {
	return startMachine(m.cfg, m.src)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		footer := 2
		if m.pending != nil {
			footer++
		}
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-footer, 1)
		m.ready = true
		m.refresh()
		return m, nil

	case machineStartedMsg:
		m.events = msg.events
		m.status = "running"
		return m, waitEvent(m.events)

	case machineOutputMsg:
		if msg.out.NewLine {
			m.history = append(m.history, m.tail+msg.out.Text)
			m.tail = ""
		} else {
			m.tail += msg.out.Text
		}
		m.refresh()
		return m, waitEvent(m.events)

	case machinePromptMsg:
		pending := msg
		m.pending = &pending
		m.input.Prompt = "? "
		if msg.prompt != "" {
			m.input.Prompt = msg.prompt + "? "
		}
		m.input.SetValue("")
		m.input.Focus()
		m.status = "awaiting input"
		return m, waitEvent(m.events)

	case machineDoneMsg:
		m.done = true
		m.runErr = msg.err
		m.pending = nil
		m.input.Blur()
		if msg.err != nil {
			m.status = "error"
		} else {
			m.status = "finished (press q to quit)"
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			if m.pending != nil {
				value := m.input.Value()
				m.pending.resp <- value
				m.history = append(m.history, m.tail+m.input.Prompt+value)
				m.tail = ""
				m.pending = nil
				m.input.Blur()
				m.input.SetValue("")
				m.status = "running"
				m.refresh()
				return m, nil
			}
		}
		if m.done && msg.String() == "q" {
			return m, tea.Quit
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	if m.pending != nil {
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *model) refresh() {
	content := strings.Join(m.history, "\n")
	if m.tail != "" {
		if content != "" {
			content += "\n"
		}
		content += m.tail
	}
	m.viewport.SetContent(content)
	m.viewport.GotoBottom()
}

func (m model) View() string {
	if !m.ready {
		return "starting..."
	}
	var b strings.Builder
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	if m.runErr != nil {
		b.WriteString(errStyle.Render(m.runErr.Error()))
	} else {
		b.WriteString(statusStyle.Render(m.status))
	}
	if m.pending != nil {
		b.WriteString("\n")
		b.WriteString(m.input.View())
	}
	return b.String()
}
