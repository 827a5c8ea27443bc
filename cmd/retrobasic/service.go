package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gosuda/retrobasic"
	bruntime "github.com/gosuda/retrobasic/runtime"
)

// runMachine executes the program on its own goroutine, feeding the TUI
// through the events channel. INPUT blocks on the response channel carried
// by the prompt message.
func runMachine(cfg config, src string, events chan<- tea.Msg) {
	defer close(events)
	m, err := retrobasic.Compile(src)
	if err != nil {
		events <- machineDoneMsg{err: fmt.Errorf("compile: %w", err)}
		return
	}
	cfg.apply(m)

	m.SetOutputHook(func(out bruntime.Output) {
		events <- machineOutputMsg{out: out}
	})
	m.SetInputProvider(func(prompt string) (string, error) {
		resp := make(chan string, 1)
		events <- machinePromptMsg{prompt: prompt, resp: resp}
		return <-resp, nil
	})

	_, err = m.Run()
	events <- machineDoneMsg{err: err}
}
