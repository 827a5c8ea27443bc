package main

import (
	tea "github.com/charmbracelet/bubbletea"

	bruntime "github.com/gosuda/retrobasic/runtime"
)

type machineStartedMsg struct {
	events <-chan tea.Msg
}

type machineOutputMsg struct {
	out bruntime.Output
}

type machinePromptMsg struct {
	prompt string
	resp   chan string
}

type machineDoneMsg struct {
	err error
}
