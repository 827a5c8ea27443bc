package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gosuda/retrobasic"
	bruntime "github.com/gosuda/retrobasic/runtime"
)

func loadSource(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("load program: %w", err)
	}
	return string(b), nil
}

func runPlain(cfg config, path string) error {
	src, err := loadSource(path)
	if err != nil {
		return err
	}
	m, err := retrobasic.Compile(src)
	if err != nil {
		return fmt.Errorf("compile: %w", err)
	}
	cfg.apply(m)

	reader := bufio.NewReader(os.Stdin)

	m.SetOutputHook(func(out bruntime.Output) {
		if out.NewLine {
			fmt.Println(out.Text)
		} else {
			fmt.Print(out.Text)
		}
	})

	m.SetInputProvider(func(prompt string) (string, error) {
		if prompt != "" {
			fmt.Print(prompt)
		}
		fmt.Print("? ")
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return "", err
		}
		return strings.TrimRight(line, "\r\n"), nil
	})

	_, err = m.Run()
	return err
}
