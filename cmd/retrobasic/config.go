package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	bruntime "github.com/gosuda/retrobasic/runtime"
)

type config struct {
	TabWidth  int   `toml:"tab_width"`
	Seed      int64 `toml:"seed"`
	StepLimit int   `toml:"step_limit"`
}

func loadConfig(path string) (config, error) {
	var cfg config
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c config) apply(m *bruntime.Machine) {
	if c.TabWidth > 0 {
		m.SetTabWidth(c.TabWidth)
	}
	if c.Seed != 0 {
		m.SetSeed(c.Seed)
	}
	if c.StepLimit > 0 {
		m.SetStepLimit(c.StepLimit)
	}
}
