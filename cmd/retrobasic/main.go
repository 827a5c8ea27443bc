package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	var configPath string

	root := &cobra.Command{
		Use:           "retrobasic",
		Short:         "Line-numbered BASIC interpreter",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "TOML config file")

	runCmd := &cobra.Command{
		Use:   "run <file.bas>",
		Short: "Run a program on stdin/stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			return runPlain(cfg, args[0])
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui <file.bas>",
		Short: "Run a program in the terminal frontend",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			return runTUI(cfg, args[0])
		},
	}

	astCmd := &cobra.Command{
		Use:   "ast <file.bas>",
		Short: "Parse a program and dump its line table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return dumpProgram(os.Stdout, args[0])
		},
	}

	root.AddCommand(runCmd, tuiCmd, astCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "retrobasic: %v\n", err)
		os.Exit(1)
	}
}
