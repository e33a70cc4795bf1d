package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/shiftpay/internal/app"
	"github.com/rgehrsitz/shiftpay/internal/tui"
)

func main() {
	var opts app.Options
	var logFile string

	root := &cobra.Command{
		Use:   "shiftpay-tui",
		Short: "Terminal dashboard for the shiftpay work hours tracker",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The dashboard owns the terminal, so logs go to a file or nowhere.
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
				if err != nil {
					return fmt.Errorf("failed to open log file: %w", err)
				}
				defer f.Close()
				opts.LogOutput = f
			}

			sess, err := app.Open(opts)
			if err != nil {
				return err
			}
			defer sess.Close()

			p := tea.NewProgram(
				tui.NewModel(sess.Service),
				tea.WithAltScreen(),
			)
			_, err = p.Run()
			return err
		},
		SilenceUsage: true,
	}
	root.Flags().StringVar(&opts.ConfigFile, "config", "", "App config file")
	root.Flags().StringVar(&opts.DataDir, "data-dir", "", "Directory holding the tracker data")
	root.Flags().StringVar(&opts.Backend, "backend", "", "Storage backend (file, sqlite)")
	root.Flags().BoolVar(&opts.Debug, "debug", false, "Enable debug logging")
	root.Flags().StringVar(&logFile, "log-file", "", "Write logs to this file")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
