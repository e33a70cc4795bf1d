package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/shiftpay/internal/app"
	"github.com/rgehrsitz/shiftpay/internal/tracker"
	"github.com/rgehrsitz/shiftpay/pkg/dateutil"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Replaced in tests.
var (
	nowFunc  = time.Now
	copyText = clipboard.WriteAll
)

// rootFlags are the persistent flags shared by every command.
type rootFlags struct {
	configFile string
	dataDir    string
	backend    string
	debug      bool
}

func (f *rootFlags) open(cmd *cobra.Command) (*app.Session, error) {
	return app.Open(app.Options{
		ConfigFile: f.configFile,
		DataDir:    f.dataDir,
		Backend:    f.backend,
		Debug:      f.debug,
		LogOutput:  cmd.ErrOrStderr(),
	})
}

// withService opens the configured store around fn.
func (f *rootFlags) withService(fn func(cmd *cobra.Command, args []string, svc *tracker.Service) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		sess, err := f.open(cmd)
		if err != nil {
			return err
		}
		defer sess.Close()
		return fn(cmd, args, sess.Service)
	}
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:   "shiftpay",
		Short: "Work hours tracker with weekly pay estimates",
		Long: `shiftpay records work shifts, runs a clock-in timer, and estimates weekly
gross pay, overtime and withholding (federal, state and FICA).

Data lives in ~/.shiftpay unless --data-dir, SHIFTPAY_DATA_DIR or a config
file says otherwise.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.configFile, "config", "", "App config file (default: ./config.yaml or ~/.shiftpay/config.yaml)")
	root.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "Directory holding the tracker data")
	root.PersistentFlags().StringVar(&flags.backend, "backend", "", "Storage backend (file, sqlite)")
	root.PersistentFlags().BoolVar(&flags.debug, "debug", false, "Enable debug logging")

	root.AddCommand(
		newClockCmd(flags),
		newShiftCmd(flags),
		newStatsCmd(flags),
		newReportCmd(flags),
		newImportCmd(flags),
		newSettingsCmd(flags),
		versionCmd(),
	)
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "shiftpay %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.Main.Path + " " + bi.Main.Version
	}
	return ""
}

// dateFlag returns the --date value, or today.
func dateFlag(cmd *cobra.Command) (time.Time, error) {
	s, _ := cmd.Flags().GetString("date")
	if s == "" {
		return nowFunc(), nil
	}
	d, err := dateutil.ParseDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q (want YYYY-MM-DD)", s)
	}
	return d, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", tracker.UserMessage(err))
		os.Exit(1)
	}
}
