package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/shiftpay/internal/config"
	"github.com/rgehrsitz/shiftpay/internal/tracker"
)

func newSettingsCmd(flags *rootFlags) *cobra.Command {
	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "Show and change pay and tax settings",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the current settings",
		Args:  cobra.NoArgs,
		RunE: flags.withService(func(cmd *cobra.Command, args []string, svc *tracker.Service) error {
			settings, err := svc.Settings(cmd.Context())
			if err != nil {
				return err
			}
			format, _ := cmd.Flags().GetString("format")
			var data []byte
			switch format {
			case "yaml", "yml", "":
				data, err = config.MarshalSettings(settings)
			case "json":
				data, err = json.MarshalIndent(settings, "", "  ")
				data = append(data, '\n')
			default:
				return fmt.Errorf("unknown settings format %q (use yaml or json)", format)
			}
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}),
	}
	showCmd.Flags().StringP("format", "f", "yaml", "Output format (yaml, json)")

	importCmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the settings with a YAML file",
		Long:  "Replace the settings with a YAML file. Fields missing from the file take their default values.",
		Args:  cobra.ExactArgs(1),
		RunE: flags.withService(func(cmd *cobra.Command, args []string, svc *tracker.Service) error {
			settings, err := config.NewSettingsParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			if err := svc.UpdateSettings(cmd.Context(), *settings); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Settings imported from %s.\n", args[0])
			return nil
		}),
	}

	exportCmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Write the current settings to a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: flags.withService(func(cmd *cobra.Command, args []string, svc *tracker.Service) error {
			settings, err := svc.Settings(cmd.Context())
			if err != nil {
				return err
			}
			if err := config.SaveToFile(settings, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Settings written to %s.\n", args[0])
			return nil
		}),
	}

	setCmd := &cobra.Command{
		Use:   "set <key=value>...",
		Short: "Change individual settings",
		Example: `  shiftpay settings set hourly_rate=22.50 overtime_threshold=40
  shiftpay settings set tax_settings.state_code=NY tax_settings.filing_status=mfj`,
		Args: cobra.MinimumNArgs(1),
		RunE: flags.withService(func(cmd *cobra.Command, args []string, svc *tracker.Service) error {
			current, err := svc.Settings(cmd.Context())
			if err != nil {
				return err
			}
			updated, err := config.NewSettingsParser().ApplyOverrides(current, args)
			if err != nil {
				return err
			}
			if err := svc.UpdateSettings(cmd.Context(), *updated); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %d setting(s).\n", len(args))
			return nil
		}),
	}

	settingsCmd.AddCommand(showCmd, importCmd, exportCmd, setCmd)
	return settingsCmd
}
