package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/shiftpay/internal/domain"
	"github.com/rgehrsitz/shiftpay/internal/importer"
	"github.com/rgehrsitz/shiftpay/internal/output"
	"github.com/rgehrsitz/shiftpay/internal/tracker"
)

func newStatsCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show hours, gross pay and estimated withholding for a week",
		Args:  cobra.NoArgs,
		RunE: flags.withService(func(cmd *cobra.Command, args []string, svc *tracker.Service) error {
			anchor, err := dateFlag(cmd)
			if err != nil {
				return err
			}
			w, err := svc.Week(cmd.Context(), anchor, nowFunc())
			if err != nil {
				return err
			}
			printStats(cmd.OutOrStdout(), w)
			return nil
		}),
	}
	cmd.Flags().String("date", "", "Any date in the week (YYYY-MM-DD, default today)")
	return cmd
}

func printStats(w io.Writer, week tracker.WeekSummary) {
	st, tax := week.Stats, week.Settings.TaxSettings
	fmt.Fprintf(w, "Week: %s\n", week.Label)
	if week.Clock != nil {
		fmt.Fprintf(w, "Includes the running shift since %s.\n", week.Clock.Time)
	}
	fmt.Fprintln(w)
	row := func(label, value string) { fmt.Fprintf(w, "%-16s %12s\n", label, value) }

	row("Total Hours", output.FormatHours(st.TotalHours))
	row("Regular", output.FormatHours(st.RegularHours))
	row("Overtime", output.FormatHours(st.OvertimeHours))
	row("Regular Pay", output.FormatCurrency(st.RegularPay))
	row("Overtime Pay", output.FormatCurrency(st.OvertimePay))
	gross := output.FormatCurrency(st.GrossPay)
	if st.GuaranteeApplied {
		gross += " *"
	}
	row("Gross Pay", gross)

	if tax.Is1099 {
		row("Net Pay (Est)", output.FormatCurrency(st.NetPay))
		fmt.Fprintln(w, "\n1099 contractor: no withholding estimated.")
	} else {
		row("Federal Tax", output.FormatCurrency(st.EstimatedFederalTax))
		row(stateLabel(tax), output.FormatCurrency(st.EstimatedStateTax))
		row("FICA", output.FormatCurrency(st.EstimatedFICA))
		if tax.AdditionalWithholding.IsPositive() {
			row("Extra Withheld", output.FormatCurrency(tax.AdditionalWithholding))
		}
		row("Net Pay (Est)", output.FormatCurrency(st.NetPay))
	}
	if st.GuaranteeApplied {
		fmt.Fprintf(w, "\n* Weekly minimum guarantee of %s applied.\n", output.FormatCurrency(week.Settings.MinWeeklyGuarantee))
	}
}

func stateLabel(tax domain.TaxProfile) string {
	return "State Tax (" + string(tax.StateCode) + ")"
}

// formatExtensions maps formatter names to the extension used by --save.
var formatExtensions = map[string]string{
	"simple":   "txt",
	"detailed": "txt",
	"csv":      "csv",
	"json":     "json",
	"html":     "html",
}

func newReportCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the weekly share report",
		Long: fmt.Sprintf(`Print the weekly report. The simple report lists each shift and the total
hours; --detailed adds a pay summary. --format selects any output format
(%s; aliases %s).`,
			strings.Join(output.AvailableFormatterNames(), ", "),
			strings.Join(output.AvailableFormatAliases(), ", ")),
		Args: cobra.NoArgs,
		RunE: flags.withService(func(cmd *cobra.Command, args []string, svc *tracker.Service) error {
			anchor, err := dateFlag(cmd)
			if err != nil {
				return err
			}
			format, _ := cmd.Flags().GetString("format")
			detailed, _ := cmd.Flags().GetBool("detailed")
			copyFlag, _ := cmd.Flags().GetBool("copy")
			save, _ := cmd.Flags().GetBool("save")
			if format == "" {
				format = "simple"
				if detailed {
					format = "detailed"
				}
			}
			format = output.NormalizeFormatName(format)

			w, err := svc.Week(cmd.Context(), anchor, nowFunc())
			if err != nil {
				return err
			}
			data, err := w.Render(format)
			if err != nil {
				return err
			}
			if _, err := cmd.OutOrStdout().Write(data); err != nil {
				return err
			}

			if copyFlag {
				if err := copyText(strings.TrimRight(string(data), "\n")); err != nil {
					return fmt.Errorf("failed to copy report: %w", err)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), "Copied to clipboard.")
			}
			if save {
				name, err := output.WriteFormatted(output.GetFormatterByName(format), w.Report(), formatExtensions[format])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Saved %s\n", name)
			}
			return nil
		}),
	}
	cmd.Flags().String("date", "", "Any date in the week (YYYY-MM-DD, default today)")
	cmd.Flags().Bool("detailed", false, "Include the pay summary")
	cmd.Flags().Bool("copy", false, "Also copy the report to the clipboard")
	cmd.Flags().Bool("save", false, "Also write the report to a timestamped file in the current directory")
	cmd.Flags().StringP("format", "f", "", "Output format (simple, detailed, csv, json, html)")
	return cmd
}

func newImportCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import shifts from share text or delimited rows",
		Long: `Import shifts from a file, or from standard input when no file is given.
Lines in the share format ("Mon, Oct 24: 08:00 - 17:00") are always
recognized and dated in the current year. Other lines are split on
--separator and mapped through --columns. Imported shifts are not checked
for overlaps.`,
		Example: `  shiftpay import hours.csv
  shiftpay import --separator tab --columns ignore,date,start < export.tsv`,
		Args: cobra.MaximumNArgs(1),
		RunE: flags.withService(func(cmd *cobra.Command, args []string, svc *tracker.Service) error {
			opts := importer.DefaultOptions(nowFunc())
			sep, _ := cmd.Flags().GetString("separator")
			cols, _ := cmd.Flags().GetString("columns")
			var err error
			if opts.Separator, err = importer.ParseSeparator(sep); err != nil {
				return err
			}
			if opts.Columns, err = importer.ParseColumns(cols); err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open %s: %w", args[0], err)
				}
				defer f.Close()
				in = f
			}

			res, err := importer.ParseReader(in, opts)
			if err != nil {
				return err
			}
			if msg := res.Summary(); msg != "" {
				fmt.Fprintln(cmd.ErrOrStderr(), msg)
			}
			added, err := svc.ImportShifts(cmd.Context(), res.Shifts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d shifts.\n", len(added))
			return nil
		}),
	}
	cmd.Flags().String("separator", "comma", "Field separator (comma, tab, space, semicolon)")
	cmd.Flags().String("columns", "date,start,end", "Meaning of the first three fields (date, start, end, ignore)")
	return cmd
}
