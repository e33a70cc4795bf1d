package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/shiftpay/internal/calculation"
	"github.com/rgehrsitz/shiftpay/internal/domain"
	"github.com/rgehrsitz/shiftpay/internal/output"
	"github.com/rgehrsitz/shiftpay/internal/tracker"
	"github.com/rgehrsitz/shiftpay/pkg/dateutil"
)

func newShiftCmd(flags *rootFlags) *cobra.Command {
	shiftCmd := &cobra.Command{
		Use:   "shift",
		Short: "Add, edit, delete and list shifts",
	}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Record a completed shift",
		Long: `Record a completed shift. An end time earlier than the start time means the
shift ran past midnight. Shifts may not overlap existing entries.`,
		Example: "  shiftpay shift add --date 2026-03-02 --start 08:00 --end 16:30",
		Args:    cobra.NoArgs,
		RunE: flags.withService(func(cmd *cobra.Command, args []string, svc *tracker.Service) error {
			d, err := dateFlag(cmd)
			if err != nil {
				return err
			}
			start, _ := cmd.Flags().GetString("start")
			end, _ := cmd.Flags().GetString("end")
			sh, err := svc.AddShift(cmd.Context(), domain.Shift{Date: dateutil.FormatDate(d), StartTime: start, EndTime: end})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added shift %s: %s\n", sh.ID, describeShift(sh))
			return nil
		}),
	}
	addCmd.Flags().String("date", "", "Shift date (YYYY-MM-DD, default today)")
	addCmd.Flags().String("start", "", "Start time (HH:MM)")
	addCmd.Flags().String("end", "", "End time (HH:MM)")

	editCmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a saved shift",
		Args:  cobra.ExactArgs(1),
		RunE: flags.withService(func(cmd *cobra.Command, args []string, svc *tracker.Service) error {
			sh, err := svc.GetShift(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("date") {
				d, err := dateFlag(cmd)
				if err != nil {
					return err
				}
				sh.Date = dateutil.FormatDate(d)
			}
			if cmd.Flags().Changed("start") {
				sh.StartTime, _ = cmd.Flags().GetString("start")
			}
			if cmd.Flags().Changed("end") {
				sh.EndTime, _ = cmd.Flags().GetString("end")
			}
			sh, err = svc.UpdateShift(cmd.Context(), sh)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated shift %s: %s\n", sh.ID, describeShift(sh))
			return nil
		}),
	}
	editCmd.Flags().String("date", "", "New date (YYYY-MM-DD)")
	editCmd.Flags().String("start", "", "New start time (HH:MM)")
	editCmd.Flags().String("end", "", "New end time (HH:MM)")

	deleteCmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a saved shift",
		Args:    cobra.ExactArgs(1),
		RunE: flags.withService(func(cmd *cobra.Command, args []string, svc *tracker.Service) error {
			if err := svc.DeleteShift(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted shift %s.\n", args[0])
			return nil
		}),
	}

	listCmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List shifts grouped by day, newest first",
		Long:    "List the shifts of the week containing --date (default this week), or every shift with --all.",
		Args:    cobra.NoArgs,
		RunE: flags.withService(func(cmd *cobra.Command, args []string, svc *tracker.Service) error {
			all, _ := cmd.Flags().GetBool("all")
			var shifts []domain.Shift
			if all {
				var err error
				if shifts, err = svc.ListShifts(cmd.Context()); err != nil {
					return err
				}
			} else {
				anchor, err := dateFlag(cmd)
				if err != nil {
					return err
				}
				w, err := svc.Week(cmd.Context(), anchor, nowFunc())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Week of %s\n", w.Label)
				shifts = w.Shifts
			}
			printShiftGroups(cmd.OutOrStdout(), shifts)
			return nil
		}),
	}
	listCmd.Flags().String("date", "", "Any date in the week to list (YYYY-MM-DD)")
	listCmd.Flags().Bool("all", false, "List every saved shift")

	shiftCmd.AddCommand(addCmd, editCmd, deleteCmd, listCmd)
	return shiftCmd
}

func describeShift(sh domain.Shift) string {
	return fmt.Sprintf("%s %s - %s (%s)", dateutil.ShortDay(sh.Date), sh.StartTime, sh.EndTime, output.FormatHours(calculation.ShiftHours(sh)))
}

func printShiftGroups(w io.Writer, shifts []domain.Shift) {
	if len(shifts) == 0 {
		fmt.Fprintln(w, "No shifts recorded.")
		return
	}
	for _, g := range tracker.GroupByDate(shifts) {
		fmt.Fprintln(w, dateutil.ShortDay(g.Date))
		for _, sh := range g.Shifts {
			fmt.Fprintf(w, "  %s - %s  %7s  %s\n", sh.StartTime, sh.EndTime, output.FormatHours(calculation.ShiftHours(sh)), sh.ID)
		}
	}
}
