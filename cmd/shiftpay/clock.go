package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/shiftpay/internal/calculation"
	"github.com/rgehrsitz/shiftpay/internal/output"
	"github.com/rgehrsitz/shiftpay/internal/tracker"
	"github.com/rgehrsitz/shiftpay/pkg/dateutil"
)

func newClockCmd(flags *rootFlags) *cobra.Command {
	clockCmd := &cobra.Command{
		Use:   "clock",
		Short: "Clock in and out of the current shift",
	}

	inCmd := &cobra.Command{
		Use:   "in",
		Short: "Start the shift timer now",
		Args:  cobra.NoArgs,
		RunE: flags.withService(func(cmd *cobra.Command, args []string, svc *tracker.Service) error {
			c, err := svc.ClockIn(cmd.Context(), nowFunc())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Clocked in at %s on %s.\n", c.Time, dateutil.ShortDay(c.Date))
			return nil
		}),
	}

	outCmd := &cobra.Command{
		Use:   "out",
		Short: "Stop the timer and save the shift",
		Args:  cobra.NoArgs,
		RunE: flags.withService(func(cmd *cobra.Command, args []string, svc *tracker.Service) error {
			sh, err := svc.ClockOut(cmd.Context(), nowFunc())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Clocked out. Saved %s %s - %s (%s).\n",
				dateutil.ShortDay(sh.Date), sh.StartTime, sh.EndTime, output.FormatHours(calculation.ShiftHours(sh)))
			return nil
		}),
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show whether the timer is running",
		Args:  cobra.NoArgs,
		RunE: flags.withService(func(cmd *cobra.Command, args []string, svc *tracker.Service) error {
			c, err := svc.ActiveClock(cmd.Context())
			if err != nil {
				return err
			}
			if c == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Not clocked in.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Clocked in since %s (%s).\nElapsed: %s\n",
				c.Time, dateutil.ShortDay(c.Date), calculation.ElapsedDisplay(*c, nowFunc()))
			return nil
		}),
	}

	editCmd := &cobra.Command{
		Use:   "edit",
		Short: "Change when the running shift started",
		Long:  "Change the clock-in date and time of the running shift. --date defaults to the current clock-in date.",
		Args:  cobra.NoArgs,
		RunE: flags.withService(func(cmd *cobra.Command, args []string, svc *tracker.Service) error {
			d, _ := cmd.Flags().GetString("date")
			t, _ := cmd.Flags().GetString("time")
			if d == "" {
				c, err := svc.ActiveClock(cmd.Context())
				if err != nil {
					return err
				}
				if c == nil {
					return tracker.ErrNoActiveClock
				}
				d = c.Date
			}
			c, err := svc.EditClock(cmd.Context(), d, t)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Clock-in moved to %s %s.\n", dateutil.ShortDay(c.Date), c.Time)
			return nil
		}),
	}
	editCmd.Flags().String("date", "", "Clock-in date (YYYY-MM-DD)")
	editCmd.Flags().String("time", "", "Clock-in time (HH:MM)")
	_ = editCmd.MarkFlagRequired("time")

	clockCmd.AddCommand(inCmd, outCmd, statusCmd, editCmd)
	return clockCmd
}
