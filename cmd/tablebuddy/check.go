package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/m04kA/table-buddy/internal/api/messages"
	checkAvailabilityUC "github.com/m04kA/table-buddy/internal/usecase/check_availability"
	findNextSlotUC "github.com/m04kA/table-buddy/internal/usecase/find_next_slot"
)

func newCheckCmd(configPath *string) *cobra.Command {
	var (
		date   string
		at     string
		people int
		next   bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check table availability once and print the answer the voice agent would give",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			defer log.Close()

			a, err := newApp(cmd.Context(), cfg, log, false)
			if err != nil {
				return err
			}
			defer a.close()

			var result string
			if next {
				slot, err := a.findNextSlot.Execute(cmd.Context(), &findNextSlotUC.Request{Date: date, Time: at, PartySize: people})
				result = messages.NextSlot(date, people, slot, err)
			} else {
				verdict, err := a.checkAvailability.Execute(cmd.Context(), &checkAvailabilityUC.Request{Date: date, Time: at, PartySize: people})
				result = messages.Availability(date, at, people, verdict, err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), result)
			return err
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "date, YYYY-MM-DD")
	cmd.Flags().StringVar(&at, "time", "", "time, HH:MM")
	cmd.Flags().IntVar(&people, "people", 2, "party size")
	cmd.Flags().BoolVar(&next, "next", false, "search the next available slot instead")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("time")

	return cmd
}
