package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Leganyst/reserva-core/internal/model"
	"github.com/Leganyst/reserva-core/internal/repository"
	"github.com/Leganyst/reserva-core/internal/schedule"
)

func newPurgeCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "purge <date>",
		Short: "Remove every reservation for a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := args[0]
			if _, err := time.Parse(schedule.DateLayout, date); err != nil {
				return fmt.Errorf("bad date %q: want YYYY-MM-DD", date)
			}
			if !yes {
				return fmt.Errorf("refusing to purge %s without --yes", date)
			}

			_, gormDB, err := openDB()
			if err != nil {
				return err
			}
			sqlDB, err := gormDB.DB()
			if err != nil {
				return err
			}
			defer sqlDB.Close()

			repo := repository.NewGormReservationRepository(gormDB)
			count, err := repo.DeleteForDate(cmd.Context(), date)
			if err != nil {
				return err
			}

			if count > 0 {
				events := repository.NewGormEventRepository(gormDB)
				err := events.Append(cmd.Context(), &model.Event{
					EventType: model.EventTypeDatePurged,
					Date:      date,
					Details:   fmt.Sprintf("%d reservations removed via CLI", count),
				})
				if err != nil {
					logger := newLogger()
					logger.Warn().Err(err).Str("date", date).Msg("append audit event")
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "deleted %d reservations for %s\n", count, date)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the purge")
	return cmd
}
