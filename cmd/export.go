package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Leganyst/reserva-core/internal/export"
	"github.com/Leganyst/reserva-core/internal/repository"
)

func newExportCmd() *cobra.Command {
	var (
		out    string
		format string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all reservations to a spreadsheet or CSV file",
		RunE: func(cmd *cobra.Command, args []string) error {
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
			records, err := repo.ListAll(cmd.Context())
			if err != nil {
				return fmt.Errorf("list reservations: %w", err)
			}

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()

			switch format {
			case "xlsx":
				err = export.WriteWorkbook(f, records, "Reservations (all dates)")
			case "csv":
				err = export.WriteCSV(f, records)
			default:
				return fmt.Errorf("unknown format %q (want xlsx or csv)", format)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "exported %d reservations to %s\n", len(records), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "reservations.xlsx", "output file path")
	cmd.Flags().StringVar(&format, "format", "xlsx", "output format: xlsx or csv")
	return cmd
}
