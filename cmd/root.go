package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/Leganyst/reserva-core/internal/config"
	"github.com/Leganyst/reserva-core/internal/db"
	"github.com/Leganyst/reserva-core/internal/model"
)

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "reservacore",
		Short: "Slot reservation core: HTTP API, export and admin maintenance",
	}

	root.AddCommand(newServeCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newPurgeCmd())

	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger() zerolog.Logger {
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}

// openDB — общая часть подкоманд: конфиг, подключение, миграции.
func openDB() (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	gormDB, err := db.NewGormDB(cfg.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("init db: %w", err)
	}

	if err := model.AutoMigrate(gormDB); err != nil {
		return nil, nil, fmt.Errorf("auto migrate: %w", err)
	}

	return cfg, gormDB, nil
}
