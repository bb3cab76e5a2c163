package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Leganyst/reserva-core/internal/api"
	"github.com/Leganyst/reserva-core/internal/auth"
	"github.com/Leganyst/reserva-core/internal/repository"
	"github.com/Leganyst/reserva-core/internal/schedule"
	"github.com/Leganyst/reserva-core/internal/service"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the booking HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()

			cfg, gormDB, err := openDB()
			if err != nil {
				return err
			}
			sqlDB, err := gormDB.DB()
			if err != nil {
				return err
			}
			defer sqlDB.Close()

			// Репозитории (реализации на GORM).
			resRepo := repository.NewGormReservationRepository(gormDB)
			ovRepo := repository.NewGormOverrideRepository(gormDB)
			evRepo := repository.NewGormEventRepository(gormDB)

			// Правила календаря: дефолты + таблица отклонений + список дат.
			rules := &schedule.Rules{
				Defaults:  cfg.Day,
				Allowed:   cfg.AllowedDates,
				Overrides: ovRepo,
			}

			availSvc := service.NewAvailabilityService(rules, resRepo, log)
			bookingSvc := service.NewBookingService(availSvc, resRepo, evRepo, log)

			gate := auth.NewGate(cfg.AdminPhrase, cfg.CookieHashKey, cfg.CookieBlockKey)
			srv := api.NewServer(availSvc, bookingSvc, resRepo, gate, log)

			httpSrv := &http.Server{
				Addr:              cfg.HTTPAddr,
				Handler:           srv.Routes(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			errCh := make(chan error, 1)
			go func() {
				log.Info().Str("addr", cfg.HTTPAddr).Msg("booking server listening")
				errCh <- httpSrv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
			case <-ctx.Done():
			}

			log.Info().Msg("shutting down booking server...")
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer shutdownCancel()
			return httpSrv.Shutdown(shutdownCtx)
		},
	}
}
