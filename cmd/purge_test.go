package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Leganyst/reserva-core/internal/model"
	"github.com/Leganyst/reserva-core/internal/repository"
)

func runPurge(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"purge"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestPurgeCommand(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_DSN", filepath.Join(t.TempDir(), "reservas.db"))

	_, gormDB, err := openDB()
	if err != nil {
		t.Fatalf("openDB: %v", err)
	}
	ctx := context.Background()
	repo := repository.NewGormReservationRepository(gormDB)
	for _, slot := range []string{"09:00", "09:20"} {
		if err := repo.InsertIfAbsent(ctx, &model.Reservation{
			Date: "2025-08-20", Slot: slot, HolderName: "Ana",
		}); err != nil {
			t.Fatalf("seed %s: %v", slot, err)
		}
	}

	out, err := runPurge(t, "2025-08-20", "--yes")
	if err != nil {
		t.Fatalf("purge: %v", err)
	}
	if !strings.Contains(out, "deleted 2 reservations for 2025-08-20") {
		t.Fatalf("output = %q", out)
	}

	left, err := repo.ListForDate(ctx, "2025-08-20")
	if err != nil {
		t.Fatalf("ListForDate: %v", err)
	}
	if len(left) != 0 {
		t.Fatalf("reservations left after purge: %d", len(left))
	}

	// The purge leaves an audit trail behind.
	evs, err := repository.NewGormEventRepository(gormDB).ListForDate(ctx, "2025-08-20")
	if err != nil {
		t.Fatalf("ListForDate events: %v", err)
	}
	if len(evs) != 1 || evs[0].EventType != model.EventTypeDatePurged {
		t.Fatalf("events = %+v, want a single date_purged entry", evs)
	}
}

func TestPurgeCommand_RejectsBadDate(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_DSN", filepath.Join(t.TempDir(), "reservas.db"))

	if _, err := runPurge(t, "not-a-date", "--yes"); err == nil {
		t.Fatalf("expected an error for a malformed date")
	}
}

func TestPurgeCommand_RequiresConfirmation(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_DSN", filepath.Join(t.TempDir(), "reservas.db"))

	if _, err := runPurge(t, "2025-08-20"); err == nil {
		t.Fatalf("expected an error without --yes")
	}
}
