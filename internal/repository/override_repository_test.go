package repository

import (
	"context"
	"testing"
	"time"

	"gorm.io/datatypes"

	"github.com/Leganyst/reserva-core/internal/model"
)

func dateOf(t *testing.T, s string) datatypes.Date {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return datatypes.Date(d)
}

func TestOverrideFor_NoRow(t *testing.T) {
	repo := NewGormOverrideRepository(openTestDB(t))

	ov, err := repo.OverrideFor(context.Background(), "2025-08-20")
	if err != nil {
		t.Fatalf("OverrideFor: %v", err)
	}
	if ov != nil {
		t.Fatalf("ov = %+v, want nil", ov)
	}
}

func TestOverrideFor_ShortDay(t *testing.T) {
	repo := NewGormOverrideRepository(openTestDB(t))
	ctx := context.Background()

	end := "13:00"
	err := repo.Upsert(ctx, &model.DayOverride{
		Date:   dateOf(t, "2025-08-22"),
		DayEnd: &end,
		Reason: "short friday",
	})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	ov, err := repo.OverrideFor(ctx, "2025-08-22")
	if err != nil {
		t.Fatalf("OverrideFor: %v", err)
	}
	if ov == nil || ov.End == nil {
		t.Fatalf("ov = %+v, want End set", ov)
	}
	if ov.End.String() != "13:00" {
		t.Fatalf("End = %s, want 13:00", ov.End)
	}
	if ov.Closed {
		t.Fatalf("Closed = true, want false")
	}
}

func TestOverrideFor_RulesJSON(t *testing.T) {
	repo := NewGormOverrideRepository(openTestDB(t))
	ctx := context.Background()

	err := repo.Upsert(ctx, &model.DayOverride{
		Date:  dateOf(t, "2025-08-21"),
		Rules: datatypes.JSON(`{"blackout_start":"12:30","blackout_end":"13:30"}`),
	})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	ov, err := repo.OverrideFor(ctx, "2025-08-21")
	if err != nil {
		t.Fatalf("OverrideFor: %v", err)
	}
	if ov == nil || ov.BlackoutStart == nil || ov.BlackoutEnd == nil {
		t.Fatalf("ov = %+v, want blackout override", ov)
	}
	if ov.BlackoutStart.String() != "12:30" || ov.BlackoutEnd.String() != "13:30" {
		t.Fatalf("blackout = %s–%s, want 12:30–13:30", ov.BlackoutStart, ov.BlackoutEnd)
	}
}

func TestUpsert_ReplacesExistingDate(t *testing.T) {
	repo := NewGormOverrideRepository(openTestDB(t))
	ctx := context.Background()

	end := "13:00"
	if err := repo.Upsert(ctx, &model.DayOverride{
		Date:   dateOf(t, "2025-08-22"),
		DayEnd: &end,
	}); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if err := repo.Upsert(ctx, &model.DayOverride{
		Date:   dateOf(t, "2025-08-22"),
		Closed: true,
	}); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	rows, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1 (upsert must not duplicate the date)", len(rows))
	}

	ov, err := repo.OverrideFor(ctx, "2025-08-22")
	if err != nil {
		t.Fatalf("OverrideFor: %v", err)
	}
	if ov == nil || !ov.Closed {
		t.Fatalf("ov = %+v, want Closed", ov)
	}
}
