package schedule

import (
	"context"
	"errors"
	"testing"
)

// fakeOverrides serves canned overrides keyed by date.
type fakeOverrides struct {
	byDate map[string]*Override
	err    error
}

func (f *fakeOverrides) OverrideFor(_ context.Context, date string) (*Override, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byDate[date], nil
}

func testRules(t *testing.T) *Rules {
	t.Helper()
	return &Rules{
		Defaults: defaultDay(t),
		Allowed:  []string{"2025-08-19", "2025-08-20", "2025-08-21", "2025-08-22"},
	}
}

func TestRules_ConfigFor_AllowedDate(t *testing.T) {
	r := testRules(t)

	cfg, err := r.ConfigFor(context.Background(), "2025-08-20")
	if err != nil {
		t.Fatalf("ConfigFor: %v", err)
	}
	if cfg != r.Defaults {
		t.Fatalf("cfg = %+v, want defaults", cfg)
	}
}

func TestRules_ConfigFor_DateOutsideAllowList(t *testing.T) {
	r := testRules(t)

	if _, err := r.ConfigFor(context.Background(), "2025-08-25"); !errors.Is(err, ErrDateNotAllowed) {
		t.Fatalf("err = %v, want ErrDateNotAllowed", err)
	}
}

func TestRules_ConfigFor_NoAllowListMeansAnyDate(t *testing.T) {
	r := &Rules{Defaults: defaultDay(t)}

	if _, err := r.ConfigFor(context.Background(), "2030-01-15"); err != nil {
		t.Fatalf("ConfigFor: %v", err)
	}
}

func TestRules_ConfigFor_BadDate(t *testing.T) {
	r := testRules(t)

	for _, d := range []string{"20-08-2025", "2025/08/20", "", "tomorrow"} {
		if _, err := r.ConfigFor(context.Background(), d); !errors.Is(err, ErrBadDate) {
			t.Fatalf("date %q: err = %v, want ErrBadDate", d, err)
		}
	}
}

func TestRules_ConfigFor_ShortDayOverride(t *testing.T) {
	r := testRules(t)
	end := mustTime(t, "13:00")
	r.Overrides = &fakeOverrides{byDate: map[string]*Override{
		"2025-08-22": {End: &end},
	}}

	cfg, err := r.ConfigFor(context.Background(), "2025-08-22")
	if err != nil {
		t.Fatalf("ConfigFor: %v", err)
	}
	// Override end wins over the default; blackout stays untouched.
	if cfg.End != end {
		t.Fatalf("End = %v, want %v", cfg.End, end)
	}
	if cfg.BlackoutStart != r.Defaults.BlackoutStart {
		t.Fatalf("blackout changed by an end-only override")
	}

	// Other allowed dates keep the default end.
	cfg, err = r.ConfigFor(context.Background(), "2025-08-20")
	if err != nil {
		t.Fatalf("ConfigFor: %v", err)
	}
	if cfg.End != r.Defaults.End {
		t.Fatalf("End = %v, want default %v", cfg.End, r.Defaults.End)
	}
}

func TestRules_ConfigFor_ClosedDay(t *testing.T) {
	r := testRules(t)
	r.Overrides = &fakeOverrides{byDate: map[string]*Override{
		"2025-08-21": {Closed: true},
	}}

	if _, err := r.ConfigFor(context.Background(), "2025-08-21"); !errors.Is(err, ErrDayClosed) {
		t.Fatalf("err = %v, want ErrDayClosed", err)
	}
}

func TestRules_ConfigFor_OverrideProducesEmptyWindow(t *testing.T) {
	r := testRules(t)
	end := mustTime(t, "08:00") // before Start
	r.Overrides = &fakeOverrides{byDate: map[string]*Override{
		"2025-08-20": {End: &end},
	}}

	if _, err := r.ConfigFor(context.Background(), "2025-08-20"); !errors.Is(err, ErrInvalidWindow) {
		t.Fatalf("err = %v, want ErrInvalidWindow", err)
	}
}

func TestRules_ConfigFor_OverrideSourceError(t *testing.T) {
	r := testRules(t)
	srcErr := errors.New("storage down")
	r.Overrides = &fakeOverrides{err: srcErr}

	if _, err := r.ConfigFor(context.Background(), "2025-08-20"); !errors.Is(err, srcErr) {
		t.Fatalf("err = %v, want wrapped %v", err, srcErr)
	}
}
