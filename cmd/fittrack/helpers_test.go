package fittrack

import (
	"testing"
)

func TestParseExerciseSpec(t *testing.T) {
	t.Parallel()

	ex, err := parseExerciseSpec("Bench Press=10@135,8@155")
	if err != nil {
		t.Fatalf("parse spec: %v", err)
	}
	if ex.Name != "Bench Press" {
		t.Fatalf("unexpected name: %q", ex.Name)
	}
	if len(ex.Sets) != 2 {
		t.Fatalf("expected 2 sets, got %d", len(ex.Sets))
	}
	if ex.Sets[0].Reps != 10 || ex.Sets[0].Weight != 135 {
		t.Fatalf("unexpected first set: %+v", ex.Sets[0])
	}
	if ex.Sets[1].Reps != 8 || ex.Sets[1].Weight != 155 {
		t.Fatalf("unexpected second set: %+v", ex.Sets[1])
	}
}

func TestParseExerciseSpecBodyweight(t *testing.T) {
	t.Parallel()

	ex, err := parseExerciseSpec("Pull Ups=12,10,8")
	if err != nil {
		t.Fatalf("parse spec: %v", err)
	}
	if len(ex.Sets) != 3 {
		t.Fatalf("expected 3 sets, got %d", len(ex.Sets))
	}
	for i, set := range ex.Sets {
		if set.Weight != 0 {
			t.Fatalf("set %d should be bodyweight, got %+v", i, set)
		}
	}
}

func TestParseExerciseSpecNameOnly(t *testing.T) {
	t.Parallel()

	ex, err := parseExerciseSpec("Stretching")
	if err != nil {
		t.Fatalf("parse spec: %v", err)
	}
	if ex.Name != "Stretching" || len(ex.Sets) != 0 {
		t.Fatalf("expected named exercise with no sets, got %+v", ex)
	}
}

func TestParseExerciseSpecErrors(t *testing.T) {
	t.Parallel()

	cases := []string{
		"",
		"=10@135",
		"Squat=abc",
		"Squat=5@heavy",
		"Squat=1001",
		"Squat=5@2001",
		"Squat=-1",
	}
	for _, spec := range cases {
		if _, err := parseExerciseSpec(spec); err == nil {
			t.Fatalf("expected error for spec %q", spec)
		}
	}
}

func TestParseDateOrToday(t *testing.T) {
	t.Parallel()

	got, err := parseDateOrToday("2024-03-15")
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	if got != "2024-03-15" {
		t.Fatalf("unexpected date: %s", got)
	}

	got, err = parseDateOrToday("")
	if err != nil {
		t.Fatalf("parse empty date: %v", err)
	}
	if len(got) != 10 {
		t.Fatalf("expected YYYY-MM-DD for today, got %q", got)
	}

	if _, err := parseDateOrToday("03/15/2024"); err == nil {
		t.Fatal("expected error for slash-formatted date")
	}
	if _, err := parseDateOrToday("2024-13-01"); err == nil {
		t.Fatal("expected error for month 13")
	}
}
