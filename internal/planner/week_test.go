package planner

import (
	"math/rand"
	"testing"
	"time"
)

// TestWorkoutForDay проверяет поиск тренировки по дню недели.
func TestWorkoutForDay(t *testing.T) {
	plan, err := GenerateWorkoutPlan(testWorkoutInput(), rand.New(rand.NewSource(5)))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	day, ok := WorkoutForDay(plan.Days, "Friday")
	if !ok {
		t.Fatal("expected Friday workout")
	}
	if day.Focus != "Lower body" {
		t.Fatalf("expected Lower body on Friday, got %s", day.Focus)
	}

	if _, ok := WorkoutForDay(plan.Days, "Someday"); ok {
		t.Fatal("expected no workout for unknown day")
	}
}

// TestMealsForDay проверяет поиск меню по дню недели.
func TestMealsForDay(t *testing.T) {
	schedule := BuildMealSchedule(testPrefs())

	day, ok := MealsForDay(schedule, "Sunday")
	if !ok {
		t.Fatal("expected Sunday meals")
	}
	if day.DayTh != "อาทิตย์" {
		t.Fatalf("unexpected Thai label: %s", day.DayTh)
	}

	if _, ok := MealsForDay(nil, "Monday"); ok {
		t.Fatal("expected no meals in empty schedule")
	}
}

// TestWeekdayName проверяет соответствие названий дней планам.
func TestWeekdayName(t *testing.T) {
	// 2024-01-01 — понедельник.
	monday := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	if got := WeekdayName(monday); got != "Monday" {
		t.Fatalf("expected Monday, got %s", got)
	}
}

// TestVideosForPartSorted проверяет сортировку видео от простых к сложным.
func TestVideosForPartSorted(t *testing.T) {
	videos := VideosForPart("upper-body")
	if len(videos) == 0 {
		t.Fatal("expected videos for upper-body")
	}

	prev := -1
	for _, v := range videos {
		rank, ok := levelOrder[v.Level]
		if !ok {
			t.Fatalf("unknown level %q", v.Level)
		}
		if rank < prev {
			t.Fatalf("videos not sorted by level: %s out of order", v.Title)
		}
		prev = rank
	}

	if got := VideosForPart("unknown"); len(got) != 0 {
		t.Fatalf("expected empty list for unknown part, got %d", len(got))
	}
}

// TestTipByID проверяет выбор совета по идентификатору.
func TestTipByID(t *testing.T) {
	tip, err := TipByID(1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if tip.Text == "" {
		t.Fatal("expected non-empty tip text")
	}

	if _, err := TipByID(99); err == nil {
		t.Fatal("expected error for unknown tip")
	}
}
