package planner

import (
	"math/rand"
	"testing"
)

func testWorkoutInput() WorkoutInput {
	return WorkoutInput{
		BodyType:         BodyTypeMesomorph,
		Goal:             GoalMaintain,
		DailyTimeMinutes: 30,
	}
}

// TestGenerateWorkoutPlanShape проверяет шаблон недели и день отдыха.
func TestGenerateWorkoutPlanShape(t *testing.T) {
	plan, err := GenerateWorkoutPlan(testWorkoutInput(), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(plan.Days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(plan.Days))
	}

	sunday := plan.Days[6]
	if sunday.Day != "Sunday" || sunday.Focus != "Recovery / Stretching" {
		t.Fatalf("unexpected rest day: %+v", sunday)
	}
	if sunday.Duration != 0 || len(sunday.Exercises) != 0 {
		t.Fatalf("rest day must be empty, got %+v", sunday)
	}

	for _, day := range plan.Days[:6] {
		if day.Duration != 30 {
			t.Errorf("%s: expected duration 30, got %d", day.Day, day.Duration)
		}
		if len(day.Exercises) == 0 {
			t.Errorf("%s: expected exercises", day.Day)
		}
	}
}

// TestGenerateWorkoutPlanSetsReps проверяет подходы/повторения по целям.
func TestGenerateWorkoutPlanSetsReps(t *testing.T) {
	cases := []struct {
		bodyType BodyType
		goal     Goal
		sets     int
		reps     string
	}{
		{BodyTypeMesomorph, GoalGain, 4, "8–10"},
		{BodyTypeMesomorph, GoalMaintain, 3, "10–12"},
		{BodyTypeMesomorph, GoalLose, 3, "15–20"},
		{BodyTypeEctomorph, GoalMaintain, 4, "10–12"},
		{BodyTypeEndomorph, GoalGain, 4, "10–12"},
		{BodyTypeEndomorph, GoalLose, 3, "18–20"},
	}

	for _, tc := range cases {
		in := WorkoutInput{BodyType: tc.bodyType, Goal: tc.goal, DailyTimeMinutes: 45}
		plan, err := GenerateWorkoutPlan(in, rand.New(rand.NewSource(7)))
		if err != nil {
			t.Fatalf("%s/%s: %v", tc.bodyType, tc.goal, err)
		}

		monday := plan.Days[0]
		for _, ex := range monday.Exercises {
			if ex.Sets != tc.sets {
				t.Errorf("%s/%s: %s sets = %d, want %d", tc.bodyType, tc.goal, ex.Name, ex.Sets, tc.sets)
			}
			if ex.Reps != tc.reps {
				t.Errorf("%s/%s: %s reps = %s, want %s", tc.bodyType, tc.goal, ex.Name, ex.Reps, tc.reps)
			}
		}
	}
}

// TestGenerateWorkoutPlanMembership проверяет состав дневных упражнений:
// порядок после перемешивания не фиксируется, только принадлежность и счет.
func TestGenerateWorkoutPlanMembership(t *testing.T) {
	plan, err := GenerateWorkoutPlan(testWorkoutInput(), rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	for _, day := range plan.Days {
		if day.Focus == "Recovery / Stretching" {
			continue
		}

		library := exerciseLibrary[day.Focus]
		if len(day.Exercises) > 3 || len(day.Exercises) > len(library) {
			t.Errorf("%s: too many exercises: %d", day.Day, len(day.Exercises))
		}

		seen := map[string]bool{}
		for _, ex := range day.Exercises {
			if !contains(library, ex.Name) {
				t.Errorf("%s: %s not in %s library", day.Day, ex.Name, day.Focus)
			}
			if seen[ex.Name] {
				t.Errorf("%s: duplicate exercise %s", day.Day, ex.Name)
			}
			seen[ex.Name] = true
		}
	}
}

// TestGenerateWorkoutPlanCardioUnderfill проверяет, что "Cardio" с двумя
// упражнениями отдает два, без добивки повторами.
func TestGenerateWorkoutPlanCardioUnderfill(t *testing.T) {
	plan, err := GenerateWorkoutPlan(testWorkoutInput(), rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	wednesday := plan.Days[2]
	if wednesday.Focus != "Cardio" {
		t.Fatalf("expected Cardio on Wednesday, got %s", wednesday.Focus)
	}
	if len(wednesday.Exercises) != 2 {
		t.Fatalf("expected 2 cardio exercises, got %d", len(wednesday.Exercises))
	}
}

// TestGenerateWorkoutPlanKneeCondition проверяет исключение опасных для
// коленей упражнений.
func TestGenerateWorkoutPlanKneeCondition(t *testing.T) {
	in := testWorkoutInput()
	in.MedicalCondition = "Knee injury"

	plan, err := GenerateWorkoutPlan(in, rand.New(rand.NewSource(9)))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	for _, day := range plan.Days {
		for _, ex := range day.Exercises {
			if contains(kneeUnsafe, ex.Name) {
				t.Errorf("%s: knee-unsafe exercise %s present", day.Day, ex.Name)
			}
		}
	}
}

// TestGenerateWorkoutPlanPlank проверяет временной формат планки.
func TestGenerateWorkoutPlanPlank(t *testing.T) {
	findPlank := func(goal Goal) (Exercise, bool) {
		in := WorkoutInput{BodyType: BodyTypeMesomorph, Goal: goal, DailyTimeMinutes: 30}
		plan, err := GenerateWorkoutPlan(in, rand.New(rand.NewSource(11)))
		if err != nil {
			t.Fatalf("%s: %v", goal, err)
		}
		for _, day := range plan.Days {
			for _, ex := range day.Exercises {
				if ex.Name == "Plank" {
					return ex, true
				}
			}
		}
		return Exercise{}, false
	}

	// Суббота берет все 3 упражнения Core & Cardio, планка попадает всегда.
	plank, ok := findPlank(GoalGain)
	if !ok {
		t.Fatal("plank not found in generated plan")
	}
	if plank.Sets != 3 || plank.Reps != "45–60s" {
		t.Fatalf("gain plank = %+v, want 3 x 45–60s", plank)
	}

	plank, ok = findPlank(GoalLose)
	if !ok {
		t.Fatal("plank not found in generated plan")
	}
	if plank.Reps != "30–45s" {
		t.Fatalf("lose plank reps = %s, want 30–45s", plank.Reps)
	}
}

// TestGenerateWorkoutPlanInvalidInput проверяет валидацию входа.
func TestGenerateWorkoutPlanInvalidInput(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	if _, err := GenerateWorkoutPlan(WorkoutInput{BodyType: "round", Goal: GoalGain, DailyTimeMinutes: 30}, rng); err == nil {
		t.Fatal("expected error for unknown body type")
	}
	if _, err := GenerateWorkoutPlan(WorkoutInput{BodyType: BodyTypeMesomorph, Goal: "bulk", DailyTimeMinutes: 30}, rng); err == nil {
		t.Fatal("expected error for unknown goal")
	}
	if _, err := GenerateWorkoutPlan(WorkoutInput{BodyType: BodyTypeMesomorph, Goal: GoalGain}, rng); err == nil {
		t.Fatal("expected error for zero daily time")
	}
}
