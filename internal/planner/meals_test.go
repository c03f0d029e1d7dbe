package planner

import (
	"reflect"
	"testing"
)

func testPrefs() MealPreferences {
	return MealPreferences{
		LikedMeals:    []string{"rice", "noodles"},
		AllergicFoods: []string{"seafood"},
		Budget:        60,
	}
}

// TestFilterMealsConstraints проверяет, что каждый отобранный элемент
// удовлетворяет всем четырем условиям фильтра.
func TestFilterMealsConstraints(t *testing.T) {
	prefs := testPrefs()
	prefs.ExcludedProteins = []string{"pork"}

	filtered := FilterMeals(MealCatalog(), prefs)
	if len(filtered) == 0 {
		t.Fatal("expected non-empty filtered set")
	}

	for _, meal := range filtered {
		if !contains(prefs.LikedMeals, meal.Type) {
			t.Errorf("%s: type %s not in liked meals", meal.Name, meal.Type)
		}
		if meal.Price > prefs.Budget {
			t.Errorf("%s: price %d over budget %d", meal.Name, meal.Price, prefs.Budget)
		}
		if intersects(meal.ExcludeAllergies, prefs.AllergicFoods) {
			t.Errorf("%s: allergy overlap", meal.Name)
		}
		if contains(prefs.ExcludedProteins, meal.Protein) {
			t.Errorf("%s: excluded protein %s", meal.Name, meal.Protein)
		}
	}
}

// TestFilterMealsIdempotent проверяет, что повторная фильтрация результата
// дает тот же набор.
func TestFilterMealsIdempotent(t *testing.T) {
	prefs := testPrefs()

	once := FilterMeals(MealCatalog(), prefs)
	twice := FilterMeals(once, prefs)

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("filtering is not idempotent: %v vs %v", once, twice)
	}
}

// TestMealForSlotDeterministic проверяет детерминированность выбора по слоту.
func TestMealForSlotDeterministic(t *testing.T) {
	filtered := FilterMeals(MealCatalog(), testPrefs())
	if len(filtered) < 2 {
		t.Fatalf("expected at least 2 meals, got %d", len(filtered))
	}

	for slot := 0; slot <= 20; slot++ {
		first := MealForSlot(filtered, slot)
		second := MealForSlot(filtered, slot)
		if first.Name != second.Name {
			t.Fatalf("slot %d: %s != %s", slot, first.Name, second.Name)
		}
		if first.Name != filtered[slot%len(filtered)].Name {
			t.Fatalf("slot %d: expected modulo-index selection", slot)
		}
	}
}

// TestMealForSlotEmptySet проверяет плейсхолдер при пустой выборке.
func TestMealForSlotEmptySet(t *testing.T) {
	meal := MealForSlot(nil, 5)
	if meal.Name != "No meal available" {
		t.Fatalf("expected placeholder, got %s", meal.Name)
	}
	if meal.Price != 0 {
		t.Fatalf("expected zero price placeholder, got %d", meal.Price)
	}
}

// TestBuildMealScheduleShape проверяет структуру недельного меню.
func TestBuildMealScheduleShape(t *testing.T) {
	schedule := BuildMealSchedule(testPrefs())

	if len(schedule) != 7 {
		t.Fatalf("expected 7 days, got %d", len(schedule))
	}
	if schedule[0].Day != "Monday" || schedule[6].Day != "Sunday" {
		t.Fatalf("unexpected day order: %s..%s", schedule[0].Day, schedule[6].Day)
	}
	if schedule[0].DayTh != "จันทร์" {
		t.Fatalf("expected Thai label for Monday, got %s", schedule[0].DayTh)
	}

	// Повторная генерация дает тот же план.
	again := BuildMealSchedule(testPrefs())
	if !reflect.DeepEqual(schedule, again) {
		t.Fatal("expected identical schedules for identical preferences")
	}
}

// TestBuildMealScheduleAllPlaceholders проверяет план при пустой выборке:
// все 21 слот получают плейсхолдер.
func TestBuildMealScheduleAllPlaceholders(t *testing.T) {
	schedule := BuildMealSchedule(MealPreferences{LikedMeals: []string{"sushi"}, Budget: 100})

	for _, day := range schedule {
		for _, meal := range []Meal{day.Breakfast, day.Lunch, day.Dinner} {
			if meal.Name != "No meal available" {
				t.Fatalf("%s: expected placeholder, got %s", day.Day, meal.Name)
			}
		}
	}
	if WeeklyMealCost(schedule) != 0 {
		t.Fatal("expected zero weekly cost for placeholder schedule")
	}
}
