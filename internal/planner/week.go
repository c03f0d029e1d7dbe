package planner

import "time"

// WorkoutForDay находит тренировку по английскому названию дня недели.
func WorkoutForDay(days []DayWorkout, weekday string) (DayWorkout, bool) {
	for _, d := range days {
		if d.Day == weekday {
			return d, true
		}
	}
	return DayWorkout{}, false
}

// MealsForDay находит меню дня по английскому названию дня недели.
func MealsForDay(days []DayMeals, weekday string) (DayMeals, bool) {
	for _, d := range days {
		if d.Day == weekday {
			return d, true
		}
	}
	return DayMeals{}, false
}

// WeekdayName возвращает название дня недели в том виде, в котором оно
// хранится в сгенерированных планах ("Monday".."Sunday").
func WeekdayName(t time.Time) string {
	return t.Weekday().String()
}
