package planner

// DayMeals — три приема пищи одного дня с отображаемыми метаданными.
type DayMeals struct {
	Day       string `json:"day"`
	DayTh     string `json:"day_th"`
	Breakfast Meal   `json:"breakfast"`
	Lunch     Meal   `json:"lunch"`
	Dinner    Meal   `json:"dinner"`
	Color     string `json:"color"`
}

type weekDay struct {
	day   string
	dayTh string
	color string
}

var mealWeekTemplate = []weekDay{
	{"Monday", "จันทร์", "bg-pink-50"},
	{"Tuesday", "อังคาร", "bg-purple-50"},
	{"Wednesday", "พุธ", "bg-blue-50"},
	{"Thursday", "พฤหัสบดี", "bg-green-50"},
	{"Friday", "ศุกร์", "bg-yellow-50"},
	{"Saturday", "เสาร์", "bg-orange-50"},
	{"Sunday", "อาทิตย์", "bg-red-50"},
}

// BuildMealSchedule строит недельное меню: 7 дней по 3 приема пищи,
// слоты 0..20 идут подряд, так что одинаковые предпочтения всегда дают
// одинаковый план.
func BuildMealSchedule(prefs MealPreferences) []DayMeals {
	filtered := FilterMeals(MealCatalog(), prefs)

	schedule := make([]DayMeals, 0, len(mealWeekTemplate))
	slot := 0
	for _, d := range mealWeekTemplate {
		schedule = append(schedule, DayMeals{
			Day:       d.day,
			DayTh:     d.dayTh,
			Breakfast: MealForSlot(filtered, slot),
			Lunch:     MealForSlot(filtered, slot+1),
			Dinner:    MealForSlot(filtered, slot+2),
			Color:     d.color,
		})
		slot += 3
	}

	return schedule
}

// WeeklyMealCost суммирует стоимость всех 21 приема пищи.
func WeeklyMealCost(schedule []DayMeals) int {
	total := 0
	for _, day := range schedule {
		total += day.Breakfast.Price + day.Lunch.Price + day.Dinner.Price
	}
	return total
}
