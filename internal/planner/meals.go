package planner

// Meal — запись статического каталога блюд.
type Meal struct {
	Name             string   `json:"name"`
	NameTh           string   `json:"name_th"`
	Price            int      `json:"price"`
	Type             string   `json:"type"`
	Protein          string   `json:"protein"`
	ExcludeAllergies []string `json:"exclude_allergies"`
	Image            string   `json:"image,omitempty"`
}

// MealPreferences — предпочтения пользователя для подбора меню.
type MealPreferences struct {
	LikedMeals       []string `json:"liked_meals"`
	AllergicFoods    []string `json:"allergic_foods"`
	Budget           int      `json:"budget"`
	ExcludedProteins []string `json:"excluded_proteins,omitempty"`
}

// noMealPlaceholder возвращается для каждого слота, если после фильтрации
// каталог пуст.
var noMealPlaceholder = Meal{Name: "No meal available", NameTh: "ไม่มีเมนู"}

var mealCatalog = []Meal{
	// Rice-based
	{Name: "Fried Rice", NameTh: "ข้าวผัด", Price: 50, Type: "rice", Protein: "eggs", ExcludeAllergies: []string{}, Image: "https://images.unsplash.com/photo-1603133872878-684f208fb84b?w=400"},
	{Name: "Rice with Omelette", NameTh: "ข้าวไข่เจียว", Price: 45, Type: "rice", Protein: "eggs", ExcludeAllergies: []string{}, Image: "https://images.unsplash.com/photo-1546833998-877b37c2e5c6?w=400"},
	{Name: "Chicken Rice", NameTh: "ข้าวมันไก่", Price: 60, Type: "rice", Protein: "chicken", ExcludeAllergies: []string{}, Image: "https://images.unsplash.com/photo-1512058564366-18510be2db19?w=400"},
	{Name: "Pork Rice", NameTh: "ข้าวหมูแดง", Price: 55, Type: "rice", Protein: "pork", ExcludeAllergies: []string{}, Image: "https://images.unsplash.com/photo-1585032226651-759b368d7246?w=400"},

	// Noodle-based
	{Name: "Pad Thai", NameTh: "ผัดไทย", Price: 60, Type: "noodles", Protein: "seafood", ExcludeAllergies: []string{"seafood"}, Image: "https://images.unsplash.com/photo-1559314809-0d155014e29e?w=400"},
	{Name: "Tom Yum Noodle", NameTh: "ก้วยเตี๋ยวต้มยำ", Price: 65, Type: "noodles", Protein: "seafood", ExcludeAllergies: []string{"seafood"}, Image: "https://images.unsplash.com/photo-1569562211093-4ed0d0758f12?w=400"},
	{Name: "Chicken Noodle", NameTh: "ก้วยเตี๋ยวไก่", Price: 50, Type: "noodles", Protein: "chicken", ExcludeAllergies: []string{}, Image: "https://images.unsplash.com/photo-1582878826629-29b7ad1cdc43?w=400"},

	// Steak
	{Name: "Beef Steak", NameTh: "สเต็กเนื้อ", Price: 150, Type: "steak", Protein: "beef", ExcludeAllergies: []string{}, Image: "https://images.unsplash.com/photo-1546833999-b9f581a1996d?w=400"},
	{Name: "Pork Steak", NameTh: "สเต็กหมู", Price: 120, Type: "steak", Protein: "pork", ExcludeAllergies: []string{}, Image: "https://images.unsplash.com/photo-1432139509613-5c4255815697?w=400"},
	{Name: "Chicken Steak", NameTh: "สเต็กไก่", Price: 100, Type: "steak", Protein: "chicken", ExcludeAllergies: []string{}, Image: "https://images.unsplash.com/photo-1532550907401-a500c9a57435?w=400"},

	// Soup
	{Name: "Tom Yum Soup", NameTh: "ต้มยำกุ้ง", Price: 80, Type: "soup", Protein: "seafood", ExcludeAllergies: []string{"seafood"}, Image: "https://images.unsplash.com/photo-1562565652-a0d8f0c59eb4?w=400"},
	{Name: "Chicken Soup", NameTh: "ซุปไก่", Price: 60, Type: "soup", Protein: "chicken", ExcludeAllergies: []string{}, Image: "https://images.unsplash.com/photo-1547592166-23ac45744acd?w=400"},
	{Name: "Vegetable Soup", NameTh: "ซุปผัก", Price: 50, Type: "soup", Protein: "vegetables", ExcludeAllergies: []string{}, Image: "https://images.unsplash.com/photo-1588566565463-180a5b2090d2?w=400"},

	// Bread
	{Name: "Sandwich", NameTh: "แซนวิช", Price: 55, Type: "bread", Protein: "eggs", ExcludeAllergies: []string{}, Image: "https://images.unsplash.com/photo-1528735602780-2552fd46c7af?w=400"},
	{Name: "Toast with Eggs", NameTh: "ขนมปังไข่", Price: 45, Type: "bread", Protein: "eggs", ExcludeAllergies: []string{"eggs"}, Image: "https://images.unsplash.com/photo-1525351484163-7529414344d8?w=400"},
	{Name: "Burger", NameTh: "เบอร์เกอร์", Price: 80, Type: "bread", Protein: "beef", ExcludeAllergies: []string{"beef"}, Image: "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=400"},

	// Salad
	{Name: "Caesar Salad", NameTh: "ซีซาร์สลัด", Price: 90, Type: "salad", Protein: "chicken", ExcludeAllergies: []string{}, Image: "https://images.unsplash.com/photo-1546793665-c74683f339c1?w=400"},
	{Name: "Chicken Salad", NameTh: "สลัดไก่", Price: 85, Type: "salad", Protein: "chicken", ExcludeAllergies: []string{}, Image: "https://images.unsplash.com/photo-1505253716362-afaea1d3d1af?w=400"},
	{Name: "Seafood Salad", NameTh: "สลัดซีฟู้ด", Price: 100, Type: "salad", Protein: "seafood", ExcludeAllergies: []string{}, Image: "https://images.unsplash.com/photo-1559847844-5315695dadae?w=400"},
}

// MealCatalog возвращает копию каталога блюд.
func MealCatalog() []Meal {
	out := make([]Meal, len(mealCatalog))
	copy(out, mealCatalog)
	return out
}

// FilterMeals отбирает блюда по предпочтениям: тип входит в liked,
// цена не выше бюджета, нет пересечения с аллергиями и исключенными
// белками. Фильтрация идемпотентна.
func FilterMeals(catalog []Meal, prefs MealPreferences) []Meal {
	filtered := make([]Meal, 0, len(catalog))

	for _, meal := range catalog {
		if !contains(prefs.LikedMeals, meal.Type) {
			continue
		}
		if meal.Price > prefs.Budget {
			continue
		}
		if intersects(meal.ExcludeAllergies, prefs.AllergicFoods) {
			continue
		}
		if contains(prefs.ExcludedProteins, meal.Protein) {
			continue
		}
		filtered = append(filtered, meal)
	}

	return filtered
}

// MealForSlot выбирает блюдо для слота детерминированно: filtered[slot % len].
// Исторически в приложении это называлось "random meal" — на деле выбор
// по модулю индекса, что и делает план воспроизводимым.
func MealForSlot(filtered []Meal, slot int) Meal {
	if len(filtered) == 0 {
		return noMealPlaceholder
	}
	return filtered[slot%len(filtered)]
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

func intersects(a, b []string) bool {
	for _, v := range a {
		if contains(b, v) {
			return true
		}
	}
	return false
}
