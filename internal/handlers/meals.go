package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"example.com/selfcare/backend/internal/planner"
)

type MealHandler struct{}

// NewMealHandler создает обработчик меню.
func NewMealHandler() *MealHandler {
	return &MealHandler{}
}

type MealScheduleRequest struct {
	LikedMeals       []string `json:"liked_meals" validate:"required,min=1"`
	AllergicFoods    []string `json:"allergic_foods"`
	Budget           int      `json:"budget" validate:"required,gt=0"`
	ExcludedProteins []string `json:"excluded_proteins"`
}

type MealCatalogResponse struct {
	Meals []planner.Meal `json:"meals"`
}

type MealScheduleResponse struct {
	Days       []planner.DayMeals `json:"days"`
	WeeklyCost int                `json:"weekly_cost"`
}

// Catalog возвращает полный каталог блюд.
func (h *MealHandler) Catalog(c echo.Context) error {
	return c.JSON(http.StatusOK, MealCatalogResponse{Meals: planner.MealCatalog()})
}

// GenerateSchedule строит недельное меню по предпочтениям.
func (h *MealHandler) GenerateSchedule(c echo.Context) error {
	var req MealScheduleRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	prefs := planner.MealPreferences{
		LikedMeals:       req.LikedMeals,
		AllergicFoods:    req.AllergicFoods,
		Budget:           req.Budget,
		ExcludedProteins: req.ExcludedProteins,
	}

	days := planner.BuildMealSchedule(prefs)

	return c.JSON(http.StatusOK, MealScheduleResponse{
		Days:       days,
		WeeklyCost: planner.WeeklyMealCost(days),
	})
}
