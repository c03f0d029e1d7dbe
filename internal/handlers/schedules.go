package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/selfcare/backend/internal/auth"
	"example.com/selfcare/backend/internal/models"
	"example.com/selfcare/backend/internal/notifications"
	"example.com/selfcare/backend/internal/planner"
	"example.com/selfcare/backend/internal/repository"
)

type ScheduleHandler struct {
	Schedules *repository.ScheduleRepository
	Hub       *notifications.Hub
}

// NewScheduleHandler создает обработчик сохраненных расписаний.
func NewScheduleHandler(schedules *repository.ScheduleRepository, hub *notifications.Hub) *ScheduleHandler {
	return &ScheduleHandler{Schedules: schedules, Hub: hub}
}

type SaveScheduleRequest struct {
	Days json.RawMessage `json:"days" validate:"required"`
}

type SavedScheduleResponse struct {
	ID        uuid.UUID           `json:"id"`
	Kind      models.ScheduleKind `json:"kind"`
	Days      json.RawMessage     `json:"days"`
	CreatedAt time.Time           `json:"created_at"`
}

type ScheduleListResponse struct {
	Schedules []SavedScheduleResponse `json:"schedules"`
}

type TodayResponse struct {
	Weekday string              `json:"weekday"`
	Workout *planner.DayWorkout `json:"workout,omitempty"`
	Meals   *planner.DayMeals   `json:"meals,omitempty"`
}

// SaveMeals сохраняет недельное меню пользователя.
func (h *ScheduleHandler) SaveMeals(c echo.Context) error {
	return h.save(c, models.ScheduleKindMeal)
}

// ListMeals возвращает сохраненные меню, новые первыми.
func (h *ScheduleHandler) ListMeals(c echo.Context) error {
	return h.list(c, models.ScheduleKindMeal)
}

// DeleteMeal удаляет одно меню по позиции в списке.
func (h *ScheduleHandler) DeleteMeal(c echo.Context) error {
	return h.deleteByIndex(c, models.ScheduleKindMeal)
}

// SaveWorkouts сохраняет недельный план тренировок пользователя.
func (h *ScheduleHandler) SaveWorkouts(c echo.Context) error {
	return h.save(c, models.ScheduleKindWorkout)
}

// ListWorkouts возвращает сохраненные планы тренировок, новые первыми.
func (h *ScheduleHandler) ListWorkouts(c echo.Context) error {
	return h.list(c, models.ScheduleKindWorkout)
}

// DeleteWorkout удаляет один план по позиции в списке.
func (h *ScheduleHandler) DeleteWorkout(c echo.Context) error {
	return h.deleteByIndex(c, models.ScheduleKindWorkout)
}

// Today собирает тренировку и меню текущего дня из последних сохраненных
// расписаний. Отсутствие расписания или битый JSON дает пустые поля.
func (h *ScheduleHandler) Today(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	weekday := planner.WeekdayName(time.Now())
	response := TodayResponse{Weekday: weekday}

	if latest, err := h.Schedules.Latest(c.Request().Context(), userID, models.ScheduleKindWorkout); err == nil {
		var days []planner.DayWorkout
		if json.Unmarshal(latest.Days, &days) == nil {
			if workout, found := planner.WorkoutForDay(days, weekday); found {
				response.Workout = &workout
			}
		}
	} else if !errors.Is(err, repository.ErrNotFound) {
		return serverError(c)
	}

	if latest, err := h.Schedules.Latest(c.Request().Context(), userID, models.ScheduleKindMeal); err == nil {
		var days []planner.DayMeals
		if json.Unmarshal(latest.Days, &days) == nil {
			if meals, found := planner.MealsForDay(days, weekday); found {
				response.Meals = &meals
			}
		}
	} else if !errors.Is(err, repository.ErrNotFound) {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, response)
}

func (h *ScheduleHandler) save(c echo.Context, kind models.ScheduleKind) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	var req SaveScheduleRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}

	if len(req.Days) == 0 || !json.Valid(req.Days) {
		return badRequest(c, "days must be a JSON array")
	}

	schedule := models.SavedSchedule{
		ID:     uuid.New(),
		UserID: userID,
		Kind:   kind,
		Days:   req.Days,
	}

	schedule, err := h.Schedules.Create(c.Request().Context(), schedule)
	if err != nil {
		if errors.Is(err, repository.ErrInvalid) {
			return badRequest(c, "unknown schedule kind")
		}
		return serverError(c)
	}

	count, err := h.count(c, userID, kind)
	if err != nil {
		return serverError(c)
	}
	h.Hub.Publish(userID, notifications.ScheduleEvent(notifications.EventScheduleSaved, string(kind), count))

	return c.JSON(http.StatusCreated, toScheduleResponse(schedule))
}

func (h *ScheduleHandler) list(c echo.Context, kind models.ScheduleKind) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	schedules, err := h.Schedules.ListByUser(c.Request().Context(), userID, kind)
	if err != nil {
		return serverError(c)
	}

	response := ScheduleListResponse{Schedules: make([]SavedScheduleResponse, 0, len(schedules))}
	for _, schedule := range schedules {
		response.Schedules = append(response.Schedules, toScheduleResponse(schedule))
	}

	return c.JSON(http.StatusOK, response)
}

func (h *ScheduleHandler) deleteByIndex(c echo.Context, kind models.ScheduleKind) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		return badRequest(c, "index must be a non-negative integer")
	}

	if err := h.Schedules.DeleteByIndex(c.Request().Context(), userID, kind, index); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return notFound(c, "schedule not found")
		case errors.Is(err, repository.ErrInvalid):
			return badRequest(c, "invalid index")
		default:
			return serverError(c)
		}
	}

	count, err := h.count(c, userID, kind)
	if err != nil {
		return serverError(c)
	}
	h.Hub.Publish(userID, notifications.ScheduleEvent(notifications.EventScheduleDeleted, string(kind), count))

	return c.NoContent(http.StatusNoContent)
}

func (h *ScheduleHandler) count(c echo.Context, userID uuid.UUID, kind models.ScheduleKind) (int, error) {
	schedules, err := h.Schedules.ListByUser(c.Request().Context(), userID, kind)
	if err != nil {
		return 0, err
	}
	return len(schedules), nil
}

// toScheduleResponse подменяет битый сохраненный JSON пустым массивом,
// чтобы не ронять выдачу списка.
func toScheduleResponse(schedule models.SavedSchedule) SavedScheduleResponse {
	days := json.RawMessage(schedule.Days)
	if !json.Valid(days) {
		days = json.RawMessage("[]")
	}

	return SavedScheduleResponse{
		ID:        schedule.ID,
		Kind:      schedule.Kind,
		Days:      days,
		CreatedAt: schedule.CreatedAt,
	}
}
