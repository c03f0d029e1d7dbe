package handlers

import (
	"math/rand"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"example.com/selfcare/backend/internal/planner"
)

type WorkoutHandler struct{}

// NewWorkoutHandler создает обработчик тренировок.
func NewWorkoutHandler() *WorkoutHandler {
	return &WorkoutHandler{}
}

type WorkoutPlanRequest struct {
	BodyType         string `json:"body_type" validate:"required,oneof=ectomorph mesomorph endomorph"`
	Goal             string `json:"goal" validate:"required,oneof=gain maintain lose"`
	DailyTimeMinutes int    `json:"daily_time" validate:"required,gt=0"`
	MedicalCondition string `json:"medical_condition"`
}

type WorkoutPlanResponse struct {
	Plan planner.WeeklyWorkoutPlan `json:"plan"`
}

type BodyPartsResponse struct {
	BodyParts []planner.BodyPart `json:"body_parts"`
}

type VideosResponse struct {
	Videos []planner.Video `json:"videos"`
}

// Library возвращает библиотеку упражнений по группам.
func (h *WorkoutHandler) Library(c echo.Context) error {
	return c.JSON(http.StatusOK, planner.ExerciseLibrary())
}

// GeneratePlan строит недельный план тренировок.
func (h *WorkoutHandler) GeneratePlan(c echo.Context) error {
	var req WorkoutPlanRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	input := planner.WorkoutInput{
		BodyType:         planner.BodyType(req.BodyType),
		Goal:             planner.Goal(req.Goal),
		DailyTimeMinutes: req.DailyTimeMinutes,
		MedicalCondition: req.MedicalCondition,
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	plan, err := planner.GenerateWorkoutPlan(input, rng)
	if err != nil {
		return badRequest(c, err.Error())
	}

	return c.JSON(http.StatusOK, WorkoutPlanResponse{Plan: plan})
}

// VideoParts возвращает группы видеотренировок.
func (h *WorkoutHandler) VideoParts(c echo.Context) error {
	return c.JSON(http.StatusOK, BodyPartsResponse{BodyParts: planner.BodyParts()})
}

// Videos возвращает видео группы, отсортированные по сложности. Неизвестная
// группа дает пустой список.
func (h *WorkoutHandler) Videos(c echo.Context) error {
	return c.JSON(http.StatusOK, VideosResponse{Videos: planner.VideosForPart(c.Param("part"))})
}
