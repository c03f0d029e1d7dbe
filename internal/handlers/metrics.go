package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"example.com/selfcare/backend/internal/health"
	"example.com/selfcare/backend/internal/models"
)

// MetricsHandler считает метрики здоровья. Вычисления чистые, без состояния.
type MetricsHandler struct{}

// NewMetricsHandler создает обработчик калькуляторов.
func NewMetricsHandler() *MetricsHandler {
	return &MetricsHandler{}
}

type BMIRequest struct {
	WeightKG float64 `json:"weight" validate:"required,gt=0"`
	HeightCM float64 `json:"height" validate:"required,gt=0"`
}

type BMIResponse struct {
	BMI         float64 `json:"bmi"`
	Category    string  `json:"category"`
	StatusLabel string  `json:"status_label"`
}

type BMRRequest struct {
	Gender   string  `json:"gender" validate:"required,oneof=male female"`
	WeightKG float64 `json:"weight" validate:"required,gt=0"`
	HeightCM float64 `json:"height" validate:"required,gt=0"`
	Age      int     `json:"age" validate:"required,min=1,max=130"`
}

type BMRResponse struct {
	BMR int `json:"bmr"`
}

type TDEERequest struct {
	BMR           int    `json:"bmr" validate:"required,gt=0"`
	ActivityLevel string `json:"activity_level" validate:"required"`
}

type TDEEResponse struct {
	TDEE  int                 `json:"tdee"`
	Goals health.CalorieGoals `json:"goals"`
}

// BMI считает индекс массы тела и обе шкалы категорий.
func (h *MetricsHandler) BMI(c echo.Context) error {
	var req BMIRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	bmi, err := health.BMI(req.WeightKG, req.HeightCM)
	if err != nil {
		return badRequest(c, err.Error())
	}

	return c.JSON(http.StatusOK, BMIResponse{
		BMI:         bmi,
		Category:    health.BMICategory(bmi),
		StatusLabel: health.BMIStatusLabel(bmi),
	})
}

// BMR считает базовый обмен по Миффлину-Сан Жеору.
func (h *MetricsHandler) BMR(c echo.Context) error {
	var req BMRRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	bmr, err := health.BMR(models.Gender(req.Gender), req.WeightKG, req.HeightCM, req.Age)
	if err != nil {
		return badRequest(c, err.Error())
	}

	return c.JSON(http.StatusOK, BMRResponse{BMR: bmr})
}

// TDEE считает суточный расход с целевыми калориями.
func (h *MetricsHandler) TDEE(c echo.Context) error {
	var req TDEERequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	tdee, err := health.TDEE(req.BMR, health.ActivityLevel(req.ActivityLevel))
	if err != nil {
		return badRequest(c, err.Error())
	}

	return c.JSON(http.StatusOK, TDEEResponse{
		TDEE:  tdee,
		Goals: health.Goals(tdee),
	})
}
