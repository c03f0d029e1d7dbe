package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"example.com/selfcare/backend/internal/planner"
)

type TipHandler struct{}

// NewTipHandler создает обработчик советов дня.
func NewTipHandler() *TipHandler {
	return &TipHandler{}
}

type TipsResponse struct {
	Tips []planner.Tip `json:"tips"`
}

// List возвращает карусель советов главного экрана.
func (h *TipHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, TipsResponse{Tips: planner.Tips()})
}

// ByID возвращает один совет.
func (h *TipHandler) ByID(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return badRequest(c, "id must be an integer")
	}

	tip, err := planner.TipByID(id)
	if err != nil {
		return notFound(c, "tip not found")
	}

	return c.JSON(http.StatusOK, tip)
}
