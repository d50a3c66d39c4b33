package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/santiago-morfe/TaskGeniusApi/internal/application/command"
	"github.com/santiago-morfe/TaskGeniusApi/internal/application/interfaces"
	"github.com/santiago-morfe/TaskGeniusApi/internal/domain"
)

type GeniusHandler struct {
	geniusService interfaces.GeniusService
}

func NewGeniusHandler(geniusService interfaces.GeniusService) *GeniusHandler {
	return &GeniusHandler{geniusService: geniusService}
}

func (h *GeniusHandler) Advice(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	result, err := h.geniusService.GetAdvice(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return sendJSONResponse(c, http.StatusOK, result)
}

func (h *GeniusHandler) TitleSuggestion(c echo.Context) error {
	result, err := h.geniusService.GetTitleSuggestion(c.Request().Context(), c.QueryParam("taskDescription"))
	if err != nil {
		return err
	}
	return sendJSONResponse(c, http.StatusOK, result)
}

func (h *GeniusHandler) DescriptionFormatting(c echo.Context) error {
	result, err := h.geniusService.GetDescriptionFormatting(c.Request().Context(), c.QueryParam("taskDescription"))
	if err != nil {
		return err
	}
	return sendJSONResponse(c, http.StatusOK, result)
}

func (h *GeniusHandler) TaskAdvice(c echo.Context) error {
	result, err := h.geniusService.GetAdviceForTask(c.Request().Context(), c.QueryParam("taskDescription"))
	if err != nil {
		return err
	}
	return sendJSONResponse(c, http.StatusOK, result)
}

func (h *GeniusHandler) OwnedTaskAdvice(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	taskID, err := taskIDParam(c)
	if err != nil {
		return err
	}

	result, err := h.geniusService.GetAdviceForOwnedTask(c.Request().Context(), userID, taskID)
	if err != nil {
		return err
	}
	return sendJSONResponse(c, http.StatusOK, result)
}

func (h *GeniusHandler) Question(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var askCommand command.AskQuestionCommand
	if err := c.Bind(&askCommand); err != nil {
		return domain.NewValidationError("invalid request body")
	}
	askCommand.UserId = userID

	result, err := h.geniusService.AskQuestion(c.Request().Context(), &askCommand)
	if err != nil {
		return err
	}
	return sendJSONResponse(c, http.StatusOK, result)
}
