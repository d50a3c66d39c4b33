package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/santiago-morfe/TaskGeniusApi/internal/application/command"
	"github.com/santiago-morfe/TaskGeniusApi/internal/application/interfaces"
	"github.com/santiago-morfe/TaskGeniusApi/internal/domain"
)

const (
	headerIdempotencyKey     = "Idempotency-Key"
	headerIdempotentReplayed = "Idempotent-Replayed"
)

type TaskHandler struct {
	taskService interfaces.TaskService
}

func NewTaskHandler(taskService interfaces.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) List(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	result, err := h.taskService.ListTasksByOwner(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return sendJSONResponse(c, http.StatusOK, result.Result)
}

func (h *TaskHandler) Get(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	taskID, err := taskIDParam(c)
	if err != nil {
		return err
	}

	result, err := h.taskService.GetOwnedTask(c.Request().Context(), userID, taskID)
	if err != nil {
		return err
	}
	return sendJSONResponse(c, http.StatusOK, result.Result)
}

func (h *TaskHandler) Create(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var createCommand command.CreateTaskCommand
	if err := c.Bind(&createCommand); err != nil {
		return domain.NewValidationError("invalid request body")
	}
	createCommand.UserId = userID
	createCommand.IdempotencyKey = c.Request().Header.Get(headerIdempotencyKey)

	result, err := h.taskService.CreateTask(c.Request().Context(), &createCommand)
	if err != nil {
		return err
	}
	if result.Replayed {
		c.Response().Header().Set(headerIdempotentReplayed, "true")
	}
	c.Response().Header().Set(echo.HeaderLocation, "/api/task/"+strconv.FormatUint(uint64(result.Result.Id), 10))
	return sendJSONResponse(c, http.StatusCreated, result.Result)
}

func (h *TaskHandler) Update(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	taskID, err := taskIDParam(c)
	if err != nil {
		return err
	}

	var updateCommand command.UpdateTaskCommand
	if err := c.Bind(&updateCommand); err != nil {
		return domain.NewValidationError("invalid request body")
	}
	updateCommand.Id = taskID

	result, err := h.taskService.UpdateOwnedTask(c.Request().Context(), userID, &updateCommand)
	if err != nil {
		return err
	}
	return sendJSONResponse(c, http.StatusOK, result.Result)
}

func (h *TaskHandler) Delete(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	taskID, err := taskIDParam(c)
	if err != nil {
		return err
	}

	if err := h.taskService.DeleteOwnedTask(c.Request().Context(), userID, taskID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func taskIDParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, domain.NewValidationError("task id must be a positive integer")
	}
	return uint(id), nil
}
