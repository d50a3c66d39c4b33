package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/santiago-morfe/TaskGeniusApi/internal/application/command"
	"github.com/santiago-morfe/TaskGeniusApi/internal/application/interfaces"
	"github.com/santiago-morfe/TaskGeniusApi/internal/domain"
)

type UserHandler struct {
	userService interfaces.UserService
}

func NewUserHandler(userService interfaces.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) Register(c echo.Context) error {
	var createCommand command.CreateUserCommand
	if err := c.Bind(&createCommand); err != nil {
		return domain.NewValidationError("invalid request body")
	}

	result, err := h.userService.CreateUser(c.Request().Context(), &createCommand)
	if err != nil {
		return err
	}
	return sendJSONResponse(c, http.StatusCreated, result)
}

func (h *UserHandler) Login(c echo.Context) error {
	var loginCommand command.LoginUserCommand
	if err := c.Bind(&loginCommand); err != nil {
		return domain.NewValidationError("invalid request body")
	}

	result, err := h.userService.LoginUser(c.Request().Context(), &loginCommand)
	if err != nil {
		return err
	}
	return sendJSONResponse(c, http.StatusOK, result)
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	result, err := h.userService.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return sendJSONResponse(c, http.StatusOK, result.Result)
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var updateCommand command.UpdateUserCommand
	if err := c.Bind(&updateCommand); err != nil {
		return domain.NewValidationError("invalid request body")
	}
	updateCommand.Id = userID

	result, err := h.userService.UpdateUser(c.Request().Context(), &updateCommand)
	if err != nil {
		return err
	}
	return sendJSONResponse(c, http.StatusOK, result.Result)
}

func (h *UserHandler) DeleteAccount(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	if err := h.userService.DeleteUser(c.Request().Context(), userID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
