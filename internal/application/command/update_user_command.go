package command

import "github.com/santiago-morfe/TaskGeniusApi/internal/application/common"

// UpdateUserCommand replaces the non-empty fields. Password is re-hashed
// only when supplied.
type UpdateUserCommand struct {
	Id       uint   `json:"-"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateUserCommandResult struct {
	Result *common.UserResult `json:"result"`
}
