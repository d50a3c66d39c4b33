package command

import (
	"time"

	"github.com/santiago-morfe/TaskGeniusApi/internal/application/common"
)

type CreateUserCommand struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateUserCommandResult never carries the password hash.
type CreateUserCommandResult struct {
	Token      string             `json:"token"`
	Expiration time.Time          `json:"expiration"`
	User       *common.UserResult `json:"user"`
}
