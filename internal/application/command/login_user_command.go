package command

import (
	"time"

	"github.com/santiago-morfe/TaskGeniusApi/internal/application/common"
)

type LoginUserCommand struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginUserCommandResult struct {
	Token      string             `json:"token"`
	Expiration time.Time          `json:"expiration"`
	User       *common.UserResult `json:"user"`
}
