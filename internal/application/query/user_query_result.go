package query

import "github.com/santiago-morfe/TaskGeniusApi/internal/application/common"

type UserQueryResult struct {
	Result *common.UserResult `json:"result"`
}

type UserQueryListResult struct {
	Result []*common.UserResult `json:"result"`
}
