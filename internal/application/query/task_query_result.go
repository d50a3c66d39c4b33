package query

import "github.com/santiago-morfe/TaskGeniusApi/internal/application/common"

type TaskQueryResult struct {
	Result *common.TaskResult `json:"result"`
}

type TaskQueryListResult struct {
	Result []*common.TaskResult `json:"result"`
}
