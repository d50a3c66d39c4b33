package entities

type ValidatedTask struct {
	*Task
}

func NewValidatedTask(task *Task) (*ValidatedTask, error) {
	if err := task.validate(); err != nil {
		return nil, err
	}

	return &ValidatedTask{Task: task}, nil
}

func (vt *ValidatedTask) GetTask() *Task {
	return vt.Task
}
