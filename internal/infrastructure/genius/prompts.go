package genius

import (
	"fmt"
	"strings"
	"time"
)

const dueDateLayout = "02/01/2006"

const (
	adviceMaxTokens      = 500
	titleMaxTokens       = 50
	descriptionMaxTokens = 100
	taskAdviceMaxTokens  = 200
	answerMaxTokens      = 300
)

const (
	FallbackAdvice      = "Could not obtain advice."
	FallbackTitle       = "Could not generate a title."
	FallbackDescription = "Could not format the description."
	FallbackTaskAdvice  = "Could not obtain advice for this task."
	FallbackAnswer      = "Could not answer the question."
)

// TaskDetail is the slice of a task that is shared with the model.
type TaskDetail struct {
	Title       string
	Description string
	DueDate     *time.Time
}

func adviceRequest(tasks []TaskDetail) templatedRequest {
	var prompt strings.Builder
	prompt.WriteString("Give me one brief piece of advice, in no more than 30 words, on how to organize myself better with these tasks:\n")
	writeTaskList(&prompt, tasks)

	return templatedRequest{
		op:              "advice",
		prompt:          prompt.String(),
		maxOutputTokens: adviceMaxTokens,
		fallback:        FallbackAdvice,
	}
}

func titleRequest(description string) templatedRequest {
	return templatedRequest{
		op: "title suggestion",
		prompt: fmt.Sprintf("Generate a short, descriptive title for the following task: %q. "+
			"It must be a single sentence; reply only with the suggested title and nothing else.", description),
		maxOutputTokens: titleMaxTokens,
		fallback:        FallbackTitle,
	}
}

func descriptionRequest(description string) templatedRequest {
	return templatedRequest{
		op: "description formatting",
		prompt: fmt.Sprintf("Rewrite the following task description so it is clearer and easier to understand: %q. "+
			"Reply only with the rewritten text as plain text; add no formatting, suggestions or advice.", description),
		maxOutputTokens: descriptionMaxTokens,
		fallback:        FallbackDescription,
	}
}

func taskAdviceRequest(description string) templatedRequest {
	return templatedRequest{
		op: "task advice",
		prompt: fmt.Sprintf("Give me one brief piece of advice, in no more than 40 words, on how to get the following task done: %q. "+
			"Reply only with the advice as plain text.", description),
		maxOutputTokens: taskAdviceMaxTokens,
		fallback:        FallbackTaskAdvice,
	}
}

func answerRequest(tasks []TaskDetail, question string) templatedRequest {
	var prompt strings.Builder
	prompt.WriteString("Answer the following question about my tasks in no more than 60 words, as plain text.\n")
	fmt.Fprintf(&prompt, "Question: %s\n", question)
	prompt.WriteString("My tasks:\n")
	writeTaskList(&prompt, tasks)

	return templatedRequest{
		op:              "question",
		prompt:          prompt.String(),
		maxOutputTokens: answerMaxTokens,
		fallback:        FallbackAnswer,
	}
}

func writeTaskList(prompt *strings.Builder, tasks []TaskDetail) {
	for _, task := range tasks {
		fmt.Fprintf(prompt, "- %s: %s\n", task.Title, task.Description)
		if task.DueDate != nil && !task.DueDate.IsZero() {
			fmt.Fprintf(prompt, "(Due date: %s)\n", task.DueDate.Format(dueDateLayout))
		}
	}
}
