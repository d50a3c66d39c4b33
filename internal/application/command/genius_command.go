package command

type AskQuestionCommand struct {
	UserId   uint   `json:"-"`
	Question string `json:"question"`
}

type AdviceCommandResult struct {
	Advice string `json:"advice"`
}

type TitleSuggestionCommandResult struct {
	Title string `json:"title"`
}

type DescriptionFormattingCommandResult struct {
	Description string `json:"description"`
}

type AnswerCommandResult struct {
	Answer string `json:"answer"`
}
