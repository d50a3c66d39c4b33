package genius

// Wire format of the generateContent endpoint.

type generateContentRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
	TopP            float64 `json:"topP"`
	TopK            int     `json:"topK"`
}

type generateContentResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content *content `json:"content"`
}

// firstCandidateText returns the first part of the first candidate, or ""
// when any level is missing.
func firstCandidateText(response *generateContentResponse) string {
	if response == nil || len(response.Candidates) == 0 {
		return ""
	}
	first := response.Candidates[0].Content
	if first == nil || len(first.Parts) == 0 {
		return ""
	}
	return first.Parts[0].Text
}
