package models

type SummarizeRequest struct {
	Content  string `json:"content"`
	MaxWords int    `json:"maxWords"`
}

type QuizSuggestionRequest struct {
	Topic         string `json:"topic"`
	QuestionCount int    `json:"questionCount"`
	Difficulty    string `json:"difficulty"`
}

type ExplainRequest struct {
	Concept string `json:"concept"`
	Level   string `json:"level"`
}

type AIResponse struct {
	Feature string `json:"feature"`
	Result  string `json:"result"`
	Model   string `json:"model,omitempty"`
}
