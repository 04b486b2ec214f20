package dto

// QuizResponse represents a quiz item in the API response
// @Description One binary-choice trivia question
type QuizResponse struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	Answer       string   `json:"answer"`
	ExplanationA string   `json:"explanation_A,omitempty"`
	ExplanationB string   `json:"explanation_B,omitempty"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
