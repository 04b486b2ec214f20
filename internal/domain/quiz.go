package domain

// QuizItem is one binary-choice trivia question as produced by the
// generator. It is treated as an immutable value once parsed; the only
// validation applied is that it came from a well-formed JSON object.
type QuizItem struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	Answer       string   `json:"answer"`
	ExplanationA string   `json:"explanation_A,omitempty"`
	ExplanationB string   `json:"explanation_B,omitempty"`
}
