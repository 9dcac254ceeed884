package models

// Interaction Types
const (
	InteractionTypeQuestion  = "question"
	InteractionTypeGame      = "game"
	InteractionTypeChallenge = "challenge"
	InteractionTypePrompt    = "prompt"
)

// Interaction is a generated conversational artifact attached to a match
type Interaction struct {
	Type     string `json:"type"`                // question, game, challenge, prompt
	Content  string `json:"content"`             // Short prompt string
	BoldMove string `json:"bold_move,omitempty"` // Actionable advice for introverts
}

// IsComplete reports whether all required fields are present.
func (i Interaction) IsComplete() bool {
	return i.Type != "" && i.Content != "" && i.BoldMove != ""
}
