package domain

// Settings holds the persisted user configuration: the Gemini API key
// used for generation and grading, and a display name shown by clients.
// An absent settings blob is valid initial state and decodes to the
// zero value.
type Settings struct {
	APIKey      string `json:"api_key"`
	DisplayName string `json:"display_name"`
}
