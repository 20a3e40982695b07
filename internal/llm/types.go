package llm

import "context"

// rewrites text in a requested style
type Paraphraser interface {
	Paraphrase(ctx context.Context, text, mode string) (string, error)
}

// paraphrasing modes accepted by the API
const (
	ModeStandard = "standard"
	ModeFormal   = "formal"
	ModeCasual   = "casual"
	ModeAcademic = "academic"
	ModeCreative = "creative"
	ModeSimplify = "simplify"
)

// holds configuration for the OpenRouter client
type Config struct {
	APIKey string
	Model  string // e.g., "google/gemini-flash-1.5"
}
