package insights

import "context"

// Generator produces a narrative for a summary, or fails so the next tier
// can run. Generators are tried in order; failures are logged and
// swallowed, never surfaced to the HTTP boundary.
type Generator interface {
	Produce(ctx context.Context, s Summary) (string, error)
}

// CompletionClient is the slice of the AI provider the completion
// generator needs. openrouter.Client satisfies it.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// CompletionGenerator delegates narrative generation to an external
// completion provider.
type CompletionGenerator struct {
	client CompletionClient
}

// NewCompletionGenerator wraps a completion client as a Generator.
func NewCompletionGenerator(client CompletionClient) *CompletionGenerator {
	return &CompletionGenerator{client: client}
}

func (g *CompletionGenerator) Produce(ctx context.Context, s Summary) (string, error) {
	return g.client.Complete(ctx, s.Prompt())
}
