package insights

import (
	"context"
	"errors"

	"github.com/airmarket/airline-demand-api/pkg/cache"
	"github.com/airmarket/airline-demand-api/pkg/logger"
)

// ErrNoGenerator is returned by the generator chain when every external
// tier failed or none is configured.
var ErrNoGenerator = errors.New("no insight generator produced a result")

// cacheKey is the single fixed key for the cached narrative. The cache is
// deliberately not keyed by input: the first successful external result is
// reused for the process lifetime even when the underlying data changes.
const cacheKey = "narrative"

// Formatter resolves a narrative through the tier chain.
type Formatter struct {
	cache      cache.Cache
	generators []Generator
}

// NewFormatter creates a formatter over a cache collaborator and an ordered
// list of external generators. With no generators (no credential
// configured) every request renders the deterministic template.
func NewFormatter(c cache.Cache, generators ...Generator) *Formatter {
	return &Formatter{cache: c, generators: generators}
}

// Insights returns the narrative for a summary. Cached text wins
// unconditionally; otherwise the first generator to succeed is cached and
// returned; otherwise the template fallback renders. Never fails.
func (f *Formatter) Insights(ctx context.Context, s Summary) string {
	text, err := cache.GetOrCompute(ctx, f.cache, cacheKey, func() (string, error) {
		return f.generate(ctx, s)
	})
	if err != nil {
		return RenderTemplate(s)
	}
	return text
}

func (f *Formatter) generate(ctx context.Context, s Summary) (string, error) {
	for _, g := range f.generators {
		text, err := g.Produce(ctx, s)
		if err != nil {
			logger.WithField("region", s.Region).Warn("insight generator failed", "error", err)
			continue
		}
		return text, nil
	}
	return "", ErrNoGenerator
}
