package rendering

import (
	"context"

	"github.com/jonathan/infofill/internal/types"
	"golang.org/x/sync/errgroup"
)

// BatchResult is the outcome of rendering one template in RenderAll.
type BatchResult struct {
	Template types.Template
	Output   string
	Err      error
}

// RenderAll renders every template against one projection of profile, at
// most limit at a time. Per-template failures are reported in the results;
// the returned error is only set when ctx is cancelled. Results keep the
// order of templates.
func RenderAll(ctx context.Context, profile *types.Profile, templates []types.Template, opts Options, limit int) ([]BatchResult, error) {
	projected := Project(profile)
	results := make([]BatchResult, len(templates))

	g, gCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, tmpl := range templates {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			out, err := RenderContext(tmpl, projected, opts)
			results[i] = BatchResult{Template: tmpl, Output: out, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
