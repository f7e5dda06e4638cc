package app

import (
	"context"

	"github.com/extremtechniker/mailtxt/model"
)

// Persisters saves to each sink in order and stops at the first failure.
type Persisters []Persister

func (ps Persisters) Persist(ctx context.Context, r model.Report) error {
	for _, p := range ps {
		if err := p.Persist(ctx, r); err != nil {
			return err
		}
	}
	return nil
}
