package providers

import (
	"context"

	"tankwatch/internal/domain"
)

// Source is one upstream provider able to produce a full canonical dataset.
// Fetch retrieves every required feed for a run and normalizes the results;
// it fails as a unit when any required feed cannot be obtained or the
// standings resolve too few teams.
type Source interface {
	Name() string
	Fetch(ctx context.Context) (*domain.Dataset, error)
}
