package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	appRepos "github.com/yigit/eamcet-predictor/internal/app/repositories"
	"github.com/yigit/eamcet-predictor/internal/importer"
)

// CacheInvalidator drops aggregates computed from the previous table contents
type CacheInvalidator interface {
	InvalidateCache(ctx context.Context) error
}

// CreateDefaultData loads the reference table from seedFile when the store is empty.
// It returns the number of rows written.
func CreateDefaultData(ctx context.Context, store appRepos.CollegeStore, seedFile string, invalidator CacheInvalidator, lgr zerolog.Logger) (int, error) {
	seedFile = strings.TrimSpace(seedFile)
	if seedFile == "" {
		lgr.Info().Msg("No seed file configured, skipping default data")
		return 0, nil
	}

	count, err := store.Count(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error counting existing college records")
		return 0, fmt.Errorf("error counting colleges: %w", err)
	}
	if count > 0 {
		lgr.Info().Int("rows", count).Msg("College table already populated, skipping seed")
		return 0, nil
	}

	lgr.Info().Str("file", seedFile).Msg("Seeding college table...")
	res, err := importer.Load(seedFile)
	if err != nil {
		lgr.Error().Err(err).Str("file", seedFile).Msg("Error reading seed file")
		return 0, err
	}
	if res.Skipped > 0 {
		lgr.Warn().Int("skipped", res.Skipped).Msg("Seed rows without id, instcode or branch were skipped")
	}

	var finalErr error
	written, err := store.SaveAll(ctx, res.Colleges)
	if err != nil {
		lgr.Error().Err(err).Msg("Error saving seed records")
		finalErr = errors.Join(finalErr, err)
	}

	if invalidator != nil && written > 0 {
		if err := invalidator.InvalidateCache(ctx); err != nil {
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Int("rows", written).Msg("Seed data loaded")
	return written, finalErr
}
