package catalog

import (
	"slices"

	"github.com/datallboy/mvnsync/internal/domain"
	"github.com/datallboy/mvnsync/internal/infra/config"
)

// Resolver maps an instrument to the subdirectories synced for it.
type Resolver struct {
	defaults  []string
	overrides map[string][]string
}

func NewResolver(cfg config.InstrumentsConfig) *Resolver {
	overrides := make(map[string][]string, len(cfg.Overrides))
	for name, dirs := range cfg.Overrides {
		overrides[name] = slices.Clone(dirs)
	}

	return &Resolver{
		defaults:  slices.Clone(cfg.DefaultDirs),
		overrides: overrides,
	}
}

// TargetDirs returns the override list for instrument verbatim, or the
// default list for anything not in the table. Callers get their own copy.
func (r *Resolver) TargetDirs(instrument string) []string {
	if dirs, ok := r.overrides[instrument]; ok {
		return slices.Clone(dirs)
	}
	return slices.Clone(r.defaults)
}

// Targets expands instrument and months into sync order: subdirectory first,
// then chronological.
func (r *Resolver) Targets(instrument string, months []domain.Month) []domain.Target {
	dirs := r.TargetDirs(instrument)

	targets := make([]domain.Target, 0, len(dirs)*len(months))
	for _, subdir := range dirs {
		for _, m := range months {
			targets = append(targets, domain.Target{
				Instrument: instrument,
				Subdir:     subdir,
				Month:      m,
			})
		}
	}
	return targets
}
