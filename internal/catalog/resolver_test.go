package catalog

import (
	"testing"

	"github.com/datallboy/mvnsync/internal/domain"
	"github.com/datallboy/mvnsync/internal/infra/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetDirs(t *testing.T) {
	r := NewResolver(config.Default().Instruments)

	assert.Equal(t, []string{"l2/sav/1sec", "l2/sav/30sec", "l2/sav/full"}, r.TargetDirs("mag"))
	assert.Equal(t, []string{"l2", "l3/cio", "l3/density", "l3/temperature"}, r.TargetDirs("sta"))
	assert.Equal(t, []string{"l2", "ql"}, r.TargetDirs("swe"))
	assert.Equal(t, []string{"l2", "ql"}, r.TargetDirs("not-an-instrument"))
}

func TestTargetDirs_ReturnsCopy(t *testing.T) {
	r := NewResolver(config.Default().Instruments)

	dirs := r.TargetDirs("mag")
	dirs[0] = "changed"

	assert.Equal(t, "l2/sav/1sec", r.TargetDirs("mag")[0])
}

func TestTargets_Order(t *testing.T) {
	r := NewResolver(config.InstrumentsConfig{
		DefaultDirs: []string{"l2", "ql"},
	})
	months := []domain.Month{{2020, 12}, {2021, 1}}

	targets := r.Targets("swe", months)
	require.Len(t, targets, 4)

	got := make([]string, 0, len(targets))
	for _, tg := range targets {
		got = append(got, tg.Subdir+"@"+tg.Month.String())
	}
	assert.Equal(t, []string{"l2@2020-12", "l2@2021-01", "ql@2020-12", "ql@2021-01"}, got)
}
