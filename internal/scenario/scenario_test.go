package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/setsquared/set"
)

func writeFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.hcl")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()
	path := writeFile(t, `
scenario "baseline" {
  games = 50000
  seed  = 42
}

scenario "beginner-superset" {
  variant    = "superset"
  simplified = true
  workers    = 8
}
`)

	file, err := Load(path)
	require.NoError(t, err)
	require.Len(t, file.Scenarios, 2)

	baseline := file.Scenarios[0]
	assert.Equal(t, "baseline", baseline.Name)
	assert.Equal(t, 50000, baseline.Games)
	assert.Equal(t, int64(42), baseline.Seed)
	assert.Equal(t, "set", baseline.Variant) // defaulted

	rules, err := baseline.Rules()
	require.NoError(t, err)
	assert.IsType(t, set.SetRules{}, rules)

	superset := file.Scenarios[1]
	assert.Equal(t, 100000, superset.Games) // defaulted
	assert.True(t, superset.Simplified)
	assert.Equal(t, 8, superset.Workers)

	rules, err = superset.Rules()
	require.NoError(t, err)
	assert.IsType(t, set.SuperSetRules{}, rules)
}

func TestLoadUnknownVariant(t *testing.T) {
	t.Parallel()
	path := writeFile(t, `
scenario "bad" {
  variant = "quintuple"
}
`)

	_, err := Load(path)
	assert.ErrorContains(t, err, "unknown variant")
}

func TestLoadBadSyntax(t *testing.T) {
	t.Parallel()
	path := writeFile(t, `scenario "unterminated {`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()
	_, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	assert.Error(t, err)
}
