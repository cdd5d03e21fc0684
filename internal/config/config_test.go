package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFamilies(t *testing.T) {
	cfg := Default()

	variants, err := cfg.Variants("xg24")
	require.NoError(t, err)
	assert.Equal(t, []string{"efr32mg24", "efr32bg24", "mgm24", "bgm24"}, variants)

	names := cfg.FamilyNames()
	assert.Equal(t, []string{"xg21", "xg22", "xg23", "xg24", "xg25", "xg26", "xg27", "xg28"}, names)
}

func TestUnknownFamily(t *testing.T) {
	_, err := Default().Variants("xg99")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xg99")
}

func TestParseCustomTable(t *testing.T) {
	cfg, err := Parse([]byte(`
families:
  xg99: [efr32xg99]
`))
	require.NoError(t, err)

	variants, err := cfg.Variants("xg99")
	require.NoError(t, err)
	assert.Equal(t, []string{"efr32xg99"}, variants)
}
