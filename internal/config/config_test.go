package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drillbook-dev/drillbook/internal/model"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drillbook.yaml")

	cfg := Default("Harbor Services", "service")
	cfg.Scenario.Transactions = 15
	cfg.Scenario.Seed = 42
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drillbook.yaml")
	require.NoError(t, os.WriteFile(path, []byte("business: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	cfg := Default("Harbor Services", "service")

	assert.Equal(t, "Harbor Services", cfg.Business.Name)
	assert.Equal(t, "service", cfg.Business.Type)
	assert.Equal(t, 10, cfg.Scenario.Transactions)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, cfg.Steps)
	assert.Equal(t, ":8080", cfg.Server.Listen)
	assert.Equal(t, "drillbook.db", cfg.Server.DBPath)
}

func TestToGeneration(t *testing.T) {
	cfg := Default("Harbor Services", "merchandising")
	cfg.Business.Ownership = "partnership"
	cfg.Scenario.Inventory = "perpetual"
	cfg.Scenario.TradeDiscounts = true
	cfg.Scenario.Month = 3
	cfg.Scenario.Seed = 7

	gen := cfg.ToGeneration()
	assert.Equal(t, model.BusinessMerchandising, gen.BusinessType)
	assert.Equal(t, model.OwnershipPartnership, gen.Ownership)
	assert.Equal(t, model.InventoryPerpetual, gen.Inventory)
	assert.True(t, gen.TradeDiscounts)
	assert.Equal(t, time.March, gen.Month)
	assert.Equal(t, int64(7), gen.Seed)
}
