package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hacker-menu/internal/sortkey"
)

func TestFillDefaultsValidates(t *testing.T) {
	var c Config
	c.FillDefaults()

	d, key, err := c.Validate()
	require.NoError(t, err)
	assert.Equal(t, sortkey.Rank, key)
	assert.Equal(t, 5*time.Minute, d.FetchInterval)
	assert.Equal(t, 30*time.Second, d.TickInterval)
	assert.Equal(t, "top", c.Sources.HN.List)
	assert.Equal(t, 30, c.Sources.HN.Limit)
	assert.False(t, c.Cache.Enabled)
}

func TestFillDefaultsKeepsValues(t *testing.T) {
	c := Config{UI: UIConfig{Sort: "score"}, Sources: DataSources{HN: HNConfig{Limit: 5}}}
	c.FillDefaults()
	_, key, err := c.Validate()
	require.NoError(t, err)
	assert.Equal(t, sortkey.Score, key)
	assert.Equal(t, 5, c.Sources.HN.Limit)
}

func TestValidateRejects(t *testing.T) {
	c := Config{UI: UIConfig{Sort: "hot"}}
	c.FillDefaults()
	_, _, err := c.Validate()
	assert.ErrorContains(t, err, "ui.sort")

	c = Config{Cache: CacheConfig{TTL: "soon"}}
	c.FillDefaults()
	_, _, err = c.Validate()
	assert.ErrorContains(t, err, "cache.ttl")
}
