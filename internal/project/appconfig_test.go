package project

import (
	"path/filepath"
	"testing"

	"github.com/nadzri/plotplan/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAppConfigMissingReturnsDefaults(t *testing.T) {
	config, err := LoadAppConfig(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)
	assert.Equal(t, model.DefaultAppConfig(), config)
}

func TestSaveLoadAppConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	config := model.DefaultAppConfig()
	config.Theme = "dark"
	config.RecentSites = []string{"/tmp/a.json", "/tmp/b.toml"}

	require.NoError(t, SaveAppConfig(path, config))

	loaded, err := LoadAppConfig(path)
	require.NoError(t, err)
	assert.Equal(t, config, loaded)
}

func TestRememberSite(t *testing.T) {
	config := model.DefaultAppConfig()

	RememberSite(&config, "/tmp/a.json")
	RememberSite(&config, "/tmp/b.json")
	RememberSite(&config, "/tmp/a.json") // re-open moves to front, no duplicate

	assert.Equal(t, []string{"/tmp/a.json", "/tmp/b.json"}, config.RecentSites)

	for i := 0; i < 15; i++ {
		RememberSite(&config, filepath.Join("/tmp", "site", string(rune('a'+i))+".json"))
	}
	assert.Len(t, config.RecentSites, 10)
}

func TestApplyToSite(t *testing.T) {
	config := model.DefaultAppConfig()
	config.DefaultGridSnapCM = 25
	config.DefaultRoomHeight = 3.2

	site := model.DefaultSite()
	config.ApplyToSite(&site)

	assert.Equal(t, 25, site.GridSnapCM)
	assert.Equal(t, 3.2, site.RoomHeight)
}
