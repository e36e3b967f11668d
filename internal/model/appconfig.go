package model

// AppConfig holds application-wide preferences for the desktop app.
type AppConfig struct {
	// Site defaults applied when creating a new site
	DefaultGridSnapCM    int     `json:"default_grid_snap_cm"`
	DefaultWallThickness float64 `json:"default_wall_thickness"`
	DefaultRoomHeight    float64 `json:"default_room_height"`

	// Application preferences
	RecentSites []string `json:"recent_sites"`
	Theme       string   `json:"theme"` // "light", "dark", "system"
}

// DefaultAppConfig returns an AppConfig populated with the stock site values.
func DefaultAppConfig() AppConfig {
	site := DefaultSite()
	return AppConfig{
		DefaultGridSnapCM:    site.GridSnapCM,
		DefaultWallThickness: site.WallThickness,
		DefaultRoomHeight:    site.RoomHeight,
		RecentSites:          []string{},
		Theme:                "system",
	}
}

// ApplyToSite copies the saved defaults into a site configuration. Used when
// creating a new site so it inherits the user's preferences.
func (c AppConfig) ApplyToSite(s *SiteConfig) {
	if c.DefaultGridSnapCM >= MinGridSnapCM {
		s.GridSnapCM = c.DefaultGridSnapCM
	}
	if c.DefaultWallThickness > 0 {
		s.WallThickness = c.DefaultWallThickness
	}
	if c.DefaultRoomHeight > 0 {
		s.RoomHeight = c.DefaultRoomHeight
	}
}
