package model

// Preference keys.
const PrefKeyTheme = "theme"

// Theme values.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// DefaultTheme applies until a device stores its own choice.
const DefaultTheme = ThemeLight

// ThemeRequest represents a theme update.
type ThemeRequest struct {
	Theme string `json:"theme" validate:"required,oneof=light dark"`
}

// ThemeResponse represents the stored theme of a device.
type ThemeResponse struct {
	Theme string `json:"theme"`
}
