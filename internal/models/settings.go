package models

// DefaultDailyLimit is the fallback daily consumption limit, in liters,
// applied to users with no stored settings.
const DefaultDailyLimit = 150

// Settings holds a user's configurable options.
type Settings struct {
	DailyLimit float64 `json:"dailyLimit"`
}

// DefaultSettings returns the record used for users with no stored settings.
func DefaultSettings() Settings {
	return Settings{DailyLimit: DefaultDailyLimit}
}
