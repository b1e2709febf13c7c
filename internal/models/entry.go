package models

import "time"

// UsageType classifies what an entry's water was used for.
type UsageType string

const (
	UsageDrinking UsageType = "drinking"
	UsageCooking  UsageType = "cooking"
	UsageWashing  UsageType = "washing"
	UsageBathing  UsageType = "bathing"
	UsageOthers   UsageType = "others"
)

// UsageTypes lists every valid usage type in display order.
var UsageTypes = []UsageType{UsageDrinking, UsageCooking, UsageWashing, UsageBathing, UsageOthers}

// Valid reports whether t is one of the known usage types.
func (t UsageType) Valid() bool {
	switch t {
	case UsageDrinking, UsageCooking, UsageWashing, UsageBathing, UsageOthers:
		return true
	}
	return false
}

// DateLayout is the calendar-day format used by Entry.Date. Lexical order of
// dates in this form matches chronological order.
const DateLayout = "2006-01-02"

// Entry is one recorded water-usage event. Date is a calendar day in
// YYYY-MM-DD form and Amount is liters. CustomType is meaningful only when
// UsageType is UsageOthers.
type Entry struct {
	ID         string    `json:"id"`
	Date       string    `json:"date"`
	Amount     float64   `json:"amount"`
	UsageType  UsageType `json:"usageType"`
	CustomType string    `json:"customType,omitempty"`
	UserID     string    `json:"userId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// DailyUsage aggregates one user's entries for a single day.
type DailyUsage struct {
	Date       string                `json:"date"`
	Total      float64               `json:"total"`
	ByCategory map[UsageType]float64 `json:"byCategory"`
	Entries    []Entry               `json:"entries"`
}
