package models

import "time"

// SuggestionType is the kind of feedback a citizen submits
type SuggestionType string

const (
	SuggestionGeneral      SuggestionType = "Suggestion"
	SuggestionBugReport    SuggestionType = "Bug Report"
	SuggestionContentError SuggestionType = "Content Error"
	SuggestionFeature      SuggestionType = "Feature"
	SuggestionOther        SuggestionType = "Other"
)

// SuggestionTypes lists every accepted SuggestionType.
var SuggestionTypes = []SuggestionType{
	SuggestionGeneral,
	SuggestionBugReport,
	SuggestionContentError,
	SuggestionFeature,
	SuggestionOther,
}

// SuggestionStatusNew is the status of feedback nobody has triaged yet.
const SuggestionStatusNew = "new"

// Suggestion represents feedback submitted from the site
type Suggestion struct {
	ID        string         `json:"id" gorm:"primaryKey"`
	Type      SuggestionType `json:"type" gorm:"not null"`
	Message   string         `json:"message" gorm:"not null"`
	Status    string         `json:"status" gorm:"not null;default:'new'"`
	CreatedAt time.Time      `json:"created_at" gorm:"index"`
}

// TableName specifies the table name for Suggestion Model
func (Suggestion) TableName() string {
	return TableSuggestions
}
