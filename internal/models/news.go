package models

import "time"

// Table names in the remote data store.
const (
	TableNews              = "news"
	TableSuggestions       = "suggestions"
	TableServices          = "services"
	TableServiceCategories = "service_categories"
	TableServiceDocuments  = "service_documents"
	TableOfficials         = "officials"
	TableDepartments       = "departments"
	TableDepartmentStaff   = "department_staff"
	TableDepartmentActs    = "department_acts"
	TableCityStats         = "city_stats"
	TableDownloads         = "downloads"
	TableTenders           = "tenders"
)

// NewsCategoryNotification is the category used when a publisher leaves it blank.
const NewsCategoryNotification = "Notification"

// NewsItem represents a notice shown in the news ticker and news list
type NewsItem struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"not null"`
	Date      string    `json:"date" gorm:"not null;index"`
	Category  string    `json:"category"`
	Link      string    `json:"link"`
	Summary   string    `json:"summary,omitempty"`
	Content   string    `json:"content,omitempty"` // HTML body for the detail view
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for NewsItem Model
func (NewsItem) TableName() string {
	return TableNews
}
