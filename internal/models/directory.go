package models

// OfficialCategory is the tier of government an official belongs to
type OfficialCategory string

const (
	OfficialNational  OfficialCategory = "National"
	OfficialState     OfficialCategory = "State"
	OfficialDistrict  OfficialCategory = "District"
	OfficialMunicipal OfficialCategory = "Municipal"
)

// Official represents an entry in the officials directory
type Official struct {
	ID          string           `json:"id" gorm:"primaryKey"`
	Name        string           `json:"name" gorm:"not null"`
	Designation string           `json:"designation"`
	Image       string           `json:"image"`
	Phone       string           `json:"phone,omitempty"`
	Email       string           `json:"email,omitempty"`
	Category    OfficialCategory `json:"category"`
	Priority    int              `json:"priority,omitempty" gorm:"index"`
	Message     string           `json:"message,omitempty"`
}

// TableName specifies the table name for Official Model
func (Official) TableName() string {
	return TableOfficials
}

// Stat is one headline number on the home page
type Stat struct {
	ID       uint   `json:"-" gorm:"primaryKey"`
	Label    string `json:"label" gorm:"not null;uniqueIndex"`
	Value    string `json:"value"`
	Icon     string `json:"icon"`
	Color    string `json:"color,omitempty"`
	Priority int    `json:"-" gorm:"index"`
}

// TableName specifies the table name for Stat Model
func (Stat) TableName() string {
	return TableCityStats
}

// DownloadItem is a form or document offered in the download centre
type DownloadItem struct {
	ID          string `json:"id" gorm:"primaryKey"`
	Title       string `json:"title" gorm:"not null"`
	Category    string `json:"category"`
	Size        string `json:"size"`
	Format      string `json:"format"`
	Description string `json:"description"`
	Link        string `json:"link,omitempty"`
}

// TableName specifies the table name for DownloadItem Model
func (DownloadItem) TableName() string {
	return TableDownloads
}

// TenderStatus represents whether a tender still accepts bids
type TenderStatus string

const (
	TenderActive TenderStatus = "Active"
	TenderClosed TenderStatus = "Closed"
)

// Tender represents a published tender notice
type Tender struct {
	ID          string       `json:"id" gorm:"primaryKey"`
	Description string       `json:"description" gorm:"not null"`
	ClosingDate string       `json:"closing_date" gorm:"column:closing_date;index"`
	Status      TenderStatus `json:"status" gorm:"default:'Active'"`
	IsNew       bool         `json:"is_new" gorm:"column:is_new"`
}

// TableName specifies the table name for Tender Model
func (Tender) TableName() string {
	return TableTenders
}
