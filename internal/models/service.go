package models

// ServiceCategory holds the display palette shared by services of one category
type ServiceCategory struct {
	Name   string `json:"name" gorm:"primaryKey"`
	Color  string `json:"color"`
	Accent string `json:"accent"`
}

// TableName specifies the table name for ServiceCategory Model
func (ServiceCategory) TableName() string {
	return TableServiceCategories
}

// ServiceDocument is one document an applicant must bring for a service
type ServiceDocument struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	ServiceID string `json:"service_id" gorm:"column:service_id;index;not null"`
	DocName   string `json:"doc_name" gorm:"column:doc_name;not null"`
}

// TableName specifies the table name for ServiceDocument Model
func (ServiceDocument) TableName() string {
	return TableServiceDocuments
}

// ServiceRecord is a citizen service as stored remotely: documents and the
// category palette live in related tables.
type ServiceRecord struct {
	ID           string `gorm:"primaryKey"`
	Title        string `gorm:"not null"`
	Description  string
	Icon         string
	Link         string
	Timeframe    string
	Fees         string
	IsExternal   bool              `gorm:"column:is_external"`
	ButtonLabel  string            `gorm:"column:button_label"`
	CategoryName string            `gorm:"column:category_name;index"`
	Category     *ServiceCategory  `gorm:"foreignKey:CategoryName;references:Name"`
	Documents    []ServiceDocument `gorm:"foreignKey:ServiceID"`
}

// TableName specifies the table name for ServiceRecord Model
func (ServiceRecord) TableName() string {
	return TableServices
}

// Service is the flat shape of a citizen service returned to callers
type Service struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Link        string   `json:"link"`
	Color       string   `json:"color"`
	Accent      string   `json:"accent"`
	Documents   []string `json:"documents"`
	Timeframe   string   `json:"timeframe"`
	Fees        string   `json:"fees"`
	IsExternal  bool     `json:"isExternal,omitempty"`
	ButtonLabel string   `json:"buttonLabel,omitempty"`
	Category    string   `json:"category,omitempty"`
}
