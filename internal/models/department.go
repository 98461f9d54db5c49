package models

// DepartmentStaff is one named employee of a department
type DepartmentStaff struct {
	ID           uint   `gorm:"primaryKey"`
	DepartmentID string `gorm:"column:department_id;index;not null"`
	Name         string `gorm:"not null"`
}

// TableName specifies the table name for DepartmentStaff Model
func (DepartmentStaff) TableName() string {
	return TableDepartmentStaff
}

// DepartmentAct is one act or rule a department administers
type DepartmentAct struct {
	ID           uint   `gorm:"primaryKey"`
	DepartmentID string `gorm:"column:department_id;index;not null"`
	ActName      string `gorm:"column:act_name;not null"`
}

// TableName specifies the table name for DepartmentAct Model
func (DepartmentAct) TableName() string {
	return TableDepartmentActs
}

// DepartmentRecord is a council wing as stored remotely, with staff and acts
// in related tables.
type DepartmentRecord struct {
	ID          string `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Icon        string
	Description string
	Incharge    string
	Designation string
	Staff       []DepartmentStaff `gorm:"foreignKey:DepartmentID"`
	Acts        []DepartmentAct   `gorm:"foreignKey:DepartmentID"`
}

// TableName specifies the table name for DepartmentRecord Model
func (DepartmentRecord) TableName() string {
	return TableDepartments
}

// Department is the flat shape of a council wing returned to callers
type Department struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Icon        string   `json:"icon"`
	Description string   `json:"description"`
	Incharge    string   `json:"incharge"`
	Designation string   `json:"designation"`
	Employees   []string `json:"employees"`
	Acts        []string `json:"acts"`
}
