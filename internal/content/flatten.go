package content

import "council-portal-api/internal/models"

// Palette used for services whose category row is missing.
const (
	DefaultServiceColor  = "bg-slate-500"
	DefaultServiceAccent = "text-slate-500"
)

// FlattenService folds a service's category palette and document rows into
// the flat Service shape.
func FlattenService(r models.ServiceRecord) models.Service {
	s := models.Service{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Icon:        r.Icon,
		Link:        r.Link,
		Color:       DefaultServiceColor,
		Accent:      DefaultServiceAccent,
		Documents:   make([]string, 0, len(r.Documents)),
		Timeframe:   r.Timeframe,
		Fees:        r.Fees,
		IsExternal:  r.IsExternal,
		ButtonLabel: r.ButtonLabel,
		Category:    r.CategoryName,
	}
	if r.Category != nil {
		if r.Category.Color != "" {
			s.Color = r.Category.Color
		}
		if r.Category.Accent != "" {
			s.Accent = r.Category.Accent
		}
	}
	for _, d := range r.Documents {
		s.Documents = append(s.Documents, d.DocName)
	}
	return s
}

// FlattenDepartment folds a department's staff and act rows into name lists.
func FlattenDepartment(r models.DepartmentRecord) models.Department {
	d := models.Department{
		ID:          r.ID,
		Name:        r.Name,
		Icon:        r.Icon,
		Description: r.Description,
		Incharge:    r.Incharge,
		Designation: r.Designation,
		Employees:   make([]string, 0, len(r.Staff)),
		Acts:        make([]string, 0, len(r.Acts)),
	}
	for _, s := range r.Staff {
		d.Employees = append(d.Employees, s.Name)
	}
	for _, act := range r.Acts {
		d.Acts = append(d.Acts, act.ActName)
	}
	return d
}
