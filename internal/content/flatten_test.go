package content

import (
	"testing"

	"council-portal-api/internal/models"

	"github.com/stretchr/testify/require"
)

func TestFlattenService_CategoryWithoutPalette(t *testing.T) {
	s := FlattenService(models.ServiceRecord{
		ID:           "s1",
		CategoryName: "Health",
		Category:     &models.ServiceCategory{Name: "Health", Color: "bg-red-500"},
	})
	require.Equal(t, "bg-red-500", s.Color)
	require.Equal(t, DefaultServiceAccent, s.Accent)
	require.Equal(t, "Health", s.Category)
	require.NotNil(t, s.Documents)
}

func TestFlattenDepartment_Empty(t *testing.T) {
	d := FlattenDepartment(models.DepartmentRecord{ID: "d1", Name: "Health"})
	require.NotNil(t, d.Employees)
	require.NotNil(t, d.Acts)
}
