package lookup

import (
	"context"
	"testing"

	"council-portal-api/internal/content"
	"council-portal-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubContent struct {
	news      []models.NewsItem
	services  []models.Service
	officials []models.Official
	calls     int
}

func (s *stubContent) News(context.Context) []models.NewsItem {
	s.calls++
	return s.news
}

func (s *stubContent) Services(context.Context) []models.Service {
	s.calls++
	return s.services
}

func (s *stubContent) Officials(context.Context) []models.Official {
	s.calls++
	return s.officials
}

func (s *stubContent) Departments(context.Context) []models.Department {
	s.calls++
	return []models.Department{}
}

func (s *stubContent) Stats(context.Context) []models.Stat {
	s.calls++
	return []models.Stat{}
}

func (s *stubContent) Downloads(context.Context) []models.DownloadItem {
	s.calls++
	return []models.DownloadItem{}
}

func (s *stubContent) Tenders(context.Context) []models.Tender {
	s.calls++
	return []models.Tender{}
}

func newStub() *stubContent {
	return &stubContent{
		services: []models.Service{
			{ID: "s1", Title: "Property Tax", Category: "Finance"},
			{ID: "s4", Title: "Water & Sewerage", Category: "Utilities"},
			{ID: "s5", Title: "Trade License", Category: "Commercial"},
			{ID: "s11", Title: "Meat Shop License", Category: "Commercial"},
			{ID: "s13", Title: "Advertising Permit", Category: "Commercial"},
			{ID: "s17", Title: "Street Vendor Reg.", Category: "Commercial"},
		},
		news: []models.NewsItem{
			{ID: "1", Title: "Extension of Interest Waiver Scheme", Category: "Notification"},
			{ID: "2", Title: "Survey for Street Vendors", Category: "Circular"},
		},
		officials: []models.Official{
			{ID: "o1", Name: "Sh. Devinder Kumar", Designation: "Executive Officer"},
			{ID: "o2", Name: "Sh. Mohan Lal", Designation: "Secretary"},
		},
	}
}

func TestGlobal_TyposStillMatch(t *testing.T) {
	res := New(newStub()).Global(context.Background(), "watr")
	require.Len(t, res.Services, 1)
	assert.Equal(t, "s4", res.Services[0].ID)
	assert.Empty(t, res.Officials)
}

func TestGlobal_SectionsAreCapped(t *testing.T) {
	res := New(newStub()).Global(context.Background(), "commercial")
	assert.Len(t, res.Services, globalServices)
	assert.Equal(t, "s5", res.Services[0].ID)
}

func TestGlobal_SpansSections(t *testing.T) {
	res := New(newStub()).Global(context.Background(), "vendor")
	assert.Len(t, res.Services, 1)
	assert.Len(t, res.News, 1)
	assert.False(t, res.Empty())
}

func TestGlobal_BlankQuery(t *testing.T) {
	stub := newStub()
	res := New(stub).Global(context.Background(), "   ")
	assert.True(t, res.Empty())
	assert.NotNil(t, res.Services)
	assert.Zero(t, stub.calls)
}

func TestFilter(t *testing.T) {
	s := New(newStub())

	got, err := s.Filter(context.Background(), "officials", "secretry")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "o2", got.([]models.Official)[0].ID)

	all, err := s.Filter(context.Background(), "news", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = s.Filter(context.Background(), "passwords", "x")
	require.ErrorIs(t, err, ErrUnknownResource)
}

func TestFilter_EveryResourceKnown(t *testing.T) {
	s := New(newStub())
	for _, r := range Resources {
		_, err := s.Filter(context.Background(), r, "")
		require.NoError(t, err, r)
	}
}

func TestResources_MatchCachedKeys(t *testing.T) {
	require.ElementsMatch(t, content.CachedKeys, Resources)
}
