// Package lookup answers free-text queries over the portal's content by
// running the typo-tolerant matcher against collections read through the
// cached accessor.
package lookup

import (
	"context"
	"errors"
	"strings"

	"council-portal-api/internal/content"
	"council-portal-api/internal/models"
	"council-portal-api/internal/search"
)

// ErrUnknownResource is returned by Filter for a name Resources doesn't list.
var ErrUnknownResource = errors.New("unknown resource")

// Sections of a global search result are capped at these sizes.
const (
	globalServices  = 3
	globalNews      = 3
	globalOfficials = 2
)

// Content is the read side of the portal's data-access layer.
type Content interface {
	News(ctx context.Context) []models.NewsItem
	Services(ctx context.Context) []models.Service
	Officials(ctx context.Context) []models.Official
	Departments(ctx context.Context) []models.Department
	Stats(ctx context.Context) []models.Stat
	Downloads(ctx context.Context) []models.DownloadItem
	Tenders(ctx context.Context) []models.Tender
}

var (
	servicesMatcher = search.NewMatcher(
		func(s models.Service) string { return s.Title },
		func(s models.Service) string { return s.Description },
		func(s models.Service) string { return s.Category },
	)
	newsMatcher = search.NewMatcher(
		func(n models.NewsItem) string { return n.Title },
		func(n models.NewsItem) string { return n.Category },
	)
	officialsMatcher = search.NewMatcher(
		func(o models.Official) string { return o.Name },
		func(o models.Official) string { return o.Designation },
	)
	departmentsMatcher = search.NewMatcher(
		func(d models.Department) string { return d.Name },
		func(d models.Department) string { return d.Description },
		func(d models.Department) string { return d.Incharge },
	)
	statsMatcher = search.NewMatcher(
		func(s models.Stat) string { return s.Label },
	)
	downloadsMatcher = search.NewMatcher(
		func(d models.DownloadItem) string { return d.Title },
		func(d models.DownloadItem) string { return d.Category },
		func(d models.DownloadItem) string { return d.Description },
	)
	tendersMatcher = search.NewMatcher(
		func(t models.Tender) string { return t.Description },
		func(t models.Tender) string { return string(t.Status) },
	)
)

// Global is the result of a site-wide search.
type Global struct {
	Query     string            `json:"query"`
	Services  []models.Service  `json:"services"`
	News      []models.NewsItem `json:"news"`
	Officials []models.Official `json:"officials"`
}

// Empty reports whether no section found anything.
func (g Global) Empty() bool {
	return len(g.Services) == 0 && len(g.News) == 0 && len(g.Officials) == 0
}

// Service runs queries against a Content.
type Service struct {
	content Content
}

// New returns a Service reading from c.
func New(c Content) *Service {
	return &Service{content: c}
}

// Global searches services, news and officials and keeps the top few of each.
// A blank query returns empty sections rather than everything.
func (s *Service) Global(ctx context.Context, q string) Global {
	res := Global{
		Query:     q,
		Services:  []models.Service{},
		News:      []models.NewsItem{},
		Officials: []models.Official{},
	}
	if strings.TrimSpace(q) == "" {
		return res
	}
	res.Services = search.Limit(servicesMatcher.Match(q, s.content.Services(ctx)), globalServices)
	res.News = search.Limit(newsMatcher.Match(q, s.content.News(ctx)), globalNews)
	res.Officials = search.Limit(officialsMatcher.Match(q, s.content.Officials(ctx)), globalOfficials)
	return res
}

// Resources lists the names accepted by Filter.
var Resources = []string{
	content.KeyNews,
	content.KeyServices,
	content.KeyOfficials,
	content.KeyDepartments,
	content.KeyStats,
	content.KeyDownloads,
	content.KeyTenders,
}

// Filter returns the named collection narrowed to items matching q. An empty
// q returns the whole collection.
func (s *Service) Filter(ctx context.Context, resource, q string) (any, error) {
	switch resource {
	case content.KeyNews:
		return newsMatcher.Match(q, s.content.News(ctx)), nil
	case content.KeyServices:
		return servicesMatcher.Match(q, s.content.Services(ctx)), nil
	case content.KeyOfficials:
		return officialsMatcher.Match(q, s.content.Officials(ctx)), nil
	case content.KeyDepartments:
		return departmentsMatcher.Match(q, s.content.Departments(ctx)), nil
	case content.KeyStats:
		return statsMatcher.Match(q, s.content.Stats(ctx)), nil
	case content.KeyDownloads:
		return downloadsMatcher.Match(q, s.content.Downloads(ctx)), nil
	case content.KeyTenders:
		return tendersMatcher.Match(q, s.content.Tenders(ctx)), nil
	default:
		return nil, ErrUnknownResource
	}
}
