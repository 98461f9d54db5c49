package content

import (
	"context"

	"council-portal-api/internal/models"
	"council-portal-api/internal/remote"
)

// Cache keys, one per resource collection.
const (
	KeyNews        = "news"
	KeyServices    = "services"
	KeyOfficials   = "officials"
	KeyDepartments = "departments"
	KeyStats       = "stats"
	KeyDownloads   = "downloads"
	KeyTenders     = "tenders"
	KeySuggestions = "suggestions"
)

// CachedKeys lists the keys of every cached collection.
var CachedKeys = []string{
	KeyNews,
	KeyServices,
	KeyOfficials,
	KeyDepartments,
	KeyStats,
	KeyDownloads,
	KeyTenders,
}

// newsLimit is how many notices the ticker shows.
const newsLimit = 10

var (
	serviceRelations    = []string{"Category", "Documents"}
	departmentRelations = []string{"Staff", "Acts"}
)

// FetchNews returns the latest notices, newest first.
func (a *Accessor) FetchNews(ctx context.Context) ([]models.NewsItem, error) {
	return cachedRead(ctx, a, KeyNews, collection[models.NewsItem](a.src, models.TableNews,
		remote.Query{OrderBy: "date desc", Limit: newsLimit}))
}

// News is FetchNews with failures served as an empty list.
func (a *Accessor) News(ctx context.Context) []models.NewsItem {
	items, err := a.FetchNews(ctx)
	return orEmpty(a, KeyNews, items, err)
}

// FetchServices returns every citizen service, flattened with its category
// palette and required documents.
func (a *Accessor) FetchServices(ctx context.Context) ([]models.Service, error) {
	return cachedRead(ctx, a, KeyServices, func(ctx context.Context) ([]models.Service, error) {
		var rows []models.ServiceRecord
		if err := a.src.FetchJoined(ctx, models.TableServices, serviceRelations, &rows); err != nil {
			return nil, err
		}
		out := make([]models.Service, 0, len(rows))
		for _, r := range rows {
			out = append(out, FlattenService(r))
		}
		return out, nil
	})
}

// Services is FetchServices with failures served as an empty list.
func (a *Accessor) Services(ctx context.Context) []models.Service {
	items, err := a.FetchServices(ctx)
	return orEmpty(a, KeyServices, items, err)
}

// FetchOfficials returns the officials directory in display priority order.
func (a *Accessor) FetchOfficials(ctx context.Context) ([]models.Official, error) {
	return cachedRead(ctx, a, KeyOfficials, collection[models.Official](a.src, models.TableOfficials,
		remote.Query{OrderBy: "priority asc"}))
}

// Officials is FetchOfficials with failures served as an empty list.
func (a *Accessor) Officials(ctx context.Context) []models.Official {
	items, err := a.FetchOfficials(ctx)
	return orEmpty(a, KeyOfficials, items, err)
}

// FetchDepartments returns every council wing with its staff and acts.
func (a *Accessor) FetchDepartments(ctx context.Context) ([]models.Department, error) {
	return cachedRead(ctx, a, KeyDepartments, func(ctx context.Context) ([]models.Department, error) {
		var rows []models.DepartmentRecord
		if err := a.src.FetchJoined(ctx, models.TableDepartments, departmentRelations, &rows); err != nil {
			return nil, err
		}
		out := make([]models.Department, 0, len(rows))
		for _, r := range rows {
			out = append(out, FlattenDepartment(r))
		}
		return out, nil
	})
}

// Departments is FetchDepartments with failures served as an empty list.
func (a *Accessor) Departments(ctx context.Context) []models.Department {
	items, err := a.FetchDepartments(ctx)
	return orEmpty(a, KeyDepartments, items, err)
}

// FetchStats returns the home page headline numbers.
func (a *Accessor) FetchStats(ctx context.Context) ([]models.Stat, error) {
	return cachedRead(ctx, a, KeyStats, collection[models.Stat](a.src, models.TableCityStats,
		remote.Query{OrderBy: "priority asc"}))
}

// Stats is FetchStats with failures served as an empty list.
func (a *Accessor) Stats(ctx context.Context) []models.Stat {
	items, err := a.FetchStats(ctx)
	return orEmpty(a, KeyStats, items, err)
}

// FetchDownloads returns the download centre listing.
func (a *Accessor) FetchDownloads(ctx context.Context) ([]models.DownloadItem, error) {
	return cachedRead(ctx, a, KeyDownloads, collection[models.DownloadItem](a.src, models.TableDownloads,
		remote.Query{}))
}

// Downloads is FetchDownloads with failures served as an empty list.
func (a *Accessor) Downloads(ctx context.Context) []models.DownloadItem {
	items, err := a.FetchDownloads(ctx)
	return orEmpty(a, KeyDownloads, items, err)
}

// FetchTenders returns tender notices, latest closing date first.
func (a *Accessor) FetchTenders(ctx context.Context) ([]models.Tender, error) {
	return cachedRead(ctx, a, KeyTenders, collection[models.Tender](a.src, models.TableTenders,
		remote.Query{OrderBy: "closing_date desc"}))
}

// Tenders is FetchTenders with failures served as an empty list.
func (a *Accessor) Tenders(ctx context.Context) []models.Tender {
	items, err := a.FetchTenders(ctx)
	return orEmpty(a, KeyTenders, items, err)
}

// Suggestions returns submitted feedback, newest first, for the admin
// console. It is never cached and never degrades: a missing table comes back
// as a remote error of KindNotProvisioned so the console can show setup
// instructions.
func (a *Accessor) Suggestions(ctx context.Context) ([]models.Suggestion, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	var rows []models.Suggestion
	err := a.src.FetchCollection(ctx, models.TableSuggestions, remote.Query{OrderBy: "created_at desc"}, &rows)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []models.Suggestion{}
	}
	return rows, nil
}
