package content

import (
	"context"
	"strings"

	"council-portal-api/internal/models"
)

// SubmitFeedback validates and stores a citizen's feedback. Remote failures
// are returned unchanged so callers can tell a missing table from an outage.
func (a *Accessor) SubmitFeedback(ctx context.Context, in FeedbackInput) (models.Suggestion, error) {
	if err := a.check("feedback", in); err != nil {
		return models.Suggestion{}, err
	}

	s := models.Suggestion{
		ID:        a.newID(),
		Type:      in.Type,
		Message:   strings.TrimSpace(in.Message),
		Status:    models.SuggestionStatusNew,
		CreatedAt: a.now().UTC(),
	}
	if err := a.insert(ctx, models.TableSuggestions, &s); err != nil {
		return models.Suggestion{}, err
	}
	a.Invalidate(KeySuggestions)
	return s, nil
}

// PublishNews validates and stores a notice, then drops the cached news list
// so the next read refetches it.
func (a *Accessor) PublishNews(ctx context.Context, in NewsInput) (models.NewsItem, error) {
	if err := a.check("news", in); err != nil {
		return models.NewsItem{}, err
	}

	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = models.NewsCategoryNotification
	}
	link := in.Link
	if link == "" {
		link = "#"
	}
	n := models.NewsItem{
		ID:        a.newID(),
		Title:     strings.TrimSpace(in.Title),
		Date:      in.Date,
		Category:  category,
		Link:      link,
		Summary:   in.Summary,
		Content:   in.Content,
		CreatedAt: a.now().UTC(),
	}
	if err := a.insert(ctx, models.TableNews, &n); err != nil {
		return models.NewsItem{}, err
	}
	a.Invalidate(KeyNews)
	return n, nil
}

func (a *Accessor) insert(ctx context.Context, table string, record any) error {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()
	return a.src.InsertRecord(ctx, table, record)
}
