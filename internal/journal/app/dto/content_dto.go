package dto

import (
	"time"

	"devjournal/internal/journal/domain/entities"
)

// InsightRequest содержит данные для создания заметки.
type InsightRequest struct {
	Title   string   `json:"title"`
	Excerpt string   `json:"excerpt"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// UpdateInsightRequest содержит частичное обновление заметки.
type UpdateInsightRequest struct {
	Title   *string   `json:"title"`
	Excerpt *string   `json:"excerpt"`
	Content *string   `json:"content"`
	Tags    *[]string `json:"tags"`
}

// Insight представляет заметку.
type Insight struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content"`
	Tags        []string  `json:"tags"`
	PublishedAt time.Time `json:"publishedAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (r *InsightRequest) ToInput() entities.InsightInput {
	return entities.InsightInput{Title: r.Title, Excerpt: r.Excerpt, Content: r.Content, Tags: r.Tags}
}

func (r *UpdateInsightRequest) ToPatch() entities.InsightPatch {
	return entities.InsightPatch{
		Title:   entities.FromPtr(r.Title),
		Excerpt: entities.FromPtr(r.Excerpt),
		Content: entities.FromPtr(r.Content),
		Tags:    entities.FromPtr(r.Tags),
	}
}

func NewInsight(i *entities.Insight) *Insight {
	return &Insight{
		ID:          i.ID,
		Title:       i.Title,
		Excerpt:     i.Excerpt,
		Content:     i.Content,
		Tags:        i.Tags,
		PublishedAt: i.PublishedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

func NewInsights(items []*entities.Insight) []*Insight {
	out := make([]*Insight, 0, len(items))
	for _, i := range items {
		out = append(out, NewInsight(i))
	}
	return out
}

// DiaryEntryRequest содержит данные для новой записи дневника.
type DiaryEntryRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// UpdateDiaryEntryRequest содержит частичное обновление записи дневника.
type UpdateDiaryEntryRequest struct {
	Title   *string   `json:"title"`
	Content *string   `json:"content"`
	Tags    *[]string `json:"tags"`
}

// DiaryEntry представляет запись дневника.
type DiaryEntry struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	Date      time.Time `json:"date"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (r *DiaryEntryRequest) ToInput() entities.DiaryEntryInput {
	return entities.DiaryEntryInput{Title: r.Title, Content: r.Content, Tags: r.Tags}
}

func (r *UpdateDiaryEntryRequest) ToPatch() entities.DiaryEntryPatch {
	return entities.DiaryEntryPatch{
		Title:   entities.FromPtr(r.Title),
		Content: entities.FromPtr(r.Content),
		Tags:    entities.FromPtr(r.Tags),
	}
}

func NewDiaryEntry(e *entities.DiaryEntry) *DiaryEntry {
	return &DiaryEntry{
		ID:        e.ID,
		Title:     e.Title,
		Content:   e.Content,
		Tags:      e.Tags,
		Date:      e.Date,
		UpdatedAt: e.UpdatedAt,
	}
}

func NewDiaryEntries(items []*entities.DiaryEntry) []*DiaryEntry {
	out := make([]*DiaryEntry, 0, len(items))
	for _, e := range items {
		out = append(out, NewDiaryEntry(e))
	}
	return out
}

// TutorialRequest содержит данные для нового урока.
type TutorialRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Language    string `json:"language"`
	Difficulty  string `json:"difficulty"`
	Duration    string `json:"duration"`
}

// UpdateTutorialRequest содержит частичное обновление урока.
type UpdateTutorialRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Content     *string `json:"content"`
	Language    *string `json:"language"`
	Difficulty  *string `json:"difficulty"`
	Duration    *string `json:"duration"`
}

// Tutorial представляет урок.
type Tutorial struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	Language    string    `json:"language"`
	Difficulty  string    `json:"difficulty"`
	Duration    string    `json:"duration"`
	PublishedAt time.Time `json:"publishedAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (r *TutorialRequest) ToInput() entities.TutorialInput {
	return entities.TutorialInput{
		Title:       r.Title,
		Description: r.Description,
		Content:     r.Content,
		Language:    r.Language,
		Difficulty:  entities.Difficulty(r.Difficulty),
		Duration:    r.Duration,
	}
}

func (r *UpdateTutorialRequest) ToPatch() entities.TutorialPatch {
	patch := entities.TutorialPatch{
		Title:       entities.FromPtr(r.Title),
		Description: entities.FromPtr(r.Description),
		Content:     entities.FromPtr(r.Content),
		Language:    entities.FromPtr(r.Language),
		Duration:    entities.FromPtr(r.Duration),
	}
	if r.Difficulty != nil {
		patch.Difficulty = entities.Some(entities.Difficulty(*r.Difficulty))
	}
	return patch
}

func NewTutorial(t *entities.Tutorial) *Tutorial {
	return &Tutorial{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Content:     t.Content,
		Language:    t.Language,
		Difficulty:  string(t.Difficulty),
		Duration:    t.Duration,
		PublishedAt: t.PublishedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func NewTutorials(items []*entities.Tutorial) []*Tutorial {
	out := make([]*Tutorial, 0, len(items))
	for _, t := range items {
		out = append(out, NewTutorial(t))
	}
	return out
}
