package entities

import (
	"slices"
	"time"
)

// Insight представляет статью-заметку.
type Insight struct {
	ID          string
	Title       string
	Excerpt     string
	Content     string
	Tags        []string
	PublishedAt time.Time
	UpdatedAt   time.Time
}

// InsightInput содержит поля новой заметки.
type InsightInput struct {
	Title   string
	Excerpt string
	Content string
	Tags    []string
}

// InsightPatch описывает частичное обновление заметки.
type InsightPatch struct {
	Title   Optional[string]
	Excerpt Optional[string]
	Content Optional[string]
	Tags    Optional[[]string]
}

// ApplyTo переносит переданные поля в i.
func (p InsightPatch) ApplyTo(i *Insight) {
	p.Title.Apply(&i.Title)
	p.Excerpt.Apply(&i.Excerpt)
	p.Content.Apply(&i.Content)
	if tags, ok := p.Tags.Get(); ok {
		i.Tags = cloneTags(tags)
	}
}

// Clone возвращает независимую копию.
func (i *Insight) Clone() *Insight {
	if i == nil {
		return nil
	}
	c := *i
	c.Tags = cloneTags(i.Tags)
	return &c
}

// PrimaryTime возвращает время сортировки.
func (i *Insight) PrimaryTime() time.Time { return i.PublishedAt }

// cloneTags копирует теги, nil превращается в пустой срез.
func cloneTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return slices.Clone(tags)
}
