package snapshot

import (
	"time"

	"devjournal/internal/journal/domain/entities"
)

// timeLayout совпадает с ISO-8601 в UTC с миллисекундами.
const timeLayout = "2006-01-02T15:04:05.000Z07:00"

var parseLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// document - формат файла снимка.
type document struct {
	Users        map[string]userRecord     `json:"users"`
	Insights     map[string]insightRecord  `json:"insights"`
	DiaryEntries map[string]diaryRecord    `json:"diaryEntries"`
	Tutorials    map[string]tutorialRecord `json:"tutorials"`
}

type userRecord struct {
	ID              string  `json:"id"`
	Username        string  `json:"username"`
	Password        string  `json:"password"`
	Email           *string `json:"email"`
	FirstName       *string `json:"firstName"`
	LastName        *string `json:"lastName"`
	ProfileImageURL *string `json:"profileImageUrl"`
	CreatedAt       *string `json:"createdAt"`
	UpdatedAt       *string `json:"updatedAt"`
}

type insightRecord struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Excerpt     string   `json:"excerpt"`
	Content     string   `json:"content"`
	Tags        []string `json:"tags"`
	PublishedAt *string  `json:"publishedAt"`
	UpdatedAt   *string  `json:"updatedAt"`
}

type diaryRecord struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags"`
	Date      *string  `json:"date"`
	UpdatedAt *string  `json:"updatedAt"`
}

type tutorialRecord struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Content     string  `json:"content"`
	Language    string  `json:"language"`
	Difficulty  string  `json:"difficulty"`
	Duration    string  `json:"duration"`
	PublishedAt *string `json:"publishedAt"`
	UpdatedAt   *string `json:"updatedAt"`
}

// decoder переводит записи файла в сущности.
// Отсутствующие и нераспознанные даты заменяются на now.
type decoder struct {
	now time.Time
}

func (d decoder) timestamp(s *string) time.Time {
	if s == nil || *s == "" {
		return d.now
	}
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, *s); err == nil {
			return t
		}
	}
	return d.now
}

func encodeTime(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.UTC().Format(timeLayout)
	return &s
}

func tags(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

// idOr отдает предпочтение ключу коллекции перед полем id записи.
func idOr(key, recordID string) string {
	if key != "" {
		return key
	}
	return recordID
}

func (d decoder) dataset(doc *document) *entities.Dataset {
	data := entities.NewDataset()

	for key, r := range doc.Users {
		id := idOr(key, r.ID)
		data.Users[id] = &entities.User{
			ID:              id,
			Username:        r.Username,
			Password:        r.Password,
			Email:           r.Email,
			FirstName:       r.FirstName,
			LastName:        r.LastName,
			ProfileImageURL: r.ProfileImageURL,
			CreatedAt:       d.timestamp(r.CreatedAt),
			UpdatedAt:       d.timestamp(r.UpdatedAt),
		}
	}
	for key, r := range doc.Insights {
		id := idOr(key, r.ID)
		data.Insights[id] = &entities.Insight{
			ID:          id,
			Title:       r.Title,
			Excerpt:     r.Excerpt,
			Content:     r.Content,
			Tags:        tags(r.Tags),
			PublishedAt: d.timestamp(r.PublishedAt),
			UpdatedAt:   d.timestamp(r.UpdatedAt),
		}
	}
	for key, r := range doc.DiaryEntries {
		id := idOr(key, r.ID)
		data.DiaryEntries[id] = &entities.DiaryEntry{
			ID:        id,
			Title:     r.Title,
			Content:   r.Content,
			Tags:      tags(r.Tags),
			Date:      d.timestamp(r.Date),
			UpdatedAt: d.timestamp(r.UpdatedAt),
		}
	}
	for key, r := range doc.Tutorials {
		id := idOr(key, r.ID)
		data.Tutorials[id] = &entities.Tutorial{
			ID:          id,
			Title:       r.Title,
			Description: r.Description,
			Content:     r.Content,
			Language:    r.Language,
			Difficulty:  entities.Difficulty(r.Difficulty),
			Duration:    r.Duration,
			PublishedAt: d.timestamp(r.PublishedAt),
			UpdatedAt:   d.timestamp(r.UpdatedAt),
		}
	}

	return data
}

func encode(data *entities.Dataset) *document {
	doc := &document{
		Users:        make(map[string]userRecord, len(data.Users)),
		Insights:     make(map[string]insightRecord, len(data.Insights)),
		DiaryEntries: make(map[string]diaryRecord, len(data.DiaryEntries)),
		Tutorials:    make(map[string]tutorialRecord, len(data.Tutorials)),
	}

	for id, u := range data.Users {
		doc.Users[id] = userRecord{
			ID:              u.ID,
			Username:        u.Username,
			Password:        u.Password,
			Email:           u.Email,
			FirstName:       u.FirstName,
			LastName:        u.LastName,
			ProfileImageURL: u.ProfileImageURL,
			CreatedAt:       encodeTime(u.CreatedAt),
			UpdatedAt:       encodeTime(u.UpdatedAt),
		}
	}
	for id, i := range data.Insights {
		doc.Insights[id] = insightRecord{
			ID:          i.ID,
			Title:       i.Title,
			Excerpt:     i.Excerpt,
			Content:     i.Content,
			Tags:        tags(i.Tags),
			PublishedAt: encodeTime(i.PublishedAt),
			UpdatedAt:   encodeTime(i.UpdatedAt),
		}
	}
	for id, e := range data.DiaryEntries {
		doc.DiaryEntries[id] = diaryRecord{
			ID:        e.ID,
			Title:     e.Title,
			Content:   e.Content,
			Tags:      tags(e.Tags),
			Date:      encodeTime(e.Date),
			UpdatedAt: encodeTime(e.UpdatedAt),
		}
	}
	for id, t := range data.Tutorials {
		doc.Tutorials[id] = tutorialRecord{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Content:     t.Content,
			Language:    t.Language,
			Difficulty:  string(t.Difficulty),
			Duration:    t.Duration,
			PublishedAt: encodeTime(t.PublishedAt),
			UpdatedAt:   encodeTime(t.UpdatedAt),
		}
	}

	return doc
}
