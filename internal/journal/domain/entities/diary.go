package entities

import "time"

// DiaryEntry представляет запись дневника.
type DiaryEntry struct {
	ID        string
	Title     string
	Content   string
	Tags      []string
	Date      time.Time
	UpdatedAt time.Time
}

// DiaryEntryInput содержит поля новой записи.
type DiaryEntryInput struct {
	Title   string
	Content string
	Tags    []string
}

// DiaryEntryPatch описывает частичное обновление записи.
type DiaryEntryPatch struct {
	Title   Optional[string]
	Content Optional[string]
	Tags    Optional[[]string]
}

func (p DiaryEntryPatch) ApplyTo(e *DiaryEntry) {
	p.Title.Apply(&e.Title)
	p.Content.Apply(&e.Content)
	if tags, ok := p.Tags.Get(); ok {
		e.Tags = cloneTags(tags)
	}
}

func (e *DiaryEntry) Clone() *DiaryEntry {
	if e == nil {
		return nil
	}
	c := *e
	c.Tags = cloneTags(e.Tags)
	return &c
}

func (e *DiaryEntry) PrimaryTime() time.Time { return e.Date }
