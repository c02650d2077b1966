package entities

import "time"

// Difficulty - уровень сложности урока.
type Difficulty string

// Допустимые уровни сложности.
const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Valid сообщает, входит ли значение в перечисление.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	default:
		return false
	}
}

// Tutorial представляет обучающий материал.
type Tutorial struct {
	ID          string
	Title       string
	Description string
	Content     string
	Language    string
	Difficulty  Difficulty
	Duration    string
	PublishedAt time.Time
	UpdatedAt   time.Time
}

// TutorialInput содержит поля нового урока.
type TutorialInput struct {
	Title       string
	Description string
	Content     string
	Language    string
	Difficulty  Difficulty
	Duration    string
}

// TutorialPatch описывает частичное обновление урока.
type TutorialPatch struct {
	Title       Optional[string]
	Description Optional[string]
	Content     Optional[string]
	Language    Optional[string]
	Difficulty  Optional[Difficulty]
	Duration    Optional[string]
}

func (p TutorialPatch) ApplyTo(t *Tutorial) {
	p.Title.Apply(&t.Title)
	p.Description.Apply(&t.Description)
	p.Content.Apply(&t.Content)
	p.Language.Apply(&t.Language)
	p.Difficulty.Apply(&t.Difficulty)
	p.Duration.Apply(&t.Duration)
}

func (t *Tutorial) Clone() *Tutorial {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func (t *Tutorial) PrimaryTime() time.Time { return t.PublishedAt }
