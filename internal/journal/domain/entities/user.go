package entities

import "time"

// User представляет учетную запись.
// Password хранит хэш и никогда не покидает сервис в ответах.
type User struct {
	ID              string
	Username        string
	Password        string
	Email           *string
	FirstName       *string
	LastName        *string
	ProfileImageURL *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// UserRegistration содержит поля новой учетной записи с уже захэшированным паролем.
type UserRegistration struct {
	Username        string
	Password        string
	Email           *string
	FirstName       *string
	LastName        *string
	ProfileImageURL *string
}

// UserUpsert содержит данные пользователя с заранее известным идентификатором.
type UserUpsert struct {
	ID              string
	Username        string
	Password        string
	Email           *string
	FirstName       *string
	LastName        *string
	ProfileImageURL *string
}

// UserPatch описывает частичное обновление пользователя.
type UserPatch struct {
	Username        Optional[string]
	Password        Optional[string]
	Email           Optional[*string]
	FirstName       Optional[*string]
	LastName        Optional[*string]
	ProfileImageURL Optional[*string]
}

// ApplyTo переносит переданные поля в u.
func (p UserPatch) ApplyTo(u *User) {
	p.Username.Apply(&u.Username)
	p.Password.Apply(&u.Password)
	if v, ok := p.Email.Get(); ok {
		u.Email = cloneString(v)
	}
	if v, ok := p.FirstName.Get(); ok {
		u.FirstName = cloneString(v)
	}
	if v, ok := p.LastName.Get(); ok {
		u.LastName = cloneString(v)
	}
	if v, ok := p.ProfileImageURL.Get(); ok {
		u.ProfileImageURL = cloneString(v)
	}
}

// Clone возвращает независимую копию.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.Email = cloneString(u.Email)
	c.FirstName = cloneString(u.FirstName)
	c.LastName = cloneString(u.LastName)
	c.ProfileImageURL = cloneString(u.ProfileImageURL)
	return &c
}

// PrimaryTime возвращает время сортировки.
func (u *User) PrimaryTime() time.Time { return u.CreatedAt }

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
