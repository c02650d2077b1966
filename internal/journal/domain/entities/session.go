package entities

import "time"

// Session связывает идентификатор сессии с пользователем на ограниченное время.
type Session struct {
	ID        string
	UserID    string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired сообщает, истекла ли сессия к моменту now.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// IssuedSession - результат входа: токен для клиента и срок его действия.
type IssuedSession struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
}
