package models

import (
	"time"

	"github.com/google/uuid"
)

// User - непрозрачная запись пользователя, как ее вернул backend
type User struct {
	ID    string `json:"_id,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// LoginResult - ответ backend на POST /login
type LoginResult struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// Session хранит текущего пользователя и bearer-токен backend
type Session struct {
	ID        uuid.UUID `json:"id"`
	User      *User     `json:"user"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
}

// Email возвращает email пользователя сессии или пустую строку
func (s *Session) Email() string {
	if s == nil || s.User == nil {
		return ""
	}
	return s.User.Email
}
