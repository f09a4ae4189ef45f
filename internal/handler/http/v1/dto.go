package v1

import (
	"time"
)

// LoginRequest DTO для входа
// @Description DTO для входа
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse DTO пользователя backend
// @Description DTO пользователя backend
type UserResponse struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// LoginResponse DTO ответа на вход. SessionID передается дальше как Bearer
// @Description DTO ответа на вход
type LoginResponse struct {
	SessionID string        `json:"session_id"`
	User      *UserResponse `json:"user,omitempty"`
}

// DepartmentResponse DTO подразделения
// @Description DTO подразделения
type DepartmentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID            string    `json:"id"`
	Description   string    `json:"description"`
	Status        string    `json:"status"`
	StatusColor   string    `json:"status_color"`
	Category      string    `json:"category"`
	CategoryLabel string    `json:"category_label"`
	Department    string    `json:"department"`
	CreatedAt     time.Time `json:"created_at"`
}

// SubmissionResponse DTO результата отправки инцидента
// @Description DTO результата отправки инцидента
type SubmissionResponse struct {
	State string `json:"state"`
}

// LocationResolveRequest DTO отчета геолокации устройства
// @Description DTO отчета геолокации устройства
type LocationResolveRequest struct {
	Supported bool     `json:"supported"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Error     string   `json:"error,omitempty" validate:"omitempty,oneof=denied unavailable timeout unsupported"`
}

// LocationResolveResponse DTO результата разрешения геолокации
// @Description DTO результата разрешения геолокации
type LocationResolveResponse struct {
	Location      string `json:"location,omitempty"`
	FallbackToMap bool   `json:"fallback_to_map"`
	NoticeTitle   string `json:"notice_title,omitempty"`
	NoticeText    string `json:"notice_text,omitempty"`
}

// LocationPickRequest DTO точки, выбранной на карте
// @Description DTO точки, выбранной на карте
type LocationPickRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

// LocationPickResponse DTO закодированной точки "lat,lng"
// @Description DTO закодированной точки
type LocationPickResponse struct {
	Location string `json:"location"`
}
