package models

import (
	"strings"
	"time"
)

// Department - административное подразделение, которому направляется инцидент
type Department struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	LogoURL     string `json:"logo_url,omitempty"`
}

type Category string

const (
	CategoryFlood    Category = "flood"
	CategoryLeakage  Category = "leakage"
	CategoryQuality  Category = "quality"
	CategoryScarcity Category = "scarcity"
	CategoryOther    Category = "other"
)

// Categories перечисляет категории в порядке отображения в форме
var Categories = []Category{CategoryFlood, CategoryLeakage, CategoryQuality, CategoryScarcity, CategoryOther}

var categoryLabels = map[Category]string{
	CategoryFlood:    "Flood",
	CategoryLeakage:  "Water Leakage",
	CategoryQuality:  "Water Quality",
	CategoryScarcity: "Water Scarcity",
	CategoryOther:    "Other",
}

// Label возвращает человекочитаемое название категории
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

type IncidentStatus string

const (
	StatusPending    IncidentStatus = "pending"
	StatusInProgress IncidentStatus = "in progress"
	StatusResolved   IncidentStatus = "resolved"
	StatusOther      IncidentStatus = "other"
)

// NormalizeStatus приводит строку статуса к известному значению; неизвестные -> StatusOther
func NormalizeStatus(raw string) IncidentStatus {
	switch IncidentStatus(strings.ToLower(strings.TrimSpace(raw))) {
	case StatusPending:
		return StatusPending
	case StatusInProgress:
		return StatusInProgress
	case StatusResolved:
		return StatusResolved
	default:
		return StatusOther
	}
}

// StatusColor возвращает CSS-классы бейджа статуса; неизвестный статус получает нейтральный цвет
func StatusColor(raw string) string {
	switch NormalizeStatus(raw) {
	case StatusPending:
		return "badge-yellow"
	case StatusInProgress:
		return "badge-blue"
	case StatusResolved:
		return "badge-green"
	default:
		return "badge-gray"
	}
}

// Incident - сохраненный backend инцидент, только для чтения
type Incident struct {
	ID          string      `json:"id"`
	Description string      `json:"description"`
	Status      string      `json:"status"`
	Category    Category    `json:"category"`
	Department  *Department `json:"department,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}

// DepartmentName возвращает название подразделения или "-"
func (i Incident) DepartmentName() string {
	if i.Department == nil || i.Department.Name == "" {
		return "-"
	}
	return i.Department.Name
}

// DraftImage - загруженное, но еще не отправленное фото
type DraftImage struct {
	Filename    string `json:"filename" validate:"required"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"data" validate:"required,min=1"`
}

// IncidentDraft - состояние формы создания инцидента до отправки
type IncidentDraft struct {
	Image        *DraftImage `json:"image,omitempty" validate:"required"`
	Location     string      `json:"location" validate:"required,latlng"`
	DepartmentID string      `json:"department_id" validate:"required"`
	Category     Category    `json:"category" validate:"required,oneof=flood leakage quality scarcity other"`
	Description  string      `json:"description" validate:"required"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// Trimmed возвращает копию черновика без пробелов по краям строковых полей
func (d *IncidentDraft) Trimmed() IncidentDraft {
	out := *d
	out.Location = strings.TrimSpace(d.Location)
	out.DepartmentID = strings.TrimSpace(d.DepartmentID)
	out.Category = Category(strings.TrimSpace(string(d.Category)))
	out.Description = strings.TrimSpace(d.Description)
	return out
}

type SubmissionState string

const (
	SubmissionIdle       SubmissionState = "idle"
	SubmissionValidating SubmissionState = "validating"
	SubmissionSubmitting SubmissionState = "submitting"
	SubmissionSucceeded  SubmissionState = "succeeded"
	SubmissionFailed     SubmissionState = "failed"
)
