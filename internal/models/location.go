package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidLocation = errors.New("invalid location")

// Coordinates - пара широта/долгота
type Coordinates struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

// String кодирует координаты в строку "lat,lng"
func (c Coordinates) String() string {
	return strconv.FormatFloat(c.Latitude, 'f', -1, 64) + "," + strconv.FormatFloat(c.Longitude, 'f', -1, 64)
}

// Valid проверяет диапазоны широты и долготы
func (c Coordinates) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 && c.Longitude >= -180 && c.Longitude <= 180
}

// ParseLocation разбирает строку "lat,lng" (допускается пробел после запятой)
func ParseLocation(location string) (Coordinates, error) {
	latRaw, lngRaw, ok := strings.Cut(location, ",")
	if !ok {
		return Coordinates{}, fmt.Errorf("%w: %q", ErrInvalidLocation, location)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latRaw), 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%w: latitude %q", ErrInvalidLocation, latRaw)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(lngRaw), 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%w: longitude %q", ErrInvalidLocation, lngRaw)
	}
	c := Coordinates{Latitude: lat, Longitude: lng}
	if !c.Valid() {
		return Coordinates{}, fmt.Errorf("%w: %q out of range", ErrInvalidLocation, location)
	}
	return c, nil
}

// Коды ошибок geolocation API браузера
const (
	GeoErrorDenied      = "denied"
	GeoErrorUnavailable = "unavailable"
	GeoErrorTimeout     = "timeout"
	GeoErrorUnsupported = "unsupported"
)

// DeviceLocation - отчет браузера о результате navigator.geolocation
type DeviceLocation struct {
	Supported bool     `json:"supported" form:"supported"`
	Latitude  *float64 `json:"latitude,omitempty" form:"latitude"`
	Longitude *float64 `json:"longitude,omitempty" form:"longitude"`
	Error     string   `json:"error,omitempty" form:"error"`
}

// LocationResolution - результат разрешения геолокации
type LocationResolution struct {
	Location      string `json:"location,omitempty"`
	FallbackToMap bool   `json:"fallback_to_map"`
	NoticeTitle   string `json:"notice_title,omitempty"`
	NoticeText    string `json:"notice_text,omitempty"`
}

// MapSettings - параметры карты для ручного выбора точки
type MapSettings struct {
	CenterLat   float64 `json:"center_lat"`
	CenterLng   float64 `json:"center_lng"`
	Zoom        int     `json:"zoom"`
	TileURL     string  `json:"tile_url"`
	Attribution string  `json:"attribution"`
}
