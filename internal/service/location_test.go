package service

import (
	"testing"

	"github.com/jaldristi/jaldristi_web/internal/config"
	"github.com/jaldristi/jaldristi_web/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestResolve_DeviceCoordinates(t *testing.T) {
	service := NewLocationService(newTestLogger(), newTestConfig())

	res := service.Resolve(models.DeviceLocation{Supported: true, Latitude: ptr(12.9716), Longitude: ptr(77.5946)})

	assert.False(t, res.FallbackToMap)
	assert.Equal(t, "12.9716,77.5946", res.Location)
}

func TestResolve_FallbackToMap(t *testing.T) {
	service := NewLocationService(newTestLogger(), newTestConfig())

	tests := []struct {
		name   string
		report models.DeviceLocation
		title  string
	}{
		{name: "denied", report: models.DeviceLocation{Supported: true, Error: models.GeoErrorDenied}, title: "Location access failed"},
		{name: "timeout", report: models.DeviceLocation{Supported: true, Error: models.GeoErrorTimeout}, title: "Location access failed"},
		{name: "no coordinates", report: models.DeviceLocation{Supported: true}, title: "Location access failed"},
		{name: "out of range", report: models.DeviceLocation{Supported: true, Latitude: ptr(120), Longitude: ptr(10)}, title: "Location access failed"},
		{name: "unsupported", report: models.DeviceLocation{Supported: false}, title: "Geolocation not supported"},
		{name: "unsupported error code", report: models.DeviceLocation{Supported: true, Error: models.GeoErrorUnsupported}, title: "Geolocation not supported"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := service.Resolve(tt.report)
			assert.True(t, res.FallbackToMap)
			assert.Empty(t, res.Location)
			assert.Equal(t, tt.title, res.NoticeTitle)
			assert.Equal(t, "Please choose a location on the map.", res.NoticeText)
		})
	}
}

func TestPickOnMap(t *testing.T) {
	service := NewLocationService(newTestLogger(), newTestConfig())

	location, err := service.PickOnMap(19.076, 72.8777)
	require.NoError(t, err)
	assert.Equal(t, "19.076,72.8777", location)

	coords, err := models.ParseLocation(location)
	require.NoError(t, err)
	assert.Equal(t, 19.076, coords.Latitude)
}

func TestPickOnMap_Invalid(t *testing.T) {
	service := NewLocationService(newTestLogger(), newTestConfig())

	_, err := service.PickOnMap(-95, 10)
	assert.ErrorIs(t, err, ErrInvalidCoordinates)

	_, err = service.PickOnMap(10, 200)
	assert.ErrorIs(t, err, ErrInvalidCoordinates)
}

func TestMapSettings_Defaults(t *testing.T) {
	service := NewLocationService(newTestLogger(), newTestConfig())

	settings := service.MapSettings()
	assert.Equal(t, 20.5937, settings.CenterLat)
	assert.Equal(t, 78.9629, settings.CenterLng)
	assert.Equal(t, 5, settings.Zoom)
	assert.Equal(t, config.DefaultMapTileURL, settings.TileURL)
	assert.Contains(t, settings.Attribution, "OpenStreetMap")
}
