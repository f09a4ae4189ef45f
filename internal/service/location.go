package service

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/jaldristi/jaldristi_web/internal/config"
	"github.com/jaldristi/jaldristi_web/internal/models"
	"github.com/sirupsen/logrus"
)

const osmAttribution = `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors`

const pickOnMapNotice = "Please choose a location on the map."

var ErrInvalidCoordinates = errors.New("invalid coordinates")

// LocationService - разрешение геолокации: координаты устройства или выбор точки на карте
type LocationService interface {
	Resolve(report models.DeviceLocation) models.LocationResolution
	PickOnMap(lat, lng float64) (string, error)
	MapSettings() models.MapSettings
}

type locationService struct {
	logger   *logrus.Logger
	validate *validator.Validate
	settings models.MapSettings
}

func NewLocationService(logger *logrus.Logger, cfg *config.Config) LocationService {
	tileURL := cfg.MapTileURL
	if tileURL == "" {
		tileURL = config.DefaultMapTileURL
	}
	return &locationService{
		logger:   logger,
		validate: validator.New(),
		settings: models.MapSettings{
			CenterLat:   cfg.MapCenterLat,
			CenterLng:   cfg.MapCenterLng,
			Zoom:        cfg.MapZoom,
			TileURL:     tileURL,
			Attribution: osmAttribution,
		},
	}
}

// Resolve превращает отчет устройства в строку "lat,lng" или включает выбор на карте
func (s *locationService) Resolve(report models.DeviceLocation) models.LocationResolution {
	log := s.logger.WithFields(logrus.Fields{
		"service": "location",
		"method":  "Resolve",
	})

	if !report.Supported || report.Error == models.GeoErrorUnsupported {
		log.Info("Geolocation is not supported by the device")
		return models.LocationResolution{
			FallbackToMap: true,
			NoticeTitle:   "Geolocation not supported",
			NoticeText:    pickOnMapNotice,
		}
	}

	if report.Error == "" && report.Latitude != nil && report.Longitude != nil {
		coords := models.Coordinates{Latitude: *report.Latitude, Longitude: *report.Longitude}
		if err := s.validate.Struct(coords); err == nil {
			return models.LocationResolution{Location: coords.String()}
		}
		log.WithField("location", coords.String()).Warn("Device reported out-of-range coordinates")
	} else {
		log.WithField("geo_error", report.Error).Info("Error getting location")
	}

	return models.LocationResolution{
		FallbackToMap: true,
		NoticeTitle:   "Location access failed",
		NoticeText:    pickOnMapNotice,
	}
}

// PickOnMap кодирует точку, выбранную одним кликом по карте
func (s *locationService) PickOnMap(lat, lng float64) (string, error) {
	coords := models.Coordinates{Latitude: lat, Longitude: lng}
	if err := s.validate.Struct(coords); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidCoordinates, err)
	}
	return coords.String(), nil
}

func (s *locationService) MapSettings() models.MapSettings {
	return s.settings
}
