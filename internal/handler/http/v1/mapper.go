package v1

import "github.com/jaldristi/jaldristi_web/internal/models"

// ModelToLoginResponse преобразует сессию в DTO ответа на вход
func ModelToLoginResponse(session *models.Session) *LoginResponse {
	resp := &LoginResponse{SessionID: session.ID.String()}
	if session.User != nil {
		resp.User = &UserResponse{
			ID:    session.User.ID,
			Name:  session.User.Name,
			Email: session.User.Email,
		}
	}
	return resp
}

// ModelsToDepartmentResponses преобразует слайс подразделений в слайс DTO
func ModelsToDepartmentResponses(departments []models.Department) []DepartmentResponse {
	responses := make([]DepartmentResponse, len(departments))
	for i, d := range departments {
		responses[i] = DepartmentResponse{ID: d.ID, Name: d.Name}
	}
	return responses
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model models.Incident) IncidentResponse {
	return IncidentResponse{
		ID:            model.ID,
		Description:   model.Description,
		Status:        model.Status,
		StatusColor:   models.StatusColor(model.Status),
		Category:      string(model.Category),
		CategoryLabel: model.Category.Label(),
		Department:    model.DepartmentName(),
		CreatedAt:     model.CreatedAt,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(incidents []models.Incident) []IncidentResponse {
	responses := make([]IncidentResponse, len(incidents))
	for i, model := range incidents {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

// DTOToDeviceLocation преобразует отчет устройства в доменную модель
func DTOToDeviceLocation(dto LocationResolveRequest) models.DeviceLocation {
	return models.DeviceLocation{
		Supported: dto.Supported,
		Latitude:  dto.Latitude,
		Longitude: dto.Longitude,
		Error:     dto.Error,
	}
}

// ModelToLocationResolveResponse преобразует результат разрешения геолокации в DTO
func ModelToLocationResolveResponse(res models.LocationResolution) LocationResolveResponse {
	return LocationResolveResponse{
		Location:      res.Location,
		FallbackToMap: res.FallbackToMap,
		NoticeTitle:   res.NoticeTitle,
		NoticeText:    res.NoticeText,
	}
}
