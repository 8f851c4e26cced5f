package update_venue_config

import "github.com/m04kA/TRP-AvailabilityService/internal/service/venueconfig/models"

// UpdateConfigRequest HTTP request model
// Секции policy и schedule опциональны - обновляются только переданные
type UpdateConfigRequest struct {
	Policy   *models.UpdatePolicyBody `json:"policy,omitempty"`
	Schedule *models.WeekScheduleBody `json:"schedule,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateConfigRequest) ToServiceRequest(userID int64) *models.UpdateConfigRequest {
	return &models.UpdateConfigRequest{
		UserID:   userID,
		Policy:   r.Policy,
		Schedule: r.Schedule,
	}
}
