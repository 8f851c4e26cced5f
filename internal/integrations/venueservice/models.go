package venueservice

// Venue модель заведения из каталога VenueService
type Venue struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	TimeZone   string  `json:"time_zone"`
	IsActive   bool    `json:"is_active"`
	ManagerIDs []int64 `json:"manager_ids"`
}

// IsManagedBy возвращает true, если пользователь является менеджером заведения
func (v *Venue) IsManagedBy(userID int64) bool {
	for _, id := range v.ManagerIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// ErrorResponse модель ошибки от VenueService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
