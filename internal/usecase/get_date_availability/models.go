package get_date_availability

import "time"

// Причины недоступности даты
const (
	ReasonDateInPast   = "date is in the past"
	ReasonBeyondWindow = "date is beyond the advance booking window"
	ReasonVenueClosed  = "venue is closed on this day"
)

// Request модель запроса проверки доступности даты
type Request struct {
	VenueID int64     // ID заведения
	Date    time.Time // Проверяемая дата (без времени)
}

// Response модель ответа проверки доступности даты
// Грубый пре-фильтр перед перечислением слотов: закрытый день гарантированно
// не имеет слотов, согласованно с генератором слотов.
type Response struct {
	VenueID   int64
	Date      time.Time
	Available bool
	Reason    string // Пустая строка, если дата доступна
}
