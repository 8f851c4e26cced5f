package get_date_availability

import (
	"context"

	getDateAvailability "github.com/m04kA/TRP-AvailabilityService/internal/usecase/get_date_availability"
)

type GetDateAvailabilityUseCase interface {
	Execute(ctx context.Context, req *getDateAvailability.Request) (*getDateAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
