package venueconfig

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/TRP-AvailabilityService/internal/domain"
	configRepo "github.com/m04kA/TRP-AvailabilityService/internal/infra/storage/venueconfig"
	venueClient "github.com/m04kA/TRP-AvailabilityService/internal/integrations/venueservice"
	"github.com/m04kA/TRP-AvailabilityService/internal/service/venueconfig/models"
)

// Service сервис для работы с конфигурацией заведения:
// политика бронирования и расписание работы
type Service struct {
	configRepo  ConfigRepository
	venueClient VenueServiceClient
	logger      Logger
}

// NewService создает новый экземпляр сервиса конфигурации
func NewService(
	configRepo ConfigRepository,
	venueClient VenueServiceClient,
	logger Logger,
) *Service {
	return &Service{
		configRepo:  configRepo,
		venueClient: venueClient,
		logger:      logger,
	}
}

// Get получает конфигурацию заведения
// Публичный метод - доступен всем
// Если политика или расписание не настроены, возвращает дефолтную политику
// и пустое расписание (все дни закрыты)
func (s *Service) Get(ctx context.Context, venueID int64) (*models.ConfigResponse, error) {
	s.logger.Info("Get: fetching config for venue=%d", venueID)

	// Проверяем существование заведения
	if _, err := s.venueClient.GetVenue(ctx, venueID); err != nil {
		if errors.Is(err, venueClient.ErrVenueNotFound) {
			s.logger.Warn("Get: venue id=%d not found", venueID)
			return nil, ErrVenueNotFound
		}
		s.logger.Error("Get: failed to get venue id=%d: %v", venueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	// Политика: если не настроена, подставляем дефолтную
	isDefault := false
	policy, err := s.configRepo.GetPolicy(ctx, venueID)
	if err != nil {
		if !errors.Is(err, configRepo.ErrPolicyNotFound) {
			s.logger.Error("Get: repository error for venue=%d: %v", venueID, err)
			return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
		}
		policy = domain.DefaultBookingPolicy(venueID)
		isDefault = true
	}

	// Расписание: отсутствие означает "все дни закрыты"
	schedule, err := s.configRepo.GetWeekSchedule(ctx, venueID)
	if err != nil && !errors.Is(err, configRepo.ErrScheduleNotFound) {
		s.logger.Error("Get: repository error for venue=%d: %v", venueID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Get: successfully fetched config for venue=%d (default policy: %t)", venueID, isDefault)
	return &models.ConfigResponse{
		VenueID:  venueID,
		Policy:   models.FromDomainPolicy(policy, isDefault),
		Schedule: models.FromDomainSchedule(schedule),
	}, nil
}

// Update обновляет конфигурацию заведения
// Доступно только менеджерам заведения
// Поддерживает частичное обновление: секции policy и schedule независимы,
// внутри policy обновляются только переданные поля
func (s *Service) Update(ctx context.Context, venueID int64, req *models.UpdateConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("Update: updating config for venue=%d by user=%d", venueID, req.UserID)

	if req.Policy == nil && req.Schedule == nil {
		s.logger.Warn("Update: empty update request for venue=%d", venueID)
		return nil, fmt.Errorf("%w: at least one of policy or schedule is required", ErrInvalidInput)
	}

	// 1. Проверяем права доступа (только менеджер заведения)
	if err := s.checkManagerAccess(ctx, venueID, req.UserID); err != nil {
		return nil, err
	}

	// 2. Обновляем политику, если передана
	if req.Policy != nil {
		// Берем существующую политику или дефолтную как основу
		policy, err := s.configRepo.GetPolicy(ctx, venueID)
		if err != nil {
			if !errors.Is(err, configRepo.ErrPolicyNotFound) {
				s.logger.Error("Update: repository error for venue=%d: %v", venueID, err)
				return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
			}
			policy = domain.DefaultBookingPolicy(venueID)
		}

		req.Policy.ApplyToPolicy(policy)

		// Валидируем результат слияния
		if err := policy.Validate(); err != nil {
			s.logger.Warn("Update: policy validation failed for venue=%d: %v", venueID, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		if _, err := s.configRepo.UpsertPolicy(ctx, policy); err != nil {
			s.logger.Error("Update: failed to upsert policy for venue=%d: %v", venueID, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	// 3. Обновляем расписание, если передано
	if req.Schedule != nil {
		schedule, err := req.Schedule.ToDomainSchedule()
		if err != nil {
			s.logger.Warn("Update: invalid schedule for venue=%d: %v", venueID, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		// Валидируем расписание: открытый день требует open < close
		if err := schedule.Validate(); err != nil {
			s.logger.Warn("Update: schedule validation failed for venue=%d: %v", venueID, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		if err := s.configRepo.ReplaceWeekSchedule(ctx, venueID, schedule); err != nil {
			s.logger.Error("Update: failed to replace schedule for venue=%d: %v", venueID, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Update: successfully updated config for venue=%d", venueID)

	// 4. Возвращаем актуальную конфигурацию
	return s.Get(ctx, venueID)
}

// checkManagerAccess проверяет, что пользователь является менеджером заведения
func (s *Service) checkManagerAccess(ctx context.Context, venueID int64, userID int64) error {
	venue, err := s.venueClient.GetVenue(ctx, venueID)
	if err != nil {
		if errors.Is(err, venueClient.ErrVenueNotFound) {
			s.logger.Warn("checkManagerAccess: venue id=%d not found", venueID)
			return ErrVenueNotFound
		}
		s.logger.Error("checkManagerAccess: failed to get venue id=%d: %v", venueID, err)
		return fmt.Errorf("%w: checkManagerAccess - failed to get venue: %v", ErrInternal, err)
	}

	if venue.IsManagedBy(userID) {
		return nil
	}

	s.logger.Warn("checkManagerAccess: user=%d is not a manager of venue=%d", userID, venueID)
	return ErrAccessDenied
}
