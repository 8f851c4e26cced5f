// Package cache реализует in-memory кэш снапшотов загрузки зала
package cache

import (
	"fmt"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/m04kA/TRP-AvailabilityService/internal/domain"
	"github.com/m04kA/TRP-AvailabilityService/pkg/types"
)

// OccupancyCache кэш снапшотов загрузки с TTL
// Ключ - (заведение, дата, время); инвалидация выполняется на уровне дня,
// потому что любая запись бронирования может изменить все бакеты этой даты.
//
// Кэш - явная зависимость usecase'ов, а не глобальное состояние: он
// создается в main и передается по ссылке.
type OccupancyCache struct {
	store *gocache.Cache
}

// NewOccupancyCache создает кэш снапшотов с указанным TTL
func NewOccupancyCache(ttl time.Duration) *OccupancyCache {
	return &OccupancyCache{
		store: gocache.New(ttl, 2*ttl),
	}
}

// Get возвращает снапшот для бакета (venueID, date, time), если он закэширован
func (c *OccupancyCache) Get(venueID int64, date time.Time, timeOfDay types.TimeString) (*domain.OccupancySnapshot, bool) {
	value, found := c.store.Get(bucketKey(venueID, date, timeOfDay))
	if !found {
		return nil, false
	}

	snapshot, ok := value.(*domain.OccupancySnapshot)
	if !ok {
		return nil, false
	}
	return snapshot, true
}

// Set сохраняет снапшот для бакета с TTL по умолчанию
func (c *OccupancyCache) Set(venueID int64, date time.Time, timeOfDay types.TimeString, snapshot *domain.OccupancySnapshot) {
	c.store.SetDefault(bucketKey(venueID, date, timeOfDay), snapshot)
}

// InvalidateDay удаляет все закэшированные бакеты заведения за дату
// Вызывается после любой записи бронирования (создание, отмена, смена статуса)
func (c *OccupancyCache) InvalidateDay(venueID int64, date time.Time) {
	prefix := dayPrefix(venueID, date)
	for key := range c.store.Items() {
		if strings.HasPrefix(key, prefix) {
			c.store.Delete(key)
		}
	}
}

func bucketKey(venueID int64, date time.Time, timeOfDay types.TimeString) string {
	return dayPrefix(venueID, date) + timeOfDay.String()
}

func dayPrefix(venueID int64, date time.Time) string {
	return fmt.Sprintf("occupancy:%d:%s:", venueID, date.Format(domain.DateFormat))
}
