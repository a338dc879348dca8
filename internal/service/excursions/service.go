package excursions

import (
	"context"
	"errors"
	"fmt"

	configRepo "github.com/m04kA/SMC-ExcursionService/internal/infra/storage/excursion"
	"github.com/m04kA/SMC-ExcursionService/internal/service/excursions/models"
)

// Service сервис чтения конфигураций экскурсионных продуктов
type Service struct {
	configRepo ConfigRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса конфигураций
func NewService(configRepo ConfigRepository, logger Logger) *Service {
	return &Service{
		configRepo: configRepo,
		logger:     logger,
	}
}

// GetExcursionConfig возвращает публичное представление конфигурации продукта
// Публичный метод - доступен всем, форма бронирования строит по нему опции
func (s *Service) GetExcursionConfig(ctx context.Context, productID int64) (*models.ConfigResponse, error) {
	if productID <= 0 {
		return nil, fmt.Errorf("%w: productID must be positive", ErrInvalidInput)
	}

	cfg, err := s.configRepo.GetConfig(ctx, productID)
	if err != nil {
		if errors.Is(err, configRepo.ErrExcursionNotFound) {
			s.logger.Warn("GetExcursionConfig: excursion id=%d not found", productID)
			return nil, ErrExcursionNotFound
		}
		s.logger.Error("GetExcursionConfig: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetExcursionConfig - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainConfig(cfg), nil
}
