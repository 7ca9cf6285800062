package usecase

import (
	"context"

	"github.com/zeolike/listing-service/internal/listing/domain"
)

type PropertyUsecase struct {
	repo domain.PropertyRepository
}

func NewPropertyUsecase(repo domain.PropertyRepository) *PropertyUsecase {
	return &PropertyUsecase{repo: repo}
}

func (uc *PropertyUsecase) ListProperties(ctx context.Context) ([]*domain.Property, error) {
	return uc.repo.FindAll(ctx)
}
