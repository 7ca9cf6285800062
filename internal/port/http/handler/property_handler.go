package handler

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/zeolike/listing-service/internal/listing/domain"
)

type PropertyService interface {
	ListProperties(ctx context.Context) ([]*domain.Property, error)
}

// PropertyHandler serves the read-only markers the explore map renders.
type PropertyHandler struct {
	properties PropertyService
	logger     *zap.Logger
}

func NewPropertyHandler(properties PropertyService, log *zap.Logger) *PropertyHandler {
	return &PropertyHandler{properties: properties, logger: log}
}

func (h *PropertyHandler) HandleListProperties(w http.ResponseWriter, r *http.Request) {
	properties, err := h.properties.ListProperties(r.Context())
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, properties)
}
