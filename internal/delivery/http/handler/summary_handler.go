package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/manzil-geoservice/internal/pkg/utils"
	"github.com/manzil-geoservice/internal/usecase"
)

// SummaryHandler обрабатывает запросы сводного дерева иерархии
type SummaryHandler struct {
	summaryUC *usecase.SummaryUseCase
	logger    *zap.Logger
}

// NewSummaryHandler создает новый экземпляр SummaryHandler
func NewSummaryHandler(summaryUC *usecase.SummaryUseCase, logger *zap.Logger) *SummaryHandler {
	return &SummaryHandler{
		summaryUC: summaryUC,
		logger:    logger,
	}
}

// GetSummaryTree godoc
// @Summary Сводное дерево иерархии
// @Description Возвращает области с вложенными районами и счётчиками махаллей, улиц и недвижимости на обоих уровнях
// @Tags Summary
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.RegionSummary}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/summary [get]
func (h *SummaryHandler) GetSummaryTree(c *fiber.Ctx) error {
	tree, err := h.summaryUC.BuildSummaryTree(c.Context())
	if err != nil {
		h.logger.Error("Failed to build summary tree", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, tree, &utils.Meta{
		Total: len(tree),
	})
}

// InvalidateCache godoc
// @Summary Сброс кэша сводного дерева
// @Description Принудительно сбрасывает кэшированное дерево после изменений справочников
// @Tags Summary
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/summary/cache [delete]
func (h *SummaryHandler) InvalidateCache(c *fiber.Ctx) error {
	h.summaryUC.InvalidateSummaryTree(c.Context())
	return utils.SendSuccess(c, fiber.Map{"invalidated": true}, nil)
}
