package handler

import (
	"errors"
	"net/http"

	"github.com/fintomate/receipt-matcher/internal/domain/entity"
	domainerr "github.com/fintomate/receipt-matcher/internal/domain/error"
	coreport "github.com/fintomate/receipt-matcher/internal/domain/port/core"
	queueUseCase "github.com/fintomate/receipt-matcher/internal/domain/usecase/queue"
	"github.com/fintomate/receipt-matcher/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// MatchRunHandler handles matching-run HTTP requests
type MatchRunHandler struct {
	queueService *queueUseCase.Service
	logger       coreport.Logger
}

// NewMatchRunHandler creates a new match run handler instance
func NewMatchRunHandler(queueService *queueUseCase.Service, logger coreport.Logger) *MatchRunHandler {
	return &MatchRunHandler{
		queueService: queueService,
		logger:       logger,
	}
}

// Create handles POST /api/v1/match-runs
func (h *MatchRunHandler) Create(c *gin.Context) {
	var req dto.MatchRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid match run request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(domainerr.ErrInvalidRequest, "Invalid request format: "+err.Error()))
		return
	}

	trigger := entity.QueueTrigger(req.Trigger)
	if req.Trigger == "" {
		trigger = entity.TriggerManual
	}

	item, err := h.queueService.Enqueue(c.Request.Context(), queueUseCase.EnqueueRequest{
		OwnerID:       req.OwnerID,
		Scope:         entity.QueueScope(req.Scope),
		TransactionID: req.TransactionID,
		Trigger:       trigger,
	})
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, domainerr.ErrInvalidOwnerID),
			errors.Is(err, domainerr.ErrInvalidScope),
			errors.Is(err, domainerr.ErrInvalidTrigger):
			status = http.StatusBadRequest
		}
		c.JSON(status, dto.NewErrorResponse(err, err.Error()))
		return
	}

	c.JSON(http.StatusAccepted, dto.FromQueueItem(item))
}

// Get handles GET /api/v1/match-runs/:id
func (h *MatchRunHandler) Get(c *gin.Context) {
	item, err := h.queueService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if domainerr.IsNotFound(err) {
			c.JSON(http.StatusNotFound, dto.NewErrorResponse(err, "Match run not found"))
			return
		}
		h.logger.Error("Failed to load match run", map[string]any{
			"queue_item_id": c.Param("id"),
			"error":         err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(domainerr.ErrInternalServer, "Internal server error"))
		return
	}

	c.JSON(http.StatusOK, dto.FromQueueItem(item))
}
