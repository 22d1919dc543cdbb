package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/change_maker/internal/apperrors"
	"github.com/SscSPs/change_maker/internal/core/domain"
	portssvc "github.com/SscSPs/change_maker/internal/core/ports/services"
	"github.com/SscSPs/change_maker/internal/dto"
	"github.com/SscSPs/change_maker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// changeHandler handles HTTP requests that compute change.
type changeHandler struct {
	currencyService portssvc.CurrencyReaderSvc
	changeService   portssvc.ChangeSvc
	batchService    portssvc.BatchSvc
	defaultCurrency string
}

func newChangeHandler(cs portssvc.CurrencyReaderSvc, chs portssvc.ChangeSvc, bs portssvc.BatchSvc, defaultCurrency string) *changeHandler {
	if defaultCurrency == "" {
		defaultCurrency = domain.DefaultCurrencyCode
	}
	return &changeHandler{
		currencyService: cs,
		changeService:   chs,
		batchService:    bs,
		defaultCurrency: defaultCurrency,
	}
}

// registerChangeRoutes registers routes related to change computation.
func registerChangeRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer, defaultCurrency string) {
	h := newChangeHandler(services.Currency, services.Change, services.Batch, defaultCurrency)

	change := rg.Group("/change")
	{
		change.POST("", h.computeChange)
		change.POST("/batch", h.computeBatch)
	}
}

// computeChange decomposes the change for a single owed/paid pair.
func (h *changeHandler) computeChange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ComputeChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ComputeChange", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	code := h.currencyCode(req.CurrencyCode)
	logger = logger.With(slog.String("currency_code", code))

	currency, err := h.currencyService.GetCurrencyByCode(c.Request.Context(), code)
	if err != nil {
		h.respondError(c, logger, err)
		return
	}

	tx, err := domain.ParseTransaction(req.Owed+","+req.Paid, 0)
	if err != nil {
		h.respondError(c, logger, err)
		return
	}

	res, err := h.changeService.ComputeChange(c.Request.Context(), currency, tx)
	if err != nil {
		h.respondError(c, logger, err)
		return
	}

	logger.Info("Change computed", slog.String("strategy", string(res.Strategy)))
	c.JSON(http.StatusOK, dto.ToChangeResponse(res, currency))
}

// computeBatch processes raw "<owed>,<paid>" lines with the configured error mode.
// In collect mode the valid lines are returned together with the skipped line errors.
func (h *changeHandler) computeBatch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.BatchChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ComputeBatch", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	code := h.currencyCode(req.CurrencyCode)
	logger = logger.With(slog.String("currency_code", code))

	res, err := h.batchService.ProcessLines(c.Request.Context(), strings.NewReader(strings.Join(req.Lines, "\n")), code)
	if res == nil {
		h.respondError(c, logger, err)
		return
	}

	resp := dto.BatchChangeResponse{
		RunID:        res.RunID,
		CurrencyCode: res.Currency,
		Lines:        res.Lines,
		Processed:    res.Processed,
		Skipped:      res.Skipped,
		Errors:       errorMessages(err),
	}
	logger.Info("Batch computed", slog.String("run_id", res.RunID), slog.Int("processed", res.Processed), slog.Int("skipped", res.Skipped))
	c.JSON(http.StatusOK, resp)
}

// errorMessages flattens an errors.Join result into one message per error.
func errorMessages(err error) []string {
	if err == nil {
		return nil
	}
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []string{err.Error()}
	}
	errs := joined.Unwrap()
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return msgs
}

func (h *changeHandler) currencyCode(requested string) string {
	if requested != "" {
		return requested
	}
	return h.defaultCurrency
}

// respondError maps service errors to HTTP statuses.
func (h *changeHandler) respondError(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Currency not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Invalid transaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error("Failed to compute change", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute change"})
	}
}
