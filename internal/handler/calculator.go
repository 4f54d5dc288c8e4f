package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/segyhp/loan-earnings/internal/calculator"
	"github.com/segyhp/loan-earnings/internal/domain"
	"github.com/segyhp/loan-earnings/internal/service"
	customError "github.com/segyhp/loan-earnings/pkg/errors"
	"github.com/segyhp/loan-earnings/pkg/response"
)

const maxBodyBytes = 1 << 16

// CalculatorService is the part of service.CalculatorService used by the handlers
type CalculatorService interface {
	Schedule(ctx context.Context, params domain.LoanParameters) (domain.PaymentSchedule, error)
	Calculate(ctx context.Context, request *domain.CalculationRequest) (*domain.CalculationResponse, error)
	Categories(ctx context.Context, dataset string) ([]domain.Category, error)
	Datasets(ctx context.Context) ([]string, error)
}

type CalculatorHandler struct {
	service CalculatorService
	logger  *slog.Logger
}

func NewCalculatorHandler(service CalculatorService, logger *slog.Logger) *CalculatorHandler {
	return &CalculatorHandler{
		service: service,
		logger:  logger,
	}
}

// CreateCalculation handles POST /api/v1/calculations
func (h *CalculatorHandler) CreateCalculation(w http.ResponseWriter, r *http.Request) {
	var request domain.CalculationRequest
	if err := decode(w, r, &request); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	result, err := h.service.Calculate(r.Context(), &request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.Created(w, result)
}

// CreateSchedule handles POST /api/v1/schedules
func (h *CalculatorHandler) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	var request domain.ScheduleRequest
	if err := decode(w, r, &request); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	schedule, err := h.service.Schedule(r.Context(), request.LoanParameters)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.Success(w, service.ToScheduleResponse(schedule))
}

// ListCategories handles GET /api/v1/datasets/{dataset}/categories
func (h *CalculatorHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	dataset := mux.Vars(r)["dataset"]

	categories, err := h.service.Categories(r.Context(), dataset)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.Success(w, categories)
}

// ListDatasets handles GET /api/v1/datasets
func (h *CalculatorHandler) ListDatasets(w http.ResponseWriter, r *http.Request) {
	datasets, err := h.service.Datasets(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.Success(w, datasets)
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

func (h *CalculatorHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := customError.CodeOf(err)

	switch code {
	case customError.ErrCodeFieldRange:
		var fieldErrors calculator.FieldRangeErrors
		errors.As(err, &fieldErrors)
		response.ErrorWithDetails(w, http.StatusUnprocessableEntity, code, "Loan parameters out of range", nil, fieldErrors)
	case customError.ErrCodeInvalidSchedule:
		response.ErrorWithDetails(w, http.StatusUnprocessableEntity, code, "Loan cannot be amortized", err, nil)
	case customError.ErrCodeMissingPrimaryCategory, customError.ErrCodeInvalidDataset:
		response.ErrorWithDetails(w, http.StatusBadRequest, code, "Invalid selection", err, nil)
	case customError.ErrCodeDatasetNotFound:
		response.ErrorWithDetails(w, http.StatusNotFound, code, "Dataset not found", err, nil)
	default:
		h.logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		response.ErrorWithDetails(w, http.StatusInternalServerError, code, "Internal server error", nil, nil)
	}
}
