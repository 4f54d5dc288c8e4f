package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/segyhp/loan-earnings/internal/cache"
	"github.com/segyhp/loan-earnings/internal/calculator"
	"github.com/segyhp/loan-earnings/internal/config"
	"github.com/segyhp/loan-earnings/internal/domain"
	"github.com/segyhp/loan-earnings/internal/repository"
	customError "github.com/segyhp/loan-earnings/pkg/errors"
	"github.com/segyhp/loan-earnings/pkg/utils"
)

type CalculatorService struct {
	EarningsRepo repository.EarningsRepository
	cache        cache.TableCache
	config       *config.Config
	logger       *slog.Logger
	loads        singleflight.Group
}

func NewCalculatorService(
	earningsRepo repository.EarningsRepository,
	cache cache.TableCache,
	config *config.Config,
	logger *slog.Logger,
) *CalculatorService {
	return &CalculatorService{
		EarningsRepo: earningsRepo,
		cache:        cache,
		config:       config,
		logger:       logger,
	}
}

// Schedule validates the loan parameters and returns their payment schedule
func (s *CalculatorService) Schedule(ctx context.Context, params domain.LoanParameters) (domain.PaymentSchedule, error) {
	if err := calculator.Validate(params); err != nil {
		return domain.PaymentSchedule{}, customError.WrapFieldRange(err)
	}

	schedule, err := calculator.ComputeSchedule(params)
	if err != nil {
		return domain.PaymentSchedule{}, customError.WrapInvalidSchedule(err)
	}

	return schedule, nil
}

// Calculate runs the full comparison: schedule, per-category income series,
// income over the loan horizon and its principal/interest breakdown
func (s *CalculatorService) Calculate(ctx context.Context, request *domain.CalculationRequest) (*domain.CalculationResponse, error) {
	// 1. A primary category must be chosen before anything else is checked
	selection, err := calculator.ValidateSelection(request.Selection())
	if err != nil {
		return nil, customError.WrapMissingPrimaryCategory()
	}

	dataset := request.Dataset()
	if dataset.EarningsLevel == "" {
		dataset.EarningsLevel = s.config.DefaultDataset().EarningsLevel
	}
	if err := calculator.ValidateDataset(dataset); err != nil {
		return nil, customError.WrapInvalidDataset(dataset.EarningsLevel)
	}

	// 2. Range checks and amortization
	schedule, err := s.Schedule(ctx, request.LoanParameters)
	if err != nil {
		return nil, err
	}

	// 3. Income data for the dataset
	table, err := s.loadTable(ctx, dataset.Key())
	if err != nil {
		return nil, err
	}

	// 4. Series per label, primary first
	set := calculator.BuildSeries(table.Records, selection, schedule)

	response := &domain.CalculationResponse{
		ID:       uuid.New(),
		Dataset:  table.Dataset,
		Schedule: ToScheduleResponse(schedule),
		Series:   make([]domain.SeriesResponse, 0, len(set)),
	}
	for _, result := range set {
		if result.Err != nil {
			s.logger.WarnContext(ctx, "income series unavailable", "dataset", table.Dataset, "label", result.Series.Label, "error", result.Err)
		}
		response.Series = append(response.Series, toSeriesResponse(result))
	}

	// 5. Totals over the horizon only make sense for a usable primary series
	primary := set.Primary()
	if primary.Err == nil {
		income := calculator.TotalIncomeOverHorizon(primary.Series, schedule)
		response.TotalIncomeOverLoanHorizon = utils.ToCurrency(income)

		breakdown, err := calculator.ComputeBreakdown(request.Principal, schedule, income)
		if err == nil {
			response.Breakdown = domain.BreakdownResponse{
				PrincipalShare: utils.ToRatio(breakdown.PrincipalShare),
				InterestShare:  utils.ToRatio(breakdown.InterestShare),
				UnusedShare:    utils.ToRatio(breakdown.UnusedShare),
				UnusedIncome:   utils.ToCurrency(breakdown.UnusedIncome),
				Available:      true,
			}
		}
	}

	s.logger.DebugContext(ctx, "calculation completed",
		"id", response.ID,
		"dataset", table.Dataset,
		"monthly_payment", schedule.MonthlyPayment,
		"payments", schedule.NumberOfPayments,
	)

	return response, nil
}

// Categories returns the grouped category labels of a dataset
func (s *CalculatorService) Categories(ctx context.Context, datasetKey string) ([]domain.Category, error) {
	dataset, ok := domain.ParseDatasetKey(datasetKey)
	if !ok {
		return nil, customError.WrapInvalidDataset(datasetKey)
	}
	if err := calculator.ValidateDataset(dataset); err != nil {
		return nil, customError.WrapInvalidDataset(dataset.EarningsLevel)
	}

	table, err := s.loadTable(ctx, dataset.Key())
	if err != nil {
		return nil, err
	}

	return domain.GroupCategories(table.Labels), nil
}

// Datasets lists the stored dataset keys
func (s *CalculatorService) Datasets(ctx context.Context) ([]string, error) {
	datasets, err := s.EarningsRepo.ListDatasets(ctx)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	return datasets, nil
}

// loadTable reads a dataset through the cache. Concurrent loads of the same
// dataset share one lookup, which runs detached from any single caller so a
// cancelled request only abandons its own wait.
func (s *CalculatorService) loadTable(ctx context.Context, key string) (*domain.EarningsTable, error) {
	results := s.loads.DoChan(key, func() (interface{}, error) {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.config.Database.QueryTimeout)
		defer cancel()

		table, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			s.logger.WarnContext(ctx, "cache read failed", "dataset", key, "error", customError.WrapCacheError(err))
		} else if ok {
			return table, nil
		}

		table, err = s.EarningsRepo.GetTable(ctx, key)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customError.WrapDatasetNotFound(key)
		}
		if err != nil {
			return nil, customError.WrapDatabaseError(err)
		}

		if err := s.cache.Set(ctx, table); err != nil {
			s.logger.WarnContext(ctx, "cache write failed", "dataset", key, "error", customError.WrapCacheError(err))
		}
		return table, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case result := <-results:
		if result.Err != nil {
			return nil, result.Err
		}
		return result.Val.(*domain.EarningsTable), nil
	}
}

// ToScheduleResponse converts a schedule to its decimal response form
func ToScheduleResponse(schedule domain.PaymentSchedule) domain.ScheduleResponse {
	return domain.ScheduleResponse{
		MonthlyPayment:    utils.ToCurrency(schedule.MonthlyPayment),
		NumberOfPayments:  utils.ToCount(schedule.NumberOfPayments),
		TotalPaid:         utils.ToCurrency(schedule.TotalPaid),
		TotalInterestPaid: utils.ToCurrency(schedule.TotalInterestPaid),
	}
}

func toSeriesResponse(result calculator.LabelResult) domain.SeriesResponse {
	response := domain.SeriesResponse{
		Label: result.Series.Label,
		Role:  result.Role,
	}
	if result.Err != nil {
		response.Error = result.Err.Error()
		return response
	}

	response.Points = make([]domain.PointResponse, 0, len(result.Series.Points))
	for _, point := range result.Series.Points {
		response.Points = append(response.Points, domain.PointResponse{
			PeriodIndex:          point.PeriodIndex,
			MonthlyIncome:        utils.ToCurrency(point.MonthlyIncome),
			IncomeToPaymentRatio: utils.ToRatio(point.IncomeToPaymentRatio),
		})
	}
	return response
}
