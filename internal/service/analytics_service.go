package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"sentinel/internal/model"
	"sentinel/internal/repository"
)

// CommissionRate is the fixed platform cut applied to aggregate task value.
const CommissionRate = 0.10

const (
	newUserWindow    = 30 * 24 * time.Hour
	recentTaskWindow = 7 * 24 * time.Hour
)

// AnalyticsService computes derived statistics over users and tasks.
type AnalyticsService interface {
	Analytics(ctx context.Context) (*model.AnalyticsReport, error)
	Earnings(ctx context.Context) (*model.EarningsReport, error)
}

type analyticsService struct {
	userRepo repository.UserRepository
	taskRepo repository.TaskRepository
}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService(userRepo repository.UserRepository, taskRepo repository.TaskRepository) AnalyticsService {
	return &analyticsService{userRepo: userRepo, taskRepo: taskRepo}
}

// Analytics assembles the full report. Each sub-query is a best-effort
// snapshot; a failure in any of them aborts the whole report. Time windows
// are anchored to the moment of the call.
func (s *analyticsService) Analytics(ctx context.Context) (*model.AnalyticsReport, error) {
	now := time.Now()

	totalUsers, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	newUsers, err := s.userRepo.CountCreatedSince(ctx, now.Add(-newUserWindow))
	if err != nil {
		return nil, err
	}

	totalTasks, err := s.taskRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	buyTasks, err := s.taskRepo.CountByType(ctx, model.TaskTypeBuy)
	if err != nil {
		return nil, err
	}
	sellTasks, err := s.taskRepo.CountByType(ctx, model.TaskTypeSell)
	if err != nil {
		return nil, err
	}
	recentTasks, err := s.taskRepo.CountCreatedSince(ctx, now.Add(-recentTaskWindow))
	if err != nil {
		return nil, err
	}
	byCategory, err := s.taskRepo.CountByCategory(ctx)
	if err != nil {
		return nil, err
	}
	totalValue, err := s.taskRepo.TotalValue(ctx)
	if err != nil {
		return nil, err
	}

	return &model.AnalyticsReport{
		Users: model.UserBreakdown{
			Total: totalUsers,
			New:   newUsers,
		},
		Tasks: model.TaskBreakdown{
			Total:      totalTasks,
			Buy:        buyTasks,
			Sell:       sellTasks,
			Recent:     recentTasks,
			ByCategory: byCategory,
		},
		Value: model.ValueBreakdown{
			TotalTaskValue: totalValue,
		},
	}, nil
}

// Earnings sums task value with a linear scan and recomputes the same totals
// per task_type through a grouped aggregate. When task_type values partition
// the tasks, the two paths agree.
func (s *analyticsService) Earnings(ctx context.Context) (*model.EarningsReport, error) {
	tasks, err := s.taskRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, t := range tasks {
		total = total.Add(decimal.NewFromFloat(t.Price))
	}
	commission := total.Mul(decimal.NewFromFloat(CommissionRate))

	byType, err := s.taskRepo.EarningsByType(ctx, CommissionRate)
	if err != nil {
		return nil, err
	}

	return &model.EarningsReport{
		TotalTaskValue:      total.InexactFloat64(),
		EstimatedCommission: commission.InexactFloat64(),
		CommissionRate:      CommissionRate,
		NetEarnings:         commission.InexactFloat64(),
		ProductsByType:      byType,
		TotalProducts:       len(tasks),
	}, nil
}
