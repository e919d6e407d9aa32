package service

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/AsadUllahBilal/TechThrive/internal/dto"
	"github.com/AsadUllahBilal/TechThrive/internal/repository"
)

type StatsServiceImpl struct {
	userRepo    repository.UserRepository
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
}

func CreateStatsService(userRepo repository.UserRepository, orderRepo repository.OrderRepository, productRepo repository.ProductRepository) StatsService {
	return &StatsServiceImpl{
		userRepo:    userRepo,
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

func (s *StatsServiceImpl) GetOverview(ctx context.Context) (data dto.OverviewResponse, err error) {
	data.TotalUsers, err = s.userRepo.CountUsers(ctx)
	if err != nil {
		return
	}

	data.TotalOrders, err = s.orderRepo.CountOrders(ctx)
	if err != nil {
		return
	}

	data.TotalProducts, err = s.productRepo.CountProducts(ctx)
	if err != nil {
		return
	}

	data.TotalRevenue, err = s.orderRepo.GetTotalRevenue(ctx)
	if err != nil {
		return
	}

	now := time.Now()
	d30 := now.AddDate(0, 0, -30).Unix()
	d60 := now.AddDate(0, 0, -60).Unix()

	usersLast30, err := s.userRepo.CountUsersSince(ctx, d30)
	if err != nil {
		return
	}
	usersLast60, err := s.userRepo.CountUsersSince(ctx, d60)
	if err != nil {
		return
	}
	data.UsersDeltaPct = deltaPct(float64(usersLast30), float64(usersLast60-usersLast30))

	ordersLast30, err := s.orderRepo.CountOrdersSince(ctx, d30)
	if err != nil {
		return
	}
	ordersLast60, err := s.orderRepo.CountOrdersSince(ctx, d60)
	if err != nil {
		return
	}
	data.OrdersDeltaPct = deltaPct(float64(ordersLast30), float64(ordersLast60-ordersLast30))

	revenueLast30, err := s.orderRepo.GetTotalRevenueSince(ctx, d30)
	if err != nil {
		return
	}
	revenueLast60, err := s.orderRepo.GetTotalRevenueSince(ctx, d60)
	if err != nil {
		return
	}
	data.RevenueDeltaPct = deltaPct(revenueLast30, revenueLast60-revenueLast30)

	counts, err := s.orderRepo.GetOrderStatusCounts(ctx)
	if err != nil {
		return
	}

	for status, count := range counts {
		data.OrdersByStatus = append(data.OrdersByStatus, dto.StatusCount{Status: status, Count: count})
	}
	sort.Slice(data.OrdersByStatus, func(i, j int) bool {
		return data.OrdersByStatus[i].Status < data.OrdersByStatus[j].Status
	})

	return data, nil
}

// deltaPct compares the last 30-day window against the 30 days before it,
// rounded to one decimal place.
func deltaPct(curr float64, prev float64) float64 {
	if prev == 0 {
		if curr > 0 {
			return 100
		}
		return 0
	}

	return math.Round((curr-prev)/prev*1000) / 10
}
