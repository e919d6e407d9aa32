package service

import (
	"context"
	"testing"
	"time"

	"github.com/AsadUllahBilal/TechThrive/internal/domain"
	"github.com/AsadUllahBilal/TechThrive/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGetOverview(t *testing.T) {
	ctx := context.Background()

	now := time.Now().Unix()
	daysAgo45 := time.Now().AddDate(0, 0, -45).Unix()

	userRepo := newFakeUserRepo(
		domain.User{ID: primitive.NewObjectID(), Email: "a@example.com", CreatedAt: now},
		domain.User{ID: primitive.NewObjectID(), Email: "b@example.com", CreatedAt: daysAgo45},
	)
	productRepo := newFakeProductRepo(domain.Product{ID: primitive.NewObjectID()})
	orderRepo := &fakeOrderRepo{}

	// only paid orders count toward revenue
	_, err := orderRepo.AddOrder(ctx, domain.Order{PaymentStatus: domain.PaymentStatusPaid, TotalPrice: 120, CreatedAt: now})
	require.NoError(t, err)
	_, err = orderRepo.AddOrder(ctx, domain.Order{PaymentStatus: domain.PaymentStatusPaid, TotalPrice: 30, CreatedAt: daysAgo45})
	require.NoError(t, err)
	_, err = orderRepo.AddOrder(ctx, domain.Order{PaymentStatus: domain.PaymentStatusPending, TotalPrice: 999, CreatedAt: now})
	require.NoError(t, err)

	svc := CreateStatsService(userRepo, orderRepo, productRepo)

	overview, err := svc.GetOverview(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(2), overview.TotalUsers)
	assert.Equal(t, int64(3), overview.TotalOrders)
	assert.Equal(t, int64(1), overview.TotalProducts)
	assert.InDelta(t, 150, overview.TotalRevenue, 1e-9)

	// one user per 30-day window, two orders this window against one before,
	// 120 of paid revenue against 30
	assert.InDelta(t, 0, overview.UsersDeltaPct, 1e-9)
	assert.InDelta(t, 100, overview.OrdersDeltaPct, 1e-9)
	assert.InDelta(t, 300, overview.RevenueDeltaPct, 1e-9)

	assert.Equal(t, []dto.StatusCount{
		{Status: domain.PaymentStatusPaid, Count: 2},
		{Status: domain.PaymentStatusPending, Count: 1},
	}, overview.OrdersByStatus)
}

func TestDeltaPct(t *testing.T) {
	cases := []struct {
		name string
		curr float64
		prev float64
		want float64
	}{
		{name: "growth against a prior window", curr: 150, prev: 100, want: 50},
		{name: "decline against a prior window", curr: 50, prev: 100, want: -50},
		{name: "rounds to one decimal", curr: 1, prev: 3, want: -66.7},
		{name: "first activity reads as full growth", curr: 10, prev: 0, want: 100},
		{name: "no activity at all", curr: 0, prev: 0, want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, deltaPct(tc.curr, tc.prev), 1e-9)
		})
	}
}
