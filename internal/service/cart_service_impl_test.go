package service

import (
	"context"
	"testing"

	"github.com/AsadUllahBilal/TechThrive/internal/dto"
	"github.com/AsadUllahBilal/TechThrive/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserID = "user-1"

func cartItemRequest(id string, price float64) dto.CartItemRequest {
	return dto.CartItemRequest{ProductID: id, Name: "product " + id, Price: price, Image: "img"}
}

func TestCartService_AddItem(t *testing.T) {
	repo := newFakeCartRepo()
	svc := CreateCartService(repo)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, testUserID, cartItemRequest("p1", 10)))
	require.NoError(t, svc.AddItem(ctx, testUserID, cartItemRequest("p2", 20)))

	// adding the same product twice keeps a single line item
	require.NoError(t, svc.AddItem(ctx, testUserID, cartItemRequest("p1", 10)))

	resp, err := svc.GetCart(ctx, testUserID)
	require.NoError(t, err)
	assert.Len(t, resp.Items, 2)
	assert.Equal(t, int64(1), resp.Items[0].Quantity)
	assert.InDelta(t, 30, resp.Total, 1e-9)
}

func TestCartService_AddItem_InvalidSnapshot(t *testing.T) {
	svc := CreateCartService(newFakeCartRepo())
	ctx := context.Background()

	testCases := []struct {
		name    string
		request dto.CartItemRequest
	}{
		{name: "missing product id", request: dto.CartItemRequest{Name: "x", Price: 1, Image: "img"}},
		{name: "missing name", request: dto.CartItemRequest{ProductID: "p1", Price: 1, Image: "img"}},
		{name: "missing image", request: dto.CartItemRequest{ProductID: "p1", Name: "x", Price: 1}},
		{name: "negative price", request: dto.CartItemRequest{ProductID: "p1", Name: "x", Price: -1, Image: "img"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, svc.AddItem(ctx, testUserID, tc.request), errs.ErrClient)
		})
	}
}

func TestCartService_QuantityFloor(t *testing.T) {
	repo := newFakeCartRepo()
	svc := CreateCartService(repo)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, testUserID, cartItemRequest("p1", 10)))
	require.NoError(t, svc.IncreaseQuantity(ctx, testUserID, "p1"))
	require.NoError(t, svc.DecreaseQuantity(ctx, testUserID, "p1"))
	require.NoError(t, svc.DecreaseQuantity(ctx, testUserID, "p1"))

	resp, err := svc.GetCart(ctx, testUserID)
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, int64(1), resp.Items[0].Quantity)
}

func TestCartService_StageCheckout(t *testing.T) {
	repo := newFakeCartRepo()
	svc := CreateCartService(repo)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, testUserID, cartItemRequest("p1", 10)))
	require.NoError(t, svc.AddItem(ctx, testUserID, cartItemRequest("p2", 20)))

	items, err := svc.StageCheckout(ctx, testUserID, []string{"p2"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "p2", items[0].ProductID)

	// staging leaves the cart itself intact
	resp, err := svc.GetCart(ctx, testUserID)
	require.NoError(t, err)
	assert.Len(t, resp.Items, 2)

	checkout, err := svc.GetCheckout(ctx, testUserID)
	require.NoError(t, err)
	require.Len(t, checkout.Items, 1)
	assert.InDelta(t, 20, checkout.Total, 1e-9)
}

func TestCartService_StageCheckout_EmptySelection(t *testing.T) {
	repo := newFakeCartRepo()
	svc := CreateCartService(repo)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, testUserID, cartItemRequest("p1", 10)))

	_, err := svc.StageCheckout(ctx, testUserID, nil)
	assert.ErrorIs(t, err, errs.ErrEmptyCheckout)

	// ids that match nothing in the cart are just as empty
	_, err = svc.StageCheckout(ctx, testUserID, []string{"unknown"})
	assert.ErrorIs(t, err, errs.ErrEmptyCheckout)

	assert.Empty(t, repo.checkouts)
}

func TestCartService_ClearCart(t *testing.T) {
	repo := newFakeCartRepo()
	svc := CreateCartService(repo)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, testUserID, cartItemRequest("p1", 10)))
	_, err := svc.StageCheckout(ctx, testUserID, []string{"p1"})
	require.NoError(t, err)

	require.NoError(t, svc.ClearCart(ctx, testUserID))

	resp, err := svc.GetCart(ctx, testUserID)
	require.NoError(t, err)
	assert.Empty(t, resp.Items)

	_, err = svc.GetCheckout(ctx, testUserID)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
