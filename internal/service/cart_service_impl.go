package service

import (
	"context"

	"github.com/AsadUllahBilal/TechThrive/internal/domain"
	"github.com/AsadUllahBilal/TechThrive/internal/dto"
	"github.com/AsadUllahBilal/TechThrive/internal/repository"
	"github.com/AsadUllahBilal/TechThrive/pkg/errs"
)

// CartServiceImpl applies cart operations against the per-user durable
// slot. Cart mutations are local: no call here ever touches the product or
// order stores, so a downstream failure cannot corrupt cart state.
type CartServiceImpl struct {
	cartRepo repository.CartRepository
}

func CreateCartService(cartRepo repository.CartRepository) CartService {
	return &CartServiceImpl{cartRepo: cartRepo}
}

func (s *CartServiceImpl) GetCart(ctx context.Context, userID string) (data dto.CartResponse, err error) {
	cart, err := s.cartRepo.GetCart(ctx, userID)
	if err != nil {
		return
	}

	return dto.CartResponse{
		Items: cart.Items,
		Total: domain.ComputeTotal(cart.Items),
	}, nil
}

func (s *CartServiceImpl) AddItem(ctx context.Context, userID string, data dto.CartItemRequest) (err error) {
	if data.ProductID == "" || data.Name == "" || data.Image == "" || data.Price < 0 {
		return errs.ErrClient
	}

	cart, err := s.cartRepo.GetCart(ctx, userID)
	if err != nil {
		return
	}

	cart.Add(domain.CartItem{
		ProductID:   data.ProductID,
		Name:        data.Name,
		Price:       data.Price,
		Image:       data.Image,
		Brand:       data.Brand,
		Description: data.Description,
		Category:    data.Category,
	})

	return s.cartRepo.SaveCart(ctx, userID, cart)
}

func (s *CartServiceImpl) RemoveItem(ctx context.Context, userID string, productID string) (err error) {
	return s.mutate(ctx, userID, func(cart *domain.Cart) {
		cart.Remove(productID)
	})
}

func (s *CartServiceImpl) IncreaseQuantity(ctx context.Context, userID string, productID string) (err error) {
	return s.mutate(ctx, userID, func(cart *domain.Cart) {
		cart.IncreaseQuantity(productID)
	})
}

func (s *CartServiceImpl) DecreaseQuantity(ctx context.Context, userID string, productID string) (err error) {
	return s.mutate(ctx, userID, func(cart *domain.Cart) {
		cart.DecreaseQuantity(productID)
	})
}

func (s *CartServiceImpl) ClearCart(ctx context.Context, userID string) (err error) {
	if err = s.cartRepo.DeleteCart(ctx, userID); err != nil {
		return
	}

	return s.cartRepo.DeleteCheckout(ctx, userID)
}

// StageCheckout copies the selected subset of the cart into the staging
// slot for one checkout attempt. The cart itself is left untouched.
func (s *CartServiceImpl) StageCheckout(ctx context.Context, userID string, productIDs []string) (items []domain.CartItem, err error) {
	if len(productIDs) == 0 {
		return nil, errs.ErrEmptyCheckout
	}

	cart, err := s.cartRepo.GetCart(ctx, userID)
	if err != nil {
		return
	}

	items = cart.Subset(productIDs)
	if len(items) == 0 {
		return nil, errs.ErrEmptyCheckout
	}

	if err = s.cartRepo.SaveCheckout(ctx, userID, items); err != nil {
		return nil, err
	}

	return items, nil
}

func (s *CartServiceImpl) GetCheckout(ctx context.Context, userID string) (data dto.CartResponse, err error) {
	items, err := s.cartRepo.GetCheckout(ctx, userID)
	if err != nil {
		return
	}

	return dto.CartResponse{
		Items: items,
		Total: domain.ComputeTotal(items),
	}, nil
}

func (s *CartServiceImpl) mutate(ctx context.Context, userID string, fn func(cart *domain.Cart)) error {
	cart, err := s.cartRepo.GetCart(ctx, userID)
	if err != nil {
		return err
	}

	fn(&cart)

	return s.cartRepo.SaveCart(ctx, userID, cart)
}
