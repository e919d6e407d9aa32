package service

import (
	"context"
	"math"
	"time"

	"github.com/AsadUllahBilal/TechThrive/internal/domain"
	"github.com/AsadUllahBilal/TechThrive/internal/dto"
	"github.com/AsadUllahBilal/TechThrive/internal/repository"
	pkgdto "github.com/AsadUllahBilal/TechThrive/pkg/dto"
	"github.com/AsadUllahBilal/TechThrive/pkg/errs"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const priceEpsilon = 1e-9

type OrderServiceImpl struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	cartRepo    repository.CartRepository
	publisher   EventPublisher
}

func CreateOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, cartRepo repository.CartRepository, publisher EventPublisher) OrderService {
	return &OrderServiceImpl{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		cartRepo:    cartRepo,
		publisher:   publisher,
	}
}

// PlaceOrder validates the submitted payload, recomputes the total against
// live product prices, and persists the order. Only after the order is
// durably stored does it clear the user's cart and checkout staging; a
// store failure leaves both intact so the user can retry.
func (s *OrderServiceImpl) PlaceOrder(ctx context.Context, req dto.OrderRequest) (err error) {
	if len(req.OrderItems) == 0 {
		return errs.ErrEmptyCheckout
	}

	if err = validateShippingAddress(req.ShippingAddress); err != nil {
		return
	}

	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		return errs.ErrClient
	}

	var total float64
	orderItems := make([]domain.OrderItem, 0, len(req.OrderItems))
	for _, item := range req.OrderItems {
		if item.Quantity < 1 {
			return errs.ErrClient
		}

		product, err := s.productRepo.GetProductByID(ctx, item.ProductID)
		if err != nil {
			return err
		}

		// The submitted price is a cart-time snapshot; if it no longer
		// matches the live price the client must refresh before ordering.
		if math.Abs(product.Price-item.Price) > priceEpsilon {
			return errs.ErrPriceChanged
		}

		total += product.Price * float64(item.Quantity)
		orderItems = append(orderItems, domain.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Image:     item.Image,
			Price:     product.Price,
			Quantity:  item.Quantity,
		})
	}

	if math.Abs(total-req.TotalPrice) > priceEpsilon {
		return errs.ErrTotalMismatch
	}

	trxNumber, err := uuid.NewV7()
	if err != nil {
		return err
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "Cash on Delivery"
	}

	now := time.Now().Unix()
	order := domain.Order{
		UserID:            userID,
		TransactionNumber: trxNumber.String(),
		OrderItems:        orderItems,
		ShippingAddress: domain.ShippingAddress{
			FullName:    req.ShippingAddress.FullName,
			Address:     req.ShippingAddress.Address,
			City:        req.ShippingAddress.City,
			PostalCode:  req.ShippingAddress.PostalCode,
			PhoneNumber: req.ShippingAddress.PhoneNumber,
		},
		PaymentMethod:  paymentMethod,
		PaymentStatus:  domain.PaymentStatusPending,
		ShippingStatus: domain.ShippingStatusPending,
		TotalPrice:     total,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	orderID, err := s.orderRepo.AddOrder(ctx, order)
	if err != nil {
		return
	}

	// The whole cart is cleared, not just the checked-out subset.
	if err := s.cartRepo.DeleteCart(ctx, req.UserID); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "PlaceOrder").Msg("")
	}
	if err := s.cartRepo.DeleteCheckout(ctx, req.UserID); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "PlaceOrder").Msg("")
	}

	order.ID = orderID
	if err := s.publisher.Publish(ctx, trxNumber.String(), "order_created", order); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "PlaceOrder").Msg("")
	}

	return nil
}

func (s *OrderServiceImpl) GetUserOrders(ctx context.Context, userID string) (data []domain.Order, err error) {
	return s.orderRepo.GetOrdersByUserID(ctx, userID)
}

func (s *OrderServiceImpl) GetOrders(ctx context.Context, param pkgdto.Filter) (data []domain.Order, err error) {
	return s.orderRepo.GetOrders(ctx, param)
}

func (s *OrderServiceImpl) GetOrderByID(ctx context.Context, id string) (data domain.Order, err error) {
	return s.orderRepo.GetOrderByID(ctx, id)
}

func (s *OrderServiceImpl) UpdateOrderStatus(ctx context.Context, id string, req dto.OrderStatusRequest) (err error) {
	if req.PaymentStatus == "" && req.ShippingStatus == "" {
		return errs.ErrClient
	}

	if req.PaymentStatus != "" && !domain.ValidPaymentStatus(req.PaymentStatus) {
		return errs.ErrClient
	}

	if req.ShippingStatus != "" && !domain.ValidShippingStatus(req.ShippingStatus) {
		return errs.ErrClient
	}

	return s.orderRepo.UpdateOrderStatus(ctx, id, req.PaymentStatus, req.ShippingStatus)
}

func validateShippingAddress(addr dto.ShippingAddressRequest) error {
	if addr.FullName == "" || addr.Address == "" || addr.City == "" || addr.PostalCode == "" || addr.PhoneNumber == "" {
		return errs.ErrClient
	}

	return nil
}
