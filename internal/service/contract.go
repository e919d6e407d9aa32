package service

import (
	"context"
	"io"

	"github.com/AsadUllahBilal/TechThrive/internal/domain"
	"github.com/AsadUllahBilal/TechThrive/internal/dto"
	pkgdto "github.com/AsadUllahBilal/TechThrive/pkg/dto"
	"gopkg.in/gomail.v2"
)

// EventPublisher pushes domain events to the message broker. Services hold
// the interface so they can be exercised without a live broker.
type EventPublisher interface {
	Publish(ctx context.Context, key string, eventType string, data interface{}) error
}

// MediaUploader stores a file on the external media host and returns its
// durable URL.
type MediaUploader interface {
	Upload(ctx context.Context, filename string, file io.Reader) (url string, err error)
}

// MailSender delivers an outgoing email. Services hold the interface so
// they can be exercised without a live SMTP server.
type MailSender interface {
	Send(message *gomail.Message) error
}

type ProductService interface {
	AddProduct(ctx context.Context, data dto.ProductRequest) (err error)
	GetProducts(ctx context.Context, param pkgdto.Filter) (data []dto.ProductResponse, err error)
	GetProductByID(ctx context.Context, id string) (data dto.ProductResponse, err error)
	UpdateProduct(ctx context.Context, data dto.ProductRequest) (err error)
	DeleteProduct(ctx context.Context, id string) (err error)
}

type CategoryService interface {
	AddCategory(ctx context.Context, data dto.CategoryRequest) (err error)
	GetCategories(ctx context.Context) (data []domain.Category, err error)
	GetCategoryByID(ctx context.Context, id string) (data domain.Category, err error)
	DeleteCategory(ctx context.Context, id string) (err error)
}

type ReviewService interface {
	AddReview(ctx context.Context, userID string, data dto.ReviewRequest) (err error)
	GetProductReviews(ctx context.Context, productID string) (data []dto.ReviewResponse, err error)
	DeleteReview(ctx context.Context, id string) (err error)
	ReconcileReviewStats()
}

type CartService interface {
	GetCart(ctx context.Context, userID string) (data dto.CartResponse, err error)
	AddItem(ctx context.Context, userID string, data dto.CartItemRequest) (err error)
	RemoveItem(ctx context.Context, userID string, productID string) (err error)
	IncreaseQuantity(ctx context.Context, userID string, productID string) (err error)
	DecreaseQuantity(ctx context.Context, userID string, productID string) (err error)
	ClearCart(ctx context.Context, userID string) (err error)
	StageCheckout(ctx context.Context, userID string, productIDs []string) (items []domain.CartItem, err error)
	GetCheckout(ctx context.Context, userID string) (data dto.CartResponse, err error)
}

type OrderService interface {
	PlaceOrder(ctx context.Context, req dto.OrderRequest) (err error)
	GetUserOrders(ctx context.Context, userID string) (data []domain.Order, err error)
	GetOrders(ctx context.Context, param pkgdto.Filter) (data []domain.Order, err error)
	GetOrderByID(ctx context.Context, id string) (data domain.Order, err error)
	UpdateOrderStatus(ctx context.Context, id string, req dto.OrderStatusRequest) (err error)
}

type UserService interface {
	Register(ctx context.Context, data dto.UserRequest) (err error)
	VerifyEmail(ctx context.Context, data dto.VerifyRequest) (err error)
	Login(ctx context.Context, data dto.UserRequest) (respPayload dto.LoginResponse, err error)
	GetUsers(ctx context.Context, param pkgdto.Filter) (data []dto.UserResponse, err error)
}

type ContactService interface {
	SendMessage(ctx context.Context, data dto.ContactRequest) (err error)
}

type StatsService interface {
	GetOverview(ctx context.Context) (data dto.OverviewResponse, err error)
}

type UploadService interface {
	UploadImage(ctx context.Context, filename string, contentType string, file io.Reader) (url string, err error)
}
