package repository

import (
	"context"

	"github.com/AsadUllahBilal/TechThrive/internal/domain"
	pkgdto "github.com/AsadUllahBilal/TechThrive/pkg/dto"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductRepository interface {
	AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error)
	GetProducts(ctx context.Context, param pkgdto.Filter) (data []domain.Product, err error)
	GetProductByID(ctx context.Context, id string) (product domain.Product, err error)
	UpdateProduct(ctx context.Context, data domain.Product) (err error)
	UpdateReviewStats(ctx context.Context, id string, stats domain.ReviewStats) (err error)
	DeleteProduct(ctx context.Context, id string) (err error)
	CountProducts(ctx context.Context) (count int64, err error)
}

type CategoryRepository interface {
	AddCategory(ctx context.Context, data domain.Category) (id primitive.ObjectID, err error)
	GetCategories(ctx context.Context) (data []domain.Category, err error)
	GetCategoryByID(ctx context.Context, id string) (category domain.Category, err error)
	DeleteCategory(ctx context.Context, id string) (err error)
}

type ReviewRepository interface {
	AddReview(ctx context.Context, data domain.Review) (id primitive.ObjectID, err error)
	GetReviewsByProductID(ctx context.Context, productID string) (data []domain.Review, err error)
	GetReviewByID(ctx context.Context, id string) (review domain.Review, err error)
	DeleteReview(ctx context.Context, id string) (err error)
	HandleTrx(ctx context.Context, fn func(ctx context.Context) error) error
}

type OrderRepository interface {
	AddOrder(ctx context.Context, data domain.Order) (id primitive.ObjectID, err error)
	GetOrdersByUserID(ctx context.Context, userID string) (data []domain.Order, err error)
	GetOrders(ctx context.Context, param pkgdto.Filter) (data []domain.Order, err error)
	GetOrderByID(ctx context.Context, id string) (order domain.Order, err error)
	UpdateOrderStatus(ctx context.Context, id string, paymentStatus string, shippingStatus string) (err error)
	CountOrders(ctx context.Context) (count int64, err error)
	CountOrdersSince(ctx context.Context, since int64) (count int64, err error)
	GetOrderStatusCounts(ctx context.Context) (counts map[string]int64, err error)
	GetTotalRevenue(ctx context.Context) (revenue float64, err error)
	GetTotalRevenueSince(ctx context.Context, since int64) (revenue float64, err error)
}

type UserRepository interface {
	AddUser(ctx context.Context, data domain.User) (id primitive.ObjectID, err error)
	GetUserByEmail(ctx context.Context, email string) (user domain.User, err error)
	GetUserByID(ctx context.Context, id string) (user domain.User, err error)
	MarkUserVerified(ctx context.Context, id string) (err error)
	GetUsers(ctx context.Context, param pkgdto.Filter) (data []domain.User, err error)
	CountUsers(ctx context.Context) (count int64, err error)
	CountUsersSince(ctx context.Context, since int64) (count int64, err error)
}

// CartRepository is the durable per-session slot for the cart state machine
// and the checkout staging area.
type CartRepository interface {
	GetCart(ctx context.Context, userID string) (cart domain.Cart, err error)
	SaveCart(ctx context.Context, userID string, cart domain.Cart) (err error)
	DeleteCart(ctx context.Context, userID string) (err error)
	SaveCheckout(ctx context.Context, userID string, items []domain.CartItem) (err error)
	GetCheckout(ctx context.Context, userID string) (items []domain.CartItem, err error)
	DeleteCheckout(ctx context.Context, userID string) (err error)
}
