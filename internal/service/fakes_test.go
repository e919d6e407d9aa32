package service

import (
	"context"
	"errors"

	"github.com/AsadUllahBilal/TechThrive/internal/domain"
	pkgdto "github.com/AsadUllahBilal/TechThrive/pkg/dto"
	"github.com/AsadUllahBilal/TechThrive/pkg/errs"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errStoreDown = errors.New("store down")

type fakeProductRepo struct {
	products map[string]domain.Product
	stats    map[string]domain.ReviewStats
}

func newFakeProductRepo(products ...domain.Product) *fakeProductRepo {
	r := &fakeProductRepo{
		products: map[string]domain.Product{},
		stats:    map[string]domain.ReviewStats{},
	}
	for _, p := range products {
		r.products[p.ID.Hex()] = p
	}
	return r
}

func (r *fakeProductRepo) AddProduct(ctx context.Context, data domain.Product) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	data.ID = id
	r.products[id.Hex()] = data
	return id, nil
}

func (r *fakeProductRepo) GetProducts(ctx context.Context, param pkgdto.Filter) (data []domain.Product, err error) {
	for _, p := range r.products {
		data = append(data, p)
	}
	return data, nil
}

func (r *fakeProductRepo) GetProductByID(ctx context.Context, id string) (domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return domain.Product{}, errs.ErrNotFound
	}
	return p, nil
}

func (r *fakeProductRepo) UpdateProduct(ctx context.Context, data domain.Product) error {
	r.products[data.ID.Hex()] = data
	return nil
}

func (r *fakeProductRepo) UpdateReviewStats(ctx context.Context, id string, stats domain.ReviewStats) error {
	if _, ok := r.products[id]; !ok {
		return errs.ErrNotFound
	}
	r.stats[id] = stats
	p := r.products[id]
	p.AverageRating = stats.AverageRating
	p.TotalReviews = stats.TotalReviews
	r.products[id] = p
	return nil
}

func (r *fakeProductRepo) DeleteProduct(ctx context.Context, id string) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) CountProducts(ctx context.Context) (int64, error) {
	return int64(len(r.products)), nil
}

type fakeReviewRepo struct {
	reviews []domain.Review
	addErr  error
}

func (r *fakeReviewRepo) AddReview(ctx context.Context, data domain.Review) (primitive.ObjectID, error) {
	if r.addErr != nil {
		return primitive.NilObjectID, r.addErr
	}
	data.ID = primitive.NewObjectID()
	r.reviews = append(r.reviews, data)
	return data.ID, nil
}

func (r *fakeReviewRepo) GetReviewsByProductID(ctx context.Context, productID string) (data []domain.Review, err error) {
	for _, review := range r.reviews {
		if review.ProductID.Hex() == productID {
			data = append(data, review)
		}
	}
	return data, nil
}

func (r *fakeReviewRepo) GetReviewByID(ctx context.Context, id string) (domain.Review, error) {
	for _, review := range r.reviews {
		if review.ID.Hex() == id {
			return review, nil
		}
	}
	return domain.Review{}, errs.ErrNotFound
}

func (r *fakeReviewRepo) DeleteReview(ctx context.Context, id string) error {
	for i, review := range r.reviews {
		if review.ID.Hex() == id {
			r.reviews = append(r.reviews[:i], r.reviews[i+1:]...)
			return nil
		}
	}
	return errs.ErrNotFound
}

func (r *fakeReviewRepo) HandleTrx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeUserRepo struct {
	users map[string]domain.User
}

func newFakeUserRepo(users ...domain.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]domain.User{}}
	for _, u := range users {
		r.users[u.ID.Hex()] = u
	}
	return r
}

func (r *fakeUserRepo) AddUser(ctx context.Context, data domain.User) (primitive.ObjectID, error) {
	data.ID = primitive.NewObjectID()
	r.users[data.ID.Hex()] = data
	return data.ID, nil
}

func (r *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, errs.ErrNotFound
}

func (r *fakeUserRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return domain.User{}, errs.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) MarkUserVerified(ctx context.Context, id string) error {
	u, ok := r.users[id]
	if !ok {
		return errs.ErrNotFound
	}
	u.Verified = true
	u.OTP = ""
	u.OTPExpiresAt = 0
	r.users[id] = u
	return nil
}

func (r *fakeUserRepo) GetUsers(ctx context.Context, param pkgdto.Filter) (data []domain.User, err error) {
	for _, u := range r.users {
		data = append(data, u)
	}
	return data, nil
}

func (r *fakeUserRepo) CountUsers(ctx context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func (r *fakeUserRepo) CountUsersSince(ctx context.Context, since int64) (int64, error) {
	var count int64
	for _, u := range r.users {
		if u.CreatedAt >= since {
			count++
		}
	}
	return count, nil
}

type fakeCartRepo struct {
	carts     map[string]domain.Cart
	checkouts map[string][]domain.CartItem
	saveErr   error
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{
		carts:     map[string]domain.Cart{},
		checkouts: map[string][]domain.CartItem{},
	}
}

func (r *fakeCartRepo) GetCart(ctx context.Context, userID string) (domain.Cart, error) {
	return r.carts[userID], nil
}

func (r *fakeCartRepo) SaveCart(ctx context.Context, userID string, cart domain.Cart) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.carts[userID] = cart
	return nil
}

func (r *fakeCartRepo) DeleteCart(ctx context.Context, userID string) error {
	delete(r.carts, userID)
	return nil
}

func (r *fakeCartRepo) SaveCheckout(ctx context.Context, userID string, items []domain.CartItem) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.checkouts[userID] = items
	return nil
}

func (r *fakeCartRepo) GetCheckout(ctx context.Context, userID string) ([]domain.CartItem, error) {
	items, ok := r.checkouts[userID]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return items, nil
}

func (r *fakeCartRepo) DeleteCheckout(ctx context.Context, userID string) error {
	delete(r.checkouts, userID)
	return nil
}

type fakeOrderRepo struct {
	orders []domain.Order
	addErr error
}

func (r *fakeOrderRepo) AddOrder(ctx context.Context, data domain.Order) (primitive.ObjectID, error) {
	if r.addErr != nil {
		return primitive.NilObjectID, r.addErr
	}
	data.ID = primitive.NewObjectID()
	r.orders = append(r.orders, data)
	return data.ID, nil
}

func (r *fakeOrderRepo) GetOrdersByUserID(ctx context.Context, userID string) (data []domain.Order, err error) {
	for _, o := range r.orders {
		if o.UserID.Hex() == userID {
			data = append(data, o)
		}
	}
	return data, nil
}

func (r *fakeOrderRepo) GetOrders(ctx context.Context, param pkgdto.Filter) ([]domain.Order, error) {
	return r.orders, nil
}

func (r *fakeOrderRepo) GetOrderByID(ctx context.Context, id string) (domain.Order, error) {
	for _, o := range r.orders {
		if o.ID.Hex() == id {
			return o, nil
		}
	}
	return domain.Order{}, errs.ErrNotFound
}

func (r *fakeOrderRepo) UpdateOrderStatus(ctx context.Context, id string, paymentStatus string, shippingStatus string) error {
	for i, o := range r.orders {
		if o.ID.Hex() == id {
			if paymentStatus != "" {
				r.orders[i].PaymentStatus = paymentStatus
			}
			if shippingStatus != "" {
				r.orders[i].ShippingStatus = shippingStatus
			}
			return nil
		}
	}
	return errs.ErrNotFound
}

func (r *fakeOrderRepo) CountOrders(ctx context.Context) (int64, error) {
	return int64(len(r.orders)), nil
}

func (r *fakeOrderRepo) CountOrdersSince(ctx context.Context, since int64) (int64, error) {
	var count int64
	for _, o := range r.orders {
		if o.CreatedAt >= since {
			count++
		}
	}
	return count, nil
}

func (r *fakeOrderRepo) GetOrderStatusCounts(ctx context.Context) (map[string]int64, error) {
	counts := map[string]int64{}
	for _, o := range r.orders {
		counts[o.PaymentStatus]++
	}
	return counts, nil
}

func (r *fakeOrderRepo) GetTotalRevenue(ctx context.Context) (float64, error) {
	var revenue float64
	for _, o := range r.orders {
		if o.PaymentStatus == domain.PaymentStatusPaid {
			revenue += o.TotalPrice
		}
	}
	return revenue, nil
}

func (r *fakeOrderRepo) GetTotalRevenueSince(ctx context.Context, since int64) (float64, error) {
	var revenue float64
	for _, o := range r.orders {
		if o.PaymentStatus == domain.PaymentStatusPaid && o.CreatedAt >= since {
			revenue += o.TotalPrice
		}
	}
	return revenue, nil
}

type publishedEvent struct {
	key       string
	eventType string
}

type fakePublisher struct {
	events []publishedEvent
}

func (p *fakePublisher) Publish(ctx context.Context, key string, eventType string, data interface{}) error {
	p.events = append(p.events, publishedEvent{key: key, eventType: eventType})
	return nil
}
