package repository

import (
	"context"

	"github.com/AsadUllahBilal/TechThrive/internal/domain"
	pkgdto "github.com/AsadUllahBilal/TechThrive/pkg/dto"
	"github.com/AsadUllahBilal/TechThrive/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBOrderRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewOrderRepository(db *mongo.Database) OrderRepository {
	return &MongoDBOrderRepositoryImpl{db: db}
}

func (r *MongoDBOrderRepositoryImpl) AddOrder(ctx context.Context, data domain.Order) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection("orders").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddOrder").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), err
}

func (r *MongoDBOrderRepositoryImpl) GetOrdersByUserID(ctx context.Context, userID string) (data []domain.Order, err error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrdersByUserID").Msg("")
		return nil, errs.ErrNotFound
	}

	filter := bson.D{{Key: "user_id", Value: id}}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.db.Collection("orders").Find(ctx, filter, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrdersByUserID").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrdersByUserID").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBOrderRepositoryImpl) GetOrders(ctx context.Context, param pkgdto.Filter) (data []domain.Order, err error) {
	filter := bson.D{}
	if param.PaymentStatus != "" {
		filter = append(filter, bson.E{Key: "payment_status", Value: param.PaymentStatus})
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if param.Limit != 0 && param.Page != 0 {
		opts = opts.SetSkip((int64(param.Page) - 1) * int64(param.Limit)).SetLimit(int64(param.Limit))
	}

	cursor, err := r.db.Collection("orders").Find(ctx, filter, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrders").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrders").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBOrderRepositoryImpl) GetOrderByID(ctx context.Context, id string) (order domain.Order, err error) {
	orderID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrderByID").Msg("")
		return order, errs.ErrNotFound
	}

	filter := bson.D{{Key: "_id", Value: orderID}}

	err = r.db.Collection("orders").FindOne(ctx, filter).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return order, errs.ErrNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrderByID").Msg("")

		return order, err
	}
	return order, nil
}

func (r *MongoDBOrderRepositoryImpl) UpdateOrderStatus(ctx context.Context, id string, paymentStatus string, shippingStatus string) (err error) {
	orderID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateOrderStatus").Msg("")
		return errs.ErrNotFound
	}

	set := bson.D{}
	if paymentStatus != "" {
		set = append(set, bson.E{Key: "payment_status", Value: paymentStatus})
	}
	if shippingStatus != "" {
		set = append(set, bson.E{Key: "shipping_status", Value: shippingStatus})
	}

	filter := bson.D{{Key: "_id", Value: orderID}}
	update := bson.D{{Key: "$set", Value: set}}

	result, err := r.db.Collection("orders").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateOrderStatus").Msg("Failed to update order")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (r *MongoDBOrderRepositoryImpl) CountOrders(ctx context.Context) (count int64, err error) {
	count, err = r.db.Collection("orders").CountDocuments(ctx, bson.D{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CountOrders").Msg("")
	}

	return
}

func (r *MongoDBOrderRepositoryImpl) CountOrdersSince(ctx context.Context, since int64) (count int64, err error) {
	filter := bson.D{{Key: "created_at", Value: bson.D{{Key: "$gte", Value: since}}}}
	count, err = r.db.Collection("orders").CountDocuments(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CountOrdersSince").Msg("")
	}

	return
}

func (r *MongoDBOrderRepositoryImpl) GetOrderStatusCounts(ctx context.Context) (counts map[string]int64, err error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$payment_status"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := r.db.Collection("orders").Aggregate(ctx, pipeline)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrderStatusCounts").Msg("")
		return
	}

	var rows []struct {
		Status string `bson:"_id"`
		Count  int64  `bson:"count"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrderStatusCounts").Msg("")
		return
	}

	counts = make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}

	return counts, nil
}

func (r *MongoDBOrderRepositoryImpl) GetTotalRevenue(ctx context.Context) (revenue float64, err error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "payment_status", Value: domain.PaymentStatusPaid}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$total_price"}}},
		}}},
	}

	cursor, err := r.db.Collection("orders").Aggregate(ctx, pipeline)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetTotalRevenue").Msg("")
		return
	}

	var rows []struct {
		Total float64 `bson:"total"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetTotalRevenue").Msg("")
		return
	}

	if len(rows) == 0 {
		return 0, nil
	}

	return rows[0].Total, nil
}

func (r *MongoDBOrderRepositoryImpl) GetTotalRevenueSince(ctx context.Context, since int64) (revenue float64, err error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{
			{Key: "payment_status", Value: domain.PaymentStatusPaid},
			{Key: "created_at", Value: bson.D{{Key: "$gte", Value: since}}},
		}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$total_price"}}},
		}}},
	}

	cursor, err := r.db.Collection("orders").Aggregate(ctx, pipeline)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetTotalRevenueSince").Msg("")
		return
	}

	var rows []struct {
		Total float64 `bson:"total"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetTotalRevenueSince").Msg("")
		return
	}

	if len(rows) == 0 {
		return 0, nil
	}

	return rows[0].Total, nil
}
