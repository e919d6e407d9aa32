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

type MongoDBProductRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewProductRepository(db *mongo.Database) ProductRepository {
	return &MongoDBProductRepositoryImpl{db: db}
}

func (r *MongoDBProductRepositoryImpl) AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection("products").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddProduct").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), err
}

func (r *MongoDBProductRepositoryImpl) GetProducts(ctx context.Context, param pkgdto.Filter) (data []domain.Product, err error) {
	filter := bson.D{}
	if param.Category != "" {
		categoryID, err := primitive.ObjectIDFromHex(param.Category)
		if err != nil {
			return nil, errs.ErrClient
		}
		filter = append(filter, bson.E{Key: "category_id", Value: categoryID})
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if param.Limit != 0 && param.Page != 0 {
		opts = opts.SetSkip((int64(param.Page) - 1) * int64(param.Limit)).SetLimit(int64(param.Limit))
	}

	cursor, err := r.db.Collection("products").Find(ctx, filter, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBProductRepositoryImpl) GetProductByID(ctx context.Context, id string) (product domain.Product, err error) {
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductByID").Msg("")
		return product, errs.ErrNotFound
	}

	filter := bson.D{{Key: "_id", Value: productID}}

	err = r.db.Collection("products").FindOne(ctx, filter).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return product, errs.ErrNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductByID").Msg("")

		return product, err
	}
	return product, nil
}

func (r *MongoDBProductRepositoryImpl) UpdateProduct(ctx context.Context, data domain.Product) (err error) {
	filter := bson.D{{Key: "_id", Value: data.ID}}

	// Derived review stats are deliberately left out of this update; only the
	// aggregator path writes them.
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: data.Name},
		{Key: "slug", Value: data.Slug},
		{Key: "description", Value: data.Description},
		{Key: "price", Value: data.Price},
		{Key: "stock", Value: data.Stock},
		{Key: "category_id", Value: data.CategoryID},
		{Key: "brand", Value: data.Brand},
		{Key: "images", Value: data.Images},
		{Key: "updated_at", Value: data.UpdatedAt},
	}}}

	result, err := r.db.Collection("products").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateProduct").Msg("Failed to update product")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (r *MongoDBProductRepositoryImpl) UpdateReviewStats(ctx context.Context, id string, stats domain.ReviewStats) (err error) {
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateReviewStats").Msg("")
		return errs.ErrNotFound
	}

	filter := bson.D{{Key: "_id", Value: productID}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "average_rating", Value: stats.AverageRating},
		{Key: "total_reviews", Value: stats.TotalReviews},
	}}}

	result, err := r.db.Collection("products").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateReviewStats").Msg("Failed to update review stats")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (r *MongoDBProductRepositoryImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteProduct").Msg("")
		return errs.ErrNotFound
	}

	filter := bson.D{{Key: "_id", Value: productID}}

	result, err := r.db.Collection("products").DeleteOne(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteProduct").Msg("")
		return
	}

	if result.DeletedCount == 0 {
		return errs.ErrNotFound
	}

	return
}

func (r *MongoDBProductRepositoryImpl) CountProducts(ctx context.Context) (count int64, err error) {
	count, err = r.db.Collection("products").CountDocuments(ctx, bson.D{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CountProducts").Msg("")
	}

	return
}
