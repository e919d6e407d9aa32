package repository

import (
	"context"

	"github.com/AsadUllahBilal/TechThrive/internal/domain"
	"github.com/AsadUllahBilal/TechThrive/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBReviewRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewReviewRepository(db *mongo.Database) ReviewRepository {
	return &MongoDBReviewRepositoryImpl{db: db}
}

func (r *MongoDBReviewRepositoryImpl) AddReview(ctx context.Context, data domain.Review) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection("reviews").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddReview").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), err
}

func (r *MongoDBReviewRepositoryImpl) GetReviewsByProductID(ctx context.Context, productID string) (data []domain.Review, err error) {
	id, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetReviewsByProductID").Msg("")
		return nil, errs.ErrNotFound
	}

	filter := bson.D{{Key: "product", Value: id}}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.db.Collection("reviews").Find(ctx, filter, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetReviewsByProductID").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetReviewsByProductID").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBReviewRepositoryImpl) GetReviewByID(ctx context.Context, id string) (review domain.Review, err error) {
	reviewID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetReviewByID").Msg("")
		return review, errs.ErrNotFound
	}

	filter := bson.D{{Key: "_id", Value: reviewID}}

	err = r.db.Collection("reviews").FindOne(ctx, filter).Decode(&review)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return review, errs.ErrNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetReviewByID").Msg("")

		return review, err
	}
	return review, nil
}

func (r *MongoDBReviewRepositoryImpl) DeleteReview(ctx context.Context, id string) (err error) {
	reviewID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteReview").Msg("")
		return errs.ErrNotFound
	}

	filter := bson.D{{Key: "_id", Value: reviewID}}

	result, err := r.db.Collection("reviews").DeleteOne(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteReview").Msg("")
		return
	}

	if result.DeletedCount == 0 {
		return errs.ErrNotFound
	}

	return
}

// HandleTrx runs fn inside a Mongo session so a review write and the stat
// write that follows it become visible together.
func (r *MongoDBReviewRepositoryImpl) HandleTrx(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := r.db.Client().StartSession()
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "HandleTrx").Msg("")
		return err
	}

	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessionCtx mongo.SessionContext) (interface{}, error) {
		err := fn(sessionCtx)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "HandleTrx").Msg("")
		}
		return nil, err
	})

	return err
}
