package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Slug        string             `bson:"slug" json:"slug"`
	Description string             `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price"`
	Stock       int64              `bson:"stock" json:"stock"`
	CategoryID  primitive.ObjectID `bson:"category_id" json:"category_id"`
	Brand       string             `bson:"brand,omitempty" json:"brand,omitempty"`
	Images      []string           `bson:"images" json:"images"`

	// Derived from the review set. Written only by the rating aggregator,
	// never by product create/update paths.
	AverageRating float64 `bson:"average_rating" json:"average_rating"`
	TotalReviews  int64   `bson:"total_reviews" json:"total_reviews"`

	CreatedAt int64 `bson:"created_at" json:"created_at"`
	UpdatedAt int64 `bson:"updated_at" json:"updated_at"`
}

type Category struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Slug        string             `bson:"slug" json:"slug"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	CreatedAt   int64              `bson:"created_at" json:"created_at"`
}
