package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Email          string             `bson:"email" json:"email"`
	HashedPassword string             `bson:"hashed_password" json:"-"`
	Role           string             `bson:"role" json:"role"`
	ExternalID     string             `bson:"external_id" json:"external_id"`
	Verified       bool               `bson:"verified" json:"verified"`
	OTP            string             `bson:"otp,omitempty" json:"-"`
	OTPExpiresAt   int64              `bson:"otp_expires_at,omitempty" json:"-"`
	CreatedAt      int64              `bson:"created_at" json:"created_at"`
	UpdatedAt      int64              `bson:"updated_at" json:"updated_at"`
}
