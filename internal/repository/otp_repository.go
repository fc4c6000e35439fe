package repository

import (
	"context"
	"time"

	"github.com/azor-ahai1/SwapSpace/internal/domain"
	"github.com/azor-ahai1/SwapSpace/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBOTPRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewOTPRepository(db *mongo.Database) OTPRepository {
	return &MongoDBOTPRepositoryImpl{db: db}
}

func (r *MongoDBOTPRepositoryImpl) UpsertOTP(ctx context.Context, data domain.OTP) (err error) {
	data.CreatedAt = time.Now()

	filter := bson.D{{Key: "email", Value: data.Email}}
	opts := options.Replace().SetUpsert(true)

	_, err = r.db.Collection("otps").ReplaceOne(ctx, filter, data, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpsertOTP").Msg("")
		return
	}

	return nil
}

func (r *MongoDBOTPRepositoryImpl) GetOTPByEmail(ctx context.Context, email string) (otp domain.OTP, err error) {
	filter := bson.D{{Key: "email", Value: email}}

	err = r.db.Collection("otps").FindOne(ctx, filter).Decode(&otp)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return otp, errs.ErrInvalidOTP
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOTPByEmail").Msg("")
		return otp, err
	}

	return
}

func (r *MongoDBOTPRepositoryImpl) DeleteOTPByEmail(ctx context.Context, email string) (err error) {
	filter := bson.D{{Key: "email", Value: email}}

	_, err = r.db.Collection("otps").DeleteOne(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteOTPByEmail").Msg("")
		return
	}

	return nil
}
