package repository

import (
	"context"
	"time"

	"github.com/azor-ahai1/SwapSpace/internal/domain"
	"github.com/azor-ahai1/SwapSpace/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBMessageRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewMessageRepository(db *mongo.Database) MessageRepository {
	return &MongoDBMessageRepositoryImpl{db: db}
}

func (r *MongoDBMessageRepositoryImpl) AddMessage(ctx context.Context, data domain.Message) (id primitive.ObjectID, err error) {
	now := time.Now()
	data.CreatedAt = now
	data.UpdatedAt = now

	result, err := r.db.Collection("messages").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddMessage").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), err
}

func (r *MongoDBMessageRepositoryImpl) GetMessageByID(ctx context.Context, id primitive.ObjectID) (message domain.Message, err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	err = r.db.Collection("messages").FindOne(ctx, filter).Decode(&message)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetMessageByID").Msg("")
		if err == mongo.ErrNoDocuments {
			return message, errs.ErrNotFound
		}
		return message, err
	}

	return
}

func (r *MongoDBMessageRepositoryImpl) GetConversation(ctx context.Context, first primitive.ObjectID, second primitive.ObjectID) (messages []domain.Message, err error) {
	filter := bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: "sender", Value: first}, {Key: "receiver", Value: second}},
		bson.D{{Key: "sender", Value: second}, {Key: "receiver", Value: first}},
	}}}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cursor, err := r.db.Collection("messages").Find(ctx, filter, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetConversation").Msg("")
		return
	}

	if err = cursor.All(ctx, &messages); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetConversation").Msg("")
		return
	}

	return messages, nil
}
