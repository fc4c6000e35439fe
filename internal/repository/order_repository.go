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
)

type MongoDBOrderRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewOrderRepository(db *mongo.Database) OrderRepository {
	return &MongoDBOrderRepositoryImpl{db: db}
}

func (r *MongoDBOrderRepositoryImpl) AddOrder(ctx context.Context, data domain.Order) (id primitive.ObjectID, err error) {
	now := time.Now()
	data.CreatedAt = now
	data.UpdatedAt = now

	result, err := r.db.Collection("orders").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddOrder").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), err
}

func (r *MongoDBOrderRepositoryImpl) GetOrderByID(ctx context.Context, id primitive.ObjectID) (order domain.Order, err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	err = r.db.Collection("orders").FindOne(ctx, filter).Decode(&order)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrderByID").Msg("")
		if err == mongo.ErrNoDocuments {
			return order, errs.ErrNotFound
		}

		return order, err
	}
	return order, nil
}

func (r *MongoDBOrderRepositoryImpl) UpdateOrderStatus(ctx context.Context, id primitive.ObjectID, from domain.OrderStatus, to domain.OrderStatus) (err error) {
	filter := bson.D{{Key: "_id", Value: id}, {Key: "orderStatus", Value: from}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "orderStatus", Value: to},
		{Key: "updatedAt", Value: time.Now()},
	}}}

	result, err := r.db.Collection("orders").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateOrderStatus").Msg("Failed to update order status")
		return
	}

	if result.MatchedCount == 0 {
		err = r.db.Collection("orders").FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Err()
		if err == mongo.ErrNoDocuments {
			return errs.ErrNotFound
		}
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "UpdateOrderStatus").Msg("")
			return
		}
		return errs.ErrConflict
	}

	return nil
}

func (r *MongoDBOrderRepositoryImpl) GetProductPendingOrders(ctx context.Context, productID primitive.ObjectID) (orders []ProductOrderView, err error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "product", Value: productID},
			{Key: "orderStatus", Value: domain.OrderStatusPending},
		}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "users"},
			{Key: "localField", Value: "buyer"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "buyerDetails"},
		}}},
		bson.D{{Key: "$unwind", Value: "$buyerDetails"}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
	}

	return r.aggregateOrders(ctx, pipeline, "GetProductPendingOrders")
}

func (r *MongoDBOrderRepositoryImpl) GetProductOrders(ctx context.Context, productID primitive.ObjectID) (orders []ProductOrderView, err error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "product", Value: productID}}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "users"},
			{Key: "localField", Value: "buyer"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "buyerDetails"},
		}}},
		bson.D{{Key: "$unwind", Value: "$buyerDetails"}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
	}

	return r.aggregateOrders(ctx, pipeline, "GetProductOrders")
}

func (r *MongoDBOrderRepositoryImpl) aggregateOrders(ctx context.Context, pipeline mongo.Pipeline, component string) (orders []ProductOrderView, err error) {
	cursor, err := r.db.Collection("orders").Aggregate(ctx, pipeline)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
		return
	}

	if err = cursor.All(ctx, &orders); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
		return
	}

	return orders, nil
}

// HandleTrx runs fn inside a single Mongo session transaction so the paired
// order/product writes commit or abort together.
func (r *MongoDBOrderRepositoryImpl) HandleTrx(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := r.db.Client().StartSession()
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "HandleTrx").Msg("")
		return err
	}

	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		err := fn(sessCtx)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "HandleTrx").Msg("")
		}
		return nil, err
	})

	return err
}
