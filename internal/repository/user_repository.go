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

type MongoDBUserRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewUserRepository(db *mongo.Database) UserRepository {
	return &MongoDBUserRepositoryImpl{db: db}
}

func (r *MongoDBUserRepositoryImpl) AddUser(ctx context.Context, data domain.User) (id primitive.ObjectID, err error) {
	now := time.Now()
	data.CreatedAt = now
	data.UpdatedAt = now

	result, err := r.db.Collection("users").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddUser").Msg("")
		if mongo.IsDuplicateKeyError(err) {
			return id, errs.ErrEmailAlreadyUsed
		}
		return
	}

	return result.InsertedID.(primitive.ObjectID), err
}

func (r *MongoDBUserRepositoryImpl) GetUserByEmail(ctx context.Context, email string) (user domain.User, err error) {
	filter := bson.D{{Key: "email", Value: email}}

	err = r.db.Collection("users").FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return user, nil
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUserByEmail").Msg("")
		return user, errs.ErrInternalServer
	}

	return
}

func (r *MongoDBUserRepositoryImpl) GetUserByID(ctx context.Context, id primitive.ObjectID) (user domain.User, err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	err = r.db.Collection("users").FindOne(ctx, filter).Decode(&user)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUserByID").Msg("")
		if err == mongo.ErrNoDocuments {
			return user, errs.ErrAccountNotFound
		}
		return user, err
	}

	return
}

func (r *MongoDBUserRepositoryImpl) UpdateProfile(ctx context.Context, data domain.User) (err error) {
	set := bson.D{
		{Key: "name", Value: data.Name},
		{Key: "email", Value: data.Email},
		{Key: "phoneNumber", Value: data.PhoneNumber},
		{Key: "instaID", Value: data.InstaID},
		{Key: "updatedAt", Value: time.Now()},
	}
	if data.ProfileImage != "" {
		set = append(set, bson.E{Key: "profileImage", Value: data.ProfileImage})
	}

	filter := bson.D{{Key: "_id", Value: data.ID}}
	update := bson.D{{Key: "$set", Value: set}}

	result, err := r.db.Collection("users").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateProfile").Msg("Failed to update user")
		if mongo.IsDuplicateKeyError(err) {
			return errs.ErrEmailAlreadyUsed
		}
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrAccountNotFound
	}

	return nil
}

func (r *MongoDBUserRepositoryImpl) UpdateRefreshToken(ctx context.Context, id primitive.ObjectID, refreshToken string) (err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	var update bson.D
	if refreshToken == "" {
		update = bson.D{{Key: "$unset", Value: bson.D{{Key: "refreshToken", Value: 1}}}}
	} else {
		update = bson.D{{Key: "$set", Value: bson.D{{Key: "refreshToken", Value: refreshToken}}}}
	}

	result, err := r.db.Collection("users").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateRefreshToken").Msg("")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrAccountNotFound
	}

	return nil
}

func (r *MongoDBUserRepositoryImpl) UpdatePassword(ctx context.Context, id primitive.ObjectID, hashedPassword string) (err error) {
	filter := bson.D{{Key: "_id", Value: id}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "password", Value: hashedPassword},
		{Key: "updatedAt", Value: time.Now()},
	}}}

	result, err := r.db.Collection("users").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdatePassword").Msg("")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrAccountNotFound
	}

	return nil
}

func (r *MongoDBUserRepositoryImpl) GetUserOrderHistory(ctx context.Context, id primitive.ObjectID) (view OrderHistoryView, err error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "_id", Value: id}}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "orders"},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "buyer"},
			{Key: "as", Value: "buyerOrders"},
		}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "orders"},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "seller"},
			{Key: "as", Value: "sellerOrders"},
		}}},
		bson.D{{Key: "$addFields", Value: bson.D{
			{Key: "totalBuyerOrders", Value: bson.D{{Key: "$size", Value: "$buyerOrders"}}},
			{Key: "totalSellerOrders", Value: bson.D{{Key: "$size", Value: "$sellerOrders"}}},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "buyerOrders", Value: 1},
			{Key: "sellerOrders", Value: 1},
			{Key: "totalBuyerOrders", Value: 1},
			{Key: "totalSellerOrders", Value: 1},
		}}},
	}

	cursor, err := r.db.Collection("users").Aggregate(ctx, pipeline)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUserOrderHistory").Msg("")
		return
	}

	var results []OrderHistoryView
	if err = cursor.All(ctx, &results); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUserOrderHistory").Msg("")
		return
	}

	if len(results) == 0 {
		return view, nil
	}

	return results[0], nil
}

func (r *MongoDBUserRepositoryImpl) GetUserProductHistory(ctx context.Context, id primitive.ObjectID) (view ProductHistoryView, err error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "_id", Value: id}}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "products"},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "owner"},
			{Key: "as", Value: "productHistory"},
		}}},
		bson.D{{Key: "$addFields", Value: bson.D{
			{Key: "totalProducts", Value: bson.D{{Key: "$size", Value: "$productHistory"}}},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "productHistory", Value: 1},
			{Key: "totalProducts", Value: 1},
		}}},
	}

	cursor, err := r.db.Collection("users").Aggregate(ctx, pipeline)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUserProductHistory").Msg("")
		return
	}

	var results []ProductHistoryView
	if err = cursor.All(ctx, &results); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUserProductHistory").Msg("")
		return
	}

	if len(results) == 0 {
		return view, nil
	}

	return results[0], nil
}

// dashboardFields computes the counters shared by the dashboard and profile
// views. Revenue only counts Accepted orders where the user is the seller,
// filtered per order.
func dashboardFields(productsField string, buyerOrdersExpr, sellerOrdersExpr interface{}) bson.D {
	return bson.D{
		{Key: "totalProducts", Value: bson.D{{Key: "$size", Value: "$" + productsField}}},
		{Key: "availableProducts", Value: bson.D{{Key: "$size", Value: bson.D{
			{Key: "$filter", Value: bson.D{
				{Key: "input", Value: "$" + productsField},
				{Key: "as", Value: "product"},
				{Key: "cond", Value: bson.D{{Key: "$eq", Value: bson.A{"$$product.productStatus", domain.ProductStatusAvailable}}}},
			}},
		}}}},
		{Key: "totalBuyerOrders", Value: bson.D{{Key: "$size", Value: buyerOrdersExpr}}},
		{Key: "totalSellerOrders", Value: bson.D{{Key: "$size", Value: sellerOrdersExpr}}},
		{Key: "totalRevenue", Value: bson.D{{Key: "$sum", Value: bson.D{
			{Key: "$map", Value: bson.D{
				{Key: "input", Value: bson.D{{Key: "$filter", Value: bson.D{
					{Key: "input", Value: sellerOrdersExpr},
					{Key: "as", Value: "order"},
					{Key: "cond", Value: bson.D{{Key: "$eq", Value: bson.A{"$$order.orderStatus", domain.OrderStatusAccepted}}}},
				}}}},
				{Key: "as", Value: "order"},
				{Key: "in", Value: "$$order.price"},
			}},
		}}}},
	}
}

func (r *MongoDBUserRepositoryImpl) GetUserDashboard(ctx context.Context, id primitive.ObjectID) (view DashboardView, err error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "_id", Value: id}}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "products"},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "owner"},
			{Key: "as", Value: "products"},
		}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "orders"},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "buyer"},
			{Key: "as", Value: "buyerOrders"},
		}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "orders"},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "seller"},
			{Key: "as", Value: "sellerOrders"},
		}}},
		bson.D{{Key: "$addFields", Value: dashboardFields("products", "$buyerOrders", "$sellerOrders")}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "totalProducts", Value: 1},
			{Key: "availableProducts", Value: 1},
			{Key: "totalBuyerOrders", Value: 1},
			{Key: "totalSellerOrders", Value: 1},
			{Key: "totalRevenue", Value: 1},
		}}},
	}

	cursor, err := r.db.Collection("users").Aggregate(ctx, pipeline)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUserDashboard").Msg("")
		return
	}

	var results []DashboardView
	if err = cursor.All(ctx, &results); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUserDashboard").Msg("")
		return
	}

	if len(results) == 0 {
		return view, nil
	}

	return results[0], nil
}

func (r *MongoDBUserRepositoryImpl) GetUserProfile(ctx context.Context, id primitive.ObjectID) (view ProfileView, err error) {
	orderHistoryPipeline := bson.A{
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "$expr", Value: bson.D{
				{Key: "$or", Value: bson.A{
					bson.D{{Key: "$eq", Value: bson.A{"$buyer", "$$userId"}}},
					bson.D{{Key: "$eq", Value: bson.A{"$seller", "$$userId"}}},
				}},
			}},
		}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "products"},
			{Key: "localField", Value: "product"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "productDetails"},
		}}},
		bson.D{{Key: "$unwind", Value: "$productDetails"}},
	}

	buyerOrdersExpr := bson.D{{Key: "$filter", Value: bson.D{
		{Key: "input", Value: "$orderHistory"},
		{Key: "as", Value: "order"},
		{Key: "cond", Value: bson.D{{Key: "$eq", Value: bson.A{"$$order.buyer", "$_id"}}}},
	}}}
	sellerOrdersExpr := bson.D{{Key: "$filter", Value: bson.D{
		{Key: "input", Value: "$orderHistory"},
		{Key: "as", Value: "order"},
		{Key: "cond", Value: bson.D{{Key: "$eq", Value: bson.A{"$$order.seller", "$_id"}}}},
	}}}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "_id", Value: id}}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "products"},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "owner"},
			{Key: "as", Value: "productHistory"},
		}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "orders"},
			{Key: "let", Value: bson.D{{Key: "userId", Value: "$_id"}}},
			{Key: "pipeline", Value: orderHistoryPipeline},
			{Key: "as", Value: "orderHistory"},
		}}},
		bson.D{{Key: "$addFields", Value: dashboardFields("productHistory", buyerOrdersExpr, sellerOrdersExpr)}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "name", Value: 1},
			{Key: "email", Value: 1},
			{Key: "phoneNumber", Value: 1},
			{Key: "instaID", Value: 1},
			{Key: "profileImage", Value: 1},
			{Key: "createdAt", Value: 1},
			{Key: "productHistory", Value: 1},
			{Key: "orderHistory", Value: 1},
			{Key: "totalProducts", Value: 1},
			{Key: "availableProducts", Value: 1},
			{Key: "totalBuyerOrders", Value: 1},
			{Key: "totalSellerOrders", Value: 1},
			{Key: "totalRevenue", Value: 1},
		}}},
	}

	cursor, err := r.db.Collection("users").Aggregate(ctx, pipeline)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUserProfile").Msg("")
		return
	}

	var results []ProfileView
	if err = cursor.All(ctx, &results); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUserProfile").Msg("")
		return
	}

	if len(results) == 0 {
		return view, errs.ErrAccountNotFound
	}

	return results[0], nil
}
