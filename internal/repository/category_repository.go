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

type MongoDBCategoryRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewCategoryRepository(db *mongo.Database) CategoryRepository {
	return &MongoDBCategoryRepositoryImpl{db: db}
}

func (r *MongoDBCategoryRepositoryImpl) AddCategory(ctx context.Context, data domain.Category) (id primitive.ObjectID, err error) {
	now := time.Now()
	data.CreatedAt = now
	data.UpdatedAt = now

	result, err := r.db.Collection("categories").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddCategory").Msg("")
		if mongo.IsDuplicateKeyError(err) {
			return id, errs.ErrConflict
		}
		return
	}

	return result.InsertedID.(primitive.ObjectID), err
}

func (r *MongoDBCategoryRepositoryImpl) GetCategoryByName(ctx context.Context, name string) (category domain.Category, err error) {
	filter := bson.D{{Key: "name", Value: name}}

	err = r.db.Collection("categories").FindOne(ctx, filter).Decode(&category)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return category, nil
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCategoryByName").Msg("")
		return category, errs.ErrInternalServer
	}

	return
}

func (r *MongoDBCategoryRepositoryImpl) GetCategoryByID(ctx context.Context, id primitive.ObjectID) (category domain.Category, err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	err = r.db.Collection("categories").FindOne(ctx, filter).Decode(&category)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCategoryByID").Msg("")
		if err == mongo.ErrNoDocuments {
			return category, errs.ErrNotFound
		}
		return category, err
	}

	return
}

func (r *MongoDBCategoryRepositoryImpl) GetCategoriesWithProductCount(ctx context.Context) (categories []CategoryCountView, err error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "products"},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "category"},
			{Key: "as", Value: "products"},
		}}},
		bson.D{{Key: "$addFields", Value: bson.D{
			{Key: "productCount", Value: bson.D{{Key: "$size", Value: "$products"}}},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "name", Value: 1},
			{Key: "productCount", Value: 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "productCount", Value: -1}}}},
	}

	cursor, err := r.db.Collection("categories").Aggregate(ctx, pipeline)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCategoriesWithProductCount").Msg("")
		return
	}

	if err = cursor.All(ctx, &categories); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCategoriesWithProductCount").Msg("")
		return
	}

	return categories, nil
}
