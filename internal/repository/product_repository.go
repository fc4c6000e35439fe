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

type MongoDBProductRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewProductRepository(db *mongo.Database) ProductRepository {
	return &MongoDBProductRepositoryImpl{db: db}
}

func (r *MongoDBProductRepositoryImpl) AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error) {
	now := time.Now()
	data.CreatedAt = now
	data.UpdatedAt = now

	result, err := r.db.Collection("products").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddProduct").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), err
}

func (r *MongoDBProductRepositoryImpl) GetProductByID(ctx context.Context, id primitive.ObjectID) (product domain.Product, err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	err = r.db.Collection("products").FindOne(ctx, filter).Decode(&product)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductByID").Msg("")
		if err == mongo.ErrNoDocuments {
			return product, errs.ErrNotFound
		}

		return product, err
	}
	return product, nil
}

func (r *MongoDBProductRepositoryImpl) GetProductDetail(ctx context.Context, id primitive.ObjectID) (view ProductDetailView, err error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "_id", Value: id}}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "categories"},
			{Key: "localField", Value: "category"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "categoryDetails"},
		}}},
		bson.D{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$categoryDetails"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "users"},
			{Key: "localField", Value: "owner"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "ownerDetails"},
		}}},
		bson.D{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$ownerDetails"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	}

	cursor, err := r.db.Collection("products").Aggregate(ctx, pipeline)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductDetail").Msg("")
		return
	}

	var results []ProductDetailView
	if err = cursor.All(ctx, &results); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductDetail").Msg("")
		return
	}

	if len(results) == 0 {
		return view, errs.ErrNotFound
	}

	return results[0], nil
}

func (r *MongoDBProductRepositoryImpl) GetProducts(ctx context.Context) (products []domain.Product, err error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.db.Collection("products").Find(ctx, bson.D{}, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}

	if err = cursor.All(ctx, &products); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}

	return products, nil
}

func (r *MongoDBProductRepositoryImpl) GetProductsByCategory(ctx context.Context, categoryID primitive.ObjectID) (products []domain.Product, err error) {
	filter := bson.D{{Key: "category", Value: categoryID}}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.db.Collection("products").Find(ctx, filter, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductsByCategory").Msg("")
		return
	}

	if err = cursor.All(ctx, &products); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductsByCategory").Msg("")
		return
	}

	return products, nil
}

// UpdateProductStatus is the conditional write the order lifecycle hangs
// off: the filter matches on the current status, so two racing callers can
// never both swap the same product out of Available.
func (r *MongoDBProductRepositoryImpl) UpdateProductStatus(ctx context.Context, id primitive.ObjectID, from domain.ProductStatus, to domain.ProductStatus) (err error) {
	filter := bson.D{{Key: "_id", Value: id}, {Key: "productStatus", Value: from}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "productStatus", Value: to},
		{Key: "updatedAt", Value: time.Now()},
	}}}

	result, err := r.db.Collection("products").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateProductStatus").Msg("Failed to update product status")
		return
	}

	if result.MatchedCount == 0 {
		err = r.db.Collection("products").FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Err()
		if err == mongo.ErrNoDocuments {
			return errs.ErrNotFound
		}
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "UpdateProductStatus").Msg("")
			return
		}
		return errs.ErrConflict
	}

	return nil
}
