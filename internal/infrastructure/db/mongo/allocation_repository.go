package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/thoughts-cell/Property-Management-System/internal/core/domain"
)

const allocationsCollection = "allocations"

type MongoAllocationRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewAllocationRepository(db *mongo.Database) *MongoAllocationRepository {
	return &MongoAllocationRepository{db: db, coll: db.Collection(allocationsCollection)}
}

type mongoAllocation struct {
	ID         int64 `bson:"_id"`
	ManagerID  int64 `bson:"manager_id"`
	PropertyID int64 `bson:"property_id"`
	CreatedAt  int64 `bson:"created_at"`
}

func (r *MongoAllocationRepository) Create(ctx context.Context, allocation *domain.Allocation) (*domain.Allocation, error) {
	id, err := nextID(ctx, r.db, allocationsCollection)
	if err != nil {
		return nil, err
	}

	doc := mongoAllocation{
		ID:         id,
		ManagerID:  allocation.ManagerID,
		PropertyID: allocation.PropertyID,
		CreatedAt:  allocation.CreatedAt.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert allocation: %w", err)
	}

	created := *allocation
	created.ID = id
	return &created, nil
}

func (r *MongoAllocationRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete allocation: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAllocationNotFound
	}
	return nil
}

func (r *MongoAllocationRepository) FindByID(ctx context.Context, id int64) (*domain.Allocation, error) {
	var ma mongoAllocation
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&ma); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrAllocationNotFound
		}
		return nil, fmt.Errorf("find allocation: %w", err)
	}
	return fromMongoAllocation(&ma), nil
}

func (r *MongoAllocationRepository) List(ctx context.Context) ([]*domain.Allocation, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoAllocationRepository) ListByManager(ctx context.Context, managerID int64) ([]*domain.Allocation, error) {
	return r.find(ctx, bson.M{"manager_id": managerID})
}

func (r *MongoAllocationRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count allocations: %w", err)
	}
	return n, nil
}

func (r *MongoAllocationRepository) CountByManager(ctx context.Context, managerID int64) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"manager_id": managerID})
	if err != nil {
		return 0, fmt.Errorf("count allocations for manager %d: %w", managerID, err)
	}
	return n, nil
}

func (r *MongoAllocationRepository) find(ctx context.Context, filter bson.M) ([]*domain.Allocation, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list allocations: %w", err)
	}
	defer cursor.Close(ctx)

	var allocations []*domain.Allocation
	for cursor.Next(ctx) {
		var ma mongoAllocation
		if err := cursor.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode allocation: %w", err)
		}
		allocations = append(allocations, fromMongoAllocation(&ma))
	}
	return allocations, cursor.Err()
}

func fromMongoAllocation(ma *mongoAllocation) *domain.Allocation {
	return &domain.Allocation{
		ID:         ma.ID,
		ManagerID:  ma.ManagerID,
		PropertyID: ma.PropertyID,
		CreatedAt:  unixToTime(ma.CreatedAt),
	}
}
