package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/thoughts-cell/Property-Management-System/internal/core/domain"
)

const managersCollection = "managers"

type MongoManagerRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewManagerRepository(db *mongo.Database) *MongoManagerRepository {
	return &MongoManagerRepository{db: db, coll: db.Collection(managersCollection)}
}

type mongoManager struct {
	ID        int64  `bson:"_id"`
	FirstName string `bson:"first_name"`
	LastName  string `bson:"last_name"`
	Phone     string `bson:"phone,omitempty"`
	Mobile    string `bson:"mobile,omitempty"`
	Email     string `bson:"email,omitempty"`
}

func (r *MongoManagerRepository) Create(ctx context.Context, manager *domain.Manager) (*domain.Manager, error) {
	id, err := nextID(ctx, r.db, managersCollection)
	if err != nil {
		return nil, err
	}

	doc := toMongoManager(manager)
	doc.ID = id
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert manager: %w", err)
	}

	created := *manager
	created.ID = id
	return &created, nil
}

func (r *MongoManagerRepository) Update(ctx context.Context, manager *domain.Manager) (*domain.Manager, error) {
	doc := toMongoManager(manager)
	doc.ID = manager.ID
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": manager.ID}, doc)
	if err != nil {
		return nil, fmt.Errorf("update manager: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrManagerNotFound
	}
	return manager, nil
}

func (r *MongoManagerRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete manager: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrManagerNotFound
	}
	return nil
}

func (r *MongoManagerRepository) FindByID(ctx context.Context, id int64) (*domain.Manager, error) {
	var mm mongoManager
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&mm); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrManagerNotFound
		}
		return nil, fmt.Errorf("find manager: %w", err)
	}
	return fromMongoManager(&mm), nil
}

func (r *MongoManagerRepository) List(ctx context.Context) ([]*domain.Manager, error) {
	return r.find(ctx, bson.M{})
}

// SearchByName filters on first name, last name, or both; empty terms are
// ignored.
func (r *MongoManagerRepository) SearchByName(ctx context.Context, firstName, lastName string) ([]*domain.Manager, error) {
	filter := bson.M{}
	if firstName != "" {
		filter["first_name"] = firstName
	}
	if lastName != "" {
		filter["last_name"] = lastName
	}
	return r.find(ctx, filter)
}

func (r *MongoManagerRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count managers: %w", err)
	}
	return n, nil
}

func (r *MongoManagerRepository) find(ctx context.Context, filter bson.M) ([]*domain.Manager, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list managers: %w", err)
	}
	defer cursor.Close(ctx)

	var managers []*domain.Manager
	for cursor.Next(ctx) {
		var mm mongoManager
		if err := cursor.Decode(&mm); err != nil {
			return nil, fmt.Errorf("decode manager: %w", err)
		}
		managers = append(managers, fromMongoManager(&mm))
	}
	return managers, cursor.Err()
}

func toMongoManager(m *domain.Manager) mongoManager {
	return mongoManager{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Phone:     m.Phone,
		Mobile:    m.Mobile,
		Email:     m.Email,
	}
}

func fromMongoManager(mm *mongoManager) *domain.Manager {
	return &domain.Manager{
		ID:        mm.ID,
		FirstName: mm.FirstName,
		LastName:  mm.LastName,
		Phone:     mm.Phone,
		Mobile:    mm.Mobile,
		Email:     mm.Email,
	}
}
