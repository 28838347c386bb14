package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/thoughts-cell/Property-Management-System/internal/core/domain"
)

const propertiesCollection = "properties"

type MongoPropertyRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewPropertyRepository(db *mongo.Database) *MongoPropertyRepository {
	return &MongoPropertyRepository{db: db, coll: db.Collection(propertiesCollection)}
}

type mongoAddress struct {
	StreetNumber int    `bson:"street_number"`
	StreetName   string `bson:"street_name"`
	City         string `bson:"city"`
	Postcode     string `bson:"postcode"`
	Country      string `bson:"country"`
}

type mongoProperty struct {
	ID          int64        `bson:"_id"`
	Kind        string       `bson:"kind"`
	Type        string       `bson:"type"`
	Bedrooms    int          `bson:"bedrooms"`
	Bathrooms   int          `bson:"bathrooms"`
	Description string       `bson:"description"`
	Address     mongoAddress `bson:"address"`
	SalePrice   int64        `bson:"sale_price,omitempty"`
	WeeklyRent  int64        `bson:"weekly_rent,omitempty"`
	Furnished   bool         `bson:"furnished,omitempty"`
}

func (r *MongoPropertyRepository) Create(ctx context.Context, property *domain.Property) (*domain.Property, error) {
	id, err := nextID(ctx, r.db, propertiesCollection)
	if err != nil {
		return nil, err
	}

	doc := toMongoProperty(property)
	doc.ID = id
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert property: %w", err)
	}

	created := *property
	created.ID = id
	return &created, nil
}

func (r *MongoPropertyRepository) FindByID(ctx context.Context, id int64) (*domain.Property, error) {
	var mp mongoProperty
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&mp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("find property: %w", err)
	}
	return fromMongoProperty(&mp), nil
}

func (r *MongoPropertyRepository) ListByKind(ctx context.Context, kind domain.PropertyKind) ([]*domain.Property, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"kind": string(kind)})
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	defer cursor.Close(ctx)

	var properties []*domain.Property
	for cursor.Next(ctx) {
		var mp mongoProperty
		if err := cursor.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode property: %w", err)
		}
		properties = append(properties, fromMongoProperty(&mp))
	}
	return properties, cursor.Err()
}

func toMongoProperty(p *domain.Property) mongoProperty {
	return mongoProperty{
		ID:          p.ID,
		Kind:        string(p.Kind),
		Type:        p.Type,
		Bedrooms:    p.Bedrooms,
		Bathrooms:   p.Bathrooms,
		Description: p.Description,
		Address: mongoAddress{
			StreetNumber: p.Address.StreetNumber,
			StreetName:   p.Address.StreetName,
			City:         p.Address.City,
			Postcode:     p.Address.Postcode,
			Country:      p.Address.Country,
		},
		SalePrice:  p.SalePrice,
		WeeklyRent: p.WeeklyRent,
		Furnished:  p.Furnished,
	}
}

func fromMongoProperty(mp *mongoProperty) *domain.Property {
	return &domain.Property{
		ID:          mp.ID,
		Kind:        domain.PropertyKind(mp.Kind),
		Type:        mp.Type,
		Bedrooms:    mp.Bedrooms,
		Bathrooms:   mp.Bathrooms,
		Description: mp.Description,
		Address: domain.Address{
			StreetNumber: mp.Address.StreetNumber,
			StreetName:   mp.Address.StreetName,
			City:         mp.Address.City,
			Postcode:     mp.Address.Postcode,
			Country:      mp.Address.Country,
		},
		SalePrice:  mp.SalePrice,
		WeeklyRent: mp.WeeklyRent,
		Furnished:  mp.Furnished,
	}
}
