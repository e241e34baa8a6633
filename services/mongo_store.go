package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jakerich1/DietApi/models"
)

const (
	foodCollection  = "foods"
	waterCollection = "waters"
)

type foodDocument struct {
	ID       primitive.ObjectID `bson:"_id"`
	Name     string             `bson:"name"`
	Protein  string             `bson:"protein"`
	Calories string             `bson:"calories"`
	Created  time.Time          `bson:"created"`
}

type waterDocument struct {
	ID      primitive.ObjectID `bson:"_id"`
	Amount  string             `bson:"amount"`
	Created time.Time          `bson:"created"`
}

// mongoRepository stores entries of type T as documents of type D.
type mongoRepository[T any, D any] struct {
	coll   *mongo.Collection
	encode func(id primitive.ObjectID, entry *T) D
	decode func(doc D) T
}

func newFoodMongoRepository(coll *mongo.Collection) *mongoRepository[models.FoodEntry, foodDocument] {
	return &mongoRepository[models.FoodEntry, foodDocument]{
		coll: coll,
		encode: func(id primitive.ObjectID, e *models.FoodEntry) foodDocument {
			e.ID = id.Hex()
			return foodDocument{ID: id, Name: e.Name, Protein: e.Protein, Calories: e.Calories, Created: e.Created}
		},
		decode: func(d foodDocument) models.FoodEntry {
			return models.FoodEntry{ID: d.ID.Hex(), Name: d.Name, Protein: d.Protein, Calories: d.Calories, Created: d.Created}
		},
	}
}

func newWaterMongoRepository(coll *mongo.Collection) *mongoRepository[models.WaterEntry, waterDocument] {
	return &mongoRepository[models.WaterEntry, waterDocument]{
		coll: coll,
		encode: func(id primitive.ObjectID, e *models.WaterEntry) waterDocument {
			e.ID = id.Hex()
			return waterDocument{ID: id, Amount: e.Amount, Created: e.Created}
		},
		decode: func(d waterDocument) models.WaterEntry {
			return models.WaterEntry{ID: d.ID.Hex(), Amount: d.Amount, Created: d.Created}
		},
	}
}

// NewMongoStore wires the food and water collections of db.
func NewMongoStore(client *mongo.Client, db *mongo.Database) *Store {
	return NewStore(
		newFoodMongoRepository(db.Collection(foodCollection)),
		newWaterMongoRepository(db.Collection(waterCollection)),
		client.Disconnect,
	)
}

func (r *mongoRepository[T, D]) Create(ctx context.Context, entry *T) error {
	doc := r.encode(primitive.NewObjectID(), entry)
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert into %s: %w", r.coll.Name(), err)
	}
	return nil
}

func (r *mongoRepository[T, D]) FindByID(ctx context.Context, id string) (*T, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	var doc D
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", r.coll.Name(), err)
	}
	entry := r.decode(doc)
	return &entry, nil
}

func (r *mongoRepository[T, D]) DeleteByID(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete from %s: %w", r.coll.Name(), err)
	}
	return nil
}

func (r *mongoRepository[T, D]) FindCreatedBetween(ctx context.Context, start, end time.Time) ([]T, error) {
	filter := bson.M{"created": bson.M{"$gte": start, "$lte": end}}
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", r.coll.Name(), err)
	}
	var docs []D
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("read %s cursor: %w", r.coll.Name(), err)
	}
	out := make([]T, 0, len(docs))
	for _, d := range docs {
		out = append(out, r.decode(d))
	}
	return out, nil
}
