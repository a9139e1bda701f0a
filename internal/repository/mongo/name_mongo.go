package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"namesapi/internal/model"
	"namesapi/internal/repository"
)

// nameDocument is the persisted shape of a record.
type nameDocument struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Name string             `bson:"name"`
}

func (d nameDocument) toModel() model.Record {
	return model.Record{ID: d.ID.Hex(), Name: d.Name}
}

// NameMongo is a MongoDB implementation of repository.NameRepository
// operating on a single collection.
type NameMongo struct {
	coll *mongo.Collection
}

// NewNameMongo creates a new NameMongo repository.
func NewNameMongo(coll *mongo.Collection) *NameMongo {
	return &NameMongo{coll: coll}
}

var _ repository.NameRepository = (*NameMongo)(nil)

// List returns every document sorted by _id, which follows insertion order for ObjectIDs.
func (r *NameMongo) List(ctx context.Context) ([]model.Record, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}

	var docs []nameDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	items := make([]model.Record, 0, len(docs))
	for _, d := range docs {
		items = append(items, d.toModel())
	}
	return items, nil
}

// Create inserts a document and returns it with the ObjectID assigned client-side.
func (r *NameMongo) Create(ctx context.Context, name string) (*model.Record, error) {
	doc := nameDocument{ID: primitive.NewObjectID(), Name: name}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, err
	}
	rec := doc.toModel()
	return &rec, nil
}

// Delete removes a document by its hex ObjectID. Unknown and malformed IDs are a no-op.
func (r *NameMongo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	_, err = r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	return err
}

// Ping checks connectivity to the primary.
func (r *NameMongo) Ping(ctx context.Context) error {
	return r.coll.Database().Client().Ping(ctx, readpref.Primary())
}
