package content

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const contentCollection = "contents"

// MongoStore persists records in a MongoDB collection. It is the
// durable backend, selected when MONGODB_URI is configured and
// reachable.
type MongoStore struct {
	coll *mongo.Collection
}

// NewMongoStore wraps the given database handle.
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{coll: db.Collection(contentCollection)}
}

// Mode reports the backend kind.
func (s *MongoStore) Mode() string { return ModeMongo }

// contentDoc is the BSON shape of a record. Kept separate from the
// domain type so ObjectID handling stays inside this file.
type contentDoc struct {
	ID        primitive.ObjectID     `bson:"_id,omitempty"`
	Title     string                 `bson:"title"`
	Body      string                 `bson:"body"`
	ImageURL  string                 `bson:"imageUrl"`
	Section   string                 `bson:"section"`
	Order     int                    `bson:"order"`
	Language  string                 `bson:"language"`
	IsActive  bool                   `bson:"isActive"`
	Metadata  map[string]interface{} `bson:"metadata"`
	CreatedAt time.Time              `bson:"createdAt"`
	UpdatedAt time.Time              `bson:"updatedAt"`
}

func (d contentDoc) toDomain() Content {
	md := d.Metadata
	if md == nil {
		md = map[string]interface{}{}
	}
	return Content{
		ID:        d.ID.Hex(),
		Title:     d.Title,
		Body:      d.Body,
		ImageURL:  d.ImageURL,
		Section:   d.Section,
		Order:     d.Order,
		Language:  d.Language,
		IsActive:  d.IsActive,
		Metadata:  md,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// Create inserts the record with fresh timestamps and returns it with
// the generated ObjectID.
func (s *MongoStore) Create(ctx context.Context, c *Content) (*Content, error) {
	now := time.Now().UTC()
	doc := contentDoc{
		ID:        primitive.NewObjectID(),
		Title:     c.Title,
		Body:      c.Body,
		ImageURL:  c.ImageURL,
		Section:   c.Section,
		Order:     c.Order,
		Language:  c.Language,
		IsActive:  c.IsActive,
		Metadata:  c.Metadata,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if doc.Metadata == nil {
		doc.Metadata = map[string]interface{}{}
	}

	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return nil, err
	}

	out := doc.toDomain()
	return &out, nil
}

// Find filters and orders records by (order, createdAt) ascending.
func (s *MongoStore) Find(ctx context.Context, f Filter) ([]Content, error) {
	query := bson.M{}
	if f.Section != "" {
		query["section"] = f.Section
	}
	if f.Language != "" {
		query["language"] = f.Language
	}
	if f.IsActive != nil {
		query["isActive"] = *f.IsActive
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "order", Value: 1},
		{Key: "createdAt", Value: 1},
	})

	cursor, err := s.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []contentDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	results := make([]Content, 0, len(docs))
	for _, d := range docs {
		results = append(results, d.toDomain())
	}
	return results, nil
}

// FindByID returns the record with the given ID. IDs that do not parse
// as ObjectIDs cannot exist in this store, so they map to ErrNotFound.
func (s *MongoStore) FindByID(ctx context.Context, id string) (*Content, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var doc contentDoc
	err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	out := doc.toDomain()
	return &out, nil
}

// Update applies a $set of the provided fields and returns the updated
// document. Missing IDs return ErrNotFound; upserts are disabled so an
// update can never create a record.
func (s *MongoStore) Update(ctx context.Context, id string, upd UpdateRequest) (*Content, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Body != nil {
		set["body"] = *upd.Body
	}
	if upd.ImageURL != nil {
		set["imageUrl"] = *upd.ImageURL
	}
	if upd.Section != nil {
		set["section"] = *upd.Section
	}
	if upd.Order != nil {
		set["order"] = *upd.Order
	}
	if upd.Language != nil {
		set["language"] = *upd.Language
	}
	if upd.IsActive != nil {
		set["isActive"] = *upd.IsActive
	}
	if upd.Metadata != nil {
		set["metadata"] = upd.Metadata
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc contentDoc
	err = s.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	out := doc.toDomain()
	return &out, nil
}

// Delete removes the record and returns its prior value.
func (s *MongoStore) Delete(ctx context.Context, id string) (*Content, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var doc contentDoc
	err = s.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	out := doc.toDomain()
	return &out, nil
}
