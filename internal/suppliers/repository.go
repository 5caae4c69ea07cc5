package suppliers

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vendordesk/vendordesk/internal/platform/httpx"
)

// ListFilters carries list query parameters.
type ListFilters struct {
	Page   int
	Limit  int
	Search string
}

// Repository is the supplier document store.
type Repository interface {
	List(ctx context.Context, filters ListFilters) ([]Supplier, int, error)
	Get(ctx context.Context, id string) (*Supplier, error)
	Create(ctx context.Context, supplier *Supplier) (string, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
	All(ctx context.Context) ([]Supplier, error)
}

type repository struct {
	coll *mongo.Collection
}

// NewRepository builds a Mongo-backed Repository over the given collection.
func NewRepository(coll *mongo.Collection) Repository {
	return &repository{coll: coll}
}

// searchFilter matches companyName by case-insensitive substring. The
// term is escaped so user input cannot inject regex syntax.
func searchFilter(search string) bson.M {
	if search == "" {
		return bson.M{}
	}
	return bson.M{"companyName": primitive.Regex{
		Pattern: regexp.QuoteMeta(search),
		Options: "i",
	}}
}

// List pages through matching documents with skip/limit. No sort is
// applied; insertion order is the de facto order.
func (r *repository) List(ctx context.Context, filters ListFilters) ([]Supplier, int, error) {
	filter := searchFilter(filters.Search)

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	skip := int64((filters.Page - 1) * filters.Limit)
	if skip < 0 {
		skip = 0
	}
	opts := options.Find().SetSkip(skip).SetLimit(int64(filters.Limit))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var items []Supplier
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, err
	}
	return items, int(total), nil
}

func (r *repository) Get(ctx context.Context, id string) (*Supplier, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, httpx.ErrNotFound
	}

	var supplier Supplier
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&supplier)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, httpx.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *repository) Create(ctx context.Context, supplier *Supplier) (string, error) {
	now := time.Now().UTC()
	supplier.ID = primitive.NewObjectID()
	supplier.CreatedAt = now
	supplier.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, supplier); err != nil {
		return "", err
	}
	return supplier.ID.Hex(), nil
}

// Update shallow-merges the supplied fields over the stored document.
// The identifier and creation timestamp cannot be patched; required
// fields are deliberately not re-validated here.
func (r *repository) Update(ctx context.Context, id string, fields map[string]any) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return httpx.ErrNotFound
	}

	patch := bson.M{}
	for k, v := range fields {
		switch k {
		case "_id", "id", "createdAt":
			continue
		}
		patch[k] = v
	}
	patch["updatedAt"] = time.Now().UTC()

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": patch})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return httpx.ErrNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return httpx.ErrNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return httpx.ErrNotFound
	}
	return nil
}

// All returns every document unpaginated, for export.
func (r *repository) All(ctx context.Context) ([]Supplier, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []Supplier
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}
