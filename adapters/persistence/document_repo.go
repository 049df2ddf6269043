package persistence

import (
	"context"
	"errors"
	"reflect"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/khoahotran/portfolio-api/pkg/apperror"
)

// documentCollection implements the five primitives every entity
// collection needs. model is the entity name used in not-found messages.
type documentCollection[T any] struct {
	db    *MongoDB
	name  string
	model string
}

func (d documentCollection[T]) collection() (*mongo.Collection, error) {
	coll, err := d.db.Collection(d.name)
	if err != nil {
		return nil, apperror.NewInternal("datastore unavailable", err)
	}
	return coll, nil
}

func (d documentCollection[T]) insert(ctx context.Context, doc *T) error {
	coll, err := d.collection()
	if err != nil {
		return err
	}
	if _, err := coll.InsertOne(ctx, doc); err != nil {
		return apperror.NewInternal("failed to insert into "+d.name, err)
	}
	return nil
}

func (d documentCollection[T]) findAll(ctx context.Context, opts ...*options.FindOptions) ([]*T, error) {
	coll, err := d.collection()
	if err != nil {
		return nil, err
	}
	cursor, err := coll.Find(ctx, bson.D{}, opts...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query "+d.name, err)
	}

	docs := make([]*T, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, apperror.NewInternal("failed to decode "+d.name, err)
	}
	if docs == nil {
		docs = make([]*T, 0)
	}
	return docs, nil
}

func (d documentCollection[T]) findOne(ctx context.Context, filter any, identifier string) (*T, error) {
	coll, err := d.collection()
	if err != nil {
		return nil, err
	}
	doc := new(T)
	if err := coll.FindOne(ctx, filter).Decode(doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NewNotFound(d.model, identifier)
		}
		return nil, apperror.NewInternal("failed to find in "+d.name, err)
	}
	return doc, nil
}

func (d documentCollection[T]) findByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	return d.findOne(ctx, bson.D{{Key: "_id", Value: id}}, id.Hex())
}

// update sets the named fields from doc and unsets the named fields doc
// leaves out, in a single find-and-update returning the new version. Names
// that are not fields of T are ignored, as is "_id".
func (d documentCollection[T]) update(ctx context.Context, id primitive.ObjectID, doc *T, fields []string) (*T, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, apperror.NewInternal("failed to encode "+d.model, err)
	}

	known := fieldNames[T]()
	set, unset := bson.D{}, bson.D{}
	for _, f := range fields {
		if f == "_id" || !known[f] {
			continue
		}
		if v, err := bson.Raw(raw).LookupErr(f); err == nil {
			set = append(set, bson.E{Key: f, Value: v})
		} else {
			unset = append(unset, bson.E{Key: f, Value: ""})
		}
	}

	change := bson.D{}
	if len(set) > 0 {
		change = append(change, bson.E{Key: "$set", Value: set})
	}
	if len(unset) > 0 {
		change = append(change, bson.E{Key: "$unset", Value: unset})
	}
	if len(change) == 0 {
		return d.findByID(ctx, id)
	}

	coll, err := d.collection()
	if err != nil {
		return nil, err
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	updated := new(T)
	err = coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, change, opts).Decode(updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NewNotFound(d.model, id.Hex())
		}
		return nil, apperror.NewInternal("failed to update in "+d.name, err)
	}
	return updated, nil
}

func (d documentCollection[T]) delete(ctx context.Context, id primitive.ObjectID) error {
	coll, err := d.collection()
	if err != nil {
		return err
	}
	res, err := coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return apperror.NewInternal("failed to delete from "+d.name, err)
	}
	if res.DeletedCount == 0 {
		return apperror.NewNotFound(d.model, id.Hex())
	}
	return nil
}

// fieldNames returns the stored field names of T, parsed the way the driver
// parses bson struct tags.
func fieldNames[T any]() map[string]bool {
	t := reflect.TypeOf((*T)(nil)).Elem()
	names := make(map[string]bool, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		tags, err := bsoncodec.DefaultStructTagParser.ParseStructTags(t.Field(i))
		if err != nil || tags.Skip {
			continue
		}
		names[tags.Name] = true
	}
	return names
}
