package contact

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	mongodrv "go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/formdesk/contactapi/pkg/mongo"
)

// Repository provides durable storage and retrieval of submissions.
type Repository interface {
	Create(ctx context.Context, params CreateSubmissionParams) (Submission, error)
	ListAll(ctx context.Context) ([]Submission, error)
	GetByID(ctx context.Context, id string) (Submission, error)
}

// collectionName is the document collection holding submissions.
const collectionName = "contacts"

// MongoRepository stores submissions in a MongoDB collection. The
// underlying connection is established lazily on first use and shared for
// the lifetime of the process.
type MongoRepository struct {
	conn *mongo.LazyConn
}

// NewMongoRepository creates a repository over the given lazy connection.
func NewMongoRepository(conn *mongo.LazyConn) *MongoRepository {
	return &MongoRepository{conn: conn}
}

func (r *MongoRepository) collection(ctx context.Context) (*mongodrv.Collection, error) {
	db, err := r.conn.DB(ctx)
	if err != nil {
		return nil, errors.Join(ErrPersistence, err)
	}
	return db.Collection(collectionName), nil
}

// Create inserts a new submission, assigning its identifier and creation
// timestamp. Fields are expected to be validated by the caller.
func (r *MongoRepository) Create(ctx context.Context, params CreateSubmissionParams) (Submission, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return Submission{}, err
	}

	sub := Submission{
		ID:        bson.NewObjectID(),
		Name:      params.Name,
		Email:     params.Email,
		Phone:     params.Phone,
		Subject:   params.Subject,
		Message:   params.Message,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := coll.InsertOne(ctx, sub); err != nil {
		return Submission{}, errors.Join(ErrPersistence, err)
	}
	return sub, nil
}

// ListAll returns every stored submission in insertion order. An empty
// collection yields an empty slice, not an error.
func (r *MongoRepository) ListAll(ctx context.Context) ([]Submission, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	cursor, err := coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, errors.Join(ErrPersistence, err)
	}
	defer cursor.Close(ctx)

	subs := make([]Submission, 0)
	if err := cursor.All(ctx, &subs); err != nil {
		return nil, errors.Join(ErrPersistence, err)
	}
	return subs, nil
}

// GetByID returns the submission with the given hex identifier.
func (r *MongoRepository) GetByID(ctx context.Context, id string) (Submission, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return Submission{}, ErrInvalidID
	}

	coll, err := r.collection(ctx)
	if err != nil {
		return Submission{}, err
	}

	var sub Submission
	if err := coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&sub); err != nil {
		if errors.Is(err, mongodrv.ErrNoDocuments) {
			return Submission{}, ErrNotFound
		}
		return Submission{}, errors.Join(ErrPersistence, err)
	}
	return sub, nil
}
