package mongo

import (
	"context"
	"errors"
	"exercisetracker/internal/core"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const usersCollection = "users"

type userDocument struct {
	ID       string             `bson:"_id"`
	Username string             `bson:"username"`
	Seq      primitive.ObjectID `bson:"seq"` // registration order
	Log      []exerciseDocument `bson:"log"`
}

type exerciseDocument struct {
	Description string    `bson:"description"`
	Duration    int       `bson:"duration"`
	Date        time.Time `bson:"date"`
}

// Store keeps every user as one document that embeds its exercise log.
type Store struct {
	users *mongo.Collection
}

func NewStore(db *mongo.Database) *Store {
	return &Store{
		users: db.Collection(usersCollection),
	}
}

// Connect opens a client for uri and verifies it with a ping.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return client, nil
}

func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "seq", Value: 1}},
		},
	})
	if err != nil {
		return fmt.Errorf("create indexes: %w", translate(err))
	}

	return nil
}

func (s *Store) CreateUser(ctx context.Context, user core.User) error {
	doc := userDocument{
		ID:       user.ID,
		Username: user.Username,
		Seq:      primitive.NewObjectID(),
		Log:      []exerciseDocument{},
	}

	_, err := s.users.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("username %q: %w", user.Username, core.ErrUsernameTaken)
		}
		return fmt.Errorf("insert user: %w", translate(err))
	}

	return nil
}

func (s *Store) ListUsers(ctx context.Context) ([]core.User, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "seq", Value: 1}}).
		SetProjection(bson.D{{Key: "log", Value: 0}})

	cursor, err := s.users.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find users: %w", translate(err))
	}

	var docs []userDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode users: %w", translate(err))
	}

	users := make([]core.User, 0, len(docs))
	for _, doc := range docs {
		users = append(users, core.User{ID: doc.ID, Username: doc.Username})
	}

	return users, nil
}

func (s *Store) GetUser(ctx context.Context, userID string) (core.User, error) {
	opts := options.FindOne().SetProjection(bson.D{{Key: "log", Value: 0}})

	var doc userDocument
	if err := s.users.FindOne(ctx, bson.D{{Key: "_id", Value: userID}}, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return core.User{}, core.ErrUserNotFound
		}
		return core.User{}, fmt.Errorf("find user: %w", translate(err))
	}

	return core.User{ID: doc.ID, Username: doc.Username}, nil
}

// AppendExercise pushes onto the embedded log in a single update.
func (s *Store) AppendExercise(ctx context.Context, userID string, exercise core.Exercise) error {
	update := bson.D{{Key: "$push", Value: bson.D{{Key: "log", Value: exerciseDocument{
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        exercise.Date,
	}}}}}

	res, err := s.users.UpdateOne(ctx, bson.D{{Key: "_id", Value: userID}}, update)
	if err != nil {
		return fmt.Errorf("push exercise: %w", translate(err))
	}
	if res.MatchedCount == 0 {
		return core.ErrUserNotFound
	}

	return nil
}

func (s *Store) GetLog(ctx context.Context, userID string, query core.LogQuery) ([]core.Exercise, error) {
	var doc userDocument
	if err := s.users.FindOne(ctx, bson.D{{Key: "_id", Value: userID}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, core.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user log: %w", translate(err))
	}

	log := make([]core.Exercise, 0, len(doc.Log))
	for _, ex := range doc.Log {
		log = append(log, core.Exercise{
			Description: ex.Description,
			Duration:    ex.Duration,
			Date:        core.CalendarDate(ex.Date.UTC()),
		})
	}

	return query.Apply(log), nil
}

func translate(err error) error {
	if mongo.IsTimeout(err) && !errors.Is(err, core.ErrStoreUnavailable) {
		return fmt.Errorf("%w: %w", core.ErrStoreUnavailable, err)
	}
	return err
}
