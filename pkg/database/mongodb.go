package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/campusvvs/navigator/pkg/ctdf"
	"github.com/campusvvs/navigator/pkg/util"
)

const defaultMongoConnectionString = "mongodb://localhost:27017/"
const defaultMongoDatabase = "navigator"

type MongoStore struct {
	Client   *mongo.Client
	Database *mongo.Database
}

func ConnectMongoDB(ctx context.Context) (*MongoStore, error) {
	connectionString := defaultMongoConnectionString
	dbName := defaultMongoDatabase

	env := util.GetEnvironmentVariables()

	if env["NAVIGATOR_MONGODB_CONNECTION"] != "" {
		connectionString = env["NAVIGATOR_MONGODB_CONNECTION"]
	}

	if env["NAVIGATOR_MONGODB_DATABASE"] != "" {
		dbName = env["NAVIGATOR_MONGODB_DATABASE"]
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(connectionString))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	store := &MongoStore{
		Client:   client,
		Database: client.Database(dbName),
	}
	store.createIndexes(ctx)

	return store, nil
}

func (s *MongoStore) GetCollection(collectionName string) *mongo.Collection {
	return s.Database.Collection(collectionName)
}

func (s *MongoStore) createIndexes(ctx context.Context) {
	profilesIndex := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, err := s.GetCollection(ctdf.UserProfile{}.TableName()).Indexes().CreateMany(ctx, profilesIndex, options.CreateIndexes())
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}

	favouritesIndex := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "username", Value: 1}, {Key: "createdat", Value: -1}},
		},
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, err = s.GetCollection(ctdf.FavouriteConnection{}.TableName()).Indexes().CreateMany(ctx, favouritesIndex, options.CreateIndexes())
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}

func (s *MongoStore) GetProfile(ctx context.Context, username string) (*ctdf.UserProfile, error) {
	var profile *ctdf.UserProfile

	err := s.GetCollection(ctdf.UserProfile{}.TableName()).FindOne(ctx, bson.M{"username": username}).Decode(&profile)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	return profile, nil
}

func (s *MongoStore) UpsertProfile(ctx context.Context, profile *ctdf.UserProfile) error {
	if profile.Username == "" {
		return ErrMissingUsername
	}

	filter := bson.M{"username": profile.Username}
	update := bson.M{"$set": profile}
	opts := options.Update().SetUpsert(true)

	if _, err := s.GetCollection(ctdf.UserProfile{}.TableName()).UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}

	return nil
}

func (s *MongoStore) EnsureProfile(ctx context.Context, username string) error {
	if username == "" {
		return ErrMissingUsername
	}

	filter := bson.M{"username": username}
	update := bson.M{"$setOnInsert": bson.M{"username": username}}
	opts := options.Update().SetUpsert(true)

	if _, err := s.GetCollection(ctdf.UserProfile{}.TableName()).UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("ensure profile: %w", err)
	}

	return nil
}

func (s *MongoStore) nextFavouriteID(ctx context.Context) (int64, error) {
	var counter struct {
		Sequence int64 `bson:"seq"`
	}

	err := s.GetCollection("counters").FindOneAndUpdate(ctx,
		bson.M{"_id": ctdf.FavouriteConnection{}.TableName()},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)

	return counter.Sequence, err
}

func (s *MongoStore) AddFavourite(ctx context.Context, favourite *ctdf.FavouriteConnection) (*ctdf.FavouriteConnection, error) {
	if err := s.EnsureProfile(ctx, favourite.Username); err != nil {
		return nil, err
	}

	id, err := s.nextFavouriteID(ctx)
	if err != nil {
		return nil, fmt.Errorf("allocate favourite id: %w", err)
	}

	favourite.ID = id
	favourite.CreatedAt = time.Now()

	if _, err := s.GetCollection(ctdf.FavouriteConnection{}.TableName()).InsertOne(ctx, favourite); err != nil {
		return nil, fmt.Errorf("add favourite: %w", err)
	}

	return favourite, nil
}

func (s *MongoStore) ListFavourites(ctx context.Context, username string) ([]*ctdf.FavouriteConnection, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdat", Value: -1}, {Key: "id", Value: -1}})

	cursor, err := s.GetCollection(ctdf.FavouriteConnection{}.TableName()).Find(ctx, bson.M{"username": username}, opts)
	if err != nil {
		return nil, fmt.Errorf("list favourites: %w", err)
	}

	favourites := []*ctdf.FavouriteConnection{}
	if err := cursor.All(ctx, &favourites); err != nil {
		return nil, fmt.Errorf("decode favourites: %w", err)
	}

	return favourites, nil
}

func (s *MongoStore) DeleteFavourite(ctx context.Context, username string, id int64) error {
	_, err := s.GetCollection(ctdf.FavouriteConnection{}.TableName()).DeleteOne(ctx, bson.M{"id": id, "username": username})
	if err != nil {
		return fmt.Errorf("delete favourite: %w", err)
	}

	return nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.Client.Disconnect(ctx)
}
