package storage

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/outfitgenius/wardrobe-api/models"
)

// listLimit caps every list query
const listLimit = 1000

const (
	clothingCollection = "clothing_items"
	outfitCollection   = "generated_outfits"
	statusCollection   = "status_checks"
)

// MongoStore implements Store on top of MongoDB
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoStore connects to MongoDB and verifies the connection with a ping
func NewMongoStore(uri, dbName string) (*MongoStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Ping the database
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	log.Println("Connected to MongoDB!")
	return &MongoStore{client: client, db: client.Database(dbName)}, nil
}

// Close disconnects the underlying client
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *MongoStore) InsertClothingItem(ctx context.Context, item models.ClothingItem) error {
	_, err := s.db.Collection(clothingCollection).InsertOne(ctx, item)
	return err
}

func (s *MongoStore) ListClothingItems(ctx context.Context, userID string) ([]models.ClothingItem, error) {
	findOptions := options.Find()
	findOptions.SetSort(bson.D{{Key: "created_at", Value: -1}}) // latest first
	findOptions.SetLimit(listLimit)

	cursor, err := s.db.Collection(clothingCollection).Find(ctx, bson.M{"user_id": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.ClothingItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *MongoStore) FindClothingItem(ctx context.Context, itemID, userID string) (*models.ClothingItem, error) {
	var item models.ClothingItem
	err := s.db.Collection(clothingCollection).FindOne(ctx, bson.M{"id": itemID, "user_id": userID}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *MongoStore) DeleteClothingItem(ctx context.Context, itemID, userID string) error {
	result, err := s.db.Collection(clothingCollection).DeleteOne(ctx, bson.M{"id": itemID, "user_id": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) InsertOutfit(ctx context.Context, outfit models.GeneratedOutfit) error {
	_, err := s.db.Collection(outfitCollection).InsertOne(ctx, outfit)
	return err
}

func (s *MongoStore) ListOutfits(ctx context.Context, userID string) ([]models.GeneratedOutfit, error) {
	findOptions := options.Find()
	findOptions.SetSort(bson.D{{Key: "created_at", Value: -1}}) // latest first
	findOptions.SetLimit(listLimit)

	cursor, err := s.db.Collection(outfitCollection).Find(ctx, bson.M{"user_id": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var outfits []models.GeneratedOutfit
	if err := cursor.All(ctx, &outfits); err != nil {
		return nil, err
	}
	return outfits, nil
}

func (s *MongoStore) InsertStatusCheck(ctx context.Context, check models.StatusCheck) error {
	_, err := s.db.Collection(statusCollection).InsertOne(ctx, check)
	return err
}

func (s *MongoStore) ListStatusChecks(ctx context.Context) ([]models.StatusCheck, error) {
	findOptions := options.Find()
	findOptions.SetLimit(listLimit)

	cursor, err := s.db.Collection(statusCollection).Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var checks []models.StatusCheck
	if err := cursor.All(ctx, &checks); err != nil {
		return nil, err
	}
	return checks, nil
}
