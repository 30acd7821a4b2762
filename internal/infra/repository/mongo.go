package repository

import (
	"chatbot-relay/internal/domain/entities"
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const ConversationsCollection = "conversations"

// MongoRepository stores one document per user with the messages in an array.
type MongoRepository struct {
	collection *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{collection: db.Collection(ConversationsCollection)}
}

func (r *MongoRepository) Append(ctx context.Context, userID string, messages ...entities.Message) error {
	if len(messages) == 0 {
		return nil
	}

	filter := bson.M{"user_id": userID}
	update := bson.M{
		"$push": bson.M{"messages": bson.M{"$each": messages}},
		"$set":  bson.M{"updated_at": time.Now()},
	}

	// Upsert creates the user's document on the first message.
	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("append history for %s: %w", userID, err)
	}
	return nil
}

func (r *MongoRepository) Find(ctx context.Context, userID string) (entities.Conversation, error) {
	var conv entities.Conversation
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&conv)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return entities.Conversation{UserID: userID, Messages: []entities.Message{}}, nil
	}
	if err != nil {
		return entities.Conversation{}, fmt.Errorf("find history for %s: %w", userID, err)
	}
	return conv, nil
}

func (r *MongoRepository) FindAll(ctx context.Context) ([]entities.Conversation, error) {
	cursor, err := r.collection.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "user_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var conversations []entities.Conversation
	for cursor.Next(ctx) {
		var conv entities.Conversation
		if err := cursor.Decode(&conv); err != nil {
			return nil, err
		}
		conversations = append(conversations, conv)
	}
	return conversations, cursor.Err()
}
