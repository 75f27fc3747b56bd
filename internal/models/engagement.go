package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	EngagementDbName  = "mentorbay"
	EngagementColName = "engagements"
)

const (
	EngagementUpvote      = "answer_upvote"
	EngagementSavedMentor = "saved_mentor"
)

type EngagementItem struct {
	ItemID   string    `bson:"item_id" json:"item_id"`
	ItemType string    `bson:"item_type" json:"item_type"`
	AddedAt  time.Time `bson:"added_at" json:"added_at"`
}

// Engagement holds one user's upvotes and saved mentors as a map keyed by
// item id, which gives set semantics: adding the same item twice is a no-op.
type Engagement struct {
	ID        primitive.ObjectID        `bson:"_id,omitempty" json:"id"`
	UserID    uuid.UUID                 `bson:"user_id" json:"user_id" validate:"required"`
	Items     map[string]EngagementItem `bson:"items" json:"items"`
	CreatedAt time.Time                 `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt time.Time                 `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

type EngagementRepo interface {
	AddEngagement(ctx context.Context, userId uuid.UUID, itemId string, itemType string) (bool, error)
	RemoveEngagement(ctx context.Context, userId uuid.UUID, itemId string) error
	GetEngagementByUserID(ctx context.Context, userId uuid.UUID) (*Engagement, error)
}

// AddEngagement upserts the item for the user and reports whether the item
// was newly added (false when the user already had it).
func (mdb *MongodbRepo) AddEngagement(ctx context.Context, userId uuid.UUID, itemId string, itemType string) (bool, error) {
	col, err := mdb.GetCollection(ctx, EngagementDbName, EngagementColName)
	if err != nil {
		return false, fmt.Errorf("error getting collection: %v", err)
	}
	now := time.Now()
	filter := bson.M{"user_id": userId}

	update := bson.M{
		"$set": bson.M{
			"updated_at": now,
			fmt.Sprintf("items.%s", itemId): EngagementItem{
				ItemID:   itemId,
				ItemType: itemType,
				AddedAt:  now,
			},
		},
		"$setOnInsert": bson.M{
			"user_id":    userId,
			"created_at": now,
		},
	}

	// Return the pre-update document so we can tell whether the item existed.
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.Before)

	var before Engagement
	err = col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&before)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// No prior document for this user at all.
			return true, nil
		}
		return false, fmt.Errorf("error upserting engagement: %v", err)
	}

	_, existed := before.Items[itemId]
	return !existed, nil
}

func (mdb *MongodbRepo) RemoveEngagement(ctx context.Context, userId uuid.UUID, itemId string) error {
	col, err := mdb.GetCollection(ctx, EngagementDbName, EngagementColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	filter := bson.M{"user_id": userId}
	update := bson.M{
		"$unset": bson.M{
			fmt.Sprintf("items.%s", itemId): "",
		},
		"$set": bson.M{
			"updated_at": time.Now(),
		},
	}

	_, err = col.UpdateOne(ctx, filter, update)
	return err
}

func (mdb *MongodbRepo) GetEngagementByUserID(ctx context.Context, userId uuid.UUID) (*Engagement, error) {
	col, err := mdb.GetCollection(ctx, EngagementDbName, EngagementColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var engagement Engagement
	err = col.FindOne(ctx, bson.M{"user_id": userId}).Decode(&engagement)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &Engagement{UserID: userId, Items: map[string]EngagementItem{}}, nil
		}
		return nil, fmt.Errorf("error finding engagement: %v", err)
	}

	return &engagement, nil
}
