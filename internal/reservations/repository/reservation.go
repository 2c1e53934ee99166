package repository

import (
	"context"
	"fmt"

	reservationserrors "freezestore/internal/reservations/errors"
	"freezestore/pkg/config"
	mongodb "freezestore/pkg/db/mongo"
	"freezestore/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionName = "Reservations"
)

// ReservationRepository persists reservations. FindAll returns them in insertion order,
// which is the order space claims are resolved in.
type ReservationRepository interface {
	Create(ctx context.Context, reservation *model.Reservation) error
	FindAll(ctx context.Context) ([]model.Reservation, error)
	Update(ctx context.Context, reservation *model.Reservation) error
	Delete(ctx context.Context, id string) error
}

type mongoReservationRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoReservationRepository(cfg *config.Config) ReservationRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoReservationRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

func (r *mongoReservationRepository) Create(ctx context.Context, reservation *model.Reservation) error {
	ctx, cancel := mongodb.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	if _, err := r.collection.InsertOne(ctx, reservation); err != nil {
		return fmt.Errorf("failed to create reservation %s: %w", reservation.ID, err)
	}
	return nil
}

func (r *mongoReservationRepository) FindAll(ctx context.Context) ([]model.Reservation, error) {
	ctx, cancel := mongodb.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "seq", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find reservations: %w", err)
	}
	defer cursor.Close(ctx)

	reservations := []model.Reservation{}
	if err = cursor.All(ctx, &reservations); err != nil {
		return nil, fmt.Errorf("failed to decode reservations: %w", err)
	}
	return reservations, nil
}

func (r *mongoReservationRepository) Update(ctx context.Context, reservation *model.Reservation) error {
	ctx, cancel := mongodb.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	filter := bson.M{"_id": reservation.ID}
	update := bson.M{
		"$set": bson.M{
			"space_ids":  reservation.SpaceIDs,
			"end_date":   reservation.EndDate,
			"total_days": reservation.TotalDays,
			"subtotal":   reservation.Subtotal,
			"tax":        reservation.Tax,
			"total":      reservation.Total,
			"status":     reservation.Status,
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update reservation %s: %w", reservation.ID, err)
	}
	if result.MatchedCount == 0 {
		return reservationserrors.ErrNotFound
	}
	return nil
}

func (r *mongoReservationRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := mongodb.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete reservation %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return reservationserrors.ErrNotFound
	}
	return nil
}
