package services

import (
	"context"
	"errors"
	"time"

	"github.com/region-dashboard/app/models"
	"github.com/region-dashboard/internal/sheets"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// ErrContractNotFound is returned when no overlay exists for a customer.
var ErrContractNotFound = errors.New("contract overlay not found")

// ContractService manages the editable contract overlays. Writes go to the
// spreadsheet store first (it is the source of truth the business edits
// elsewhere too), then to a MongoDB mirror that serves reads and keeps the
// dashboard usable when the store is down.
type ContractService struct {
	store      *sheets.Client // nil when running offline
	collection *mongo.Collection
	logger     *zap.Logger
}

// NewContractService creates the service and ensures the mirror index.
func NewContractService(db *mongo.Database, store *sheets.Client, logger *zap.Logger) *ContractService {
	collection := db.Collection("contract_overlays")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "customer_name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		logger.Warn("create contract_overlays index failed", zap.Error(err))
	}

	return &ContractService{
		store:      store,
		collection: collection,
		logger:     logger,
	}
}

// List returns every overlay from the mirror.
func (cs *ContractService) List(ctx context.Context) ([]models.ContractOverlay, error) {
	cursor, err := cs.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "customer_name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var overlays []models.ContractOverlay
	if err := cursor.All(ctx, &overlays); err != nil {
		return nil, err
	}
	return overlays, nil
}

// Get returns the overlay for one customer.
func (cs *ContractService) Get(ctx context.Context, customerName string) (*models.ContractOverlay, error) {
	var overlay models.ContractOverlay
	err := cs.collection.FindOne(ctx, bson.M{"customer_name": customerName}).Decode(&overlay)
	if err == mongo.ErrNoDocuments {
		return nil, ErrContractNotFound
	}
	if err != nil {
		return nil, err
	}
	return &overlay, nil
}

// Upsert writes the overlay to the spreadsheet store, then mirrors it.
func (cs *ContractService) Upsert(ctx context.Context, overlay models.ContractOverlay) error {
	overlay.UpdatedAt = time.Now()

	if cs.store != nil {
		if err := cs.store.PutContract(ctx, overlay); err != nil {
			return err
		}
	}

	_, err := cs.collection.UpdateOne(ctx,
		bson.M{"customer_name": overlay.CustomerName},
		bson.M{"$set": overlay},
		options.Update().SetUpsert(true))
	if err != nil {
		// The store write already succeeded; the mirror catches up on the
		// next sync.
		cs.logger.Warn("contract mirror write failed", zap.Error(err), zap.String("customer", overlay.CustomerName))
	}
	return nil
}

// Delete removes the overlay from the store and the mirror.
func (cs *ContractService) Delete(ctx context.Context, customerName string) error {
	if cs.store != nil {
		if err := cs.store.DeleteContract(ctx, customerName); err != nil {
			return err
		}
	}

	res, err := cs.collection.DeleteOne(ctx, bson.M{"customer_name": customerName})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 && cs.store == nil {
		return ErrContractNotFound
	}
	return nil
}

// SyncFromStore re-pulls all overlays from the spreadsheet store into the
// mirror. The worker calls this on its refresh interval.
func (cs *ContractService) SyncFromStore(ctx context.Context) error {
	if cs.store == nil {
		return nil
	}

	overlays, err := cs.store.ListContracts(ctx)
	if err != nil {
		return err
	}

	for _, overlay := range overlays {
		_, err := cs.collection.UpdateOne(ctx,
			bson.M{"customer_name": overlay.CustomerName},
			bson.M{"$set": overlay},
			options.Update().SetUpsert(true))
		if err != nil {
			cs.logger.Warn("contract sync upsert failed", zap.Error(err), zap.String("customer", overlay.CustomerName))
		}
	}

	cs.logger.Info("synced contract overlays from sheet store", zap.Int("count", len(overlays)))
	return nil
}

// Count returns the number of mirrored overlays, for admin stats.
func (cs *ContractService) Count(ctx context.Context) (int64, error) {
	return cs.collection.CountDocuments(ctx, bson.M{})
}
