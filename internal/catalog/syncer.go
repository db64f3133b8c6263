package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"
	"github.com/loganlanou/dealerpost/storage/db"
)

type SyncResult struct {
	Created int
	Updated int
}

// Syncer copies a source catalog into the products table.
type Syncer struct {
	database *sql.DB
	live     Source
	sample   Source
	// forceSample skips the live source even for connected sellers.
	forceSample bool
}

func NewSyncer(database *sql.DB, live, sample Source, forceSample bool) *Syncer {
	if sample == nil {
		sample = SampleSource{}
	}
	return &Syncer{database: database, live: live, sample: sample, forceSample: forceSample}
}

// SourceFor picks the live source for connected sellers and the sample
// catalog otherwise.
func (s *Syncer) SourceFor(creds Credentials) Source {
	if s.forceSample || s.live == nil || !creds.Connected() {
		return s.sample
	}
	return s.live
}

// Sync fetches the catalog and upserts every item by (user, asin) in one
// transaction. Nothing is written when the fetch fails.
func (s *Syncer) Sync(ctx context.Context, userID string, creds Credentials) (SyncResult, error) {
	items, err := s.SourceFor(creds).Products(ctx, creds)
	if err != nil {
		return SyncResult{}, fmt.Errorf("fetch catalog: %w", err)
	}

	tx, err := s.database.BeginTx(ctx, nil)
	if err != nil {
		return SyncResult{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	q := db.New(tx)
	var res SyncResult
	for _, it := range items {
		created, err := upsert(ctx, q, userID, it)
		if err != nil {
			return SyncResult{}, fmt.Errorf("upsert %s: %w", it.ASIN, err)
		}
		if created {
			res.Created++
		} else {
			res.Updated++
		}
	}

	if err := tx.Commit(); err != nil {
		return SyncResult{}, fmt.Errorf("commit transaction: %w", err)
	}

	slog.Info("catalog synced", "user_id", userID, "created", res.Created, "updated", res.Updated)
	return res, nil
}

func upsert(ctx context.Context, q *db.Queries, userID string, it Item) (bool, error) {
	images := it.ImageURLs
	if images == nil {
		images = []string{}
	}
	imageJSON, err := json.Marshal(images)
	if err != nil {
		return false, fmt.Errorf("marshal image urls: %w", err)
	}
	currency := it.Currency
	if currency == "" {
		currency = "TRY"
	}
	cents := int64(math.Round(it.Price * 100))

	_, err = q.GetProductByASIN(ctx, db.GetProductByASINParams{UserID: userID, Asin: it.ASIN})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return true, q.CreateProduct(ctx, db.CreateProductParams{
			ID:          uuid.NewString(),
			UserID:      userID,
			Asin:        it.ASIN,
			Title:       it.Title,
			Description: it.Description,
			PriceCents:  cents,
			Currency:    currency,
			ImageUrls:   string(imageJSON),
			Category:    it.Category,
			Brand:       it.Brand,
		})
	case err != nil:
		return false, err
	}

	return false, q.UpdateProductByASIN(ctx, db.UpdateProductByASINParams{
		Title:       it.Title,
		Description: it.Description,
		PriceCents:  cents,
		Currency:    currency,
		ImageUrls:   string(imageJSON),
		Category:    it.Category,
		Brand:       it.Brand,
		UserID:      userID,
		Asin:        it.ASIN,
	})
}
