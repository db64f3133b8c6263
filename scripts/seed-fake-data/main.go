// seed-fake-data fills a dealerpost database with fake sellers, products,
// posts and engagement snapshots for local development.
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/loganlanou/dealerpost/internal/auth"
	"github.com/loganlanou/dealerpost/internal/catalog"
	"github.com/loganlanou/dealerpost/internal/social"
	"github.com/loganlanou/dealerpost/storage"
	"github.com/loganlanou/dealerpost/storage/db"
)

const (
	numUsers           = 5
	numProductsPerUser = 12
	numPostsPerProduct = 2
	numSnapshots       = 4
	seedPassword       = "password123"
)

func main() {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./db/dealerpost.db"
	}

	store, err := storage.New(dbPath)
	if err != nil {
		slog.Error("failed to open database", "error", err, "path", dbPath)
		os.Exit(1)
	}
	defer store.Close()

	faker := gofakeit.New(0)
	if err := seed(context.Background(), store.Queries, faker); err != nil {
		slog.Error("failed to seed database", "error", err)
		os.Exit(1)
	}
}

func seed(ctx context.Context, q *db.Queries, faker *gofakeit.Faker) error {
	hash, err := auth.HashPassword(seedPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	for i := 0; i < numUsers; i++ {
		userID := ulid.Make().String()
		email := faker.Email()
		err := q.CreateUser(ctx, db.CreateUserParams{
			ID:             userID,
			Email:          email,
			FullName:       faker.Name(),
			HashedPassword: hash,
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		posts := 0
		for j := 0; j < numProductsPerUser; j++ {
			product, err := seedProduct(ctx, q, faker, userID)
			if err != nil {
				return err
			}
			for k := 0; k < numPostsPerProduct; k++ {
				if err := seedPost(ctx, q, faker, userID, product); err != nil {
					return err
				}
				posts++
			}
		}
		slog.Info("seeded user", "email", email, "password", seedPassword, "products", numProductsPerUser, "posts", posts)
	}
	return nil
}

func seedProduct(ctx context.Context, q *db.Queries, faker *gofakeit.Faker, userID string) (social.ProductData, error) {
	category := catalog.DefaultCategories[faker.Rand.Intn(len(catalog.DefaultCategories))]
	p := social.ProductData{
		ASIN:        "B0" + faker.Regex("[A-Z0-9]{8}"),
		Title:       faker.ProductName(),
		Description: faker.ProductDescription(),
		Price:       faker.Price(49, 4999),
		Currency:    "TRY",
		Category:    category,
		Brand:       faker.Company(),
	}

	images, err := json.Marshal([]string{faker.URL() + "/image.jpg"})
	if err != nil {
		return p, fmt.Errorf("marshal image urls: %w", err)
	}

	err = q.CreateProduct(ctx, db.CreateProductParams{
		ID:          uuid.NewString(),
		UserID:      userID,
		Asin:        p.ASIN,
		Title:       p.Title,
		Description: p.Description,
		PriceCents:  int64(p.Price * 100),
		Currency:    p.Currency,
		ImageUrls:   string(images),
		Category:    p.Category,
		Brand:       p.Brand,
	})
	if err != nil {
		return p, fmt.Errorf("create product %s: %w", p.ASIN, err)
	}
	return p, nil
}

func seedPost(ctx context.Context, q *db.Queries, faker *gofakeit.Faker, userID string, product social.ProductData) error {
	platform := social.AllPlatforms[faker.Rand.Intn(len(social.AllPlatforms))]
	style := social.AllStyles[faker.Rand.Intn(len(social.AllStyles))]
	postID := uuid.NewString()

	err := q.CreateSocialMediaPost(ctx, db.CreateSocialMediaPostParams{
		ID:          postID,
		UserID:      userID,
		ProductAsin: product.ASIN,
		Platform:    string(platform),
		Content:     social.Truncate(social.Draft(product, platform, style), social.Limit(platform)),
		AiGenerated: faker.Bool(),
	})
	if err != nil {
		return fmt.Errorf("create post: %w", err)
	}

	// Roughly half of the twitter drafts get published with a history.
	if platform != social.PlatformTwitter || !faker.Bool() {
		return nil
	}

	externalID := faker.DigitN(19)
	_, err = q.MarkSocialMediaPostPublished(ctx, db.MarkSocialMediaPostPublishedParams{
		ExternalID: sql.NullString{String: externalID, Valid: true},
		PostUrl:    sql.NullString{String: "https://twitter.com/user/status/" + externalID, Valid: true},
		ID:         postID,
	})
	if err != nil {
		return fmt.Errorf("publish post: %w", err)
	}

	impressions := int64(faker.IntRange(200, 5000))
	for i := 0; i < numSnapshots; i++ {
		err := q.CreatePostMetric(ctx, db.CreatePostMetricParams{
			PostID:      postID,
			Platform:    string(platform),
			Likes:       int64(faker.IntRange(0, 150)),
			Shares:      int64(faker.IntRange(0, 40)),
			Replies:     int64(faker.IntRange(0, 20)),
			Quotes:      int64(faker.IntRange(0, 5)),
			Impressions: impressions,
		})
		if err != nil {
			return fmt.Errorf("create post metric: %w", err)
		}
		impressions += int64(faker.IntRange(50, 800))
	}
	return nil
}
