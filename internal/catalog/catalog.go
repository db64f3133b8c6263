// Package catalog pulls a seller's listings from an upstream source and
// upserts them into local storage.
package catalog

import (
	"context"
	"errors"
)

// ErrNotConnected is returned by sources that need marketplace credentials
// the seller has not supplied.
var ErrNotConnected = errors.New("amazon account not connected")

type Item struct {
	ASIN        string
	Title       string
	Description string
	Price       float64
	Currency    string
	ImageURLs   []string
	Category    string
	Brand       string
}

type Credentials struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
	SellerID     string
}

func (c Credentials) Connected() bool {
	return c.ClientID != "" && c.ClientSecret != "" && c.RefreshToken != "" && c.SellerID != ""
}

type Source interface {
	Products(ctx context.Context, creds Credentials) ([]Item, error)
}

// DefaultCategories is the Turkish marketplace category list offered to
// sellers before anything is synced.
var DefaultCategories = []string{
	"Elektronik",
	"Giyim",
	"Ev & Yaşam",
	"Kitap",
	"Oyuncak",
	"Spor & Outdoor",
	"Güzellik & Kişisel Bakım",
	"Otomotiv",
	"Bahçe",
	"Pet Shop",
}
