package client

import (
	"context"

	"github.com/dmitrijs2005/nftconsole/internal/client/models"
	"github.com/dmitrijs2005/nftconsole/internal/client/session"
)

// Client is the marketplace API as the console sees it.
type Client interface {
	Register(ctx context.Context, in models.Registration) (session.Record, error)
	Login(ctx context.Context, in models.Credentials) (session.Record, error)
	ListListings(ctx context.Context) ([]models.Listing, error)
	GetListing(ctx context.Context, id string) (models.Listing, error)
	CreateListing(ctx context.Context, in models.NewListing) (models.Listing, error)
	UpdateListing(ctx context.Context, id string, in models.ListingUpdate) (models.Listing, error)
	DeleteListing(ctx context.Context, id string) error
}
