package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/nftconsole/internal/client/client"
	"github.com/dmitrijs2005/nftconsole/internal/client/models"
)

type ListingService interface {
	List(ctx context.Context) ([]models.Listing, error)
	Get(ctx context.Context, id string) (models.Listing, error)
	Create(ctx context.Context, in models.NewListing) (models.Listing, error)
	Update(ctx context.Context, id string, in models.ListingUpdate) (models.Listing, error)
	DeleteByID(ctx context.Context, id string) error
}

type listingService struct {
	client client.Client
}

func NewListingService(client client.Client) ListingService {
	return &listingService{client: client}
}

func checkID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id is required", models.ErrInvalidListing)
	}
	return nil
}

func (s *listingService) List(ctx context.Context) ([]models.Listing, error) {
	items, err := s.client.ListListings(ctx)
	if err != nil {
		return nil, fmt.Errorf("list error: %w", err)
	}
	return items, nil
}

func (s *listingService) Get(ctx context.Context, id string) (models.Listing, error) {
	if err := checkID(id); err != nil {
		return models.Listing{}, err
	}
	item, err := s.client.GetListing(ctx, id)
	if err != nil {
		return models.Listing{}, fmt.Errorf("get error: %w", err)
	}
	return item, nil
}

func (s *listingService) Create(ctx context.Context, in models.NewListing) (models.Listing, error) {
	if err := in.Validate(); err != nil {
		return models.Listing{}, err
	}
	item, err := s.client.CreateListing(ctx, in)
	if err != nil {
		return models.Listing{}, fmt.Errorf("create error: %w", err)
	}
	return item, nil
}

func (s *listingService) Update(ctx context.Context, id string, in models.ListingUpdate) (models.Listing, error) {
	if err := checkID(id); err != nil {
		return models.Listing{}, err
	}
	if err := in.Validate(); err != nil {
		return models.Listing{}, err
	}
	item, err := s.client.UpdateListing(ctx, id, in)
	if err != nil {
		return models.Listing{}, fmt.Errorf("update error: %w", err)
	}
	return item, nil
}

func (s *listingService) DeleteByID(ctx context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	if err := s.client.DeleteListing(ctx, id); err != nil {
		return fmt.Errorf("delete error: %w", err)
	}
	return nil
}
