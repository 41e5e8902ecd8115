package services

import (
	"context"

	"github.com/dmitrijs2005/nftconsole/internal/client/models"
	"github.com/dmitrijs2005/nftconsole/internal/client/session"
)

// fakeClient implements client.Client for service unit tests.
type fakeClient struct {
	RecordRet   session.Record
	RegisterErr error
	LoginErr    error

	ListRet   []models.Listing
	ListErr   error
	GetRet    models.Listing
	GetErr    error
	CreateRet models.Listing
	CreateErr error
	UpdateRet models.Listing
	UpdateErr error
	DeleteErr error

	LastRegistration models.Registration
	LastCredentials  models.Credentials
	LastID           string
	LastNew          models.NewListing
	LastUpdate       models.ListingUpdate
	Calls            int
}

func (f *fakeClient) Register(ctx context.Context, in models.Registration) (session.Record, error) {
	f.Calls++
	f.LastRegistration = in
	return f.RecordRet, f.RegisterErr
}

func (f *fakeClient) Login(ctx context.Context, in models.Credentials) (session.Record, error) {
	f.Calls++
	f.LastCredentials = in
	return f.RecordRet, f.LoginErr
}

func (f *fakeClient) ListListings(ctx context.Context) ([]models.Listing, error) {
	f.Calls++
	return f.ListRet, f.ListErr
}

func (f *fakeClient) GetListing(ctx context.Context, id string) (models.Listing, error) {
	f.Calls++
	f.LastID = id
	return f.GetRet, f.GetErr
}

func (f *fakeClient) CreateListing(ctx context.Context, in models.NewListing) (models.Listing, error) {
	f.Calls++
	f.LastNew = in
	return f.CreateRet, f.CreateErr
}

func (f *fakeClient) UpdateListing(ctx context.Context, id string, in models.ListingUpdate) (models.Listing, error) {
	f.Calls++
	f.LastID = id
	f.LastUpdate = in
	return f.UpdateRet, f.UpdateErr
}

func (f *fakeClient) DeleteListing(ctx context.Context, id string) error {
	f.Calls++
	f.LastID = id
	return f.DeleteErr
}
