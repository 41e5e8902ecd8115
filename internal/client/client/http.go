package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/nftconsole/internal/client/models"
	"github.com/dmitrijs2005/nftconsole/internal/client/session"
	"github.com/dmitrijs2005/nftconsole/internal/client/transport"
)

const (
	registerPath = "/api/auth/register"
	loginPath    = "/api/auth/login"
	listingsPath = "/api/nfts"
)

// Credentials supplies the Authorization header for protected calls.
type Credentials interface {
	AuthorizationHeader(ctx context.Context) http.Header
}

type HTTPClient struct {
	transport *transport.Client
	creds     Credentials
}

func NewHTTPClient(t *transport.Client, creds Credentials) *HTTPClient {
	return &HTTPClient{transport: t, creds: creds}
}

var _ Client = (*HTTPClient)(nil)

func listingPath(id string) string {
	return listingsPath + "/" + url.PathEscape(id)
}

func (c *HTTPClient) Register(ctx context.Context, in models.Registration) (session.Record, error) {
	var rec session.Record
	if err := c.transport.Post(ctx, registerPath, in, nil, &rec); err != nil {
		return session.Record{}, mapError(err)
	}
	return rec, nil
}

func (c *HTTPClient) Login(ctx context.Context, in models.Credentials) (session.Record, error) {
	var rec session.Record
	if err := c.transport.Post(ctx, loginPath, in, nil, &rec); err != nil {
		return session.Record{}, mapError(err)
	}
	return rec, nil
}

func (c *HTTPClient) ListListings(ctx context.Context) ([]models.Listing, error) {
	var out []models.Listing
	if err := c.transport.Get(ctx, listingsPath, nil, &out); err != nil {
		return nil, mapError(err)
	}
	return out, nil
}

func (c *HTTPClient) GetListing(ctx context.Context, id string) (models.Listing, error) {
	var out models.Listing
	if err := c.transport.Get(ctx, listingPath(id), nil, &out); err != nil {
		return models.Listing{}, mapError(err)
	}
	return out, nil
}

func (c *HTTPClient) CreateListing(ctx context.Context, in models.NewListing) (models.Listing, error) {
	body := &transport.Multipart{
		Fields: map[string]string{
			"name":  in.Name,
			"price": strconv.FormatFloat(in.Price, 'f', -1, 64),
		},
	}
	optional := map[string]string{
		"description": in.Description,
		"category":    in.Category,
		"image_url":   in.ImageURL,
	}
	for k, v := range optional {
		if v != "" {
			body.Fields[k] = v
		}
	}
	if in.Image != nil {
		body.Files = append(body.Files, transport.FilePart{
			Field:    "image",
			Filename: in.Image.Filename,
			Content:  in.Image.Content,
		})
	}

	var out models.Listing
	if err := c.transport.Post(ctx, listingsPath, body, c.creds.AuthorizationHeader(ctx), &out); err != nil {
		return models.Listing{}, mapError(err)
	}
	return out, nil
}

func (c *HTTPClient) UpdateListing(ctx context.Context, id string, in models.ListingUpdate) (models.Listing, error) {
	var out models.Listing
	if err := c.transport.Put(ctx, listingPath(id), in, c.creds.AuthorizationHeader(ctx), &out); err != nil {
		return models.Listing{}, mapError(err)
	}
	return out, nil
}

func (c *HTTPClient) DeleteListing(ctx context.Context, id string) error {
	return mapError(c.transport.Delete(ctx, listingPath(id), c.creds.AuthorizationHeader(ctx), nil))
}
