// Package models defines the marketplace payloads the console sends and
// receives.
package models

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrInvalidListing = errors.New("invalid listing")

// Listing is a collectible offered on the marketplace.
type Listing struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Image       string  `json:"image,omitempty"`
	Category    string  `json:"category,omitempty"`
	Creator     string  `json:"creator,omitempty"`
	IsListed    bool    `json:"is_listed"`
}

func (l Listing) String() string {
	creator := l.Creator
	if creator == "" {
		creator = "Unknown"
	}
	status := "listed"
	if !l.IsListed {
		status = "unlisted"
	}
	return fmt.Sprintf("%s\t%s\t%g ETH\t%s\t%s", l.ID, l.Name, l.Price, creator, status)
}

// ImageFile is an image uploaded together with a new listing.
type ImageFile struct {
	Filename string
	Content  io.Reader
}

// NewListing is the create form. Image, when set, is uploaded as a file
// part; ImageURL is sent as a plain field otherwise.
type NewListing struct {
	Name        string
	Description string
	Price       float64
	ImageURL    string
	Category    string
	Image       *ImageFile
}

func (n NewListing) Validate() error {
	if strings.TrimSpace(n.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidListing)
	}
	if n.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrInvalidListing)
	}
	if n.Image != nil && (n.Image.Content == nil || n.Image.Filename == "") {
		return fmt.Errorf("%w: image needs a file name and content", ErrInvalidListing)
	}
	return nil
}

// ListingUpdate is the edit form, sent as JSON.
type ListingUpdate struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	IsListed    bool    `json:"is_listed"`
}

func (u ListingUpdate) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidListing)
	}
	if u.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrInvalidListing)
	}
	return nil
}

// UpdateFrom prefills an edit form with the current listing values.
func UpdateFrom(l Listing) ListingUpdate {
	return ListingUpdate{Name: l.Name, Price: l.Price, Description: l.Description, IsListed: l.IsListed}
}

// Registration is the sign-up form.
type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Credentials is the login form.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
