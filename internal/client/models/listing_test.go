package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListing_Validate(t *testing.T) {
	tests := []struct {
		name    string
		in      NewListing
		wantErr bool
	}{
		{name: "ok", in: NewListing{Name: "Ape", Price: 1}},
		{name: "ok with image", in: NewListing{Name: "Ape", Price: 1, Image: &ImageFile{Filename: "a.png", Content: strings.NewReader("x")}}},
		{name: "blank name", in: NewListing{Name: "  ", Price: 1}, wantErr: true},
		{name: "zero price", in: NewListing{Name: "Ape"}, wantErr: true},
		{name: "negative price", in: NewListing{Name: "Ape", Price: -2}, wantErr: true},
		{name: "image without content", in: NewListing{Name: "Ape", Price: 1, Image: &ImageFile{Filename: "a.png"}}, wantErr: true},
		{name: "image without name", in: NewListing{Name: "Ape", Price: 1, Image: &ImageFile{Content: strings.NewReader("x")}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidListing)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestListingUpdate_Validate(t *testing.T) {
	require.NoError(t, ListingUpdate{Name: "Ape", Price: 0.1}.Validate())
	require.ErrorIs(t, ListingUpdate{Price: 0.1}.Validate(), ErrInvalidListing)
	require.ErrorIs(t, ListingUpdate{Name: "Ape"}.Validate(), ErrInvalidListing)
}

func TestUpdateFrom(t *testing.T) {
	l := Listing{ID: "1", Name: "Ape", Price: 2, Description: "d", IsListed: true, Creator: "c"}
	assert.Equal(t, ListingUpdate{Name: "Ape", Price: 2, Description: "d", IsListed: true}, UpdateFrom(l))
}

func TestListing_String(t *testing.T) {
	assert.Equal(t, "1\tApe\t1.5 ETH\tUnknown\tunlisted", Listing{ID: "1", Name: "Ape", Price: 1.5}.String())
	assert.Equal(t, "2\tPunk\t3 ETH\tbob\tlisted", Listing{ID: "2", Name: "Punk", Price: 3, Creator: "bob", IsListed: true}.String())
}
