package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dmitrijs2005/nftconsole/internal/client/models"
)

func printListings(w io.Writer, items []models.Listing) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No listings")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE\tCREATOR\tSTATUS")
	for _, l := range items {
		fmt.Fprintln(tw, l.String())
	}
	_ = tw.Flush()
}

func printListing(w io.Writer, l models.Listing) {
	creator := l.Creator
	if creator == "" {
		creator = "Unknown"
	}
	fmt.Fprintf(w, "ID:          %s\n", l.ID)
	fmt.Fprintf(w, "Name:        %s\n", l.Name)
	fmt.Fprintf(w, "Price:       %g ETH\n", l.Price)
	fmt.Fprintf(w, "Creator:     %s\n", creator)
	if l.Category != "" {
		fmt.Fprintf(w, "Category:    %s\n", l.Category)
	}
	if l.Description != "" {
		fmt.Fprintf(w, "Description: %s\n", l.Description)
	}
	if l.Image != "" {
		fmt.Fprintf(w, "Image:       %s\n", l.Image)
	}
	fmt.Fprintf(w, "Listed:      %t\n", l.IsListed)
}

// List prints every listing. This is the home screen.
func (a *App) List(ctx context.Context) error {
	a.location = destHome
	items, err := a.listings.List(ctx)
	if err != nil {
		return err
	}
	printListings(a.out, items)
	return nil
}

// idArg takes the listing id from args or prompts for it.
func (a *App) idArg(args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return GetSimpleText(a.reader, prompt, a.out)
}

func (a *App) Show(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Enter listing id")
	if err != nil {
		return err
	}
	l, err := a.listings.Get(ctx, id)
	if err != nil {
		return err
	}
	a.location = destListing
	printListing(a.out, l)
	return nil
}
