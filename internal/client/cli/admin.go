package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/nftconsole/internal/client/models"
)

// Admin shows the dashboard: totals and the full listing table.
func (a *App) Admin(ctx context.Context) error {
	return a.guarded(ctx, destAdmin, func(ctx context.Context) error {
		items, err := a.listings.List(ctx)
		if err != nil {
			return err
		}

		var listed int
		var value float64
		for _, l := range items {
			if l.IsListed {
				listed++
				value += l.Price
			}
		}
		fmt.Fprintln(a.out, "Admin dashboard")
		fmt.Fprintf(a.out, "Total: %d  Listed: %d  Unlisted: %d  Listed value: %g ETH\n",
			len(items), listed, len(items)-listed, value)
		printListings(a.out, items)
		return nil
	})
}

func parsePrice(s string) (float64, error) {
	p, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: price %q is not a number", models.ErrInvalidListing, s)
	}
	return p, nil
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// Create prompts for a new listing. The image may be a URL or a local file,
// which is uploaded with the listing.
func (a *App) Create(ctx context.Context) error {
	return a.guarded(ctx, destCreate, func(ctx context.Context) error {
		name, err := GetSimpleText(a.reader, "Enter name", a.out)
		if err != nil {
			return err
		}
		description, err := GetMultiline(a.reader, "Enter description", a.out)
		if err != nil {
			return err
		}
		priceText, err := GetSimpleText(a.reader, "Enter price (ETH)", a.out)
		if err != nil {
			return err
		}
		price, err := parsePrice(priceText)
		if err != nil {
			return err
		}
		category, err := GetSimpleText(a.reader, "Enter category (optional)", a.out)
		if err != nil {
			return err
		}
		image, err := GetSimpleText(a.reader, "Enter image URL or file path (optional)", a.out)
		if err != nil {
			return err
		}

		in := models.NewListing{Name: name, Description: description, Price: price, Category: category}
		switch {
		case image == "":
		case isURL(image):
			in.ImageURL = image
		default:
			f, err := os.Open(image)
			if err != nil {
				return fmt.Errorf("open image: %w", err)
			}
			defer f.Close()
			in.Image = &models.ImageFile{Filename: filepath.Base(image), Content: f}
		}

		l, err := a.listings.Create(ctx, in)
		if err != nil {
			a.log.Warn(ctx, "create listing failed", "error", err)
			return err
		}
		fmt.Fprintf(a.out, "Created listing %s\n", l.ID)
		return nil
	})
}

// Edit loads a listing and prompts for new values; empty answers keep the
// current ones.
func (a *App) Edit(ctx context.Context, args []string) error {
	return a.guarded(ctx, destEdit, func(ctx context.Context) error {
		id, err := a.idArg(args, "Enter listing id to edit")
		if err != nil {
			return err
		}
		current, err := a.listings.Get(ctx, id)
		if err != nil {
			return err
		}
		upd := models.UpdateFrom(current)

		if upd.Name, err = GetTextWithDefault(a.reader, "Name", upd.Name, a.out); err != nil {
			return err
		}
		priceText, err := GetTextWithDefault(a.reader, "Price (ETH)", strconv.FormatFloat(upd.Price, 'f', -1, 64), a.out)
		if err != nil {
			return err
		}
		if upd.Price, err = parsePrice(priceText); err != nil {
			return err
		}
		if upd.Description, err = GetTextWithDefault(a.reader, "Description", upd.Description, a.out); err != nil {
			return err
		}
		listedText, err := GetTextWithDefault(a.reader, "Listed (y/n)", yesNo(upd.IsListed), a.out)
		if err != nil {
			return err
		}
		upd.IsListed = strings.HasPrefix(strings.ToLower(listedText), "y")

		l, err := a.listings.Update(ctx, id, upd)
		if err != nil {
			a.log.Warn(ctx, "update listing failed", "id", id, "error", err)
			return err
		}
		fmt.Fprintf(a.out, "Updated listing %s\n", l.ID)
		return nil
	})
}

func yesNo(b bool) string {
	if b {
		return "y"
	}
	return "n"
}

func (a *App) Delete(ctx context.Context, args []string) error {
	return a.guarded(ctx, destDelete, func(ctx context.Context) error {
		id, err := a.idArg(args, "Enter listing id to delete")
		if err != nil {
			return err
		}
		ok, err := Confirm(a.reader, fmt.Sprintf("Delete listing %s?", id), a.out)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(a.out, "Cancelled")
			return nil
		}
		if err := a.listings.DeleteByID(ctx, id); err != nil {
			a.log.Warn(ctx, "delete listing failed", "id", id, "error", err)
			return err
		}
		fmt.Fprintf(a.out, "Deleted listing %s\n", id)
		return nil
	})
}
