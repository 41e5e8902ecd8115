package client

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/nftconsole/internal/client/transport"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
)

// mapError tags transport failures with the sentinel the console reacts
// to. The transport error stays in the chain, so transport.ErrNetwork and
// friends still match.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, transport.ErrNetwork) {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if code, ok := transport.StatusCode(err); ok {
		switch code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %w", ErrUnauthorized, err)
		case http.StatusNotFound:
			return fmt.Errorf("%w: %w", ErrNotFound, err)
		}
	}
	return err
}
