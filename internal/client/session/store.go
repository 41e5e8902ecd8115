package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/nftconsole/internal/logging"
)

const (
	recordKey  = "session"
	savedAtKey = "session_saved_at"
)

var ErrIncompleteRecord = errors.New("session record needs a role and a token")

// Medium is the key/value persistence the store owns. Get returns
// (nil, nil) for a missing key; Put writes all entries together.
type Medium interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, entries map[string][]byte) error
	Delete(ctx context.Context, keys ...string) error
}

// Store is the only reader and writer of the persisted session slot.
// A nil medium means persistence is unavailable: reads report no session
// and writes are dropped.
type Store struct {
	medium Medium
	log    logging.Logger
	now    func() time.Time
}

func NewStore(medium Medium, log logging.Logger) *Store {
	if log == nil {
		log = logging.Discard()
	}
	return &Store{medium: medium, log: log.With("component", "session"), now: time.Now}
}

// Save replaces the stored record. An incomplete record is rejected and
// nothing is written. Medium failures are logged and swallowed.
func (s *Store) Save(ctx context.Context, rec Record) error {
	if !rec.Complete() {
		return ErrIncompleteRecord
	}
	if s.medium == nil {
		s.log.Warn(ctx, "session medium unavailable, record not persisted")
		return nil
	}

	data, err := json.Marshal(rec)
	if err != nil {
		s.log.Warn(ctx, "session record not encodable", "error", err)
		return nil
	}

	err = s.medium.Put(ctx, map[string][]byte{
		recordKey:  data,
		savedAtKey: []byte(s.now().UTC().Format(time.RFC3339)),
	})
	if err != nil {
		s.log.Warn(ctx, "session record not persisted", "error", err)
	}
	return nil
}

// Current reads the stored record fresh on every call. Missing, unreadable,
// corrupt or incomplete content all report (Record{}, false).
func (s *Store) Current(ctx context.Context) (Record, bool) {
	if s.medium == nil {
		return Record{}, false
	}

	data, err := s.medium.Get(ctx, recordKey)
	if err != nil {
		s.log.Warn(ctx, "session medium read failed", "error", err)
		return Record{}, false
	}
	if len(data) == 0 {
		return Record{}, false
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		s.log.Warn(ctx, "stored session unreadable, treating as absent", "error", err)
		return Record{}, false
	}
	if !rec.Complete() {
		s.log.Warn(ctx, "stored session incomplete, treating as absent")
		return Record{}, false
	}
	return rec, true
}

// SavedAt reports when the current record was written.
func (s *Store) SavedAt(ctx context.Context) (time.Time, bool) {
	if _, ok := s.Current(ctx); !ok {
		return time.Time{}, false
	}
	data, err := s.medium.Get(ctx, savedAtKey)
	if err != nil || len(data) == 0 {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, string(data))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Clear removes the stored record. Calling it with nothing stored is fine.
func (s *Store) Clear(ctx context.Context) {
	if s.medium == nil {
		return
	}
	if err := s.medium.Delete(ctx, recordKey, savedAtKey); err != nil {
		s.log.Warn(ctx, "session clear failed", "error", err)
	}
}

// AuthorizationHeader returns a header holding "Authorization: Bearer <token>"
// for the current record, or an empty header when there is none.
func (s *Store) AuthorizationHeader(ctx context.Context) http.Header {
	h := http.Header{}
	if rec, ok := s.Current(ctx); ok {
		h.Set("Authorization", "Bearer "+rec.Token)
	}
	return h
}
