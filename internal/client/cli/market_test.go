package cli

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/nftconsole/internal/client/models"
	"github.com/dmitrijs2005/nftconsole/internal/client/session"
)

// fakeMarket is an in-memory marketplace API. Every user's password is "pw".
type fakeMarket struct {
	mu       sync.Mutex
	users    map[string]session.Record
	listings []models.Listing
	nextID   int
	hits     map[string]int
}

func newFakeMarket(users ...session.Record) *fakeMarket {
	m := &fakeMarket{users: map[string]session.Record{}, hits: map[string]int{}, nextID: 100}
	for _, u := range users {
		m.users[u.Email] = u
	}
	return m
}

func (m *fakeMarket) hit(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hits[name]++
}

func (m *fakeMarket) count(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hits[name]
}

func marketJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (m *fakeMarket) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		m.mu.Lock()
		defer m.mu.Unlock()
		for _, u := range m.users {
			if token != "" && u.Token == token {
				if u.Role != session.RoleAdmin {
					marketJSON(w, http.StatusForbidden, map[string]string{"message": "Admin access required"})
					return
				}
				next(w, r)
				return
			}
		}
		marketJSON(w, http.StatusUnauthorized, map[string]string{"message": "No token, authorization denied"})
	}
}

func (m *fakeMarket) find(id string) int {
	for i, l := range m.listings {
		if l.ID == id {
			return i
		}
	}
	return -1
}

func (m *fakeMarket) router() chi.Router {
	r := chi.NewRouter()

	r.Post("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		m.hit("login")
		var in models.Credentials
		_ = json.NewDecoder(r.Body).Decode(&in)
		m.mu.Lock()
		u, ok := m.users[in.Email]
		m.mu.Unlock()
		if !ok || in.Password != "pw" {
			marketJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"})
			return
		}
		marketJSON(w, http.StatusOK, u)
	})

	r.Post("/api/auth/register", func(w http.ResponseWriter, r *http.Request) {
		m.hit("register")
		var in models.Registration
		_ = json.NewDecoder(r.Body).Decode(&in)
		m.mu.Lock()
		defer m.mu.Unlock()
		if _, ok := m.users[in.Email]; ok {
			marketJSON(w, http.StatusBadRequest, map[string]any{
				"errors": []map[string]string{{"msg": "User already exists"}},
			})
			return
		}
		u := session.Record{
			Identity: session.Identity{ID: in.Username, Username: in.Username, Email: in.Email, Role: "user"},
			Token:    "tok-" + in.Username,
		}
		m.users[in.Email] = u
		marketJSON(w, http.StatusCreated, u)
	})

	r.Get("/api/nfts", func(w http.ResponseWriter, r *http.Request) {
		m.hit("list")
		m.mu.Lock()
		defer m.mu.Unlock()
		marketJSON(w, http.StatusOK, m.listings)
	})

	r.Get("/api/nfts/{id}", func(w http.ResponseWriter, r *http.Request) {
		m.hit("get")
		m.mu.Lock()
		defer m.mu.Unlock()
		i := m.find(chi.URLParam(r, "id"))
		if i < 0 {
			marketJSON(w, http.StatusNotFound, map[string]string{"message": "NFT not found"})
			return
		}
		marketJSON(w, http.StatusOK, m.listings[i])
	})

	r.Post("/api/nfts", m.requireAdmin(func(w http.ResponseWriter, r *http.Request) {
		m.hits["create"]++
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			marketJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
			return
		}
		price, _ := strconv.ParseFloat(r.FormValue("price"), 64)
		m.nextID++
		l := models.Listing{
			ID:          strconv.Itoa(m.nextID),
			Name:        r.FormValue("name"),
			Description: r.FormValue("description"),
			Price:       price,
			Category:    r.FormValue("category"),
			Image:       r.FormValue("image_url"),
			IsListed:    true,
		}
		if _, hdr, err := r.FormFile("image"); err == nil {
			l.Image = "/uploads/" + hdr.Filename
		}
		m.listings = append(m.listings, l)
		marketJSON(w, http.StatusCreated, l)
	}))

	r.Put("/api/nfts/{id}", m.requireAdmin(func(w http.ResponseWriter, r *http.Request) {
		m.hits["update"]++
		i := m.find(chi.URLParam(r, "id"))
		if i < 0 {
			marketJSON(w, http.StatusNotFound, map[string]string{"message": "NFT not found"})
			return
		}
		var in models.ListingUpdate
		_ = json.NewDecoder(r.Body).Decode(&in)
		l := &m.listings[i]
		l.Name, l.Price, l.Description, l.IsListed = in.Name, in.Price, in.Description, in.IsListed
		marketJSON(w, http.StatusOK, *l)
	}))

	r.Delete("/api/nfts/{id}", m.requireAdmin(func(w http.ResponseWriter, r *http.Request) {
		m.hits["delete"]++
		i := m.find(chi.URLParam(r, "id"))
		if i < 0 {
			marketJSON(w, http.StatusNotFound, map[string]string{"message": "NFT not found"})
			return
		}
		m.listings = append(m.listings[:i], m.listings[i+1:]...)
		marketJSON(w, http.StatusOK, map[string]string{"message": "NFT removed"})
	}))

	return r
}

func (m *fakeMarket) serve(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(m.router())
	t.Cleanup(srv.Close)
	return srv.URL
}

func testUser(name, role string) session.Record {
	return session.Record{
		Identity: session.Identity{ID: name, Username: name, Email: name + "@example.org", Role: role},
		Token:    fmt.Sprintf("tok-%s", name),
	}
}
