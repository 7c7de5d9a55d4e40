// Package app holds the demo application's own services and their
// provider.
package app

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// User is the demo domain object.
type User struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// UserStore is an in-memory user repository registered as a shared
// service.
type UserStore struct {
	mu     sync.Mutex
	nextID int
	users  map[int]User
}

// NewUserStore creates a store seeded with a couple of users.
func NewUserStore() *UserStore {
	s := &UserStore{nextID: 1, users: make(map[int]User)}
	s.Add("Alice")
	s.Add("Bob")
	return s
}

// Add stores a new user and returns it.
func (s *UserStore) Add(name string) User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := User{ID: s.nextID, Name: name}
	s.users[u.ID] = u
	s.nextID++
	return u
}

// Find returns the user with id, if any.
func (s *UserStore) Find(id int) (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	return u, ok
}

// All returns every user, ordered by id.
func (s *UserStore) All() []User {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ── Mailer ───────────────────────────────────────────────────────────────────

// MailerConfig configures mailer construction through the container's
// factory table.
type MailerConfig struct {
	Host string
	Port string
	From string
}

// Mailer is a demo outbound-mail service, built by factory.
type Mailer struct {
	Host string
	Port string
	From string
}

// NewMailer validates cfg and builds a Mailer.
func NewMailer(cfg MailerConfig) (*Mailer, error) {
	if cfg.Host == "" {
		return nil, errors.New("mailer: host required")
	}
	return &Mailer{Host: cfg.Host, Port: cfg.Port, From: cfg.From}, nil
}

// Compose renders a message envelope without sending anything.
func (m *Mailer) Compose(to, subject string) string {
	return fmt.Sprintf("From: %s\nTo: %s\nSubject: %s\nVia: %s:%s", m.From, to, subject, m.Host, m.Port)
}
