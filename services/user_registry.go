package services

import (
	"errors"
	"strings"
	"sync"

	"github.com/Velora-Commerce/velora-storefront-backend/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already taken")
)

type registeredUser struct {
	user         models.User
	passwordHash []byte
}

// UserRegistry is the in-memory account store behind the mock auth flow.
// Passwords are bcrypt-hashed, but nothing here is durable or multi-instance;
// it's a stand-in for a real identity provider.
type UserRegistry struct {
	mu     sync.Mutex
	nextID int
	users  map[string]registeredUser // keyed by lowercase username
}

// NewUserRegistry seeds the registry with the demo account
// (admin / admin123), matching the storefront's documented login.
func NewUserRegistry() *UserRegistry {
	registry := &UserRegistry{
		nextID: 1,
		users:  make(map[string]registeredUser),
	}

	_, err := registry.Register(models.RegisterRequest{
		Username:  "admin",
		Password:  "admin123",
		Email:     "admin@example.com",
		FirstName: "Admin",
		LastName:  "User",
	})
	if err != nil {
		// Seeding only fails if bcrypt does; surface loudly during development.
		panic(err)
	}
	return registry
}

// Register creates a new account with a bcrypt-hashed password.
func (r *UserRegistry) Register(req models.RegisterRequest) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(req.Username)
	if _, exists := r.users[key]; exists {
		return models.User{}, ErrUsernameTaken
	}

	user := models.User{
		ID:        r.nextID,
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	r.nextID++
	r.users[key] = registeredUser{user: user, passwordHash: hash}
	return user, nil
}

// Authenticate checks a username/password pair against the registry.
func (r *UserRegistry) Authenticate(username, password string) (models.User, error) {
	r.mu.Lock()
	entry, exists := r.users[strings.ToLower(username)]
	r.mu.Unlock()

	if !exists {
		return models.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(entry.passwordHash, []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return entry.user, nil
}

// Lookup returns the account for a username, if registered.
func (r *UserRegistry) Lookup(username string) (models.User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, exists := r.users[strings.ToLower(username)]
	if !exists {
		return models.User{}, false
	}
	return entry.user, true
}
