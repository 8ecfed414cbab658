package service

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/Thrinath17/FitTrack/internal/model"
	"github.com/Thrinath17/FitTrack/internal/store"
)

const (
	defaultUserName  = "Gym Enthusiast"
	defaultUserEmail = "user@example.com"
)

// Login fabricates a local user for the given provider. There is no real
// identity backend; the email, when present, only has to look like one
// and seeds the display name.
func Login(db *sql.DB, provider model.AuthProvider, email string) (model.User, error) {
	switch provider {
	case model.ProviderEmail, model.ProviderGoogle, model.ProviderApple:
	default:
		return model.User{}, fmt.Errorf("unknown auth provider %q", provider)
	}

	email = strings.TrimSpace(email)
	if email != "" && !ValidateEmail(email) {
		return model.User{}, fmt.Errorf("invalid email address %q", email)
	}

	name := defaultUserName
	if email != "" {
		name = email[:strings.Index(email, "@")]
	} else {
		email = defaultUserEmail
	}

	user := model.User{
		ID:       newID(),
		Name:     name,
		Email:    email,
		Provider: provider,
	}
	if err := store.SaveUser(db, user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

func CurrentUser(db *sql.DB) (*model.User, error) {
	return store.GetUser(db)
}

// Logout clears the stored user and any in-flight session. It is
// best-effort: a failing clear is reported but the caller's local
// session must be treated as ended regardless.
func Logout(db *sql.DB) error {
	userErr := store.ClearUser(db)
	sessionErr := store.ClearSession(db)
	if userErr != nil {
		return userErr
	}
	return sessionErr
}
