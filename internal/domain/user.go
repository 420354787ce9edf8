package domain

import (
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// User validation errors
var (
	ErrEmptyUsername       = errors.New("username cannot be empty")
	ErrInvalidUsername     = errors.New("username may only contain letters, digits, hyphens and underscores")
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrEmptyPassword       = errors.New("password cannot be empty")
	ErrPasswordTooShort    = errors.New("password must be at least 8 characters long")
	ErrPasswordTooLong     = errors.New("password must be at most 72 characters long")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,30}$`)

// User represents a registered user of the job board.
// Username is the primary key and the subject of issued credentials.
type User struct {
	Username       string `json:"username"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Password       string `json:"-"` // Plaintext password, used temporarily during registration/updates
	HashedPassword string `json:"-"` // Never expose password hash in JSON
	IsAdmin        bool   `json:"isAdmin"`
}

// Application records that a user applied to a job.
type Application struct {
	Username string    `json:"username"`
	JobID    uuid.UUID `json:"jobId"`
}

// NewUser creates a new User with the given fields.
// Returns an error if validation fails.
//
// NOTE: This function only sets up the user structure with the plaintext
// password. The caller is responsible for hashing the password before
// storing the user.
func NewUser(username, firstName, lastName, email, password string, isAdmin bool) (*User, error) {
	user := &User{
		Username:  username,
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  password, // Plaintext password - must be hashed before storage
		IsAdmin:   isAdmin,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.Username == "" {
		return ErrEmptyUsername
	}

	if !usernamePattern.MatchString(u.Username) {
		return ErrInvalidUsername
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}

	if !validateEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	// During user creation/update we validate the provided plaintext
	// password. Existing users loaded from the database carry only the
	// hash, which must then be present.
	if u.Password != "" {
		if len(u.Password) < 8 {
			return ErrPasswordTooShort
		}
		// bcrypt's practical input limit
		if len(u.Password) > 72 {
			return ErrPasswordTooLong
		}
	} else if u.HashedPassword == "" {
		return ErrEmptyPassword
	}

	return nil
}

// validateEmailFormat performs basic validation of email format.
// Returns true if the email appears to be in a valid format.
func validateEmailFormat(email string) bool {
	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	dot := strings.IndexByte(domain, '.')
	return dot > 0 && dot < len(domain)-1
}
