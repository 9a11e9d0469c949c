// Package auth handles the client side of federated Google sign-in: decoding
// the provider's identity assertion and deriving a local account identifier
// from the institutional email address.
package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrNoAssertion is returned for an absent or empty credential.
	ErrNoAssertion = errors.New("no identity assertion provided")
	// ErrMalformedAssertion is returned when the credential cannot be
	// decoded as a JWT.
	ErrMalformedAssertion = errors.New("malformed identity assertion")
	// ErrDomainNotAllowed is returned for emails outside the allow-listed
	// institutional domain.
	ErrDomainNotAllowed = errors.New("email domain not allowed")
)

// GoogleIdentity is the subset of the assertion payload the client uses.
type GoogleIdentity struct {
	Email string
	Name  string
}

// DecodeAssertion extracts the email and display name from a Google identity
// assertion. The payload is decoded without signature verification, exactly
// as the original client did: the assertion is only used to derive a login
// attempt, never trusted as authentication by itself.
func DecodeAssertion(credential string) (GoogleIdentity, error) {
	if strings.TrimSpace(credential) == "" {
		return GoogleIdentity{}, ErrNoAssertion
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(credential, claims); err != nil {
		return GoogleIdentity{}, fmt.Errorf("%w: %v", ErrMalformedAssertion, err)
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return GoogleIdentity{}, fmt.Errorf("%w: payload has no email", ErrMalformedAssertion)
	}
	name, _ := claims["name"].(string)

	return GoogleIdentity{Email: email, Name: name}, nil
}

// CheckDomain verifies that email belongs to the allowed institutional
// domain (given without the leading "@").
func CheckDomain(email, allowedDomain string) error {
	if !strings.HasSuffix(email, "@"+allowedDomain) {
		return ErrDomainNotAllowed
	}
	return nil
}

// DeriveStudentID returns the local part of the institutional email, which
// doubles as the student id in the account system.
func DeriveStudentID(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}
