// Package identity supplies the current authenticated user to the UI.
// The quiz core consults it only for access gating and personalization;
// sign-in and sign-out happen outside this program (the web product
// owns them) and are picked up here through the shared session file.
package identity

import "strings"

// User is the authenticated identity, reduced to what the UI needs.
type User struct {
	ID       string
	Email    string
	FullName string
}

// FirstName returns the user's first name, falling back to "Researcher"
// for users without profile metadata.
func (u *User) FirstName() string {
	if u == nil || u.FullName == "" {
		return "Researcher"
	}
	name, _, _ := strings.Cut(u.FullName, " ")
	return name
}

// DisplayName returns the full name, or a guest label when absent.
func (u *User) DisplayName() string {
	if u == nil || u.FullName == "" {
		return "Guest Researcher"
	}
	return u.FullName
}

// SessionReader reports the current user and whether session resolution
// is still in progress. While Loading is true, protected screens must
// show a neutral initializing view instead of rendering.
type SessionReader interface {
	CurrentUser() *User
	Loading() bool
}

// StaticReader is a SessionReader with a fixed answer, for tests and
// for running without an identity provider configured.
type StaticReader struct {
	User *User
}

func (r StaticReader) CurrentUser() *User { return r.User }

func (r StaticReader) Loading() bool { return false }
