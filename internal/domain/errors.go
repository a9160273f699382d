package domain

import (
	"errors"
	"fmt"
)

// Kind classifies an Error so the transport layer can pick a status code
// without inspecting messages.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthenticated
	KindInvalidToken
	KindUnauthorized
	KindNotFound
	KindConflict
	KindUpstream
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindInvalidToken:
		return "invalid_token"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindUpstream:
		return "upstream"
	default:
		return "internal"
	}
}

// FieldError describes one rejected input field.
type FieldError struct {
	Msg   string `json:"msg"`
	Param string `json:"param,omitempty"`
}

// Error is the tagged error carried from the domain up to the transport.
type Error struct {
	Kind   Kind
	Msg    string
	Fields []FieldError
}

func (e *Error) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("%s: %s (%d field errors)", e.Kind, e.Msg, len(e.Fields))
	}
	return e.Kind.String() + ": " + e.Msg
}

var (
	ErrUnauthenticated    = &Error{Kind: KindUnauthenticated, Msg: "No token, authorization denied"}
	ErrInvalidToken       = &Error{Kind: KindInvalidToken, Msg: "Token is not valid"}
	ErrUnauthorized       = &Error{Kind: KindUnauthorized, Msg: "User not authorized"}
	ErrUserNotFound       = &Error{Kind: KindNotFound, Msg: "User not found"}
	ErrProfileNotFound    = &Error{Kind: KindNotFound, Msg: "User does not have a profile"}
	ErrProfileMissing     = &Error{Kind: KindNotFound, Msg: "Profile not found"}
	ErrExperienceNotFound = &Error{Kind: KindNotFound, Msg: "Experience not found"}
	ErrPostNotFound       = &Error{Kind: KindNotFound, Msg: "Post not found"}
	ErrCommentNotFound    = &Error{Kind: KindNotFound, Msg: "Comment does not exist"}
	ErrEmailConflict      = &Error{Kind: KindConflict, Msg: "User already exist"}
	ErrInvalidCredentials = &Error{Kind: KindValidation, Msg: "Invalid Credentials"}
	ErrGitHubNotFound     = &Error{Kind: KindUpstream, Msg: "No Github profile found"}

	// ErrVersionConflict is returned by stores when an aggregate changed
	// between read and write.
	ErrVersionConflict = errors.New("aggregate version conflict")
)

// Validation builds a KindValidation error from the collected field errors.
func Validation(fields []FieldError) *Error {
	return &Error{Kind: KindValidation, Msg: "invalid input", Fields: fields}
}

// KindOf returns the Kind of err, or KindInternal for untagged errors.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}
