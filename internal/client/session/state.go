// Package session decides whether the user is logged in.
//
// Gate resolves the tri-state status by verifying the stored token with the
// service. Each resolution is an activation tagged with a sequence number;
// only the newest activation may publish its result.
package session

// Status is the session state shown to views.
type Status int

const (
	Unknown Status = iota
	Authenticated
	Unauthenticated
)

func (s Status) String() string {
	switch s {
	case Authenticated:
		return "authenticated"
	case Unauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// State is a status plus the reason shown to the user, if any.
type State struct {
	Status Status
	Reason string
}

// ReasonVerificationFailed is shown after the stored token was rejected.
const ReasonVerificationFailed = "Authentication failed. Please log in again."
