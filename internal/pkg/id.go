package pkg

import "github.com/google/uuid"

// GenerateNewSessionID - returns a random identifier for a browser session.
func GenerateNewSessionID() string {
	return uuid.NewString()
}

// GenerateMatchID - returns a random identifier for a match.
func GenerateMatchID() string {
	return uuid.NewString()
}

// IsValidSessionID - reports whether value looks like an identifier issued by GenerateNewSessionID.
func IsValidSessionID(value string) bool {
	_, err := uuid.Parse(value)
	return err == nil
}
