package utils

import (
	"github.com/google/uuid"
)

// NewRequestID returns a fresh identifier for correlating request logs
func NewRequestID() string {
	return uuid.NewString()
}
