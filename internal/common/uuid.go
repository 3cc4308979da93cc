package common

import "github.com/google/uuid"

// UUID is the id type used across all entities.
type UUID = uuid.UUID

func NewUUID() UUID {
	return uuid.New()
}

func ParseUUID(value string) (UUID, error) {
	return uuid.Parse(value)
}
