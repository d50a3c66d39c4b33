package entities

import (
	"strings"
	"time"

	"github.com/santiago-morfe/TaskGeniusApi/internal/domain"
)

const MaxIdempotencyKeyLength = 100

// IdempotencyRecord remembers the response to a request sent with an
// Idempotency-Key header. Keys are scoped to the user that sent them.
type IdempotencyRecord struct {
	Key        string
	UserId     uint
	Request    string
	Response   string
	StatusCode int
	CreatedAt  time.Time
}

func NewIdempotencyRecord(userID uint, key, request string) (*IdempotencyRecord, error) {
	key = strings.TrimSpace(key)
	if key == "" || len(key) > MaxIdempotencyKeyLength {
		return nil, domain.NewValidationError("idempotency key must be 1 to %d characters", MaxIdempotencyKeyLength)
	}
	return &IdempotencyRecord{
		Key:       key,
		UserId:    userID,
		Request:   request,
		CreatedAt: time.Now().UTC(),
	}, nil
}

func (r *IdempotencyRecord) SetResponse(response string, statusCode int) {
	r.Response = response
	r.StatusCode = statusCode
}
