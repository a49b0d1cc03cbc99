package request

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrBlankDescription = errors.New("request description must not be blank")

// Request is a wish for an item that does not exist on the platform yet.
// Items created in response carry the request id.
type Request struct {
	id          uuid.UUID
	requesterID uuid.UUID
	description string
	created     time.Time
}

func NewRequest(requesterID uuid.UUID, description string, now time.Time) (*Request, error) {
	if strings.TrimSpace(description) == "" {
		return nil, ErrBlankDescription
	}
	return &Request{
		id:          uuid.New(),
		requesterID: requesterID,
		description: description,
		created:     now,
	}, nil
}

func (r *Request) ID() uuid.UUID          { return r.id }
func (r *Request) RequesterID() uuid.UUID { return r.requesterID }
func (r *Request) Description() string    { return r.description }
func (r *Request) Created() time.Time     { return r.created }
