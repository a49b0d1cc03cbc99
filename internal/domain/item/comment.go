package item

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrBlankComment = errors.New("comment text must not be blank")

// Comment is feedback a booker may leave once an approved booking has elapsed.
// The eligibility check itself lives in the booking read side.
type Comment struct {
	id       uuid.UUID
	itemID   uuid.UUID
	authorID uuid.UUID
	text     string
	created  time.Time
}

func NewComment(itemID, authorID uuid.UUID, text string, now time.Time) (*Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrBlankComment
	}
	return &Comment{
		id:       uuid.New(),
		itemID:   itemID,
		authorID: authorID,
		text:     text,
		created:  now,
	}, nil
}

func (c *Comment) ID() uuid.UUID       { return c.id }
func (c *Comment) ItemID() uuid.UUID   { return c.itemID }
func (c *Comment) AuthorID() uuid.UUID { return c.authorID }
func (c *Comment) Text() string        { return c.text }
func (c *Comment) Created() time.Time  { return c.created }
