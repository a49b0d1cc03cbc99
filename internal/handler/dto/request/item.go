package request

import (
	"github.com/google/uuid"
)

type CreateItemRequest struct {
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description" binding:"required"`
	Available   *bool      `json:"available" binding:"required"`
	RequestID   *uuid.UUID `json:"requestId,omitempty"`
}

type UpdateItemRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Available   *bool   `json:"available,omitempty"`
}

// IsEmpty reports whether the patch carries no changes at all.
func (r UpdateItemRequest) IsEmpty() bool {
	return r.Name == nil && r.Description == nil && r.Available == nil
}

type CreateCommentRequest struct {
	Text string `json:"text"`
}
