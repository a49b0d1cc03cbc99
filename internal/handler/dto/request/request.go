package request

type CreateRequestRequest struct {
	Description string `json:"description" binding:"required"`
}
