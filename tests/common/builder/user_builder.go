//go:build unit || e2e

package builder

import (
	domuser "shareit/internal/domain/user"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	Name  string
	Email string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Name:  "Alice",
		Email: "alice@example.com",
	}
}

func (b *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(b)
	return b
}

func (b *UserBuilder) BuildDomain() (*domuser.User, error) {
	return domuser.NewUser(b.Name, b.Email)
}

func (b *UserBuilder) BuildReconstructed() *domuser.User {
	return domuser.ReconstructUser(uuid.New(), b.Name, b.Email)
}

func (b *UserBuilder) BuildCreateRequestDTO() reqdto.CreateUserRequest {
	return reqdto.CreateUserRequest{
		Name:  b.Name,
		Email: b.Email,
	}
}

func (b *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{
		ID:    uuid.New(),
		Name:  b.Name,
		Email: b.Email,
	}
}
