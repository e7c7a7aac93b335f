package payload

import (
	"net/url"
	"strings"

	"github.com/jellydator/validation"
)

type CreateUserRequest struct {
	Username string `json:"username"`
}

func (c *CreateUserRequest) BindForm(values url.Values) {
	c.Username = values.Get("username")
}

func (c CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Username, validation.Required, validation.By(notBlank)),
	)
}

func (c CreateUserRequest) ToUsername() string {
	return strings.TrimSpace(c.Username)
}
