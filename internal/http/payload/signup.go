package payload

import (
	"github.com/jellydator/validation"
	"github.com/jellydator/validation/is"

	"github.com/FlamesIsCool/tagz-bio/internal/core"
)

type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s SignupRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Username, validation.Required, validation.Length(3, 32)),
		validation.Field(&s.Email, validation.Required, is.EmailFormat),
		validation.Field(&s.Password, validation.Required, validation.Length(6, 0)),
	)
}

func (s SignupRequest) ToMessage() core.SignupMessage {
	return core.SignupMessage{
		Username: s.Username,
		Email:    s.Email,
		Password: s.Password,
	}
}
