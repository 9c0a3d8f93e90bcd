package payload

import (
	"fmt"
	"net/http"

	"github.com/jellydator/validation"

	"github.com/FlamesIsCool/tagz-bio/internal/core"
)

// LoginRequest is form-encoded, OAuth2 password-grant style: the username
// field carries either a username or an email address.
type LoginRequest struct {
	Username string
	Password string
}

func LoginRequestFromForm(r *http.Request) (LoginRequest, error) {
	if err := r.ParseForm(); err != nil {
		return LoginRequest{}, fmt.Errorf("parse form: %w", err)
	}

	return LoginRequest{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}, nil
}

func (l LoginRequest) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Username, validation.Required),
		validation.Field(&l.Password, validation.Required),
	)
}

func (l LoginRequest) ToMessage() core.LoginMessage {
	return core.LoginMessage{
		Identifier: l.Username,
		Password:   l.Password,
	}
}
