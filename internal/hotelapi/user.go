package hotelapi

import (
	"context"
	"net/http"

	"github.com/ibeloyar/hotelportal/internal/model"
)

// GetUser returns a nil Result on 403: an anonymous visitor is not an error.
func (c *Client) GetUser(ctx context.Context) (Result[model.User], error) {
	return call[model.User](ctx, c, http.MethodGet, pathUser, nil, true)
}

func (c *Client) UpdateProfile(ctx context.Context, input model.UpdateProfileDTO) (Result[Empty], error) {
	return call[Empty](ctx, c, http.MethodPut, pathUserUpdate, input, true)
}

func (c *Client) UpdatePassword(ctx context.Context, input model.UpdatePasswordDTO) (Result[Empty], error) {
	return call[Empty](ctx, c, http.MethodPut, pathUserUpdate, input, true)
}

func (c *Client) Login(ctx context.Context, input model.LoginDTO) (Result[model.User], error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{input.Email, input.Password}

	return call[model.User](ctx, c, http.MethodPost, pathUserLogin, body, false)
}

func (c *Client) Signup(ctx context.Context, input model.SignupDTO) (Result[model.User], error) {
	input.ConfirmPassword = ""

	return call[model.User](ctx, c, http.MethodPost, pathUserSignup, input, false)
}

func (c *Client) ForgotPassword(ctx context.Context, input model.ForgotPasswordDTO) (Result[Empty], error) {
	return call[Empty](ctx, c, http.MethodPost, pathUserForgot, input, false)
}

// CheckLogin never carries a payload; Status is the answer.
func (c *Client) CheckLogin(ctx context.Context) (Result[Empty], error) {
	res, err := call[Empty](ctx, c, http.MethodGet, pathUserCheck, nil, true)
	if err != nil {
		return res, err
	}

	res.Result = nil
	return res, nil
}

func (c *Client) VerifyEmail(ctx context.Context, email string) (Result[model.EmailCheck], error) {
	res, err := call[model.EmailCheck](ctx, c, http.MethodPost, pathVerifyEmail, model.EmailDTO{Email: email}, false)
	if err != nil {
		return res, err
	}

	if res.StatusCode == http.StatusBadRequest {
		res.Message = model.ErrInvalidEmailFormatMessage
	}

	return res, nil
}

func (c *Client) GenerateEmailCode(ctx context.Context, email string) (Result[Empty], error) {
	return call[Empty](ctx, c, http.MethodPost, pathGenerateEmailCode, model.EmailDTO{Email: email}, false)
}
