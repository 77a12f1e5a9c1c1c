package pixiv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	log "github.com/sirupsen/logrus"
)

// Account is the profile returned alongside a token grant.
type Account struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Account          string            `json:"account"`
	MailAddress      string            `json:"mail_address"`
	IsPremium        bool              `json:"is_premium"`
	XRestrict        int               `json:"x_restrict"`
	IsMailAuthorized bool              `json:"is_mail_authorized"`
	ProfileImageURLs map[string]string `json:"profile_image_urls"`
}

type grantResponse struct {
	Response struct {
		AccessToken  string  `json:"access_token"`
		ExpiresIn    int     `json:"expires_in"`
		TokenType    string  `json:"token_type"`
		Scope        string  `json:"scope"`
		RefreshToken string  `json:"refresh_token"`
		User         Account `json:"user"`
	} `json:"response"`
}

// Login exchanges a username and password for a token pair and stores
// it, so that every subsequent request carries the bearer token.
// Any failure is returned as *AuthError.
func (c *Client) Login(ctx context.Context, username, password string) error {
	form := url.Values{}
	form.Set("grant_type", "password")
	form.Set("username", username)
	form.Set("password", password)

	return c.grant(ctx, form)
}

// Authenticate exchanges a refresh token for a new token pair and
// stores it. Any failure is returned as *AuthError.
func (c *Client) Authenticate(ctx context.Context, refreshToken string) error {
	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", refreshToken)

	return c.grant(ctx, form)
}

// grant posts one OAuth token request and commits the result. The
// commit is all-or-nothing: the body is decoded into a typed struct
// and checked for the token fields before any client state changes, so
// a failed grant leaves the previous tokens and account untouched.
func (c *Client) grant(ctx context.Context, form url.Values) error {
	form.Set("client_id", c.clientID())
	form.Set("client_secret", c.clientSecret())
	form.Set("get_secure_url", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.authURL()+"/auth/token", formReader(form))
	if err != nil {
		return &AuthError{Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	for k, v := range c.headers() {
		req.Header.Set(k, v)
	}
	if lang := c.language(); lang != "" {
		req.Header.Set("Accept-Language", lang)
	}

	res, err := c.client().Do(req)
	if err != nil {
		return &AuthError{Err: err}
	}
	defer res.Body.Close()

	log.WithFields(log.Fields{
		"grant_type": form.Get("grant_type"),
		"status":     res.StatusCode,
	}).Debug("token grant response")

	if res.StatusCode/100 != 2 {
		return &AuthError{Err: fmt.Errorf("token grant returned %s", res.Status)}
	}

	var body grantResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return &AuthError{Err: err}
	}

	if body.Response.AccessToken == "" || body.Response.RefreshToken == "" {
		return &AuthError{Err: errors.New("token grant response is missing tokens")}
	}

	account := body.Response.User
	c.account = &account
	c.accessToken = body.Response.AccessToken
	c.refreshToken = body.Response.RefreshToken

	return nil
}
