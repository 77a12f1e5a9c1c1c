package pixiv

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	log "github.com/sirupsen/logrus"
)

var DefaultAPIBaseURL = "https://app-api.pixiv.net"

var DefaultAuthBaseURL = "https://oauth.secure.pixiv.net"

var DefaultAPIHeaders = map[string]string{
	"User-Agent":     "PixivIOSApp/7.6.2 (iOS 12.2; iPhone9,1)",
	"App-OS":         "ios",
	"App-OS-Version": "12.2",
	"App-Version":    "7.6.2",
}

const (
	defaultClientID     = "KzEZED7aC0vird8jWyHM38mXjNTY"
	defaultClientSecret = "W9JZoJe00qPvJsiyCGT3CCtC6ZUtdpKpzMbNlUGP"

	// DefaultLanguage is sent as Accept-Language on every request.
	DefaultLanguage = "English"
)

// Client holds the session state for the app API: the shared HTTP
// client, the OAuth application credentials and, once Login or
// Authenticate has succeeded, the token pair and account details that
// authorize the endpoint methods.
//
// The zero value is ready to use and talks to the production API.
type Client struct {
	// Client is the HTTP client requests go through. Defaults to
	// http.DefaultClient. Timeouts and proxies are its business.
	Client *http.Client

	// BaseURL overrides DefaultAPIBaseURL, AuthURL overrides
	// DefaultAuthBaseURL.
	BaseURL string
	AuthURL string

	// ClientID and ClientSecret identify the application in token
	// grants. The defaults are the mobile app's credentials and are
	// usually what you want.
	ClientID     string
	ClientSecret string

	// Language is the Accept-Language header value, controlling tag
	// translations. Defaults to DefaultLanguage; set to "-" to send
	// no header at all.
	Language string

	// Headers overrides DefaultAPIHeaders.
	Headers map[string]string

	account      *Account
	accessToken  string
	refreshToken string
}

// Account returns the profile stored by the last successful grant, or
// nil before one.
func (c *Client) Account() *Account {
	return c.account
}

// AccessToken returns the current bearer token, empty before a grant.
func (c *Client) AccessToken() string {
	return c.accessToken
}

// RefreshToken returns the current refresh token, empty before a grant.
func (c *Client) RefreshToken() string {
	return c.refreshToken
}

func (c *Client) client() *http.Client {
	if c.Client == nil {
		return http.DefaultClient
	}
	return c.Client
}

func (c *Client) baseURL() string {
	if c.BaseURL == "" {
		return DefaultAPIBaseURL
	}
	return c.BaseURL
}

func (c *Client) authURL() string {
	if c.AuthURL == "" {
		return DefaultAuthBaseURL
	}
	return c.AuthURL
}

func (c *Client) clientID() string {
	if c.ClientID == "" {
		return defaultClientID
	}
	return c.ClientID
}

func (c *Client) clientSecret() string {
	if c.ClientSecret == "" {
		return defaultClientSecret
	}
	return c.ClientSecret
}

func (c *Client) language() string {
	switch c.Language {
	case "":
		return DefaultLanguage
	case "-":
		return ""
	}
	return c.Language
}

func (c *Client) headers() map[string]string {
	if c.Headers == nil {
		return DefaultAPIHeaders
	}
	return c.Headers
}

// requireAuth gates the endpoints that need a bearer token. It fails
// before any request is built.
func (c *Client) requireAuth() error {
	if c.accessToken == "" {
		return ErrNotAuthenticated
	}
	return nil
}

// do executes req over the shared session with the persisted headers,
// the Accept-Language header and, when a token is held, the bearer
// token.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	for k, v := range c.headers() {
		req.Header.Set(k, v)
	}

	if lang := c.language(); lang != "" {
		req.Header.Set("Accept-Language", lang)
	}

	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	return c.client().Do(req)
}

// requestJSON is the wrapper every endpoint method sits on. It issues
// one call and either decodes the JSON body into v or fails: a 4xx
// status becomes an *APIError carrying the status code and raw body
// text, an undecodable body becomes an *APIError without the body.
// Other statuses are not classified; transport errors pass through.
func (c *Client) requestJSON(req *http.Request, query url.Values, v interface{}) error {
	if query != nil {
		req.URL.RawQuery = query.Encode()
	}

	res, err := c.do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	log.WithFields(log.Fields{
		"method": req.Method,
		"url":    req.URL.String(),
		"status": res.StatusCode,
	}).Debug("api response")

	if res.StatusCode/100 == 4 {
		body, _ := io.ReadAll(res.Body)
		return &APIError{StatusCode: res.StatusCode, Body: string(body)}
	}

	if v == nil {
		v = new(json.RawMessage)
	}

	if err := json.NewDecoder(res.Body).Decode(v); err != nil {
		return &APIError{StatusCode: res.StatusCode, cause: err}
	}

	return nil
}

// postForm issues a POST with a form-encoded body against an API path.
func (c *Client) postForm(req *http.Request, v interface{}) error {
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.requestJSON(req, nil, v)
}

func formReader(form url.Values) io.Reader {
	return strings.NewReader(form.Encode())
}
