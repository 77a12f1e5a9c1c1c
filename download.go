package pixiv

import (
	"context"
	"io"
	"net/http"
	"os"
)

// DefaultDownloadReferer is sent on downloads; the image hosts reject
// requests without a pixiv referer.
const DefaultDownloadReferer = "https://pixiv.net"

var DefaultDownloadHeaders = map[string]string{
	"User-Agent":      "PixivIOSApp/7.6.2 (iOS 12.2; iPhone9,1)",
	"Referer":         DefaultDownloadReferer,
	"Accept-Encoding": "identity",
}

// DownloadOption adjusts a single download request after the default
// header set is applied.
type DownloadOption func(*http.Request)

// WithDownloadReferer replaces the Referer header for one download.
func WithDownloadReferer(referer string) DownloadOption {
	return func(req *http.Request) {
		req.Header.Set("Referer", referer)
	}
}

// Download streams the bytes at rawURL into w over the shared session,
// sending the download header set (including the Referer). Any write
// error from w is returned as-is.
func (c *Client) Download(ctx context.Context, rawURL string, w io.Writer, opts ...DownloadOption) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}

	for k, v := range DefaultDownloadHeaders {
		req.Header.Set(k, v)
	}

	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	for _, opt := range opts {
		opt(req)
	}

	res, err := c.client().Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	_, err = io.Copy(w, res.Body)
	return err
}

// DownloadTo downloads rawURL into a file at dest. Filesystem errors
// (missing directory, permissions) surface unmodified.
func (c *Client) DownloadTo(ctx context.Context, rawURL, dest string, opts ...DownloadOption) error {
	f, err := os.Create(dest)
	if err != nil {
		return err
	}

	if err := c.Download(ctx, rawURL, f, opts...); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
