package pixiv

import (
	"net/url"
	"strconv"
)

// formatBool renders a boolean the way the API expects it in query and
// form parameters. Every boolean parameter goes through this.
func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// NextPageValue extracts a named cursor parameter from the next-page
// URL of a paginated response. It returns false when the URL is empty
// (no further pages) or does not carry the parameter. The value is
// whatever the API encoded; no validation happens here.
func NextPageValue(nextURL, param string) (string, bool) {
	if nextURL == "" {
		return "", false
	}

	u, err := url.Parse(nextURL)
	if err != nil {
		return "", false
	}

	vs := u.Query()[param]
	if len(vs) == 0 {
		return "", false
	}

	return vs[0], true
}

// NextPageInt is NextPageValue for the numeric cursors (offset,
// bookmark ids).
func NextPageInt(nextURL, param string) (int, bool) {
	s, ok := NextPageValue(nextURL, param)
	if !ok {
		return 0, false
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}

	return n, true
}
