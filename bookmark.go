package pixiv

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

type GetBookmarkDetailParams struct {
	IllustID *int
}

func NewGetBookmarkDetailParams() *GetBookmarkDetailParams {
	return &GetBookmarkDetailParams{}
}

func (p *GetBookmarkDetailParams) SetIllustID(illustID int) *GetBookmarkDetailParams {
	p.IllustID = &illustID
	return p
}

func (p *GetBookmarkDetailParams) Validate() error {
	err := &ErrInvalidParams{}

	if p.IllustID == nil {
		err.Add(ErrInvalidParam{"IllustID", "missing required field"})
	}

	if err.Len() > 0 {
		return err
	}

	return nil
}

func (p *GetBookmarkDetailParams) buildQuery() url.Values {
	v := url.Values{}

	v.Set("illust_id", strconv.Itoa(*p.IllustID))

	return v
}

// GetBookmarkDetail fetches the caller's bookmark state on one
// illustration: whether it is bookmarked, with which visibility and
// which tags.
func (c *Client) GetBookmarkDetail(ctx context.Context, params *GetBookmarkDetailParams) (*BookmarkDetail, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}

	if params == nil {
		params = NewGetBookmarkDetailParams()
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL()+"/v2/illust/bookmark/detail", nil)
	if err != nil {
		return nil, err
	}

	var result struct {
		BookmarkDetail BookmarkDetail `json:"bookmark_detail"`
	}
	if err := c.requestJSON(req, params.buildQuery(), &result); err != nil {
		return nil, err
	}

	return &result.BookmarkDetail, nil
}

type AddBookmarkParams struct {
	IllustID   *int
	Visibility *Visibility
}

func NewAddBookmarkParams() *AddBookmarkParams {
	return &AddBookmarkParams{}
}

func (p *AddBookmarkParams) SetIllustID(illustID int) *AddBookmarkParams {
	p.IllustID = &illustID
	return p
}

func (p *AddBookmarkParams) SetVisibility(visibility Visibility) *AddBookmarkParams {
	p.Visibility = &visibility
	return p
}

func (p *AddBookmarkParams) Validate() error {
	err := &ErrInvalidParams{}

	if p.IllustID == nil {
		err.Add(ErrInvalidParam{"IllustID", "missing required field"})
	}

	if err.Len() > 0 {
		return err
	}

	return nil
}

func (p *AddBookmarkParams) buildForm() url.Values {
	v := url.Values{}

	v.Set("illust_id", strconv.Itoa(*p.IllustID))

	if p.Visibility != nil {
		v.Set("restrict", string(*p.Visibility))
	} else {
		v.Set("restrict", string(VisibilityPublic))
	}

	return v
}

// AddBookmark bookmarks an illustration, publicly unless the params say
// otherwise.
func (c *Client) AddBookmark(ctx context.Context, params *AddBookmarkParams) error {
	if err := c.requireAuth(); err != nil {
		return err
	}

	if params == nil {
		params = NewAddBookmarkParams()
	}

	if err := params.Validate(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL()+"/v2/illust/bookmark/add", formReader(params.buildForm()))
	if err != nil {
		return err
	}

	return c.postForm(req, nil)
}

type DeleteBookmarkParams struct {
	IllustID *int
}

func NewDeleteBookmarkParams() *DeleteBookmarkParams {
	return &DeleteBookmarkParams{}
}

func (p *DeleteBookmarkParams) SetIllustID(illustID int) *DeleteBookmarkParams {
	p.IllustID = &illustID
	return p
}

func (p *DeleteBookmarkParams) Validate() error {
	err := &ErrInvalidParams{}

	if p.IllustID == nil {
		err.Add(ErrInvalidParam{"IllustID", "missing required field"})
	}

	if err.Len() > 0 {
		return err
	}

	return nil
}

func (p *DeleteBookmarkParams) buildForm() url.Values {
	v := url.Values{}

	v.Set("illust_id", strconv.Itoa(*p.IllustID))

	return v
}

// DeleteBookmark removes the caller's bookmark from an illustration.
func (c *Client) DeleteBookmark(ctx context.Context, params *DeleteBookmarkParams) error {
	if err := c.requireAuth(); err != nil {
		return err
	}

	if params == nil {
		params = NewDeleteBookmarkParams()
	}

	if err := params.Validate(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL()+"/v1/illust/bookmark/delete", formReader(params.buildForm()))
	if err != nil {
		return err
	}

	return c.postForm(req, nil)
}
