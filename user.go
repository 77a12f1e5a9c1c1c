package pixiv

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

type GetUserDetailParams struct {
	UserID *int
}

func NewGetUserDetailParams() *GetUserDetailParams {
	return &GetUserDetailParams{}
}

func (p *GetUserDetailParams) SetUserID(userID int) *GetUserDetailParams {
	p.UserID = &userID
	return p
}

func (p *GetUserDetailParams) Validate() error {
	err := &ErrInvalidParams{}

	if p.UserID == nil {
		err.Add(ErrInvalidParam{"UserID", "missing required field"})
	}

	if err.Len() > 0 {
		return err
	}

	return nil
}

func (p *GetUserDetailParams) buildQuery() url.Values {
	v := url.Values{}

	v.Set("user_id", strconv.Itoa(*p.UserID))
	v.Set("filter", apiFilter)

	return v
}

// GetUserDetail fetches a user's profile. Works without authentication.
func (c *Client) GetUserDetail(ctx context.Context, params *GetUserDetailParams) (*UserDetail, error) {
	if params == nil {
		params = NewGetUserDetailParams()
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL()+"/v1/user/detail", nil)
	if err != nil {
		return nil, err
	}

	var result UserDetail
	if err := c.requestJSON(req, params.buildQuery(), &result); err != nil {
		return nil, err
	}

	return &result, nil
}

type GetUserIllustsParams struct {
	UserID *int
	Type   *ContentType
	Offset *int
}

func NewGetUserIllustsParams() *GetUserIllustsParams {
	return &GetUserIllustsParams{}
}

func (p *GetUserIllustsParams) SetUserID(userID int) *GetUserIllustsParams {
	p.UserID = &userID
	return p
}

func (p *GetUserIllustsParams) SetType(t ContentType) *GetUserIllustsParams {
	p.Type = &t
	return p
}

func (p *GetUserIllustsParams) SetOffset(offset int) *GetUserIllustsParams {
	p.Offset = &offset
	return p
}

func (p *GetUserIllustsParams) Validate() error {
	err := &ErrInvalidParams{}

	if p.UserID == nil {
		err.Add(ErrInvalidParam{"UserID", "missing required field"})
	}

	if err.Len() > 0 {
		return err
	}

	return nil
}

func (p *GetUserIllustsParams) buildQuery() url.Values {
	v := url.Values{}

	v.Set("user_id", strconv.Itoa(*p.UserID))

	if p.Type != nil {
		v.Set("type", string(*p.Type))
	} else {
		v.Set("type", string(ContentTypeIllust))
	}

	if p.Offset != nil {
		v.Set("offset", strconv.Itoa(*p.Offset))
	}

	v.Set("filter", apiFilter)

	return v
}

type GetUserIllustsResult struct {
	Illusts []Illust `json:"illusts"`
	NextURL string   `json:"next_url"`
}

func (r *GetUserIllustsResult) NextOffset() (int, bool) {
	return NextPageInt(r.NextURL, "offset")
}

// GetUserIllusts fetches the works a user has posted. Works without
// authentication.
func (c *Client) GetUserIllusts(ctx context.Context, params *GetUserIllustsParams) (*GetUserIllustsResult, error) {
	if params == nil {
		params = NewGetUserIllustsParams()
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL()+"/v1/user/illusts", nil)
	if err != nil {
		return nil, err
	}

	var result GetUserIllustsResult
	if err := c.requestJSON(req, params.buildQuery(), &result); err != nil {
		return nil, err
	}

	return &result, nil
}

type GetUserBookmarksParams struct {
	UserID        *int
	Visibility    *Visibility
	MaxBookmarkID *int
	Tag           *string
}

func NewGetUserBookmarksParams() *GetUserBookmarksParams {
	return &GetUserBookmarksParams{}
}

func (p *GetUserBookmarksParams) SetUserID(userID int) *GetUserBookmarksParams {
	p.UserID = &userID
	return p
}

func (p *GetUserBookmarksParams) SetVisibility(visibility Visibility) *GetUserBookmarksParams {
	p.Visibility = &visibility
	return p
}

func (p *GetUserBookmarksParams) SetMaxBookmarkID(id int) *GetUserBookmarksParams {
	p.MaxBookmarkID = &id
	return p
}

func (p *GetUserBookmarksParams) SetTag(tag string) *GetUserBookmarksParams {
	p.Tag = &tag
	return p
}

func (p *GetUserBookmarksParams) Validate() error {
	err := &ErrInvalidParams{}

	if p.UserID == nil {
		err.Add(ErrInvalidParam{"UserID", "missing required field"})
	}

	if err.Len() > 0 {
		return err
	}

	return nil
}

func (p *GetUserBookmarksParams) buildQuery() url.Values {
	v := url.Values{}

	v.Set("user_id", strconv.Itoa(*p.UserID))

	if p.Visibility != nil {
		v.Set("restrict", string(*p.Visibility))
	} else {
		v.Set("restrict", string(VisibilityPublic))
	}

	if p.MaxBookmarkID != nil {
		v.Set("max_bookmark_id", strconv.Itoa(*p.MaxBookmarkID))
	}

	if p.Tag != nil {
		v.Set("tag", *p.Tag)
	}

	return v
}

type GetUserBookmarksResult struct {
	Illusts []Illust `json:"illusts"`
	NextURL string   `json:"next_url"`
}

// NextMaxBookmarkID returns the max_bookmark_id cursor for the next
// page; bookmarks page by bookmark id, not offset.
func (r *GetUserBookmarksResult) NextMaxBookmarkID() (int, bool) {
	return NextPageInt(r.NextURL, "max_bookmark_id")
}

// GetUserBookmarks fetches the illustrations a user has bookmarked.
// The visibility filter only applies to one's own bookmarks.
func (c *Client) GetUserBookmarks(ctx context.Context, params *GetUserBookmarksParams) (*GetUserBookmarksResult, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}

	if params == nil {
		params = NewGetUserBookmarksParams()
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL()+"/v1/user/bookmarks/illust", nil)
	if err != nil {
		return nil, err
	}

	var result GetUserBookmarksResult
	if err := c.requestJSON(req, params.buildQuery(), &result); err != nil {
		return nil, err
	}

	return &result, nil
}

type GetUserBookmarkTagsParams struct {
	Visibility *Visibility
	Offset     *int
}

func NewGetUserBookmarkTagsParams() *GetUserBookmarkTagsParams {
	return &GetUserBookmarkTagsParams{}
}

func (p *GetUserBookmarkTagsParams) SetVisibility(visibility Visibility) *GetUserBookmarkTagsParams {
	p.Visibility = &visibility
	return p
}

func (p *GetUserBookmarkTagsParams) SetOffset(offset int) *GetUserBookmarkTagsParams {
	p.Offset = &offset
	return p
}

func (p *GetUserBookmarkTagsParams) buildQuery() url.Values {
	v := url.Values{}

	if p.Visibility != nil {
		v.Set("restrict", string(*p.Visibility))
	} else {
		v.Set("restrict", string(VisibilityPublic))
	}

	if p.Offset != nil {
		v.Set("offset", strconv.Itoa(*p.Offset))
	}

	return v
}

type GetUserBookmarkTagsResult struct {
	BookmarkTags []BookmarkTag `json:"bookmark_tags"`
	NextURL      string        `json:"next_url"`
}

func (r *GetUserBookmarkTagsResult) NextOffset() (int, bool) {
	return NextPageInt(r.NextURL, "offset")
}

// GetUserBookmarkTags fetches the caller's bookmark tags. A nil params
// value requests the public ones.
func (c *Client) GetUserBookmarkTags(ctx context.Context, params *GetUserBookmarkTagsParams) (*GetUserBookmarkTagsResult, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}

	if params == nil {
		params = NewGetUserBookmarkTagsParams()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL()+"/v1/user/bookmark-tags/illust", nil)
	if err != nil {
		return nil, err
	}

	var result GetUserBookmarkTagsResult
	if err := c.requestJSON(req, params.buildQuery(), &result); err != nil {
		return nil, err
	}

	return &result, nil
}

type GetUserFollowingParams struct {
	UserID     *int
	Visibility *Visibility
	Offset     *int
}

func NewGetUserFollowingParams() *GetUserFollowingParams {
	return &GetUserFollowingParams{}
}

func (p *GetUserFollowingParams) SetUserID(userID int) *GetUserFollowingParams {
	p.UserID = &userID
	return p
}

func (p *GetUserFollowingParams) SetVisibility(visibility Visibility) *GetUserFollowingParams {
	p.Visibility = &visibility
	return p
}

func (p *GetUserFollowingParams) SetOffset(offset int) *GetUserFollowingParams {
	p.Offset = &offset
	return p
}

func (p *GetUserFollowingParams) Validate() error {
	err := &ErrInvalidParams{}

	if p.UserID == nil {
		err.Add(ErrInvalidParam{"UserID", "missing required field"})
	}

	if err.Len() > 0 {
		return err
	}

	return nil
}

func (p *GetUserFollowingParams) buildQuery() url.Values {
	v := url.Values{}

	v.Set("user_id", strconv.Itoa(*p.UserID))

	if p.Visibility != nil {
		v.Set("restrict", string(*p.Visibility))
	} else {
		v.Set("restrict", string(VisibilityPublic))
	}

	if p.Offset != nil {
		v.Set("offset", strconv.Itoa(*p.Offset))
	}

	return v
}

type GetUserPreviewsResult struct {
	UserPreviews []UserPreview `json:"user_previews"`
	NextURL      string        `json:"next_url"`
}

func (r *GetUserPreviewsResult) NextOffset() (int, bool) {
	return NextPageInt(r.NextURL, "offset")
}

// GetUserFollowing fetches the users someone follows. The visibility
// filter only applies when fetching one's own followees.
func (c *Client) GetUserFollowing(ctx context.Context, params *GetUserFollowingParams) (*GetUserPreviewsResult, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}

	if params == nil {
		params = NewGetUserFollowingParams()
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL()+"/v1/user/following", nil)
	if err != nil {
		return nil, err
	}

	var result GetUserPreviewsResult
	if err := c.requestJSON(req, params.buildQuery(), &result); err != nil {
		return nil, err
	}

	return &result, nil
}

type GetUserFollowersParams struct {
	UserID *int
	Offset *int
}

func NewGetUserFollowersParams() *GetUserFollowersParams {
	return &GetUserFollowersParams{}
}

func (p *GetUserFollowersParams) SetUserID(userID int) *GetUserFollowersParams {
	p.UserID = &userID
	return p
}

func (p *GetUserFollowersParams) SetOffset(offset int) *GetUserFollowersParams {
	p.Offset = &offset
	return p
}

func (p *GetUserFollowersParams) Validate() error {
	err := &ErrInvalidParams{}

	if p.UserID == nil {
		err.Add(ErrInvalidParam{"UserID", "missing required field"})
	}

	if err.Len() > 0 {
		return err
	}

	return nil
}

func (p *GetUserFollowersParams) buildQuery() url.Values {
	v := url.Values{}

	v.Set("user_id", strconv.Itoa(*p.UserID))

	if p.Offset != nil {
		v.Set("offset", strconv.Itoa(*p.Offset))
	}

	v.Set("filter", apiFilter)

	return v
}

// GetUserFollowers fetches the users following someone.
func (c *Client) GetUserFollowers(ctx context.Context, params *GetUserFollowersParams) (*GetUserPreviewsResult, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}

	if params == nil {
		params = NewGetUserFollowersParams()
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL()+"/v1/user/follower", nil)
	if err != nil {
		return nil, err
	}

	var result GetUserPreviewsResult
	if err := c.requestJSON(req, params.buildQuery(), &result); err != nil {
		return nil, err
	}

	return &result, nil
}

type GetMyPixivUsersParams struct {
	UserID *int
	Offset *int
}

func NewGetMyPixivUsersParams() *GetMyPixivUsersParams {
	return &GetMyPixivUsersParams{}
}

func (p *GetMyPixivUsersParams) SetUserID(userID int) *GetMyPixivUsersParams {
	p.UserID = &userID
	return p
}

func (p *GetMyPixivUsersParams) SetOffset(offset int) *GetMyPixivUsersParams {
	p.Offset = &offset
	return p
}

func (p *GetMyPixivUsersParams) Validate() error {
	err := &ErrInvalidParams{}

	if p.UserID == nil {
		err.Add(ErrInvalidParam{"UserID", "missing required field"})
	}

	if err.Len() > 0 {
		return err
	}

	return nil
}

func (p *GetMyPixivUsersParams) buildQuery() url.Values {
	v := url.Values{}

	v.Set("user_id", strconv.Itoa(*p.UserID))

	if p.Offset != nil {
		v.Set("offset", strconv.Itoa(*p.Offset))
	}

	v.Set("filter", apiFilter)

	return v
}

// GetMyPixivUsers fetches a user's my-pixiv connections.
func (c *Client) GetMyPixivUsers(ctx context.Context, params *GetMyPixivUsersParams) (*GetUserPreviewsResult, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}

	if params == nil {
		params = NewGetMyPixivUsersParams()
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL()+"/v2/user/list", nil)
	if err != nil {
		return nil, err
	}

	var result GetUserPreviewsResult
	if err := c.requestJSON(req, params.buildQuery(), &result); err != nil {
		return nil, err
	}

	return &result, nil
}
