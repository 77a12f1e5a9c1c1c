package pixiv

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// SearchIllustsParams are the arguments of SearchIllusts. Word is
// required; unset optionals are omitted from the outgoing request.
type SearchIllustsParams struct {
	Word         *string
	SearchTarget *SearchTarget
	Sort         *Sort
	Duration     *Duration
	Offset       *int
}

func NewSearchIllustsParams() *SearchIllustsParams {
	return &SearchIllustsParams{}
}

func (p *SearchIllustsParams) SetWord(word string) *SearchIllustsParams {
	p.Word = &word
	return p
}

func (p *SearchIllustsParams) SetSearchTarget(target SearchTarget) *SearchIllustsParams {
	p.SearchTarget = &target
	return p
}

func (p *SearchIllustsParams) SetSort(sort Sort) *SearchIllustsParams {
	p.Sort = &sort
	return p
}

func (p *SearchIllustsParams) SetDuration(duration Duration) *SearchIllustsParams {
	p.Duration = &duration
	return p
}

func (p *SearchIllustsParams) SetOffset(offset int) *SearchIllustsParams {
	p.Offset = &offset
	return p
}

func (p *SearchIllustsParams) Validate() error {
	err := &ErrInvalidParams{}

	if p.Word == nil {
		err.Add(ErrInvalidParam{"Word", "missing required field"})
	}

	if err.Len() > 0 {
		return err
	}

	return nil
}

func (p *SearchIllustsParams) buildQuery() url.Values {
	v := url.Values{}

	v.Set("word", *p.Word)

	if p.SearchTarget != nil {
		v.Set("search_target", string(*p.SearchTarget))
	} else {
		v.Set("search_target", string(SearchTargetPartialMatchForTags))
	}

	if p.Sort != nil {
		v.Set("sort", string(*p.Sort))
	} else {
		v.Set("sort", string(SortDateDesc))
	}

	if p.Duration != nil {
		v.Set("duration", string(*p.Duration))
	}

	if p.Offset != nil {
		v.Set("offset", strconv.Itoa(*p.Offset))
	}

	v.Set("filter", apiFilter)

	return v
}

type SearchIllustsResult struct {
	Illusts         []Illust `json:"illusts"`
	NextURL         string   `json:"next_url"`
	SearchSpanLimit int      `json:"search_span_limit"`
}

// NextOffset returns the offset for the next page, false when there is
// no further page.
func (r *SearchIllustsResult) NextOffset() (int, bool) {
	return NextPageInt(r.NextURL, "offset")
}

// SearchIllusts searches illustrations by keyword. At most 30 works
// come back per call; repeat with the returned offset for more.
func (c *Client) SearchIllusts(ctx context.Context, params *SearchIllustsParams) (*SearchIllustsResult, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}

	if params == nil {
		params = NewSearchIllustsParams()
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL()+"/v1/search/illust", nil)
	if err != nil {
		return nil, err
	}

	var result SearchIllustsResult
	if err := c.requestJSON(req, params.buildQuery(), &result); err != nil {
		return nil, err
	}

	return &result, nil
}

type GetIllustDetailParams struct {
	IllustID *int
}

func NewGetIllustDetailParams() *GetIllustDetailParams {
	return &GetIllustDetailParams{}
}

func (p *GetIllustDetailParams) SetIllustID(illustID int) *GetIllustDetailParams {
	p.IllustID = &illustID
	return p
}

func (p *GetIllustDetailParams) Validate() error {
	err := &ErrInvalidParams{}

	if p.IllustID == nil {
		err.Add(ErrInvalidParam{"IllustID", "missing required field"})
	}

	if err.Len() > 0 {
		return err
	}

	return nil
}

func (p *GetIllustDetailParams) buildQuery() url.Values {
	v := url.Values{}

	v.Set("illust_id", strconv.Itoa(*p.IllustID))

	return v
}

// GetIllustDetail fetches a single illustration.
func (c *Client) GetIllustDetail(ctx context.Context, params *GetIllustDetailParams) (*Illust, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}

	if params == nil {
		params = NewGetIllustDetailParams()
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL()+"/v1/illust/detail", nil)
	if err != nil {
		return nil, err
	}

	var result struct {
		Illust Illust `json:"illust"`
	}
	if err := c.requestJSON(req, params.buildQuery(), &result); err != nil {
		return nil, err
	}

	return &result.Illust, nil
}

type GetIllustCommentsParams struct {
	IllustID             *int
	Offset               *int
	IncludeTotalComments *bool
}

func NewGetIllustCommentsParams() *GetIllustCommentsParams {
	return &GetIllustCommentsParams{}
}

func (p *GetIllustCommentsParams) SetIllustID(illustID int) *GetIllustCommentsParams {
	p.IllustID = &illustID
	return p
}

func (p *GetIllustCommentsParams) SetOffset(offset int) *GetIllustCommentsParams {
	p.Offset = &offset
	return p
}

func (p *GetIllustCommentsParams) SetIncludeTotalComments(include bool) *GetIllustCommentsParams {
	p.IncludeTotalComments = &include
	return p
}

func (p *GetIllustCommentsParams) Validate() error {
	err := &ErrInvalidParams{}

	if p.IllustID == nil {
		err.Add(ErrInvalidParam{"IllustID", "missing required field"})
	}

	if err.Len() > 0 {
		return err
	}

	return nil
}

func (p *GetIllustCommentsParams) buildQuery() url.Values {
	v := url.Values{}

	v.Set("illust_id", strconv.Itoa(*p.IllustID))

	if p.Offset != nil {
		v.Set("offset", strconv.Itoa(*p.Offset))
	}

	if p.IncludeTotalComments != nil {
		v.Set("include_total_comments", formatBool(*p.IncludeTotalComments))
	} else {
		v.Set("include_total_comments", formatBool(false))
	}

	return v
}

type GetIllustCommentsResult struct {
	Comments      []Comment `json:"comments"`
	NextURL       string    `json:"next_url"`
	TotalComments int       `json:"total_comments"`
}

func (r *GetIllustCommentsResult) NextOffset() (int, bool) {
	return NextPageInt(r.NextURL, "offset")
}

// GetIllustComments fetches the comments of an illustration, at most 30
// per call. TotalComments is only populated when the params asked for
// it, and is not a reliable page-walk terminator; use NextOffset.
func (c *Client) GetIllustComments(ctx context.Context, params *GetIllustCommentsParams) (*GetIllustCommentsResult, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}

	if params == nil {
		params = NewGetIllustCommentsParams()
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL()+"/v1/illust/comments", nil)
	if err != nil {
		return nil, err
	}

	var result GetIllustCommentsResult
	if err := c.requestJSON(req, params.buildQuery(), &result); err != nil {
		return nil, err
	}

	return &result, nil
}

type GetRelatedIllustsParams struct {
	IllustID *int
	Offset   *int
}

func NewGetRelatedIllustsParams() *GetRelatedIllustsParams {
	return &GetRelatedIllustsParams{}
}

func (p *GetRelatedIllustsParams) SetIllustID(illustID int) *GetRelatedIllustsParams {
	p.IllustID = &illustID
	return p
}

func (p *GetRelatedIllustsParams) SetOffset(offset int) *GetRelatedIllustsParams {
	p.Offset = &offset
	return p
}

func (p *GetRelatedIllustsParams) Validate() error {
	err := &ErrInvalidParams{}

	if p.IllustID == nil {
		err.Add(ErrInvalidParam{"IllustID", "missing required field"})
	}

	if err.Len() > 0 {
		return err
	}

	return nil
}

func (p *GetRelatedIllustsParams) buildQuery() url.Values {
	v := url.Values{}

	v.Set("illust_id", strconv.Itoa(*p.IllustID))

	if p.Offset != nil {
		v.Set("offset", strconv.Itoa(*p.Offset))
	}

	return v
}

type GetRelatedIllustsResult struct {
	Illusts []Illust `json:"illusts"`
	NextURL string   `json:"next_url"`
}

func (r *GetRelatedIllustsResult) NextOffset() (int, bool) {
	return NextPageInt(r.NextURL, "offset")
}

// GetRelatedIllusts fetches works related to the given illustration.
func (c *Client) GetRelatedIllusts(ctx context.Context, params *GetRelatedIllustsParams) (*GetRelatedIllustsResult, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}

	if params == nil {
		params = NewGetRelatedIllustsParams()
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL()+"/v2/illust/related", nil)
	if err != nil {
		return nil, err
	}

	var result GetRelatedIllustsResult
	if err := c.requestJSON(req, params.buildQuery(), &result); err != nil {
		return nil, err
	}

	return &result, nil
}

type GetFollowIllustsParams struct {
	Visibility *Visibility
	Offset     *int
}

func NewGetFollowIllustsParams() *GetFollowIllustsParams {
	return &GetFollowIllustsParams{}
}

func (p *GetFollowIllustsParams) SetVisibility(visibility Visibility) *GetFollowIllustsParams {
	p.Visibility = &visibility
	return p
}

func (p *GetFollowIllustsParams) SetOffset(offset int) *GetFollowIllustsParams {
	p.Offset = &offset
	return p
}

func (p *GetFollowIllustsParams) buildQuery() url.Values {
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

type GetFollowIllustsResult struct {
	Illusts []Illust `json:"illusts"`
	NextURL string   `json:"next_url"`
}

func (r *GetFollowIllustsResult) NextOffset() (int, bool) {
	return NextPageInt(r.NextURL, "offset")
}

// GetFollowIllusts fetches new works from followed artists. A nil
// params value requests the publicly followed artists.
func (c *Client) GetFollowIllusts(ctx context.Context, params *GetFollowIllustsParams) (*GetFollowIllustsResult, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}

	if params == nil {
		params = NewGetFollowIllustsParams()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL()+"/v2/illust/follow", nil)
	if err != nil {
		return nil, err
	}

	var result GetFollowIllustsResult
	if err := c.requestJSON(req, params.buildQuery(), &result); err != nil {
		return nil, err
	}

	return &result, nil
}

type GetRecommendedIllustsParams struct {
	ContentType                  *ContentType
	IncludeRankingIllusts        *bool
	IncludeRankingLabel          *bool
	MaxBookmarkIDForRecommend    *int
	MinBookmarkIDForRecentIllust *int
	Offset                       *int
	BookmarkIllustIDs            []int
}

func NewGetRecommendedIllustsParams() *GetRecommendedIllustsParams {
	return &GetRecommendedIllustsParams{}
}

func (p *GetRecommendedIllustsParams) SetContentType(t ContentType) *GetRecommendedIllustsParams {
	p.ContentType = &t
	return p
}

func (p *GetRecommendedIllustsParams) SetIncludeRankingIllusts(include bool) *GetRecommendedIllustsParams {
	p.IncludeRankingIllusts = &include
	return p
}

func (p *GetRecommendedIllustsParams) SetIncludeRankingLabel(include bool) *GetRecommendedIllustsParams {
	p.IncludeRankingLabel = &include
	return p
}

func (p *GetRecommendedIllustsParams) SetMaxBookmarkIDForRecommend(id int) *GetRecommendedIllustsParams {
	p.MaxBookmarkIDForRecommend = &id
	return p
}

func (p *GetRecommendedIllustsParams) SetMinBookmarkIDForRecentIllust(id int) *GetRecommendedIllustsParams {
	p.MinBookmarkIDForRecentIllust = &id
	return p
}

func (p *GetRecommendedIllustsParams) SetOffset(offset int) *GetRecommendedIllustsParams {
	p.Offset = &offset
	return p
}

func (p *GetRecommendedIllustsParams) SetBookmarkIllustIDs(ids []int) *GetRecommendedIllustsParams {
	p.BookmarkIllustIDs = ids
	return p
}

func (p *GetRecommendedIllustsParams) buildQuery() url.Values {
	v := url.Values{}

	if p.ContentType != nil {
		v.Set("content_type", string(*p.ContentType))
	} else {
		v.Set("content_type", string(ContentTypeIllust))
	}

	if p.IncludeRankingIllusts != nil {
		v.Set("include_ranking_illusts", formatBool(*p.IncludeRankingIllusts))
	} else {
		v.Set("include_ranking_illusts", formatBool(false))
	}

	if p.IncludeRankingLabel != nil {
		v.Set("include_ranking_label", formatBool(*p.IncludeRankingLabel))
	} else {
		v.Set("include_ranking_label", formatBool(true))
	}

	if p.MaxBookmarkIDForRecommend != nil {
		v.Set("max_bookmark_id_for_recommend", strconv.Itoa(*p.MaxBookmarkIDForRecommend))
	}

	if p.MinBookmarkIDForRecentIllust != nil {
		v.Set("min_bookmark_id_for_recent_illust", strconv.Itoa(*p.MinBookmarkIDForRecentIllust))
	}

	if p.Offset != nil {
		v.Set("offset", strconv.Itoa(*p.Offset))
	}

	if len(p.BookmarkIllustIDs) > 0 {
		ids := make([]string, len(p.BookmarkIllustIDs))
		for i, id := range p.BookmarkIllustIDs {
			ids[i] = strconv.Itoa(id)
		}
		v.Set("bookmark_illust_ids", strings.Join(ids, ","))
	}

	return v
}

type GetRecommendedIllustsResult struct {
	Illusts        []Illust `json:"illusts"`
	RankingIllusts []Illust `json:"ranking_illusts"`
	ContestExists  bool     `json:"contest_exists"`
	NextURL        string   `json:"next_url"`
}

// The recommendation cursor is a compound key set; each part of it has
// its own accessor.

func (r *GetRecommendedIllustsResult) NextMinBookmarkIDForRecentIllust() (int, bool) {
	return NextPageInt(r.NextURL, "min_bookmark_id_for_recent_illust")
}

func (r *GetRecommendedIllustsResult) NextMaxBookmarkIDForRecommend() (int, bool) {
	return NextPageInt(r.NextURL, "max_bookmark_id_for_recommend")
}

func (r *GetRecommendedIllustsResult) NextOffset() (int, bool) {
	return NextPageInt(r.NextURL, "offset")
}

// GetRecommendedIllusts fetches personalized recommendations.
// RankingIllusts stays empty unless the params asked for the ranking
// list. A nil params value requests the defaults.
func (c *Client) GetRecommendedIllusts(ctx context.Context, params *GetRecommendedIllustsParams) (*GetRecommendedIllustsResult, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}

	if params == nil {
		params = NewGetRecommendedIllustsParams()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL()+"/v1/illust/recommended", nil)
	if err != nil {
		return nil, err
	}

	var result GetRecommendedIllustsResult
	if err := c.requestJSON(req, params.buildQuery(), &result); err != nil {
		return nil, err
	}

	return &result, nil
}

type GetIllustRankingParams struct {
	Mode   *RankingMode
	Date   *string
	Offset *int
}

func NewGetIllustRankingParams() *GetIllustRankingParams {
	return &GetIllustRankingParams{}
}

func (p *GetIllustRankingParams) SetMode(mode RankingMode) *GetIllustRankingParams {
	p.Mode = &mode
	return p
}

// SetDate selects the ranking day, in "2006-01-02" form.
func (p *GetIllustRankingParams) SetDate(date string) *GetIllustRankingParams {
	p.Date = &date
	return p
}

func (p *GetIllustRankingParams) SetOffset(offset int) *GetIllustRankingParams {
	p.Offset = &offset
	return p
}

func (p *GetIllustRankingParams) buildQuery() url.Values {
	v := url.Values{}

	if p.Mode != nil {
		v.Set("mode", string(*p.Mode))
	} else {
		v.Set("mode", string(RankingModeDay))
	}

	if p.Date != nil {
		v.Set("date", *p.Date)
	}

	if p.Offset != nil {
		v.Set("offset", strconv.Itoa(*p.Offset))
	}

	v.Set("filter", apiFilter)

	return v
}

type GetIllustRankingResult struct {
	Illusts []Illust `json:"illusts"`
	NextURL string   `json:"next_url"`
}

func (r *GetIllustRankingResult) NextOffset() (int, bool) {
	return NextPageInt(r.NextURL, "offset")
}

// GetIllustRanking fetches a ranking list; daily mode when params is
// nil or Mode unset.
func (c *Client) GetIllustRanking(ctx context.Context, params *GetIllustRankingParams) (*GetIllustRankingResult, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}

	if params == nil {
		params = NewGetIllustRankingParams()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL()+"/v1/illust/ranking", nil)
	if err != nil {
		return nil, err
	}

	var result GetIllustRankingResult
	if err := c.requestJSON(req, params.buildQuery(), &result); err != nil {
		return nil, err
	}

	return &result, nil
}

type GetTrendingTagsResult struct {
	TrendTags []TrendTag `json:"trend_tags"`
}

// GetTrendingTags fetches the trending tags, each paired with one
// representative illustration.
func (c *Client) GetTrendingTags(ctx context.Context) (*GetTrendingTagsResult, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL()+"/v1/trending-tags/illust", nil)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("filter", apiFilter)

	var result GetTrendingTagsResult
	if err := c.requestJSON(req, query, &result); err != nil {
		return nil, err
	}

	return &result, nil
}
