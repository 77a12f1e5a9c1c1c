package pixiv

import "encoding/json"

// Illust is a single artwork as every listing and detail endpoint
// returns it. Image URL maps are keyed by size name (square_medium,
// medium, large, original).
type Illust struct {
	ID             int               `json:"id"`
	Title          string            `json:"title"`
	Type           ContentType       `json:"type"`
	ImageURLs      map[string]string `json:"image_urls"`
	Caption        string            `json:"caption"`
	Restrict       int               `json:"restrict"`
	User           User              `json:"user"`
	Tags           []Tag             `json:"tags"`
	Tools          []string          `json:"tools"`
	CreateDate     string            `json:"create_date"`
	PageCount      int               `json:"page_count"`
	Width          int               `json:"width"`
	Height         int               `json:"height"`
	SanityLevel    int               `json:"sanity_level"`
	XRestrict      int               `json:"x_restrict"`
	Series         Series            `json:"series"`
	MetaSinglePage map[string]string `json:"meta_single_page"`
	MetaPages      []MetaPage        `json:"meta_pages"`
	TotalView      int               `json:"total_view"`
	TotalBookmarks int               `json:"total_bookmarks"`
	IsBookmarked   bool              `json:"is_bookmarked"`
	Visible        bool              `json:"visible"`
	IsMuted        bool              `json:"is_muted"`
}

// PageURLs lists one source URL per page: the single-page original (or
// large rendition when the original is withheld) for one-page works,
// the per-page originals otherwise.
func (i *Illust) PageURLs() []string {
	if i.PageCount <= 1 && len(i.MetaPages) == 0 {
		if u := i.MetaSinglePage["original_image_url"]; u != "" {
			return []string{u}
		}
		if u := i.ImageURLs["large"]; u != "" {
			return []string{u}
		}
		return nil
	}

	urls := make([]string, 0, len(i.MetaPages))
	for _, p := range i.MetaPages {
		if u := p.ImageURLs["original"]; u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}

type Tag struct {
	Name           string `json:"name"`
	TranslatedName string `json:"translated_name"`
}

type Series struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

type MetaPage struct {
	ImageURLs map[string]string `json:"image_urls"`
}

type User struct {
	ID               int               `json:"id"`
	Name             string            `json:"name"`
	Account          string            `json:"account"`
	ProfileImageURLs map[string]string `json:"profile_image_urls"`
	Comment          string            `json:"comment"`
	IsFollowed       bool              `json:"is_followed"`
}

// Comment is one comment on an illustration. ParentComment is non-nil
// with a zero ID when the API sends its usual empty placeholder.
type Comment struct {
	ID            int      `json:"id"`
	Comment       string   `json:"comment"`
	Date          string   `json:"date"`
	User          User     `json:"user"`
	ParentComment *Comment `json:"parent_comment"`
}

// HasParent reports whether the comment is a reply.
func (c *Comment) HasParent() bool {
	return c.ParentComment != nil && c.ParentComment.ID != 0
}

// UserPreview pairs a user with a sample of their recent works, as the
// following/follower/my-pixiv listings return it. Novels keep their
// raw form; this client models illustrations only.
type UserPreview struct {
	User    User            `json:"user"`
	Illusts []Illust        `json:"illusts"`
	Novels  json.RawMessage `json:"novels"`
	IsMuted bool            `json:"is_muted"`
}

// UserDetail is the full profile of /v1/user/detail. Workspace is an
// open-ended string map in the API and stays one here.
type UserDetail struct {
	User             User              `json:"user"`
	Profile          UserProfile       `json:"profile"`
	ProfilePublicity ProfilePublicity  `json:"profile_publicity"`
	Workspace        map[string]string `json:"workspace"`
}

type UserProfile struct {
	Webpage                    string `json:"webpage"`
	Gender                     string `json:"gender"`
	Birth                      string `json:"birth"`
	Region                     string `json:"region"`
	Job                        string `json:"job"`
	TotalFollowUsers           int    `json:"total_follow_users"`
	TotalMyPixivUsers          int    `json:"total_mypixiv_users"`
	TotalIllusts               int    `json:"total_illusts"`
	TotalManga                 int    `json:"total_manga"`
	TotalNovels                int    `json:"total_novels"`
	TotalIllustBookmarksPublic int    `json:"total_illust_bookmarks_public"`
	BackgroundImageURL         string `json:"background_image_url"`
	TwitterAccount             string `json:"twitter_account"`
	TwitterURL                 string `json:"twitter_url"`
	IsPremium                  bool   `json:"is_premium"`
}

type ProfilePublicity struct {
	Gender    string `json:"gender"`
	Region    string `json:"region"`
	BirthDay  string `json:"birth_day"`
	BirthYear string `json:"birth_year"`
	Job       string `json:"job"`
	Pawoo     bool   `json:"pawoo"`
}

// BookmarkTag is a tag attached to a bookmark, or an entry of the
// user's bookmark-tag listing (where Count is populated).
type BookmarkTag struct {
	Name         string `json:"name"`
	IsRegistered bool   `json:"is_registered"`
	Count        int    `json:"count"`
}

// BookmarkDetail describes the caller's bookmark on one illustration.
type BookmarkDetail struct {
	IsBookmarked bool          `json:"is_bookmarked"`
	Restrict     Visibility    `json:"restrict"`
	Tags         []BookmarkTag `json:"tags"`
}

// TrendTag is a trending tag paired with one representative work.
type TrendTag struct {
	Tag            string `json:"tag"`
	TranslatedName string `json:"translated_name"`
	Illust         Illust `json:"illust"`
}
