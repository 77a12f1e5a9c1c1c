package pixiv

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"testing"
)

func TestClient_SearchIllusts(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if g, e := r.URL.Path, "/v1/search/illust"; g != e {
			t.Errorf("got URL path %q, want %q", g, e)
		}

		if g, e := r.Method, http.MethodGet; g != e {
			t.Errorf("got HTTP method %q, want %q", g, e)
		}

		// Unset optionals (duration, offset) must not appear at all.
		expectedQuery := url.Values{
			"word":          []string{"風景"},
			"search_target": []string{"partial_match_for_tags"},
			"sort":          []string{"date_desc"},
			"filter":        []string{"for_ios"},
		}
		if g, e := r.URL.Query(), expectedQuery; !reflect.DeepEqual(g, e) {
			t.Errorf("got query values %#v, want %#v", g, e)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write(fixture("testdata/search_illust.json"))
	}))
	defer ts.Close()

	cli := &Client{BaseURL: ts.URL}
	cli.accessToken = "token"

	res, err := cli.SearchIllusts(context.Background(), NewSearchIllustsParams().SetWord("風景"))
	if err != nil {
		t.Fatal(err)
	}

	if g, e := len(res.Illusts), 2; g != e {
		t.Fatalf("got Illusts count %d, want %d", g, e)
	}

	expectedIllust0 := Illust{
		ID:    64936066,
		Title: "初夏の街",
		Type:  ContentTypeIllust,
		ImageURLs: map[string]string{
			"square_medium": "https://i.pximg.net/c/360x360_70/img-master/img/2017/09/13/12/30/00/64936066_p0_square1200.jpg",
			"medium":        "https://i.pximg.net/c/540x540_70/img-master/img/2017/09/13/12/30/00/64936066_p0_master1200.jpg",
			"large":         "https://i.pximg.net/c/600x1200_90/img-master/img/2017/09/13/12/30/00/64936066_p0_master1200.jpg",
		},
		Caption:  "梅雨入り前に。",
		Restrict: 0,
		User: User{
			ID:      6996493,
			Name:    "雨宮ひかげ",
			Account: "amamiya_hikage",
			ProfileImageURLs: map[string]string{
				"medium": "https://i.pximg.net/user-profile/img/2017/01/27/04/05/23/12061814_44196f064c0064fe89fdb6e719df20fe_170.png",
			},
			IsFollowed: false,
		},
		Tags: []Tag{
			{Name: "風景", TranslatedName: "scenery"},
			{Name: "オリジナル", TranslatedName: "original"},
		},
		Tools:       []string{"CLIP STUDIO PAINT"},
		CreateDate:  "2017-09-13T12:30:00+09:00",
		PageCount:   1,
		Width:       650,
		Height:      936,
		SanityLevel: 2,
		Series:      Series{ID: 0, Title: ""},
		MetaSinglePage: map[string]string{
			"original_image_url": "https://i.pximg.net/img-original/img/2017/09/13/12/30/00/64936066_p0.png",
		},
		MetaPages:      []MetaPage{},
		TotalView:      59452,
		TotalBookmarks: 13233,
		IsBookmarked:   false,
		Visible:        true,
		IsMuted:        false,
	}
	if g, e := res.Illusts[0], expectedIllust0; !reflect.DeepEqual(g, e) {
		t.Errorf("got Illusts[0] %#v, want %#v", g, e)
	}

	if g, e := res.SearchSpanLimit, 31536000; g != e {
		t.Errorf("got SearchSpanLimit %d, want %d", g, e)
	}

	if offset, ok := res.NextOffset(); !ok || offset != 30 {
		t.Errorf("got NextOffset (%d, %v), want (30, true)", offset, ok)
	}
}

func TestClient_SearchIllusts_Optionals(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if g, e := q.Get("duration"), "within_last_week"; g != e {
			t.Errorf("got duration %q, want %q", g, e)
		}
		if g, e := q.Get("offset"), "60"; g != e {
			t.Errorf("got offset %q, want %q", g, e)
		}
		if g, e := q.Get("sort"), "popular_desc"; g != e {
			t.Errorf("got sort %q, want %q", g, e)
		}
		if g, e := q.Get("search_target"), "exact_match_for_tags"; g != e {
			t.Errorf("got search_target %q, want %q", g, e)
		}
		fmt.Fprint(w, `{"illusts": [], "next_url": "", "search_span_limit": 31536000}`)
	}))
	defer ts.Close()

	cli := &Client{BaseURL: ts.URL}
	cli.accessToken = "token"

	params := NewSearchIllustsParams().
		SetWord("風景").
		SetSearchTarget(SearchTargetExactMatchForTags).
		SetSort(SortPopularDesc).
		SetDuration(DurationWithinLastWeek).
		SetOffset(60)

	res, err := cli.SearchIllusts(context.Background(), params)
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := res.NextOffset(); ok {
		t.Error("got a next offset for the last page, want none")
	}
}

func TestClient_GetIllustComments(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if g, e := r.URL.Path, "/v1/illust/comments"; g != e {
			t.Errorf("got URL path %q, want %q", g, e)
		}

		expectedQuery := url.Values{
			"illust_id":              []string{"64936066"},
			"include_total_comments": []string{"false"},
		}
		if g, e := r.URL.Query(), expectedQuery; !reflect.DeepEqual(g, e) {
			t.Errorf("got query values %#v, want %#v", g, e)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write(fixture("testdata/illust_comments.json"))
	}))
	defer ts.Close()

	cli := &Client{BaseURL: ts.URL}
	cli.accessToken = "token"

	res, err := cli.GetIllustComments(context.Background(), NewGetIllustCommentsParams().SetIllustID(64936066))
	if err != nil {
		t.Fatal(err)
	}

	if g, e := len(res.Comments), 2; g != e {
		t.Fatalf("got Comments count %d, want %d", g, e)
	}

	if res.Comments[0].HasParent() {
		t.Error("Comments[0] has the empty parent placeholder, HasParent should be false")
	}

	if !res.Comments[1].HasParent() {
		t.Error("Comments[1] is a reply, HasParent should be true")
	}
	if g, e := res.Comments[1].ParentComment.ID, 19496267; g != e {
		t.Errorf("got parent comment ID %d, want %d", g, e)
	}

	if g, e := res.TotalComments, 142; g != e {
		t.Errorf("got TotalComments %d, want %d", g, e)
	}

	if offset, ok := res.NextOffset(); !ok || offset != 30 {
		t.Errorf("got NextOffset (%d, %v), want (30, true)", offset, ok)
	}
}

func TestClient_GetRecommendedIllusts(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		expectedQuery := url.Values{
			"content_type":            []string{"illust"},
			"include_ranking_illusts": []string{"true"},
			"include_ranking_label":   []string{"true"},
		}
		if g, e := r.URL.Query(), expectedQuery; !reflect.DeepEqual(g, e) {
			t.Errorf("got query values %#v, want %#v", g, e)
		}

		fmt.Fprint(w, `{
			"contest_exists": false,
			"illusts": [{"id": 1}, {"id": 2}],
			"ranking_illusts": [{"id": 3}],
			"next_url": "https://app-api.pixiv.net/v1/illust/recommended?min_bookmark_id_for_recent_illust=6277740037&max_bookmark_id_for_recommend=6268205545&offset=0"
		}`)
	}))
	defer ts.Close()

	cli := &Client{BaseURL: ts.URL}
	cli.accessToken = "token"

	res, err := cli.GetRecommendedIllusts(context.Background(),
		NewGetRecommendedIllustsParams().SetIncludeRankingIllusts(true))
	if err != nil {
		t.Fatal(err)
	}

	if g, e := len(res.Illusts), 2; g != e {
		t.Errorf("got Illusts count %d, want %d", g, e)
	}
	if g, e := len(res.RankingIllusts), 1; g != e {
		t.Errorf("got RankingIllusts count %d, want %d", g, e)
	}

	if min, ok := res.NextMinBookmarkIDForRecentIllust(); !ok || min != 6277740037 {
		t.Errorf("got min bookmark cursor (%d, %v), want (6277740037, true)", min, ok)
	}
	if max, ok := res.NextMaxBookmarkIDForRecommend(); !ok || max != 6268205545 {
		t.Errorf("got max bookmark cursor (%d, %v), want (6268205545, true)", max, ok)
	}
	if offset, ok := res.NextOffset(); !ok || offset != 0 {
		t.Errorf("got offset cursor (%d, %v), want (0, true)", offset, ok)
	}
}

func TestClient_GetIllustRanking(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		expectedQuery := url.Values{
			"mode":   []string{"week"},
			"date":   []string{"2024-06-01"},
			"filter": []string{"for_ios"},
		}
		if g, e := r.URL.Query(), expectedQuery; !reflect.DeepEqual(g, e) {
			t.Errorf("got query values %#v, want %#v", g, e)
		}

		fmt.Fprint(w, `{"illusts": [{"id": 10}], "next_url": "https://app-api.pixiv.net/v1/illust/ranking?filter=for_ios&mode=week&offset=30"}`)
	}))
	defer ts.Close()

	cli := &Client{BaseURL: ts.URL}
	cli.accessToken = "token"

	params := NewGetIllustRankingParams().SetMode(RankingModeWeek).SetDate("2024-06-01")
	res, err := cli.GetIllustRanking(context.Background(), params)
	if err != nil {
		t.Fatal(err)
	}

	if g, e := len(res.Illusts), 1; g != e {
		t.Errorf("got Illusts count %d, want %d", g, e)
	}

	if offset, ok := res.NextOffset(); !ok || offset != 30 {
		t.Errorf("got NextOffset (%d, %v), want (30, true)", offset, ok)
	}
}

func TestClient_GetFollowIllusts(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if g, e := r.URL.Path, "/v2/illust/follow"; g != e {
			t.Errorf("got URL path %q, want %q", g, e)
		}
		if g, e := r.URL.Query().Get("restrict"), "private"; g != e {
			t.Errorf("got restrict %q, want %q", g, e)
		}
		fmt.Fprint(w, `{"illusts": [], "next_url": ""}`)
	}))
	defer ts.Close()

	cli := &Client{BaseURL: ts.URL}
	cli.accessToken = "token"

	if _, err := cli.GetFollowIllusts(context.Background(), NewGetFollowIllustsParams().SetVisibility(VisibilityPrivate)); err != nil {
		t.Fatal(err)
	}
}

func TestClient_GetTrendingTags(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if g, e := r.URL.Path, "/v1/trending-tags/illust"; g != e {
			t.Errorf("got URL path %q, want %q", g, e)
		}
		if g, e := r.URL.Query().Get("filter"), "for_ios"; g != e {
			t.Errorf("got filter %q, want %q", g, e)
		}

		fmt.Fprint(w, `{"trend_tags": [
			{"tag": "艦これ", "translated_name": "Kancolle", "illust": {"id": 5, "title": "出撃"}}
		]}`)
	}))
	defer ts.Close()

	cli := &Client{BaseURL: ts.URL}
	cli.accessToken = "token"

	res, err := cli.GetTrendingTags(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if g, e := len(res.TrendTags), 1; g != e {
		t.Fatalf("got TrendTags count %d, want %d", g, e)
	}
	if g, e := res.TrendTags[0].Tag, "艦これ"; g != e {
		t.Errorf("got tag %q, want %q", g, e)
	}
	if g, e := res.TrendTags[0].Illust.ID, 5; g != e {
		t.Errorf("got representative illust ID %d, want %d", g, e)
	}
}

func TestIllust_PageURLs(t *testing.T) {
	single := Illust{
		PageCount: 1,
		ImageURLs: map[string]string{"large": "https://example.com/large.jpg"},
		MetaSinglePage: map[string]string{
			"original_image_url": "https://example.com/original.png",
		},
	}
	if g, e := single.PageURLs(), []string{"https://example.com/original.png"}; !reflect.DeepEqual(g, e) {
		t.Errorf("got %v, want %v", g, e)
	}

	noOriginal := Illust{
		PageCount:      1,
		ImageURLs:      map[string]string{"large": "https://example.com/large.jpg"},
		MetaSinglePage: map[string]string{},
	}
	if g, e := noOriginal.PageURLs(), []string{"https://example.com/large.jpg"}; !reflect.DeepEqual(g, e) {
		t.Errorf("got %v, want %v", g, e)
	}

	multi := Illust{
		PageCount: 2,
		MetaPages: []MetaPage{
			{ImageURLs: map[string]string{"original": "https://example.com/p0.jpg"}},
			{ImageURLs: map[string]string{"original": "https://example.com/p1.jpg"}},
		},
	}
	if g, e := multi.PageURLs(), []string{"https://example.com/p0.jpg", "https://example.com/p1.jpg"}; !reflect.DeepEqual(g, e) {
		t.Errorf("got %v, want %v", g, e)
	}
}
