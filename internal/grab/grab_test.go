package grab

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/spf13/viper"

	pixiv "github.com/nanakusa/go-pixiv"
	"github.com/nanakusa/go-pixiv/internal/sink"
	"github.com/nanakusa/go-pixiv/internal/store"
)

// testServer serves a token grant, two pages of bookmarks and the image
// bytes they point at, counting image downloads.
type testServer struct {
	mu        sync.Mutex
	downloads int

	srv *httptest.Server
}

func newTestServer(t *testing.T) *testServer {
	ts := &testServer{}

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/token", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"response": {
			"access_token": "grabbed-access",
			"refresh_token": "grabbed-refresh",
			"expires_in": 3600,
			"user": {"id": "12345678", "account": "nanakusa"}
		}}`)
	})
	mux.HandleFunc("/v1/user/bookmarks/illust", func(w http.ResponseWriter, r *http.Request) {
		base := "http://" + r.Host
		if r.URL.Query().Get("max_bookmark_id") == "" {
			fmt.Fprintf(w, `{"illusts": [
				{"id": 64936066, "page_count": 1,
				 "meta_single_page": {"original_image_url": "%s/img/64936066_p0.jpg"},
				 "meta_pages": []},
				{"id": 64914849, "page_count": 2,
				 "meta_single_page": {},
				 "meta_pages": [
					{"image_urls": {"original": "%s/img/64914849_p0.png"}},
					{"image_urls": {"original": "%s/img/64914849_p1.png"}}
				 ]}
			], "next_url": "%s/v1/user/bookmarks/illust?user_id=12345678&restrict=public&max_bookmark_id=6268205545"}`,
				base, base, base, base)
			return
		}
		fmt.Fprint(w, `{"illusts": [], "next_url": ""}`)
	})
	mux.HandleFunc("/img/", func(w http.ResponseWriter, r *http.Request) {
		ts.mu.Lock()
		ts.downloads++
		ts.mu.Unlock()
		fmt.Fprint(w, "bytes for ", r.URL.Path)
	})

	ts.srv = httptest.NewServer(mux)
	t.Cleanup(ts.srv.Close)
	return ts
}

func (ts *testServer) downloadCount() int {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.downloads
}

func TestJob_Run(t *testing.T) {
	ts := newTestServer(t)

	viper.Set("grab.user_id", 12345678)
	viper.Set("grab.visibility", "public")
	defer viper.Reset()

	cli := &pixiv.Client{BaseURL: ts.srv.URL, AuthURL: ts.srv.URL}
	if err := cli.Authenticate(context.Background(), "seed-refresh"); err != nil {
		t.Fatal(err)
	}

	st, err := store.Open(filepath.Join(t.TempDir(), "works.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()

	root := t.TempDir()
	job := &Job{Client: cli, Store: st, Sink: &sink.Local{Root: root}}

	if err := job.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	// One single-page work and one two-page work.
	if g, e := ts.downloadCount(), 3; g != e {
		t.Errorf("got %d downloads, want %d", g, e)
	}

	for _, rel := range []string{
		"64936066/64936066_p0.jpg",
		"64914849/64914849_p0.png",
		"64914849/64914849_p1.png",
	} {
		if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel))); err != nil {
			t.Errorf("missing mirrored file %s: %v", rel, err)
		}
	}

	// A second pass finds everything in the store and downloads nothing.
	if err := job.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if g, e := ts.downloadCount(), 3; g != e {
		t.Errorf("got %d downloads after the second pass, want %d", g, e)
	}
}
