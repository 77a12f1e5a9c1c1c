// Package grab implements the bookmark mirror pass run by pixiv-grab.
package grab

import (
	"bytes"
	"context"
	"net/url"
	"path"
	"strconv"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	pixiv "github.com/nanakusa/go-pixiv"
	"github.com/nanakusa/go-pixiv/internal/sink"
	"github.com/nanakusa/go-pixiv/internal/store"
)

type Job struct {
	Client *pixiv.Client
	Store  *store.Store
	Sink   sink.Sink
}

// Run walks the configured user's bookmarks from newest to oldest and
// mirrors every work not yet in the store. Individual download
// failures are logged and skipped; listing failures abort the pass.
func (j *Job) Run(ctx context.Context) error {
	userID := viper.GetInt("grab.user_id")
	visibility := pixiv.VisibilityPublic
	if v := viper.GetString("grab.visibility"); v != "" {
		visibility = pixiv.Visibility(v)
	}

	run := log.WithFields(log.Fields{
		"run":     uuid.NewString(),
		"user_id": userID,
	})
	run.Info("starting bookmark pass")

	var maxBookmarkID *int
	works, pages := 0, 0

	for {
		params := pixiv.NewGetUserBookmarksParams().
			SetUserID(userID).
			SetVisibility(visibility)
		if maxBookmarkID != nil {
			params.SetMaxBookmarkID(*maxBookmarkID)
		}

		res, err := j.Client.GetUserBookmarks(ctx, params)
		if err != nil {
			return err
		}

		for i := range res.Illusts {
			il := &res.Illusts[i]

			seen, err := j.Store.Seen(il.ID)
			if err != nil {
				return err
			}
			if seen {
				continue
			}

			n, err := j.mirror(ctx, il)
			if err != nil {
				run.WithFields(log.Fields{
					"illust_id": il.ID,
					"error":     err,
				}).Error("failed to mirror work")
				continue
			}

			if err := j.Store.MarkSeen(il.ID); err != nil {
				return err
			}
			works++
			pages += n
		}

		next, ok := res.NextMaxBookmarkID()
		if !ok {
			break
		}
		maxBookmarkID = &next
	}

	run.WithFields(log.Fields{
		"works": works,
		"pages": pages,
	}).Info("finished bookmark pass")

	return nil
}

// mirror downloads every page of one work into the sink and returns
// the page count.
func (j *Job) mirror(ctx context.Context, il *pixiv.Illust) (int, error) {
	pageURLs := il.PageURLs()
	for i, pageURL := range pageURLs {
		var buf bytes.Buffer
		if err := j.Client.Download(ctx, pageURL, &buf); err != nil {
			return i, err
		}

		key := objectKey(il.ID, pageURL)
		if err := j.Sink.Put(ctx, key, &buf); err != nil {
			return i, err
		}

		log.WithFields(log.Fields{
			"illust_id": il.ID,
			"key":       key,
		}).Debug("mirrored page")
	}

	return len(pageURLs), nil
}

func objectKey(illustID int, pageURL string) string {
	name := "image"
	if u, err := url.Parse(pageURL); err == nil {
		name = path.Base(u.Path)
	}
	return path.Join(strconv.Itoa(illustID), name)
}
