// Command pixiv-grab mirrors a user's bookmarked illustrations to a
// local directory or an S3 bucket, remembering finished works in a
// bolt file so repeat runs only fetch what is new.
package main

import (
	"context"
	"os"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	pixiv "github.com/nanakusa/go-pixiv"
	"github.com/nanakusa/go-pixiv/internal/grab"
	"github.com/nanakusa/go-pixiv/internal/sink"
	"github.com/nanakusa/go-pixiv/internal/store"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigName("config")
	viper.AddConfigPath(".")
	viper.SetDefault("grab.output", "output")
	viper.SetDefault("grab.visibility", "public")
	viper.SetDefault("db.path", "pixiv-grab.db")
	viper.SetDefault("log.level", "info")

	if err := viper.ReadInConfig(); err != nil {
		log.WithFields(log.Fields{
			"error": err,
		}).Panic("failed to read config file")
	}

	level, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
}

func main() {
	ctx := context.Background()

	st, err := store.Open(viper.GetString("db.path"))
	if err != nil {
		log.WithFields(log.Fields{
			"error": err,
		}).Panic("failed to open bolt db")
	}
	defer st.Close()

	client := &pixiv.Client{}
	if lang := viper.GetString("grab.language"); lang != "" {
		client.Language = lang
	}

	if err := client.Authenticate(ctx, viper.GetString("auth.refresh_token")); err != nil {
		log.WithFields(log.Fields{
			"error": err,
		}).Panic("failed to authenticate")
	}

	job := &grab.Job{
		Client: client,
		Store:  st,
		Sink:   buildSink(ctx),
	}

	spec := viper.GetString("grab.cron")
	if spec == "" {
		if err := job.Run(ctx); err != nil {
			log.WithFields(log.Fields{
				"error": err,
			}).Error("bookmark pass failed")
			// os.Exit skips deferred calls; release the bolt file
			// here.
			st.Close()
			os.Exit(1)
		}
		return
	}

	c := cron.New()
	_, err = c.AddFunc(spec, func() {
		if err := job.Run(ctx); err != nil {
			log.WithFields(log.Fields{
				"error": err,
			}).Error("bookmark pass failed")
		}
	})
	if err != nil {
		log.WithFields(log.Fields{
			"error": err,
			"cron":  spec,
		}).Panic("failed to schedule job")
	}

	log.WithFields(log.Fields{
		"cron": spec,
	}).Info("scheduler running")
	c.Start()
	select {}
}

func buildSink(ctx context.Context) sink.Sink {
	if viper.GetString("s3.bucket") == "" {
		return &sink.Local{Root: viper.GetString("grab.output")}
	}

	s3sink, err := sink.NewS3(ctx)
	if err != nil {
		log.WithFields(log.Fields{
			"error": err,
		}).Panic("failed to build s3 sink")
	}
	return s3sink
}
