package main

import (
	"github.com/rbtvdl/rbtvdl/internal/config"
	"github.com/rbtvdl/rbtvdl/internal/downloader"
	"github.com/rbtvdl/rbtvdl/internal/query"
	"github.com/spf13/cobra"
)

func init() {
	var (
		flags        selectionFlags
		basepath     string
		dirTemplate  string
		fileTemplate string
		format       string
		missingValue string
		recordPath   string
		retries      int
		cookies      string
	)

	downloadCmd := &cobra.Command{
		Use:   "download",
		Short: "Download the selected episodes via yt-dlp",
		Long: `Download every episode of the selection that is not yet recorded as
done. Each youtube part is fetched separately; failed parts are logged
and the run continues. Blog selections are exported as JSON instead of
video files.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			fl := cmd.Flags()
			if fl.Changed("basepath") {
				cfg.Download.Basepath = basepath
			}
			if fl.Changed("outdirtpl") {
				cfg.Download.DirTemplate = dirTemplate
			}
			if fl.Changed("outtmpl") {
				cfg.Download.FileTemplate = fileTemplate
			}
			if fl.Changed("format") {
				cfg.Download.Format = format
			}
			if fl.Changed("missing-value") {
				cfg.Download.MissingValue = missingValue
			}
			if fl.Changed("record-path") {
				cfg.Records.Path = recordPath
			}
			if fl.Changed("retries") {
				cfg.Download.Retries = retries
			}
			if fl.Changed("cookies") {
				cfg.Download.Cookies = cookies
			}

			return runDownload(cmd, cfg, &flags)
		},
	}

	flags.register(downloadCmd, false)
	fl := downloadCmd.Flags()
	fl.StringVar(&basepath, "basepath", "", "Directory downloads go to")
	fl.StringVar(&dirTemplate, "outdirtpl", "", "Directory template below basepath")
	fl.StringVar(&fileTemplate, "outtmpl", "", "yt-dlp output template")
	fl.StringVar(&format, "format", "", "yt-dlp format selection")
	fl.StringVar(&missingValue, "missing-value", "", "Placeholder for missing template values")
	fl.StringVar(&recordPath, "record-path", "", "Record store path (.db/.sqlite or plaintext)")
	fl.IntVar(&retries, "retries", 0, "yt-dlp retry count")
	fl.StringVar(&cookies, "cookies", "", "Cookie file passed to yt-dlp")

	rootCmd.AddCommand(downloadCmd)
}

func runDownload(cmd *cobra.Command, cfg *config.Config, flags *selectionFlags) error {
	mod, err := flags.modifiers()
	if err != nil {
		return err
	}
	sel := flags.selection()

	log := newLogger(cfg)
	src, release, err := openSource(cfg, log)
	if err != nil {
		return err
	}
	defer release()

	ctx := cmd.Context()
	resolver := query.NewResolver(src, cfg.Download.MissingValue)

	// Blog posts have no video: a blog selection exports JSON.
	if len(sel.BlogIDs) > 0 || sel.AllBlog {
		posts, err := resolver.Posts(ctx, sel, mod)
		if err != nil {
			return err
		}
		if sel.AllBlog {
			return downloader.ExportPostsLines(cfg.Download.Basepath, posts)
		}
		return downloader.ExportPosts(cfg.Download.Basepath, posts)
	}

	episodes, err := resolver.Episodes(ctx, sel, mod)
	if err != nil {
		return err
	}
	if len(episodes) == 0 {
		log.Info("nothing to download")
		return nil
	}

	store, err := openRecords(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	d := downloader.New(src, store, &downloader.YTDLP{
		Format:  cfg.Download.Format,
		Retries: cfg.Download.Retries,
		Cookies: cfg.Download.Cookies,
	}, downloader.Options{
		Basepath:     cfg.Download.Basepath,
		DirTemplate:  cfg.Download.DirTemplate,
		FileTemplate: cfg.Download.FileTemplate,
		MissingValue: cfg.Download.MissingValue,
	}, log)

	return d.Episodes(ctx, episodes)
}
