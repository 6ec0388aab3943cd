// Package downloader turns resolved episodes into files on disk. The
// actual video transfer is delegated to yt-dlp; this package decides
// what to fetch, where to put it and what to skip.
package downloader

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lrstanley/go-ytdlp"
	"github.com/rbtvdl/rbtvdl/internal/catalog"
	"github.com/rbtvdl/rbtvdl/internal/records"
)

// watchURLPrefix builds a youtube watch URL from a video token.
const watchURLPrefix = "https://www.youtube.com/watch?v="

// Runner executes a single video download and reports the path of the
// file it wrote. The production implementation shells out to yt-dlp,
// whose output template decides the final filename.
type Runner interface {
	Download(ctx context.Context, url, output string) (string, error)
}

// YTDLP is the yt-dlp backed Runner. Retries and rate limiting are
// yt-dlp's business, not ours.
type YTDLP struct {
	Format  string
	Retries int
	Cookies string
}

func (y *YTDLP) Download(ctx context.Context, url, output string) (string, error) {
	// --print forces simulation unless NoSimulate is set.
	dl := ytdlp.New().Output(output).Print("after_move:filepath").NoSimulate()
	if y.Format != "" {
		dl = dl.Format(y.Format)
	}
	if y.Retries > 0 {
		dl = dl.Retries(strconv.Itoa(y.Retries))
	}
	if y.Cookies != "" {
		dl = dl.Cookies(y.Cookies)
	}
	res, err := dl.Run(ctx, url)
	if err != nil {
		return "", fmt.Errorf("yt-dlp: %w", err)
	}
	return downloadedPath(res.Stdout), nil
}

// downloadedPath extracts the printed filepath from yt-dlp's stdout,
// the last non-empty line.
func downloadedPath(stdout string) string {
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}

// Options configure a Downloader.
type Options struct {
	Basepath     string
	DirTemplate  string // placeholder syntax, relative to Basepath
	FileTemplate string // placeholder syntax; yt-dlp %(...)s passes through
	MissingValue string
}

// Downloader walks an episode list sequentially, skips recorded work
// and records every finished part.
type Downloader struct {
	src    catalog.Source
	store  records.Store
	runner Runner
	log    *slog.Logger

	basepath string
	dirTpl   *Template
	fileTpl  *Template
	missing  string
}

// New creates a Downloader. Empty template options fall back to the
// defaults.
func New(src catalog.Source, store records.Store, runner Runner, opts Options, log *slog.Logger) *Downloader {
	if opts.DirTemplate == "" {
		opts.DirTemplate = DefaultDirTemplate
	}
	if opts.FileTemplate == "" {
		opts.FileTemplate = DefaultFileTemplate
	}
	if opts.MissingValue == "" {
		opts.MissingValue = "-"
	}
	if log == nil {
		log = slog.Default()
	}
	return &Downloader{
		src:      src,
		store:    store,
		runner:   runner,
		log:      log,
		basepath: opts.Basepath,
		dirTpl:   NewTemplate(opts.DirTemplate, opts.MissingValue),
		fileTpl:  NewTemplate(opts.FileTemplate, opts.MissingValue),
		missing:  opts.MissingValue,
	}
}

// Episodes downloads the given episodes one by one. Individual
// failures are logged and skipped; ErrAllFailed is returned when
// nothing succeeded.
func (d *Downloader) Episodes(ctx context.Context, episodes []catalog.Episode) error {
	var attempted, failed int
	for _, ep := range episodes {
		done, err := d.store.EpisodeDone(ctx, ep.ID)
		if err != nil {
			return err
		}
		if done {
			d.log.Debug("episode already downloaded", "episode_id", ep.ID, "title", ep.Title)
			continue
		}
		if len(ep.YoutubeTokens) == 0 {
			d.log.Warn("episode has no videos", "episode_id", ep.ID, "title", ep.Title)
			continue
		}

		attempted++
		if err := d.episode(ctx, ep); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			failed++
			d.log.Error("episode failed", "episode_id", ep.ID, "title", ep.Title, "error", err)
		}
	}

	if attempted > 0 && failed == attempted {
		return fmt.Errorf("%w (%d episodes)", ErrAllFailed, failed)
	}
	return nil
}

func (d *Downloader) episode(ctx context.Context, ep catalog.Episode) error {
	fields := d.fields(ctx, ep)

	complete := true
	for i, token := range ep.YoutubeTokens {
		done, err := d.store.PartDone(ctx, ep.ID, i)
		if err != nil {
			return err
		}
		if done {
			d.log.Debug("part already downloaded", "episode_id", ep.ID, "part", i)
			continue
		}

		fields["episode_part"] = i
		dir := filepath.Join(d.basepath, d.dirTpl.Render(fields))
		// The file template renders the {name} placeholders here; the
		// %(...)s yt-dlp placeholders pass through untouched.
		output := filepath.Join(dir, d.fileTpl.Render(fields))
		d.log.Info("downloading", "episode_id", ep.ID, "title", ep.Title, "part", i, "token", token)
		localPath, err := d.runner.Download(ctx, watchURLPrefix+token, output)
		if err != nil {
			if ctx.Err() != nil {
				return err
			}
			complete = false
			d.log.Error("part failed", "episode_id", ep.ID, "part", i, "error", err)
			continue
		}
		if localPath == "" {
			localPath = output
		}

		if err := d.store.RecordPart(ctx, records.Part{
			EpisodeID:    ep.ID,
			Index:        i,
			YoutubeToken: token,
			LocalPath:    localPath,
		}); err != nil {
			return err
		}
	}

	if !complete {
		return fmt.Errorf("episode %d: not all parts downloaded", ep.ID)
	}
	return d.store.RecordEpisode(ctx, ep.ID)
}

// fields builds the template substitution values for an episode. A
// failed season lookup degrades to missing values instead of aborting
// the download.
func (d *Downloader) fields(ctx context.Context, ep catalog.Episode) map[string]any {
	fields := map[string]any{
		"show_id":      ep.ShowID,
		"show_name":    SanitizeFilename(ep.ShowName),
		"episode_id":   ep.ID,
		"episode_name": SanitizeFilename(ep.Title),
	}
	if ep.Number != 0 {
		fields["episode_number"] = ep.Number
	}
	if ep.Duration > 0 {
		fields["duration"] = ep.Duration
	}
	if !ep.FirstBroadcast.IsZero() {
		t := ep.FirstBroadcast
		fields["year"] = t.Year()
		fields["month"] = int(t.Month())
		fields["day"] = t.Day()
		fields["hour"] = t.Hour()
		fields["minute"] = t.Minute()
		fields["second"] = t.Second()
	}
	if ep.InSeason() {
		fields["season_id"] = ep.SeasonID
		season, err := d.src.Season(ctx, ep.ShowID, ep.SeasonID)
		if err != nil {
			d.log.Warn("season lookup failed", "episode_id", ep.ID, "season_id", ep.SeasonID, "error", err)
		} else {
			fields["season_name"] = SanitizeFilename(season.DisplayName())
			if season.Number != 0 {
				fields["season_number"] = season.Number
			}
		}
	}
	return fields
}
