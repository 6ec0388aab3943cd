package records

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
)

// MissingFiles returns recorded parts whose local file no longer
// exists. Parts recorded without a path (plaintext imports) are never
// reported.
func MissingFiles(ctx context.Context, s *SQLite) ([]Part, error) {
	parts, err := s.Parts(ctx)
	if err != nil {
		return nil, err
	}

	var missing []Part
	for _, p := range parts {
		if p.LocalPath == "" {
			continue
		}
		if _, err := os.Stat(p.LocalPath); os.IsNotExist(err) {
			missing = append(missing, p)
		} else if err != nil {
			return nil, fmt.Errorf("stat %s: %w", p.LocalPath, err)
		}
	}
	return missing, nil
}

// ForgetMissingFiles removes the part records of files that are gone
// and returns what was forgotten.
func ForgetMissingFiles(ctx context.Context, s *SQLite) ([]Part, error) {
	missing, err := MissingFiles(ctx, s)
	if err != nil {
		return nil, err
	}
	for _, p := range missing {
		if err := s.RemovePart(ctx, p.EpisodeID, p.Index); err != nil {
			return nil, err
		}
	}
	return missing, nil
}

// UntrackedFiles walks basepath and returns regular files that no
// part record points at, sorted by path.
func UntrackedFiles(ctx context.Context, s *SQLite, basepath string) ([]string, error) {
	parts, err := s.Parts(ctx)
	if err != nil {
		return nil, err
	}
	tracked := make(map[string]bool, len(parts))
	for _, p := range parts {
		if p.LocalPath != "" {
			tracked[filepath.Clean(p.LocalPath)] = true
		}
	}

	var untracked []string
	err = filepath.WalkDir(basepath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			return nil
		}
		if !tracked[filepath.Clean(path)] {
			untracked = append(untracked, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", basepath, err)
	}
	sort.Strings(untracked)
	return untracked, nil
}

// TokenIndex maps a youtube token to the episode and part it belongs
// to.
type TokenIndex map[string]Part

// TrackedFile is the result of matching an untracked file to a part.
type TrackedFile struct {
	Path string
	Part Part
}

// TrackUntrackedFiles matches untracked files to parts by the youtube
// token embedded in the filename and records them. Files whose name
// yields no known token are returned as unmatched.
func TrackUntrackedFiles(ctx context.Context, s *SQLite, basepath string, pattern *regexp.Regexp, index TokenIndex) (tracked []TrackedFile, unmatched []string, err error) {
	files, err := UntrackedFiles(ctx, s, basepath)
	if err != nil {
		return nil, nil, err
	}

	for _, path := range files {
		m := pattern.FindStringSubmatch(filepath.Base(path))
		if m == nil || len(m) < 2 {
			unmatched = append(unmatched, path)
			continue
		}
		part, ok := index[m[1]]
		if !ok {
			unmatched = append(unmatched, path)
			continue
		}
		part.LocalPath = path
		if err := s.RecordPart(ctx, part); err != nil {
			return nil, nil, err
		}
		tracked = append(tracked, TrackedFile{Path: path, Part: part})
	}
	return tracked, unmatched, nil
}
