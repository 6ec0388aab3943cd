package records

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

// wholeEpisode marks a fully downloaded episode in the record file.
const wholeEpisode = "all"

// File is a Store backed by a plaintext file with one "<episode-id>
// <part>" entry per line, where part is an index or "all". The format
// is append-only and survives interrupted runs.
type File struct {
	mu       sync.Mutex
	f        *os.File
	episodes map[int]bool
	parts    map[[2]int]bool
}

// OpenFile opens or creates a record file and loads its entries.
// Unparseable lines are rejected rather than ignored.
func OpenFile(path string) (*File, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open record file: %w", err)
	}

	s := &File{
		f:        f,
		episodes: make(map[int]bool),
		parts:    make(map[[2]int]bool),
	}

	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if err := s.load(text); err != nil {
			f.Close()
			return nil, fmt.Errorf("record file %s line %d: %w", path, line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		f.Close()
		return nil, fmt.Errorf("read record file: %w", err)
	}
	return s, nil
}

func (s *File) load(line string) error {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return fmt.Errorf("malformed entry %q", line)
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return fmt.Errorf("malformed episode id %q", fields[0])
	}
	if fields[1] == wholeEpisode {
		s.episodes[id] = true
		return nil
	}
	index, err := strconv.Atoi(fields[1])
	if err != nil {
		return fmt.Errorf("malformed part %q", fields[1])
	}
	s.parts[[2]int{id, index}] = true
	return nil
}

func (s *File) append(entry string) error {
	if _, err := s.f.WriteString(entry + "\n"); err != nil {
		return fmt.Errorf("append record: %w", err)
	}
	return s.f.Sync()
}

func (s *File) EpisodeDone(_ context.Context, episodeID int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.episodes[episodeID], nil
}

func (s *File) PartDone(_ context.Context, episodeID, index int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.parts[[2]int{episodeID, index}], nil
}

func (s *File) RecordPart(_ context.Context, part Part) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.parts[[2]int{part.EpisodeID, part.Index}] {
		return nil
	}
	if err := s.append(fmt.Sprintf("%d %d", part.EpisodeID, part.Index)); err != nil {
		return err
	}
	s.parts[[2]int{part.EpisodeID, part.Index}] = true
	return nil
}

func (s *File) RecordEpisode(_ context.Context, episodeID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.episodes[episodeID] {
		return nil
	}
	if err := s.append(fmt.Sprintf("%d %s", episodeID, wholeEpisode)); err != nil {
		return err
	}
	s.episodes[episodeID] = true
	return nil
}

func (s *File) Close() error {
	return s.f.Close()
}

var _ Store = (*File)(nil)
