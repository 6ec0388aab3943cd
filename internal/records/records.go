// Package records tracks which episodes and parts have already been
// downloaded, so repeated runs skip finished work.
package records

import (
	"context"
	"sync"
)

// Part identifies one downloaded slice of an episode. Episodes map to
// one or more youtube videos; Index is the position of the token in
// the episode's token list.
type Part struct {
	EpisodeID    int
	Index        int
	YoutubeToken string
	LocalPath    string
}

// Store is the bookkeeping interface the downloader works against.
// Implementations differ in what they persist: the plaintext file
// keeps only ids, the SQLite store also keeps tokens and paths.
type Store interface {
	EpisodeDone(ctx context.Context, episodeID int) (bool, error)
	PartDone(ctx context.Context, episodeID, index int) (bool, error)
	RecordPart(ctx context.Context, part Part) error
	RecordEpisode(ctx context.Context, episodeID int) error
	Close() error
}

// Memory is a Store that forgets everything on exit. Used when no
// record path is configured, and in tests.
type Memory struct {
	mu       sync.Mutex
	episodes map[int]bool
	parts    map[[2]int]bool
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		episodes: make(map[int]bool),
		parts:    make(map[[2]int]bool),
	}
}

func (m *Memory) EpisodeDone(_ context.Context, episodeID int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.episodes[episodeID], nil
}

func (m *Memory) PartDone(_ context.Context, episodeID, index int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.parts[[2]int{episodeID, index}], nil
}

func (m *Memory) RecordPart(_ context.Context, part Part) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.parts[[2]int{part.EpisodeID, part.Index}] = true
	return nil
}

func (m *Memory) RecordEpisode(_ context.Context, episodeID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.episodes[episodeID] = true
	return nil
}

func (m *Memory) Close() error { return nil }

var _ Store = (*Memory)(nil)
