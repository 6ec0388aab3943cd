package downloader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rbtvdl/rbtvdl/internal/catalog"
)

// postsLinesFile is the JSON-lines dump written for all-blog exports.
const postsLinesFile = "blog-posts.jl"

// ExportPosts writes each post to its own blog-<id>.json file under
// dir.
func ExportPosts(dir string, posts []catalog.BlogPost) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}
	for _, post := range posts {
		data, err := json.MarshalIndent(post, "", "  ")
		if err != nil {
			return fmt.Errorf("encode blog post %d: %w", post.ID, err)
		}
		path := filepath.Join(dir, fmt.Sprintf("blog-%d.json", post.ID))
		if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
			return fmt.Errorf("write blog post %d: %w", post.ID, err)
		}
	}
	return nil
}

// ExportPostsLines writes all posts to a single JSON-lines file under
// dir, one post per line.
func ExportPostsLines(dir string, posts []catalog.BlogPost) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}
	f, err := os.Create(filepath.Join(dir, postsLinesFile))
	if err != nil {
		return fmt.Errorf("create %s: %w", postsLinesFile, err)
	}
	enc := json.NewEncoder(f)
	for _, post := range posts {
		if err := enc.Encode(post); err != nil {
			f.Close()
			return fmt.Errorf("encode blog post %d: %w", post.ID, err)
		}
	}
	return f.Close()
}
