// Package library discovers playable audio files on disk.
package library

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/lbreton/spindle/internal/playlist"
)

// Accepted audio file extensions (lowercase).
const (
	ExtMP3 = ".mp3"
	ExtWAV = ".wav"
)

// IsAudioFile reports whether the path has an accepted audio extension,
// case-insensitive.
func IsAudioFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ExtMP3 || ext == ExtWAV
}

// Scan walks root recursively, following symbolic links, and returns the
// playable tracks found sorted by path. Unreadable entries are skipped.
// Returns playlist.ErrEmptyCollection when nothing playable is found.
func Scan(root string) ([]playlist.Track, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.Wrapf(err, "scan %s", root)
	}
	if !info.IsDir() {
		return nil, errors.Newf("scan %s: not a directory", root)
	}

	var paths []string
	visited := make(map[string]bool)
	walk(root, visited, &paths)

	if len(paths) == 0 {
		return nil, errors.Wrapf(playlist.ErrEmptyCollection,
			"no %s or %s files under %s", ExtMP3, ExtWAV, root)
	}

	sort.Strings(paths)

	tracks := make([]playlist.Track, 0, len(paths))
	for _, p := range paths {
		tracks = append(tracks, playlist.NewTrack(p))
	}
	return tracks, nil
}

// walk recurses into dir, resolving symlinks through os.Stat. The visited
// set holds resolved directory paths so symlink cycles terminate.
func walk(dir string, visited map[string]bool, paths *[]string) {
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return
	}
	if visited[resolved] {
		return
	}
	visited[resolved] = true

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		full := filepath.Join(dir, entry.Name())

		// Stat follows symlinks, so linked files and directories are
		// classified by their target.
		info, err := os.Stat(full)
		if err != nil {
			continue
		}

		if info.IsDir() {
			walk(full, visited, paths)
			continue
		}
		if IsAudioFile(full) {
			*paths = append(*paths, full)
		}
	}
}
