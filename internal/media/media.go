package media

import (
	"os"
	"path/filepath"
	"strings"
)

// File is a discovered audio/video file.
type File struct {
	Path string
	Ext  string // lowercased, including the leading dot
}

// supportedExts is the fixed allow-list of transcribable formats.
var supportedExts = map[string]bool{
	".mp4": true, ".mp3": true, ".wav": true, ".m4a": true,
	".flac": true, ".ogg": true, ".webm": true,
}

// supported reports whether ext (with leading dot, any case) is a
// transcribable format.
func supported(ext string) bool {
	return supportedExts[strings.ToLower(ext)]
}

// Discover returns the supported files in the top level of dir, matching
// extensions case-insensitively. Subdirectories are not descended into.
// The order follows os.ReadDir (sorted by name). An empty directory yields
// an empty slice, not an error.
func Discover(dir string) ([]File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []File
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if !supported(ext) {
			continue
		}
		files = append(files, File{
			Path: filepath.Join(dir, entry.Name()),
			Ext:  ext,
		})
	}
	return files, nil
}
