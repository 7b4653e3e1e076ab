package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	// SuggestedFilename is the name offered for every generated video.
	SuggestedFilename = "itinerary_video.mp4"
	partialSuffix     = ".part"
	maxCollisions     = 999
)

// ErrNoVideo reports a download request without a video URL.
var ErrNoVideo = errors.New("download: no video url")

// Saver writes remote videos into a directory, browser style: the suggested
// filename is used when free, otherwise "name (n).ext".
type Saver struct {
	dir    string
	client *http.Client
}

// NewSaver returns a Saver rooted at dir. An empty dir means the working directory.
func NewSaver(dir string, client *http.Client) *Saver {
	if dir == "" {
		dir = "."
	}
	if client == nil {
		client = &http.Client{}
	}
	return &Saver{dir: dir, client: client}
}

// Dir reports where files are written.
func (s *Saver) Dir() string {
	return s.dir
}

// Save fetches videoURL and stores it under filename, returning the final path.
func (s *Saver) Save(ctx context.Context, videoURL, filename string) (string, error) {
	if strings.TrimSpace(videoURL) == "" {
		return "", ErrNoVideo
	}
	if filename == "" {
		filename = SuggestedFilename
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create download dir: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, videoURL, nil)
	if err != nil {
		return "", err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch video: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("video download failed: %s (%s)", resp.Status, strings.TrimSpace(string(body)))
	}

	target, err := s.availablePath(filename)
	if err != nil {
		return "", err
	}
	partialPath := fmt.Sprintf("%s.%s%s", target, uuid.NewString(), partialSuffix)
	file, err := os.OpenFile(partialPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", err
	}
	written, err := io.Copy(file, resp.Body)
	if err != nil {
		file.Close()
		os.Remove(partialPath)
		return "", fmt.Errorf("write video: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(partialPath)
		return "", err
	}
	if err := os.Rename(partialPath, target); err != nil {
		os.Remove(partialPath)
		return "", err
	}
	log.Printf("[download] %s -> %s (%d bytes)", videoURL, target, written)
	return target, nil
}

func (s *Saver) availablePath(filename string) (string, error) {
	ext := filepath.Ext(filename)
	stem := strings.TrimSuffix(filename, ext)
	for n := 0; n <= maxCollisions; n++ {
		name := filename
		if n > 0 {
			name = fmt.Sprintf("%s (%d)%s", stem, n, ext)
		}
		candidate := filepath.Join(s.dir, name)
		if _, err := os.Stat(candidate); errors.Is(err, os.ErrNotExist) {
			return candidate, nil
		} else if err != nil {
			return "", err
		}
	}
	return "", fmt.Errorf("no free filename for %s in %s", filename, s.dir)
}
