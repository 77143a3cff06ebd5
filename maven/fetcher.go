// Package maven downloads artifact jars from a Maven repository so an
// extraction run can point at coordinates instead of local files.
package maven

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

const (
	DefaultRepoURL = "https://repo1.maven.org/maven2"
	EnvRepoURL     = "MAVEN_REPO_URL"
)

// Coordinate identifies one artifact, written groupId:artifactId:version
// with an optional classifier (groupId:artifactId:classifier:version).
type Coordinate struct {
	GroupID    string
	ArtifactID string
	Version    string
	Classifier string
}

func ParseCoordinate(coord string) (Coordinate, error) {
	parts := strings.Split(coord, ":")
	switch len(parts) {
	case 3:
		return Coordinate{GroupID: parts[0], ArtifactID: parts[1], Version: parts[2]}, nil
	case 4:
		return Coordinate{GroupID: parts[0], ArtifactID: parts[1], Classifier: parts[2], Version: parts[3]}, nil
	default:
		return Coordinate{}, fmt.Errorf("invalid Maven coordinate: %s (expected groupId:artifactId:version or groupId:artifactId:classifier:version)", coord)
	}
}

func (c Coordinate) jarName() string {
	if c.Classifier != "" {
		return fmt.Sprintf("%s-%s-%s.jar", c.ArtifactID, c.Version, c.Classifier)
	}
	return fmt.Sprintf("%s-%s.jar", c.ArtifactID, c.Version)
}

type Fetcher struct {
	RepoURL    string
	httpClient *http.Client
}

func NewFetcher() *Fetcher {
	repoURL := os.Getenv(EnvRepoURL)
	if repoURL == "" {
		repoURL = DefaultRepoURL
	}
	return &Fetcher{
		RepoURL:    strings.TrimSuffix(repoURL, "/"),
		httpClient: &http.Client{},
	}
}

func (f *Fetcher) JarURL(c Coordinate) string {
	groupPath := strings.ReplaceAll(c.GroupID, ".", "/")
	return fmt.Sprintf("%s/%s/%s/%s/%s", f.RepoURL, groupPath, c.ArtifactID, c.Version, c.jarName())
}

// DownloadJar fetches the artifact's jar into destDir and returns the local
// path. A partial download is removed before the error is returned.
func (f *Fetcher) DownloadJar(c Coordinate, destDir string) (string, error) {
	url := f.JarURL(c)
	resp, err := f.httpClient.Get(url)
	if err != nil {
		return "", fmt.Errorf("download JAR: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download JAR: HTTP %d for %s", resp.StatusCode, url)
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("create directory: %w", err)
	}
	destPath := filepath.Join(destDir, c.jarName())
	file, err := os.Create(destPath)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, resp.Body); err != nil {
		os.Remove(destPath)
		return "", fmt.Errorf("write file: %w", err)
	}
	return destPath, nil
}
