package maven

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		coord string
		want  Coordinate
		bad   bool
	}{
		{coord: "com.google.android:android:4.1.1.4", want: Coordinate{GroupID: "com.google.android", ArtifactID: "android", Version: "4.1.1.4"}},
		{coord: "org.example:lib:sources:1.0", want: Coordinate{GroupID: "org.example", ArtifactID: "lib", Classifier: "sources", Version: "1.0"}},
		{coord: "org.example:lib", bad: true},
		{coord: "a:b:c:d:e", bad: true},
	}
	for _, tt := range tests {
		got, err := ParseCoordinate(tt.coord)
		if tt.bad {
			if err == nil {
				t.Errorf("ParseCoordinate(%q): expected error", tt.coord)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseCoordinate(%q): %v", tt.coord, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCoordinate(%q) = %+v, want %+v", tt.coord, got, tt.want)
		}
	}
}

func TestJarURL(t *testing.T) {
	f := &Fetcher{RepoURL: "https://repo.example.org/maven2"}
	c := Coordinate{GroupID: "com.google.android", ArtifactID: "android", Version: "4.1.1.4"}
	want := "https://repo.example.org/maven2/com/google/android/android/4.1.1.4/android-4.1.1.4.jar"
	if got := f.JarURL(c); got != want {
		t.Errorf("JarURL = %q, want %q", got, want)
	}
}

func TestDownloadJar(t *testing.T) {
	payload := []byte("PK\x03\x04 not really a jar")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/org/example/lib/1.0/lib-1.0.jar" {
			http.NotFound(w, r)
			return
		}
		w.Write(payload)
	}))
	defer server.Close()

	f := &Fetcher{RepoURL: server.URL, httpClient: server.Client()}
	dest := t.TempDir()

	path, err := f.DownloadJar(Coordinate{GroupID: "org.example", ArtifactID: "lib", Version: "1.0"}, dest)
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join(dest, "lib-1.0.jar") {
		t.Errorf("path = %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != string(payload) {
		t.Error("downloaded content differs")
	}

	if _, err := f.DownloadJar(Coordinate{GroupID: "org.example", ArtifactID: "missing", Version: "1.0"}, dest); err == nil {
		t.Error("expected error for missing artifact")
	}
}

func TestNewFetcherEnvOverride(t *testing.T) {
	t.Setenv(EnvRepoURL, "https://mirror.example.org/maven2/")
	f := NewFetcher()
	if f.RepoURL != "https://mirror.example.org/maven2" {
		t.Errorf("RepoURL = %q", f.RepoURL)
	}
}
