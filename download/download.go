// Package download fetches and extracts the benchmark archives listed in a
// YAML manifest. Archives are cached under a .download directory inside the
// output directory and only re-fetched when forced.
package download

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// Benchmark is one archive entry of the manifest.
type Benchmark struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Manifest lists the benchmark archives to fetch.
type Manifest struct {
	Benchmarks []Benchmark `yaml:"benchmarks"`
}

// LoadManifest reads and parses a YAML manifest file.
func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	if len(m.Benchmarks) == 0 {
		return Manifest{}, fmt.Errorf("manifest %s lists no benchmarks", path)
	}
	for i, b := range m.Benchmarks {
		if b.Name == "" || b.URL == "" {
			return Manifest{}, fmt.Errorf("manifest %s: entry %d needs both name and url", path, i+1)
		}
	}
	return m, nil
}

// Options configures a fetch run.
type Options struct {
	// OutputDir is where archives are extracted to
	OutputDir string
	// Force re-downloads archives even when already cached
	Force bool
	// Client defaults to http.DefaultClient
	Client *http.Client
}

// Fetch downloads every manifest entry into OutputDir/.download and
// extracts it into OutputDir/<name>.
func Fetch(ctx context.Context, m Manifest, opts Options) error {
	client := opts.Client
	if client == nil {
		client = http.DefaultClient
	}
	cacheDir := filepath.Join(opts.OutputDir, ".download")
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return fmt.Errorf("create download dir: %w", err)
	}

	for _, b := range m.Benchmarks {
		archive := filepath.Join(cacheDir, b.Name+".zip")
		if _, err := os.Stat(archive); err != nil || opts.Force {
			if err := fetchArchive(ctx, client, b.URL, archive); err != nil {
				return fmt.Errorf("download %s: %w", b.Name, err)
			}
		}
		dest := filepath.Join(opts.OutputDir, b.Name)
		if err := extractZip(archive, dest); err != nil {
			return fmt.Errorf("extract %s: %w", b.Name, err)
		}
	}
	return nil
}

func fetchArchive(ctx context.Context, client *http.Client, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	tmp := dest + ".part"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, dest)
}

func extractZip(archive, dest string) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer func() { _ = r.Close() }()

	for _, f := range r.File {
		target := filepath.Join(dest, filepath.Clean(f.Name))
		// Reject entries escaping the destination.
		if !strings.HasPrefix(target, filepath.Clean(dest)+string(os.PathSeparator)) {
			return fmt.Errorf("archive entry %q escapes destination", f.Name)
		}
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return err
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}
		if err := extractFile(f, target); err != nil {
			return fmt.Errorf("extract %s: %w", f.Name, err)
		}
	}
	return nil
}

func extractFile(f *zip.File, target string) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()

	w, err := os.Create(target)
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, rc); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}
