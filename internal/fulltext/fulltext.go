// Copyright OpenLit Labs, 2026. All rights reserved.

// Package fulltext downloads the full-text links of labeled records into a
// local directory. Downloads that already exist on disk are skipped, and
// individual failures do not abort the batch.
package fulltext

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/openlit/corpus-curator/internal/httputil"
	"github.com/openlit/corpus-curator/pkg/types"
)

// BatchResult holds the outcome of a batch fetch run. Downloaded, Skipped,
// and Failed count individual links; Errors counts records that failed
// outside any link download, such as an unwritable directory or manifest.
type BatchResult struct {
	Downloaded int
	Skipped    int
	Failed     int
	Errors     int
}

// Total returns the total number of links processed.
func (r BatchResult) Total() int {
	return r.Downloaded + r.Skipped + r.Failed
}

// HasFailures reports whether any downloads or records failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0 || r.Errors > 0
}

// recordManifest is the YAML sidecar written next to a record's downloads.
type recordManifest struct {
	ID    string   `yaml:"id"`
	Title string   `yaml:"title"`
	Links []string `yaml:"links"`
	Files []string `yaml:"files"`
}

// FetchRecord downloads every full-text link of one record into
// cfg.FulltextDir and writes a YAML manifest for the record. Files already
// on disk are skipped. Per-link failures are reported in the result and do
// not stop remaining links.
func FetchRecord(client *http.Client, rec types.LabeledRecord, cfg types.FetchConfig, w io.Writer) (BatchResult, error) {
	var result BatchResult
	if len(rec.FulltextLinks) == 0 {
		return result, nil
	}

	if err := os.MkdirAll(cfg.FulltextDir, 0o755); err != nil {
		return result, fmt.Errorf("creating fulltext directory: %w", err)
	}

	manifest := recordManifest{
		ID:    rec.ID,
		Title: rec.Title,
		Links: rec.FulltextLinks,
	}

	for i, link := range rec.FulltextLinks {
		if i > 0 && cfg.DownloadDelay > 0 {
			time.Sleep(cfg.DownloadDelay)
		}

		name := fileName(rec.ID, i, link)
		dest := filepath.Join(cfg.FulltextDir, name)

		if _, err := os.Stat(dest); err == nil {
			fmt.Fprintf(w, "skipped: %s (already exists)\n", name)
			manifest.Files = append(manifest.Files, name)
			result.Skipped++
			continue
		}

		fmt.Fprintf(w, "downloading: %s\n", name)
		if err := downloadFile(client, link, dest, cfg); err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", name, err)
			result.Failed++
			continue
		}
		manifest.Files = append(manifest.Files, name)
		result.Downloaded++
	}

	if err := writeManifest(filepath.Join(cfg.FulltextDir, rec.ID+".yaml"), manifest); err != nil {
		return result, err
	}
	return result, nil
}

// FetchBatch downloads full texts for every record, printing per-item
// status and returning a summary. Records without links are ignored.
func FetchBatch(client *http.Client, records []types.LabeledRecord, cfg types.FetchConfig, w io.Writer) BatchResult {
	var total BatchResult
	for i, rec := range records {
		if len(rec.FulltextLinks) == 0 {
			continue
		}
		if i > 0 && cfg.DownloadDelay > 0 {
			time.Sleep(cfg.DownloadDelay)
		}
		res, err := FetchRecord(client, rec, cfg, w)
		total.Downloaded += res.Downloaded
		total.Skipped += res.Skipped
		total.Failed += res.Failed
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", rec.ID, err)
			total.Errors++
		}
	}

	fmt.Fprintf(w, "\ndownloaded: %d, skipped: %d, failed: %d, errors: %d\n",
		total.Downloaded, total.Skipped, total.Failed, total.Errors)
	return total
}

// downloadFile fetches u into dest, writing to a temp file first and
// renaming on success so a failed download leaves nothing behind.
func downloadFile(client *http.Client, u, dest string, cfg types.FetchConfig) error {
	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	}

	resp, err := httputil.DoWithRetry(req.Context(), client, req, 0)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), ".download-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing download: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, dest)
}

// fileName builds a stable on-disk name for one link of a record:
// <record-id>-<index><ext>, where ext comes from the URL path when it has
// a recognizable extension and defaults to .html.
func fileName(recordID string, index int, link string) string {
	ext := ".html"
	if u, err := url.Parse(link); err == nil {
		if e := path.Ext(u.Path); e != "" && len(e) <= 5 && !strings.ContainsAny(e, "%&=") {
			ext = e
		}
	}
	return fmt.Sprintf("%s-%d%s", recordID, index, ext)
}

func writeManifest(dest string, m recordManifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	return os.WriteFile(dest, data, 0o644)
}
