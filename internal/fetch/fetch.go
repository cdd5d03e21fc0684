// Package fetch retrieves and caches the two upstream data archives: the Pin
// Tool data (one archive for all families) and the per-variant CMSIS packs.
// A download is skipped when its destination directory already exists, so
// repeated runs against the same work directory hit the network at most once.
package fetch

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

const (
	pinToolURL = "https://github.com/SiliconLabs/gecko_sdk/releases/download/v4.4.3/pintool.zip"

	// packURL contains a FAMILY placeholder replaced by the uppercased
	// variant name.
	packURL = "https://www.silabs.com/documents/public/cmsis-packs/SiliconLabs.GeckoPlatform_FAMILY_DFP.4.4.0.pack"
)

// Client downloads upstream archives into a work directory.
type Client struct {
	workdir string
	httpc   *http.Client

	// pinToolURL and packURL can be overridden for tests.
	pinToolURL string
	packURL    string
}

// NewClient creates a fetch client rooted at workdir.
func NewClient(workdir string) *Client {
	return &Client{
		workdir:    workdir,
		httpc:      http.DefaultClient,
		pinToolURL: pinToolURL,
		packURL:    packURL,
	}
}

// PinTool materializes the Pin Tool data under <workdir>/pin_tool.
func (c *Client) PinTool(ctx context.Context) error {
	dst := filepath.Join(c.workdir, "pin_tool")
	if dirExists(dst) {
		slog.Info("skipping download of Pin Tool data, already exists")
		return nil
	}

	slog.Info("downloading Pin Tool data")

	if err := c.downloadZip(ctx, c.pinToolURL, dst); err != nil {
		return fmt.Errorf("fetching Pin Tool data: %w", err)
	}

	return nil
}

// Pack materializes the CMSIS pack for one chip variant under
// <workdir>/pack/<variant>.
func (c *Client) Pack(ctx context.Context, variant string) error {
	dst := filepath.Join(c.workdir, "pack", variant)
	if dirExists(dst) {
		slog.Info("skipping download of CMSIS pack, already exists", "variant", variant)
		return nil
	}

	slog.Info("downloading CMSIS pack", "variant", variant)

	url := strings.ReplaceAll(c.packURL, "FAMILY", strings.ToUpper(variant))
	if err := c.downloadZip(ctx, url, dst); err != nil {
		return fmt.Errorf("fetching CMSIS pack for %s: %w", variant, err)
	}

	return nil
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// downloadZip fetches a zip archive and extracts it into dst.
func (c *Client) downloadZip(ctx context.Context, url, dst string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("requesting %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("requesting %s: unexpected status %s", url, resp.Status)
	}

	tmp, err := os.CreateTemp("", "pinctrl-fetch-*.zip")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		return fmt.Errorf("saving %s: %w", url, err)
	}

	if err := extractZip(tmp.Name(), dst); err != nil {
		return fmt.Errorf("extracting %s: %w", url, err)
	}

	return nil
}

// extractZip unpacks the archive at src into the directory dst.
func extractZip(src, dst string) error {
	r, err := zip.OpenReader(src)
	if err != nil {
		return fmt.Errorf("opening archive: %w", err)
	}
	defer r.Close()

	for _, f := range r.File {
		if err := extractFile(f, dst); err != nil {
			return err
		}
	}

	return nil
}

func extractFile(f *zip.File, dst string) error {
	target := filepath.Join(dst, filepath.Clean(f.Name))

	// Reject entries that would escape the destination directory.
	if rel, err := filepath.Rel(dst, target); err != nil || strings.HasPrefix(rel, "..") {
		return fmt.Errorf("archive entry %s escapes destination", f.Name)
	}

	if f.FileInfo().IsDir() {
		return os.MkdirAll(target, 0o755)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", f.Name, err)
	}

	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("opening archive entry %s: %w", f.Name, err)
	}
	defer rc.Close()

	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, f.Mode())
	if err != nil {
		return fmt.Errorf("creating %s: %w", target, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, rc); err != nil {
		return fmt.Errorf("writing %s: %w", target, err)
	}

	return nil
}
