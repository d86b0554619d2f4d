package npm

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ResolveLatest fetches the metadata document for the latest published version.
func (c *Client) ResolveLatest(pkg string) (*Version, error) {
	return c.fetchVersion(pkg, "latest")
}

// ResolveVersion fetches the metadata document for a specific version tag.
// A leading "v" is tolerated (npm dist-tags never carry one).
func (c *Client) ResolveVersion(pkg, tag string) (*Version, error) {
	return c.fetchVersion(pkg, strings.TrimPrefix(tag, "v"))
}

func (c *Client) fetchVersion(pkg, tag string) (*Version, error) {
	url := fmt.Sprintf("%s/%s/%s", c.registry, pkg, tag)

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "iconport")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s@%s: %w", pkg, tag, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("package %s@%s not found in registry", pkg, tag)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("registry returned status %d for %s@%s", resp.StatusCode, pkg, tag)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading registry response: %w", err)
	}

	var v Version
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, fmt.Errorf("parsing registry metadata: %w", err)
	}
	if v.Version == "" {
		return nil, fmt.Errorf("registry metadata for %s@%s has no version field", pkg, tag)
	}

	// The registry publishes the tarball URL, but it is also deterministic.
	// Fill it in when a mirror strips the dist block.
	if v.Dist.Tarball == "" {
		v.Dist.Tarball = c.TarballURL(pkg, v.Version)
	}

	return &v, nil
}

// TarballURL constructs the deterministic registry tarball URL for a version.
// Scoped packages use the unscoped name in the file segment.
func (c *Client) TarballURL(pkg, version string) string {
	base := pkg
	if i := strings.LastIndex(pkg, "/"); i >= 0 {
		base = pkg[i+1:]
	}
	return fmt.Sprintf("%s/%s/-/%s-%s.tgz", c.registry, pkg, base, version)
}
