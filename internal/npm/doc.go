// Package npm resolves and downloads the upstream icon package from an npm
// registry. It fetches a single version metadata document (latest or a pinned
// tag), constructs the tarball URL deterministically from the resolved version,
// streams the tarball to disk, and verifies the registry-published shasum.
package npm
