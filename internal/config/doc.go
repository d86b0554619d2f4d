// Package config manages project-local settings read from iconport.yaml in the
// working directory, with ICONPORT_* environment variables taking precedence.
// Every key is optional; defaults come from the branding package.
package config
