// Package clientcli implements the client-side logic for the filedepot CLI.
//
// It provides a small HTTP client for the filedepot REST API plus YAML
// config file handling (~/.filedepot/config.yaml) with endpoint resolution
// from file, environment, and flags.
package clientcli
