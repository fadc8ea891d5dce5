// Package file reads connector settings from a TOML file. Connection
// string, feed path, container filter, page size and data dir live in
// config.toml under the user's config directory.
package file
