// Package imagestore persists uploaded user and place images on an afero
// filesystem. Content type is sniffed from the bytes, never trusted from the
// client, and only PNG and JPEG images are accepted.
package imagestore
