// Package export writes joint density surfaces to files: SVG images,
// JSON documents and long-format CSV tables.
package export
