// Package errors provides sentinel errors for content discovery.
package errors

import "errors"

var (
	// ErrContentDirNotFound indicates the configured content directory does not exist.
	ErrContentDirNotFound = errors.New("content directory not found")

	// ErrContentWalkFailed indicates traversal of the content directory failed.
	ErrContentWalkFailed = errors.New("content directory walk failed")

	// ErrFileReadFailed indicates reading a discovered document failed.
	ErrFileReadFailed = errors.New("document read failed")

	// ErrFrontmatterInvalid indicates a document carries malformed frontmatter.
	ErrFrontmatterInvalid = errors.New("invalid document frontmatter")

	// ErrDuplicateDocument indicates two files resolve to the same document id.
	ErrDuplicateDocument = errors.New("duplicate document id")
)
