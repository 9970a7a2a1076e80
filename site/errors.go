package site

import "errors"

var (
	// ErrMissingPost is returned by Check when a comment file has no post.
	ErrMissingPost = errors.New("cannot find post for comment file")
	// ErrUnknownTag is returned for reading entries whose tag is not configured.
	ErrUnknownTag = errors.New("unknown tag")
	// ErrMissingTag is returned when a post listed on a tag page has no tag.
	ErrMissingTag = errors.New("missing tag")
	// ErrUnknownImport is returned for import entries that are neither .js nor .css.
	ErrUnknownImport = errors.New("unknown import type")
	// ErrUnsafeOutput is returned when the output directory would remove the site itself.
	ErrUnsafeOutput = errors.New("refusing to use output directory")
)
