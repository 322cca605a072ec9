package frontmatter

import "errors"

var (
	ErrNoClosingDelimiter = errors.New("front matter has no closing delimiter")
	ErrNotMapping         = errors.New("front matter is not a mapping")
)
