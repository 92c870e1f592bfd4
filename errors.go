package md2bgg

import (
	"errors"

	"github.com/lebigot/md2bgg/internal/bggrender"
	"github.com/lebigot/md2bgg/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown = errors.New("markdown content cannot be empty")

	// ErrBGGConversion is wrapped around any failure inside the markup
	// conversion stage.
	ErrBGGConversion = pipeline.ErrConversion

	// Dialect validation errors.
	ErrInvalidDialect = errors.New("invalid dialect")

	// ErrUnsupportedHeadingLevel is returned when the markdown uses a
	// heading deeper than level 2, which BGG markup cannot express.
	ErrUnsupportedHeadingLevel = bggrender.ErrUnsupportedHeadingLevel
)
