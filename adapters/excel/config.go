package excel

import (
	"hypokit/internal"
)

// ReaderConfig controls how sample files are read
type ReaderConfig struct {
	// Sheet is the worksheet read from .xlsx files. Empty means the first sheet.
	Sheet  string
	Logger *internal.Logger
}

// DefaultReaderConfig reads the first sheet and logs through the default logger
func DefaultReaderConfig() ReaderConfig {
	return ReaderConfig{Logger: internal.DefaultLogger}
}
