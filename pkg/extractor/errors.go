package extractor

import "errors"

// Each failure kind maps to a distinct user-facing message at the HTTP layer,
// so they are exposed as sentinel errors rather than one opaque failure.
var (
	// ErrEmptyInput signals a zero-length upload buffer.
	ErrEmptyInput = errors.New("the uploaded file appears to be empty")

	// ErrUnreadableContent signals a well-formed PDF that yields no text,
	// typically a scanned or image-only document.
	ErrUnreadableContent = errors.New("no text content could be extracted; this might be a scanned or image-based PDF")

	// ErrCorruptInput signals a byte stream that is not a well-formed PDF.
	ErrCorruptInput = errors.New("the file could not be parsed; it might be corrupted or in an unsupported format")
)
