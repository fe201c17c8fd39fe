package storage

import "errors"

var (
	ErrContentNotFound  = errors.New("content file not found")
	ErrContentMalformed = errors.New("content file is not valid json")
)

var (
	ErrFileTooLarge    = errors.New("file size exceeds limit")
	ErrInvalidFileType = errors.New("invalid file type")
	ErrFileNotFound    = errors.New("file not found")
)
