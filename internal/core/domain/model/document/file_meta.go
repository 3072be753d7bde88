package document

import (
	"shipping/internal/pkg/errs"
)

// FileMeta describes the stored file backing a document. The file itself
// lives in object storage; only its descriptor is kept here.
type FileMeta struct {
	fileName    string
	storagePath string
	sizeBytes   int64
	mimeType    string
}

// NewFileMeta creates a file descriptor. All fields are mandatory and the
// size must be positive.
func NewFileMeta(fileName, storagePath string, sizeBytes int64, mimeType string) (FileMeta, error) {
	if fileName == "" {
		return FileMeta{}, errs.NewValueIsRequiredError("file name")
	}
	if storagePath == "" {
		return FileMeta{}, errs.NewValueIsRequiredError("storage path")
	}
	if sizeBytes <= 0 {
		return FileMeta{}, errs.NewValueIsInvalidError("file size")
	}
	if mimeType == "" {
		return FileMeta{}, errs.NewValueIsRequiredError("mime type")
	}
	return FileMeta{
		fileName:    fileName,
		storagePath: storagePath,
		sizeBytes:   sizeBytes,
		mimeType:    mimeType,
	}, nil
}

// FileName returns the original upload name.
func (f FileMeta) FileName() string { return f.fileName }

// StoragePath returns the object-storage key.
func (f FileMeta) StoragePath() string { return f.storagePath }

// SizeBytes returns the file size in bytes.
func (f FileMeta) SizeBytes() int64 { return f.sizeBytes }

// MimeType returns the declared content type.
func (f FileMeta) MimeType() string { return f.mimeType }

// Validate checks the descriptor was created through NewFileMeta.
func (f FileMeta) Validate() error {
	if f.fileName == "" || f.storagePath == "" || f.sizeBytes <= 0 || f.mimeType == "" {
		return errs.NewValueIsRequiredError("file metadata must be created via NewFileMeta")
	}
	return nil
}
