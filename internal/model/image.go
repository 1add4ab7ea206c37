package model

// ImageRecord represents a stored binary image payload. The blob is kept
// verbatim; any optimization happens upstream before the save call.
type ImageRecord struct {
	ID        string `json:"id"`
	Blob      []byte `json:"-"`
	FileName  string `json:"fileName"`
	MimeType  string `json:"mimeType"`
	CreatedAt int64  `json:"createdAt"` // epoch milliseconds
}
