package service

// QRCodeEncoder draws scannable codes for printed documents.
type QRCodeEncoder interface {
	// EncodePNG returns content as a square PNG image.
	EncodePNG(content string) ([]byte, error)
}
