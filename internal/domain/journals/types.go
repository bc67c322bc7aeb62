package journals

import "strings"

// MediaKind clasifica un adjunto por su content type declarado.
type MediaKind string

const (
	KindImage MediaKind = "image"
	KindVideo MediaKind = "video"
	KindOther MediaKind = "other"
)

// KindOf decide por prefijo del MIME; cualquier cosa que no sea
// imagen ni video se trata como adjunto genérico.
func KindOf(mime string) MediaKind {
	switch {
	case strings.HasPrefix(mime, "image/"):
		return KindImage
	case strings.HasPrefix(mime, "video/"):
		return KindVideo
	default:
		return KindOther
	}
}
