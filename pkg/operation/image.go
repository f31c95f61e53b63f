package operation

import (
	"path/filepath"
	"strings"
)

// ImageKind is the firmware image flavor as advertised by the file name.
type ImageKind string

const (
	// ImageCwe is a core system image.
	ImageCwe ImageKind = "cwe"
	// ImageNvu is a carrier-specific image.
	ImageNvu ImageKind = "nvu"
	// ImageSpk is a combined system plus carrier image.
	ImageSpk ImageKind = "spk"
	// ImageMbn is a raw modem binary.
	ImageMbn ImageKind = "mbn"
	// ImageUnknown is anything else; the transport decides whether to
	// accept it.
	ImageUnknown ImageKind = "unknown"
)

// KindOfImage maps a file name to its image kind by extension.
func KindOfImage(path string) ImageKind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".cwe":
		return ImageCwe
	case ".nvu":
		return ImageNvu
	case ".spk":
		return ImageSpk
	case ".mbn":
		return ImageMbn
	default:
		return ImageUnknown
	}
}
