package format

import "bytes"

// ImageFormat names a raster format recognised by its signature.
type ImageFormat int

const (
	ImageUnknown ImageFormat = iota
	ImagePNG
	ImageJPEG
	ImageGIF
	ImageBMP
	ImageWebP
	ImageTIFF
	ImageICO
)

func (f ImageFormat) String() string {
	switch f {
	case ImagePNG:
		return "png"
	case ImageJPEG:
		return "jpeg"
	case ImageGIF:
		return "gif"
	case ImageBMP:
		return "bmp"
	case ImageWebP:
		return "webp"
	case ImageTIFF:
		return "tiff"
	case ImageICO:
		return "ico"
	default:
		return "unknown"
	}
}

// Signature is a fixed byte pattern at an offset.
type Signature struct {
	Magic  []byte
	Offset int
	Image  ImageFormat
	// PDF marks the document signature instead of an image.
	PDF bool
}

func (s Signature) matches(data []byte) bool {
	end := s.Offset + len(s.Magic)
	if len(data) < end {
		return false
	}
	return bytes.Equal(data[s.Offset:end], s.Magic)
}

var signatures = []Signature{
	{Magic: []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}, Image: ImagePNG},
	{Magic: []byte{0xFF, 0xD8, 0xFF}, Image: ImageJPEG},
	{Magic: []byte("GIF8"), Image: ImageGIF},
	{Magic: []byte("BM"), Image: ImageBMP},
	{Magic: []byte("RIFF"), Image: ImageWebP},
	{Magic: []byte{'I', 'I', 0x2A, 0x00}, Image: ImageTIFF},
	{Magic: []byte{'M', 'M', 0x00, 0x2A}, Image: ImageTIFF},
	{Magic: []byte{0x00, 0x00, 0x01, 0x00}, Image: ImageICO},
	{Magic: []byte("%PDF"), PDF: true},
}

var webpTag = Signature{Magic: []byte("WEBP"), Offset: 8}

// DetectMagic matches the header against the signature table. RIFF
// containers only count as WebP when "WEBP" follows at offset 8.
func DetectMagic(header []byte) (Signature, bool) {
	for _, sig := range signatures {
		if !sig.matches(header) {
			continue
		}
		if sig.Image == ImageWebP && !webpTag.matches(header) {
			continue
		}
		return sig, true
	}
	return Signature{}, false
}
