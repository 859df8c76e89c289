// Package ico packs a single image into a Windows icon container. The
// container holds one 32-bit BMP-style entry with no color table and no
// AND mask, so the bitmap alpha channel alone controls transparency.
package ico

import (
	"encoding/binary"
	"image"
)

// Fixed section sizes of the container, all fields little-endian.
const (
	FileHeaderSize = 6  // ICONDIR
	DirEntrySize   = 16 // ICONDIRENTRY
	InfoHeaderSize = 40 // BITMAPINFOHEADER

	// ImageOffset is where the bitmap header starts in the file.
	ImageOffset = FileHeaderSize + DirEntrySize
)

// Encode packs img into a complete icon file. Pixel rows are stored
// bottom-up as BGRA with non-premultiplied alpha, matching what img
// already holds, so the output is byte-stable for a given input.
func Encode(img *image.NRGBA) []byte {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	pixelBytes := w * h * 4
	buf := make([]byte, ImageOffset+InfoHeaderSize+pixelBytes)

	// ICONDIR
	binary.LittleEndian.PutUint16(buf[0:], 0) // reserved
	binary.LittleEndian.PutUint16(buf[2:], 1) // resource type: icon
	binary.LittleEndian.PutUint16(buf[4:], 1) // image count

	// ICONDIRENTRY
	buf[6] = byte(w) // width, 0 means 256
	buf[7] = byte(h) // height, 0 means 256
	buf[8] = 0       // color palette size
	buf[9] = 0       // reserved
	binary.LittleEndian.PutUint16(buf[10:], 1)  // color planes
	binary.LittleEndian.PutUint16(buf[12:], 32) // bits per pixel
	// resource byte count, then the offset the bitmap starts at
	binary.LittleEndian.PutUint32(buf[14:], uint32(InfoHeaderSize+pixelBytes))
	binary.LittleEndian.PutUint32(buf[18:], ImageOffset)

	// BITMAPINFOHEADER. Height is doubled: the format expects the XOR
	// bitmap plus an AND mask, and the mask here has zero rows.
	o := ImageOffset
	binary.LittleEndian.PutUint32(buf[o:], InfoHeaderSize)
	binary.LittleEndian.PutUint32(buf[o+4:], uint32(w))
	binary.LittleEndian.PutUint32(buf[o+8:], uint32(h*2))
	binary.LittleEndian.PutUint16(buf[o+12:], 1)  // planes
	binary.LittleEndian.PutUint16(buf[o+14:], 32) // bits per pixel
	binary.LittleEndian.PutUint32(buf[o+16:], 0)  // compression: none
	binary.LittleEndian.PutUint32(buf[o+20:], uint32(pixelBytes))
	// resolution and palette fields stay zero

	o = ImageOffset + InfoHeaderSize
	for y := h - 1; y >= 0; y-- {
		for x := 0; x < w; x++ {
			c := img.NRGBAAt(b.Min.X+x, b.Min.Y+y)
			buf[o] = c.B
			buf[o+1] = c.G
			buf[o+2] = c.R
			buf[o+3] = c.A
			o += 4
		}
	}
	return buf
}
