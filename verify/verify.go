// Package verify re-checks an icon artifact on disk against the
// current design, for wiring into build pipelines.
package verify

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/h2non/filetype"

	"atomicon/ico"
	"atomicon/icon"
)

// Run executes the artifact checks and returns an exit code (0=all
// pass, 1=any fail).
func Run(path string) int {
	fmt.Println("atomicon check - icon artifact verification")
	fmt.Println("===========================================")

	want := ico.Encode(icon.Render())

	allPass := true

	data, ok := checkReadable(path, len(want))
	if !ok {
		allPass = false
	}
	if allPass && !checkSignature(data) {
		allPass = false
	}
	if allPass && !checkGeometry(data) {
		allPass = false
	}
	if allPass && !checkContent(data, want) {
		allPass = false
	}

	fmt.Println()
	if allPass {
		fmt.Println("All checks passed!")
		return 0
	}
	fmt.Println("Some checks failed. See details above.")
	return 1
}

func checkReadable(path string, wantSize int) ([]byte, bool) {
	fmt.Println()
	fmt.Println("[1/4] Artifact readable")

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("  FAIL: %v\n", err)
		return nil, false
	}
	if len(data) != wantSize {
		fmt.Printf("  FAIL: size is %d bytes, want %d\n", len(data), wantSize)
		return nil, false
	}
	fmt.Printf("  PASS: %d bytes\n", len(data))
	return data, true
}

func checkSignature(data []byte) bool {
	fmt.Println()
	fmt.Println("[2/4] Container signature")

	if !filetype.Is(data, "ico") {
		fmt.Println("  FAIL: file does not carry an icon signature")
		return false
	}
	fmt.Println("  PASS: icon signature detected")
	return true
}

// checkGeometry runs after the exact size check, so the fixed header
// offsets below are always in bounds.
func checkGeometry(data []byte) bool {
	fmt.Println()
	fmt.Println("[3/4] Header geometry")

	if count := binary.LittleEndian.Uint16(data[4:]); count != 1 {
		fmt.Printf("  FAIL: directory holds %d images, want 1\n", count)
		return false
	}
	if data[6] != icon.Size || data[7] != icon.Size {
		fmt.Printf("  FAIL: entry reports %dx%d, want %dx%d\n", data[6], data[7], icon.Size, icon.Size)
		return false
	}
	bpp := binary.LittleEndian.Uint16(data[12:])
	if bpp != 32 {
		fmt.Printf("  FAIL: %d bits per pixel, want 32\n", bpp)
		return false
	}
	offset := binary.LittleEndian.Uint32(data[18:])
	if offset != ico.ImageOffset {
		fmt.Printf("  FAIL: bitmap at offset %d, want %d\n", offset, ico.ImageOffset)
		return false
	}
	if height := binary.LittleEndian.Uint32(data[ico.ImageOffset+8:]); height != icon.Size*2 {
		fmt.Printf("  FAIL: bitmap height field is %d, want %d\n", height, icon.Size*2)
		return false
	}
	fmt.Printf("  PASS: %dx%d, %d-bit, bitmap at offset %d\n", data[6], data[7], bpp, offset)
	return true
}

func checkContent(data, want []byte) bool {
	fmt.Println()
	fmt.Println("[4/4] Pixel content")

	if !bytes.Equal(data, want) {
		for i := range data {
			if data[i] != want[i] {
				fmt.Printf("  FAIL: first mismatch at byte %d (have 0x%02x, want 0x%02x)\n", i, data[i], want[i])
				return false
			}
		}
		fmt.Println("  FAIL: content differs")
		return false
	}
	fmt.Println("  PASS: byte-identical to a fresh render")
	return true
}
