// Package stego hides a short token in the alpha channel of a bundled carrier
// image and recovers it again.
//
// Payload bytes are written one per pixel alpha value in raster order, behind
// a 4 byte frame header ('S', 'T', big-endian uint16 length). Images without
// the header are read the legacy way: every alpha byte that is not fully
// opaque (0xFF) is payload.
package stego

import (
	"bytes"
	_ "embed"
	"encoding/binary"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"math"
	"os"
	"path/filepath"

	cn "github.com/tektronix/lib-trial-license-go/constant"
	libErr "github.com/tektronix/lib-trial-license-go/error"
)

//go:embed carrier.png
var carrier []byte

const (
	headerSize = 4
	opaque     = 0xFF
)

var magic = [2]byte{'S', 'T'}

// capacity returns the largest token img can hold behind the frame header
func capacity(img *image.NRGBA) int {
	return max(min(pixels(img)-headerSize, math.MaxUint16), 0)
}

// WriteToken embeds token into the carrier image and saves it as a PNG at path.
func WriteToken(path string, token []byte) error {
	img, err := decodeCarrier()
	if err != nil {
		return err
	}

	if len(token) > capacity(img) {
		return fmt.Errorf("embed %d byte token: %w", len(token), cn.ErrPayloadTooLarge)
	}

	payload := make([]byte, headerSize, headerSize+len(token))
	copy(payload, magic[:])
	binary.BigEndian.PutUint16(payload[2:], uint16(len(token)))
	payload = append(payload, token...)

	setAlpha(img, payload)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return libErr.NewEnvironmentError("create witness directory", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return libErr.NewEnvironmentError("encode witness image", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return libErr.NewEnvironmentError("write witness image", err)
	}

	return nil
}

// ReadToken recovers the token hidden in the PNG at path.
func ReadToken(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open witness image: %w", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode witness image: %w", err)
	}

	alpha := alphaChannel(toNRGBA(img))

	if len(alpha) >= headerSize && alpha[0] == magic[0] && alpha[1] == magic[1] {
		n := int(binary.BigEndian.Uint16(alpha[2:headerSize]))
		if headerSize+n <= len(alpha) {
			return bytes.Clone(alpha[headerSize : headerSize+n]), nil
		}
	}

	token := make([]byte, 0, len(alpha))
	for _, a := range alpha {
		if a != opaque {
			token = append(token, a)
		}
	}

	return token, nil
}

func decodeCarrier() (*image.NRGBA, error) {
	img, err := png.Decode(bytes.NewReader(carrier))
	if err != nil {
		return nil, libErr.NewEnvironmentError("decode carrier image", err)
	}

	return toNRGBA(img), nil
}

// toNRGBA returns img with non-premultiplied alpha so that alpha bytes can be
// set without disturbing the color channels.
func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}

	b := img.Bounds()
	dst := image.NewNRGBA(b)
	draw.Draw(dst, b, img, b.Min, draw.Src)

	return dst
}

func pixels(img *image.NRGBA) int {
	b := img.Bounds()
	return b.Dx() * b.Dy()
}

func setAlpha(img *image.NRGBA, payload []byte) {
	b := img.Bounds()
	n := 0

	for y := b.Min.Y; y < b.Max.Y && n < len(payload); y++ {
		for x := b.Min.X; x < b.Max.X && n < len(payload); x++ {
			img.Pix[img.PixOffset(x, y)+3] = payload[n]
			n++
		}
	}
}

func alphaChannel(img *image.NRGBA) []byte {
	b := img.Bounds()
	out := make([]byte, 0, pixels(img))

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out = append(out, img.Pix[img.PixOffset(x, y)+3])
		}
	}

	return out
}
