package service

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/draw"
	"image/png"

	"lpcgen/api/model"
)

// Compose draws every planned layer into a fresh destination sheet, one
// 64px cell at a time. For each requested animation row and frame column the
// layers are copied back-to-front with source-over alpha from the same grid
// offset of their own source sheet. The destination is created here and
// returned, so concurrent calls never share a surface.
func Compose(layers []model.LayerItem, images LayerImages, animations []string) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, model.SheetWidth, model.SheetHeight))
	for _, name := range animations {
		desc, ok := model.AnimationByName(name)
		if !ok {
			continue
		}
		for frame := 0; frame < desc.FrameCount; frame++ {
			cell := image.Rect(
				frame*model.FrameSize,
				desc.RowIndex*model.FrameSize,
				(frame+1)*model.FrameSize,
				(desc.RowIndex+1)*model.FrameSize,
			)
			for _, layer := range layers {
				src := images[layer.Type][name]
				if src == nil {
					// Guaranteed loaded after planning, but a missing sheet
					// just means nothing to draw for this cell.
					continue
				}
				draw.Draw(dst, cell, src, cell.Min, draw.Over)
			}
		}
	}
	return dst
}

// EncodePNG serializes the composite losslessly.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DataURL wraps an encoded PNG the way browser clients consume it.
func DataURL(data []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(data)
}
