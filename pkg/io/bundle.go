package io

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/triangulator/pkg/grid"
	"github.com/matzehuels/triangulator/pkg/piece"
)

type bundle struct {
	Pieces []bundlePiece `json:"pieces"`
}

type bundlePiece struct {
	ID   int    `json:"id"`
	Row  int    `json:"row"`
	Col  int    `json:"col"`
	Half string `json:"half"`
	PNG  []byte `json:"png"`
}

// MarshalPieces packs pieces into a JSON bundle.
func MarshalPieces(pieces []piece.Piece) ([]byte, error) {
	out := bundle{Pieces: make([]bundlePiece, len(pieces))}
	for i, p := range pieces {
		var buf bytes.Buffer
		if err := WritePNG(p.Image, &buf); err != nil {
			return nil, fmt.Errorf("piece %d: %w", p.ID, err)
		}
		out.Pieces[i] = bundlePiece{
			ID:   p.ID,
			Row:  p.Row,
			Col:  p.Col,
			Half: p.Half.String(),
			PNG:  buf.Bytes(),
		}
	}
	return json.Marshal(out)
}

// UnmarshalPieces restores pieces packed by [MarshalPieces].
func UnmarshalPieces(data []byte) ([]piece.Piece, error) {
	var in bundle
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	pieces := make([]piece.Piece, len(in.Pieces))
	for i, bp := range in.Pieces {
		half, ok := grid.ParseHalf(bp.Half)
		if !ok {
			return nil, fmt.Errorf("piece %d: unknown half %q", bp.ID, bp.Half)
		}
		img, err := imaging.Decode(bytes.NewReader(bp.PNG))
		if err != nil {
			return nil, fmt.Errorf("piece %d: %w", bp.ID, err)
		}
		pieces[i] = piece.Piece{
			ID:    bp.ID,
			Row:   bp.Row,
			Col:   bp.Col,
			Half:  half,
			Image: imaging.Clone(img),
		}
	}
	return pieces, nil
}
