package ocr

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tsawler/menugrid/model"
)

// ErrNoAnnotation is returned when a Vision response file contains no
// document text annotation, which usually means the OCR run found no text.
var ErrNoAnnotation = errors.New("vision response contains no text annotation")

// Document OCR services store their responses as JSON files; these types
// mirror the subset of the response we consume. Zero-valued coordinates are
// omitted from the JSON, so every field decodes with its zero default.
type visionFile struct {
	Responses []visionResponse `json:"responses"`
}

type visionResponse struct {
	FullTextAnnotation *visionAnnotation `json:"fullTextAnnotation"`
}

type visionAnnotation struct {
	Pages []visionPage `json:"pages"`
}

type visionPage struct {
	Blocks []visionBlock `json:"blocks"`
}

type visionBlock struct {
	Paragraphs []visionParagraph `json:"paragraphs"`
}

type visionParagraph struct {
	Words []visionWord `json:"words"`
}

type visionWord struct {
	Symbols     []visionSymbol `json:"symbols"`
	BoundingBox visionBox      `json:"boundingBox"`
}

type visionSymbol struct {
	Text string `json:"text"`
}

type visionBox struct {
	NormalizedVertices []visionVertex `json:"normalizedVertices"`
}

type visionVertex struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DecodeVision decodes a stored document-OCR JSON response into tokens.
// One token is produced per recognized word: its text is the concatenation
// of the word's symbols and its anchor is the left-bottom corner of the
// word's normalized bounding box. Word order in the response is the
// engine's reading order and is preserved, which is what the TokenStore
// contract requires.
//
// Only the first response in the file is consumed; the flyer is a single
// page and the OCR batch size keeps it in the first output file.
func DecodeVision(r io.Reader) ([]model.Token, error) {
	var file visionFile
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decoding vision response: %w", err)
	}

	if len(file.Responses) == 0 || file.Responses[0].FullTextAnnotation == nil {
		return nil, ErrNoAnnotation
	}

	var tokens []model.Token
	for _, page := range file.Responses[0].FullTextAnnotation.Pages {
		for _, block := range page.Blocks {
			for _, para := range block.Paragraphs {
				for _, word := range para.Words {
					tok, ok := wordToken(word)
					if ok {
						tokens = append(tokens, tok)
					}
				}
			}
		}
	}
	return tokens, nil
}

// wordToken converts one recognized word into a token. Words without
// vertices cannot be positioned and are dropped.
func wordToken(word visionWord) (model.Token, bool) {
	if len(word.BoundingBox.NormalizedVertices) == 0 {
		return model.Token{}, false
	}

	var sb strings.Builder
	for _, sym := range word.Symbols {
		sb.WriteString(sym.Text)
	}
	if sb.Len() == 0 {
		return model.Token{}, false
	}

	verts := word.BoundingBox.NormalizedVertices
	minX, minY := verts[0].X, verts[0].Y
	maxY := verts[0].Y
	for _, v := range verts[1:] {
		if v.X < minX {
			minX = v.X
		}
		if v.Y < minY {
			minY = v.Y
		}
		if v.Y > maxY {
			maxY = v.Y
		}
	}

	return model.Token{
		Text:   sb.String(),
		X:      minX,
		Y:      maxY,
		Height: maxY - minY,
	}, true
}
