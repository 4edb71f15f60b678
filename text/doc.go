// Package text extracts text from a token store by page region.
//
// The flyer template is a fixed grid of rectangular cells, so all text
// extraction reduces to one operation: select the tokens whose anchor falls
// inside a region and concatenate their text. Concatenation adds no
// separators because the OCR engine splits logical words into adjacent
// fragments; joining them in reading order reassembles the original text.
//
// By default tokens are joined in the store's emission order, which is the
// engine's reading order. [Extractor.SortByPosition] switches to an explicit
// (y, x) sort of the matched tokens for engines whose emission order proves
// unreliable.
package text
