package menu

import (
	"errors"
	"testing"
	"time"

	"github.com/tsawler/menugrid/layout"
	"github.com/tsawler/menugrid/model"
	"github.com/tsawler/menugrid/text"
)

// headerStore builds a token store holding the given text inside the
// default template's header region.
func headerStore(headerText string) *model.TokenStore {
	return model.NewTokenStore([]model.Token{
		{Text: headerText, X: 0.08, Y: 0.15, Height: 0.02},
	})
}

func TestResolveStartDate(t *testing.T) {
	tpl := layout.Default()

	tests := []struct {
		name      string
		header    string
		reference time.Time
		want      time.Time
	}{
		{
			"same year",
			"3月15日",
			model.Date(2026, time.February, 10),
			model.Date(2026, time.March, 15),
		},
		{
			"december run rolls into next year",
			"1月5日",
			model.Date(2025, time.December, 20),
			model.Date(2026, time.January, 5),
		},
		{
			"march header from december run",
			"3月15日",
			model.Date(2025, time.December, 1),
			model.Date(2026, time.March, 15),
		},
		{
			"two digit month and day",
			"11月30日",
			model.Date(2026, time.October, 3),
			model.Date(2026, time.November, 30),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex := text.NewExtractor(headerStore(tt.header))
			got, err := ResolveStartDate(ex, tpl, tt.reference)
			if err != nil {
				t.Fatalf("ResolveStartDate() error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ResolveStartDate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveStartDateFullWidthDigits(t *testing.T) {
	// The engine regularly reads the header digits as full-width forms.
	ex := text.NewExtractor(headerStore("３月１５日"))
	got, err := ResolveStartDate(ex, layout.Default(), model.Date(2026, time.February, 1))
	if err != nil {
		t.Fatalf("ResolveStartDate() error: %v", err)
	}
	if want := model.Date(2026, time.March, 15); !got.Equal(want) {
		t.Errorf("ResolveStartDate() = %v, want %v", got, want)
	}
}

func TestResolveStartDateErrors(t *testing.T) {
	tests := []struct {
		name   string
		tokens []model.Token
	}{
		{"empty header region", nil},
		{"garbage text", []model.Token{{Text: "メニュー", X: 0.08, Y: 0.15}}},
		{"missing day marker", []model.Token{{Text: "3月15", X: 0.08, Y: 0.15}}},
		{"not a date", []model.Token{{Text: "abc", X: 0.08, Y: 0.15}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex := text.NewExtractor(model.NewTokenStore(tt.tokens))
			_, err := ResolveStartDate(ex, layout.Default(), model.Date(2026, time.February, 1))
			if err == nil {
				t.Fatal("ResolveStartDate() should fail")
			}
			if !errors.Is(err, ErrHeaderParse) {
				t.Errorf("error = %v, want ErrHeaderParse", err)
			}
		})
	}
}

func TestResolveStartDateMultiTokenHeader(t *testing.T) {
	// The engine may split the header into fragments; concatenation in
	// reading order must reassemble the date text.
	store := model.NewTokenStore([]model.Token{
		{Text: "3月", X: 0.08, Y: 0.15},
		{Text: "15日", X: 0.11, Y: 0.15},
	})
	ex := text.NewExtractor(store)

	got, err := ResolveStartDate(ex, layout.Default(), model.Date(2026, time.February, 1))
	if err != nil {
		t.Fatalf("ResolveStartDate() error: %v", err)
	}
	if want := model.Date(2026, time.March, 15); !got.Equal(want) {
		t.Errorf("ResolveStartDate() = %v, want %v", got, want)
	}
}
