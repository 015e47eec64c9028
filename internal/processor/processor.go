// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package processor implements the per-item transformation of the actor.
package processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"unicode/utf16"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/MKhiriev/go-mini-actor/internal/logger"
	"github.com/MKhiriev/go-mini-actor/models"
)

// Result is the outcome of processing a single item.
type Result struct {
	// Value is the transformed display string.
	Value string
	// Log is the human-readable annotation stored alongside the value.
	Log string
}

type upperCaseProcessor struct {
	upper cases.Caser
}

// New returns the default [Processor]: it upper-cases the string form of the
// item and annotates it with the item's one-based position.
//
//	"abc" at index 0 → "ABC [processed #1]",
//	"Successfully processed item #1 with length 3."
func New() Processor {
	return &upperCaseProcessor{
		upper: cases.Upper(language.Und),
	}
}

func (p *upperCaseProcessor) Process(ctx context.Context, item models.Item, index int) (Result, error) {
	text, err := Stringify(item)
	if err != nil {
		return Result{}, err
	}

	n := index + 1
	logger.FromContext(ctx).Debug().Msgf("Raw input for item #%d: %s", n, text)

	return Result{
		Value: fmt.Sprintf("%s [processed #%d]", p.upper.String(text), n),
		Log:   fmt.Sprintf("Successfully processed item #%d with length %d.", n, Length(text)),
	}, nil
}

// Stringify renders an item the way it is shown in results:
// strings as-is, numbers in shortest decimal form, arrays and objects as
// compact JSON, booleans as true/false and null as "null". Numbers beyond
// the float64 range read as Infinity or -Infinity.
func Stringify(item models.Item) (string, error) {
	switch item.Kind {
	case models.KindString:
		return item.String, nil
	case models.KindNumber:
		return stringifyNumber(item.Number)
	case models.KindArray, models.KindObject:
		b, err := item.MarshalJSON()
		if err != nil {
			return "", err
		}
		return string(b), nil
	case models.KindBool:
		return strconv.FormatBool(item.Bool), nil
	case models.KindNull:
		return "null", nil
	default:
		return "", fmt.Errorf("cannot stringify item of %s", item.Kind)
	}
}

// Length counts s in UTF-16 code units, so characters outside the Basic
// Multilingual Plane count twice.
func Length(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

func stringifyNumber(n json.Number) (string, error) {
	f, err := strconv.ParseFloat(string(n), 64)
	if (err == nil || errors.Is(err, strconv.ErrRange)) && math.IsInf(f, 0) {
		if f < 0 {
			return "-Infinity", nil
		}
		return "Infinity", nil
	}
	return models.FormatNumber(n)
}
