// Package input loads the item list a run works on.
package input

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-mini-actor/models"
)

// ItemsField is the object member that holds the item list in the wrapped
// input form {"items": [...]}.
const ItemsField = "items"

// Load reads the JSON file at path and returns its items in order.
//
// An empty or whitespace-only file yields no items and no error. Otherwise
// the content must be a single JSON value, normalized by [Normalize].
// Errors are *NotFoundError, *NotAFileError or *MalformedInputError, all
// carrying the absolute path.
func Load(path string) ([]models.Item, error) {
	resolved, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("error resolving input path %q: %w", path, err)
	}

	info, err := os.Stat(resolved)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: resolved}
		}
		return nil, fmt.Errorf("error reading input %s: %w", resolved, err)
	}
	if !info.Mode().IsRegular() {
		return nil, &NotAFileError{Path: resolved}
	}

	content, err := os.ReadFile(resolved)
	if err != nil {
		return nil, fmt.Errorf("error reading input %s: %w", resolved, err)
	}

	return Parse(resolved, content)
}

var utf8BOM = []byte("\xEF\xBB\xBF")

// Parse decodes already loaded content. A leading UTF-8 byte order mark is
// ignored. source names the origin in errors.
func Parse(source string, content []byte) ([]models.Item, error) {
	content = bytes.TrimPrefix(content, utf8BOM)
	if len(bytes.TrimSpace(content)) == 0 {
		return []models.Item{}, nil
	}

	raw, err := models.ParseItem(content)
	if err != nil {
		return nil, &MalformedInputError{Path: source, Err: err}
	}

	return Normalize(raw), nil
}

// Normalize turns the decoded document into the item sequence:
//   - an object whose "items" member is an array yields that array;
//   - an array yields its elements;
//   - anything else, including {"items": <non-array>}, is a single item.
func Normalize(raw models.Item) []models.Item {
	if items, ok := raw.Field(ItemsField); ok && items.Kind == models.KindArray {
		return items.Array
	}
	if raw.Kind == models.KindArray {
		return raw.Array
	}
	return []models.Item{raw}
}
