package upload

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Category selects which extension allow-list an upload is checked against.
type Category string

const (
	CategoryImage Category = "image"
	CategoryText  Category = "text"
)

// Validator checks declared filenames and payload sizes before anything
// touches disk. Pure predicates, no side effects.
type Validator struct {
	ImageExts   map[string]struct{}
	TextExts    map[string]struct{}
	MaxFileSize int64
}

// NewValidator builds a validator with the default allow-lists and the
// given byte ceiling.
func NewValidator(maxFileSize int64) *Validator {
	return &Validator{
		ImageExts: map[string]struct{}{
			"jpg": {}, "jpeg": {}, "png": {}, "webp": {}, "gif": {},
		},
		TextExts:    map[string]struct{}{"txt": {}},
		MaxFileSize: maxFileSize,
	}
}

// CheckFilename accepts only filenames carrying an extension from the
// allow-list of the category. Comparison is case-insensitive.
func (v *Validator) CheckFilename(filename string, cat Category) error {
	if strings.TrimSpace(filename) == "" {
		return fmt.Errorf("no file selected")
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if ext == "" {
		return fmt.Errorf("file %q has no extension", filename)
	}
	allowed := v.allowList(cat)
	if _, ok := allowed[ext]; !ok {
		return fmt.Errorf("only %s files are allowed: %s", cat, joinSorted(allowed))
	}
	return nil
}

// CheckSize rejects payloads above the configured ceiling.
func (v *Validator) CheckSize(size int64) error {
	if size > v.MaxFileSize {
		return fmt.Errorf(
			"file size exceeds maximum limit of %dMB",
			v.MaxFileSize/(1024*1024),
		)
	}
	return nil
}

func (v *Validator) allowList(cat Category) map[string]struct{} {
	switch cat {
	case CategoryImage:
		return v.ImageExts
	case CategoryText:
		return v.TextExts
	default:
		return nil
	}
}

func joinSorted(set map[string]struct{}) string {
	exts := make([]string, 0, len(set))
	for ext := range set {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return strings.Join(exts, ", ")
}
