package feature

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyTitle is returned when a record is constructed without a title.
	ErrEmptyTitle = errors.New("feature: title is required")

	// ErrEmptyIcon is returned when a record is constructed without an icon
	// reference.
	ErrEmptyIcon = errors.New("feature: icon reference is required")
)

// IconRef is an opaque handle to a vector-graphic asset. The default icon
// resolver treats it as a path inside an fs.FS.
type IconRef string

// String returns the raw reference.
func (r IconRef) String() string {
	return string(r)
}

// RichText is a sanitised HTML fragment. Values are only produced by
// SanitizeDescription so templates can emit them without escaping.
type RichText string

// String returns the sanitised markup.
func (t RichText) String() string {
	return string(t)
}

// Record describes one feature card.
type Record struct {
	title       string
	icon        IconRef
	description RichText
}

// New builds a Record, trimming the title and icon reference and sanitising
// the description markup.
func New(title string, icon IconRef, description string) (Record, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Record{}, ErrEmptyTitle
	}
	ref := IconRef(strings.TrimSpace(string(icon)))
	if ref == "" {
		return Record{}, fmt.Errorf("%w (title %q)", ErrEmptyIcon, title)
	}
	return Record{
		title:       title,
		icon:        ref,
		description: SanitizeDescription(description),
	}, nil
}

// MustNew is New for package-level declarations. It panics on invalid input.
func MustNew(title string, icon IconRef, description string) Record {
	record, err := New(title, icon, description)
	if err != nil {
		panic(err)
	}
	return record
}

// Title returns the card heading.
func (r Record) Title() string {
	return r.title
}

// Icon returns the icon reference.
func (r Record) Icon() IconRef {
	return r.icon
}

// Description returns the sanitised description markup.
func (r Record) Description() RichText {
	return r.description
}

// Equal reports whether two records carry the same content. It lets go-cmp
// compare records without reaching into unexported fields.
func (r Record) Equal(other Record) bool {
	return r.title == other.title && r.icon == other.icon && r.description == other.description
}
