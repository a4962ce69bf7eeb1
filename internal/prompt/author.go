// Package prompt runs the interactive authoring flow that edits a feature
// list from the terminal.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-featuregrid/pkg/feature"
)

// Actions offered by the authoring menu, in menu order.
const (
	ActionAdd = iota
	ActionEdit
	ActionRemove
	ActionMove
	ActionDone
)

var actionLabels = []string{
	ActionAdd:    "Add feature",
	ActionEdit:   "Edit feature",
	ActionRemove: "Remove feature",
	ActionMove:   "Swap two features",
	ActionDone:   "Done",
}

// Author edits feature lists through a Driver.
type Author struct {
	driver Driver
	icons  []feature.IconRef
}

// NewAuthor builds an Author. icons are offered as choices when picking a
// feature icon; a free-form entry is always available.
func NewAuthor(driver Driver, icons ...feature.IconRef) *Author {
	return &Author{driver: driver, icons: icons}
}

// Run edits seed until the user picks Done and returns the result.
func (a *Author) Run(ctx context.Context, seed feature.List) (feature.List, error) {
	if a.driver == nil {
		return feature.List{}, errors.New("prompt: driver is required")
	}
	list := seed
	for {
		if err := a.driver.Info(ctx, summary(list)); err != nil {
			return feature.List{}, err
		}
		action, err := a.driver.Select(ctx, SelectConfig{
			Message: "What next?",
			Options: actionLabels,
		})
		if err != nil {
			return feature.List{}, err
		}

		switch action {
		case ActionAdd:
			record, err := a.collect(ctx, feature.Record{})
			if err != nil {
				return feature.List{}, err
			}
			list = list.Append(record)
		case ActionEdit:
			idx, err := a.pick(ctx, list, "Edit which feature?")
			if err != nil {
				return feature.List{}, err
			}
			if idx < 0 {
				continue
			}
			record, err := a.collect(ctx, list.At(idx))
			if err != nil {
				return feature.List{}, err
			}
			if list, err = list.Replace(idx, record); err != nil {
				return feature.List{}, err
			}
		case ActionRemove:
			idx, err := a.pick(ctx, list, "Remove which feature?")
			if err != nil {
				return feature.List{}, err
			}
			if idx < 0 {
				continue
			}
			if list, err = list.Remove(idx); err != nil {
				return feature.List{}, err
			}
		case ActionMove:
			first, err := a.pick(ctx, list, "Swap which feature?")
			if err != nil {
				return feature.List{}, err
			}
			if first < 0 {
				continue
			}
			second, err := a.pick(ctx, list, "With which feature?")
			if err != nil {
				return feature.List{}, err
			}
			if second < 0 {
				continue
			}
			if list, err = list.Swap(first, second); err != nil {
				return feature.List{}, err
			}
		case ActionDone:
			return list, nil
		default:
			return feature.List{}, fmt.Errorf("prompt: unknown action %d", action)
		}
	}
}

func (a *Author) pick(ctx context.Context, list feature.List, message string) (int, error) {
	if list.Len() == 0 {
		return -1, a.driver.Info(ctx, "No features yet.")
	}
	return a.driver.Select(ctx, SelectConfig{
		Message: message,
		Options: list.Titles(),
	})
}

func (a *Author) collect(ctx context.Context, current feature.Record) (feature.Record, error) {
	title, err := a.driver.Input(ctx, InputConfig{
		Message:   "Title",
		Default:   current.Title(),
		Validator: requireText,
	})
	if err != nil {
		return feature.Record{}, err
	}

	icon, err := a.icon(ctx, current.Icon())
	if err != nil {
		return feature.Record{}, err
	}

	description, err := a.driver.TextArea(ctx, TextAreaConfig{
		Message: "Description",
		Help:    "Inline HTML such as <strong> and <a> is kept; everything else is stripped.",
		Default: current.Description().String(),
	})
	if err != nil {
		return feature.Record{}, err
	}

	return feature.New(title, icon, description)
}

func (a *Author) icon(ctx context.Context, current feature.IconRef) (feature.IconRef, error) {
	if len(a.icons) > 0 {
		options := make([]string, 0, len(a.icons)+1)
		defaultIndex := 0
		for i, ref := range a.icons {
			options = append(options, string(ref))
			if ref == current {
				defaultIndex = i
			}
		}
		options = append(options, "Other…")
		idx, err := a.driver.Select(ctx, SelectConfig{
			Message:      "Icon",
			Options:      options,
			DefaultIndex: defaultIndex,
		})
		if err != nil {
			return "", err
		}
		if idx >= 0 && idx < len(a.icons) {
			return a.icons[idx], nil
		}
	}

	ref, err := a.driver.Input(ctx, InputConfig{
		Message:   "Icon reference",
		Default:   string(current),
		Validator: requireText,
	})
	if err != nil {
		return "", err
	}
	return feature.IconRef(ref), nil
}

func requireText(value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New("a value is required")
	}
	return nil
}

func summary(list feature.List) string {
	if list.Len() == 0 {
		return "Features: (none)"
	}
	var b strings.Builder
	b.WriteString("Features:")
	for i, record := range list.All() {
		fmt.Fprintf(&b, "\n  %d. %s [%s]", i+1, record.Title(), record.Icon())
	}
	return b.String()
}
