package theme

import (
	"context"
	"fmt"

	"puja_site_echo/internal/services"
)

// StorageKey is the key of the theme preference
const StorageKey = "theme"

// Theme is the colour scheme of the page
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Class returns the root element class for the theme
func (t Theme) Class() string {
	if t == Light {
		return "light"
	}
	return ""
}

// Parse maps a stored value to a theme. Only "light" is light.
func Parse(value string) Theme {
	if value == string(Light) {
		return Light
	}
	return Dark
}

// Load reads the stored preference; an absent key means dark
func Load(ctx context.Context, storage services.Storage) (Theme, error) {
	value, ok, err := storage.Get(ctx, StorageKey)
	if err != nil {
		return Dark, fmt.Errorf("failed to read theme: %w", err)
	}
	if !ok {
		return Dark, nil
	}
	return Parse(value), nil
}

// Toggle flips the stored preference and returns the new theme
func Toggle(ctx context.Context, storage services.Storage) (Theme, error) {
	current, err := Load(ctx, storage)
	if err != nil {
		return current, err
	}

	next := Light
	if current == Light {
		next = Dark
	}

	if err := storage.Set(ctx, StorageKey, string(next)); err != nil {
		return current, fmt.Errorf("failed to persist theme: %w", err)
	}
	return next, nil
}
