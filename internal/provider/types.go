package provider

import (
	"context"
	"fmt"
)

// Info is the free-form metadata declared by a provider (description,
// package-name, versions, and anything else the manifest carries).
type Info map[string]interface{}

// Record is a read-only snapshot of one registry entry.
type Record struct {
	Name     string   // registry identifier, unique per registry
	Versions []string // declared order; the first entry is the declared version
	Info     Info
}

// Version returns the declared version, or "" when none is listed.
func (r Record) Version() string {
	if len(r.Versions) == 0 {
		return ""
	}
	return r.Versions[0]
}

// Registry exposes installed providers in a stable order.
type Registry interface {
	Providers(ctx context.Context) ([]Record, error)
}

// NotFoundError is returned when a requested provider is not installed.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("No such provider installed: %s", e.Name)
}

// Lookup returns the record named name, if present.
func Lookup(records []Record, name string) (Record, bool) {
	for _, r := range records {
		if r.Name == name {
			return r, true
		}
	}
	return Record{}, false
}

// Static is a fixed, in-memory Registry.
type Static []Record

// Providers implements Registry.
func (s Static) Providers(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s, nil
}
