package domain

import (
	"fmt"
	"unicode/utf8"

	"github.com/adiwijaya-dev/forum-api/internal/errors"
)

// Payload is a decoded JSON object. Every mutation payload passes through a
// value object constructor that validates it against an explicit schema
// before anything reaches storage.
type Payload = map[string]any

type fieldKind int

const (
	kindString fieldKind = iota
)

type field struct {
	name       string
	kind       fieldKind
	constraint func(value any) error
}

// verifyPayload checks the payload in three passes: presence of every
// required field, then declared types, then domain constraints. The first
// failure wins; construction is atomic.
func verifyPayload(p Payload, schema []field) error {
	for _, f := range schema {
		if v, ok := p[f.name]; !ok || v == nil {
			return errors.MissingField(f.name)
		}
	}
	for _, f := range schema {
		switch f.kind {
		case kindString:
			if _, ok := p[f.name].(string); !ok {
				return errors.TypeMismatch(f.name)
			}
		}
	}
	for _, f := range schema {
		if f.constraint == nil {
			continue
		}
		if err := f.constraint(p[f.name]); err != nil {
			return err
		}
	}
	return nil
}

func maxRunes(name string, limit int) func(value any) error {
	return func(value any) error {
		s, _ := value.(string)
		if utf8.RuneCountInString(s) > limit {
			return errors.LimitExceeded(fmt.Sprintf("%s must be at most %d characters", name, limit))
		}
		return nil
	}
}

func stringField(p Payload, name string) string {
	s, _ := p[name].(string)
	return s
}
