package smdump

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// exportedIdent mangles a symbolic name into an exported-style Go identifier
// chunk: separators split words, each word gets an upper-case first letter,
// everything that cannot appear in an identifier is dropped. The caller
// prepends a prefix, so a leading digit in the result is acceptable.
func exportedIdent(name string) (string, error) {
	var b strings.Builder
	upper := true
	for _, r := range name {
		switch {
		case unicode.IsLetter(r):
			if upper {
				b.WriteRune(unicode.ToUpper(r))
				upper = false
			} else {
				b.WriteRune(r)
			}
		case unicode.IsDigit(r):
			b.WriteRune(r)
			upper = true
		default:
			upper = true
		}
	}
	if b.Len() == 0 {
		return "", errors.Join(ErrBadIdentifier, fmt.Errorf("name %q", name))
	}
	return b.String(), nil
}

// identTable assigns prefixed identifiers to every name in order, failing
// when two distinct names mangle to the same identifier.
func identTable(prefix string, names []string) ([]string, error) {
	idents := make([]string, 0, len(names))
	seen := make(map[string]string, len(names))
	for _, name := range names {
		chunk, err := exportedIdent(name)
		if err != nil {
			return nil, err
		}
		ident := prefix + chunk
		if prev, dup := seen[ident]; dup {
			return nil, errors.Join(ErrIdentCollision, fmt.Errorf("%q and %q both map to %s", prev, name, ident))
		}
		seen[ident] = name
		idents = append(idents, ident)
	}
	return idents, nil
}

// validIdent reports whether s is usable as a Go identifier.
func validIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if unicode.IsLetter(r) || r == '_' {
			continue
		}
		if unicode.IsDigit(r) && i > 0 {
			continue
		}
		return false
	}
	return true
}
