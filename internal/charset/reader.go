// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package charset reads files written in legacy encodings, trying an
// ordered candidate list and converting the content to UTF-8.
package charset

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// DefaultEncodings is the candidate list tried when the caller does not
// supply one. Word exports of Chinese documents usually declare gb2312
// but contain cp936/GBK bytes, so the superset codepages come first.
var DefaultEncodings = []string{"cp936", "gb2312", "gbk", "utf-8", "iso-8859-1"}

// aliases maps candidate names that the HTML encoding index does not
// know onto names it does.
var aliases = map[string]string{
	"cp936":      "gbk",
	"ms936":      "gbk",
	"windows936": "gbk",
}

// ReadFile reads the file at path and decodes it with the first usable
// candidate encoding. Decoding is lenient: bytes that do not decode are
// dropped rather than failing the read. The returned name is the
// candidate that was used.
//
// ReadFile fails only when the file itself cannot be read or when no
// candidate name resolves to a known encoding.
func ReadFile(path string, candidates []string) (content, used string, err error) {
	if len(candidates) == 0 {
		candidates = DefaultEncodings
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("reading %s: %w", path, err)
	}

	for _, name := range candidates {
		enc := lookup(name)
		if enc == nil {
			continue
		}
		decoded, err := enc.NewDecoder().Bytes(data)
		if err != nil {
			continue
		}
		return dropReplacements(string(decoded)), name, nil
	}

	return "", "", fmt.Errorf("decoding %s: no usable encoding among %v", path, candidates)
}

// lookup resolves a candidate name to an encoding, applying the local
// alias table first. Unknown names resolve to nil.
func lookup(name string) encoding.Encoding {
	name = strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[name]; ok {
		name = canonical
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil
	}
	return enc
}

// dropReplacements removes U+FFFD runes the decoder substituted for
// undecodable bytes, matching the "ignore errors" read semantics.
func dropReplacements(s string) string {
	if !strings.ContainsRune(s, '�') {
		return s
	}
	return strings.Map(func(r rune) rune {
		if r == '�' {
			return -1
		}
		return r
	}, s)
}
