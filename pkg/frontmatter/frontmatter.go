// Package frontmatter splits markdown documents into YAML frontmatter
// and body content.
package frontmatter

import (
	"bytes"
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrMissingFrontmatter is returned by MustParse when no frontmatter
// block is present.
var ErrMissingFrontmatter = errors.New("missing frontmatter")

// ErrUnclosedFrontmatter is returned when an opening delimiter has no
// matching close.
var ErrUnclosedFrontmatter = errors.New("missing closing frontmatter delimiter")

var delimiter = []byte("---")

// Parse extracts YAML frontmatter from r into matter and returns the
// remaining body. Documents without frontmatter are returned whole as
// the body, which suits files where the block is optional.
func Parse[T any](r io.Reader, matter *T) ([]byte, error) {
	return parse(r, matter, false)
}

// MustParse is Parse for files where frontmatter is required; it fails
// with ErrMissingFrontmatter when the block is absent.
func MustParse[T any](r io.Reader, matter *T) ([]byte, error) {
	return parse(r, matter, true)
}

func parse[T any](r io.Reader, matter *T, required bool) ([]byte, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	block, body, found := split(content)
	if !found {
		if required {
			return nil, ErrMissingFrontmatter
		}
		return content, nil
	}
	if body == nil {
		if required {
			return nil, ErrUnclosedFrontmatter
		}
		return content, nil
	}

	if err := yaml.Unmarshal(block, matter); err != nil {
		return nil, err
	}
	return body, nil
}

// split locates the frontmatter block. It returns found=false when the
// document does not open with a delimiter line, and a nil body when the
// opening delimiter is never closed.
func split(content []byte) (block, body []byte, found bool) {
	rest, ok := cutDelimiterLine(content)
	if !ok {
		return nil, nil, false
	}

	// Scan line by line for the closing delimiter.
	for offset := 0; offset <= len(rest); {
		line := rest[offset:]
		if i := bytes.IndexByte(line, '\n'); i >= 0 {
			line = line[:i]
		}
		if isDelimiterLine(line) {
			block = rest[:offset]
			bodyStart := offset + len(line)
			if bodyStart < len(rest) && rest[bodyStart] == '\n' {
				bodyStart++
			}
			return block, rest[bodyStart:], true
		}
		next := bytes.IndexByte(rest[offset:], '\n')
		if next < 0 {
			break
		}
		offset += next + 1
	}
	return nil, nil, true
}

// cutDelimiterLine strips a leading "---" line, tolerating CRLF.
func cutDelimiterLine(content []byte) ([]byte, bool) {
	if !bytes.HasPrefix(content, delimiter) {
		return nil, false
	}
	rest := content[len(delimiter):]
	if bytes.HasPrefix(rest, []byte("\r\n")) {
		return rest[2:], true
	}
	if bytes.HasPrefix(rest, []byte("\n")) {
		return rest[1:], true
	}
	return nil, false
}

// isDelimiterLine reports whether line is exactly "---" (ignoring a
// trailing carriage return).
func isDelimiterLine(line []byte) bool {
	line = bytes.TrimSuffix(line, []byte("\r"))
	return bytes.Equal(line, delimiter)
}
