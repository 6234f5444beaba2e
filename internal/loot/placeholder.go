package loot

import "strings"

// optionalMarker is the trailing segment that makes a placeholder optional.
const optionalMarker = "o"

// Placeholder is a material slot parsed out of an item name, e.g.
// "[Metal/Wood/o]" has Keys ["Metal", "Wood"] and Optional true.
type Placeholder struct {
	Keys     []string
	Optional bool
}

// segment is either literal text or a placeholder.
type segment struct {
	text  string
	token *Placeholder
}

// ParsePlaceholders returns the placeholders of name in order of appearance.
func ParsePlaceholders(name string) []Placeholder {
	var out []Placeholder
	for _, seg := range parseTemplate(name) {
		if seg.token != nil {
			out = append(out, *seg.token)
		}
	}
	return out
}

// parseTemplate splits name into literal and placeholder segments, scanning
// left to right. A '[' that does not open a well-formed placeholder is kept
// as literal text and scanning resumes at the next byte.
func parseTemplate(name string) []segment {
	var segs []segment
	var lit strings.Builder
	for i := 0; i < len(name); {
		if name[i] == '[' {
			if ph, n, ok := scanPlaceholder(name[i:]); ok {
				if lit.Len() > 0 {
					segs = append(segs, segment{text: lit.String()})
					lit.Reset()
				}
				segs = append(segs, segment{token: ph})
				i += n
				continue
			}
		}
		lit.WriteByte(name[i])
		i++
	}
	if lit.Len() > 0 {
		segs = append(segs, segment{text: lit.String()})
	}
	return segs
}

// scanPlaceholder matches '[' key ('/' key)* ['/o'] ']' at the start of s,
// where a key is one or more ASCII letters. It returns the placeholder and
// the number of bytes consumed.
func scanPlaceholder(s string) (*Placeholder, int, bool) {
	end := strings.IndexByte(s, ']')
	if end < 0 {
		return nil, 0, false
	}
	body := s[1:end]
	if body == "" {
		return nil, 0, false
	}
	parts := strings.Split(body, "/")
	for _, p := range parts {
		if !IsCategoryKey(p) {
			return nil, 0, false
		}
	}
	ph := &Placeholder{Keys: parts}
	if len(parts) > 1 && parts[len(parts)-1] == optionalMarker {
		ph.Keys = parts[:len(parts)-1]
		ph.Optional = true
	}
	return ph, end + 1, true
}

// IsCategoryKey reports whether s can appear as a key inside a placeholder.
func IsCategoryKey(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}
