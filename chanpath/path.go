// Package chanpath parses and serializes the "panima:" URI that identifies
// the property a Channel animates, grounded on the canonical grammar in
// the channel engine's specification (§4.1, §6):
//
//	uri        := ("panima:")? path ("?" query)?
//	query      := param ("&" param)*
//	param      := name "=" value
//	recognized := components    ; value is comma-separated list
package chanpath

import (
	"net/url"
	"strings"
)

// Path identifies an animated property by a slash-separated path and an
// optional ordered list of components (e.g. "x,z" of a Vector3).
type Path struct {
	path       string
	components []string
	hasComp    bool
}

// New parses a panima URI into a Path. Any scheme other than "panima"
// (or no scheme at all besides a bare path) yields the zero Path. A
// path with malformed percent-escapes is kept as written, without
// unescaping. Parsing never returns an error.
func New(uri string) Path {

	rest := uri
	if idx := strings.IndexByte(uri, ':'); idx >= 0 {
		scheme := uri[:idx]
		if scheme != "panima" {
			return Path{}
		}
		rest = uri[idx+1:]
	}

	pathPart := rest
	queryPart := ""
	if idx := strings.IndexByte(rest, '?'); idx >= 0 {
		pathPart = rest[:idx]
		queryPart = rest[idx+1:]
	}

	pathPart = strings.ReplaceAll(pathPart, "%20", " ")
	unescaped, err := url.QueryUnescape(pathPart)
	if err != nil {
		unescaped = pathPart
	}

	p := Path{path: unescaped}
	for _, param := range strings.Split(queryPart, "&") {
		if param == "" {
			continue
		}
		kv := strings.SplitN(param, "=", 2)
		if len(kv) < 2 {
			continue
		}
		if kv[0] != "components" {
			continue // unrecognized query parameters are ignored
		}
		parts := strings.Split(kv[1], ",")
		comps := make([]string, len(parts))
		for i, c := range parts {
			u, err := url.QueryUnescape(c)
			if err != nil {
				u = c
			}
			comps[i] = u
		}
		p.components = comps
		p.hasComp = true
	}
	return p
}

// PathString returns the path portion, without scheme or query.
func (p Path) PathString() string {

	return p.path
}

// Components returns the ordered component list and whether one was set
// at all (nil+false vs an explicit empty list both round-trip distinctly
// through Equal, matching the source's optional-vector semantics).
func (p Path) Components() ([]string, bool) {

	return p.components, p.hasComp
}

// Equal reports whether two paths target the same property: equal path
// strings, and either both lack components or both have identical,
// order-sensitive component lists.
func (p Path) Equal(other Path) bool {

	if p.path != other.path {
		return false
	}
	if p.hasComp != other.hasComp {
		return false
	}
	if !p.hasComp {
		return true
	}
	if len(p.components) != len(other.components) {
		return false
	}
	for i := range p.components {
		if p.components[i] != other.components[i] {
			return false
		}
	}
	return true
}

// ToURI serializes the path back to its canonical form. When
// includeScheme is true the result is prefixed with "panima:".
func (p Path) ToURI(includeScheme bool) string {

	var b strings.Builder
	if includeScheme {
		b.WriteString("panima:")
	}
	b.WriteString(p.path)
	if p.hasComp && len(p.components) > 0 {
		b.WriteString("?components=")
		b.WriteString(strings.Join(p.components, ","))
	}
	return b.String()
}

// String implements fmt.Stringer, matching the source's operator<<.
func (p Path) String() string {

	return "ChannelPath[" + p.ToURI(true) + "]"
}
