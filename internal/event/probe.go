package event

import "github.com/tidwall/gjson"

// A Probe is an ordered list of gjson paths tried in turn against the
// same document. It exists because several Chat event fields have moved
// between payload revisions; each known historical location becomes one
// entry, newest first, and the first hit wins.
type Probe []string

// First returns the first result whose value is a non-empty string.
// A missing path never panics, it just moves on to the next entry.
func (p Probe) First(doc gjson.Result) gjson.Result {
	for _, path := range p {
		if r := doc.Get(path); r.Exists() && r.String() != "" {
			return r
		}
	}
	return gjson.Result{}
}

// FirstString is First reduced to the string value, with "" meaning no
// probe matched.
func (p Probe) FirstString(doc gjson.Result) string {
	return p.First(doc).String()
}

// FirstExisting returns the first result that exists at all, without
// the non-empty requirement. Use it for object-valued paths, where
// emptiness of the stringified form is meaningless.
func (p Probe) FirstExisting(doc gjson.Result) gjson.Result {
	for _, path := range p {
		if r := doc.Get(path); r.Exists() {
			return r
		}
	}
	return gjson.Result{}
}
