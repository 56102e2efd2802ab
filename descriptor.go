// descriptor.go
// --------------
// This file defines the EndpointDescriptor type and the path expansion logic
// that turns a descriptor plus caller-supplied metadata into a concrete
// request path.
//
// A descriptor is static data: {id, path template, verb, body/metadata
// requirements}. The placeholders in a descriptor's path template are exactly
// the metadata keys the caller must supply; a missing key is a caller error
// reported before any network activity. Metadata keys that do not match a
// placeholder become query parameters.
package scorebridge

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// EndpointDescriptor describes one API operation. Descriptors are defined at
// process start in the endpoint table and never mutated.
type EndpointDescriptor struct {
	ID               string
	PathTemplate     string // contains {name} placeholders
	Verb             string // GET, POST, PUT, PATCH, or DELETE
	RequiresBody     bool
	RequiresMetadata bool
}

// Metadata maps placeholder names to string or numeric values. It fills path
// placeholders first; leftover keys are sent as query parameters. A fresh map
// is expected per call and is not retained.
type Metadata map[string]interface{}

// LookupEndpoint returns the descriptor for an endpoint id.
func LookupEndpoint(id string) (EndpointDescriptor, error) {
	desc, ok := endpoints[id]
	if !ok {
		return EndpointDescriptor{}, fmt.Errorf("unknown endpoint %q", id)
	}
	return desc, nil
}

// Endpoints returns every registered descriptor, sorted by id.
func Endpoints() []EndpointDescriptor {
	out := make([]EndpointDescriptor, 0, len(endpoints))
	for _, desc := range endpoints {
		out = append(out, desc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// templatePlaceholders extracts the placeholder names from a path template in
// order of appearance.
func templatePlaceholders(template string) []string {
	var names []string
	rest := template
	for {
		open := strings.Index(rest, "{")
		if open < 0 {
			return names
		}
		closing := strings.Index(rest[open:], "}")
		if closing < 0 {
			return names
		}
		names = append(names, rest[open+1:open+closing])
		rest = rest[open+closing+1:]
	}
}

// expandPath substitutes metadata values into the template's placeholders and
// appends remaining metadata as a sorted query string.
func expandPath(template string, metadata Metadata) (string, error) {
	used := make(map[string]bool, len(metadata))
	path := template
	for _, name := range templatePlaceholders(template) {
		value, ok := metadata[name]
		if !ok {
			return "", fmt.Errorf("missing metadata value for path placeholder %q", name)
		}
		path = strings.Replace(path, "{"+name+"}", url.PathEscape(metadataString(value)), 1)
		used[name] = true
	}

	query := url.Values{}
	for key, value := range metadata {
		if !used[key] {
			query.Set(key, metadataString(value))
		}
	}
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	return path, nil
}

func metadataString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}
