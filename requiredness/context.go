package requiredness

import (
	"fmt"
	"strings"
)

// Context is the axis along which requiredness varies: an HTTP method for
// request parameters or Response for entity fields.
type Context string

const (
	Get     Context = "GET"
	Post    Context = "POST"
	Put     Context = "PUT"
	Patch   Context = "PATCH"
	Delete  Context = "DELETE"
	Head    Context = "HEAD"
	Options Context = "OPTIONS"
	Trace   Context = "TRACE"

	Response Context = "response"
)

// Methods lists the request contexts in the order they are documented.
var Methods = []Context{Get, Post, Put, Patch, Delete, Head, Options, Trace}

func (c Context) IsMethod() bool {
	switch c {
	case Get, Post, Put, Patch, Delete, Head, Options, Trace:
		return true
	}
	return false
}

func (c Context) Valid() bool {
	return c == Response || c.IsMethod()
}

func (c Context) String() string { return string(c) }

// ParseContext accepts method tokens in any case and the literal "response".
func ParseContext(s string) (Context, error) {
	s = strings.TrimSpace(s)
	if s == string(Response) {
		return Response, nil
	}

	if c := Context(strings.ToUpper(s)); c.IsMethod() {
		return c, nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidContext, s)
}

// ParseContexts parses a comma separated context list such as "GET,POST,response".
func ParseContexts(list string) ([]Context, error) {
	out := make([]Context, 0)

	for part := range strings.SplitSeq(list, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		c, err := ParseContext(part)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	return out, nil
}
