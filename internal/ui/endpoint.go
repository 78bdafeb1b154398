package ui

import (
	"strings"

	"github.com/five82/wolfy/internal/wolfram"
)

// Endpoint selects which API the console sends queries to.
type Endpoint string

const (
	EndpointShort  Endpoint = "short"
	EndpointSpoken Endpoint = "spoken"
	EndpointFull   Endpoint = "full"
	EndpointSimple Endpoint = "simple"
)

var endpointOrder = []Endpoint{EndpointShort, EndpointSpoken, EndpointFull, EndpointSimple}

// ParseEndpoint maps a stored preference to an Endpoint, defaulting to short.
func ParseEndpoint(name string) Endpoint {
	e := Endpoint(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range endpointOrder {
		if e == known {
			return e
		}
	}
	return EndpointShort
}

// Next returns the endpoint after e in the tab cycle.
func (e Endpoint) Next() Endpoint {
	return e.step(1)
}

// Prev returns the endpoint before e in the tab cycle.
func (e Endpoint) Prev() Endpoint {
	return e.step(len(endpointOrder) - 1)
}

func (e Endpoint) step(n int) Endpoint {
	for i, known := range endpointOrder {
		if known == e {
			return endpointOrder[(i+n)%len(endpointOrder)]
		}
	}
	return endpointOrder[0]
}

// Path returns the API path the endpoint calls.
func (e Endpoint) Path() string {
	switch e {
	case EndpointSpoken:
		return wolfram.SpokenPath
	case EndpointFull:
		return wolfram.QueryPath
	case EndpointSimple:
		return wolfram.SimplePath
	default:
		return wolfram.ResultPath
	}
}
