package ui

import (
	"testing"

	"github.com/five82/wolfy/internal/wolfram"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 {
		t.Fatalf("ThemeNames() returned %d names, want 3", len(names))
	}
	if names[0] != "Nightfox" || names[1] != "Kanagawa" || names[2] != "Slate" {
		t.Fatalf("ThemeNames() = %v, want [Nightfox Kanagawa Slate]", names)
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Nightfox"); got != "Kanagawa" {
		t.Fatalf("NextTheme(Nightfox) = %q, want Kanagawa", got)
	}
	if got := NextTheme("Slate"); got != "Nightfox" {
		t.Fatalf("NextTheme(Slate) = %q, want Nightfox", got)
	}
	if got := NextTheme("unknown"); got != "Nightfox" {
		t.Fatalf("NextTheme(unknown) = %q, want Nightfox", got)
	}
}

func TestGetTheme_UnknownFallsBack(t *testing.T) {
	if got := GetTheme("Solarized").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(Solarized).Name = %q, want Nightfox", got)
	}
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		if th.Name != name {
			t.Fatalf("GetTheme(%q).Name = %q", name, th.Name)
		}
		for _, e := range endpointOrder {
			if th.EndpointColors[string(e)] == "" {
				t.Fatalf("theme %s has no color for endpoint %s", name, e)
			}
		}
	}
}

func TestParseEndpoint(t *testing.T) {
	cases := map[string]Endpoint{
		"":          EndpointShort,
		"short":     EndpointShort,
		" Spoken ":  EndpointSpoken,
		"FULL":      EndpointFull,
		"simple":    EndpointSimple,
		"llm-query": EndpointShort,
	}
	for in, want := range cases {
		if got := ParseEndpoint(in); got != want {
			t.Fatalf("ParseEndpoint(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEndpointCycle(t *testing.T) {
	e := EndpointShort
	want := []Endpoint{EndpointSpoken, EndpointFull, EndpointSimple, EndpointShort}
	for _, w := range want {
		e = e.Next()
		if e != w {
			t.Fatalf("Next() = %q, want %q", e, w)
		}
	}
	if got := EndpointShort.Prev(); got != EndpointSimple {
		t.Fatalf("Prev(short) = %q, want simple", got)
	}
	if got := Endpoint("bogus").Next(); got != EndpointShort {
		t.Fatalf("Next(bogus) = %q, want short", got)
	}
}

func TestEndpointPath(t *testing.T) {
	paths := map[Endpoint]string{
		EndpointShort:  wolfram.ResultPath,
		EndpointSpoken: wolfram.SpokenPath,
		EndpointFull:   wolfram.QueryPath,
		EndpointSimple: wolfram.SimplePath,
	}
	for e, want := range paths {
		if got := e.Path(); got != want {
			t.Fatalf("%s.Path() = %q, want %q", e, got, want)
		}
	}
}
