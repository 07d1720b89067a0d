package pagination

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// URLGenerator turns a route and its query parameters into a URL.
type URLGenerator interface {
	Generate(route string, params url.Values) string
}

// AbsoluteURLGenerator produces fully-qualified URLs rooted at Base.
type AbsoluteURLGenerator struct {
	Base *url.URL
}

// Generate joins Base with route. Query parameters are encoded in key order,
// so equal inputs always produce byte-identical URLs.
func (g AbsoluteURLGenerator) Generate(route string, params url.Values) string {
	u := url.URL{Path: route, RawQuery: params.Encode()}
	if g.Base != nil {
		u.Scheme = g.Base.Scheme
		u.Host = g.Base.Host
		u.Path = strings.TrimSuffix(g.Base.Path, "/") + route
	}
	return u.String()
}

// RequestBase derives scheme://host from an incoming request.
func RequestBase(r *http.Request) *url.URL {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto == "https" || proto == "http" {
		scheme = proto
	}
	return &url.URL{Scheme: scheme, Host: r.Host}
}

// LinkSet holds the navigation links of one page. Next and Prev are nil when
// there is no such page.
type LinkSet struct {
	Self  string
	First string
	Last  string
	Next  *string
	Prev  *string
}

// BuildLinks computes the LinkSet of st for route. extra is copied and never
// modified; a "page" entry in it is replaced.
func BuildLinks(gen URLGenerator, route string, st PageState, extra url.Values) LinkSet {
	at := func(page int) string {
		params := make(url.Values, len(extra)+1)
		for k, v := range extra {
			params[k] = append([]string(nil), v...)
		}
		params.Set("page", strconv.Itoa(page))
		return gen.Generate(route, params)
	}

	links := LinkSet{
		Self:  at(st.CurrentPage),
		First: at(1),
		Last:  at(st.LastPage()),
	}
	if st.HasNext {
		next := at(st.NextPage())
		links.Next = &next
	}
	if st.HasPrev {
		prev := at(st.PrevPage())
		links.Prev = &prev
	}
	return links
}
