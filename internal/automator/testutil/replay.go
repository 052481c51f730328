package testutil

import (
	"encoding/base64"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// Replayer serves recorded responses to a hijacked Rod page. Requests are
// matched on method and full URL first, then on method and URL without query.
type Replayer struct {
	exact   map[string]*HAREntry
	byPath  map[string]*HAREntry
	verbose bool
	misses  []string
}

type ReplayerOption func(*Replayer)

// WithVerbose logs every matched and unmatched request.
func WithVerbose(enabled bool) ReplayerOption {
	return func(r *Replayer) {
		r.verbose = enabled
	}
}

func NewReplayer(har *HARLog, opts ...ReplayerOption) *Replayer {
	r := &Replayer{
		exact:  make(map[string]*HAREntry),
		byPath: make(map[string]*HAREntry),
	}
	for _, opt := range opts {
		opt(r)
	}

	for i := range har.Entries {
		entry := &har.Entries[i]
		r.exact[matchKey(entry.Request.Method, entry.Request.URL)] = entry

		pathKey := matchKey(entry.Request.Method, stripQuery(entry.Request.URL))
		if _, exists := r.byPath[pathKey]; !exists {
			r.byPath[pathKey] = entry
		}
	}
	return r
}

// Lookup returns the recorded entry for a request, if any.
func (r *Replayer) Lookup(method, rawURL string) (*HAREntry, bool) {
	if entry, ok := r.exact[matchKey(method, rawURL)]; ok {
		return entry, true
	}
	entry, ok := r.byPath[matchKey(method, stripQuery(rawURL))]
	return entry, ok
}

// Middleware returns a Rod hijack handler.
// Use with router.MustAdd("*", replayer.Middleware()).
func (r *Replayer) Middleware() func(*rod.Hijack) {
	return func(ctx *rod.Hijack) {
		method := ctx.Request.Method()
		reqURL := ctx.Request.URL().String()

		entry, ok := r.Lookup(method, reqURL)
		if !ok {
			r.misses = append(r.misses, reqURL)
			if r.verbose {
				log.Printf("[replayer] no match for: %s %s", method, reqURL)
			}
			ctx.Response.Payload().ResponseCode = http.StatusNotFound
			ctx.Response.SetBody(`{"error": "no recording found for URL"}`)
			return
		}

		if r.verbose {
			log.Printf("[replayer] matched: %s %s -> %d", method, reqURL, entry.Response.Status)
		}
		serve(ctx, entry.Response)
	}
}

// Misses returns every URL that had no recording.
func (r *Replayer) Misses() []string {
	return append([]string(nil), r.misses...)
}

func serve(ctx *rod.Hijack, resp HARResponse) {
	body := []byte(resp.Content.Text)
	if resp.Content.Encoding == "base64" {
		if decoded, err := base64.StdEncoding.DecodeString(resp.Content.Text); err == nil {
			body = decoded
		}
	}

	var headers []*proto.FetchHeaderEntry
	hasContentType := false
	for _, h := range resp.Headers {
		switch strings.ToLower(h.Name) {
		case "content-encoding", "content-length":
			continue
		case "content-type":
			hasContentType = true
		}
		headers = append(headers, &proto.FetchHeaderEntry{Name: h.Name, Value: h.Value})
	}
	if !hasContentType && resp.Content.MimeType != "" {
		headers = append(headers, &proto.FetchHeaderEntry{Name: "Content-Type", Value: resp.Content.MimeType})
	}

	payload := ctx.Response.Payload()
	payload.ResponseCode = resp.Status
	payload.ResponseHeaders = headers
	payload.Body = body
}

func matchKey(method, rawURL string) string {
	return strings.ToUpper(method) + " " + rawURL
}

func stripQuery(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return parsed.Scheme + "://" + parsed.Host + parsed.Path
}
