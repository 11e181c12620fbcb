package interceptor

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/jrsteele09/go-wiki-client/notifications"
	"github.com/jrsteele09/go-wiki-client/router"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultForbiddenMessage is shown for a 403 whose body carries no message
	DefaultForbiddenMessage = "Not allowed."

	// DefaultMaxBodyBytes bounds how much of an error body is inspected
	DefaultMaxBodyBytes int64 = 64 << 10
)

// ResponseOption configures ClassifyResponse
type ResponseOption func(*responsePolicy)

// WithMaxBodyBytes limits how many bytes of an error body are read for its message.
func WithMaxBodyBytes(n int64) ResponseOption {
	return func(p *responsePolicy) {
		if n > 0 {
			p.maxBodyBytes = n
		}
	}
}

type responsePolicy struct {
	notifier     notifications.Sink
	navigator    router.Navigator
	maxBodyBytes int64
}

// ClassifyResponse inspects every response before the caller sees it. Auth failures
// navigate to the login route and error bodies are published as a notification.
// The response is handed back unchanged, body included, and transport errors pass through.
func ClassifyResponse(notifier notifications.Sink, navigator router.Navigator, opts ...ResponseOption) Middleware {
	p := &responsePolicy{
		notifier:     notifier,
		navigator:    navigator,
		maxBodyBytes: DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}

	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			resp, err := next.RoundTrip(req)
			if err != nil || resp == nil {
				return resp, err
			}
			if isRedirectHop(resp) {
				// http.Client follows it; only the final response is classified
				return resp, nil
			}
			p.observe(req, resp)
			return resp, nil
		})
	}
}

func (p *responsePolicy) observe(req *http.Request, resp *http.Response) {
	outcome := Classify(resp.StatusCode)

	var body responseBody
	if outcome != Success {
		body = p.peekBody(resp)
	}

	d := decide(outcome, isLoginCall(req, resp), body)

	log.Debug().
		Str("method", req.Method).
		Str("url", req.URL.Redacted()).
		Int("status", resp.StatusCode).
		Str("outcome", outcome.String()).
		Bool("navigate", d.navigate).
		Bool("notify", d.notify).
		Msg("Response classified")

	if d.navigate && p.navigator != nil {
		p.navigator.Push(router.RouteLogin)
	}
	if d.notify && p.notifier != nil {
		p.notifier.Commit(notifications.New(d.severity, d.message))
	}
}

// peekBody reads up to maxBodyBytes of the body and puts the bytes back in front of
// whatever was not read, so the caller can still consume the whole body.
func (p *responsePolicy) peekBody(resp *http.Response) responseBody {
	if resp.Body == nil || resp.Body == http.NoBody {
		return responseBody{}
	}

	peeked, err := io.ReadAll(io.LimitReader(resp.Body, p.maxBodyBytes))
	if err != nil {
		log.Warn().Err(err).Int("status", resp.StatusCode).Msg("Failed to read error body")
	}
	resp.Body = &replayBody{
		Reader: io.MultiReader(bytes.NewReader(peeked), resp.Body),
		Closer: resp.Body,
	}
	return parseBody(peeked)
}

type replayBody struct {
	io.Reader
	io.Closer
}

// isRedirectHop reports whether http.Client will follow resp to another location.
func isRedirectHop(resp *http.Response) bool {
	switch resp.StatusCode {
	case http.StatusMovedPermanently, http.StatusFound, http.StatusSeeOther,
		http.StatusTemporaryRedirect, http.StatusPermanentRedirect:
		return resp.Header.Get("Location") != ""
	}
	return false
}

// isLoginCall reports whether the exchange targeted the login endpoint itself.
// A 401 from it means bad credentials, not an expired session.
func isLoginCall(req *http.Request, resp *http.Response) bool {
	u := req.URL
	if resp.Request != nil && resp.Request.URL != nil {
		u = resp.Request.URL
	}
	return u != nil && strings.HasSuffix(u.Path, router.RouteLogin)
}

// responseBody is what the policy needs to know about an error body.
type responseBody struct {
	present    bool   // Body is non-empty and not JSON null
	hasMessage bool   // Body is a JSON object with a "message" field
	message    string // Value of the "message" field
	raw        string // Body as text
}

func parseBody(data []byte) responseBody {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return responseBody{}
	}

	body := responseBody{present: true, raw: string(data)}

	var object map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &object); err == nil {
		if rawMessage, ok := object["message"]; ok {
			body.hasMessage = true
			body.message = jsonText(rawMessage)
		}
		return body
	}

	// A bare JSON string is shown without its quotes
	var text string
	if err := json.Unmarshal(trimmed, &text); err == nil {
		body.raw = text
	}
	return body
}

func jsonText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return ""
	}
	return string(raw)
}

// decision is the side effect the pipeline applies for one exchange.
type decision struct {
	navigate bool
	notify   bool
	severity notifications.Severity
	message  string
}

func decide(outcome Outcome, loginCall bool, body responseBody) decision {
	var d decision

	switch outcome {
	case Success:
		return d
	case Unauthenticated:
		d.navigate = !loginCall
	case Unauthorized:
		d.navigate = true
	case NotFound, OtherError:
	}

	if !body.present {
		return d
	}

	d.notify = true
	d.severity = notifications.SeverityDanger
	d.message = body.raw
	if outcome == Unauthorized {
		d.message = body.message
		if d.message == "" {
			d.message = DefaultForbiddenMessage
		}
		return d
	}
	if body.hasMessage {
		d.message = body.message
		if outcome == NotFound {
			d.severity = notifications.SeverityWarning
		}
	}
	return d
}
