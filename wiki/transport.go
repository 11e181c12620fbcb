package wiki

import (
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// NewTransport returns the base transport every exchange goes through: the default
// transport instrumented with OpenTelemetry spans. Spans are only exported when a
// tracer provider has been installed.
func NewTransport() http.RoundTripper {
	return otelhttp.NewTransport(http.DefaultTransport,
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return "wiki " + r.Method + " " + r.URL.Path
		}),
	)
}
