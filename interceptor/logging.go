package interceptor

import (
	"net/http"
	"strconv"
	"time"

	"github.com/jrsteele09/go-wiki-client/internal/ui"
	"github.com/rs/zerolog/log"
)

// Logging writes a debug line per exchange with the method and status coloured for a terminal.
func Logging() Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			start := time.Now()
			resp, err := next.RoundTrip(req)
			elapsed := time.Since(start)

			method := ui.Colorize(ui.MethodColors[req.Method], " "+req.Method, 8)
			if err != nil {
				log.Err(err).Dur("elapsed", elapsed).Msgf("[%s] %s", method, req.URL.Path)
				return resp, err
			}
			status := ui.Colorize(ui.StatusColor(resp.StatusCode), strconv.Itoa(resp.StatusCode), 3)
			log.Debug().Dur("elapsed", elapsed).Msgf("[%s] %s %s", method, status, req.URL.Path)
			return resp, nil
		})
	}
}
