package adtsecurehome

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog/log"
)

// debugTransport dumps full requests and responses to the global logger.
// Dumps include the query string and therefore credentials and tokens;
// enable only while troubleshooting.
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if dump, err := httputil.DumpRequestOut(req, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(dump)).Msg("HTTP request")
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if dump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(dump)).Msg("HTTP response")
	}

	return resp, nil
}

// debugLoggingRequested reports whether wire dumps were requested through
// the environment instead of the WithDebugLogging option.
func debugLoggingRequested() bool {
	return os.Getenv("SECUREHOME_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
