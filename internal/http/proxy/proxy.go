// Package proxy forwards /api/ai requests to the external AI service.
package proxy

import (
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"hirepulse/internal/http/response"
)

// New returns a reverse proxy that rewrites the given path prefix before
// forwarding. There is no retry and no timeout override here: upstream
// failures surface as 502 and slow upstreams block the caller.
func New(target *url.URL, stripPrefix, addPrefix string) http.Handler {
	rp := httputil.NewSingleHostReverseProxy(target)
	director := rp.Director
	rp.Director = func(req *http.Request) {
		director(req)
		req.URL.Path = addPrefix + strings.TrimPrefix(req.URL.Path, stripPrefix)
		if req.URL.Path == addPrefix {
			req.URL.Path = addPrefix + "/"
		}
		req.Host = target.Host
	}
	rp.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		response.JSON(w, http.StatusBadGateway, map[string]interface{}{
			"success": false,
			"message": "AI service unavailable",
			"error":   err.Error(),
		})
	}
	return rp
}
