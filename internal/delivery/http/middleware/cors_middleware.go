package middleware

import (
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware allows the Next.js frontend to call the API cross-origin.
// The origin whitelist is strict: production portfolio domains always, the
// configured frontend URL, localhost only outside release mode, and Vercel
// preview deployments prefixed with the project name.
func CORSMiddleware(frontendURL string) gin.HandlerFunc {
	isProduction := os.Getenv("GIN_MODE") == "release"

	productionOrigins := map[string]bool{
		"https://www.fmemije.com": true,
		"https://fmemije.com":     true,
	}
	devOrigins := map[string]bool{
		"http://localhost:3000": true,
		"http://127.0.0.1:3000": true,
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		var isAllowed bool
		switch {
		case origin == "":
			// Same-origin requests carry no Origin header
			isAllowed = true
		case productionOrigins[origin] || origin == frontendURL:
			isAllowed = true
		case !isProduction && devOrigins[origin]:
			isAllowed = true
		case strings.HasPrefix(origin, "https://") && strings.HasSuffix(origin, ".vercel.app"):
			// Only preview deployments of this project, so a lookalike
			// subdomain cannot ride along.
			subdomain := strings.TrimSuffix(strings.TrimPrefix(origin, "https://"), ".vercel.app")
			isAllowed = strings.HasPrefix(subdomain, "fmemije") || strings.Contains(subdomain, "-fmemije-")
		}

		if isAllowed {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, Accept, Origin, Cache-Control, X-Requested-With, X-Request-ID")
			c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PATCH")
			c.Header("Access-Control-Max-Age", "86400")
		}
		c.Header("Vary", "Origin")

		if c.Request.Method == "OPTIONS" {
			if isAllowed {
				c.AbortWithStatus(204)
			} else {
				c.AbortWithStatus(403)
			}
			return
		}

		c.Next()
	}
}
