package middleware

import "github.com/gin-gonic/gin"

const (
	// OwnerKeyHeader carries the ledger owner key. Authentication proper is
	// handled outside this service; the header is the persistence owner key
	// passed through by the front end.
	OwnerKeyHeader = "X-Owner-Key"

	// DefaultOwnerKey is used when a request names no owner, which keeps
	// single-user deployments header-free.
	DefaultOwnerKey = "default"

	ownerKeyContext = "ownerKey"
)

// OwnerKey returns a middleware that resolves the ledger owner key for the
// request and stores it on the context.
func OwnerKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(OwnerKeyHeader)
		if key == "" {
			key = DefaultOwnerKey
		}
		c.Set(ownerKeyContext, key)
		c.Next()
	}
}

// OwnerKeyFrom extracts the resolved owner key from the Gin context.
func OwnerKeyFrom(c *gin.Context) string {
	if key, ok := c.Get(ownerKeyContext); ok {
		if s, ok := key.(string); ok && s != "" {
			return s
		}
	}
	return DefaultOwnerKey
}
