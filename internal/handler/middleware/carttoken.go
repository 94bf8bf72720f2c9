package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// CartTokenHeader carries the anonymous cart identity. The client stores
	// it locally and replays it on every cart request.
	CartTokenHeader = "X-Cart-Token"

	ctxCartTokenKey = "cart_token"
)

// CartToken resolves the cart identity for the request. A missing or
// malformed header gets a freshly minted token; either way the token is
// echoed back so the client can persist it.
func CartToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := uuid.Parse(c.GetHeader(CartTokenHeader))
		if err != nil {
			token = uuid.New()
		}

		c.Set(ctxCartTokenKey, token)
		c.Header(CartTokenHeader, token.String())
		c.Next()
	}
}

func GetCartToken(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxCartTokenKey)
	if !exists {
		return uuid.Nil, false
	}
	token, ok := v.(uuid.UUID)
	return token, ok
}
