package paystack

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
)

// SignatureHeader is the header Paystack sets on webhook deliveries.
const SignatureHeader = "X-Paystack-Signature"

// Verifier checks webhook authenticity: the header must carry the
// hex-encoded HMAC-SHA512 of the raw request body under the secret key.
type Verifier struct {
	secret []byte
}

func NewVerifier(secretKey string) *Verifier {
	return &Verifier{secret: []byte(secretKey)}
}

// Verify compares the computed digest of body against the header value in
// constant time. The body must be the raw bytes as received; re-serialized
// JSON will not match.
func (v *Verifier) Verify(body []byte, signature string) bool {
	if signature == "" {
		return false
	}
	mac := hmac.New(sha512.New, v.secret)
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
