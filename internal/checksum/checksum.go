package checksum

import (
	"crypto/sha256"
	"fmt"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// DocumentHash computes the SHA256 fingerprint of a fetched document.
// Formula: SHA256(url|len|body). Logged per run so layout drift between
// runs is visible without diffing raw HTML.
func (g *Generator) DocumentHash(url string, body []byte) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%d|", url, len(body))
	h.Write(body)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// VerifyDocumentHash checks a fingerprint against a document.
func (g *Generator) VerifyDocumentHash(expectedHash, url string, body []byte) bool {
	return g.DocumentHash(url, body) == expectedHash
}
