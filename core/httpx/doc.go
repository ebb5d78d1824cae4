// Package httpx implements the wire protocol this server speaks: parsing of
// incoming requests and byte-exact framing of outgoing responses.
//
// The protocol is HTTP-shaped but not HTTP-conformant. Status lines always
// carry the literal "HTTP/1.x" version, the success status is 233 with reason
// "SUPER OK", and response headers are written in insertion order with no
// canonicalization or value escaping. Deployed clients match on these exact
// bytes, which is why this package frames responses itself instead of going
// through net/http.
//
// Building a response:
//
//	resp := httpx.NewResponse(httpx.StatusOK, httpx.ReasonOK).
//		SetHeader(httpx.HeaderContentType, httpx.ContentTypeHTML).
//		SetBody([]byte("<h1>hello</h1>"))
//	resp.WriteTo(conn)
//
// Parsing a request from a connection:
//
//	req, err := httpx.ReadRequest(bufio.NewReader(conn))
package httpx
