// Package client is the authenticated request gateway of the console.
//
// Every call to the NauticalFlow backend goes through HTTPClient.Request.
// It attaches the stored bearer token, sends the request once and turns
// the response into either a *Response or a *RequestError:
//
//   - no response at all: ErrUnavailable
//   - 401 on an authenticated call: ErrUnauthorized, and the session is
//     terminated through the SessionTerminator before the call returns
//   - other statuses outside 2xx: ErrRejected, with the server's message
//   - 2xx with a body that is not JSON: ErrProtocol
//
// A 2xx response without a body is a valid, empty *Response.
//
// Login and Ping are typed wrappers over Request for the public endpoints.
package client
