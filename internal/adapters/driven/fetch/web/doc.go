// Package web provides the HTTP implementation of driven.Fetcher.
//
// Requests go through a resty client. Failed attempts (transport errors and
// HTTP status >= 400) are retried a bounded number of times with a constant
// wait between attempts, and every attempt first passes a token-bucket
// throttle that also honours Retry-After from the previous response.
package web
