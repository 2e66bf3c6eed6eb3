// Package web serves the dashboard over HTTP for a browser front end.
//
// The gateway owns one process-wide session, like the terminal client does,
// and exposes it through JSON routes. Guards run as middleware: while the
// saved session is still being restored a route answers 503 with
// {"state":"loading"}, a redirect becomes a 302 and everything else reaches
// the handler.
package web
