// Package service runs conversions for the CLI and the HTTP server.
//
// A Converter parses markup, converts it and encodes the result in the
// requested format:
//
//	html  elements are built with vdom.Library and serialized back to HTML,
//	      optionally pretty-printed or minified
//	json  elements are built with jsx.Library (or vdom.Library) and encoded
//	      as JSON
//
// Every conversion is traced with OpenTelemetry and counted in Prometheus:
//
//	htmlconv_conversions_total{format,outcome}
//	htmlconv_conversion_duration_seconds{format}
//	htmlconv_elements_total
//	htmlconv_input_bytes
package service
