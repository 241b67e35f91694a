// Package bridge implements the message exchange between a plugin UI and the
// conversion pipeline.
//
// The UI sends two kinds of messages:
//
//	{"type": "convert-to-autolayout", "options": {"itemSpacing": 8, "padding": {"top": 16}}}
//	{"type": "cancel"}
//
// A convert message runs the pipeline over the host's current selection. The
// host is notified once with a summary and receives a result message:
//
//	{"type": "conversion-result", "result": {"success": 1, "failed": 0, "messages": []}}
//
// With nothing selected the host gets a single notification and no result.
// A cancel message closes the session; anything else is logged and ignored.
//
// [Session.Serve] reads a stream of JSON messages (for example stdin) and
// [StreamHost] writes the host side as newline-delimited JSON, which together
// make the exchange scriptable:
//
//	host := bridge.NewStreamHost(doc, os.Stdout)
//	s := bridge.NewSession(host, pipeline.NewRunner(logger), logger)
//	err := s.Serve(ctx, os.Stdin)
package bridge
