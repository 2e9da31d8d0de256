// Package apiclient is the HTTP client for the FlashLingo REST API.
//
// Every request is sent with the current bearer token obtained from a
// TokenSource (the session store satisfies it). When any response comes back
// with a 401 status the client publishes the session-invalidated signal on
// the bus and returns ErrUnauthorized; the session store, subscribed to that
// signal, clears itself without any explicit logout call. This mirrors the
// classic response-interceptor pattern and keeps credential expiry handling
// out of every individual call site.
//
//	client := apiclient.New(cfg, store, bus)
//	cards, err := client.Flashcards(ctx)
//	if errors.Is(err, apiclient.ErrUnauthorized) {
//		// session is already being cleared; send the user to login
//	}
package apiclient
