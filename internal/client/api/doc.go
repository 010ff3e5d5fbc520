// Package api implements the access layer for the GalèreBuddy HTTP API.
// It exposes a Client interface with one method per remote operation and an
// HTTP implementation that attaches the bearer token from persisted storage
// to every outgoing request. The layer performs no retries and no caching;
// every call is a fresh round trip.
package api
