// Package cli provides the interactive GalèreBuddy command-line client.
//
// It wires configuration, the local credential store, the API client and
// the session store into an interactive REPL. Typical flow: restore the
// persisted session at startup, then execute user commands against the
// remote feed.
//
// Key features:
//   - Register / Login / Logout with a persisted session
//   - Browse the feed and trending posts, read and publish war-stories
//   - Comment on and react to posts
//   - Propose, browse and join collaborative initiatives
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
