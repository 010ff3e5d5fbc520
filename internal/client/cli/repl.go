package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Feed(ctx context.Context) error
	Trending(ctx context.Context) error
	ShowPost(ctx context.Context, id string) error
	NewPost(ctx context.Context) error
	EditPost(ctx context.Context, id string) error
	DeletePost(ctx context.Context, id string) error
	Comments(ctx context.Context, id string) error
	AddComment(ctx context.Context, id string) error
	React(ctx context.Context, id string) error
	Collabs(ctx context.Context) error
	ShowCollab(ctx context.Context, id string) error
	Propose(ctx context.Context, postID string) error
	Join(ctx context.Context, id string) error
	Tags(ctx context.Context) error
}

const (
	helpAnonymous = "Available commands: register, login, exit"
	helpLoggedIn  = "Available commands: feed, trending, show <id>, post, edit <id>, rm <id>, " +
		"comments <id>, comment <id>, react <id>, collabs, collab <id>, propose <postID>, " +
		"join <id>, tags, whoami, logout, exit"
)

// runREPL starts a read–eval–print loop for the GalèreBuddy CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command and the second (when present) as a resource id, and dispatches to
// methods on 'a'. Unknown commands are reported back to the user. The loop
// exits on scanner EOF or when the user types "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	// commands taking a resource id as their argument
	withID := map[string]func(context.Context, string) error{
		"show":     a.ShowPost,
		"edit":     a.EditPost,
		"rm":       a.DeletePost,
		"comments": a.Comments,
		"comment":  a.AddComment,
		"react":    a.React,
		"collab":   a.ShowCollab,
		"propose":  a.Propose,
		"join":     a.Join,
	}

	for {
		printlnFn(fmt.Sprintf("galere %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		if handler, ok := withID[cmd]; ok {
			if len(args) == 0 {
				printlnFn(fmt.Sprintf("Usage: %s <id>", cmd))
				continue
			}
			_ = handler(ctx, args[0])
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpAnonymous)
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "feed", "f":
			_ = a.Feed(ctx)

		case "trending":
			_ = a.Trending(ctx)

		case "post":
			_ = a.NewPost(ctx)

		case "collabs":
			_ = a.Collabs(ctx)

		case "tags":
			_ = a.Tags(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
