package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = func(a ...any) { fmt.Println(a...) }

// execIface is the minimal command surface the REPL needs. The real App
// satisfies it; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context, username string)
	StartGame(ctx context.Context)
	Draw(ctx context.Context)
	ShowState(ctx context.Context)
	ShowBoard(ctx context.Context)
}

// runREPL reads commands line by line and dispatches to a. It exits on
// scanner EOF or when the user types "exit" or "quit". Command handlers
// print their own messages; the loop itself never fails.
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner) {
	for {
		printlnFn("ek> ")
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		switch cmd := parts[0]; cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: start, draw, state, board, exit")
			} else {
				printlnFn("Available commands: login <username>, board, exit")
			}

		case "login":
			if len(parts) < 2 {
				printlnFn("Usage: login <username>")
				continue
			}
			a.Login(ctx, parts[1])

		case "start":
			a.StartGame(ctx)

		case "draw":
			a.Draw(ctx)

		case "state":
			a.ShowState(ctx)

		case "board":
			a.ShowBoard(ctx)

		case "exit", "quit":
			return

		default:
			printlnFn(fmt.Sprintf("Unknown command %q, type help", cmd))
		}
	}
}
