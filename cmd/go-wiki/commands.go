package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	wikierrors "github.com/jrsteele09/go-wiki-client/internal/errors"
	"github.com/jrsteele09/go-wiki-client/sessions"
)

var errUsage = errors.New("usage")

func copyToClipboard(text string) error {
	return clipboard.WriteAll(text)
}

func (c *cli) dispatch(ctx context.Context, args []string) error {
	switch args[0] {
	case "login":
		return c.login(ctx, args[1:])
	case "logout":
		return c.logout()
	case "whoami":
		return c.whoami()
	case "page":
		return c.page(ctx, args[1:])
	case "preview":
		return c.preview(ctx, args[1:])
	default:
		return fmt.Errorf("%w: unknown command %q, run `go-wiki help`", errUsage, args[0])
	}
}

func (c *cli) login(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: go-wiki login <username> <password>", errUsage)
	}
	session, err := c.client.Login(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	if err := saveSession(c.sessionFile, session); err != nil {
		return err
	}
	fmt.Fprintf(c.stdout, "Logged in as %s\n", session.User)
	return nil
}

func (c *cli) logout() error {
	c.client.Logout()
	removeSession(c.sessionFile)
	fmt.Fprintln(c.stdout, "Logged out")
	return nil
}

func (c *cli) whoami() error {
	session, ok := c.app.Sessions.Current()
	if !ok {
		return wikierrors.ErrNoSession
	}
	fmt.Fprintln(c.stdout, describeSession(session))
	return nil
}

func describeSession(s sessions.Session) string {
	if s.ExpiresAt.IsZero() {
		return s.User
	}
	return fmt.Sprintf("%s (expires %s)", s.User, s.ExpiresAt.Local().Format("2006-01-02 15:04"))
}

func (c *cli) page(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: go-wiki page get|create|edit ...", errUsage)
	}
	switch args[0] {
	case "get":
		return c.pageGet(ctx, args[1:])
	case "create", "edit":
		if len(args) != 3 {
			return fmt.Errorf("%w: go-wiki page %s <path> <file>", errUsage, args[0])
		}
		content, err := readContent(args[2])
		if err != nil {
			return err
		}
		var msg string
		if args[0] == "create" {
			msg, err = c.client.CreatePage(ctx, args[1], content)
		} else {
			msg, err = c.client.UpdatePage(ctx, args[1], content)
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(c.stdout, msg)
		return nil
	default:
		return fmt.Errorf("%w: unknown page command %q", errUsage, args[0])
	}
}

func (c *cli) pageGet(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("page get", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	raw := fs.Bool("raw", false, "print the page markdown instead of HTML")
	copyOut := fs.Bool("copy", false, "copy the page content to the clipboard")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: go-wiki page get [--raw] [--copy] <path>", errUsage)
	}

	get := c.client.GetPage
	if *raw {
		get = c.client.GetRawPage
	}
	page, err := get(ctx, fs.Arg(0))
	if err != nil {
		return err
	}

	if page.Title != "" {
		fmt.Fprintf(c.stdout, "# %s\n\n", page.Title)
	}
	fmt.Fprintln(c.stdout, page.Content)

	if *copyOut {
		if err := c.copyText(page.Content); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		fmt.Fprintln(c.stderr, "Copied to clipboard")
	}
	return nil
}

func (c *cli) preview(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: go-wiki preview <file>", errUsage)
	}
	content, err := readContent(args[0])
	if err != nil {
		return err
	}
	html, err := c.client.Preview(ctx, content)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.stdout, html)
	return nil
}

// readContent reads a markdown file, or stdin when name is "-".
func readContent(name string) (string, error) {
	var (
		data []byte
		err  error
	)
	if name == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	return string(data), nil
}
