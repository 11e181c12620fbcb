package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/jrsteele09/go-wiki-client/app"
	"github.com/jrsteele09/go-wiki-client/interceptor"
	"github.com/jrsteele09/go-wiki-client/internal/config"
	wikierrors "github.com/jrsteele09/go-wiki-client/internal/errors"
	"github.com/jrsteele09/go-wiki-client/internal/logging"
	"github.com/jrsteele09/go-wiki-client/internal/telemetry"
	"github.com/jrsteele09/go-wiki-client/internal/ui"
	"github.com/jrsteele09/go-wiki-client/notifications"
	"github.com/jrsteele09/go-wiki-client/router"
	"github.com/jrsteele09/go-wiki-client/sessions"
	"github.com/jrsteele09/go-wiki-client/wiki"
	"github.com/rs/zerolog/log"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(stderr, "Recovered from panic: %v\n", r)
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	cfg, err := config.New()
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return err
	}
	logging.Setup(cfg, stderr)

	if len(args) == 0 {
		printHelp(stdout, cfg.GetAppName())
		return nil
	}
	switch args[0] {
	case "help", "--help", "-h":
		printHelp(stdout, cfg.GetAppName())
		return nil
	case "version", "--version", "-v":
		fmt.Fprintln(stdout, "go-wiki "+version)
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry := telemetry.Setup(ctx, cfg, "go-wiki")
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Err(err).Msg("telemetry shutdown")
		}
	}()

	c := newCLI(cfg, stdout, stderr)
	if err := c.dispatch(ctx, args); err != nil {
		c.handleLoginRedirect(err)
		if !c.reported {
			fmt.Fprintf(stderr, "error: %v\n", err)
		}
		return err
	}
	return nil
}

// cli is one invocation of the command line client and its application state.
type cli struct {
	cfg         config.Config
	app         *app.Context
	client      *wiki.Client
	sessionFile string
	stdout      io.Writer
	stderr      io.Writer
	copyText    func(string) error

	// reported is set once the user has been shown why a call failed
	reported bool
	// sentToLogin is set when the pipeline navigated to the login route
	sentToLogin bool
}

func newCLI(cfg config.Config, stdout, stderr io.Writer) *cli {
	board := notifications.NewBoard()
	history := router.NewHistory(router.RouteHome)
	c := &cli{
		cfg: cfg,
		app: &app.Context{
			Sessions:      sessions.NewMemoryStore(),
			Notifications: board,
			Router:        history,
		},
		sessionFile: cfg.GetSessionFile(),
		stdout:      stdout,
		stderr:      stderr,
		copyText:    copyToClipboard,
	}

	board.Subscribe(c.showNotification)
	history.OnPush(c.navigate)

	restoreSession(c.sessionFile, c.app.Sessions)

	c.client = wiki.New(cfg.GetBackendURL(), c.app,
		wiki.WithTimeout(cfg.GetRequestTimeout()),
		wiki.WithMaxErrorBodyBytes(cfg.GetMaxErrorBodyBytes()),
		wiki.WithMiddleware(interceptor.Logging()),
	)
	return c
}

func (c *cli) showNotification(n notifications.Notification) {
	fmt.Fprintln(c.stderr, ui.RenderToast(n))
	c.reported = true
}

// navigate records where the pipeline sent us. The only route a command line
// client needs to react to is the login page, handled once the command has failed.
func (c *cli) navigate(path string) {
	if path == router.RouteLogin {
		c.sentToLogin = true
	}
}

// handleLoginRedirect tells the user how to recover from a login redirect.
// Only a rejected token (401) ends the session; a 403 keeps it.
func (c *cli) handleLoginRedirect(err error) {
	if !c.sentToLogin {
		return
	}
	c.reported = true
	if wikierrors.Is(err, wikierrors.ErrUnauthenticated) {
		c.app.Sessions.Clear()
		removeSession(c.sessionFile)
		fmt.Fprintln(c.stderr, "Your session is no longer valid. Run `go-wiki login <username> <password>`.")
		return
	}
	fmt.Fprintln(c.stderr, "Your account is not allowed to do that. Run `go-wiki login <username> <password>` to switch user.")
}

func printHelp(w io.Writer, appName string) {
	fmt.Fprintln(w, figure.NewFigure(appName, "cybermedium", true).String())
	fmt.Fprint(w, `Usage: go-wiki <command> [arguments]

Commands:
  login <username> <password>     log in and remember the session
  logout                          forget the session
  whoami                          show the logged in user
  page get [--raw] [--copy] <path>
                                  print a page (rendered HTML, or markdown with --raw)
  page create <path> <file>       create a page from a markdown file ("-" for stdin)
  page edit <path> <file>         replace a page with a markdown file ("-" for stdin)
  preview <file>                  render a markdown file without saving it
  version                         print the version
`)
}
