// Package browser owns the lifecycle of the single automation browser
// session used by a run: executable resolution, launch, navigation, PDF
// rendering and teardown.
package browser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"maersk-tracker/internal/core/logger"
	"maersk-tracker/internal/core/proxy"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"go.uber.org/zap"
)

var (
	// ErrBrowserNotFound is returned when no browser executable could be
	// resolved from the probe list or the managed download.
	ErrBrowserNotFound = errors.New("browser executable not found")
	// ErrNavigation is returned when the portal page did not load within the
	// session timeout.
	ErrNavigation = errors.New("navigation failed")
)

// binaryPaths is the ordered probe list for a system-installed browser.
// The first existing path wins.
var binaryPaths = []string{
	"/usr/bin/google-chrome",
	"/usr/bin/google-chrome-stable",
	"/usr/bin/chromium-browser",
	"/usr/bin/chromium",
	"/snap/bin/chromium",
}

// Config holds the fixed launch options for the browser session.
type Config struct {
	// Headless runs the browser without a visible window.
	Headless bool
	// UserAgent overrides the browser user agent string.
	UserAgent string
	// Proxy optionally routes browser traffic through a forward proxy.
	Proxy proxy.Settings
	// Timeout is the default bound for navigation and element waits.
	Timeout time.Duration
	// NavigationSettle is the extra pause after the document root appears,
	// allowing dynamic content to render.
	NavigationSettle time.Duration
}

// Session is a single live browser automation session. All methods must be
// called from one goroutine; the portal UI state is session-global.
type Session struct {
	launcher  *launcher.Launcher
	browser   *rod.Browser
	page      *rod.Page
	forwarder *proxy.ForwardingProxy
	cfg       Config
	logger    *zap.Logger
}

// Launch resolves a browser executable, starts it with the fixed option set
// and opens a blank page bound to the session timeout.
func Launch(cfg Config) (*Session, error) {
	l := logger.Get()

	bin, err := resolveBinary(binaryPaths)
	if err != nil {
		return nil, err
	}
	l.Info("Using browser executable", zap.String("path", bin))

	lc := launcher.New().
		Headless(cfg.Headless).
		NoSandbox(true).
		Bin(bin).
		Set("disable-gpu").
		Set("disable-dev-shm-usage").
		Set("disable-extensions").
		Set("disable-blink-features", "AutomationControlled").
		Set("user-agent", cfg.UserAgent)

	// Chromium cannot take proxy credentials on the command line; run the
	// local forwarding proxy when credentials are configured.
	var fwd *proxy.ForwardingProxy
	if cfg.Proxy.HasProxy() {
		if cfg.Proxy.Username != "" && cfg.Proxy.Password != "" {
			fwd, err = proxy.NewForwardingProxy(cfg.Proxy.FullURL())
			if err != nil {
				return nil, err
			}
			addr, err := fwd.Start(context.Background())
			if err != nil {
				return nil, fmt.Errorf("failed to start proxy forwarder: %w", err)
			}
			lc = lc.Proxy(addr)
			l.Debug("Browser configured with authenticated proxy", zap.String("local_addr", addr))
		} else {
			lc = lc.Proxy(cfg.Proxy.HostPort())
			l.Debug("Browser configured with proxy", zap.String("proxy", cfg.Proxy.HostPort()))
		}
	}

	u, err := lc.Launch()
	if err != nil {
		stopForwarder(fwd)
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	b := rod.New().ControlURL(u)
	if err := b.Connect(); err != nil {
		lc.Cleanup()
		stopForwarder(fwd)
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	page, err := b.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		_ = b.Close()
		lc.Cleanup()
		stopForwarder(fwd)
		return nil, fmt.Errorf("failed to open page: %w", err)
	}

	return &Session{
		launcher:  lc,
		browser:   b,
		page:      page,
		forwarder: fwd,
		cfg:       cfg,
		logger:    l,
	}, nil
}

func stopForwarder(fwd *proxy.ForwardingProxy) {
	if fwd != nil {
		_ = fwd.Stop()
	}
}

// resolveBinary probes the fixed path list in order and falls back to rod's
// managed browser download when nothing is installed.
func resolveBinary(paths []string) (string, error) {
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	logger.Get().Warn("Browser binary not found in standard locations, downloading managed browser")
	bin, err := launcher.NewBrowser().Get()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBrowserNotFound, err)
	}
	return bin, nil
}

// Navigate loads the given URL, blocks until the document root is present
// and then waits the configured settle delay.
func (s *Session) Navigate(url string) error {
	if err := s.page.Timeout(s.cfg.Timeout).Navigate(url); err != nil {
		return fmt.Errorf("%w: %v", ErrNavigation, err)
	}
	if _, err := s.page.Timeout(s.cfg.Timeout).Element("body"); err != nil {
		return fmt.Errorf("%w: document root never appeared: %v", ErrNavigation, err)
	}
	time.Sleep(s.cfg.NavigationSettle)
	return nil
}

// Page returns the active page handle for interaction calls.
func (s *Session) Page() *rod.Page {
	return s.page
}

// Timeout returns the session's default wait bound.
func (s *Session) Timeout() time.Duration {
	return s.cfg.Timeout
}

// PDF renders the given page to a PDF document using the fixed print
// configuration: A4 paper, 0.4in margins, background rendering, 0.8 scale.
func (s *Session) PDF(page *rod.Page) ([]byte, error) {
	margin := 0.4
	scale := 0.8
	paperWidth := 8.27
	paperHeight := 11.69

	r, err := page.PDF(&proto.PagePrintToPDF{
		PrintBackground: true,
		MarginTop:       &margin,
		MarginBottom:    &margin,
		MarginLeft:      &margin,
		MarginRight:     &margin,
		Scale:           &scale,
		PaperWidth:      &paperWidth,
		PaperHeight:     &paperHeight,
	})
	if err != nil {
		return nil, fmt.Errorf("print to pdf failed: %w", err)
	}
	return io.ReadAll(r)
}

// Close releases all session resources. It is safe to call on a nil session
// or after a partially failed launch, and must run exactly once per run.
func (s *Session) Close() {
	if s == nil {
		return
	}
	if s.browser != nil {
		if err := s.browser.Close(); err != nil {
			s.logger.Warn("Browser close failed", zap.Error(err))
		}
		s.browser = nil
	}
	if s.launcher != nil {
		s.launcher.Cleanup()
		s.launcher = nil
	}
	if s.forwarder != nil {
		if err := s.forwarder.Stop(); err != nil {
			s.logger.Warn("Proxy forwarder stop failed", zap.Error(err))
		}
		s.forwarder = nil
	}
}
