package platform

import (
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
)

// Command constants
const (
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	CmdCommand     = "cmd"
	StartCommand   = "start"
	WindowsCmdFlag = "/c"
)

// LinuxBrowsers are tried when xdg-open is missing
var LinuxBrowsers = []string{"sensible-browser", "x-www-browser", "firefox", "chromium"}

// ErrInvalidLink is returned for links that cannot be opened externally
var ErrInvalidLink = errors.New("invalid link")

// ValidateLink parses link and requires an absolute http(s) URL with a host.
func ValidateLink(link string) (*url.URL, error) {
	link = strings.TrimSpace(link)
	if link == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidLink)
	}

	parsedURL, err := url.Parse(link)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLink, err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return nil, fmt.Errorf("%w: %q must start with http:// or https://", ErrInvalidLink, link)
	}
	if parsedURL.Host == "" {
		return nil, fmt.Errorf("%w: %q has no host", ErrInvalidLink, link)
	}

	return parsedURL, nil
}

// OpenLink opens link in the system browser. It is used where no Fyne app is
// running to do it, such as the command line.
func OpenLink(link string) error {
	u, err := ValidateLink(link)
	if err != nil {
		return err
	}

	name, args, err := openCommand(runtime.GOOS, u.String())
	if err != nil {
		return err
	}
	if err := exec.Command(name, args...).Run(); err != nil {
		return fmt.Errorf("failed to open %s with %s: %w", u, name, err)
	}
	return nil
}

// openCommand picks the launcher for goos.
func openCommand(goos, link string) (string, []string, error) {
	switch goos {
	case OSDarwin:
		return OpenCommand, []string{link}, nil
	case OSWindows:
		return CmdCommand, []string{WindowsCmdFlag, StartCommand, "", link}, nil
	case OSAndroid:
		return "am", []string{"start", "-a", "android.intent.action.VIEW", "-d", link}, nil
	case OSLinux:
		if _, err := exec.LookPath(XDGOpenCommand); err == nil {
			return XDGOpenCommand, []string{link}, nil
		}
		for _, browser := range LinuxBrowsers {
			if _, err := exec.LookPath(browser); err == nil {
				return browser, []string{link}, nil
			}
		}
		return "", nil, fmt.Errorf("no suitable browser found")
	default:
		return "", nil, fmt.Errorf("unsupported operating system: %s", goos)
	}
}
