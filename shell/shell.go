package shell

import "strings"

type HeaderKind string

const (
	HeaderNone     HeaderKind = "none"
	HeaderStandard HeaderKind = "standard"
	HeaderAdmin    HeaderKind = "admin"
)

// MobileBreakpoint is the viewport width, in logical pixels, below which
// the sidebar collapses into a drawer.
const MobileBreakpoint = 768

// Chrome describes the navigation furniture surrounding a view.
type Chrome struct {
	ShowSidebar bool
	Header      HeaderKind

	// DrawerOpen is the device appropriate default, not live drawer state;
	// see Drawer for the transient boolean.
	DrawerOpen bool
}

// authPaths render bare, with no chrome at all.
var authPaths = map[string]struct{}{
	"/login":           {},
	"/register":        {},
	"/forgot-password": {},
	"/reset-password":  {},
}

// ChromeFor derives the chrome purely from the route and the viewer; it
// holds no state and never consults the network.
func ChromeFor(path string, authenticated bool, admin bool, viewportWidth int) Chrome {
	if _, bare := authPaths[normalise(path)]; bare || !authenticated {
		return Chrome{Header: HeaderNone}
	}

	chrome := Chrome{
		ShowSidebar: true,
		Header:      HeaderStandard,
		DrawerOpen:  viewportWidth >= MobileBreakpoint,
	}

	if admin && strings.HasPrefix(normalise(path), "/admin") {
		chrome.Header = HeaderAdmin
	}

	return chrome
}

func normalise(path string) string {
	if path == "" {
		return "/"
	}

	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}

	return path
}

// Drawer is the one piece of transient shell state: an open flag that
// snaps back to the viewport appropriate default whenever the route changes
// or the viewport crosses the mobile breakpoint.
type Drawer struct {
	open   bool
	path   string
	mobile bool
}

func NewDrawer(path string, viewportWidth int) *Drawer {
	mobile := viewportWidth < MobileBreakpoint

	return &Drawer{
		open:   !mobile,
		path:   normalise(path),
		mobile: mobile,
	}
}

func (d *Drawer) Open() bool {
	return d.open
}

func (d *Drawer) Toggle() {
	d.open = !d.open
}

// Navigate records a route change, resetting the drawer to its default so a
// menu opened on the previous view never leaks onto the next one.
func (d *Drawer) Navigate(path string) {
	path = normalise(path)

	if path == d.path {
		return
	}

	d.path = path
	d.open = !d.mobile
}

// Resize resets the drawer only when the viewport crosses the breakpoint;
// same-side resizes leave the user's choice alone.
func (d *Drawer) Resize(viewportWidth int) {
	mobile := viewportWidth < MobileBreakpoint

	if mobile == d.mobile {
		return
	}

	d.mobile = mobile
	d.open = !mobile
}
