package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChromeFor(t *testing.T) {
	desktop := MobileBreakpoint + 200
	mobile := MobileBreakpoint - 200

	tests := []struct {
		name          string
		path          string
		authenticated bool
		admin         bool
		width         int
		expected      Chrome
	}{
		{
			name:     "the login page renders bare",
			path:     "/login",
			width:    desktop,
			expected: Chrome{Header: HeaderNone},
		},
		{
			name:          "auth pages stay bare even for a signed in viewer",
			path:          "/register",
			authenticated: true,
			width:         desktop,
			expected:      Chrome{Header: HeaderNone},
		},
		{
			name:     "unauthenticated viewers get no chrome anywhere",
			path:     "/dashboard",
			width:    desktop,
			expected: Chrome{Header: HeaderNone},
		},
		{
			name:          "a signed in desktop viewer gets the full chrome",
			path:          "/dashboard",
			authenticated: true,
			width:         desktop,
			expected:      Chrome{ShowSidebar: true, Header: HeaderStandard, DrawerOpen: true},
		},
		{
			name:          "the drawer defaults closed on mobile",
			path:          "/dashboard",
			authenticated: true,
			width:         mobile,
			expected:      Chrome{ShowSidebar: true, Header: HeaderStandard, DrawerOpen: false},
		},
		{
			name:          "administrators get the admin header on admin routes",
			path:          "/admin/users",
			authenticated: true,
			admin:         true,
			width:         desktop,
			expected:      Chrome{ShowSidebar: true, Header: HeaderAdmin, DrawerOpen: true},
		},
		{
			name:          "non administrators on an admin route keep the standard header",
			path:          "/admin/users",
			authenticated: true,
			width:         desktop,
			expected:      Chrome{ShowSidebar: true, Header: HeaderStandard, DrawerOpen: true},
		},
		{
			name:          "administrators outside the admin area keep the standard header",
			path:          "/dashboard",
			authenticated: true,
			admin:         true,
			width:         desktop,
			expected:      Chrome{ShowSidebar: true, Header: HeaderStandard, DrawerOpen: true},
		},
		{
			name:          "trailing slashes do not change the derivation",
			path:          "/login/",
			authenticated: true,
			width:         desktop,
			expected:      Chrome{Header: HeaderNone},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ChromeFor(tt.path, tt.authenticated, tt.admin, tt.width))
		})
	}
}

func TestDrawer(t *testing.T) {
	desktop := MobileBreakpoint + 200
	mobile := MobileBreakpoint - 200

	t.Run("defaults open on desktop and closed on mobile", func(t *testing.T) {
		assert.True(t, NewDrawer("/dashboard", desktop).Open())
		assert.False(t, NewDrawer("/dashboard", mobile).Open())
	})

	t.Run("navigation resets a toggled drawer", func(t *testing.T) {
		d := NewDrawer("/dashboard", mobile)

		d.Toggle()
		assert.True(t, d.Open())

		d.Navigate("/rooms")
		assert.False(t, d.Open())
	})

	t.Run("re-navigating to the same route keeps the user's choice", func(t *testing.T) {
		d := NewDrawer("/dashboard", mobile)

		d.Toggle()
		d.Navigate("/dashboard/")

		assert.True(t, d.Open())
	})

	t.Run("crossing the breakpoint resets to the new default", func(t *testing.T) {
		d := NewDrawer("/dashboard", desktop)

		d.Toggle()
		assert.False(t, d.Open())

		d.Resize(mobile)
		assert.False(t, d.Open())

		d.Resize(desktop)
		assert.True(t, d.Open())
	})

	t.Run("a same side resize leaves the drawer alone", func(t *testing.T) {
		d := NewDrawer("/dashboard", desktop)

		d.Toggle()
		d.Resize(desktop + 100)

		assert.False(t, d.Open())
	})
}
