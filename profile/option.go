//go:build pprof

package profile

import "github.com/pkg/profile"

// control accumulates the [profile.Profile] options for one session.
type control struct {
	opts []func(*profile.Profile)
}

type controlOption func(control) control

func makeControl(opts ...controlOption) control {
	var c control

	for _, opt := range opts {
		c = opt(c)
	}

	return c
}

func withMode(m string) controlOption {
	return func(c control) control {
		if fn, ok := mode[m]; ok {
			c.opts = append(c.opts, fn)
		}

		return c
	}
}

func withPath(p string) controlOption {
	return func(c control) control {
		if p != "" {
			c.opts = append(c.opts, profile.ProfilePath(p))
		}

		return c
	}
}

func withQuiet(v bool) controlOption {
	return func(c control) control {
		if v {
			c.opts = append(c.opts, profile.Quiet)
		}

		return c
	}
}
