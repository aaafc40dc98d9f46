package flash

import "net/http"

// Options control the attributes of the flash cookie. The cookie is always
// HttpOnly: the carried batch is consumed server-side, never by scripts.
type Options struct {
	Path     string
	Domain   string
	Secure   bool
	SameSite http.SameSite
}

type Option func(*Options)

func WithPath(path string) Option {
	return func(o *Options) {
		o.Path = path
	}
}

func WithDomain(domain string) Option {
	return func(o *Options) {
		o.Domain = domain
	}
}

func WithSecure(secure bool) Option {
	return func(o *Options) {
		o.Secure = secure
	}
}

func WithSameSite(sameSite http.SameSite) Option {
	return func(o *Options) {
		o.SameSite = sameSite
	}
}

// applyOptions copies base and applies the option functions to the copy,
// leaving base untouched.
func applyOptions(base Options, opts []Option) Options {
	result := Options{
		Path:     base.Path,
		Domain:   base.Domain,
		Secure:   base.Secure,
		SameSite: base.SameSite,
	}

	for _, opt := range opts {
		opt(&result)
	}

	return result
}
