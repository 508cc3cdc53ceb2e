package linkify

import "strings"

/*
Options is a configuration object used by Tokenize, Find, and Test,
mirroring the teacher pattern of a plain struct plus a documented
default: see NewOptions and DefaultOptions.

Passing nil for the options parameter to Tokenize/Find/Test is equivalent
to passing DefaultOptions. An explicit zero-value Options{} is NOT the
same as DefaultOptions — in particular it disables email detection — so
this should be avoided unless a caller really does want every optional
field turned off.
*/
type Options struct {
	// DefaultProtocol is prefixed onto the href of a schemeless domain
	// match (e.g. "example.com" -> "http://example.com"). Must be a bare
	// ASCII scheme name, no trailing "://" (§4.4).
	DefaultProtocol string

	// DetectEmail enables/disables the EMAIL entity (§4.4, default on).
	DetectEmail bool

	// NL2BR is a pass-through flag for external renderers: it carries no
	// behavior in the core, which never emits markup, only entities
	// (§4.4; §1 "Out of scope: DOM/HTML walking and rewriting").
	NL2BR bool

	// IgnoreTags is passed through verbatim to external collaborators;
	// the core does not interpret it (§4.4).
	IgnoreTags []string

	// Validate, if non-nil, is consulted once per candidate entity before
	// it is accepted: returning false (or panicking, per §7) demotes the
	// entity to inert text. The key is the entity's tag as a string
	// ("url", "email", a custom scheme, …).
	Validate map[string]func(Entity) bool

	// Render, if non-nil, transforms an accepted entity for external
	// rendering. The core never calls it — Tokenize/Find/Test are pure —
	// so Render lives on Options purely so the struct can be handed,
	// unmodified, to the external rendering collaborator.
	Render map[string]func(Entity) string

	// The following are passed through verbatim for external rendering
	// collaborators and are not interpreted by the core (§4.4).
	TagName      string
	Attributes   map[string]string
	ClassName    string
	Target       string
	Rel          string
	Format       func(Entity) string
	FormatHref   func(string) string
	Truncate     int
}

// DefaultOptions is used whenever nil is passed to Tokenize, Find, or
// Test. It should be used for most use cases.
var DefaultOptions = Options{
	DefaultProtocol: "http",
	DetectEmail:     true,
}

// NewOptions validates and normalizes an Options value. A nil options
// pointer is treated as &DefaultOptions. The returned error, if any, is an
// *LinkifyError with Kind InvalidOptionValue.
func NewOptions(options *Options) (Options, error) {
	if options == nil {
		return DefaultOptions, nil
	}
	o := *options
	if o.DefaultProtocol == "" {
		o.DefaultProtocol = DefaultOptions.DefaultProtocol
	}
	if !isValidSchemeSyntax(o.DefaultProtocol) {
		return Options{}, newError(InvalidOptionValue,
			"DefaultProtocol %q is not a bare ASCII scheme", o.DefaultProtocol)
	}
	return o, nil
}

// isValidSchemeSyntax reports whether s satisfies §4.5's scheme syntax
// constraints: ASCII-alphanumeric with optional hyphens, first character
// an ASCII letter, length >= 2. It has no "://" suffix — that is a
// separate, boolean registration parameter (optionalSlashSlash).
func isValidSchemeSyntax(s string) bool {
	if len(s) < 2 {
		return false
	}
	if !isASCIILetter(rune(s[0])) {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := rune(s[i])
		if isASCIILetter(c) || isDigit(c) || c == '-' {
			continue
		}
		return false
	}
	return true
}

// runValidate applies options.Validate for the entity's tag, treating a
// panicking validator the same as one that returned false (§7: "User
// validate callbacks that throw are treated as invalid").
func runValidate(options Options, e Entity) (ok bool) {
	fn, has := options.Validate[string(e.Tag)]
	if !has || fn == nil {
		return true
	}
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return fn(e)
}

// buildHref normalizes an entity's href per §4.3 "Output": lowercased
// scheme, default protocol prepended when missing. EntityLocalhost is
// handled identically to EntityURL: §4.3's DOMAIN grammar explicitly
// folds a localhost-terminated span into entity tag URL,
// so by the time an entity carries tag EntityLocalhost at all it is
// because a plugin chose to use that tag directly, and it still wants the
// same schemeless-domain href treatment.
func buildHref(options Options, tag EntityTag, value string) string {
	switch tag {
	case EntityEmail:
		if hasSchemeColon(value, "mailto") {
			return lowerASCIIPrefix(value, len("mailto:"))
		}
		return "mailto:" + value
	case EntityURL, EntityLocalhost:
		if hasAnySchemeColon(value) {
			return lowerScheme(value)
		}
		return options.DefaultProtocol + "://" + value
	default:
		return value
	}
}

// hasAnySchemeColon reports whether value already starts with a
// "scheme:" or "scheme://" prefix, as opposed to a bare "host:port" (§8
// scenario 4, "localhost:8080/path" must still get "http://" prepended,
// not be mistaken for a "localhost:" scheme). The DOMAIN grammar only
// ever follows a bare domain's COLON with digits (a port), while every
// scheme prefix is followed by "//" or by a non-digit, so that is the
// distinguishing test.
func hasAnySchemeColon(value string) bool {
	i := strings.IndexByte(value, ':')
	if i <= 0 || i+1 >= len(value) {
		return false
	}
	for j := 0; j < i; j++ {
		c := rune(value[j])
		if !isASCIILetter(c) && !isDigit(c) && c != '+' && c != '-' && c != '.' {
			return false
		}
	}
	return !isDigit(rune(value[i+1]))
}

func hasSchemeColon(value, scheme string) bool {
	return len(value) > len(scheme) && strings.EqualFold(value[:len(scheme)], scheme) && value[len(scheme)] == ':'
}

func lowerASCIIPrefix(s string, n int) string {
	if n > len(s) {
		n = len(s)
	}
	return strings.ToLower(s[:n]) + s[n:]
}

func lowerScheme(value string) string {
	i := strings.IndexByte(value, ':')
	if i < 0 {
		return value
	}
	return strings.ToLower(value[:i]) + value[i:]
}
