package linkify

import (
	"sync"
	"sync/atomic"
)

/*
Cache (§5 "Concurrency", §6 RegisterCustomProtocol/RegisterPlugin): both
FSMs are immutable once built, so any number of goroutines can call
Tokenize/Find/Test concurrently without locking. Registration calls
(RegisterCustomProtocol, RegisterPlugin, RegisterTokenPlugin, Reset) are
writers: they take snapMu, rebuild both FSMs from scratch, and publish the
new pair with a single atomic store. A reader that loaded the old
snapshot a moment before a swap keeps using it safely — it was never
mutated, only superseded.
*/

type snapshot struct {
	chars  *charFSM
	tokens *tokenFSM
}

var (
	snapMu        sync.Mutex
	snapPtr       atomic.Pointer[snapshot]
	customSchemes []customScheme
	plugins       = &pluginRegistry{}
)

func init() {
	rebuildLocked()
}

// rebuildLocked must be called with snapMu held.
func rebuildLocked() {
	cf := buildCharFSM(customSchemes)
	plugins.applyChar(cf)
	tf := buildTokenFSM(customSchemes)
	plugins.applyToken(tf)
	snapPtr.Store(&snapshot{chars: cf, tokens: tf})
}

func currentSnapshot() *snapshot {
	return snapPtr.Load()
}

// RegisterCustomProtocol registers a custom scheme recognized by both the
// scanner and the parser (§4.5). Re-registering the same name with the
// same optionalSlashSlash is a no-op; registering it again with a
// different flag replaces the earlier registration.
func RegisterCustomProtocol(name string, optionalSlashSlash bool) error {
	if !isValidSchemeSyntax(name) {
		return newError(InvalidScheme, "%q is not a valid scheme name", name)
	}
	snapMu.Lock()
	defer snapMu.Unlock()
	for i, cs := range customSchemes {
		if cs.name == name {
			if cs.slashSlash == optionalSlashSlash {
				return nil
			}
			customSchemes[i].slashSlash = optionalSlashSlash
			rebuildLocked()
			return nil
		}
	}
	customSchemes = append(customSchemes, customScheme{name: name, slashSlash: optionalSlashSlash})
	rebuildLocked()
	return nil
}

// RegisterPlugin registers a character-level plugin (§6, §9 "Plugin
// extensibility"). deps names plugins that must already be registered;
// an unresolved name returns an error whose Kind is
// UnknownPluginDependency.
func RegisterPlugin(name string, deps []string, plugin CharPlugin) error {
	snapMu.Lock()
	defer snapMu.Unlock()
	if err := plugins.registerPlugin(name, deps, plugin); err != nil {
		return err
	}
	rebuildLocked()
	return nil
}

// RegisterTokenPlugin registers a token-level plugin, the parser-side
// counterpart to RegisterPlugin.
func RegisterTokenPlugin(name string, deps []string, plugin TokenPlugin) error {
	snapMu.Lock()
	defer snapMu.Unlock()
	if err := plugins.registerTokenPlugin(name, deps, plugin); err != nil {
		return err
	}
	rebuildLocked()
	return nil
}

// Reset clears every custom scheme and plugin registration, restoring the
// library to its just-imported state. Clearing plugins along with
// schemes (rather than leaving registered plugins in place) is the
// resolution to an Open Question recorded in DESIGN.md: a caller that
// wants a clean slate for tests should get one in full.
func Reset() {
	snapMu.Lock()
	defer snapMu.Unlock()
	customSchemes = nil
	plugins = &pluginRegistry{}
	rebuildLocked()
}
