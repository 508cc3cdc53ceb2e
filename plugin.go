package linkify

/*
Plugin extensibility (§6, §9 "Plugin extensibility"): a plugin gets a
builder over the same FSM primitive the core uses, before the machine is
finalized and published into the cache. Builders never expose the raw
node arena itself, only the add_literal/add_class/add_chain/set_accepting
surface §9 calls for, plus enough read access (Start, Step, Accepts) for a
plugin to compose with what the core already registered.
*/

// CharBuilder lets a character plugin extend the scanner's FSM before it
// is finalized (§6 RegisterPlugin).
type CharBuilder struct{ f *charFSM }

func (b *CharBuilder) Start() nodeID { return b.f.start }

func (b *CharBuilder) AddLiteral(src nodeID, ch rune, target nodeID) nodeID {
	return b.f.addLiteral(src, ch, target)
}

func (b *CharBuilder) AddClass(src nodeID, pred func(rune) bool, target nodeID) nodeID {
	return b.f.addClass(src, pred, target)
}

// AddChain spells word as a literal chain tagged name on its final node.
func (b *CharBuilder) AddChain(src nodeID, word string, name string) nodeID {
	return b.f.addChain(src, []rune(word), pluginTag(name), 0, simpleTag(tokenWord), groupASCII, nil)
}

func (b *CharBuilder) SetAccepting(id nodeID, name string) {
	b.f.setAccepting(id, pluginTag(name), 0)
}

func (b *CharBuilder) Step(id nodeID, r rune) nodeID { return b.f.step(id, r) }
func (b *CharBuilder) Accepts(id nodeID) bool        { return b.f.accepts(id) }

// TokenBuilder lets a token plugin extend the parser's FSM before it is
// finalized (§6 RegisterTokenPlugin).
type TokenBuilder struct{ f *tokenFSM }

func (b *TokenBuilder) Start() nodeID { return b.f.start }

func (b *TokenBuilder) AddClassOnTag(src nodeID, name string, target nodeID) nodeID {
	return b.f.addClass(src, func(s tokenSym) bool { return s.tag.kind == tokenPlugin && s.tag.name == name }, target)
}

func (b *TokenBuilder) AddLiteralPunct(src nodeID, kind tokenKind, target nodeID) nodeID {
	return b.f.addLiteral(src, tokenSym{tag: simpleTag(kind)}, target)
}

func (b *TokenBuilder) SetAccepting(id nodeID, entityTag string) {
	b.f.setAccepting(id, EntityTag(entityTag), 0)
}

func (b *TokenBuilder) Step(id nodeID, name string) nodeID {
	return b.f.step(id, tokenSym{tag: tokenTag{kind: tokenPlugin, name: name}})
}

func (b *TokenBuilder) Accepts(id nodeID) bool { return b.f.accepts(id) }

func pluginTag(name string) tokenTag { return tokenTag{kind: tokenPlugin, name: name} }

// CharPlugin registers a literal/class extension on the character FSM
// (e.g. a "#" hashtag or "@" mention run); TokenPlugin does the same on
// the token FSM, typically keying off the tags a CharPlugin introduced.
type CharPlugin func(b *CharBuilder)
type TokenPlugin func(b *TokenBuilder)

type pluginRegistry struct {
	charPlugins  []namedCharPlugin
	tokenPlugins []namedTokenPlugin
}

type namedCharPlugin struct {
	name     string
	deps     []string
	plugin   CharPlugin
}

type namedTokenPlugin struct {
	name   string
	deps   []string
	plugin TokenPlugin
}

func (r *pluginRegistry) hasChar(name string) bool {
	for _, p := range r.charPlugins {
		if p.name == name {
			return true
		}
	}
	return false
}

func (r *pluginRegistry) hasToken(name string) bool {
	for _, p := range r.tokenPlugins {
		if p.name == name {
			return true
		}
	}
	return false
}

// registerPlugin validates dependencies (§7 UnknownPluginDependency) and
// appends name/plugin to the registry; it does not itself rebuild any
// FSM — the cache does that on the next snapshot build.
func (r *pluginRegistry) registerPlugin(name string, deps []string, plugin CharPlugin) error {
	for _, d := range deps {
		if !r.hasChar(d) {
			return newError(UnknownPluginDependency, "char plugin %q depends on unregistered plugin %q", name, d)
		}
	}
	r.charPlugins = append(r.charPlugins, namedCharPlugin{name: name, deps: deps, plugin: plugin})
	return nil
}

func (r *pluginRegistry) registerTokenPlugin(name string, deps []string, plugin TokenPlugin) error {
	for _, d := range deps {
		if !r.hasToken(d) {
			return newError(UnknownPluginDependency, "token plugin %q depends on unregistered plugin %q", name, d)
		}
	}
	r.tokenPlugins = append(r.tokenPlugins, namedTokenPlugin{name: name, deps: deps, plugin: plugin})
	return nil
}

func (r *pluginRegistry) applyChar(f *charFSM) {
	b := &CharBuilder{f: f}
	for _, p := range r.charPlugins {
		p.plugin(b)
	}
}

func (r *pluginRegistry) applyToken(f *tokenFSM) {
	b := &TokenBuilder{f: f}
	for _, p := range r.tokenPlugins {
		p.plugin(b)
	}
}
