package format

// Placeholders supplies localized placeholder strings for empty-selection
// formatting. Implementations return "" for unknown keys; the engine
// falls back to its built-in English strings.
type Placeholders interface {
	Placeholder(key string) string
}

// englishPlaceholders are the built-in defaults.
var englishPlaceholders = map[string]string{
	KeyBold:     "bold text",
	KeyItalic:   "italic text",
	KeyCode:     "code",
	KeyLinkText: "link text",
	KeyLinkURL:  "url",
}

// Engine applies formatting operations to buffer snapshots. The engine
// itself holds only configuration (placeholder provider, registered
// custom commands); it never retains buffer state between calls.
type Engine struct {
	placeholders Placeholders
	custom       map[string]WrapCommand
}

// Option configures an Engine.
type Option func(*Engine)

// WithPlaceholders sets the localized placeholder provider.
func WithPlaceholders(p Placeholders) Option {
	return func(e *Engine) {
		e.placeholders = p
	}
}

// New creates an engine. Without options it uses the built-in English
// placeholder strings.
func New(opts ...Option) *Engine {
	e := &Engine{
		custom: make(map[string]WrapCommand),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// placeholder resolves a placeholder key through the configured provider,
// falling back to the built-in English strings.
func (e *Engine) placeholder(key string) string {
	if e.placeholders != nil {
		if s := e.placeholders.Placeholder(key); s != "" {
			return s
		}
	}
	return englishPlaceholders[key]
}

// defaultEngine backs the package-level convenience functions.
var defaultEngine = New()
