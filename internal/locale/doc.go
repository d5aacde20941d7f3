// Package locale provides the localized placeholder strings the
// formatting engine inserts when formatting an empty selection.
//
// The locale package provides:
//
//   - Catalog: a thread-safe key/string table; missing keys fall back
//     to the engine's built-in English strings
//   - TOML loading for per-language placeholder tables
//   - Watcher: live reload of a catalog file via fsnotify
//
// A Catalog satisfies the engine's Placeholders interface, so wiring a
// language is:
//
//	cat := locale.NewCatalog()
//	if err := cat.LoadFile("fr.toml"); err != nil { ... }
//	eng := format.New(format.WithPlaceholders(cat))
//
// Catalog files hold a single [placeholders] table:
//
//	[placeholders]
//	bold = "texte en gras"
//	"link.text" = "texte du lien"
package locale
