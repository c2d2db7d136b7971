// Package builder assembles Worlds from reusable constructors, in the
// functional-options style: BuildWorld(wopts, bopts, cons...) creates a
// World, resolves the builder configuration and applies the constructors in
// order.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:   a function that mutates builderConfig before use.
//     – WithIDScheme, WithTag, WithHubName.
//   - Naming schemes (IDFn implementations), appended to a prefix:
//     – DefaultIDFn:      decimal strings ("0","1",…).
//     – SymbolIDFn:       single letters ("A"…"Z"); a 27th name is
//     ErrNamesExhausted.
//   - Constructors:
//     – Chain:    sub-units joined end to end.
//     – Star:     arms tethered to one hub, optionally at sampled points of
//     a distributed reference.
//     – Wrap:     wraps the last graph in a structure.
//     – Describe: replays a Document decoded from YAML or TOML.
//
// Guarantees:
//
//   - Determinism: equal constructors and options build Worlds with equal
//     names, graph ids and links.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Runtime errors wrap a builder sentinel (ErrTooFewSubunits,
//     ErrBadDocument, ...) or pass the World's sentinel through, so errors.Is
//     works against both.
package builder
