// SPDX-License-Identifier: MIT
// Package: SEB/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs;
//     constructors themselves never panic.
//   • No hidden globals; everything flows through builderConfig.

package builder

// BuilderOption customizes constructors by mutating a builderConfig before
// the first constructor runs.
type BuilderOption func(*builderConfig)

// WithIDScheme sets how constructors derive sub-unit names from indices.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithTag makes every sub-unit a constructor creates share tag, and with it
// its symbols (Rg_tag, beta_tag, ...). The empty tag, the default, lets each
// sub-unit use its own name.
func WithTag(tag string) BuilderOption {
	return func(c *builderConfig) {
		c.tag = tag
	}
}

// WithHubName renames the hub sub-unit of Star. Panics on the empty name.
func WithHubName(name string) BuilderOption {
	if name == "" {
		panic("builder: WithHubName(\"\")")
	}
	return func(c *builderConfig) {
		c.hub = name
	}
}
