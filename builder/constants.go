// Package builder defines shared constants used by the World constructors,
// keeping method tags, default names and minima in one place.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodChain is the canonical name for the Chain constructor.
	MethodChain = "Chain"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodWrap is the canonical name for the Wrap constructor.
	MethodWrap = "Wrap"
	// MethodDescribe is the canonical name for the Describe constructor.
	MethodDescribe = "Describe"
)

//-----------------------------------------------------------------------------
// Description step ops
//-----------------------------------------------------------------------------

const (
	// OpAdd adds an unconnected sub-unit (World.AddKind).
	OpAdd = "add"
	// OpLink links a new sub-unit to an existing one (World.LinkKind).
	OpLink = "link"
	// OpStructure wraps a graph in a structure (World.AddStructure).
	OpStructure = "structure"
	// OpLinkStructure wraps a graph and joins it to an existing structure
	// (World.LinkStructures).
	OpLinkStructure = "linkstructure"
)

//-----------------------------------------------------------------------------
// Defaults and minima
//-----------------------------------------------------------------------------

// CenterName is the default name of the hub sub-unit of Star.
const CenterName = "Center"

// SampleMarker at the end of Star's hub reference asks for one labelled
// sample of a distributed reference point per arm.
const SampleMarker = "#"

// MinChainSubunits is the smallest chain: a single sub-unit.
const MinChainSubunits = 1

// MinStarArms is the smallest star: a hub with one arm.
const MinStarArms = 1
