// Package rules holds the static tables the derived-statistics engine reads:
// the level progression of the cleric build, the equipment catalog and the
// starting character. Data lives in embedded YAML and is decoded once.
//
// Nothing here computes; see package engine for the resolvers.
package rules
