// Package sheet holds the mutable character state: level, base ability
// scores, hit points, gear, spellbook, feats, skills and narrative data.
//
// Derived numbers (AC, saves, bonuses) are never stored here; package engine
// computes them from a State on demand. The only logic in this package is
// the clamping each mutation applies and the spellbook slot tracker.
package sheet
