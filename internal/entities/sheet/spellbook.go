package sheet

import (
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

// SlotLimits supplies the level-derived caps the spellbook enforces
type SlotLimits interface {
	MaxSlots(level, rank int) int
	DivineFontSlots(level int) int
}

// PreparedSpell is one slot-occupying copy of a spell. Preparing the same
// spell twice yields two instances with different InstanceIDs.
type PreparedSpell struct {
	InstanceID string `json:"instanceId"`
	SpellID    string `json:"spellId"`
}

// DivineFont tracks the separate bonus-slot pool
type DivineFont struct {
	Used   int              `json:"used"`
	Choice rules.FontChoice `json:"choice"`
}

// Spellbook tracks prepared instances per rank key. Casting moves an
// instance from Prepared to Expended, so for every rank
// len(Prepared)+len(Expended) never exceeds the slot count and a spent slot
// stays spent until Rest.
type Spellbook struct {
	Prepared map[string][]PreparedSpell `json:"prepared"`
	Expended map[string][]PreparedSpell `json:"expended,omitempty"`
	Font     DivineFont                 `json:"divineFont"`
}

// NewSpellbook returns an empty spellbook holding heal in the font
func NewSpellbook() Spellbook {
	return Spellbook{
		Prepared: make(map[string][]PreparedSpell),
		Expended: make(map[string][]PreparedSpell),
		Font:     DivineFont{Choice: rules.FontHeal},
	}
}

func (b *Spellbook) init() {
	if b.Prepared == nil {
		b.Prepared = make(map[string][]PreparedSpell)
	}
	if b.Expended == nil {
		b.Expended = make(map[string][]PreparedSpell)
	}
}

// PreparedAt returns a copy of the instances prepared at rank
func (b *Spellbook) PreparedAt(rank int) []PreparedSpell {
	return append([]PreparedSpell(nil), b.Prepared[rules.RankKey(rank)]...)
}

// ExpendedAt returns a copy of the instances cast at rank since the last rest
func (b *Spellbook) ExpendedAt(rank int) []PreparedSpell {
	return append([]PreparedSpell(nil), b.Expended[rules.RankKey(rank)]...)
}

// CastCount is the coarse per-rank counter, derived from expended instances
func (b *Spellbook) CastCount(rank int) int {
	return len(b.Expended[rules.RankKey(rank)])
}

// Used is the number of slots occupied at rank, prepared or spent
func (b *Spellbook) Used(rank int) int {
	key := rules.RankKey(rank)
	return len(b.Prepared[key]) + len(b.Expended[key])
}

// PreparedCount totals the prepared, uncast instances above cantrips
func (b *Spellbook) PreparedCount() int {
	total := 0
	for rank := 1; rank <= rules.MaxSpellRank; rank++ {
		total += len(b.Prepared[rules.RankKey(rank)])
	}
	return total
}

// Prepare appends spell at rank if a slot is free. At the cap it leaves the
// book untouched and returns false.
func (b *Spellbook) Prepare(limits SlotLimits, level, rank int, spell PreparedSpell) bool {
	if rank < 0 || rank > rules.MaxSpellRank {
		return false
	}
	if b.Used(rank) >= limits.MaxSlots(level, rank) {
		return false
	}

	b.init()
	key := rules.RankKey(rank)
	b.Prepared[key] = append(b.Prepared[key], spell)
	return true
}

// Unprepare removes the instance if present
func (b *Spellbook) Unprepare(rank int, instanceID string) bool {
	key := rules.RankKey(rank)
	list, idx := b.Prepared[key], indexOf(b.Prepared[key], instanceID)
	if idx < 0 {
		return false
	}
	b.Prepared[key] = append(list[:idx:idx], list[idx+1:]...)
	return true
}

// Cast spends the specific prepared instance. Cantrips are never consumed;
// casting one only checks that it is prepared.
func (b *Spellbook) Cast(rank int, instanceID string) bool {
	key := rules.RankKey(rank)
	list := b.Prepared[key]
	idx := indexOf(list, instanceID)
	if idx < 0 {
		return false
	}
	if rank == 0 {
		return true
	}

	b.init()
	spell := list[idx]
	b.Prepared[key] = append(list[:idx:idx], list[idx+1:]...)
	b.Expended[key] = append(b.Expended[key], spell)
	return true
}

// CastFont spends a divine font slot if any remain
func (b *Spellbook) CastFont(limits SlotLimits, level int) bool {
	if b.Font.Used >= limits.DivineFontSlots(level) {
		return false
	}
	b.Font.Used++
	return true
}

// Rest empties every ranked prepared list and the expended lists and resets
// the font counter. Cantrips stay prepared.
func (b *Spellbook) Rest() {
	cantrips := b.Prepared[rules.CantripKey]

	b.Prepared = make(map[string][]PreparedSpell)
	if len(cantrips) > 0 {
		b.Prepared[rules.CantripKey] = cantrips
	}
	b.Expended = make(map[string][]PreparedSpell)
	b.Font.Used = 0
}

// Clamp trims the book to the caps for level, dropping prepared instances
// from the end first, then expended ones. It reports whether anything
// changed.
func (b *Spellbook) Clamp(limits SlotLimits, level int) bool {
	changed := false

	for rank := 0; rank <= rules.MaxSpellRank; rank++ {
		key := rules.RankKey(rank)
		maxSlots := limits.MaxSlots(level, rank)

		over := b.Used(rank) - maxSlots
		if over <= 0 {
			continue
		}
		changed = true
		b.init()

		prepared := b.Prepared[key]
		drop := min(over, len(prepared))
		b.Prepared[key] = prepared[:len(prepared)-drop]
		over -= drop

		if over > 0 {
			expended := b.Expended[key]
			b.Expended[key] = expended[:len(expended)-over]
		}
	}

	if fontMax := limits.DivineFontSlots(level); b.Font.Used > fontMax {
		b.Font.Used = fontMax
		changed = true
	}

	return changed
}

// Clone deep-copies the spellbook
func (b Spellbook) Clone() Spellbook {
	out := Spellbook{
		Prepared: make(map[string][]PreparedSpell, len(b.Prepared)),
		Expended: make(map[string][]PreparedSpell, len(b.Expended)),
		Font:     b.Font,
	}
	for k, v := range b.Prepared {
		out.Prepared[k] = append([]PreparedSpell(nil), v...)
	}
	for k, v := range b.Expended {
		out.Expended[k] = append([]PreparedSpell(nil), v...)
	}
	return out
}

func indexOf(list []PreparedSpell, instanceID string) int {
	for i, s := range list {
		if s.InstanceID == instanceID {
			return i
		}
	}
	return -1
}
