package sheet

import (
	"time"

	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

// Level bounds
const (
	MinLevel = 1
	MaxLevel = 20
)

// DefaultCharacterID is the id used when a caller does not name a character
const DefaultCharacterID = "default"

// HitPoints holds current and cached maximum hit points
type HitPoints struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

// Profile is presentation data with no effect on derived numbers
type Profile struct {
	Name      string `json:"name"`
	Gender    string `json:"gender"`
	Ancestry  string `json:"ancestry"`
	Class     string `json:"class"`
	Deity     string `json:"deity,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// Feat is a selected feat. At most one feat exists per (LevelGained, Type).
type Feat struct {
	LevelGained int    `json:"levelGained"`
	Type        string `json:"type"`
	FeatKey     string `json:"featKey"`
	Name        string `json:"name"`
	Source      string `json:"source,omitempty"`
	URL         string `json:"url,omitempty"`
}

// SkillProficiency is the rank held in one skill
type SkillProficiency struct {
	Rank        rules.Rank `json:"rank"`
	LevelGained int        `json:"levelGained"`
	Source      string     `json:"source,omitempty"`
}

// StoryLog is one generated narrative line
type StoryLog struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Actions   []string  `json:"actions,omitempty"`
	Fallback  bool      `json:"fallback,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// State is the persisted root of a character
type State struct {
	CharacterID string                      `json:"characterId"`
	Level       int                         `json:"level"`
	Abilities   map[rules.Ability]int       `json:"abilities"`
	HP          HitPoints                   `json:"hp"`
	Gear        []GearItem                  `json:"gear"`
	Spells      Spellbook                   `json:"spells"`
	Feats       []Feat                      `json:"feats"`
	Skills      map[string]SkillProficiency `json:"skills"`
	StoryLogs   []StoryLog                  `json:"storyLogs"`
	Profile     Profile                     `json:"profile"`
	Notes       string                      `json:"notes"`
}

// ClampLevel bounds a requested level to 1..20
func ClampLevel(level int) int {
	switch {
	case level < MinLevel:
		return MinLevel
	case level > MaxLevel:
		return MaxLevel
	default:
		return level
	}
}

// SetLevel stores the clamped level and returns it
func (s *State) SetLevel(level int) int {
	s.Level = ClampLevel(level)
	return s.Level
}

// SetMaxHP updates the cached maximum and pulls current HP into range
func (s *State) SetMaxHP(maxHP int) {
	if maxHP < 0 {
		maxHP = 0
	}
	s.HP.Max = maxHP
	s.SetHP(s.HP.Current)
}

// SetHP stores current HP clamped to [0, max]
func (s *State) SetHP(value int) int {
	switch {
	case value < 0:
		value = 0
	case value > s.HP.Max:
		value = s.HP.Max
	}
	s.HP.Current = value
	return value
}

// AdjustHP applies a delta to current HP with the same clamp as SetHP
func (s *State) AdjustHP(delta int) int {
	return s.SetHP(s.HP.Current + delta)
}

// Score returns the base (level 1) score for an ability
func (s *State) Score(a rules.Ability) int {
	return s.Abilities[a]
}

// SelectFeat stores f, replacing whatever occupied its (LevelGained, Type)
// slot. It reports whether a feat was replaced.
func (s *State) SelectFeat(f Feat) bool {
	for i, existing := range s.Feats {
		if existing.LevelGained == f.LevelGained && existing.Type == f.Type {
			s.Feats[i] = f
			return true
		}
	}
	s.Feats = append(s.Feats, f)
	return false
}

// RemoveFeat drops the feat in the given slot
func (s *State) RemoveFeat(levelGained int, featType string) bool {
	for i, existing := range s.Feats {
		if existing.LevelGained == levelGained && existing.Type == featType {
			s.Feats = append(s.Feats[:i], s.Feats[i+1:]...)
			return true
		}
	}
	return false
}

// SetSkill records a skill rank. Untrained entries are removed.
func (s *State) SetSkill(key string, prof SkillProficiency) {
	if s.Skills == nil {
		s.Skills = make(map[string]SkillProficiency)
	}
	if prof.Rank == rules.Untrained || prof.Rank == "" {
		delete(s.Skills, key)
		return
	}
	s.Skills[key] = prof
}

// SkillRank returns the rank held in a skill, untrained when absent
func (s *State) SkillRank(key string) rules.Rank {
	if prof, ok := s.Skills[key]; ok && prof.Rank.Valid() {
		return prof.Rank
	}
	return rules.Untrained
}

// Clone deep-copies the state so callers can mutate freely
func (s *State) Clone() *State {
	out := *s

	out.Abilities = make(map[rules.Ability]int, len(s.Abilities))
	for k, v := range s.Abilities {
		out.Abilities[k] = v
	}

	out.Gear = make([]GearItem, len(s.Gear))
	for i, g := range s.Gear {
		out.Gear[i] = g.clone()
	}

	out.Spells = s.Spells.Clone()
	out.Feats = append([]Feat(nil), s.Feats...)

	out.Skills = make(map[string]SkillProficiency, len(s.Skills))
	for k, v := range s.Skills {
		out.Skills[k] = v
	}

	out.StoryLogs = make([]StoryLog, len(s.StoryLogs))
	for i, l := range s.StoryLogs {
		l.Actions = append([]string(nil), l.Actions...)
		out.StoryLogs[i] = l
	}

	return &out
}
