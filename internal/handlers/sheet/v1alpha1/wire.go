package v1alpha1

import (
	"bytes"
	"encoding/json"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	entity "github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet"
	rolllog "github.com/KirkDiggler/rpg-sheet/internal/repositories/roll_log"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

// Request payloads. Every request may name a character; an empty id means
// the server's default character.

// CharacterRequest is the payload of requests that only name a character
type CharacterRequest struct {
	CharacterID string `json:"characterId,omitempty"`
}

// SetLevelRequest is the SetLevel payload
type SetLevelRequest struct {
	CharacterID string `json:"characterId,omitempty"`
	Level       int    `json:"level"`
}

// AdjustHitPointsRequest is the AdjustHitPoints payload
type AdjustHitPointsRequest struct {
	CharacterID string `json:"characterId,omitempty"`
	Delta       int    `json:"delta,omitempty"`
	Value       *int   `json:"value,omitempty"`
}

// AddGearRequest is the AddGear payload
type AddGearRequest struct {
	CharacterID string       `json:"characterId,omitempty"`
	Name        string       `json:"name,omitempty"`
	CatalogKey  string       `json:"catalogKey,omitempty"`
	Quantity    int          `json:"quantity,omitempty"`
	Equipped    bool         `json:"equipped,omitempty"`
	Slot        entity.Slot  `json:"slot,omitempty"`
	Bulk        *rules.Bulk  `json:"bulk,omitempty"`
	Runes       *rules.Runes `json:"runes,omitempty"`
}

// UpdateGearRequest is the UpdateGear payload
type UpdateGearRequest struct {
	CharacterID string       `json:"characterId,omitempty"`
	ItemID      string       `json:"itemId"`
	Name        *string      `json:"name,omitempty"`
	Equipped    *bool        `json:"equipped,omitempty"`
	Quantity    *int         `json:"quantity,omitempty"`
	Slot        *entity.Slot `json:"slot,omitempty"`
	Bulk        *rules.Bulk  `json:"bulk,omitempty"`
	ClearBulk   bool         `json:"clearBulk,omitempty"`
	Runes       *rules.Runes `json:"runes,omitempty"`
}

// ItemRequest names one inventory line
type ItemRequest struct {
	CharacterID string `json:"characterId,omitempty"`
	ItemID      string `json:"itemId"`
}

// PrepareSpellRequest is the PrepareSpell payload
type PrepareSpellRequest struct {
	CharacterID string `json:"characterId,omitempty"`
	Rank        int    `json:"rank"`
	SpellID     string `json:"spellId"`
}

// SpellInstanceRequest names one prepared instance
type SpellInstanceRequest struct {
	CharacterID string `json:"characterId,omitempty"`
	Rank        int    `json:"rank"`
	InstanceID  string `json:"instanceId"`
}

// FontChoiceRequest is the SetDivineFontChoice payload
type FontChoiceRequest struct {
	CharacterID string           `json:"characterId,omitempty"`
	Choice      rules.FontChoice `json:"choice"`
}

// SelectFeatRequest is the SelectFeat payload
type SelectFeatRequest struct {
	CharacterID string      `json:"characterId,omitempty"`
	Feat        entity.Feat `json:"feat"`
}

// RemoveFeatRequest is the RemoveFeat payload
type RemoveFeatRequest struct {
	CharacterID string `json:"characterId,omitempty"`
	LevelGained int    `json:"levelGained"`
	Type        string `json:"type"`
}

// SkillRequest is the SetSkillProficiency payload
type SkillRequest struct {
	CharacterID string     `json:"characterId,omitempty"`
	Skill       string     `json:"skill"`
	Rank        rules.Rank `json:"rank"`
	LevelGained int        `json:"levelGained,omitempty"`
	Source      string     `json:"source,omitempty"`
}

// ProfileRequest is the UpdateProfile payload
type ProfileRequest struct {
	CharacterID string  `json:"characterId,omitempty"`
	Name        *string `json:"name,omitempty"`
	Gender      *string `json:"gender,omitempty"`
}

// NotesRequest is the SetNotes payload
type NotesRequest struct {
	CharacterID string `json:"characterId,omitempty"`
	Notes       string `json:"notes"`
}

// LimitRequest pages the story and roll logs
type LimitRequest struct {
	CharacterID string `json:"characterId,omitempty"`
	Limit       int    `json:"limit,omitempty"`
}

// ImportRequest carries a Pathbuilder document as a nested object
type ImportRequest struct {
	CharacterID string          `json:"characterId,omitempty"`
	Document    json.RawMessage `json:"document"`
}

// RollCheckRequest is the RollCheck payload
type RollCheckRequest struct {
	CharacterID string `json:"characterId,omitempty"`
	Check       string `json:"check"`
	Strike      int    `json:"strike,omitempty"`
}

// RollDamageRequest is the RollDamage payload
type RollDamageRequest struct {
	CharacterID string `json:"characterId,omitempty"`
	Attack      string `json:"attack"`
	Critical    bool   `json:"critical,omitempty"`
}

// Response payloads

// SheetResponse is the computed sheet plus the stored state behind it
type SheetResponse struct {
	Sheet *engine.DerivedSheet `json:"sheet"`
	State *entity.State        `json:"state"`
}

// AddGearResponse adds the new item and suggestions for unmatched names
type AddGearResponse struct {
	SheetResponse
	Item        entity.GearItem `json:"item"`
	Suggestions []string        `json:"suggestions,omitempty"`
}

// PrepareSpellResponse reports the new instance, nil when the rank was full
type PrepareSpellResponse struct {
	SheetResponse
	Spell *entity.PreparedSpell `json:"spell"`
}

// AppliedResponse reports whether a spell action changed anything
type AppliedResponse struct {
	SheetResponse
	Applied bool `json:"applied"`
}

// SelectFeatResponse reports whether a feat was replaced
type SelectFeatResponse struct {
	SheetResponse
	Replaced bool `json:"replaced"`
}

// StoryLogsResponse lists story entries oldest first
type StoryLogsResponse struct {
	Logs []entity.StoryLog `json:"logs"`
}

// ClearedResponse reports how many entries were dropped
type ClearedResponse struct {
	Cleared int `json:"cleared"`
}

// ImportResponse reports what the import could not carry over
type ImportResponse struct {
	SheetResponse
	Unmatched     []string `json:"unmatched,omitempty"`
	DroppedSpells []string `json:"droppedSpells,omitempty"`
}

// ExportResponse carries the Pathbuilder document
type ExportResponse struct {
	Document json.RawMessage `json:"document"`
}

// PortraitResponse carries the new avatar
type PortraitResponse struct {
	SheetResponse
	URL string `json:"url"`
}

// RollResponse carries one logged roll
type RollResponse struct {
	Roll    rolllog.Roll `json:"roll"`
	Natural int          `json:"natural,omitempty"`
}

// RollsResponse lists rolls newest first
type RollsResponse struct {
	Rolls []rolllog.Roll `json:"rolls"`
}

func sheetResponse(out sheet.SheetOutput) SheetResponse {
	return SheetResponse{Sheet: out.Sheet, State: out.State}
}

// decodeStruct turns a Struct payload into a request. Unknown fields are
// rejected so typos surface as InvalidArgument.
func decodeStruct(in *structpb.Struct, into any) error {
	if in == nil || len(in.GetFields()) == 0 {
		return nil
	}

	data, err := protojson.Marshal(in)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed request")
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(into); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed request")
	}
	return nil
}

// encodeStruct renders a response as a Struct
func encodeStruct(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}

	out := &structpb.Struct{}
	if err := protojson.Unmarshal(data, out); err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	return out, nil
}
