// Package v1alpha1 handles the sheet gRPC service interface
package v1alpha1

import (
	"context"
	"encoding/json"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/checks"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet"
)

// HandlerConfig holds dependencies for the sheet handler
type HandlerConfig struct {
	SheetService  sheet.Service
	ChecksService checks.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.SheetService == nil {
		vb.RequiredField("SheetService")
	}
	if c.ChecksService == nil {
		vb.RequiredField("ChecksService")
	}

	return vb.Build()
}

// Handler implements the sheet gRPC service
type Handler struct {
	sheetService  sheet.Service
	checksService checks.Service
}

// NewHandler creates a new sheet handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		sheetService:  cfg.SheetService,
		checksService: cfg.ChecksService,
	}, nil
}

// handle decodes the payload, runs call and encodes its result. Errors of
// every stage leave as gRPC status errors.
func handle[Req any, Resp any](
	ctx context.Context,
	req *structpb.Struct,
	call func(ctx context.Context, in *Req) (Resp, error),
) (*structpb.Struct, error) {
	in := new(Req)
	if err := decodeStruct(req, in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp, err := call(ctx, in)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := encodeStruct(resp)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}

// GetSheet returns the computed sheet
func (h *Handler) GetSheet(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return handle(ctx, req, func(ctx context.Context, in *CharacterRequest) (*SheetResponse, error) {
		out, err := h.sheetService.GetSheet(ctx, &sheet.GetSheetInput{CharacterID: in.CharacterID})
		if err != nil {
			return nil, err
		}
		resp := sheetResponse(*out)
		return &resp, nil
	})
}

// SetLevel changes the character's level
func (h *Handler) SetLevel(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return handle(ctx, req, func(ctx context.Context, in *SetLevelRequest) (*SheetResponse, error) {
		if in.Level == 0 {
			return nil, errors.InvalidArgument("level is required")
		}
		out, err := h.sheetService.SetLevel(ctx, &sheet.SetLevelInput{
			CharacterID: in.CharacterID,
			Level:       in.Level,
		})
		if err != nil {
			return nil, err
		}
		resp := sheetResponse(*out)
		return &resp, nil
	})
}

// AdjustHitPoints applies damage or healing
func (h *Handler) AdjustHitPoints(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return handle(ctx, req, func(ctx context.Context, in *AdjustHitPointsRequest) (*SheetResponse, error) {
		out, err := h.sheetService.AdjustHitPoints(ctx, &sheet.AdjustHitPointsInput{
			CharacterID: in.CharacterID,
			Delta:       in.Delta,
			Value:       in.Value,
		})
		if err != nil {
			return nil, err
		}
		resp := sheetResponse(*out)
		return &resp, nil
	})
}

// AddGear adds an inventory line
func (h *Handler) AddGear(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return handle(ctx, req, func(ctx context.Context, in *AddGearRequest) (*AddGearResponse, error) {
		out, err := h.sheetService.AddGear(ctx, &sheet.AddGearInput{
			CharacterID: in.CharacterID,
			Name:        in.Name,
			CatalogKey:  in.CatalogKey,
			Quantity:    in.Quantity,
			Equipped:    in.Equipped,
			Slot:        in.Slot,
			Bulk:        in.Bulk,
			Runes:       in.Runes,
		})
		if err != nil {
			return nil, err
		}
		return &AddGearResponse{
			SheetResponse: sheetResponse(out.SheetOutput),
			Item:          out.Item,
			Suggestions:   out.Suggestions,
		}, nil
	})
}

// UpdateGear changes an inventory line
func (h *Handler) UpdateGear(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return handle(ctx, req, func(ctx context.Context, in *UpdateGearRequest) (*SheetResponse, error) {
		if in.ItemID == "" {
			return nil, errors.InvalidArgument("itemId is required")
		}
		out, err := h.sheetService.UpdateGear(ctx, &sheet.UpdateGearInput{
			CharacterID: in.CharacterID,
			ItemID:      in.ItemID,
			Name:        in.Name,
			Equipped:    in.Equipped,
			Quantity:    in.Quantity,
			Slot:        in.Slot,
			Bulk:        in.Bulk,
			ClearBulk:   in.ClearBulk,
			Runes:       in.Runes,
		})
		if err != nil {
			return nil, err
		}
		resp := sheetResponse(*out)
		return &resp, nil
	})
}

// RemoveGear drops an inventory line
func (h *Handler) RemoveGear(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return handle(ctx, req, func(ctx context.Context, in *ItemRequest) (*SheetResponse, error) {
		if in.ItemID == "" {
			return nil, errors.InvalidArgument("itemId is required")
		}
		out, err := h.sheetService.RemoveGear(ctx, &sheet.RemoveGearInput{
			CharacterID: in.CharacterID,
			ItemID:      in.ItemID,
		})
		if err != nil {
			return nil, err
		}
		resp := sheetResponse(*out)
		return &resp, nil
	})
}

// PrepareSpell prepares a spell at a rank
func (h *Handler) PrepareSpell(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return handle(ctx, req, func(ctx context.Context, in *PrepareSpellRequest) (*PrepareSpellResponse, error) {
		out, err := h.sheetService.PrepareSpell(ctx, &sheet.PrepareSpellInput{
			CharacterID: in.CharacterID,
			Rank:        in.Rank,
			SpellID:     in.SpellID,
		})
		if err != nil {
			return nil, err
		}
		return &PrepareSpellResponse{
			SheetResponse: sheetResponse(out.SheetOutput),
			Spell:         out.Spell,
		}, nil
	})
}

// UnprepareSpell frees a prepared instance
func (h *Handler) UnprepareSpell(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return handle(ctx, req, func(ctx context.Context, in *SpellInstanceRequest) (*AppliedResponse, error) {
		out, err := h.sheetService.UnprepareSpell(ctx, &sheet.SpellInstanceInput{
			CharacterID: in.CharacterID,
			Rank:        in.Rank,
			InstanceID:  in.InstanceID,
		})
		if err != nil {
			return nil, err
		}
		return &AppliedResponse{SheetResponse: sheetResponse(out.SheetOutput), Applied: out.Applied}, nil
	})
}

// CastSpell marks a prepared instance as cast
func (h *Handler) CastSpell(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return handle(ctx, req, func(ctx context.Context, in *SpellInstanceRequest) (*AppliedResponse, error) {
		out, err := h.sheetService.CastSpell(ctx, &sheet.SpellInstanceInput{
			CharacterID: in.CharacterID,
			Rank:        in.Rank,
			InstanceID:  in.InstanceID,
		})
		if err != nil {
			return nil, err
		}
		return &AppliedResponse{SheetResponse: sheetResponse(out.SheetOutput), Applied: out.Applied}, nil
	})
}

// CastDivineFont spends a divine font slot
func (h *Handler) CastDivineFont(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return handle(ctx, req, func(ctx context.Context, in *CharacterRequest) (*AppliedResponse, error) {
		out, err := h.sheetService.CastDivineFont(ctx, &sheet.CastDivineFontInput{CharacterID: in.CharacterID})
		if err != nil {
			return nil, err
		}
		return &AppliedResponse{SheetResponse: sheetResponse(out.SheetOutput), Applied: out.Applied}, nil
	})
}

// SetDivineFontChoice switches the font between heal and harm
func (h *Handler) SetDivineFontChoice(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return handle(ctx, req, func(ctx context.Context, in *FontChoiceRequest) (*SheetResponse, error) {
		out, err := h.sheetService.SetDivineFontChoice(ctx, &sheet.SetDivineFontChoiceInput{
			CharacterID: in.CharacterID,
			Choice:      in.Choice,
		})
		if err != nil {
			return nil, err
		}
		resp := sheetResponse(*out)
		return &resp, nil
	})
}

// Rest restores spell slots and the font pool
func (h *Handler) Rest(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return handle(ctx, req, func(ctx context.Context, in *CharacterRequest) (*SheetResponse, error) {
		out, err := h.sheetService.Rest(ctx, &sheet.RestInput{CharacterID: in.CharacterID})
		if err != nil {
			return nil, err
		}
		resp := sheetResponse(*out)
		return &resp, nil
	})
}

// SelectFeat places a feat in its slot
func (h *Handler) SelectFeat(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return handle(ctx, req, func(ctx context.Context, in *SelectFeatRequest) (*SelectFeatResponse, error) {
		out, err := h.sheetService.SelectFeat(ctx, &sheet.SelectFeatInput{
			CharacterID: in.CharacterID,
			Feat:        in.Feat,
		})
		if err != nil {
			return nil, err
		}
		return &SelectFeatResponse{SheetResponse: sheetResponse(out.SheetOutput), Replaced: out.Replaced}, nil
	})
}

// RemoveFeat clears a feat slot
func (h *Handler) RemoveFeat(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return handle(ctx, req, func(ctx context.Context, in *RemoveFeatRequest) (*SheetResponse, error) {
		out, err := h.sheetService.RemoveFeat(ctx, &sheet.RemoveFeatInput{
			CharacterID: in.CharacterID,
			LevelGained: in.LevelGained,
			Type:        in.Type,
		})
		if err != nil {
			return nil, err
		}
		resp := sheetResponse(*out)
		return &resp, nil
	})
}

// SetSkillProficiency sets a skill rank
func (h *Handler) SetSkillProficiency(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return handle(ctx, req, func(ctx context.Context, in *SkillRequest) (*SheetResponse, error) {
		out, err := h.sheetService.SetSkillProficiency(ctx, &sheet.SetSkillProficiencyInput{
			CharacterID: in.CharacterID,
			Skill:       in.Skill,
			Rank:        in.Rank,
			LevelGained: in.LevelGained,
			Source:      in.Source,
		})
		if err != nil {
			return nil, err
		}
		resp := sheetResponse(*out)
		return &resp, nil
	})
}

// UpdateProfile changes name or gender
func (h *Handler) UpdateProfile(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return handle(ctx, req, func(ctx context.Context, in *ProfileRequest) (*SheetResponse, error) {
		out, err := h.sheetService.UpdateProfile(ctx, &sheet.UpdateProfileInput{
			CharacterID: in.CharacterID,
			Name:        in.Name,
			Gender:      in.Gender,
		})
		if err != nil {
			return nil, err
		}
		resp := sheetResponse(*out)
		return &resp, nil
	})
}

// SetNotes replaces the notes
func (h *Handler) SetNotes(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return handle(ctx, req, func(ctx context.Context, in *NotesRequest) (*SheetResponse, error) {
		out, err := h.sheetService.SetNotes(ctx, &sheet.SetNotesInput{
			CharacterID: in.CharacterID,
			Notes:       in.Notes,
		})
		if err != nil {
			return nil, err
		}
		resp := sheetResponse(*out)
		return &resp, nil
	})
}

// ListStoryLogs returns the story log
func (h *Handler) ListStoryLogs(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return handle(ctx, req, func(ctx context.Context, in *LimitRequest) (*StoryLogsResponse, error) {
		out, err := h.sheetService.ListStoryLogs(ctx, &sheet.ListStoryLogsInput{
			CharacterID: in.CharacterID,
			Limit:       in.Limit,
		})
		if err != nil {
			return nil, err
		}
		return &StoryLogsResponse{Logs: out.Logs}, nil
	})
}

// ClearStoryLogs empties the story log
func (h *Handler) ClearStoryLogs(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return handle(ctx, req, func(ctx context.Context, in *CharacterRequest) (*ClearedResponse, error) {
		out, err := h.sheetService.ClearStoryLogs(ctx, &sheet.ClearStoryLogsInput{CharacterID: in.CharacterID})
		if err != nil {
			return nil, err
		}
		return &ClearedResponse{Cleared: out.Cleared}, nil
	})
}

// GeneratePortrait requests a new avatar
func (h *Handler) GeneratePortrait(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return handle(ctx, req, func(ctx context.Context, in *CharacterRequest) (*PortraitResponse, error) {
		out, err := h.sheetService.GeneratePortrait(ctx, &sheet.GeneratePortraitInput{CharacterID: in.CharacterID})
		if err != nil {
			return nil, err
		}
		return &PortraitResponse{SheetResponse: sheetResponse(out.SheetOutput), URL: out.URL}, nil
	})
}

// ResetCharacter starts the character over from the defaults
func (h *Handler) ResetCharacter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return handle(ctx, req, func(ctx context.Context, in *CharacterRequest) (*SheetResponse, error) {
		out, err := h.sheetService.ResetCharacter(ctx, &sheet.ResetCharacterInput{CharacterID: in.CharacterID})
		if err != nil {
			return nil, err
		}
		resp := sheetResponse(*out)
		return &resp, nil
	})
}

// ImportPathbuilder replaces the character with a Pathbuilder build
func (h *Handler) ImportPathbuilder(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return handle(ctx, req, func(ctx context.Context, in *ImportRequest) (*ImportResponse, error) {
		if len(in.Document) == 0 {
			return nil, errors.InvalidArgument("document is required")
		}
		out, err := h.sheetService.ImportPathbuilder(ctx, &sheet.ImportPathbuilderInput{
			CharacterID: in.CharacterID,
			Data:        in.Document,
		})
		if err != nil {
			return nil, err
		}
		return &ImportResponse{
			SheetResponse: sheetResponse(out.SheetOutput),
			Unmatched:     out.Unmatched,
			DroppedSpells: out.DroppedSpells,
		}, nil
	})
}

// ExportPathbuilder renders the character as a Pathbuilder document
func (h *Handler) ExportPathbuilder(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return handle(ctx, req, func(ctx context.Context, in *CharacterRequest) (*ExportResponse, error) {
		out, err := h.sheetService.ExportPathbuilder(ctx, &sheet.ExportPathbuilderInput{CharacterID: in.CharacterID})
		if err != nil {
			return nil, err
		}
		return &ExportResponse{Document: json.RawMessage(out.Data)}, nil
	})
}

// RollCheck rolls a d20 check
func (h *Handler) RollCheck(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return handle(ctx, req, func(ctx context.Context, in *RollCheckRequest) (*RollResponse, error) {
		out, err := h.checksService.RollCheck(ctx, &checks.RollCheckInput{
			CharacterID: in.CharacterID,
			Check:       in.Check,
			Strike:      in.Strike,
		})
		if err != nil {
			return nil, err
		}
		return &RollResponse{Roll: out.Roll, Natural: out.Natural}, nil
	})
}

// RollDamage rolls an attack's damage
func (h *Handler) RollDamage(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return handle(ctx, req, func(ctx context.Context, in *RollDamageRequest) (*RollResponse, error) {
		out, err := h.checksService.RollDamage(ctx, &checks.RollDamageInput{
			CharacterID: in.CharacterID,
			Attack:      in.Attack,
			Critical:    in.Critical,
		})
		if err != nil {
			return nil, err
		}
		return &RollResponse{Roll: out.Roll}, nil
	})
}

// ListRolls returns recent rolls
func (h *Handler) ListRolls(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return handle(ctx, req, func(ctx context.Context, in *LimitRequest) (*RollsResponse, error) {
		out, err := h.checksService.ListRolls(ctx, &checks.ListRollsInput{
			CharacterID: in.CharacterID,
			Limit:       in.Limit,
		})
		if err != nil {
			return nil, err
		}
		return &RollsResponse{Rolls: out.Rolls}, nil
	})
}

// ClearRolls drops the roll history
func (h *Handler) ClearRolls(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return handle(ctx, req, func(ctx context.Context, in *CharacterRequest) (*ClearedResponse, error) {
		out, err := h.checksService.ClearRolls(ctx, &checks.ClearRollsInput{CharacterID: in.CharacterID})
		if err != nil {
			return nil, err
		}
		return &ClearedResponse{Cleared: out.Cleared}, nil
	})
}

var _ SheetServiceServer = (*Handler)(nil)
