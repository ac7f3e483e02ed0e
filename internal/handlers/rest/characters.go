package rest

import (
	"net/http"

	"github.com/fiveparsecs/campaign-api/internal/errors"
	characterorch "github.com/fiveparsecs/campaign-api/internal/orchestrators/character"
)

// createCharacterRequest is the wire shape for character generation. The
// reference IDs are optional.
type createCharacterRequest struct {
	Name             string `json:"name"`
	CrewID           string `json:"crewId"`
	SpeciesID        string `json:"speciesId"`
	BackgroundID     string `json:"backgroundId"`
	MotivationID     string `json:"motivationId"`
	CharacterClassID string `json:"characterClassId"`
	IsLeader         bool   `json:"isLeader"`
}

// updateCharacterRequest is the merge-patch wire shape. Absent fields leave
// the stored value unchanged.
type updateCharacterRequest struct {
	Name *string `json:"name"`

	Reactions *int `json:"reactions"`
	Speed     *int `json:"speed"`
	Combat    *int `json:"combat"`
	Toughness *int `json:"toughness"`
	Savvy     *int `json:"savvy"`
	Luck      *int `json:"luck"`
	XP        *int `json:"xp"`

	IsActive  *bool `json:"isActive"`
	IsDead    *bool `json:"isDead"`
	IsInjured *bool `json:"isInjured"`

	Injuries *[]string `json:"injuries"`

	Weapons *[]string `json:"weapons"`
	Gear    *[]string `json:"gear"`
	Gadgets *[]string `json:"gadgets"`
	Armor   *[]string `json:"armor"`
}

func (h *Handler) createCharacter(w http.ResponseWriter, r *http.Request) {
	var req createCharacterRequest
	if err := decodeJSON(r, &req); err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	output, err := h.characterService.CreateCharacter(r.Context(), &characterorch.CreateCharacterInput{
		CrewID:           req.CrewID,
		Name:             req.Name,
		SpeciesID:        req.SpeciesID,
		BackgroundID:     req.BackgroundID,
		MotivationID:     req.MotivationID,
		CharacterClassID: req.CharacterClassID,
		IsLeader:         req.IsLeader,
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, output.Character)
}

func (h *Handler) getCharacter(w http.ResponseWriter, r *http.Request) {
	output, err := h.characterService.GetCharacter(r.Context(), &characterorch.GetCharacterInput{
		ID: r.PathValue("id"),
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output.Character)
}

func (h *Handler) listCharacters(w http.ResponseWriter, r *http.Request) {
	output, err := h.characterService.ListCharacters(r.Context(), &characterorch.ListCharactersInput{
		CrewID: r.URL.Query().Get("crewId"),
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output.Characters)
}

func (h *Handler) updateCharacter(w http.ResponseWriter, r *http.Request) {
	var req updateCharacterRequest
	if err := decodeJSON(r, &req); err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	output, err := h.characterService.UpdateCharacter(r.Context(), &characterorch.UpdateCharacterInput{
		ID:        r.PathValue("id"),
		Name:      req.Name,
		Reactions: req.Reactions,
		Speed:     req.Speed,
		Combat:    req.Combat,
		Toughness: req.Toughness,
		Savvy:     req.Savvy,
		Luck:      req.Luck,
		XP:        req.XP,
		IsActive:  req.IsActive,
		IsDead:    req.IsDead,
		IsInjured: req.IsInjured,
		Injuries:  req.Injuries,
		Weapons:   req.Weapons,
		Gear:      req.Gear,
		Gadgets:   req.Gadgets,
		Armor:     req.Armor,
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output.Character)
}

func (h *Handler) deleteCharacter(w http.ResponseWriter, r *http.Request) {
	_, err := h.characterService.DeleteCharacter(r.Context(), &characterorch.DeleteCharacterInput{
		ID: r.PathValue("id"),
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) selectLeader(w http.ResponseWriter, r *http.Request) {
	output, err := h.characterService.SelectLeader(r.Context(), &characterorch.SelectLeaderInput{
		ID: r.PathValue("id"),
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output.Character)
}
