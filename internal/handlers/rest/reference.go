package rest

import (
	"net/http"

	"github.com/fiveparsecs/campaign-api/internal/errors"
	referencerepo "github.com/fiveparsecs/campaign-api/internal/repositories/reference"
)

func (h *Handler) listSpecies(w http.ResponseWriter, r *http.Request) {
	output, err := h.referenceRepo.ListSpecies(r.Context(), referencerepo.ListSpeciesInput{})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output.Species)
}

func (h *Handler) getSpecies(w http.ResponseWriter, r *http.Request) {
	output, err := h.referenceRepo.GetSpecies(r.Context(), referencerepo.GetSpeciesInput{
		ID: r.PathValue("id"),
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output.Species)
}

func (h *Handler) getSpeciesAbility(w http.ResponseWriter, r *http.Request) {
	output, err := h.referenceRepo.GetSpeciesAbility(r.Context(), referencerepo.GetSpeciesAbilityInput{
		ID: r.PathValue("id"),
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output.Ability)
}

func (h *Handler) listBackgrounds(w http.ResponseWriter, r *http.Request) {
	output, err := h.referenceRepo.ListBackgrounds(r.Context(), referencerepo.ListBackgroundsInput{})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output.Backgrounds)
}

func (h *Handler) getBackground(w http.ResponseWriter, r *http.Request) {
	output, err := h.referenceRepo.GetBackground(r.Context(), referencerepo.GetBackgroundInput{
		ID: r.PathValue("id"),
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output.Background)
}

func (h *Handler) listMotivations(w http.ResponseWriter, r *http.Request) {
	output, err := h.referenceRepo.ListMotivations(r.Context(), referencerepo.ListMotivationsInput{})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output.Motivations)
}

func (h *Handler) getMotivation(w http.ResponseWriter, r *http.Request) {
	output, err := h.referenceRepo.GetMotivation(r.Context(), referencerepo.GetMotivationInput{
		ID: r.PathValue("id"),
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output.Motivation)
}

func (h *Handler) listCharacterClasses(w http.ResponseWriter, r *http.Request) {
	output, err := h.referenceRepo.ListCharacterClasses(r.Context(), referencerepo.ListCharacterClassesInput{})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output.CharacterClasses)
}

func (h *Handler) getCharacterClass(w http.ResponseWriter, r *http.Request) {
	output, err := h.referenceRepo.GetCharacterClass(r.Context(), referencerepo.GetCharacterClassInput{
		ID: r.PathValue("id"),
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output.CharacterClass)
}
