package rest

import (
	"net/http"

	"github.com/fiveparsecs/campaign-api/internal/entities"
	"github.com/fiveparsecs/campaign-api/internal/errors"
	creworch "github.com/fiveparsecs/campaign-api/internal/orchestrators/crew"
)

// updateCrewRequest is the merge-patch wire shape used by the equip/unequip
// and pending-roll-resolution flows.
type updateCrewRequest struct {
	Credits     *int `json:"credits"`
	Reputation  *int `json:"reputation"`
	Patrons     *int `json:"patrons"`
	Rivals      *int `json:"rivals"`
	QuestRumors *int `json:"questRumors"`
	Rumors      *int `json:"rumors"`

	GadgetCount         *int `json:"gadgetCount"`
	GearCount           *int `json:"gearCount"`
	LowTechWeaponCount  *int `json:"lowTechWeaponCount"`
	MilitaryWeaponCount *int `json:"militaryWeaponCount"`
	HighTechWeaponCount *int `json:"highTechWeaponCount"`

	Weapons *[]string `json:"weapons"`
	Gear    *[]string `json:"gear"`
	Gadgets *[]string `json:"gadgets"`

	Ship *entities.CrewShip `json:"ship"`

	WeMetThrough   *string `json:"weMetThrough"`
	CaracterizedAs *string `json:"caracterizedAs"`
}

func (h *Handler) getCrew(w http.ResponseWriter, r *http.Request) {
	output, err := h.crewService.GetCrew(r.Context(), &creworch.GetCrewInput{
		ID: r.PathValue("id"),
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output.Crew)
}

func (h *Handler) listCrews(w http.ResponseWriter, r *http.Request) {
	output, err := h.crewService.ListCrews(r.Context(), &creworch.ListCrewsInput{})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output.Crews)
}

func (h *Handler) updateCrew(w http.ResponseWriter, r *http.Request) {
	var req updateCrewRequest
	if err := decodeJSON(r, &req); err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	output, err := h.crewService.UpdateCrew(r.Context(), &creworch.UpdateCrewInput{
		ID:                  r.PathValue("id"),
		Credits:             req.Credits,
		Reputation:          req.Reputation,
		Patrons:             req.Patrons,
		Rivals:              req.Rivals,
		QuestRumors:         req.QuestRumors,
		Rumors:              req.Rumors,
		GadgetCount:         req.GadgetCount,
		GearCount:           req.GearCount,
		LowTechWeaponCount:  req.LowTechWeaponCount,
		MilitaryWeaponCount: req.MilitaryWeaponCount,
		HighTechWeaponCount: req.HighTechWeaponCount,
		Weapons:             req.Weapons,
		Gear:                req.Gear,
		Gadgets:             req.Gadgets,
		Ship:                req.Ship,
		WeMetThrough:        req.WeMetThrough,
		CaracterizedAs:      req.CaracterizedAs,
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output.Crew)
}
