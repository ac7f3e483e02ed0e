package rest

import (
	"net/http"

	"github.com/fiveparsecs/campaign-api/internal/entities"
	"github.com/fiveparsecs/campaign-api/internal/errors"
	campaignorch "github.com/fiveparsecs/campaign-api/internal/orchestrators/campaign"
)

type createCampaignRequest struct {
	Name                  string `json:"name"`
	Description           string `json:"description"`
	CrewSize              int    `json:"crewSize"`
	CrewCompositionMethod string `json:"crewCompositionMethod"`
	ShipName              string `json:"shipName"`
}

// createCampaignResponse bundles the campaign with the crew created
// alongside it.
type createCampaignResponse struct {
	Campaign *entities.Campaign     `json:"campaign"`
	Crew     *entities.CampaignCrew `json:"crew"`
}

type updateCampaignRequest struct {
	Name                  *string                  `json:"name"`
	Description           *string                  `json:"description"`
	Status                *entities.CampaignStatus `json:"status"`
	CrewSize              *int                     `json:"crewSize"`
	CrewCompositionMethod *string                  `json:"crewCompositionMethod"`
	StoryPoints           *int                     `json:"storyPoints"`
	ShipName              *string                  `json:"shipName"`
}

func (h *Handler) listCampaigns(w http.ResponseWriter, r *http.Request) {
	output, err := h.campaignService.ListCampaigns(r.Context(), &campaignorch.ListCampaignsInput{})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output.Campaigns)
}

func (h *Handler) createCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := decodeJSON(r, &req); err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	output, err := h.campaignService.CreateCampaign(r.Context(), &campaignorch.CreateCampaignInput{
		Name:                  req.Name,
		Description:           req.Description,
		CrewSize:              req.CrewSize,
		CrewCompositionMethod: req.CrewCompositionMethod,
		ShipName:              req.ShipName,
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, createCampaignResponse{
		Campaign: output.Campaign,
		Crew:     output.Crew,
	})
}

func (h *Handler) getCampaign(w http.ResponseWriter, r *http.Request) {
	output, err := h.campaignService.GetCampaign(r.Context(), &campaignorch.GetCampaignInput{
		ID: r.PathValue("id"),
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output.Campaign)
}

func (h *Handler) updateCampaign(w http.ResponseWriter, r *http.Request) {
	var req updateCampaignRequest
	if err := decodeJSON(r, &req); err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	output, err := h.campaignService.UpdateCampaign(r.Context(), &campaignorch.UpdateCampaignInput{
		ID:                    r.PathValue("id"),
		Name:                  req.Name,
		Description:           req.Description,
		Status:                req.Status,
		CrewSize:              req.CrewSize,
		CrewCompositionMethod: req.CrewCompositionMethod,
		StoryPoints:           req.StoryPoints,
		ShipName:              req.ShipName,
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output.Campaign)
}

func (h *Handler) deleteCampaign(w http.ResponseWriter, r *http.Request) {
	_, err := h.campaignService.DeleteCampaign(r.Context(), &campaignorch.DeleteCampaignInput{
		ID: r.PathValue("id"),
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusNoContent, nil)
}
