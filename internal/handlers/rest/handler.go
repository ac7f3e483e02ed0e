// Package rest exposes the campaign API over HTTP with JSON bodies.
package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fiveparsecs/campaign-api/internal/errors"
	campaignorch "github.com/fiveparsecs/campaign-api/internal/orchestrators/campaign"
	characterorch "github.com/fiveparsecs/campaign-api/internal/orchestrators/character"
	creworch "github.com/fiveparsecs/campaign-api/internal/orchestrators/crew"
	referencerepo "github.com/fiveparsecs/campaign-api/internal/repositories/reference"
)

// Handler routes HTTP requests to the orchestrators.
type Handler struct {
	characterService characterorch.Service
	crewService      creworch.Service
	campaignService  campaignorch.Service
	referenceRepo    referencerepo.Repository
}

// Config holds the dependencies for the REST handler
type Config struct {
	CharacterService characterorch.Service
	CrewService      creworch.Service
	CampaignService  campaignorch.Service
	ReferenceRepo    referencerepo.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterService == nil {
		vb.RequiredField("CharacterService")
	}
	if c.CrewService == nil {
		vb.RequiredField("CrewService")
	}
	if c.CampaignService == nil {
		vb.RequiredField("CampaignService")
	}
	if c.ReferenceRepo == nil {
		vb.RequiredField("ReferenceRepo")
	}

	return vb.Build()
}

// New creates a new REST handler
func New(cfg *Config) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Handler{
		characterService: cfg.CharacterService,
		crewService:      cfg.CrewService,
		campaignService:  cfg.CampaignService,
		referenceRepo:    cfg.ReferenceRepo,
	}, nil
}

// Register wires all routes onto the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", h.healthz)

	mux.HandleFunc("GET /campaigns", h.listCampaigns)
	mux.HandleFunc("POST /campaigns", h.createCampaign)
	mux.HandleFunc("GET /campaigns/{id}", h.getCampaign)
	mux.HandleFunc("PUT /campaigns/{id}", h.updateCampaign)
	mux.HandleFunc("DELETE /campaigns/{id}", h.deleteCampaign)

	mux.HandleFunc("GET /campaign-crews", h.listCrews)
	mux.HandleFunc("GET /campaign-crews/{id}", h.getCrew)
	mux.HandleFunc("PUT /campaign-crews/{id}", h.updateCrew)

	mux.HandleFunc("GET /campaign-characters", h.listCharacters)
	mux.HandleFunc("POST /campaign-characters", h.createCharacter)
	mux.HandleFunc("GET /campaign-characters/{id}", h.getCharacter)
	mux.HandleFunc("PUT /campaign-characters/{id}", h.updateCharacter)
	mux.HandleFunc("DELETE /campaign-characters/{id}", h.deleteCharacter)
	mux.HandleFunc("POST /campaign-characters/{id}/leader", h.selectLeader)

	mux.HandleFunc("GET /species", h.listSpecies)
	mux.HandleFunc("GET /species/{id}", h.getSpecies)
	mux.HandleFunc("GET /species-abilities/{id}", h.getSpeciesAbility)
	mux.HandleFunc("GET /backgrounds", h.listBackgrounds)
	mux.HandleFunc("GET /backgrounds/{id}", h.getBackground)
	mux.HandleFunc("GET /motivations", h.listMotivations)
	mux.HandleFunc("GET /motivations/{id}", h.getMotivation)
	mux.HandleFunc("GET /character-classes", h.listCharacterClasses)
	mux.HandleFunc("GET /character-classes/{id}", h.getCharacterClass)
}

func (h *Handler) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeJSON renders v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response body", "error", err.Error())
	}
}

// decodeJSON parses the request body into v, mapping malformed bodies to
// InvalidArgument.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.InvalidArgumentf("invalid request body: %v", err)
	}
	return nil
}
