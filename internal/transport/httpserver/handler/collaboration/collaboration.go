package collaboration

import (
	"net/http"
	"strings"

	collaborationdomain "collabhive-go/internal/domain/collaboration"
	commonhandler "collabhive-go/internal/transport/httpserver/handler/common"
)

type joinRequest struct {
	RequestMessage string `json:"requestMessage"`
}

type manageRequest struct {
	RequestsAccepted     []string `json:"requestsAccepted"`
	RequestsDeclined     []string `json:"requestsDeclined"`
	CollaboratorsRemoved []string `json:"collaboratorsRemoved"`
}

type creatorRequestsResponse struct {
	ProjectID        string `json:"projectId"`
	ProjectName      string `json:"projectName"`
	NumberOfRequests int64  `json:"numberOfRequests"`
}

type creatorProjectCardResponse struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	TechnologyStackText string `json:"technologyStackText"`
	CollaboratorsText   string `json:"collaboratorsText"`
	IsOpen              bool   `json:"isOpen"`
}

type collaboratorProjectCardResponse struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	TechnologyStackText string `json:"technologyStackText"`
	CreatorName         string `json:"creatorName"`
	CollaboratorsText   string `json:"collaboratorsText"`
	IsOpen              bool   `json:"isOpen"`
}

func (h *Handlers) ListCreatorRequests(w http.ResponseWriter, r *http.Request) {
	userID, ok := commonhandler.CurrentUserID(w, r)
	if !ok {
		return
	}

	rows, err := h.Collaboration.CreatorRequests(r.Context(), userID)
	if err != nil {
		h.writeServiceError(w, "collaboration.creator_requests", err, "user_id", userID)
		return
	}

	resp := make([]creatorRequestsResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, creatorRequestsResponse{
			ProjectID:        row.ProjectID,
			ProjectName:      row.ProjectName,
			NumberOfRequests: row.NumberOfRequests,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) ListCreatorProjects(w http.ResponseWriter, r *http.Request) {
	userID, ok := commonhandler.CurrentUserID(w, r)
	if !ok {
		return
	}

	cards, err := h.Collaboration.CreatorProjectCards(r.Context(), userID)
	if err != nil {
		h.writeServiceError(w, "collaboration.creator_projects", err, "user_id", userID)
		return
	}

	resp := make([]creatorProjectCardResponse, 0, len(cards))
	for _, card := range cards {
		resp = append(resp, creatorProjectCardResponse{
			ID:                  card.ID,
			Name:                card.Name,
			TechnologyStackText: card.TechnologyStackText,
			CollaboratorsText:   card.CollaboratorsText,
			IsOpen:              card.IsOpen,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) ListCollaboratorProjects(w http.ResponseWriter, r *http.Request) {
	userID, ok := commonhandler.CurrentUserID(w, r)
	if !ok {
		return
	}

	cards, err := h.Collaboration.CollaboratorProjectCards(r.Context(), userID)
	if err != nil {
		h.writeServiceError(w, "collaboration.collaborator_projects", err, "user_id", userID)
		return
	}

	resp := make([]collaboratorProjectCardResponse, 0, len(cards))
	for _, card := range cards {
		resp = append(resp, collaboratorProjectCardResponse{
			ID:                  card.ID,
			Name:                card.Name,
			TechnologyStackText: card.TechnologyStackText,
			CreatorName:         card.CreatorName,
			CollaboratorsText:   card.CollaboratorsText,
			IsOpen:              card.IsOpen,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) RequestToJoin(w http.ResponseWriter, r *http.Request) {
	projectID, ok := commonhandler.UUIDParam(r, "projectId")
	if !ok {
		h.writeServiceError(w, "collaboration.join", collaborationdomain.ErrProjectNotFound)
		return
	}

	var req joinRequest
	if err := decodeJSON(r, &req); err != nil {
		commonhandler.WriteInvalidJSON(w)
		return
	}
	if strings.TrimSpace(req.RequestMessage) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "requestMessage is required")
		return
	}

	userID, ok := commonhandler.CurrentUserID(w, r)
	if !ok {
		return
	}

	if err := h.Collaboration.RequestToJoin(r.Context(), projectID, userID, req.RequestMessage); err != nil {
		h.writeServiceError(w, "collaboration.join", err, "project_id", projectID, "user_id", userID)
		return
	}

	commonhandler.WriteMessage(w, http.StatusCreated, "Join request sent!")
}

func (h *Handlers) Manage(w http.ResponseWriter, r *http.Request) {
	projectID, ok := commonhandler.UUIDParam(r, "projectId")
	if !ok {
		h.writeServiceError(w, "collaboration.manage", collaborationdomain.ErrProjectNotFound)
		return
	}

	var req manageRequest
	if err := decodeJSON(r, &req); err != nil {
		commonhandler.WriteInvalidJSON(w)
		return
	}

	userID, ok := commonhandler.CurrentUserID(w, r)
	if !ok {
		return
	}
	if !commonhandler.RequireCreator(w, r, h.Collaboration, h.log, "collaboration.manage", projectID, userID) {
		return
	}

	input := collaborationdomain.ManageInput{
		Accepted: req.RequestsAccepted,
		Declined: req.RequestsDeclined,
		Removed:  req.CollaboratorsRemoved,
	}
	if err := h.Collaboration.Manage(r.Context(), projectID, input); err != nil {
		h.writeServiceError(w, "collaboration.manage", err, "project_id", projectID)
		return
	}

	commonhandler.WriteMessage(w, http.StatusOK, "Collaborations managed!")
}

func (h *Handlers) Leave(w http.ResponseWriter, r *http.Request) {
	projectID, ok := commonhandler.UUIDParam(r, "projectId")
	if !ok {
		h.writeServiceError(w, "collaboration.leave", collaborationdomain.ErrProjectNotFound)
		return
	}
	userID, ok := commonhandler.CurrentUserID(w, r)
	if !ok {
		return
	}

	if err := h.Collaboration.Leave(r.Context(), projectID, userID); err != nil {
		h.writeServiceError(w, "collaboration.leave", err, "project_id", projectID, "user_id", userID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
