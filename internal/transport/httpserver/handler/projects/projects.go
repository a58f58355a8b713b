package projects

import (
	"net/http"
	"strings"

	"collabhive-go/internal/domain/link"
	projectdomain "collabhive-go/internal/domain/project"
	commonhandler "collabhive-go/internal/transport/httpserver/handler/common"
	"collabhive-go/internal/transport/httpserver/middleware"
)

type createProjectRequest struct {
	Name string `json:"name"`
}

type updateProjectRequest struct {
	Name         *string   `json:"name"`
	Description  *string   `json:"description"`
	Roles        *[]string `json:"roles"`
	Technologies *[]string `json:"technologies"`
	Complexity   *string   `json:"complexity"`
	IsOpen       *bool     `json:"isOpen"`
}

type createLinkRequest struct {
	LinkType  string `json:"linkType"`
	LinkTitle string `json:"linkTitle"`
	LinkURL   string `json:"linkUrl"`
}

func (h *Handlers) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page, err := parseIntParam(query.Get("page"), 1)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_page", "page must be a positive integer")
		return
	}
	limit, err := parseIntParam(query.Get("limit"), 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_limit", "limit must be a positive integer")
		return
	}

	params := projectdomain.SearchParams{
		Roles:        commonhandler.QueryList(r, "roles"),
		Complexities: commonhandler.QueryList(r, "complexities"),
		Technologies: commonhandler.QueryList(r, "technologies"),
		SortBy:       strings.TrimSpace(query.Get("sortBy")),
		Page:         page,
		Limit:        limit,
	}

	results, err := h.Projects.Find(r.Context(), params)
	if err != nil {
		h.writeServiceError(w, "projects.search", err, "sort_by", params.SortBy, "page", page)
		return
	}

	writeJSON(w, http.StatusOK, results)
}

func (h *Handlers) GetProject(w http.ResponseWriter, r *http.Request) {
	projectID, ok := commonhandler.UUIDParam(r, "projectId")
	if !ok {
		h.writeServiceError(w, "projects.get", projectdomain.ErrProjectNotFound)
		return
	}
	userID, _ := middleware.UserIDFromContext(r.Context())

	detail, err := h.Projects.GetDetails(r.Context(), projectID, userID)
	if err != nil {
		h.writeServiceError(w, "projects.get", err, "project_id", projectID)
		return
	}

	writeJSON(w, http.StatusOK, toDetailResponse(detail))
}

func (h *Handlers) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := decodeJSON(r, &req); err != nil {
		commonhandler.WriteInvalidJSON(w)
		return
	}

	userID, ok := commonhandler.CurrentUserID(w, r)
	if !ok {
		return
	}

	projectID, err := h.Projects.CreateNew(r.Context(), userID, req.Name)
	if err != nil {
		h.writeServiceError(w, "projects.create", err, "user_id", userID)
		return
	}

	writeJSON(w, http.StatusCreated, createProjectResponse{ProjectID: projectID})
}

func (h *Handlers) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	projectID, ok := commonhandler.UUIDParam(r, "projectId")
	if !ok {
		h.writeServiceError(w, "projects.toggle_favorite", projectdomain.ErrProjectNotFound)
		return
	}
	userID, ok := commonhandler.CurrentUserID(w, r)
	if !ok {
		return
	}

	message, err := h.Projects.ToggleFavorite(r.Context(), userID, projectID)
	if err != nil {
		h.writeServiceError(w, "projects.toggle_favorite", err, "project_id", projectID, "user_id", userID)
		return
	}

	commonhandler.WriteMessage(w, http.StatusOK, message)
}

func (h *Handlers) UpdateProject(w http.ResponseWriter, r *http.Request) {
	projectID, ok := commonhandler.UUIDParam(r, "projectId")
	if !ok {
		h.writeServiceError(w, "projects.update", projectdomain.ErrProjectNotFound)
		return
	}

	var req updateProjectRequest
	if err := decodeJSON(r, &req); err != nil {
		commonhandler.WriteInvalidJSON(w)
		return
	}

	userID, ok := commonhandler.CurrentUserID(w, r)
	if !ok {
		return
	}
	if !h.requireCreator(w, r, "projects.update", projectID, userID) {
		return
	}

	patch := projectdomain.ProjectPatch{
		Name:         req.Name,
		Description:  req.Description,
		IsOpen:       req.IsOpen,
		Complexity:   req.Complexity,
		Roles:        req.Roles,
		Technologies: req.Technologies,
	}
	if err := h.Projects.UpdateDetails(r.Context(), projectID, patch); err != nil {
		h.writeServiceError(w, "projects.update", err, "project_id", projectID)
		return
	}

	commonhandler.WriteMessage(w, http.StatusOK, "Success")
}

func (h *Handlers) DeleteProject(w http.ResponseWriter, r *http.Request) {
	projectID, ok := commonhandler.UUIDParam(r, "projectId")
	if !ok {
		h.writeServiceError(w, "projects.delete", projectdomain.ErrProjectNotFound)
		return
	}
	userID, ok := commonhandler.CurrentUserID(w, r)
	if !ok {
		return
	}
	if !h.requireCreator(w, r, "projects.delete", projectID, userID) {
		return
	}

	if err := h.Projects.Delete(r.Context(), projectID); err != nil {
		h.writeServiceError(w, "projects.delete", err, "project_id", projectID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) CreateLink(w http.ResponseWriter, r *http.Request) {
	projectID, ok := commonhandler.UUIDParam(r, "projectId")
	if !ok {
		h.writeServiceError(w, "projects.create_link", projectdomain.ErrProjectNotFound)
		return
	}

	var req createLinkRequest
	if err := decodeJSON(r, &req); err != nil {
		commonhandler.WriteInvalidJSON(w)
		return
	}

	userID, ok := commonhandler.CurrentUserID(w, r)
	if !ok {
		return
	}
	if !h.requireCreator(w, r, "projects.create_link", projectID, userID) {
		return
	}

	created, err := h.Projects.AddLink(r.Context(), projectID, link.Input{
		LinkType: req.LinkType,
		Title:    req.LinkTitle,
		URL:      req.LinkURL,
	})
	if err != nil {
		h.writeServiceError(w, "projects.create_link", err, "project_id", projectID)
		return
	}

	writeJSON(w, http.StatusCreated, toLinkResponse(*created))
}

func (h *Handlers) DeleteLink(w http.ResponseWriter, r *http.Request) {
	projectID, ok := commonhandler.UUIDParam(r, "projectId")
	if !ok {
		h.writeServiceError(w, "projects.delete_link", projectdomain.ErrProjectNotFound)
		return
	}
	linkID, ok := commonhandler.UUIDParam(r, "linkId")
	if !ok {
		h.writeServiceError(w, "projects.delete_link", link.ErrLinkNotFound)
		return
	}
	userID, ok := commonhandler.CurrentUserID(w, r)
	if !ok {
		return
	}
	if !h.requireCreator(w, r, "projects.delete_link", projectID, userID) {
		return
	}

	if err := h.Projects.RemoveLink(r.Context(), projectID, linkID); err != nil {
		h.writeServiceError(w, "projects.delete_link", err, "project_id", projectID, "link_id", linkID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
