package profiles

import (
	"net/http"
	"strings"
	"time"

	"collabhive-go/internal/domain/link"
	profiledomain "collabhive-go/internal/domain/profile"
	commonhandler "collabhive-go/internal/transport/httpserver/handler/common"
	"github.com/go-chi/chi/v5"
)

const currentUserAlias = "me"

type updateProfileRequest struct {
	Name      *string        `json:"name"`
	AvatarURL nullableString `json:"avatarUrl"`
	Bio       *string        `json:"bio"`
}

type createLinkRequest struct {
	LinkType  string `json:"linkType"`
	LinkTitle string `json:"linkTitle"`
	LinkURL   string `json:"linkUrl"`
}

type projectCardResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	CreatorName      string    `json:"creatorName"`
	CreatorAvatarURL *string   `json:"creatorAvatarUrl"`
	UpdatedAt        time.Time `json:"updatedAt"`
	IsOpen           bool      `json:"isOpen"`
}

type linkResponse struct {
	ID        string    `json:"id"`
	LinkType  string    `json:"linkType"`
	LinkTitle string    `json:"linkTitle"`
	LinkURL   string    `json:"linkUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

type profileDetailsResponse struct {
	ID                    string                `json:"id"`
	Name                  string                `json:"name"`
	AvatarURL             *string               `json:"avatarUrl"`
	Bio                   string                `json:"bio"`
	ActiveProjectSlots    int                   `json:"activeProjectSlots"`
	CreatedAt             time.Time             `json:"createdAt"`
	Favorites             []projectCardResponse `json:"favorites"`
	CreatorProjects       []projectCardResponse `json:"creatorProjects"`
	CollaborationProjects []projectCardResponse `json:"collaborationProjects"`
	Links                 []linkResponse        `json:"links"`
}

type modifyProfileData struct {
	Message   string `json:"message"`
	ProfileID string `json:"profileId"`
	LinkID    string `json:"linkId,omitempty"`
}

type modifyProfileResponse struct {
	Data modifyProfileData `json:"data"`
}

func (h *Handlers) GetProfile(w http.ResponseWriter, r *http.Request) {
	profileID := strings.TrimSpace(chi.URLParam(r, "userId"))
	if profileID == currentUserAlias {
		userID, ok := commonhandler.CurrentUserID(w, r)
		if !ok {
			return
		}
		profileID = userID
	}

	details, err := h.Profiles.GetDetails(r.Context(), profileID)
	if err != nil {
		h.writeServiceError(w, "profiles.get", err, "profile_id", profileID)
		return
	}

	writeJSON(w, http.StatusOK, toDetailsResponse(details))
}

func (h *Handlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		commonhandler.WriteInvalidJSON(w)
		return
	}

	userID, ok := commonhandler.CurrentUserID(w, r)
	if !ok {
		return
	}

	patch := profiledomain.ProfilePatch{
		Name: req.Name,
		Bio:  req.Bio,
		AvatarURL: profiledomain.OptionalNullableString{
			Set:   req.AvatarURL.Set,
			Value: req.AvatarURL.Value,
		},
	}
	if err := h.Profiles.UpdateDetails(r.Context(), userID, patch); err != nil {
		h.writeServiceError(w, "profiles.update", err, "user_id", userID)
		return
	}

	writeJSON(w, http.StatusOK, modifyProfileResponse{Data: modifyProfileData{
		Message:   "Profile updated",
		ProfileID: userID,
	}})
}

func (h *Handlers) CreateLink(w http.ResponseWriter, r *http.Request) {
	var req createLinkRequest
	if err := decodeJSON(r, &req); err != nil {
		commonhandler.WriteInvalidJSON(w)
		return
	}

	userID, ok := commonhandler.CurrentUserID(w, r)
	if !ok {
		return
	}

	created, err := h.Profiles.AddLink(r.Context(), userID, link.Input{
		LinkType: req.LinkType,
		Title:    req.LinkTitle,
		URL:      req.LinkURL,
	})
	if err != nil {
		h.writeServiceError(w, "profiles.create_link", err, "user_id", userID)
		return
	}

	writeJSON(w, http.StatusCreated, modifyProfileResponse{Data: modifyProfileData{
		Message:   "Link created",
		ProfileID: userID,
		LinkID:    created.ID,
	}})
}

func (h *Handlers) DeleteLink(w http.ResponseWriter, r *http.Request) {
	linkID, ok := commonhandler.UUIDParam(r, "linkId")
	if !ok {
		h.writeServiceError(w, "profiles.delete_link", link.ErrLinkNotFound)
		return
	}
	userID, ok := commonhandler.CurrentUserID(w, r)
	if !ok {
		return
	}

	if err := h.Profiles.RemoveLink(r.Context(), userID, linkID); err != nil {
		h.writeServiceError(w, "profiles.delete_link", err, "user_id", userID, "link_id", linkID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toDetailsResponse(details *profiledomain.Details) profileDetailsResponse {
	links := make([]linkResponse, 0, len(details.Links))
	for _, item := range details.Links {
		links = append(links, linkResponse{
			ID:        item.ID,
			LinkType:  item.LinkType,
			LinkTitle: item.Title,
			LinkURL:   item.URL,
			CreatedAt: item.CreatedAt,
		})
	}

	return profileDetailsResponse{
		ID:                    details.ID,
		Name:                  details.Name,
		AvatarURL:             details.AvatarURL,
		Bio:                   details.Bio,
		ActiveProjectSlots:    details.ActiveProjectSlots,
		CreatedAt:             details.CreatedAt,
		Favorites:             toCardResponses(details.Favorites),
		CreatorProjects:       toCardResponses(details.CreatorProjects),
		CollaborationProjects: toCardResponses(details.CollaborationProjects),
		Links:                 links,
	}
}

func toCardResponses(cards []profiledomain.ProjectCard) []projectCardResponse {
	resp := make([]projectCardResponse, 0, len(cards))
	for _, card := range cards {
		resp = append(resp, projectCardResponse{
			ID:               card.ID,
			Name:             card.Name,
			CreatorName:      card.CreatorName,
			CreatorAvatarURL: card.CreatorAvatarURL,
			UpdatedAt:        card.UpdatedAt,
			IsOpen:           card.IsOpen,
		})
	}
	return resp
}
