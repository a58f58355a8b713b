package projects

import (
	"time"

	"collabhive-go/internal/domain/link"
	projectdomain "collabhive-go/internal/domain/project"
)

type createProjectResponse struct {
	ProjectID string `json:"projectId"`
}

type collaborationRequestResponse struct {
	Sender         projectdomain.Person `json:"sender"`
	RequestMessage *string              `json:"requestMessage"`
	IsDeclined     bool                 `json:"isDeclined"`
}

type linkResponse struct {
	ID        string    `json:"id"`
	LinkType  string    `json:"linkType"`
	LinkTitle string    `json:"linkTitle"`
	LinkURL   string    `json:"linkUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

type projectDetailResponse struct {
	ID                    string                         `json:"id"`
	Name                  string                         `json:"name"`
	Description           string                         `json:"description"`
	IsOpen                bool                           `json:"isOpen"`
	Complexity            string                         `json:"complexity"`
	Roles                 []string                       `json:"roles"`
	Technologies          []string                       `json:"technologies"`
	Creator               *projectdomain.Person          `json:"creator"`
	Collaborators         []projectdomain.Person         `json:"collaborators"`
	CollaborationRequests []collaborationRequestResponse `json:"collaborationRequests"`
	FavoriteCount         int64                          `json:"favoriteCount"`
	UserHasFavorited      bool                           `json:"userHasFavorited"`
	Links                 []linkResponse                 `json:"links"`
	CreatedAt             time.Time                      `json:"createdAt"`
	UpdatedAt             time.Time                      `json:"updatedAt"`
}

func toLinkResponse(item link.AttachmentLink) linkResponse {
	return linkResponse{
		ID:        item.ID,
		LinkType:  item.LinkType,
		LinkTitle: item.Title,
		LinkURL:   item.URL,
		CreatedAt: item.CreatedAt,
	}
}

func toDetailResponse(detail *projectdomain.Detail) projectDetailResponse {
	requests := make([]collaborationRequestResponse, 0, len(detail.CollaborationRequests))
	for _, request := range detail.CollaborationRequests {
		requests = append(requests, collaborationRequestResponse{
			Sender:         request.Sender,
			RequestMessage: request.Message,
			IsDeclined:     request.IsDeclined,
		})
	}

	links := make([]linkResponse, 0, len(detail.Links))
	for _, item := range detail.Links {
		links = append(links, toLinkResponse(item))
	}

	collaborators := detail.Collaborators
	if collaborators == nil {
		collaborators = []projectdomain.Person{}
	}

	return projectDetailResponse{
		ID:                    detail.ID,
		Name:                  detail.Name,
		Description:           detail.Description,
		IsOpen:                detail.IsOpen,
		Complexity:            detail.Complexity,
		Roles:                 nonNil(detail.Roles),
		Technologies:          nonNil(detail.Technologies),
		Creator:               detail.Creator,
		Collaborators:         collaborators,
		CollaborationRequests: requests,
		FavoriteCount:         detail.FavoriteCount,
		UserHasFavorited:      detail.UserHasFavorited,
		Links:                 links,
		CreatedAt:             detail.CreatedAt,
		UpdatedAt:             detail.UpdatedAt,
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
