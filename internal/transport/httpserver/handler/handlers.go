package handler

import (
	collaborationhandler "collabhive-go/internal/transport/httpserver/handler/collaboration"
	commonhandler "collabhive-go/internal/transport/httpserver/handler/common"
	profileshandler "collabhive-go/internal/transport/httpserver/handler/profiles"
	projectshandler "collabhive-go/internal/transport/httpserver/handler/projects"
)

type Handlers struct {
	Common        *commonhandler.Handlers
	Projects      *projectshandler.Handlers
	Collaboration *collaborationhandler.Handlers
	Profiles      *profileshandler.Handlers
}

func New(common *commonhandler.Handlers, projects *projectshandler.Handlers, collaboration *collaborationhandler.Handlers, profiles *profileshandler.Handlers) *Handlers {
	return &Handlers{
		Common:        common,
		Projects:      projects,
		Collaboration: collaboration,
		Profiles:      profiles,
	}
}
