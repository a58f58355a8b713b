package project

import (
	"collabhive-go/internal/apperr"
	"collabhive-go/internal/domain/collaboration"
)

var (
	ErrProjectNotFound   = collaboration.ErrProjectNotFound
	ErrNoProjectsFound   = apperr.NotFound("no_projects_found", "No projects found with given filters")
	ErrNameRequired      = apperr.BadRequest("project_name_required", "Project name is required")
	ErrNameTooLong       = apperr.BadRequest("project_name_too_long", "Project name is too long")
	ErrInvalidComplexity = apperr.BadRequest("invalid_complexity", "Unknown project complexity")
	ErrInvalidRole       = apperr.BadRequest("invalid_role", "Unknown role")
	ErrInvalidTechnology = apperr.BadRequest("invalid_technology", "Unknown technology")
	ErrCannotFavoriteOwn = apperr.Forbidden("cannot_favorite_own_project", "You cannot favorite your own project")
)
