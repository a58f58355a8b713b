package collaboration

import "collabhive-go/internal/apperr"

var (
	ErrProjectNotFound       = apperr.NotFound("project_not_found", "Project not found")
	ErrCollaborationNotFound = apperr.NotFound("collaboration_not_found", "Collaboration not found")
	ErrNoProjects            = apperr.NotFound("no_projects", "No projects found")
	ErrAlreadyRequested      = apperr.BadRequest("already_requested", "You have already requested to join this project")
	ErrPreviouslyDeclined    = apperr.BadRequest("previously_declined", "The creator has previously declined your request to join this project")
	ErrAlreadyCollaborator   = apperr.BadRequest("already_collaborator", "You are already a collaborator on this project")
	ErrCreatorCannotJoin     = apperr.BadRequest("creator_cannot_join", "You are the creator of this project")
	ErrMessageTooLong        = apperr.BadRequest("message_too_long", "Request message is too long")
	ErrNotProjectCreator     = apperr.Forbidden("not_project_creator", "Only the project creator can do this")
)
