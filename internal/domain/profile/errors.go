package profile

import "collabhive-go/internal/apperr"

var (
	ErrProfileNotFound  = apperr.NotFound("profile_not_found", "No user found")
	ErrNameRequired     = apperr.BadRequest("profile_name_required", "Name cannot be empty")
	ErrBioTooLong       = apperr.BadRequest("profile_bio_too_long", "Bio is too long")
	ErrInvalidAvatarURL = apperr.BadRequest("invalid_avatar_url", "Avatar url must be an absolute http(s) url")
)
