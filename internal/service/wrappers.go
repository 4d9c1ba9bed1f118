package service

// ProfileServiceWrapper decorates a ProfileService, e.g. with validation.
type ProfileServiceWrapper interface {
	Wrap(ProfileService) ProfileService
}

// ConversationServiceWrapper decorates a ConversationService.
type ConversationServiceWrapper interface {
	Wrap(ConversationService) ConversationService
}
