package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	AccessControl AccessControlSvc
	Employee      EmployeeSvcFacade
	Mood          MoodCheckinSvcFacade
	Favorites     FavoritesSvc
	Resource      ResourceSvcFacade
	Team          TeamReaderSvc
	Role          RoleReaderSvc
	Token         TokenSvc
}
