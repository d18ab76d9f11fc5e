package api

import (
	"github.com/abdhesh369/my-portfolio/database"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, router router) *routeHandlers {
	return &routeHandlers{
		projectHandler:    newProjectHandler(database.ProjectRepo()),
		skillHandler:      newSkillHandler(database.SkillRepo()),
		experienceHandler: newExperienceHandler(database.ExperienceRepo()),
		messageHandler:    newMessageHandler(database.MessageRepo(), router.notifier),
		metaHandler:       newMetaHandler(router.environment(), router.startupTime),
	}
}
