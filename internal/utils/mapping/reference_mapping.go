package mapping

import (
	"github.com/vivabem/wellbeing_tracker_app/internal/core/domain"
	"github.com/vivabem/wellbeing_tracker_app/internal/models"
)

// ToDomainTeam converts a model Team to a domain Team
func ToDomainTeam(m models.Team) domain.Team {
	return domain.Team{TeamID: m.TeamID, Name: m.Name, Code: m.Code, Sector: m.Sector}
}

// ToDomainTeamSlice converts a slice of model Teams to domain Teams
func ToDomainTeamSlice(ms []models.Team) []domain.Team {
	ds := make([]domain.Team, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTeam(m)
	}
	return ds
}

// ToDomainRole converts a model Role to a domain Role
func ToDomainRole(m models.Role) domain.Role {
	return domain.Role{RoleID: m.RoleID, Name: m.Name}
}

// ToDomainRoleSlice converts a slice of model Roles to domain Roles
func ToDomainRoleSlice(ms []models.Role) []domain.Role {
	ds := make([]domain.Role, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRole(m)
	}
	return ds
}

// ToModelResource converts a domain WellbeingResource to a model WellbeingResource
func ToModelResource(d domain.WellbeingResource) models.WellbeingResource {
	return models.WellbeingResource{ResourceID: d.ResourceID, Name: d.Name, Kind: d.Kind, Link: d.Link}
}

// ToDomainResource converts a model WellbeingResource to a domain WellbeingResource
func ToDomainResource(m models.WellbeingResource) domain.WellbeingResource {
	return domain.WellbeingResource{ResourceID: m.ResourceID, Name: m.Name, Kind: m.Kind, Link: m.Link}
}

// ToDomainResourceSlice converts a slice of model resources to domain resources
func ToDomainResourceSlice(ms []models.WellbeingResource) []domain.WellbeingResource {
	ds := make([]domain.WellbeingResource, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainResource(m)
	}
	return ds
}
