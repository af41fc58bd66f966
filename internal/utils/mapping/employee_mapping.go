package mapping

import (
	"github.com/vivabem/wellbeing_tracker_app/internal/core/domain"
	"github.com/vivabem/wellbeing_tracker_app/internal/models"
)

// ToModelEmployee converts a domain Employee to a model Employee
func ToModelEmployee(d domain.Employee) models.Employee {
	return models.Employee{
		EmployeeID: d.EmployeeID,
		Name:       d.Name,
		Email:      d.Email,
		Credential: d.Credential,
		HireDate:   d.HireDate,
		TeamID:     d.TeamID,
		RoleID:     d.RoleID,
	}
}

// ToDomainEmployee converts a model Employee to a domain Employee
func ToDomainEmployee(m models.Employee) domain.Employee {
	return domain.Employee{
		EmployeeID: m.EmployeeID,
		Name:       m.Name,
		Email:      m.Email,
		Credential: m.Credential,
		HireDate:   m.HireDate,
		TeamID:     m.TeamID,
		RoleID:     m.RoleID,
	}
}

// ToDomainEmployeeSlice converts a slice of model Employees to domain Employees
func ToDomainEmployeeSlice(ms []models.Employee) []domain.Employee {
	ds := make([]domain.Employee, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEmployee(m)
	}
	return ds
}
