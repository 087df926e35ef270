package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/studioflow/studioflow-backend/models"
)

func TestEnforceOrganizationAccess(t *testing.T) {
	t.Run("own organization", func(t *testing.T) {
		creds := models.Credentials{OrganizationId: "org-a", Role: models.ADMIN}
		assert.NoError(t, EnforceOrganizationAccess(creds, "org-a"))
	})

	t.Run("other organization", func(t *testing.T) {
		creds := models.Credentials{OrganizationId: "org-a", Role: models.ADMIN}
		assert.ErrorIs(t, EnforceOrganizationAccess(creds, "org-b"), models.ForbiddenError)
	})

	t.Run("support admin crosses organizations", func(t *testing.T) {
		creds := models.Credentials{OrganizationId: "org-a", Role: models.SUPPORT_ADMIN}
		assert.NoError(t, EnforceOrganizationAccess(creds, "org-b"))
	})
}
