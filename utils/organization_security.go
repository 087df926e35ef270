package utils

import (
	"github.com/cockroachdb/errors"

	"github.com/studioflow/studioflow-backend/models"
)

// EnforceOrganizationAccess checks that the credentials allow acting on the
// given organization. Support admins may act across organizations; everyone
// else is confined to their own.
func EnforceOrganizationAccess(creds models.Credentials, organizationId string) error {
	if creds.Role == models.SUPPORT_ADMIN {
		return nil
	}
	if creds.OrganizationId != organizationId {
		return errors.Wrapf(models.ForbiddenError,
			"credentials of organization %s cannot access organization %s",
			creds.OrganizationId, organizationId)
	}
	return nil
}
