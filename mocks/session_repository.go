package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/studioflow/studioflow-backend/models"
	"github.com/studioflow/studioflow-backend/repositories"
)

type SessionRepository struct {
	mock.Mock
}

func (r *SessionRepository) GetSessionById(ctx context.Context, exec repositories.Executor,
	sessionId string,
) (models.Session, error) {
	args := r.Called(ctx, exec, sessionId)
	return args.Get(0).(models.Session), args.Error(1)
}

func (r *SessionRepository) ListSessions(ctx context.Context, exec repositories.Executor,
	organizationId string,
) ([]models.Session, error) {
	args := r.Called(ctx, exec, organizationId)
	return args.Get(0).([]models.Session), args.Error(1)
}

func (r *SessionRepository) CreateSession(ctx context.Context, exec repositories.Executor,
	sessionId string, input models.CreateSessionInput,
) error {
	args := r.Called(ctx, exec, sessionId, input)
	return args.Error(0)
}
