package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/obaro89/afridev-backend/internal/domain"
	"github.com/obaro89/afridev-backend/internal/repository/memory"
)

func newProfileFixture(t *testing.T) (*ProfileService, *memory.Store, string) {
	t.Helper()
	s := memory.New()
	userID := uuid.NewString()
	require.NoError(t, s.Users().Create(context.Background(), &domain.User{
		ID: userID, Name: "Ann", Email: "ann@example.com", Avatar: "//www.gravatar.com/avatar/x",
	}))
	return NewProfileService(s.Profiles(), s.Users()), s, userID
}

func TestProfileService_UpsertIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, _, userID := newProfileFixture(t)

	_, err := svc.Upsert(ctx, userID, domain.ProfileFields{})
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	f := domain.ProfileFields{Status: "Developer", Skills: "go, sql", Company: "Acme"}
	first, err := svc.Upsert(ctx, userID, f)
	require.NoError(t, err)
	second, err := svc.Upsert(ctx, userID, f)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, []string{"go", "sql"}, second.Skills)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, "Ann", list[0].User.Name)
}

func TestProfileService_GetByUser(t *testing.T) {
	ctx := context.Background()
	svc, _, userID := newProfileFixture(t)

	_, err := svc.GetMine(ctx, userID)
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)

	_, err = svc.GetByUser(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrProfileMissing)
	_, err = svc.GetByUser(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrProfileMissing)

	_, err = svc.Upsert(ctx, userID, domain.ProfileFields{Status: "Dev", Skills: "go"})
	require.NoError(t, err)
	p, err := svc.GetByUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "//www.gravatar.com/avatar/x", p.User.Avatar)
}

func TestProfileService_Entries(t *testing.T) {
	ctx := context.Background()
	svc, _, userID := newProfileFixture(t)

	_, err := svc.AddExperience(ctx, userID, domain.ExperienceInput{Title: "Dev", Company: "A", From: "2019-01-01"})
	assert.ErrorIs(t, err, domain.ErrProfileNotFound, "entries need a profile")

	_, err = svc.Upsert(ctx, userID, domain.ProfileFields{Status: "Dev", Skills: "go"})
	require.NoError(t, err)

	p, err := svc.AddExperience(ctx, userID, domain.ExperienceInput{Title: "Dev", Company: "A", From: "2019-01-01"})
	require.NoError(t, err)
	require.Len(t, p.Experience, 1)
	expID := p.Experience[0].ID

	_, err = svc.RemoveExperience(ctx, userID, "missing")
	assert.ErrorIs(t, err, domain.ErrExperienceNotFound)

	p, err = svc.RemoveExperience(ctx, userID, expID)
	require.NoError(t, err)
	assert.Empty(t, p.Experience)

	p, err = svc.AddEducation(ctx, userID, domain.EducationInput{
		School: "MIT", Degree: "BSc", FieldOfStudy: "CS", From: "2015-09-01", To: "2019-06-01",
	})
	require.NoError(t, err)
	require.Len(t, p.Education, 1)

	p, err = svc.RemoveEducation(ctx, userID, "missing")
	require.NoError(t, err)
	assert.Len(t, p.Education, 1)

	p, err = svc.RemoveEducation(ctx, userID, p.Education[0].ID)
	require.NoError(t, err)
	assert.Empty(t, p.Education)
}

func TestProfileService_DeleteRemovesUser(t *testing.T) {
	ctx := context.Background()
	svc, s, userID := newProfileFixture(t)
	_, err := svc.Upsert(ctx, userID, domain.ProfileFields{Status: "Dev", Skills: "go"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, userID))

	_, err = svc.GetMine(ctx, userID)
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
	_, err = s.Users().GetByID(ctx, userID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestProfileService_RetriesOnVersionConflict(t *testing.T) {
	ctx := context.Background()
	profiles := new(MockProfileStore)
	svc := NewProfileService(profiles, new(MockUserStore))

	stored := domain.NewProfile("p1", "u1", domain.ProfileFields{Status: "Dev", Skills: "go"}, time.Now())
	stored.Version = 3

	profiles.On("Get", ctx, "u1").Return(stored, nil)
	profiles.On("Update", ctx, mock.Anything).Return(domain.ErrVersionConflict).Twice()
	profiles.On("Update", ctx, mock.Anything).Return(nil).Once()

	p, err := svc.AddExperience(ctx, "u1", domain.ExperienceInput{Title: "Dev", Company: "A", From: "2020-01-01"})
	require.NoError(t, err)
	assert.Len(t, p.Experience, 1, "mutation applied once to the fresh read")
	profiles.AssertNumberOfCalls(t, "Get", 3)
}

func TestProfileService_RetryExhausted(t *testing.T) {
	ctx := context.Background()
	profiles := new(MockProfileStore)
	svc := NewProfileService(profiles, new(MockUserStore))

	stored := domain.NewProfile("p1", "u1", domain.ProfileFields{Status: "Dev", Skills: "go"}, time.Now())
	profiles.On("Get", ctx, "u1").Return(stored, nil)
	profiles.On("Update", ctx, mock.Anything).Return(domain.ErrVersionConflict)

	_, err := svc.Upsert(ctx, "u1", domain.ProfileFields{Status: "Lead", Skills: "go"})
	assert.True(t, errors.Is(err, ErrRetryExhausted))
	assert.Equal(t, domain.KindInternal, domain.KindOf(err))
	profiles.AssertNumberOfCalls(t, "Update", maxRetries)
}

func TestProfileService_ConcurrentCreateBecomesUpdate(t *testing.T) {
	ctx := context.Background()
	profiles := new(MockProfileStore)
	svc := NewProfileService(profiles, new(MockUserStore))

	existing := domain.NewProfile("p1", "u1", domain.ProfileFields{Status: "Dev", Skills: "go", Bio: "kept"}, time.Now())
	profiles.On("Get", ctx, "u1").Return(nil, domain.ErrProfileNotFound).Once()
	profiles.On("Create", ctx, mock.Anything).Return(domain.ErrVersionConflict).Once()
	profiles.On("Get", ctx, "u1").Return(existing, nil).Once()
	profiles.On("Update", ctx, mock.Anything).Return(nil).Once()

	p, err := svc.Upsert(ctx, "u1", domain.ProfileFields{Status: "Lead", Skills: "rust"})
	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, "kept", p.Bio)
	assert.Equal(t, "Lead", p.Status)
	profiles.AssertExpectations(t)
}
