package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/clubhub/internal/app/models"
	"github.com/yigit/clubhub/internal/pkg/apperrors"
	"github.com/yigit/clubhub/internal/pkg/dberrors"
)

func newRegistration() *models.Registration {
	return &models.Registration{
		ID:      models.NewRegistrationID(),
		UserID:  models.NewUserID(),
		EventID: models.NewEventID(),
		Status:  models.RegistrationRegistered,
	}
}

func TestRegistrationRepository_Create(t *testing.T) {
	t.Run("Should insert and read back the registration time", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewRegistrationRepository(mock)
		reg := newRegistration()
		now := time.Now().UTC()

		mock.ExpectQuery("INSERT INTO registrations").
			WithArgs(reg.ID, reg.UserID, reg.EventID, reg.Status).
			WillReturnRows(mock.NewRows([]string{"registered_at"}).AddRow(now))

		require.NoError(t, repo.Create(context.Background(), reg))
		assert.Equal(t, now, reg.RegisteredAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Should translate the duplicate pair", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewRegistrationRepository(mock)
		reg := newRegistration()

		mock.ExpectQuery("INSERT INTO registrations").
			WithArgs(reg.ID, reg.UserID, reg.EventID, reg.Status).
			WillReturnError(&pgconn.PgError{Code: dberrors.UniqueViolation, ConstraintName: dberrors.RegistrationsUserEventKey})

		assert.ErrorIs(t, repo.Create(context.Background(), reg), apperrors.ErrAlreadyRegistered)
	})

	t.Run("Should treat a missing event as not found", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewRegistrationRepository(mock)
		reg := newRegistration()

		mock.ExpectQuery("INSERT INTO registrations").
			WithArgs(reg.ID, reg.UserID, reg.EventID, reg.Status).
			WillReturnError(&pgconn.PgError{Code: dberrors.ForeignKeyViolation})

		assert.ErrorIs(t, repo.Create(context.Background(), reg), apperrors.ErrEventNotFound)
	})
}

func TestRegistrationRepository_ListByUser(t *testing.T) {
	t.Run("Should join events and load participants", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewRegistrationRepository(mock)
		user := models.NewUserID()
		creator := models.NewUserID()
		regID := models.NewRegistrationID()
		eventID := models.NewEventID()
		date := time.Date(2026, 5, 10, 18, 0, 0, 0, time.UTC)
		now := time.Now().UTC()

		columns := append([]string{"id", "user_id", "event_id", "status", "registered_at"}, eventColumns...)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE r.user_id = $1 ORDER BY r.registered_at DESC, r.id")).
			WithArgs(user).
			WillReturnRows(mock.NewRows(columns).AddRow(
				regID, user, eventID, models.RegistrationRegistered, now,
				eventID, "Open", "Rapid", date, date.Add(-time.Hour), creator, 0.0, false, models.EventUpcoming, 1, now, now, "Ada", "a@x.io",
			))
		mock.ExpectQuery(regexp.QuoteMeta("WHERE r.event_id = ANY($1)")).
			WithArgs([]string{string(eventID)}).
			WillReturnRows(mock.NewRows(participantColumns).AddRow(eventID, user, "Bob", "b@x.io"))

		regs, err := repo.ListByUser(context.Background(), user)

		require.NoError(t, err)
		require.Len(t, regs, 1)
		require.NotNil(t, regs[0].Event)
		assert.Equal(t, eventID, regs[0].Event.ID)
		assert.Equal(t, creator, regs[0].Event.Creator.ID)
		require.Len(t, regs[0].Event.Participants, 1)
		assert.Equal(t, user, regs[0].Event.Participants[0].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Should check existence", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewRegistrationRepository(mock)
		user, event := models.NewUserID(), models.NewEventID()

		mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM registrations WHERE user_id = $1 AND event_id = $2)")).
			WithArgs(user, event).
			WillReturnRows(mock.NewRows([]string{"exists"}).AddRow(false))

		ok, err := repo.Exists(context.Background(), user, event)

		require.NoError(t, err)
		assert.False(t, ok)
	})
}
