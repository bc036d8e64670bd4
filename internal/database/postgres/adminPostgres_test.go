package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/clubhub/clubhub-api/internal/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveAlert(t *testing.T) {
	tests := []struct {
		name         string
		rowsAffected int64
		wantErr      error
	}{
		{
			name:         "unresolved alert is resolved",
			rowsAffected: 1,
			wantErr:      nil,
		},
		{
			name:         "already resolved alert reports not found",
			rowsAffected: 0,
			wantErr:      entity.ErrAlertNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			mock.ExpectExec(regexp.QuoteMeta("UPDATE alerts")).
				WithArgs(int64(7)).
				WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))

			repo := NewAdminRepository(db)
			err = repo.ResolveAlert(context.Background(), 7)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetSystemMetrics(t *testing.T) {
	tests := []struct {
		name      string
		totalLogs int64
		errorLogs int64
		wantRate  *float64
	}{
		{
			name:      "no logs in the last hour leaves the rate null",
			totalLogs: 0,
			errorLogs: 0,
			wantRate:  nil,
		},
		{
			name:      "error rate is errors over total",
			totalLogs: 200,
			errorLogs: 50,
			wantRate:  func() *float64 { r := 0.25; return &r }(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			mock.ExpectQuery(regexp.QuoteMeta("FROM servers")).
				WillReturnRows(sqlmock.NewRows([]string{"total_servers", "servers_online", "servers_offline"}).
					AddRow(5, 3, 2))

			mock.ExpectQuery(regexp.QuoteMeta("FROM event_log")).
				WillReturnRows(sqlmock.NewRows([]string{"total_logs_last_hour", "error_logs_last_hour"}).
					AddRow(tt.totalLogs, tt.errorLogs))

			repo := NewAdminRepository(db)
			metrics, err := repo.GetSystemMetrics(context.Background())

			require.NoError(t, err)
			assert.Equal(t, int64(5), metrics.TotalServers)
			assert.Equal(t, int64(3), metrics.ServersOnline)
			assert.Equal(t, int64(2), metrics.ServersOffline)
			assert.Equal(t, tt.totalLogs, metrics.TotalLogsLastHour)

			if tt.wantRate == nil {
				assert.Nil(t, metrics.ErrorRateLastHour)
			} else {
				require.NotNil(t, metrics.ErrorRateLastHour)
				assert.InDelta(t, *tt.wantRate, *metrics.ErrorRateLastHour, 1e-9)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetUnresolvedAlerts(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"alert_id", "event_id", "student_id", "alert_type", "is_solved", "description"}).
		AddRow(12, 3, nil, "overcapacity", false, "Event over capacity").
		AddRow(9, nil, 44, "suspicious_activity", false, "Rapid RSVP churn")

	mock.ExpectQuery(regexp.QuoteMeta("FROM alerts")).WillReturnRows(rows)

	repo := NewAdminRepository(db)
	alerts, err := repo.GetUnresolvedAlerts(context.Background())

	require.NoError(t, err)
	require.Len(t, alerts, 2)

	assert.Equal(t, int64(12), alerts[0].ID)
	require.NotNil(t, alerts[0].EventID)
	assert.Equal(t, int64(3), *alerts[0].EventID)
	assert.Nil(t, alerts[0].StudentID)

	assert.Nil(t, alerts[1].EventID)
	require.NotNil(t, alerts[1].StudentID)
	assert.Equal(t, int64(44), *alerts[1].StudentID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
