//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestPatient(t *testing.T, db DBLike, name, email string) uuid.UUID {
	t.Helper()

	patientID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO patients (id, name, email) VALUES ($1, $2, $3) ON CONFLICT (email) DO NOTHING",
		patientID, name, email)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM patients WHERE email = $1", email).Scan(&patientID)
	}

	return patientID
}

func CreateTestSpeciality(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	specialityID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO specialities (id, name) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING",
		specialityID, name)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM specialities WHERE name = $1", name).Scan(&specialityID)
	}

	return specialityID
}

func CreateTestDoctor(t *testing.T, db DBLike, name, email string, specialityID *uuid.UUID, priceCents *int64) uuid.UUID {
	t.Helper()

	doctorID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO doctors (id, name, email, speciality_id, consultation_price_cents) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (email) DO NOTHING",
		doctorID, name, email, specialityID, priceCents)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM doctors WHERE email = $1", email).Scan(&doctorID)
	}

	return doctorID
}

func CreateTestScheduleWindow(t *testing.T, db DBLike, doctorID uuid.UUID, dayOfWeek, startMinute, endMinute, slotMinutes int) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx,
		"INSERT INTO doctor_schedules (id, doctor_id, day_of_week, start_minute, end_minute, slot_minutes) VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (doctor_id, day_of_week, start_minute) DO NOTHING",
		uuid.New(), doctorID, dayOfWeek, startMinute, endMinute, slotMinutes)
	require.NoError(t, err)
}

// CreateTestFullWeekSchedule opens the doctor Monday through Saturday from
// 08:00 to 19:00, matching the default clinic hours plus one evening hour.
func CreateTestFullWeekSchedule(t *testing.T, db DBLike, doctorID uuid.UUID) {
	t.Helper()

	for day := 1; day <= 6; day++ {
		CreateTestScheduleWindow(t, db, doctorID, day, 8*60, 19*60, 30)
	}
}

func CreateTestAppointment(t *testing.T, db DBLike, doctorID, patientID uuid.UUID, scheduledAt time.Time, status string, expiresAt *time.Time, priceCents int64) uuid.UUID {
	t.Helper()

	appointmentID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO appointments (id, doctor_id, patient_id, scheduled_at, status, expires_at, price_cents) VALUES ($1, $2, $3, $4, $5, $6, $7)",
		appointmentID, doctorID, patientID, scheduledAt, status, expiresAt, priceCents)
	require.NoError(t, err)

	return appointmentID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between tests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var tbl string
			if err := rows.Scan(&tbl); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, tbl)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
