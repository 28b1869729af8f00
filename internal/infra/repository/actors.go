package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"clinicbook/internal/infra"
	"clinicbook/internal/pkg/pgconv"
	"clinicbook/internal/usecase/commands"
)

type DoctorReads struct {
	pool *pgxpool.Pool
}

func NewDoctorReads(pool *pgxpool.Pool) commands.DoctorReads {
	return &DoctorReads{pool: pool}
}

func (r *DoctorReads) FindByID(ctx context.Context, id uuid.UUID) (*commands.DoctorSnapshot, error) {
	const query = `
		SELECT id, name, email, consultation_price_cents
		FROM doctors
		WHERE id = $1 AND active
	`

	var (
		s     commands.DoctorSnapshot
		price pgtype.Int8
	)
	err := r.pool.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(&s.ID, &s.Name, &s.Email, &price)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("doctor not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find doctor", err)
	}
	if price.Valid {
		s.ConsultationPriceCents = &price.Int64
	}
	return &s, nil
}

type PatientReads struct {
	pool *pgxpool.Pool
}

func NewPatientReads(pool *pgxpool.Pool) commands.PatientReads {
	return &PatientReads{pool: pool}
}

func (r *PatientReads) FindByID(ctx context.Context, id uuid.UUID) (*commands.PatientSnapshot, error) {
	const query = `SELECT id, name, email FROM patients WHERE id = $1`

	var s commands.PatientSnapshot
	err := r.pool.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(&s.ID, &s.Name, &s.Email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("patient not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find patient", err)
	}
	return &s, nil
}

type SpecialityReads struct {
	pool *pgxpool.Pool
}

func NewSpecialityReads(pool *pgxpool.Pool) commands.SpecialityReads {
	return &SpecialityReads{pool: pool}
}

func (r *SpecialityReads) FindByID(ctx context.Context, id uuid.UUID) (*commands.SpecialitySnapshot, error) {
	const query = `SELECT id, name FROM specialities WHERE id = $1`

	var s commands.SpecialitySnapshot
	err := r.pool.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(&s.ID, &s.Name)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("speciality not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find speciality", err)
	}
	return &s, nil
}
