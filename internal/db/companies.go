package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

const companyColumns = `id, name, name_normalized, website, industry, size,
	location, remote_policy, benefits, tech_stack, created_at, updated_at`

func scanCompany(row interface{ Scan(dest ...any) error }) (*Company, error) {
	var c Company
	err := row.Scan(&c.ID, &c.Name, &c.NameNormalized, &c.Website, &c.Industry,
		&c.Size, &c.Location, &c.RemotePolicy, &c.Benefits, &c.TechStack,
		&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListCompanies returns every company record. Used to seed the in-run
// dedup index at the start of an ingestion run.
func (db *DB) ListCompanies(ctx context.Context) ([]Company, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+companyColumns+` FROM companies ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	var companies []Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, *c)
	}
	return companies, rows.Err()
}

// CreateCompany inserts a new company and returns the stored record.
func (db *DB) CreateCompany(ctx context.Context, input CompanyInput) (*Company, error) {
	normalized := NormalizeName(input.Name)
	if normalized == "" {
		return nil, fmt.Errorf("company name cannot be empty")
	}

	c, err := scanCompany(db.pool.QueryRow(ctx,
		`INSERT INTO companies (name, name_normalized, website, industry, size,
			location, remote_policy, benefits, tech_stack)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+companyColumns,
		input.Name, normalized, input.Website, input.Industry, input.Size,
		input.Location, input.RemotePolicy,
		jsonList(input.Benefits), jsonList(input.TechStack),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	return c, nil
}

// UpdateCompany refreshes the mutable fields of an existing company. Empty
// input fields leave the stored value in place.
func (db *DB) UpdateCompany(ctx context.Context, id uuid.UUID, input CompanyInput) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE companies SET
			website = CASE WHEN $2 <> '' THEN $2 ELSE website END,
			industry = CASE WHEN $3 <> '' THEN $3 ELSE industry END,
			size = CASE WHEN $4 <> '' THEN $4 ELSE size END,
			location = CASE WHEN $5 <> '' THEN $5 ELSE location END,
			remote_policy = CASE WHEN $6 <> '' THEN $6 ELSE remote_policy END,
			updated_at = NOW()
		 WHERE id = $1`,
		id, input.Website, input.Industry, input.Size, input.Location, input.RemotePolicy,
	)
	if err != nil {
		return fmt.Errorf("failed to update company: %w", err)
	}
	return nil
}
