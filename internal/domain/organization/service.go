package organization

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hrpay/internal/domain/compensation"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// GetPolicy returns the tenant's organization policy, falling back to the
// default when nothing has been configured yet.
func (s *Service) GetPolicy(ctx context.Context, tenantID string) (compensation.OrganizationPolicy, error) {
	var raw []byte
	err := s.store.DB.QueryRow(ctx, `
    SELECT policy_json
    FROM organization_policies
    WHERE tenant_id = $1
  `, tenantID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return DefaultPolicy(), nil
	}
	if err != nil {
		return compensation.OrganizationPolicy{}, err
	}

	var policy compensation.OrganizationPolicy
	if err := json.Unmarshal(raw, &policy); err != nil {
		return compensation.OrganizationPolicy{}, err
	}
	return policy, nil
}

func (s *Service) UpdatePolicy(ctx context.Context, tenantID string, policy compensation.OrganizationPolicy) error {
	if err := ValidatePolicy(policy); err != nil {
		return err
	}
	raw, err := json.Marshal(policy)
	if err != nil {
		return err
	}
	_, err = s.store.DB.Exec(ctx, `
    INSERT INTO organization_policies (tenant_id, policy_json)
    VALUES ($1,$2)
    ON CONFLICT (tenant_id)
    DO UPDATE SET policy_json = EXCLUDED.policy_json, updated_at = now()
  `, tenantID, raw)
	return err
}

func (s *Service) ListHolidays(ctx context.Context, tenantID string, year int) ([]Holiday, error) {
	rows, err := s.store.DB.Query(ctx, `
    SELECT id, holiday_date, name, COALESCE(category, '')
    FROM holidays
    WHERE tenant_id = $1 AND EXTRACT(YEAR FROM holiday_date) = $2
    ORDER BY holiday_date
  `, tenantID, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holidays []Holiday
	for rows.Next() {
		var holiday Holiday
		if err := rows.Scan(&holiday.ID, &holiday.Date, &holiday.Name, &holiday.Category); err != nil {
			return nil, err
		}
		holidays = append(holidays, holiday)
	}
	return holidays, nil
}

// HolidaysForMonth adapts the stored holiday rows into the engine's view of
// one month.
func (s *Service) HolidaysForMonth(ctx context.Context, tenantID string, year int, month time.Month) ([]compensation.Holiday, error) {
	stored, err := s.ListHolidays(ctx, tenantID, year)
	if err != nil {
		return nil, err
	}
	var out []compensation.Holiday
	for _, holiday := range stored {
		if holiday.Date.Month() != month {
			continue
		}
		out = append(out, compensation.Holiday{
			Date:     holiday.Date,
			Name:     holiday.Name,
			Category: holiday.Category,
		})
	}
	return out, nil
}

func (s *Service) CreateHoliday(ctx context.Context, tenantID string, date time.Time, name, category string) (string, error) {
	var id string
	err := s.store.DB.QueryRow(ctx, `
    INSERT INTO holidays (tenant_id, holiday_date, name, category)
    VALUES ($1,$2,$3,$4)
    RETURNING id
  `, tenantID, date, name, category).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Service) DeleteHoliday(ctx context.Context, tenantID, holidayID string) error {
	tag, err := s.store.DB.Exec(ctx, "DELETE FROM holidays WHERE tenant_id = $1 AND id = $2", tenantID, holidayID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrHolidayNotFound
	}
	return nil
}
