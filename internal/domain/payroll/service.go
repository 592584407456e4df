package payroll

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"hrpay/internal/domain/organization"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

type Service struct {
	store      *Store
	org        *organization.Service
	workers    int
	payslipDir string
}

func NewService(store *Store, org *organization.Service, workers int, payslipDir string) *Service {
	if workers <= 0 {
		workers = 1
	}
	return &Service{store: store, org: org, workers: workers, payslipDir: payslipDir}
}
