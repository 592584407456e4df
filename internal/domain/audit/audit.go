package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Actions recorded against compensation state.
const (
	ActionPolicyUpdate     = "policy.update"
	ActionHolidayCreate    = "holiday.create"
	ActionHolidayDelete    = "holiday.delete"
	ActionStructureReplace = "salary_structure.replace"
	ActionPayrollRun       = "payroll.run"
	ActionLoanCreate       = "loan.create"
)

type Event struct {
	ID        string          `json:"id"`
	ActorID   string          `json:"actorId"`
	Action    string          `json:"action"`
	EntityID  string          `json:"entityId,omitempty"`
	RequestID string          `json:"requestId,omitempty"`
	Detail    json.RawMessage `json:"detail,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

type Entry struct {
	ActorID   string
	Action    string
	EntityID  string
	RequestID string
	Detail    any
}

type Filter struct {
	Action  string
	ActorID string
}

type Service struct {
	db *pgxpool.Pool
}

func New(db *pgxpool.Pool) *Service {
	return &Service{db: db}
}

func (s *Service) Record(ctx context.Context, tenantID string, entry Entry) error {
	var detail []byte
	if entry.Detail != nil {
		payload, err := json.Marshal(entry.Detail)
		if err != nil {
			return err
		}
		detail = payload
	}

	_, err := s.db.Exec(ctx, `
    INSERT INTO audit_events (tenant_id, actor_user_id, action, entity_id, request_id, detail_json)
    VALUES ($1,$2,$3,$4,$5,$6)
  `, tenantID, entry.ActorID, entry.Action, entry.EntityID, entry.RequestID, detail)
	return err
}

func (s *Service) List(ctx context.Context, tenantID string, filter Filter, limit, offset int) ([]Event, error) {
	query := `
    SELECT id, actor_user_id, action, COALESCE(entity_id, ''), COALESCE(request_id, ''), detail_json, created_at
    FROM audit_events
    WHERE tenant_id = $1`
	args := []any{tenantID}
	if filter.Action != "" {
		query += fmt.Sprintf(" AND action = $%d", len(args)+1)
		args = append(args, filter.Action)
	}
	if filter.ActorID != "" {
		query += fmt.Sprintf(" AND actor_user_id::text = $%d", len(args)+1)
		args = append(args, filter.ActorID)
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var evt Event
		if err := rows.Scan(&evt.ID, &evt.ActorID, &evt.Action, &evt.EntityID, &evt.RequestID, &evt.Detail, &evt.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, evt)
	}
	return events, nil
}
