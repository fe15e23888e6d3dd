package process

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"dossier/internal/phase"
	"dossier/internal/process/models"
	id "dossier/pkg/domain"
	"dossier/pkg/platform/sentinel"
)

// Postgres persists process aggregates. Field groups, parties, and the status
// history are stored as JSONB: they are read and written wholesale with the
// aggregate and never queried field-by-field.
//
// Schema:
//
//	CREATE TABLE processes (
//	    id               UUID PRIMARY KEY,
//	    client_name      TEXT NOT NULL,
//	    status           TEXT NOT NULL,
//	    status_history   JSONB NOT NULL DEFAULT '[]',
//	    personal_data    JSONB NOT NULL DEFAULT '{}',
//	    financial_data   JSONB NOT NULL DEFAULT '{}',
//	    real_estate_data JSONB NOT NULL DEFAULT '{}',
//	    credit_data      JSONB NOT NULL DEFAULT '{}',
//	    co_buyers        JSONB NOT NULL DEFAULT '[]',
//	    seller           JSONB,
//	    broker           JSONB,
//	    email            TEXT NOT NULL DEFAULT '',
//	    phone            TEXT NOT NULL DEFAULT '',
//	    created_at       TIMESTAMPTZ NOT NULL,
//	    updated_at       TIMESTAMPTZ NOT NULL
//	);
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) Create(ctx context.Context, process *models.Process) error {
	row, err := toRow(process)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO processes (
			id, client_name, status, status_history,
			personal_data, financial_data, real_estate_data, credit_data,
			co_buyers, seller, broker, email, phone, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		row.id, row.clientName, row.status, row.statusHistory,
		row.personal, row.financial, row.realEstate, row.credit,
		row.coBuyers, row.seller, row.broker, row.email, row.phone,
		process.CreatedAt, process.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("insert process: %w", err)
	}
	return nil
}

func (s *Postgres) FindByID(ctx context.Context, processID id.ProcessID) (*models.Process, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, client_name, status, status_history,
		       personal_data, financial_data, real_estate_data, credit_data,
		       co_buyers, seller, broker, email, phone, created_at, updated_at
		FROM processes WHERE id = $1`,
		uuid.UUID(processID),
	)
	process, err := scanProcess(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find process: %w", err)
	}
	return process, nil
}

func (s *Postgres) Update(ctx context.Context, process *models.Process) error {
	row, err := toRow(process)
	if err != nil {
		return err
	}
	result, err := s.db.ExecContext(ctx, `
		UPDATE processes SET
			client_name = $2, status = $3, status_history = $4,
			personal_data = $5, financial_data = $6, real_estate_data = $7, credit_data = $8,
			co_buyers = $9, seller = $10, broker = $11, email = $12, phone = $13,
			updated_at = $14
		WHERE id = $1`,
		row.id, row.clientName, row.status, row.statusHistory,
		row.personal, row.financial, row.realEstate, row.credit,
		row.coBuyers, row.seller, row.broker, row.email, row.phone,
		process.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update process: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update process rows affected: %w", err)
	}
	if affected == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

type processRow struct {
	id            uuid.UUID
	clientName    string
	status        string
	statusHistory []byte
	personal      []byte
	financial     []byte
	realEstate    []byte
	credit        []byte
	coBuyers      []byte
	seller        []byte
	broker        []byte
	email         string
	phone         string
}

func toRow(process *models.Process) (*processRow, error) {
	history, err := json.Marshal(process.StatusHistory)
	if err != nil {
		return nil, fmt.Errorf("marshal status history: %w", err)
	}
	personal, err := json.Marshal(process.Personal)
	if err != nil {
		return nil, fmt.Errorf("marshal personal data: %w", err)
	}
	financial, err := json.Marshal(process.Financial)
	if err != nil {
		return nil, fmt.Errorf("marshal financial data: %w", err)
	}
	realEstate, err := json.Marshal(process.RealEstate)
	if err != nil {
		return nil, fmt.Errorf("marshal real estate data: %w", err)
	}
	credit, err := json.Marshal(process.Credit)
	if err != nil {
		return nil, fmt.Errorf("marshal credit data: %w", err)
	}
	coBuyers, err := json.Marshal(process.CoBuyers)
	if err != nil {
		return nil, fmt.Errorf("marshal co-buyers: %w", err)
	}
	row := &processRow{
		id:            uuid.UUID(process.ID),
		clientName:    process.ClientName,
		status:        string(process.Status),
		statusHistory: history,
		personal:      personal,
		financial:     financial,
		realEstate:    realEstate,
		credit:        credit,
		coBuyers:      coBuyers,
		email:         process.Email,
		phone:         process.Phone,
	}
	if process.Seller != nil {
		if row.seller, err = json.Marshal(process.Seller); err != nil {
			return nil, fmt.Errorf("marshal seller: %w", err)
		}
	}
	if process.Broker != nil {
		if row.broker, err = json.Marshal(process.Broker); err != nil {
			return nil, fmt.Errorf("marshal broker: %w", err)
		}
	}
	return row, nil
}

func scanProcess(row *sql.Row) (*models.Process, error) {
	var (
		rawID      uuid.UUID
		process    models.Process
		status     string
		history    []byte
		personal   []byte
		financial  []byte
		realEstate []byte
		credit     []byte
		coBuyers   []byte
		seller     []byte
		broker     []byte
	)
	err := row.Scan(
		&rawID, &process.ClientName, &status, &history,
		&personal, &financial, &realEstate, &credit,
		&coBuyers, &seller, &broker, &process.Email, &process.Phone,
		&process.CreatedAt, &process.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	process.ID = id.ProcessID(rawID)
	process.Status = phase.ID(status)
	if err := json.Unmarshal(history, &process.StatusHistory); err != nil {
		return nil, fmt.Errorf("unmarshal status history: %w", err)
	}
	if err := json.Unmarshal(personal, &process.Personal); err != nil {
		return nil, fmt.Errorf("unmarshal personal data: %w", err)
	}
	if err := json.Unmarshal(financial, &process.Financial); err != nil {
		return nil, fmt.Errorf("unmarshal financial data: %w", err)
	}
	if err := json.Unmarshal(realEstate, &process.RealEstate); err != nil {
		return nil, fmt.Errorf("unmarshal real estate data: %w", err)
	}
	if err := json.Unmarshal(credit, &process.Credit); err != nil {
		return nil, fmt.Errorf("unmarshal credit data: %w", err)
	}
	if err := json.Unmarshal(coBuyers, &process.CoBuyers); err != nil {
		return nil, fmt.Errorf("unmarshal co-buyers: %w", err)
	}
	if len(seller) > 0 {
		if err := json.Unmarshal(seller, &process.Seller); err != nil {
			return nil, fmt.Errorf("unmarshal seller: %w", err)
		}
	}
	if len(broker) > 0 {
		if err := json.Unmarshal(broker, &process.Broker); err != nil {
			return nil, fmt.Errorf("unmarshal broker: %w", err)
		}
	}
	return &process, nil
}
