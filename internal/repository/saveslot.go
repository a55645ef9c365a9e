package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/monopoly-backend/internal/apperror"
)

// SaveSlotRepository stores named save slots. A slot holds one snapshot;
// saving to an existing slot overwrites it.
type SaveSlotRepository interface {
	Save(ctx context.Context, slot string, snap *GameSnapshotV1) error
	Find(ctx context.Context, slot string) (*GameSnapshotV1, error)
	List(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, slot string) error
}

type saveSlotRepository struct {
	conn *sql.DB
}

func NewSaveSlotRepository(conn *sql.DB) SaveSlotRepository {
	return &saveSlotRepository{
		conn: conn,
	}
}

func (that *saveSlotRepository) Save(ctx context.Context, slot string, snap *GameSnapshotV1) error {
	snapJSON, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("could not marshal snapshot: %w", err)
	}

	query := `INSERT INTO save_slots (name, game_id, saved_at, payload) VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET game_id = excluded.game_id, saved_at = excluded.saved_at, payload = excluded.payload`

	_, err = that.conn.ExecContext(ctx, query, slot, snap.ID, snap.SavedAt, snapJSON)
	if err != nil {
		return fmt.Errorf("can't save slot: %w", err)
	}

	return nil
}

func (that *saveSlotRepository) Find(ctx context.Context, slot string) (*GameSnapshotV1, error) {
	query := `SELECT payload FROM save_slots WHERE name = ?`

	var payload []byte

	err := that.conn.QueryRowContext(ctx, query, slot).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.ErrSaveSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't find slot: %w", err)
	}

	var snap GameSnapshotV1
	if err = json.Unmarshal(payload, &snap); err != nil {
		return nil, fmt.Errorf("could not unmarshal snapshot: %w", err)
	}

	return &snap, nil
}

func (that *saveSlotRepository) List(ctx context.Context) ([]string, error) {
	query := `SELECT name FROM save_slots ORDER BY saved_at DESC`

	rows, err := that.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("can't list slots: %w", err)
	}
	defer rows.Close()

	var slots []string
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("can't scan slot: %w", err)
		}
		slots = append(slots, name)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't list slots: %w", err)
	}

	return slots, nil
}

func (that *saveSlotRepository) Delete(ctx context.Context, slot string) error {
	query := `DELETE FROM save_slots WHERE name = ?`

	_, err := that.conn.ExecContext(ctx, query, slot)
	if err != nil {
		return fmt.Errorf("can't delete slot: %w", err)
	}

	return nil
}
