package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// SQLiteMatchLogRepo implements MatchLogRepo using a SQLite database.
type SQLiteMatchLogRepo struct {
	db *sql.DB
}

// NewSQLiteMatchLogRepo creates a new SQLiteMatchLogRepo.
func NewSQLiteMatchLogRepo(db *sql.DB) *SQLiteMatchLogRepo {
	return &SQLiteMatchLogRepo{db: db}
}

func (r *SQLiteMatchLogRepo) Create(ctx context.Context, m *MatchLog) error {
	query := `INSERT INTO match_logs (id, channel_id, topic, matched, created_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		m.ChannelID,
		m.Topic,
		boolToInt(m.Matched),
		m.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting match log: %w", err)
	}
	return nil
}

func (r *SQLiteMatchLogRepo) GetByID(ctx context.Context, id string) (*MatchLog, error) {
	query := `SELECT id, channel_id, topic, matched, created_at
		FROM match_logs WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	m, err := scanMatchLog(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("match log: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning match log: %w", err)
	}
	return m, nil
}

func (r *SQLiteMatchLogRepo) ListRecent(ctx context.Context, days int) ([]*MatchLog, error) {
	query := `SELECT id, channel_id, topic, matched, created_at
		FROM match_logs
		WHERE created_at >= date('now', ? || ' days')
		ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, fmt.Sprintf("-%d", days))
	if err != nil {
		return nil, fmt.Errorf("listing recent match logs: %w", err)
	}
	defer rows.Close()

	var logs []*MatchLog
	for rows.Next() {
		m, err := scanMatchLog(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning match log row: %w", err)
		}
		logs = append(logs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating match logs: %w", err)
	}
	return logs, nil
}

func (r *SQLiteMatchLogRepo) CountByTopic(ctx context.Context) ([]TopicCount, error) {
	query := `SELECT topic, COUNT(*) FROM match_logs
		WHERE matched = 1
		GROUP BY topic
		ORDER BY COUNT(*) DESC, topic`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("counting matches by topic: %w", err)
	}
	defer rows.Close()

	var counts []TopicCount
	for rows.Next() {
		var tc TopicCount
		if err := rows.Scan(&tc.Topic, &tc.Count); err != nil {
			return nil, fmt.Errorf("scanning topic count: %w", err)
		}
		counts = append(counts, tc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating topic counts: %w", err)
	}
	return counts, nil
}

// scanMatchLog scans one row via the given scan function, converting the
// stored timestamp and matched flag back to Go types.
func scanMatchLog(scan func(dest ...any) error) (*MatchLog, error) {
	var m MatchLog
	var matched int
	var createdAtStr string

	if err := scan(&m.ID, &m.ChannelID, &m.Topic, &matched, &createdAtStr); err != nil {
		return nil, err
	}

	m.Matched = intToBool(matched)
	t, err := time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	m.CreatedAt = t
	return &m, nil
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}
