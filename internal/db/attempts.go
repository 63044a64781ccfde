package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// InsertAttempt records one completed interview attempt and returns its ID.
func (db *DB) InsertAttempt(ctx context.Context, userID uuid.UUID, score, totalQuestions int, timeSeconds *int) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO interview_attempts (user_id, score, total_questions, time_seconds)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		userID, score, totalQuestions, timeSeconds,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert attempt: %w", err)
	}
	return id, nil
}

// ListAllAttempts retrieves the full attempt history. The leaderboard
// recomputes from scratch on every request, so this deliberately has no
// pagination.
func (db *DB) ListAllAttempts(ctx context.Context) ([]InterviewAttempt, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, score, total_questions, time_seconds, created_at
		 FROM interview_attempts`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list attempts: %w", err)
	}
	defer rows.Close()

	var attempts []InterviewAttempt
	for rows.Next() {
		var a InterviewAttempt
		if err := rows.Scan(&a.ID, &a.UserID, &a.Score, &a.TotalQuestions, &a.TimeSeconds, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attempt: %w", err)
		}
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}

// ListAttemptsByUser retrieves one user's attempts, newest first, with the
// total count for pagination.
func (db *DB) ListAttemptsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]InterviewAttempt, int, error) {
	var total int
	if err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM interview_attempts WHERE user_id = $1`,
		userID,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attempts: %w", err)
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, score, total_questions, time_seconds, created_at
		 FROM interview_attempts
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2 OFFSET $3`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attempts: %w", err)
	}
	defer rows.Close()

	var attempts []InterviewAttempt
	for rows.Next() {
		var a InterviewAttempt
		if err := rows.Scan(&a.ID, &a.UserID, &a.Score, &a.TotalQuestions, &a.TimeSeconds, &a.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan attempt: %w", err)
		}
		attempts = append(attempts, a)
	}
	return attempts, total, rows.Err()
}
