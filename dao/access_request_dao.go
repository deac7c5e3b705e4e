// api/dao/access_request_dao.go
package dao

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	perks_errors "github.com/akshayraj/perks-portal/api/errors"
	logger "github.com/akshayraj/perks-portal/api/logging"
	"github.com/akshayraj/perks-portal/api/model"
)

// AccessRequestDAO persists manual access requests in Postgres. Emails are
// stored lowercased so lookups stay case-insensitive.
type AccessRequestDAO struct {
	pool *pgxpool.Pool
}

func NewAccessRequestDAO(pool *pgxpool.Pool) *AccessRequestDAO {
	return &AccessRequestDAO{pool: pool}
}

func (dao *AccessRequestDAO) CreateAccessRequest(ctx context.Context, request model.AccessRequest) (*model.AccessRequest, error) {
	request.UserEmail = strings.ToLower(request.UserEmail)

	const query = `
		INSERT INTO access_requests (id, user_email, company, message, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING created_at, updated_at`

	err := dao.pool.QueryRow(ctx, query,
		request.ID, request.UserEmail, request.Company, request.Message, request.Status,
	).Scan(&request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, perks_errors.ErrRequestConflict
		}
		logger.Error("Failed to create access request", zap.Error(err), zap.String("email", request.UserEmail))
		return nil, fmt.Errorf("%w: %v", perks_errors.ErrDatabaseOperation, err)
	}

	return &request, nil
}

func (dao *AccessRequestDAO) GetAccessRequest(ctx context.Context, requestID string) (*model.AccessRequest, error) {
	const query = `
		SELECT id, user_email, company, message, status, created_at, updated_at
		FROM access_requests
		WHERE id = $1`

	var request model.AccessRequest
	err := dao.pool.QueryRow(ctx, query, requestID).Scan(
		&request.ID, &request.UserEmail, &request.Company, &request.Message,
		&request.Status, &request.CreatedAt, &request.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, perks_errors.ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", perks_errors.ErrDatabaseOperation, err)
	}
	return &request, nil
}

// ListAccessRequests returns requests newest first, optionally filtered by status.
func (dao *AccessRequestDAO) ListAccessRequests(ctx context.Context, status model.RequestStatus) ([]model.AccessRequest, error) {
	query := `
		SELECT id, user_email, company, message, status, created_at, updated_at
		FROM access_requests`
	args := []interface{}{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := dao.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", perks_errors.ErrDatabaseOperation, err)
	}
	defer rows.Close()

	requests := []model.AccessRequest{}
	for rows.Next() {
		var request model.AccessRequest
		if err := rows.Scan(
			&request.ID, &request.UserEmail, &request.Company, &request.Message,
			&request.Status, &request.CreatedAt, &request.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: %v", perks_errors.ErrDatabaseOperation, err)
		}
		requests = append(requests, request)
	}
	return requests, rows.Err()
}

func (dao *AccessRequestDAO) UpdateAccessRequestStatus(ctx context.Context, requestID string, status model.RequestStatus) (*model.AccessRequest, error) {
	const query = `
		UPDATE access_requests
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, user_email, company, message, status, created_at, updated_at`

	var request model.AccessRequest
	err := dao.pool.QueryRow(ctx, query, requestID, status).Scan(
		&request.ID, &request.UserEmail, &request.Company, &request.Message,
		&request.Status, &request.CreatedAt, &request.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, perks_errors.ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", perks_errors.ErrDatabaseOperation, err)
	}
	return &request, nil
}

// HasApprovedGrant reports whether an approved request exists for the email.
// This is the manual-grant lookup the access engine consumes.
func (dao *AccessRequestDAO) HasApprovedGrant(ctx context.Context, email string) (bool, error) {
	const query = `
		SELECT id FROM access_requests
		WHERE user_email = $1 AND status = 'approved'
		LIMIT 1`

	var id string
	err := dao.pool.QueryRow(ctx, query, strings.ToLower(email)).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %v", perks_errors.ErrDatabaseOperation, err)
	}
	return true, nil
}

func isUniqueViolation(err error) bool {
	// 23505 is the Postgres unique_violation code.
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
