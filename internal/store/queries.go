// Copyright (c) 2025-2026 Nexio Technologies
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"
)

// Queries provides typed access to the gateway's tables.
type Queries struct {
	db *sql.DB
}

// New creates a Queries instance over the given database.
func New(db *sql.DB) *Queries {
	return &Queries{db: db}
}

// ContactSubmission is a persisted contact-form submission.
type ContactSubmission struct {
	ID        int64
	PublicID  string
	Name      string
	Email     string
	Phone     string
	Company   string
	Subject   string
	Message   string
	Forwarded bool
	CreatedAt time.Time
}

// CreateContactSubmissionParams holds the fields for a new submission.
type CreateContactSubmissionParams struct {
	PublicID string
	Name     string
	Email    string
	Phone    string
	Company  string
	Subject  string
	Message  string
}

// CreateContactSubmission persists a contact-form submission.
func (q *Queries) CreateContactSubmission(ctx context.Context, p CreateContactSubmissionParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, `
		INSERT INTO contact_submissions (public_id, name, email, phone, company, subject, message)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.PublicID, p.Name, p.Email, p.Phone, p.Company, p.Subject, p.Message)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// MarkContactForwarded records that a submission reached the ERP.
func (q *Queries) MarkContactForwarded(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE contact_submissions SET forwarded = 1 WHERE id = ?`, id)
	return err
}

// GetContactSubmission fetches one submission by row id.
func (q *Queries) GetContactSubmission(ctx context.Context, id int64) (ContactSubmission, error) {
	var s ContactSubmission
	err := q.db.QueryRowContext(ctx, `
		SELECT id, public_id, name, email, phone, company, subject, message, forwarded, created_at
		FROM contact_submissions WHERE id = ?`, id).
		Scan(&s.ID, &s.PublicID, &s.Name, &s.Email, &s.Phone, &s.Company, &s.Subject, &s.Message, &s.Forwarded, &s.CreatedAt)
	return s, err
}

// CountContactSubmissions returns the number of stored submissions.
func (q *Queries) CountContactSubmissions(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contact_submissions`).Scan(&n)
	return n, err
}

// CreateBookingRequestParams holds the fields for a new booking request.
type CreateBookingRequestParams struct {
	PublicID      string
	Name          string
	Email         string
	Phone         string
	Company       string
	Service       string
	PreferredDate string
	PreferredTime string
	Notes         string
}

// CreateBookingRequest persists a booking request.
func (q *Queries) CreateBookingRequest(ctx context.Context, p CreateBookingRequestParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, `
		INSERT INTO booking_requests (public_id, name, email, phone, company, service, preferred_date, preferred_time, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.PublicID, p.Name, p.Email, p.Phone, p.Company, p.Service, p.PreferredDate, p.PreferredTime, p.Notes)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// CreateNewsletterSignup persists a newsletter signup. Duplicate emails are
// treated as success (the subscriber is already on the list).
func (q *Queries) CreateNewsletterSignup(ctx context.Context, email string) error {
	_, err := q.db.ExecContext(ctx,
		`INSERT INTO newsletter_signups (email) VALUES (?)
		 ON CONFLICT(email) DO NOTHING`, email)
	return err
}

// CreateJobApplicationParams holds the fields for a new job application.
type CreateJobApplicationParams struct {
	PublicID    string
	FullName    string
	Email       string
	Phone       string
	JobSlug     string
	CoverLetter string
	ResumeURL   string
}

// CreateJobApplication persists a job application.
func (q *Queries) CreateJobApplication(ctx context.Context, p CreateJobApplicationParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, `
		INSERT INTO job_applications (public_id, full_name, email, phone, job_slug, cover_letter, resume_url)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.PublicID, p.FullName, p.Email, p.Phone, p.JobSlug, p.CoverLetter, p.ResumeURL)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Event is one operator event-log entry.
type Event struct {
	ID        int64
	Level     string
	Category  string
	Message   string
	Metadata  string
	CreatedAt time.Time
}

// CreateEventParams holds the fields for a new event-log entry.
type CreateEventParams struct {
	Level    string
	Category string
	Message  string
	Metadata string
}

// CreateEvent appends an entry to the operator event log.
func (q *Queries) CreateEvent(ctx context.Context, p CreateEventParams) error {
	metadata := p.Metadata
	if metadata == "" {
		metadata = "{}"
	}
	_, err := q.db.ExecContext(ctx, `
		INSERT INTO events (level, category, message, metadata)
		VALUES (?, ?, ?, ?)`,
		p.Level, p.Category, p.Message, metadata)
	return err
}

// ListRecentEvents returns the newest events up to limit.
func (q *Queries) ListRecentEvents(ctx context.Context, limit int) ([]Event, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT id, level, category, message, metadata, created_at
		FROM events ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var events []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.Level, &e.Category, &e.Message, &e.Metadata, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// GetSiteSetting returns a site-settings value, or "" when absent.
func (q *Queries) GetSiteSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := q.db.QueryRowContext(ctx,
		`SELECT value FROM site_settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}

// SetSiteSetting upserts a site-settings value.
func (q *Queries) SetSiteSetting(ctx context.Context, key, value string) error {
	_, err := q.db.ExecContext(ctx, `
		INSERT INTO site_settings (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value)
	return err
}

// SaveContentSnapshot stores the last good remote payload for an entity type.
func (q *Queries) SaveContentSnapshot(ctx context.Context, entity string, payload []byte) error {
	_, err := q.db.ExecContext(ctx, `
		INSERT INTO content_snapshots (entity, payload, fetched_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(entity) DO UPDATE SET payload = excluded.payload, fetched_at = CURRENT_TIMESTAMP`,
		entity, string(payload))
	return err
}

// GetContentSnapshot returns the stored payload for an entity type, or nil
// when none has been captured.
func (q *Queries) GetContentSnapshot(ctx context.Context, entity string) ([]byte, time.Time, error) {
	var payload string
	var fetchedAt time.Time
	err := q.db.QueryRowContext(ctx,
		`SELECT payload, fetched_at FROM content_snapshots WHERE entity = ?`, entity).
		Scan(&payload, &fetchedAt)
	if err == sql.ErrNoRows {
		return nil, time.Time{}, nil
	}
	if err != nil {
		return nil, time.Time{}, err
	}
	return []byte(payload), fetchedAt, nil
}
