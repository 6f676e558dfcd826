// Copyright (c) 2025-2026 Nexio Technologies
// SPDX-License-Identifier: GPL-3.0-or-later

package erpnext

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nexiotech/sitegate/internal/model"
	"github.com/nexiotech/sitegate/internal/util"
)

// employeeDoc mirrors the Employee fields the website needs. ERPNext has no
// slug concept, so one is derived from the employee name.
type employeeDoc struct {
	Name        string `json:"name"`
	FullName    string `json:"employee_name"`
	Designation string `json:"designation"`
	Bio         string `json:"bio"`
	Image       string `json:"image"`
	CompanyMail string `json:"company_email"`
}

var employeeFields = []string{"name", "employee_name", "designation", "bio", "image", "company_email"}

// TransformEmployee maps an Employee record onto a TeamMember.
func TransformEmployee(id int64, doc employeeDoc) model.TeamMember {
	return model.TeamMember{
		ID:    id,
		Name:  doc.FullName,
		Slug:  util.Slugify(doc.FullName),
		Role:  doc.Designation,
		Bio:   doc.Bio,
		Photo: doc.Image,
		Email: doc.CompanyMail,
	}
}

// Employees lists active employees as team members. Record order follows the
// ERP listing; ids are positional since Employee names are strings.
func (c *Client) Employees(ctx context.Context) ([]model.TeamMember, error) {
	raws, err := c.list(ctx, "Employee", employeeFields)
	if err != nil {
		return nil, err
	}

	members := make([]model.TeamMember, 0, len(raws))
	for i, raw := range raws {
		var doc employeeDoc
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("decoding employee: %w", err)
		}
		members = append(members, TransformEmployee(int64(i+1), doc))
	}
	return members, nil
}

// TeamMemberBySlug scans the employee list for a derived slug match.
// ERPNext cannot filter on a field it does not store.
func (c *Client) TeamMemberBySlug(ctx context.Context, slug string) (*model.TeamMember, error) {
	members, err := c.Employees(ctx)
	if err != nil {
		return nil, err
	}
	for i := range members {
		if members[i].Slug == slug {
			return &members[i], nil
		}
	}
	return nil, nil
}

// jobOpeningDoc mirrors the Job Opening fields the website needs.
type jobOpeningDoc struct {
	Name        string `json:"name"`
	JobTitle    string `json:"job_title"`
	Department  string `json:"department"`
	Location    string `json:"location"`
	EmpType     string `json:"employment_type"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Route       string `json:"route"`
}

var jobOpeningFields = []string{"name", "job_title", "department", "location", "employment_type", "description", "status", "route"}

// TransformJobOpening maps a Job Opening record onto a JobListing. The slug
// comes from the record's route when present, else it is derived from the
// job title.
func TransformJobOpening(id int64, doc jobOpeningDoc) model.JobListing {
	slug := doc.Route
	if slug == "" || !util.IsValidSlug(slug) {
		slug = util.Slugify(doc.JobTitle)
	}
	return model.JobListing{
		ID:           id,
		Title:        doc.JobTitle,
		Slug:         slug,
		Department:   doc.Department,
		Location:     doc.Location,
		Type:         doc.EmpType,
		Description:  doc.Description,
		Requirements: []string{},
		Active:       doc.Status == "Open",
	}
}

// JobOpenings lists job openings as job listings. Closed openings are kept
// with Active false so callers can decide what to show.
func (c *Client) JobOpenings(ctx context.Context) ([]model.JobListing, error) {
	raws, err := c.list(ctx, "Job Opening", jobOpeningFields)
	if err != nil {
		return nil, err
	}

	jobs := make([]model.JobListing, 0, len(raws))
	for i, raw := range raws {
		var doc jobOpeningDoc
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("decoding job opening: %w", err)
		}
		jobs = append(jobs, TransformJobOpening(int64(i+1), doc))
	}
	return jobs, nil
}

// JobBySlug scans the opening list for a slug match.
func (c *Client) JobBySlug(ctx context.Context, slug string) (*model.JobListing, error) {
	jobs, err := c.JobOpenings(ctx)
	if err != nil {
		return nil, err
	}
	for i := range jobs {
		if jobs[i].Slug == slug {
			return &jobs[i], nil
		}
	}
	return nil, nil
}
