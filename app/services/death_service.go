package services

import (
	"errors"
	"time"

	"death-registry/app/dto"
	"death-registry/app/models"
	"death-registry/app/policy"
	"death-registry/app/repo"

	validation "github.com/go-ozzo/ozzo-validation"
	"gorm.io/gorm"
)

// DeathService owns the record state machine: records enter as pending or,
// for admins, directly as approved, and leave pending exactly once.
type DeathService struct {
	deaths *repo.DeathRepository
	users  *repo.UserRepository
}

func NewDeathService(deaths *repo.DeathRepository, users *repo.UserRepository) *DeathService {
	return &DeathService{deaths: deaths, users: users}
}

// SubmitResult reports what Submit did with the candidate.
type SubmitResult struct {
	Death *models.Death
	// Published is true when the record went live without review.
	Published bool
}

// Submit creates a record for the acting user. Admin submissions are
// published immediately; anything else waits for an admin decision. The name
// must be unique across every status, so a pending entry blocks an approved
// one with the same name and vice versa.
func (s *DeathService) Submit(req dto.DeathRequest, actorID uint) (*SubmitResult, error) {
	actor, err := s.users.FindByID(actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, validation.Errors{"user_id": errors.New("does not resolve to a user")}
		}
		return nil, err
	}

	count, err := s.deaths.CountByName(req.Name)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, validation.Errors{"name": errors.New("has already been taken")}
	}

	start, err := time.Parse(dto.DateLayout, req.StartDate)
	if err != nil {
		return nil, validation.Errors{"start_date": errors.New("must be a valid date")}
	}
	end, err := time.Parse(dto.DateLayout, req.EndDate)
	if err != nil {
		return nil, validation.Errors{"end_date": errors.New("must be a valid date")}
	}

	d := &models.Death{
		Name:       req.Name,
		StartDate:  start,
		EndDate:    end,
		Profession: req.Profession,
		UserID:     actor.ID,
	}

	if policy.CanDirectlyPublish(actor.Role) {
		d.Status = models.StatusApproved
		if err := s.deaths.CreateWithEvent(d, models.ActionPublished, actor.ID); err != nil {
			return nil, err
		}
		return &SubmitResult{Death: d, Published: true}, nil
	}

	d.Status = models.StatusPending
	if err := s.deaths.CreateWithEvent(d, models.ActionSubmitted, actor.ID); err != nil {
		return nil, err
	}
	return &SubmitResult{Death: d, Published: false}, nil
}

// Decide applies an admin verdict to a pending record. A record that is
// missing or already decided fails with ErrNotFound either way; re-deciding
// is not idempotent so a lost approval race looks like a vanished record
// rather than a silent double publish. The record transitions in place, with
// the audit trail kept in death_events instead of a duplicate approved row.
func (s *DeathService) Decide(id uint, decision string, actor *models.User) (*models.Death, error) {
	if !policy.CanDecideApproval(actor.Role) {
		return nil, ErrForbidden
	}
	if decision != models.StatusApproved && decision != models.StatusRejected {
		return nil, validation.Errors{"status": errors.New("must be either approved or rejected")}
	}
	d, err := s.deaths.Decide(id, decision, actor.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

// ListAll returns every record regardless of status, admins only.
func (s *DeathService) ListAll(actor *models.User) ([]models.Death, error) {
	if !policy.CanListAllDeaths(actor.Role) {
		return nil, ErrForbidden
	}
	return s.deaths.ListAll()
}

// History returns the audit events recorded for one record, oldest first.
func (s *DeathService) History(deathID uint) ([]models.DeathEvent, error) {
	return s.deaths.EventsByDeathID(deathID)
}
