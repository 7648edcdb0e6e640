package repo

import (
	"death-registry/app/models"

	"gorm.io/gorm"
)

type DeathRepository struct{ db *gorm.DB }

func NewDeathRepository(db *gorm.DB) *DeathRepository { return &DeathRepository{db: db} }

func (r *DeathRepository) CountByName(name string) (int64, error) {
	var count int64
	return count, r.db.Model(&models.Death{}).Where("name = ?", name).Count(&count).Error
}

func (r *DeathRepository) FindByID(id uint) (*models.Death, error) {
	var d models.Death
	if err := r.db.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DeathRepository) ListAll() ([]models.Death, error) {
	var deaths []models.Death
	return deaths, r.db.Order("id ASC").Find(&deaths).Error
}

// CreateWithEvent inserts the record and its audit entry in one transaction.
func (r *DeathRepository) CreateWithEvent(d *models.Death, action string, actorID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(d).Error; err != nil {
			return err
		}
		return tx.Create(&models.DeathEvent{DeathID: d.ID, Action: action, ActorID: actorID}).Error
	})
}

// Decide moves a pending record to the given terminal status. The status
// guard in the UPDATE makes the pending check and the write a single
// compare-and-set, so concurrent deciders cannot both succeed; the loser
// sees gorm.ErrRecordNotFound, same as a record that was never there.
func (r *DeathRepository) Decide(id uint, status string, actorID uint) (*models.Death, error) {
	var d models.Death
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Death{}).
			Where("id = ? AND status = ?", id, models.StatusPending).
			Update("status", status)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Create(&models.DeathEvent{DeathID: id, Action: status, ActorID: actorID}).Error; err != nil {
			return err
		}
		return tx.First(&d, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// EventsByDeathID returns the audit trail for a record, oldest first.
func (r *DeathRepository) EventsByDeathID(deathID uint) ([]models.DeathEvent, error) {
	var events []models.DeathEvent
	return events, r.db.Where("death_id = ?", deathID).Order("id ASC").Find(&events).Error
}
