package repository

import (
	"github.com/skillnet/skillnet-api/internal/models"
	"gorm.io/gorm"
)

// GormSkillRepository is a GORM implementation of SkillRepository
type GormSkillRepository struct {
	db *gorm.DB
}

// NewSkillRepository creates a new SkillRepository
func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &GormSkillRepository{db: db}
}

// Create creates a new catalog skill
func (r *GormSkillRepository) Create(skill *models.Skill) error {
	return r.db.Create(skill).Error
}

// FindByID finds a skill by ID
func (r *GormSkillRepository) FindByID(id uint64) (*models.Skill, error) {
	var skill models.Skill
	if err := r.db.First(&skill, id).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

// FindByName finds a skill by exact name
func (r *GormSkillRepository) FindByName(name string) (*models.Skill, error) {
	var skill models.Skill
	if err := r.db.Where("name = ?", name).First(&skill).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

// List lists catalog skills, optionally filtered by a name substring
func (r *GormSkillRepository) List(nameFilter string) ([]models.Skill, error) {
	var skills []models.Skill
	query := r.db.Order("name ASC")
	if nameFilter != "" {
		query = query.Where("name LIKE ?", "%"+nameFilter+"%")
	}
	if err := query.Find(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}

// Delete removes a skill from the catalog
func (r *GormSkillRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Skill{}, id).Error
}

// CountReferences counts user skills referencing a catalog skill
func (r *GormSkillRepository) CountReferences(skillID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.UserSkill{}).
		Where("skill_id = ?", skillID).
		Count(&count).Error
	return count, err
}

// AddUserSkill attaches a skill to a user
func (r *GormSkillRepository) AddUserSkill(userSkill *models.UserSkill) error {
	return r.db.Create(userSkill).Error
}

// RemoveUserSkill detaches a skill from a user
func (r *GormSkillRepository) RemoveUserSkill(userID, skillID uint64) error {
	return r.db.Where("user_id = ? AND skill_id = ?", userID, skillID).
		Delete(&models.UserSkill{}).Error
}

// FindUserSkill finds a specific (user, skill) pair
func (r *GormSkillRepository) FindUserSkill(userID, skillID uint64) (*models.UserSkill, error) {
	var userSkill models.UserSkill
	if err := r.db.Where("user_id = ? AND skill_id = ?", userID, skillID).
		First(&userSkill).Error; err != nil {
		return nil, err
	}
	return &userSkill, nil
}

// ListUserSkills lists a user's skills with the catalog entry preloaded
func (r *GormSkillRepository) ListUserSkills(userID uint64) ([]models.UserSkill, error) {
	var userSkills []models.UserSkill
	if err := r.db.Preload("Skill").
		Where("user_id = ?", userID).
		Find(&userSkills).Error; err != nil {
		return nil, err
	}
	return userSkills, nil
}
