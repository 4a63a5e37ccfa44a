package services

import (
	"context"
	"errors"
	"strings"

	"github.com/Govind-619/SkillSphere/models"
	"github.com/Govind-619/SkillSphere/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CourseQuery filters and pages the catalog
type CourseQuery struct {
	Title string
	Sort  string
	Page  *utils.Pagination
}

// ModuleInput is one module of a course being created or replaced
type ModuleInput struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
}

// CourseInput carries the admin-editable fields of a course
type CourseInput struct {
	Title       string
	Description string
	Price       decimal.Decimal
	Duration    int
	Modules     []ModuleInput
}

func (in CourseInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return utils.ValidationErr("Validation error: title is required.", nil)
	}
	if in.Price.IsNegative() {
		return utils.ValidationErr("Validation error: price must not be negative.", nil)
	}
	if in.Duration < 0 {
		return utils.ValidationErr("Validation error: duration must not be negative.", nil)
	}
	for _, m := range in.Modules {
		if strings.TrimSpace(m.Title) == "" {
			return utils.ValidationErr("Validation error: module title is required.", nil)
		}
	}
	return nil
}

func (in CourseInput) modules() []models.Module {
	out := make([]models.Module, 0, len(in.Modules))
	for i, m := range in.Modules {
		out = append(out, models.Module{
			Title:    strings.TrimSpace(m.Title),
			Content:  m.Content,
			Position: i + 1,
		})
	}
	return out
}

func orderedModules(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC, id ASC")
}

// ListCourses returns one page of the catalog and fills in q.Page totals
func ListCourses(ctx context.Context, db *gorm.DB, q CourseQuery) ([]models.Course, error) {
	sort, err := utils.ParseSort(q.Sort, utils.SortDesc)
	if err != nil {
		return nil, err
	}

	base := db.WithContext(ctx).Model(&models.Course{})
	if title := strings.TrimSpace(q.Title); title != "" {
		base = base.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(title)+"%")
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, utils.InternalError("Failed to count courses", err)
	}
	q.Page.SetTotal(total)

	var courses []models.Course
	err = q.Page.Apply(base.Session(&gorm.Session{})).
		Order(utils.OrderClause("created_at", sort)).
		Order(utils.OrderClause("id", sort)).
		Find(&courses).Error
	if err != nil {
		return nil, utils.InternalError("Failed to list courses", err)
	}
	return courses, nil
}

// GetCourse loads a course with its ordered modules
func GetCourse(ctx context.Context, db *gorm.DB, id uint) (*models.Course, error) {
	var course models.Course
	if err := db.WithContext(ctx).Preload("Modules", orderedModules).First(&course, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError("Course not found.", ErrCourseNotFound)
		}
		return nil, utils.InternalError("Failed to load course", err)
	}
	return &course, nil
}

// CreateCourse stores a course together with its modules
func CreateCourse(ctx context.Context, db *gorm.DB, in CourseInput) (*models.Course, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	course := models.Course{
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Price:       in.Price.Round(2),
		Duration:    in.Duration,
		Modules:     in.modules(),
	}
	if err := db.WithContext(ctx).Create(&course).Error; err != nil {
		return nil, utils.InternalError("Failed to create course", err)
	}

	utils.LogInfo("Created course %d %q with %d modules", course.ID, course.Title, len(course.Modules))
	return &course, nil
}

// UpdateCourse replaces a course's fields and its module list
func UpdateCourse(ctx context.Context, db *gorm.DB, id uint, in CourseInput) (*models.Course, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var course models.Course
		if err := tx.First(&course, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NotFoundError("Course not found.", ErrCourseNotFound)
			}
			return utils.InternalError("Failed to load course", err)
		}

		err := tx.Model(&course).Updates(map[string]interface{}{
			"title":       strings.TrimSpace(in.Title),
			"description": in.Description,
			"price":       in.Price.Round(2),
			"duration":    in.Duration,
		}).Error
		if err != nil {
			return utils.InternalError("Failed to update course", err)
		}

		if err := tx.Unscoped().Where("course_id = ?", course.ID).Delete(&models.Module{}).Error; err != nil {
			return utils.InternalError("Failed to replace modules", err)
		}
		modules := in.modules()
		for i := range modules {
			modules[i].CourseID = course.ID
		}
		if len(modules) > 0 {
			if err := tx.Create(&modules).Error; err != nil {
				return utils.InternalError("Failed to replace modules", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	utils.LogInfo("Updated course %d", id)
	return GetCourse(ctx, db, id)
}
