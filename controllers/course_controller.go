package controllers

import (
	"time"

	"github.com/Govind-619/SkillSphere/config"
	"github.com/Govind-619/SkillSphere/models"
	"github.com/Govind-619/SkillSphere/services"
	"github.com/Govind-619/SkillSphere/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CourseRequest represents the request body for creating or replacing a course
type CourseRequest struct {
	Title       string                 `json:"title" binding:"required"`
	Description string                 `json:"description"`
	Price       decimal.Decimal        `json:"price"`
	Duration    int                    `json:"duration"`
	Modules     []services.ModuleInput `json:"modules" binding:"dive"`
}

func (r CourseRequest) input() services.CourseInput {
	return services.CourseInput{
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		Duration:    r.Duration,
		Modules:     r.Modules,
	}
}

type courseSummary struct {
	ID          uint            `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type courseDetail struct {
	ID          uint            `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Duration    int             `json:"duration"`
	Modules     []moduleSummary `json:"modules"`
}

type moduleSummary struct {
	ID      uint   `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

func toCourseDetail(course *models.Course) courseDetail {
	detail := courseDetail{
		ID:          course.ID,
		Title:       course.Title,
		Description: course.Description,
		Price:       course.Price,
		Duration:    course.Duration,
		Modules:     make([]moduleSummary, 0, len(course.Modules)),
	}
	for _, m := range course.Modules {
		detail.Modules = append(detail.Modules, moduleSummary{ID: m.ID, Title: m.Title, Content: m.Content})
	}
	return detail
}

// ListCourses returns a filtered, sorted page of the catalog
func ListCourses(c *gin.Context) {
	utils.LogInfo("ListCourses called")

	page, err := utils.PaginationFromQuery(c)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	courses, err := services.ListCourses(c.Request.Context(), config.DB, services.CourseQuery{
		Title: c.Query("title"),
		Sort:  c.Query("sort"),
		Page:  page,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	data := make([]courseSummary, 0, len(courses))
	for _, course := range courses {
		data = append(data, courseSummary{
			ID:          course.ID,
			Title:       course.Title,
			Description: course.Description,
			Price:       course.Price,
			CreatedAt:   course.CreatedAt,
		})
	}
	utils.SuccessWithPagination(c, "Courses retrieved successfully.", data, page)
}

// GetCourseDetail returns a course with its modules
func GetCourseDetail(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	course, err := services.GetCourse(c.Request.Context(), config.DB, id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, "Course retrieved successfully.", toCourseDetail(course))
}

// CreateCourse adds a course to the catalog
func CreateCourse(c *gin.Context) {
	utils.LogInfo("CreateCourse called")

	var req CourseRequest
	if !bindJSON(c, &req) {
		return
	}

	course, err := services.CreateCourse(c.Request.Context(), config.DB, req.input())
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Created(c, "Course created successfully.", toCourseDetail(course))
}

// UpdateCourse replaces a course and its modules
func UpdateCourse(c *gin.Context) {
	utils.LogInfo("UpdateCourse called")

	id, err := parseID(c, "id")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	var req CourseRequest
	if !bindJSON(c, &req) {
		return
	}

	course, err := services.UpdateCourse(c.Request.Context(), config.DB, id, req.input())
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, "Course updated successfully.", toCourseDetail(course))
}
