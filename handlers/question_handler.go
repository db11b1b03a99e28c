package handlers

import (
	"strings"

	"github.com/anyango/dev_circle/database"
	"github.com/anyango/dev_circle/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type QuestionRequest struct {
	Title   string   `json:"title" validate:"required,min=5,max=130"`
	Content string   `json:"content" validate:"required,min=20"`
	Tags    []string `json:"tags" validate:"required,min=1,max=5,dive,min=1,max=50"`
}

func CreateQuestion(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	var req QuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	question := models.Question{
		AuthorID: user.ID,
		Title:    req.Title,
		Content:  req.Content,
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&question).Error; err != nil {
			return err
		}
		tags, err := upsertTags(tx, req.Tags)
		if err != nil {
			return err
		}
		return tx.Model(&question).Association("Tags").Append(tags)
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create question"})
	}

	return c.Status(fiber.StatusCreated).JSON(question)
}

// upsertTags resolves tag names to rows, creating unknown names on demand.
func upsertTags(tx *gorm.DB, names []string) ([]*models.Tag, error) {
	tags := make([]*models.Tag, 0, len(names))
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		var tag models.Tag
		if err := tx.Where("name = ?", name).FirstOrCreate(&tag, models.Tag{Name: name}).Error; err != nil {
			return nil, err
		}
		tags = append(tags, &tag)
	}
	return tags, nil
}

func GetQuestion(c *fiber.Ctx) error {
	var question models.Question
	if err := database.DB.
		Preload("Tags").
		Preload("Author").
		First(&question, "id = ?", c.Params("questionId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Question not found"})
	}
	return c.JSON(question)
}

// IncrementQuestionView bumps the view counter. Fired by the page on load;
// last-write-wins is fine for a counter that only feeds listings.
func IncrementQuestionView(c *fiber.Ctx) error {
	result := database.DB.Model(&models.Question{}).
		Where("id = ?", c.Params("questionId")).
		Update("views", gorm.Expr("views + 1"))
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record view"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Question not found"})
	}
	return c.JSON(fiber.Map{"message": "View recorded"})
}

func UpdateQuestion(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	var req QuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var question models.Question
	if err := database.DB.First(&question, "id = ?", c.Params("questionId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Question not found"})
	}
	if question.AuthorID != user.ID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You are not the author of this question"})
	}

	question.Title = req.Title
	question.Content = req.Content

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&question).Error; err != nil {
			return err
		}
		tags, err := upsertTags(tx, req.Tags)
		if err != nil {
			return err
		}
		return tx.Model(&question).Association("Tags").Replace(tags)
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update question"})
	}

	return c.JSON(question)
}

func DeleteQuestion(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	var question models.Question
	if err := database.DB.First(&question, "id = ?", c.Params("questionId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Question not found"})
	}
	if question.AuthorID != user.ID && user.Role != models.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You are not the author of this question"})
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&question).Association("Tags").Clear(); err != nil {
			return err
		}
		if err := tx.Where("question_id = ?", question.ID).Delete(&models.Answer{}).Error; err != nil {
			return err
		}
		return tx.Delete(&question).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete question"})
	}

	return c.JSON(fiber.Map{"message": "Question deleted"})
}

// ListQuestions is the main feed: optional text search over the title plus a
// fixed sort order per filter key.
func ListQuestions(c *fiber.Ctx) error {
	page, offset := pageParams(c, defaultPageSize)

	query := database.DB.Model(&models.Question{}).Preload("Tags").Preload("Author")
	if q := c.Query("q"); q != "" {
		query = query.Where("title ILIKE ?", "%"+q+"%")
	}

	switch c.Query("filter") {
	case "frequent":
		query = query.Order("views desc, created_at desc")
	case "unanswered":
		query = query.Where("answers = 0").Order("created_at desc")
	default: // newest
		query = query.Order("created_at desc")
	}

	var questions []models.Question
	if err := query.Limit(defaultPageSize + 1).Offset(offset).Find(&questions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch questions"})
	}

	hasNext := hasNextPage(len(questions), defaultPageSize)
	if hasNext {
		questions = questions[:defaultPageSize]
	}

	return c.JSON(fiber.Map{"questions": questions, "page": page, "has_next": hasNext})
}
