package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/yuzuhara/survey-admin-api/internal/models"
)

func createTestQuestion(t *testing.T, env serviceTestEnv, text string) *models.Question {
	t.Helper()

	qt, err := env.qtService.CreateQuestionType(CreateQuestionTypeInput{
		Name:   "TextInput",
		Values: datatypes.JSON(`{"maxLength": 500}`),
	})
	require.NoError(t, err)

	question, err := env.questionService.CreateQuestion(CreateQuestionInput{
		Question:       text,
		QuestionTypeID: qt.ID,
		Optional:       true,
	})
	require.NoError(t, err)
	return question
}

func TestTemplateService_QuestionSet(t *testing.T) {
	env := setupServiceTestEnv(t)

	question := createTestQuestion(t, env, "How was your day?")

	template, err := env.templateService.CreateTemplate(CreateTemplateInput{Name: "Weekly"})
	require.NoError(t, err)
	require.Equal(t, models.StatusActive, template.Status)

	loaded, err := env.templateService.GetTemplate(template.ID)
	require.NoError(t, err)
	require.Empty(t, loaded.Questions)

	loaded, err = env.templateService.AddQuestion(template.ID, question.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Questions, 1)
	require.Equal(t, question.ID, loaded.Questions[0].QuestionID)

	// duplicate add reports the question, not some other entity
	_, err = env.templateService.AddQuestion(template.ID, question.ID)
	require.ErrorIs(t, err, ErrQuestionAlreadyInTemplate)
	require.Contains(t, err.Error(), "question")

	loaded, err = env.templateService.RemoveQuestion(template.ID, question.ID)
	require.NoError(t, err)
	require.Empty(t, loaded.Questions)

	_, err = env.templateService.RemoveQuestion(template.ID, question.ID)
	require.ErrorIs(t, err, ErrQuestionNotInTemplate)
}

func TestTemplateService_QuestionSet_MissingEntities(t *testing.T) {
	env := setupServiceTestEnv(t)

	question := createTestQuestion(t, env, "How was your day?")
	template, err := env.templateService.CreateTemplate(CreateTemplateInput{Name: "Weekly"})
	require.NoError(t, err)

	_, err = env.templateService.AddQuestion(9999, question.ID)
	require.ErrorIs(t, err, ErrTemplateNotFound)

	_, err = env.templateService.AddQuestion(template.ID, 9999)
	require.ErrorIs(t, err, ErrQuestionNotFound)
}

func TestTemplateService_DeleteVariants(t *testing.T) {
	env := setupServiceTestEnv(t)

	question := createTestQuestion(t, env, "How was your day?")
	template, err := env.templateService.CreateTemplate(CreateTemplateInput{Name: "Weekly"})
	require.NoError(t, err)

	_, err = env.templateService.AddQuestion(template.ID, question.ID)
	require.NoError(t, err)

	soft, err := env.templateService.DeleteTemplate(template.ID, false)
	require.NoError(t, err)
	require.Equal(t, models.StatusInvalid, soft.Status)

	// the soft-deleted template keeps its question set
	loaded, err := env.templateService.GetTemplate(template.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Questions, 1)

	_, err = env.templateService.DeleteTemplate(template.ID, true)
	require.NoError(t, err)

	_, err = env.templateService.GetTemplate(template.ID)
	require.ErrorIs(t, err, ErrTemplateNotFound)

	var count int64
	require.NoError(t, env.db.Model(&models.TemplateQuestion{}).
		Where("template_id = ?", template.ID).
		Count(&count).Error)
	require.Zero(t, count)
}

func TestQuestionService_HardDeletePrunesTemplateReferences(t *testing.T) {
	env := setupServiceTestEnv(t)

	question := createTestQuestion(t, env, "How was your day?")
	template, err := env.templateService.CreateTemplate(CreateTemplateInput{Name: "Weekly"})
	require.NoError(t, err)

	_, err = env.templateService.AddQuestion(template.ID, question.ID)
	require.NoError(t, err)

	_, err = env.questionService.DeleteQuestion(question.ID, true)
	require.NoError(t, err)

	loaded, err := env.templateService.GetTemplate(template.ID)
	require.NoError(t, err)
	require.Empty(t, loaded.Questions)
}

func TestQuestionTypeService_ValuesReplacedWholly(t *testing.T) {
	env := setupServiceTestEnv(t)

	qt, err := env.qtService.CreateQuestionType(CreateQuestionTypeInput{
		Name:   "Scale",
		Values: datatypes.JSON(`{"min": 1, "max": 5}`),
		Units:  "points",
	})
	require.NoError(t, err)

	updated, err := env.qtService.UpdateQuestionType(qt.ID, UpdateQuestionTypeInput{
		Values: datatypes.JSON(`{"min": 0, "max": 10}`),
	})
	require.NoError(t, err)
	require.JSONEq(t, `{"min": 0, "max": 10}`, string(updated.Values))
	require.Equal(t, "points", updated.Units, "fields outside the patch stay untouched")

	// the replacement survives a reload
	reloaded, err := env.qtService.GetQuestionType(qt.ID)
	require.NoError(t, err)
	require.JSONEq(t, `{"min": 0, "max": 10}`, string(reloaded.Values))

	// a patch without values leaves the payload alone
	name := "Rating"
	renamed, err := env.qtService.UpdateQuestionType(qt.ID, UpdateQuestionTypeInput{Name: &name})
	require.NoError(t, err)
	require.Equal(t, "Rating", renamed.Name)
	require.JSONEq(t, `{"min": 0, "max": 10}`, string(renamed.Values))
}

func TestQuestionTypeService_DeleteVariants(t *testing.T) {
	env := setupServiceTestEnv(t)

	qt, err := env.qtService.CreateQuestionType(CreateQuestionTypeInput{
		Name:   "TextInput",
		Values: datatypes.JSON(`{}`),
	})
	require.NoError(t, err)

	soft, err := env.qtService.DeleteQuestionType(qt.ID, false)
	require.NoError(t, err)
	require.Equal(t, models.StatusInvalid, soft.Status)

	_, err = env.qtService.DeleteQuestionType(qt.ID, true)
	require.NoError(t, err)

	_, err = env.qtService.GetQuestionType(qt.ID)
	require.ErrorIs(t, err, ErrQuestionTypeNotFound)
}
