package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Raghvendrath3/test-generation-app/internal/models"
)

func setupExamTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Subject{},
		&models.Chapter{},
		&models.Question{},
		&models.Option{},
		&models.Test{},
		&models.TestQuestion{},
		&models.StudentAttempt{},
		&models.StudentAnswer{},
	))
	return db
}

func TestChapterRepositoryMaxOrderIndex(t *testing.T) {
	db := setupExamTestDB(t)
	repo := NewChapterRepository(db)

	max, err := repo.MaxOrderIndex(context.Background(), "subj_empty")
	require.NoError(t, err)
	require.Equal(t, 0, max)

	require.NoError(t, repo.Create(context.Background(), &models.Chapter{ID: "chap_a1", SubjectID: "subj_a", Name: "One", OrderIndex: 1}))
	require.NoError(t, repo.Create(context.Background(), &models.Chapter{ID: "chap_a2", SubjectID: "subj_a", Name: "Two", OrderIndex: 2}))
	require.NoError(t, repo.Create(context.Background(), &models.Chapter{ID: "chap_b1", SubjectID: "subj_b", Name: "Other", OrderIndex: 7}))

	max, err = repo.MaxOrderIndex(context.Background(), "subj_a")
	require.NoError(t, err)
	require.Equal(t, 2, max)

	chapters, err := repo.ListBySubject(context.Background(), "subj_a")
	require.NoError(t, err)
	require.Len(t, chapters, 2)
	require.Equal(t, "chap_a1", chapters[0].ID)
	require.Equal(t, "chap_a2", chapters[1].ID)
}

func TestQuestionRepositorySumMarks(t *testing.T) {
	db := setupExamTestDB(t)
	repo := NewQuestionRepository(db)

	require.NoError(t, repo.Create(context.Background(), &models.Question{ID: "ques_sum1", ChapterID: "chap_sum", QuestionText: "a", QuestionType: models.QuestionTypeShortAnswer, Marks: 4, CorrectAnswer: "x"}))
	require.NoError(t, repo.Create(context.Background(), &models.Question{ID: "ques_sum2", ChapterID: "chap_sum", QuestionText: "b", QuestionType: models.QuestionTypeShortAnswer, Marks: 6, CorrectAnswer: "y"}))

	total, err := repo.SumMarks(context.Background(), []string{"ques_sum1", "ques_sum2"})
	require.NoError(t, err)
	require.Equal(t, 10, total)

	// unknown ids contribute nothing
	total, err = repo.SumMarks(context.Background(), []string{"ques_sum1", "ques_nope"})
	require.NoError(t, err)
	require.Equal(t, 4, total)

	total, err = repo.SumMarks(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, 0, total)
}

func TestQuestionRepositoryListByChapterOrdersOptions(t *testing.T) {
	db := setupExamTestDB(t)
	repo := NewQuestionRepository(db)

	question := models.Question{
		ID:            "ques_opt",
		ChapterID:     "chap_opt",
		QuestionText:  "Pick",
		QuestionType:  models.QuestionTypeMCQ,
		Marks:         1,
		CorrectAnswer: "B",
		Options: []models.Option{
			{ID: "opt_2", QuestionID: "ques_opt", OptionText: "B", OrderIndex: 1},
			{ID: "opt_1", QuestionID: "ques_opt", OptionText: "A", OrderIndex: 0},
			{ID: "opt_3", QuestionID: "ques_opt", OptionText: "C", OrderIndex: 2},
		},
	}
	require.NoError(t, repo.Create(context.Background(), &question))

	questions, err := repo.ListByChapter(context.Background(), "chap_opt")
	require.NoError(t, err)
	require.Len(t, questions, 1)
	require.Len(t, questions[0].Options, 3)
	require.Equal(t, "A", questions[0].Options[0].OptionText)
	require.Equal(t, "B", questions[0].Options[1].OptionText)
	require.Equal(t, "C", questions[0].Options[2].OptionText)
}

func TestTestRepositoryCreateWithQuestionsAndLinks(t *testing.T) {
	db := setupExamTestDB(t)
	questions := NewQuestionRepository(db)
	repo := NewTestRepository(db)

	require.NoError(t, questions.Create(context.Background(), &models.Question{ID: "ques_t1", ChapterID: "chap_t", QuestionText: "first", QuestionType: models.QuestionTypeShortAnswer, Marks: 3, CorrectAnswer: "a"}))
	require.NoError(t, questions.Create(context.Background(), &models.Question{ID: "ques_t2", ChapterID: "chap_t", QuestionText: "second", QuestionType: models.QuestionTypeShortAnswer, Marks: 2, CorrectAnswer: "b"}))

	test := models.Test{ID: "test_links", TeacherID: "teach_links", Title: "Linked", DurationMinutes: 20, TotalMarks: 5}
	links := []models.TestQuestion{
		{ID: "testq_1", TestID: "test_links", QuestionID: "ques_t2", OrderIndex: 0},
		{ID: "testq_2", TestID: "test_links", QuestionID: "ques_t1", OrderIndex: 1},
	}
	require.NoError(t, repo.CreateWithQuestions(context.Background(), &test, links))

	got, err := repo.GetByID(context.Background(), "test_links")
	require.NoError(t, err)
	require.Equal(t, 5, got.TotalMarks)

	loaded, err := repo.LinksForTest(context.Background(), "test_links")
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	require.Equal(t, "ques_t2", loaded[0].QuestionID)
	require.Equal(t, "second", loaded[0].Question.QuestionText)
	require.Equal(t, "ques_t1", loaded[1].QuestionID)
}

func TestTestRepositoryCreateWithQuestionsRollsBackOnDuplicateLink(t *testing.T) {
	db := setupExamTestDB(t)
	repo := NewTestRepository(db)

	test := models.Test{ID: "test_dup", TeacherID: "teach_dup", Title: "Dup", DurationMinutes: 10}
	links := []models.TestQuestion{
		{ID: "testq_d1", TestID: "test_dup", QuestionID: "ques_d", OrderIndex: 0},
		{ID: "testq_d2", TestID: "test_dup", QuestionID: "ques_d", OrderIndex: 1},
	}
	require.Error(t, repo.CreateWithQuestions(context.Background(), &test, links))

	// the unique index failure must also undo the test row
	_, err := repo.GetByID(context.Background(), "test_dup")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestAttemptRepositoryQuestionsForTestFollowsLinkOrder(t *testing.T) {
	db := setupExamTestDB(t)
	questions := NewQuestionRepository(db)
	tests := NewTestRepository(db)
	repo := NewAttemptRepository(db)

	require.NoError(t, questions.Create(context.Background(), &models.Question{ID: "ques_o1", ChapterID: "chap_o", QuestionText: "late", QuestionType: models.QuestionTypeShortAnswer, Marks: 1, CorrectAnswer: "a"}))
	require.NoError(t, questions.Create(context.Background(), &models.Question{ID: "ques_o2", ChapterID: "chap_o", QuestionText: "early", QuestionType: models.QuestionTypeShortAnswer, Marks: 1, CorrectAnswer: "b"}))

	test := models.Test{ID: "test_order", TeacherID: "teach_o", Title: "Ordered", DurationMinutes: 10}
	links := []models.TestQuestion{
		{ID: "testq_o1", TestID: "test_order", QuestionID: "ques_o2", OrderIndex: 0},
		{ID: "testq_o2", TestID: "test_order", QuestionID: "ques_o1", OrderIndex: 1},
	}
	require.NoError(t, tests.CreateWithQuestions(context.Background(), &test, links))

	got, err := repo.QuestionsForTest(context.Background(), "test_order")
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "early", got[0].QuestionText)
	require.Equal(t, "late", got[1].QuestionText)
}

func TestAttemptRepositoryGradeAnswer(t *testing.T) {
	db := setupExamTestDB(t)
	repo := NewAttemptRepository(db)

	require.NoError(t, repo.InsertAnswers(context.Background(), []models.StudentAnswer{
		{ID: "ans_g1", AttemptID: "att_grade", QuestionID: "ques_g1", StudentAnswer: "42"},
	}))

	require.NoError(t, repo.GradeAnswer(context.Background(), "att_grade", "ques_g1", true, 5))

	answers, err := repo.AnswersForAttempt(context.Background(), "att_grade")
	require.NoError(t, err)
	require.Len(t, answers, 1)
	require.NotNil(t, answers[0].IsCorrect)
	require.True(t, *answers[0].IsCorrect)
	require.Equal(t, 5, answers[0].MarksObtained)
}

func TestAttemptRepositoryInTransactionRollsBack(t *testing.T) {
	db := setupExamTestDB(t)
	repo := NewAttemptRepository(db)

	boom := errors.New("boom")
	err := repo.InTransaction(context.Background(), func(tx AttemptRepository) error {
		if err := tx.Create(context.Background(), &models.StudentAttempt{
			ID:     "att_rollback",
			TestID: "test_rb",
			Status: models.AttemptStatusInProgress,
		}); err != nil {
			return err
		}
		if err := tx.InsertAnswers(context.Background(), []models.StudentAnswer{
			{ID: "ans_rb", AttemptID: "att_rollback", QuestionID: "ques_rb", StudentAnswer: "x"},
		}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = repo.GetByID(context.Background(), "att_rollback")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	answers, err := repo.AnswersForAttempt(context.Background(), "att_rollback")
	require.NoError(t, err)
	require.Empty(t, answers)
}

func TestDashboardRepositoryTeacherStats(t *testing.T) {
	db := setupExamTestDB(t)
	repo := NewDashboardRepository(db)

	require.NoError(t, db.Create(&models.Subject{ID: "subj_dash", Name: "Science", TeacherID: "teach_dash"}).Error)
	require.NoError(t, db.Create(&models.Chapter{ID: "chap_dash", SubjectID: "subj_dash", Name: "Physics", OrderIndex: 1}).Error)
	require.NoError(t, db.Create(&models.Question{ID: "ques_dash", ChapterID: "chap_dash", QuestionText: "q", QuestionType: models.QuestionTypeShortAnswer, Marks: 10, CorrectAnswer: "a"}).Error)
	require.NoError(t, db.Create(&models.Test{ID: "test_dash", TeacherID: "teach_dash", Title: "T", DurationMinutes: 10, TotalMarks: 10}).Error)
	require.NoError(t, db.Create(&models.StudentAttempt{ID: "att_dash1", TestID: "test_dash", StudentID: "stud_dash", Status: models.AttemptStatusGraded, TotalMarks: 10, ObtainedMarks: 7}).Error)
	require.NoError(t, db.Create(&models.StudentAttempt{ID: "att_dash2", TestID: "test_dash", StudentID: "stud_dash", Status: models.AttemptStatusInProgress}).Error)

	stats, err := repo.TeacherStats(context.Background(), "teach_dash")
	require.NoError(t, err)
	require.Equal(t, int64(1), stats.Subjects)
	require.Equal(t, int64(1), stats.Chapters)
	require.Equal(t, int64(1), stats.Questions)
	require.Equal(t, int64(1), stats.Tests)
	require.Equal(t, int64(2), stats.AttemptsTaken)
	require.Equal(t, int64(1), stats.GradedAttempts)
	require.Equal(t, int64(7), stats.MarksObtained)
	require.Equal(t, int64(10), stats.MarksPossible)
}

func TestUserRepositoryGetByEmail(t *testing.T) {
	db := setupExamTestDB(t)
	repo := NewUserRepository(db)

	user := models.User{ID: "teach_repo", Name: "Repo Teacher", Email: "repo-teacher@example.com", PasswordHash: "hash", Role: models.RoleTeacher}
	require.NoError(t, repo.Create(context.Background(), &user))

	got, err := repo.GetByEmail(context.Background(), "repo-teacher@example.com")
	require.NoError(t, err)
	require.Equal(t, "teach_repo", got.ID)

	_, err = repo.GetByEmail(context.Background(), "missing@example.com")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
