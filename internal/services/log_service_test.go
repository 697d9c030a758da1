package services

import (
	"testing"
	"time"

	"github.com/harukimori/study-log-api/internal/models"
	"github.com/harukimori/study-log-api/internal/repository"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type LogServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *LogService
	user    *models.User
	item    *models.StudyItem
}

func (s *LogServiceTestSuite) SetupTest() {
	var err error
	s.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	s.Require().NoError(err)

	err = s.db.AutoMigrate(&models.User{}, &models.StudyItem{}, &models.Log{})
	s.Require().NoError(err)

	s.service = NewLogService(
		repository.NewLogRepository(s.db),
		repository.NewStudyItemRepository(s.db),
	)

	s.user = &models.User{Email: "logs@example.com", Username: "logs", PasswordHash: "x"}
	s.Require().NoError(s.db.Create(s.user).Error)
	s.item = &models.StudyItem{UserID: s.user.ID, Name: "Algorithms", Category: "CS"}
	s.Require().NoError(s.db.Create(s.item).Error)
}

func (s *LogServiceTestSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	s.Require().NoError(err)
	sqlDB.Close()
}

func (s *LogServiceTestSuite) validInput() LogInput {
	return LogInput{
		StudyItemID: s.item.ID,
		Date:        "2024-03-01",
		Content:     "sorting algorithms",
		Duration:    45,
	}
}

func (s *LogServiceTestSuite) TestCreate() {
	log, err := s.service.Create(s.user.ID, s.validInput())
	s.Require().NoError(err)

	s.NotZero(log.ID)
	s.Equal("2024-03-01", log.Date)
	s.Equal(45, log.Duration)
	s.NotNil(log.Tags)
	s.Empty(log.Tags)
	s.False(log.CreatedAt.IsZero())
}

func (s *LogServiceTestSuite) TestCreateMissingFields() {
	input := s.validInput()
	input.Content = "   "
	_, err := s.service.Create(s.user.ID, input)
	s.ErrorIs(err, ErrLogFieldsRequired)

	input = s.validInput()
	input.Date = ""
	_, err = s.service.Create(s.user.ID, input)
	s.ErrorIs(err, ErrLogFieldsRequired)
}

func (s *LogServiceTestSuite) TestCreateDurationValidation() {
	input := s.validInput()
	input.Duration = 0
	_, err := s.service.Create(s.user.ID, input)
	s.ErrorIs(err, ErrLogFieldsRequired)

	input.Duration = -5
	_, err = s.service.Create(s.user.ID, input)
	s.ErrorIs(err, ErrDurationInvalid)

	input.Duration = 1
	_, err = s.service.Create(s.user.ID, input)
	s.NoError(err)
}

func (s *LogServiceTestSuite) TestCreateDateValidation() {
	input := s.validInput()
	input.Date = "not-a-date"
	_, err := s.service.Create(s.user.ID, input)
	s.ErrorIs(err, ErrDateInvalid)

	input.Date = "2024-03-01T09:00:00Z"
	log, err := s.service.Create(s.user.ID, input)
	s.Require().NoError(err)
	s.Equal("2024-03-01", log.Date)
}

func (s *LogServiceTestSuite) TestCreateTagsTrimmedAndFiltered() {
	input := s.validInput()
	input.Tags = []string{" go ", "", "  ", "review"}

	log, err := s.service.Create(s.user.ID, input)
	s.Require().NoError(err)
	s.Equal([]string{"go", "review"}, log.Tags)
}

// A log may only reference the caller's own study items
func (s *LogServiceTestSuite) TestCreateAgainstForeignItem() {
	other := &models.User{Email: "other@example.com", Username: "other", PasswordHash: "x"}
	s.Require().NoError(s.db.Create(other).Error)
	foreign := &models.StudyItem{UserID: other.ID, Name: "Piano", Category: "Music"}
	s.Require().NoError(s.db.Create(foreign).Error)

	input := s.validInput()
	input.StudyItemID = foreign.ID
	_, err := s.service.Create(s.user.ID, input)
	s.ErrorIs(err, ErrItemNotFound)
}

func (s *LogServiceTestSuite) seedLog(date string, createdAt time.Time) *models.Log {
	log := &models.Log{
		UserID:      s.user.ID,
		StudyItemID: s.item.ID,
		Date:        date,
		Content:     "studied",
		Duration:    30,
		Tags:        []string{},
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
	s.Require().NoError(s.db.Create(log).Error)
	return log
}

func (s *LogServiceTestSuite) TestListOrderingAndLimit() {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	s.seedLog("2024-03-01", base)
	s.seedLog("2024-03-03", base)
	early := s.seedLog("2024-03-02", base)
	late := s.seedLog("2024-03-02", base.Add(time.Hour))

	logs, err := s.service.List(ListLogsInput{UserID: s.user.ID})
	s.Require().NoError(err)
	s.Require().Len(logs, 4)
	s.Equal("2024-03-03", logs[0].Date)
	// same-date entries fall back to creation time, newest first
	s.Equal(late.ID, logs[1].ID)
	s.Equal(early.ID, logs[2].ID)
	s.Equal("2024-03-01", logs[3].Date)

	limited, err := s.service.List(ListLogsInput{UserID: s.user.ID, Limit: 2})
	s.Require().NoError(err)
	s.Len(limited, 2)
	s.Equal("2024-03-03", limited[0].Date)
}

func (s *LogServiceTestSuite) TestListFilters() {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	s.seedLog("2024-03-01", base)
	s.seedLog("2024-03-05", base)
	s.seedLog("2024-03-10", base)

	start, end := "2024-03-02", "2024-03-09"
	logs, err := s.service.List(ListLogsInput{UserID: s.user.ID, StartDate: &start, EndDate: &end})
	s.Require().NoError(err)
	s.Require().Len(logs, 1)
	s.Equal("2024-03-05", logs[0].Date)

	itemID := s.item.ID
	logs, err = s.service.List(ListLogsInput{UserID: s.user.ID, StudyItemID: &itemID})
	s.Require().NoError(err)
	s.Len(logs, 3)

	missing := itemID + 100
	logs, err = s.service.List(ListLogsInput{UserID: s.user.ID, StudyItemID: &missing})
	s.Require().NoError(err)
	s.Empty(logs)
}

func (s *LogServiceTestSuite) TestUpdate() {
	log, err := s.service.Create(s.user.ID, s.validInput())
	s.Require().NoError(err)

	input := s.validInput()
	input.Content = "updated content"
	input.Duration = 90
	input.Memo = " a memo "

	updated, err := s.service.Update(log.ID, s.user.ID, input)
	s.Require().NoError(err)
	s.Equal("updated content", updated.Content)
	s.Equal(90, updated.Duration)
	s.Equal("a memo", updated.Memo)
}

func (s *LogServiceTestSuite) TestUpdateNotFound() {
	_, err := s.service.Update(9999, s.user.ID, s.validInput())
	s.ErrorIs(err, ErrLogNotFound)
}

func (s *LogServiceTestSuite) TestDelete() {
	log, err := s.service.Create(s.user.ID, s.validInput())
	s.Require().NoError(err)

	s.Require().NoError(s.service.Delete(log.ID, s.user.ID))

	var count int64
	s.db.Model(&models.Log{}).Count(&count)
	s.Zero(count)
}

// Deleting a missing log fails cleanly and changes nothing
func (s *LogServiceTestSuite) TestDeleteNotFound() {
	log, err := s.service.Create(s.user.ID, s.validInput())
	s.Require().NoError(err)

	s.ErrorIs(s.service.Delete(log.ID+100, s.user.ID), ErrLogNotFound)

	var count int64
	s.db.Model(&models.Log{}).Count(&count)
	s.Equal(int64(1), count)
}

func TestLogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LogServiceTestSuite))
}
