package services

import (
	"context"
	"errors"
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/blogem/content-audit/database"
	"github.com/blogem/content-audit/models"
	"github.com/blogem/content-audit/repositories"
	"github.com/blogem/content-audit/repositories/mocks"
)

// AuditQueryServiceTestSuite is a test suite for the Query method
type AuditQueryServiceTestSuite struct {
	suite.Suite
	service       AuditQueryService
	mockAuditRepo *mocks.MockAuditRepository
}

// SetupTest sets up the test suite before each test
func (suite *AuditQueryServiceTestSuite) SetupTest() {
	suite.mockAuditRepo = mocks.NewMockAuditRepository(suite.T())
	suite.service = NewAuditQueryService(suite.mockAuditRepo)
}

func entriesAt(ts ...time.Time) []models.AuditLogEntry {
	out := make([]models.AuditLogEntry, len(ts))
	for i, t := range ts {
		out[i] = models.AuditLogEntry{ID: int64(i + 1), ContentType: "article", RecordID: "1", Action: models.ActionUpdate, Timestamp: t}
	}
	return out
}

// TestQuery_FirstPage tests the three-entry, page-size-two scenario
func (suite *AuditQueryServiceTestSuite) TestQuery_FirstPage() {
	t1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	t2, t3 := t1.Add(time.Hour), t1.Add(2*time.Hour)

	suite.mockAuditRepo.EXPECT().Count(mock.Anything, models.AuditFilter{}).Return(3, nil).Once()
	suite.mockAuditRepo.EXPECT().FindMany(mock.Anything, models.AuditFilter{}, 2, 0).Return(entriesAt(t3, t2), nil).Once()

	criteria, err := models.NewQueryCriteria(1, 2)
	require.NoError(suite.T(), err)

	page, err := suite.service.Query(context.Background(), criteria)
	require.NoError(suite.T(), err)

	require.Len(suite.T(), page.Entries, 2)
	assert.Equal(suite.T(), t3, page.Entries[0].Timestamp)
	assert.Equal(suite.T(), t2, page.Entries[1].Timestamp)
	assert.Equal(suite.T(), models.Pagination{Page: 1, PageSize: 2, PageCount: 2, Total: 3}, page.Pagination)
}

// TestQuery_SecondPage tests that the offset follows page and size
func (suite *AuditQueryServiceTestSuite) TestQuery_SecondPage() {
	t1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	suite.mockAuditRepo.EXPECT().Count(mock.Anything, models.AuditFilter{}).Return(3, nil).Once()
	suite.mockAuditRepo.EXPECT().FindMany(mock.Anything, models.AuditFilter{}, 2, 2).Return(entriesAt(t1), nil).Once()

	page, err := suite.service.Query(context.Background(), models.QueryCriteria{Page: 2, PageSize: 2})
	require.NoError(suite.T(), err)

	require.Len(suite.T(), page.Entries, 1)
	assert.Equal(suite.T(), t1, page.Entries[0].Timestamp)
	assert.Equal(suite.T(), models.Pagination{Page: 2, PageSize: 2, PageCount: 2, Total: 3}, page.Pagination)
}

// TestQuery_BeyondLastPage tests that an empty page still reports the full total
func (suite *AuditQueryServiceTestSuite) TestQuery_BeyondLastPage() {
	suite.mockAuditRepo.EXPECT().Count(mock.Anything, models.AuditFilter{}).Return(3, nil).Once()
	suite.mockAuditRepo.EXPECT().FindMany(mock.Anything, models.AuditFilter{}, 10, 90).Return(nil, nil).Once()

	page, err := suite.service.Query(context.Background(), models.QueryCriteria{Page: 10})
	require.NoError(suite.T(), err)

	assert.NotNil(suite.T(), page.Entries)
	assert.Empty(suite.T(), page.Entries)
	assert.Equal(suite.T(), models.Pagination{Page: 10, PageSize: 10, PageCount: 1, Total: 3}, page.Pagination)
}

// TestQuery_EmptyStore tests zero totals
func (suite *AuditQueryServiceTestSuite) TestQuery_EmptyStore() {
	suite.mockAuditRepo.EXPECT().Count(mock.Anything, models.AuditFilter{}).Return(0, nil).Once()
	suite.mockAuditRepo.EXPECT().FindMany(mock.Anything, models.AuditFilter{}, 10, 0).Return([]models.AuditLogEntry{}, nil).Once()

	page, err := suite.service.Query(context.Background(), models.QueryCriteria{})
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), 0, page.Pagination.PageCount)
	assert.Equal(suite.T(), 0, page.Pagination.Total)
}

// TestQuery_SameFilterForCountAndFind tests that both store calls see identical predicates
func (suite *AuditQueryServiceTestSuite) TestQuery_SameFilterForCountAndFind() {
	ct, user, action := "article", "u1", models.ActionDelete
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)
	want := models.AuditFilter{ContentType: &ct, User: &user, Action: &action, StartDate: &start, EndDate: &end}

	suite.mockAuditRepo.EXPECT().Count(mock.Anything, want).Return(1, nil).Once()
	suite.mockAuditRepo.EXPECT().FindMany(mock.Anything, want, 10, 0).Return(entriesAt(start), nil).Once()

	_, err := suite.service.Query(context.Background(), models.QueryCriteria{
		ContentType: &ct, User: &user, Action: &action, StartDate: &start, EndDate: &end,
	})
	require.NoError(suite.T(), err)
}

// TestQuery_StoreFailure tests that store errors are wrapped
func (suite *AuditQueryServiceTestSuite) TestQuery_StoreFailure() {
	storeErr := errors.New("connection refused")
	suite.mockAuditRepo.EXPECT().Count(mock.Anything, mock.Anything).Return(0, storeErr).Maybe()
	suite.mockAuditRepo.EXPECT().FindMany(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, storeErr).Maybe()

	_, err := suite.service.Query(context.Background(), models.QueryCriteria{})
	assert.ErrorIs(suite.T(), err, ErrStoreFailure)
	assert.ErrorIs(suite.T(), err, storeErr)
}

// TestQuery_InvalidCriteriaNeverReachStore tests validation before any store access
func (suite *AuditQueryServiceTestSuite) TestQuery_InvalidCriteriaNeverReachStore() {
	start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(-time.Hour)

	for _, c := range []models.QueryCriteria{
		{Page: -1},
		{StartDate: &start, EndDate: &end},
	} {
		_, err := suite.service.Query(context.Background(), c)
		var verrs models.ValidationErrors
		assert.ErrorAs(suite.T(), err, &verrs)
	}
	suite.mockAuditRepo.AssertNotCalled(suite.T(), "Count", mock.Anything, mock.Anything)
	suite.mockAuditRepo.AssertNotCalled(suite.T(), "FindMany", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// TestQuery_ClampsPageSize tests the upper page size bound
func (suite *AuditQueryServiceTestSuite) TestQuery_ClampsPageSize() {
	suite.mockAuditRepo.EXPECT().Count(mock.Anything, mock.Anything).Return(250, nil).Once()
	suite.mockAuditRepo.EXPECT().FindMany(mock.Anything, mock.Anything, models.MaxPageSize, 0).Return([]models.AuditLogEntry{}, nil).Once()

	page, err := suite.service.Query(context.Background(), models.QueryCriteria{PageSize: 1000})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.MaxPageSize, page.Pagination.PageSize)
	assert.Equal(suite.T(), 3, page.Pagination.PageCount)
}

// TestAuditQueryServiceTestSuite runs the query service test suite
func TestAuditQueryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuditQueryServiceTestSuite))
}

func TestQuery_PagesFarBeyondTheEndAreEmpty(t *testing.T) {
	db, err := database.InitializeDatabase(filepath.Join(t.TempDir(), "audit.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := repositories.NewAuditRepository(db)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, err := repo.Insert(context.Background(), &models.AuditLogEntry{
			ContentType: "article",
			RecordID:    "1",
			Action:      models.ActionUpdate,
			Timestamp:   base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	service := NewAuditQueryService(repo)

	for _, raw := range []string{
		"page=1152921504606846977&pageSize=16",
		"page=184467440737095517&pageSize=100",
		"page=9223372036854775807",
	} {
		values, err := url.ParseQuery(raw)
		require.NoError(t, err, raw)
		criteria, err := models.ParseQueryCriteria(values)
		require.NoError(t, err, raw)

		page, err := service.Query(context.Background(), criteria)
		require.NoError(t, err, raw)

		assert.NotNil(t, page.Entries, raw)
		assert.Empty(t, page.Entries, raw)
		assert.Equal(t, 3, page.Pagination.Total, raw)
		assert.Equal(t, models.PageCount(3, criteria.PageSize), page.Pagination.PageCount, raw)
		assert.Equal(t, criteria.Page, page.Pagination.Page, raw)
	}
}
