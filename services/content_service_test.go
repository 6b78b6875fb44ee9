package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/blogem/content-audit/events"
	"github.com/blogem/content-audit/models"
	"github.com/blogem/content-audit/repositories"
	"github.com/blogem/content-audit/repositories/mocks"
	"github.com/blogem/content-audit/userctx"
)

// ContentServiceTestSuite is a test suite for content mutations and the events they publish
type ContentServiceTestSuite struct {
	suite.Suite
	service         ContentService
	mockContentRepo *mocks.MockContentRepository
	bus             *events.Bus
	published       []events.MutationEvent
	logger          *logrus.Logger
	logHook         *logtest.Hook
	ctx             context.Context
}

// SetupTest sets up the test suite before each test
func (suite *ContentServiceTestSuite) SetupTest() {
	logger, _ := logtest.NewNullLogger()
	suite.mockContentRepo = mocks.NewMockContentRepository(suite.T())
	suite.bus = events.NewBus(logger)
	suite.published = nil
	suite.bus.Subscribe(func(_ context.Context, ev events.MutationEvent) {
		suite.published = append(suite.published, ev)
	})
	suite.logger, suite.logHook = logtest.NewNullLogger()
	suite.service = NewContentService(suite.mockContentRepo, suite.bus, suite.logger)
	suite.ctx = userctx.WithPrincipal(context.Background(), &models.Principal{ID: "editor-1"})
}

func form(contentType, data string) *models.ContentRecordForm {
	return &models.ContentRecordForm{ContentType: contentType, Data: json.RawMessage(data)}
}

// TestCreate_PublishesCommittedState tests that create publishes after the write
func (suite *ContentServiceTestSuite) TestCreate_PublishesCommittedState() {
	suite.mockContentRepo.EXPECT().Create(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, r *models.ContentRecord) error {
			assert.Empty(suite.T(), suite.published, "nothing may be published before commit")
			r.ID = "rec-1"
			r.CreatedBy = "editor-1"
			return nil
		}).Once()

	record, err := suite.service.Create(suite.ctx, form("article", `{"title":"Hello"}`))
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "rec-1", record.ID)

	require.Len(suite.T(), suite.published, 1)
	ev := suite.published[0]
	assert.Equal(suite.T(), "article", ev.ContentType)
	assert.Equal(suite.T(), "rec-1", ev.RecordID)
	assert.Equal(suite.T(), models.ActionCreate, ev.Action)
	require.NotNil(suite.T(), ev.ActingUser)
	assert.Equal(suite.T(), "editor-1", *ev.ActingUser)

	var state models.ContentRecord
	require.NoError(suite.T(), json.Unmarshal(ev.State, &state))
	assert.Equal(suite.T(), "rec-1", state.ID)
	assert.JSONEq(suite.T(), `{"title":"Hello"}`, string(state.Data))
}

// TestCreate_ValidationFailure tests that invalid input neither writes nor publishes
func (suite *ContentServiceTestSuite) TestCreate_ValidationFailure() {
	_, err := suite.service.Create(suite.ctx, form("Bad Type", `[]`))
	assert.ErrorIs(suite.T(), err, ErrValidation)
	assert.Empty(suite.T(), suite.published)
}

// TestCreate_RepositoryError tests that a failed write publishes nothing
func (suite *ContentServiceTestSuite) TestCreate_RepositoryError() {
	suite.mockContentRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("constraint failed")).Once()

	_, err := suite.service.Create(suite.ctx, form("article", `{}`))
	assert.Error(suite.T(), err)
	assert.Empty(suite.T(), suite.published)
}

// TestUpdate_PublishesNewState tests update events carry the post-mutation data
func (suite *ContentServiceTestSuite) TestUpdate_PublishesNewState() {
	existing := &models.ContentRecord{ID: "rec-1", ContentType: "article", Data: json.RawMessage(`{"title":"Old"}`)}
	suite.mockContentRepo.EXPECT().GetByID(mock.Anything, "article", "rec-1").Return(existing, nil).Once()
	suite.mockContentRepo.EXPECT().Update(mock.Anything, existing).Return(nil).Once()

	_, err := suite.service.Update(suite.ctx, "rec-1", form("article", `{"title":"New"}`))
	require.NoError(suite.T(), err)

	require.Len(suite.T(), suite.published, 1)
	assert.Equal(suite.T(), models.ActionUpdate, suite.published[0].Action)
	assert.Contains(suite.T(), string(suite.published[0].State), `"title":"New"`)
}

// TestUpdate_NotFound tests that a missing record is reported and not published
func (suite *ContentServiceTestSuite) TestUpdate_NotFound() {
	suite.mockContentRepo.EXPECT().GetByID(mock.Anything, "article", "nope").
		Return(nil, repositories.ErrRecordNotFound).Once()

	_, err := suite.service.Update(suite.ctx, "nope", form("article", `{}`))
	assert.ErrorIs(suite.T(), err, repositories.ErrRecordNotFound)
	assert.Empty(suite.T(), suite.published)
}

// TestDelete_PublishesLastKnownState tests delete events carry the state before removal
func (suite *ContentServiceTestSuite) TestDelete_PublishesLastKnownState() {
	existing := &models.ContentRecord{ID: "rec-1", ContentType: "article", Data: json.RawMessage(`{"title":"Gone"}`)}
	suite.mockContentRepo.EXPECT().GetByID(mock.Anything, "article", "rec-1").Return(existing, nil).Once()
	suite.mockContentRepo.EXPECT().Delete(mock.Anything, "article", "rec-1").Return(nil).Once()

	require.NoError(suite.T(), suite.service.Delete(suite.ctx, "article", "rec-1"))

	require.Len(suite.T(), suite.published, 1)
	assert.Equal(suite.T(), models.ActionDelete, suite.published[0].Action)
	assert.Contains(suite.T(), string(suite.published[0].State), `"title":"Gone"`)
}

// TestSystemInitiatedMutation tests that a context without a principal publishes no actor
func (suite *ContentServiceTestSuite) TestSystemInitiatedMutation() {
	suite.mockContentRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()

	_, err := suite.service.Create(context.Background(), form("article", `{}`))
	require.NoError(suite.T(), err)

	require.Len(suite.T(), suite.published, 1)
	assert.Nil(suite.T(), suite.published[0].ActingUser)
}

// TestFailingAuditStoreDoesNotFailMutation tests failure isolation end to end through the bus
func (suite *ContentServiceTestSuite) TestFailingAuditStoreDoesNotFailMutation() {
	auditRepo := mocks.NewMockAuditRepository(suite.T())
	auditRepo.EXPECT().Insert(mock.Anything, mock.Anything).Return(0, errors.New("audit table is gone")).Times(3)

	logger, _ := logtest.NewNullLogger()
	hook := NewCaptureHook(auditRepo, CaptureConfig{Enabled: true}, WithLogger(logger))
	require.NoError(suite.T(), hook.Init(suite.bus))
	defer hook.Teardown()

	existing := &models.ContentRecord{ID: "rec-1", ContentType: "article", Data: json.RawMessage(`{}`)}
	suite.mockContentRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockContentRepo.EXPECT().GetByID(mock.Anything, "article", "rec-1").Return(existing, nil).Twice()
	suite.mockContentRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockContentRepo.EXPECT().Delete(mock.Anything, "article", "rec-1").Return(nil).Once()

	_, err := suite.service.Create(suite.ctx, form("article", `{}`))
	assert.NoError(suite.T(), err)
	_, err = suite.service.Update(suite.ctx, "rec-1", form("article", `{"v":2}`))
	assert.NoError(suite.T(), err)
	assert.NoError(suite.T(), suite.service.Delete(suite.ctx, "article", "rec-1"))
}

// TestFailedMutationIsNotAudited tests that the mutation outcome stays independent of capture
func (suite *ContentServiceTestSuite) TestFailedMutationIsNotAudited() {
	auditRepo := mocks.NewMockAuditRepository(suite.T())
	hook := NewCaptureHook(auditRepo, CaptureConfig{Enabled: true})
	require.NoError(suite.T(), hook.Init(suite.bus))
	defer hook.Teardown()

	suite.mockContentRepo.EXPECT().Delete(mock.Anything, "article", "rec-1").Return(errors.New("locked")).Once()
	suite.mockContentRepo.EXPECT().GetByID(mock.Anything, "article", "rec-1").
		Return(&models.ContentRecord{ID: "rec-1", ContentType: "article"}, nil).Once()

	assert.Error(suite.T(), suite.service.Delete(suite.ctx, "article", "rec-1"))
	auditRepo.AssertNotCalled(suite.T(), "Insert", mock.Anything, mock.Anything)
}

// TestDelete_UnencodableStateIsLogged tests that a record whose data cannot be
// encoded is still published, without payload, and the failure is logged
func (suite *ContentServiceTestSuite) TestDelete_UnencodableStateIsLogged() {
	broken := &models.ContentRecord{ID: "rec-9", ContentType: "article", Data: json.RawMessage(`{"title":`)}
	suite.mockContentRepo.EXPECT().GetByID(mock.Anything, "article", "rec-9").Return(broken, nil).Once()
	suite.mockContentRepo.EXPECT().Delete(mock.Anything, "article", "rec-9").Return(nil).Once()

	require.NoError(suite.T(), suite.service.Delete(suite.ctx, "article", "rec-9"))

	require.Len(suite.T(), suite.published, 1)
	assert.Equal(suite.T(), models.ActionDelete, suite.published[0].Action)
	assert.Nil(suite.T(), suite.published[0].State)

	entry := suite.logHook.LastEntry()
	require.NotNil(suite.T(), entry)
	assert.Equal(suite.T(), logrus.WarnLevel, entry.Level)
	assert.Equal(suite.T(), "rec-9", entry.Data["record_id"])
	assert.Contains(suite.T(), entry.Data, "error")
}

// TestContentServiceTestSuite runs the content service test suite
func TestContentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ContentServiceTestSuite))
}

func TestNewServices_NilBusDoesNotPanic(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	contentRepo := mocks.NewMockContentRepository(t)
	auditRepo := mocks.NewMockAuditRepository(t)
	contentRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()

	svcs := NewServices(&repositories.Repositories{Content: contentRepo, Audit: auditRepo}, nil, CaptureConfig{Enabled: true}, logger, nil)

	require.NotPanics(t, func() {
		_, err := svcs.Content.Create(context.Background(), form("article", `{"title":"Hello"}`))
		assert.NoError(t, err)
	})
	auditRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}
