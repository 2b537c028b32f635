package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ciaanhq/ciaan-api/comments/models"
	"github.com/ciaanhq/ciaan-api/internal/pagination"
	"github.com/ciaanhq/ciaan-api/internal/types"
	postsErrors "github.com/ciaanhq/ciaan-api/posts/errors"
)

// MockCommentService is a testify mock of services.CommentService
type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) CreateComment(ctx context.Context, author, postID primitive.ObjectID, req *models.CreateCommentRequest) (*models.CommentResponse, error) {
	args := m.Called(ctx, author, postID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CommentResponse), args.Error(1)
}

func (m *MockCommentService) ListComments(ctx context.Context, postID primitive.ObjectID, params pagination.Params) (*models.CommentListResponse, error) {
	args := m.Called(ctx, postID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CommentListResponse), args.Error(1)
}

func newTestApp(service *MockCommentService, userID primitive.ObjectID) *fiber.App {
	app := fiber.New()
	handler := NewCommentHandler(service)

	group := app.Group("/post", func(c *fiber.Ctx) error {
		c.Locals(types.UserCtxName, types.UserContext{UserID: userID, FirstName: "Asha", EmailID: "asha@example.com"})
		return c.Next()
	})
	group.Post("/:postId/comment", handler.CreateComment)
	group.Get("/:postId/comments", handler.ListComments)
	return app
}

func TestCreateCommentEndpoint(t *testing.T) {
	service := new(MockCommentService)
	userID := primitive.NewObjectID()
	postID := primitive.NewObjectID()
	app := newTestApp(service, userID)

	service.On("CreateComment", mock.Anything, userID, postID, mock.AnythingOfType("*models.CreateCommentRequest")).Return(&models.CommentResponse{
		ID:      primitive.NewObjectID().Hex(),
		PostID:  postID.Hex(),
		Content: "nice",
	}, nil)

	body, _ := json.Marshal(models.CreateCommentRequest{Content: "nice"})
	req := httptest.NewRequest(http.MethodPost, "/post/"+postID.Hex()+"/comment", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestCreateCommentEndpointMissingPostStatus(t *testing.T) {
	service := new(MockCommentService)
	userID := primitive.NewObjectID()
	postID := primitive.NewObjectID()
	app := newTestApp(service, userID)

	service.On("CreateComment", mock.Anything, userID, postID, mock.Anything).
		Return(nil, postsErrors.ErrPostNotFound)

	body, _ := json.Marshal(models.CreateCommentRequest{Content: "nice"})
	req := httptest.NewRequest(http.MethodPost, "/post/"+postID.Hex()+"/comment", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListCommentsEndpointDefaults(t *testing.T) {
	service := new(MockCommentService)
	userID := primitive.NewObjectID()
	postID := primitive.NewObjectID()
	app := newTestApp(service, userID)

	service.On("ListComments", mock.Anything, postID, pagination.Params{Page: 1, Limit: 5}).Return(&models.CommentListResponse{
		Comments:   []models.CommentResponse{},
		Pagination: models.CommentsPagination{},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/post/"+postID.Hex()+"/comments", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	service.AssertExpectations(t)
}

func TestMalformedPostIDIsNotFound(t *testing.T) {
	service := new(MockCommentService)
	app := newTestApp(service, primitive.NewObjectID())

	req := httptest.NewRequest(http.MethodGet, "/post/nope/comments", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	service.AssertNotCalled(t, "ListComments", mock.Anything, mock.Anything, mock.Anything)
}
