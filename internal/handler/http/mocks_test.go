package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"notewell/internal/logger"
	"notewell/internal/service"
	"notewell/internal/utils"
	"notewell/models"
)

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	return m.loginFn(ctx, user)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// mockNoteService implements service.NoteService for unit tests.
type mockNoteService struct {
	listFn     func(ctx context.Context, userID int64, tag string) ([]models.Note, error)
	searchFn   func(ctx context.Context, userID int64, query string) ([]models.Note, error)
	listTagsFn func(ctx context.Context, userID int64) ([]string, error)
	getFn      func(ctx context.Context, userID, noteID int64) (models.Note, error)
	createFn   func(ctx context.Context, userID int64, draft models.NoteDraft) (models.Note, error)
	updateFn   func(ctx context.Context, userID, noteID int64, draft models.NoteDraft) (models.Note, error)
	deleteFn   func(ctx context.Context, userID, noteID int64) error
}

func (m *mockNoteService) ListNotes(ctx context.Context, userID int64, tag string) ([]models.Note, error) {
	return m.listFn(ctx, userID, tag)
}

func (m *mockNoteService) SearchNotes(ctx context.Context, userID int64, query string) ([]models.Note, error) {
	return m.searchFn(ctx, userID, query)
}

func (m *mockNoteService) ListTags(ctx context.Context, userID int64) ([]string, error) {
	return m.listTagsFn(ctx, userID)
}

func (m *mockNoteService) GetNote(ctx context.Context, userID, noteID int64) (models.Note, error) {
	return m.getFn(ctx, userID, noteID)
}

func (m *mockNoteService) CreateNote(ctx context.Context, userID int64, draft models.NoteDraft) (models.Note, error) {
	return m.createFn(ctx, userID, draft)
}

func (m *mockNoteService) UpdateNote(ctx context.Context, userID, noteID int64, draft models.NoteDraft) (models.Note, error) {
	return m.updateFn(ctx, userID, noteID, draft)
}

func (m *mockNoteService) DeleteNote(ctx context.Context, userID, noteID int64) error {
	return m.deleteFn(ctx, userID, noteID)
}

// mockAIService implements service.AIService for unit tests.
type mockAIService struct {
	enabled     bool
	summarizeFn func(ctx context.Context, content string) (string, error)
	expandFn    func(ctx context.Context, content string) (string, error)
	scrapeFn    func(ctx context.Context, url string) (string, error)
	chatFn      func(ctx context.Context, userID int64, message string) (string, error)
}

func (m *mockAIService) Enabled() bool {
	return m.enabled
}

func (m *mockAIService) Summarize(ctx context.Context, content string) (string, error) {
	return m.summarizeFn(ctx, content)
}

func (m *mockAIService) ExpandContent(ctx context.Context, content string) (string, error) {
	return m.expandFn(ctx, content)
}

func (m *mockAIService) ScrapeAndSummarize(ctx context.Context, url string) (string, error) {
	return m.scrapeFn(ctx, url)
}

func (m *mockAIService) ChatWithNotes(ctx context.Context, userID int64, message string) (string, error) {
	return m.chatFn(ctx, userID, message)
}

// newTestHandler builds a Handler around the given service mocks.
// Nil mocks are allowed for services the test does not exercise.
func newTestHandler(t *testing.T, auth service.AuthService, notes service.NoteService, ai service.AIService) *Handler {
	t.Helper()
	return NewHandler(&service.Services{
		AuthService: auth,
		NoteService: notes,
		AIService:   ai,
	}, logger.Nop())
}

// injectNopLogger attaches a discard logger to the request context so that
// handlers invoked outside the middleware chain can still call FromRequest.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

// withUserID stores userID in the request context the way the auth middleware
// does for authenticated requests.
func withUserID(r *http.Request, userID int64) *http.Request {
	ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, userID)
	return r.WithContext(ctx)
}

// serve runs fn directly against a recorder with a nop logger installed.
func serve(fn http.HandlerFunc, r *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	fn(rec, injectNopLogger(r))
	return rec
}
