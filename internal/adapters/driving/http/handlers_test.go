package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kita-labs/tanyahr-core/internal/core/domain"
	"github.com/kita-labs/tanyahr-core/internal/core/ports/driving"
)

// Mock services for testing

type mockAuthService struct {
	authenticateFn   func(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error)
	validateTokenFn  func(ctx context.Context, token string) (*domain.AuthContext, error)
	refreshTokenFn   func(ctx context.Context, req domain.RefreshRequest) (*domain.LoginResponse, error)
	logoutFn         func(ctx context.Context, token string) error
	changePasswordFn func(ctx context.Context, userID string, req domain.ChangePasswordRequest) error
}

func (m *mockAuthService) Authenticate(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
	if m.authenticateFn != nil {
		return m.authenticateFn(ctx, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAuthService) ValidateToken(ctx context.Context, token string) (*domain.AuthContext, error) {
	if m.validateTokenFn != nil {
		return m.validateTokenFn(ctx, token)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAuthService) RefreshToken(ctx context.Context, req domain.RefreshRequest) (*domain.LoginResponse, error) {
	if m.refreshTokenFn != nil {
		return m.refreshTokenFn(ctx, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAuthService) Logout(ctx context.Context, token string) error {
	if m.logoutFn != nil {
		return m.logoutFn(ctx, token)
	}
	return nil
}

func (m *mockAuthService) ChangePassword(ctx context.Context, userID string, req domain.ChangePasswordRequest) error {
	if m.changePasswordFn != nil {
		return m.changePasswordFn(ctx, userID, req)
	}
	return nil
}

type mockUserService struct {
	setupFn  func(ctx context.Context, req driving.SetupRequest) (*driving.SetupResponse, error)
	createFn func(ctx context.Context, req driving.CreateUserRequest) (*domain.User, error)
	getFn    func(ctx context.Context, id string) (*domain.User, error)
	listFn   func(ctx context.Context) ([]*domain.User, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockUserService) Setup(ctx context.Context, req driving.SetupRequest) (*driving.SetupResponse, error) {
	if m.setupFn != nil {
		return m.setupFn(ctx, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockUserService) Create(ctx context.Context, req driving.CreateUserRequest) (*domain.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockUserService) Get(ctx context.Context, id string) (*domain.User, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockUserService) List(ctx context.Context) ([]*domain.User, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *mockUserService) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return errors.New("not implemented")
}

type mockChatService struct {
	askFn     func(ctx context.Context, asker driving.Asker, message string) (*domain.ChatAnswer, error)
	historyFn func(ctx context.Context, userID string) ([]*domain.ChatTurn, error)
	logsFn    func(ctx context.Context) ([]*domain.ChatLogEntry, error)
}

func (m *mockChatService) Ask(ctx context.Context, asker driving.Asker, message string) (*domain.ChatAnswer, error) {
	if m.askFn != nil {
		return m.askFn(ctx, asker, message)
	}
	return nil, errors.New("not implemented")
}

func (m *mockChatService) History(ctx context.Context, userID string) ([]*domain.ChatTurn, error) {
	if m.historyFn != nil {
		return m.historyFn(ctx, userID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockChatService) Logs(ctx context.Context) ([]*domain.ChatLogEntry, error) {
	if m.logsFn != nil {
		return m.logsFn(ctx)
	}
	return nil, errors.New("not implemented")
}

type mockKnowledgeService struct {
	createFn func(ctx context.Context, req driving.CreateKnowledgeRequest) (*domain.KnowledgeEntry, error)
	listFn   func(ctx context.Context) ([]*domain.KnowledgeEntry, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockKnowledgeService) Create(ctx context.Context, req driving.CreateKnowledgeRequest) (*domain.KnowledgeEntry, error) {
	if m.createFn != nil {
		return m.createFn(ctx, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockKnowledgeService) List(ctx context.Context) ([]*domain.KnowledgeEntry, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *mockKnowledgeService) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return errors.New("not implemented")
}

type mockDocumentService struct {
	createFn func(ctx context.Context, uploadedBy string, req driving.CreateDocumentRequest) (*domain.Document, error)
	listFn   func(ctx context.Context) ([]*domain.Document, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockDocumentService) Create(ctx context.Context, uploadedBy string, req driving.CreateDocumentRequest) (*domain.Document, error) {
	if m.createFn != nil {
		return m.createFn(ctx, uploadedBy, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockDocumentService) List(ctx context.Context) ([]*domain.Document, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *mockDocumentService) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return errors.New("not implemented")
}

type mockReviewService struct {
	escalateFn func(ctx context.Context, question string, asker driving.Asker) (*domain.PendingQuestion, error)
	listFn     func(ctx context.Context) ([]*domain.PendingQuestion, error)
	approveFn  func(ctx context.Context, pendingID, answer string) (*domain.KnowledgeEntry, error)
	rejectFn   func(ctx context.Context, pendingID string) error
}

func (m *mockReviewService) Escalate(ctx context.Context, question string, asker driving.Asker) (*domain.PendingQuestion, error) {
	if m.escalateFn != nil {
		return m.escalateFn(ctx, question, asker)
	}
	return nil, errors.New("not implemented")
}

func (m *mockReviewService) List(ctx context.Context) ([]*domain.PendingQuestion, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *mockReviewService) Approve(ctx context.Context, pendingID, answer string) (*domain.KnowledgeEntry, error) {
	if m.approveFn != nil {
		return m.approveFn(ctx, pendingID, answer)
	}
	return nil, errors.New("not implemented")
}

func (m *mockReviewService) Reject(ctx context.Context, pendingID string) error {
	if m.rejectFn != nil {
		return m.rejectFn(ctx, pendingID)
	}
	return errors.New("not implemented")
}

// withAuthContext injects an authenticated identity the way the middleware does
func withAuthContext(r *http.Request, authCtx *domain.AuthContext) *http.Request {
	ctx := context.WithValue(r.Context(), authContextKey, authCtx)
	return r.WithContext(ctx)
}

func employeeCtx() *domain.AuthContext {
	return &domain.AuthContext{
		UserID:    "user-1",
		Email:     "staff@example.com",
		Name:      "Budi",
		Role:      domain.RoleEmployee,
		SessionID: "sess-1",
	}
}

// Health endpoints

func TestHandleHealth(t *testing.T) {
	server := &Server{version: "test"}

	req := httptest.NewRequest("GET", "/health", nil)
	rr := httptest.NewRecorder()

	server.handleHealth(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response["status"] != "ok" {
		t.Errorf("expected status 'ok', got %s", response["status"])
	}
}

func TestHandleVersion(t *testing.T) {
	server := &Server{version: "1.2.3"}

	req := httptest.NewRequest("GET", "/version", nil)
	rr := httptest.NewRecorder()

	server.handleVersion(rr, req)

	var response map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response["version"] != "1.2.3" {
		t.Errorf("expected version '1.2.3', got %s", response["version"])
	}
}

// Auth endpoints

func TestHandleLogin_Success(t *testing.T) {
	server := &Server{
		authService: &mockAuthService{
			authenticateFn: func(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
				return &domain.LoginResponse{
					Token:        "jwt-token",
					RefreshToken: "refresh-token",
					ExpiresAt:    time.Now().Add(time.Hour),
					User:         &domain.UserSummary{ID: "user-1", Email: req.Email, Role: domain.RoleHR},
				}, nil
			},
		},
	}

	body, _ := json.Marshal(domain.LoginRequest{Email: "hr@example.com", Password: "password123"})
	req := httptest.NewRequest("POST", "/api/v1/auth/login", bytes.NewBuffer(body))
	rr := httptest.NewRecorder()

	server.handleLogin(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	var response domain.LoginResponse
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Token != "jwt-token" {
		t.Errorf("expected token 'jwt-token', got %s", response.Token)
	}
}

func TestHandleLogin_InvalidCredentials(t *testing.T) {
	server := &Server{
		authService: &mockAuthService{
			authenticateFn: func(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
				return nil, domain.ErrInvalidCredentials
			},
		},
	}

	body, _ := json.Marshal(domain.LoginRequest{Email: "hr@example.com", Password: "wrong"})
	req := httptest.NewRequest("POST", "/api/v1/auth/login", bytes.NewBuffer(body))
	rr := httptest.NewRecorder()

	server.handleLogin(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rr.Code)
	}
}

func TestHandleLogin_InvalidJSON(t *testing.T) {
	server := &Server{authService: &mockAuthService{}}

	req := httptest.NewRequest("POST", "/api/v1/auth/login", bytes.NewBufferString("invalid json"))
	rr := httptest.NewRecorder()

	server.handleLogin(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rr.Code)
	}
}

func TestHandleSetup_AlreadyComplete(t *testing.T) {
	server := &Server{
		userService: &mockUserService{
			setupFn: func(ctx context.Context, req driving.SetupRequest) (*driving.SetupResponse, error) {
				return nil, domain.ErrForbidden
			},
		},
	}

	body, _ := json.Marshal(driving.SetupRequest{Email: "hr@example.com", Password: "pw", Name: "HR"})
	req := httptest.NewRequest("POST", "/api/v1/setup", bytes.NewBuffer(body))
	rr := httptest.NewRecorder()

	server.handleSetup(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Errorf("expected status 403, got %d", rr.Code)
	}
}

// Chat endpoints

func TestHandleChat_Success(t *testing.T) {
	var gotAsker driving.Asker
	server := &Server{
		chatService: &mockChatService{
			askFn: func(ctx context.Context, asker driving.Asker, message string) (*domain.ChatAnswer, error) {
				gotAsker = asker
				return &domain.ChatAnswer{
					Response:  "Cuti diajukan lewat portal internal.",
					Sources:   "Sumber: 1 entri Q&A terkait",
					Escalated: false,
				}, nil
			},
		},
	}

	body, _ := json.Marshal(chatRequest{Message: "Bagaimana cara mengajukan cuti?"})
	req := httptest.NewRequest("POST", "/api/v1/chat", bytes.NewBuffer(body))
	req = withAuthContext(req, employeeCtx())
	rr := httptest.NewRecorder()

	server.handleChat(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d (body %s)", rr.Code, rr.Body.String())
	}
	if gotAsker.ID != "user-1" || gotAsker.Name != "Budi" {
		t.Errorf("asker = %+v, want identity from auth context", gotAsker)
	}

	var response domain.ChatAnswer
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Response == "" || response.Escalated {
		t.Errorf("unexpected answer %+v", response)
	}
}

func TestHandleChat_GenerationUnavailable(t *testing.T) {
	server := &Server{
		chatService: &mockChatService{
			askFn: func(ctx context.Context, asker driving.Asker, message string) (*domain.ChatAnswer, error) {
				return nil, domain.ErrServiceUnavailable
			},
		},
	}

	body, _ := json.Marshal(chatRequest{Message: "pertanyaan"})
	req := httptest.NewRequest("POST", "/api/v1/chat", bytes.NewBuffer(body))
	req = withAuthContext(req, employeeCtx())
	rr := httptest.NewRecorder()

	server.handleChat(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rr.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response["error"] != domain.GenerationFailureMessage {
		t.Errorf("error = %q, want the generic apology text", response["error"])
	}
}

func TestHandleChat_Misconfigured(t *testing.T) {
	server := &Server{
		chatService: &mockChatService{
			askFn: func(ctx context.Context, asker driving.Asker, message string) (*domain.ChatAnswer, error) {
				return nil, domain.ErrServiceMisconfigured
			},
		},
	}

	body, _ := json.Marshal(chatRequest{Message: "pertanyaan"})
	req := httptest.NewRequest("POST", "/api/v1/chat", bytes.NewBuffer(body))
	req = withAuthContext(req, employeeCtx())
	rr := httptest.NewRecorder()

	server.handleChat(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status 503, got %d", rr.Code)
	}
}

func TestHandleChat_EmptyMessage(t *testing.T) {
	server := &Server{
		chatService: &mockChatService{
			askFn: func(ctx context.Context, asker driving.Asker, message string) (*domain.ChatAnswer, error) {
				return nil, domain.ErrInvalidInput
			},
		},
	}

	body, _ := json.Marshal(chatRequest{Message: ""})
	req := httptest.NewRequest("POST", "/api/v1/chat", bytes.NewBuffer(body))
	req = withAuthContext(req, employeeCtx())
	rr := httptest.NewRecorder()

	server.handleChat(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rr.Code)
	}
}

func TestHandleChat_NoAuthContext(t *testing.T) {
	server := &Server{chatService: &mockChatService{}}

	body, _ := json.Marshal(chatRequest{Message: "pertanyaan"})
	req := httptest.NewRequest("POST", "/api/v1/chat", bytes.NewBuffer(body))
	rr := httptest.NewRecorder()

	server.handleChat(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rr.Code)
	}
}

func TestHandleOwnHistory(t *testing.T) {
	server := &Server{
		chatService: &mockChatService{
			historyFn: func(ctx context.Context, userID string) ([]*domain.ChatTurn, error) {
				if userID != "user-1" {
					t.Errorf("History called with %q, want the authenticated user", userID)
				}
				return []*domain.ChatTurn{
					{UserID: userID, Role: domain.ChatRoleUser, Text: "tanya"},
					{UserID: userID, Role: domain.ChatRoleBot, Text: "jawab"},
				}, nil
			},
		},
	}

	req := httptest.NewRequest("GET", "/api/v1/chat/history", nil)
	req = withAuthContext(req, employeeCtx())
	rr := httptest.NewRecorder()

	server.handleOwnHistory(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	var turns []*domain.ChatTurn
	if err := json.NewDecoder(rr.Body).Decode(&turns); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(turns) != 2 {
		t.Errorf("got %d turns, want 2", len(turns))
	}
}

// Knowledge endpoints

func TestHandleCreateKnowledge(t *testing.T) {
	server := &Server{
		knowledgeService: &mockKnowledgeService{
			createFn: func(ctx context.Context, req driving.CreateKnowledgeRequest) (*domain.KnowledgeEntry, error) {
				return &domain.KnowledgeEntry{
					ID:       "entry-1",
					Question: req.Question,
					Answer:   req.Answer,
					Origin:   domain.OriginManual,
				}, nil
			},
		},
	}

	body, _ := json.Marshal(driving.CreateKnowledgeRequest{
		Question: "Kapan gajian?",
		Answer:   "Tanggal 25.",
	})
	req := httptest.NewRequest("POST", "/api/v1/knowledge", bytes.NewBuffer(body))
	rr := httptest.NewRecorder()

	server.handleCreateKnowledge(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rr.Code)
	}

	var entry domain.KnowledgeEntry
	if err := json.NewDecoder(rr.Body).Decode(&entry); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if entry.Origin != domain.OriginManual {
		t.Errorf("Origin = %v, want %v", entry.Origin, domain.OriginManual)
	}
}

func TestHandleCreateKnowledge_Invalid(t *testing.T) {
	server := &Server{
		knowledgeService: &mockKnowledgeService{
			createFn: func(ctx context.Context, req driving.CreateKnowledgeRequest) (*domain.KnowledgeEntry, error) {
				return nil, domain.ErrInvalidInput
			},
		},
	}

	body, _ := json.Marshal(driving.CreateKnowledgeRequest{})
	req := httptest.NewRequest("POST", "/api/v1/knowledge", bytes.NewBuffer(body))
	rr := httptest.NewRecorder()

	server.handleCreateKnowledge(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rr.Code)
	}
}

func TestHandleDeleteKnowledge_NotFound(t *testing.T) {
	server := &Server{
		knowledgeService: &mockKnowledgeService{
			deleteFn: func(ctx context.Context, id string) error {
				return domain.ErrNotFound
			},
		},
	}

	req := httptest.NewRequest("DELETE", "/api/v1/knowledge/missing", nil)
	req.SetPathValue("id", "missing")
	rr := httptest.NewRecorder()

	server.handleDeleteKnowledge(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rr.Code)
	}
}

// Document endpoints

func TestHandleCreateDocument(t *testing.T) {
	server := &Server{
		documentService: &mockDocumentService{
			createFn: func(ctx context.Context, uploadedBy string, req driving.CreateDocumentRequest) (*domain.Document, error) {
				return &domain.Document{
					ID:         "doc-1",
					Name:       req.Name,
					Content:    req.Content,
					UploadedBy: uploadedBy,
				}, nil
			},
		},
	}

	body, _ := json.Marshal(driving.CreateDocumentRequest{Name: "panduan.txt", Content: "isi"})
	req := httptest.NewRequest("POST", "/api/v1/documents", bytes.NewBuffer(body))
	req = withAuthContext(req, &domain.AuthContext{UserID: "hr-1", Role: domain.RoleHR})
	rr := httptest.NewRecorder()

	server.handleCreateDocument(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rr.Code)
	}

	var doc domain.Document
	if err := json.NewDecoder(rr.Body).Decode(&doc); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if doc.UploadedBy != "hr-1" {
		t.Errorf("UploadedBy = %v, want the authenticated HR user", doc.UploadedBy)
	}
}

// Review endpoints

func TestHandleApproveQuestion(t *testing.T) {
	server := &Server{
		reviewService: &mockReviewService{
			approveFn: func(ctx context.Context, pendingID, answer string) (*domain.KnowledgeEntry, error) {
				return &domain.KnowledgeEntry{
					ID:       "entry-1",
					Question: "Apa kebijakan lembur?",
					Answer:   answer,
					Origin:   domain.OriginFromEscalation,
				}, nil
			},
		},
	}

	body, _ := json.Marshal(approveRequest{Answer: "Lembur dibayar 1,5x tarif per jam."})
	req := httptest.NewRequest("POST", "/api/v1/review/questions/pending-1/approve", bytes.NewBuffer(body))
	req.SetPathValue("id", "pending-1")
	rr := httptest.NewRecorder()

	server.handleApproveQuestion(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rr.Code)
	}

	var entry domain.KnowledgeEntry
	if err := json.NewDecoder(rr.Body).Decode(&entry); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if entry.Origin != domain.OriginFromEscalation {
		t.Errorf("Origin = %v, want %v", entry.Origin, domain.OriginFromEscalation)
	}
}

func TestHandleApproveQuestion_NotFound(t *testing.T) {
	server := &Server{
		reviewService: &mockReviewService{
			approveFn: func(ctx context.Context, pendingID, answer string) (*domain.KnowledgeEntry, error) {
				return nil, domain.ErrNotFound
			},
		},
	}

	body, _ := json.Marshal(approveRequest{Answer: "jawaban"})
	req := httptest.NewRequest("POST", "/api/v1/review/questions/missing/approve", bytes.NewBuffer(body))
	req.SetPathValue("id", "missing")
	rr := httptest.NewRecorder()

	server.handleApproveQuestion(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rr.Code)
	}
}

func TestHandleRejectQuestion(t *testing.T) {
	var rejected string
	server := &Server{
		reviewService: &mockReviewService{
			rejectFn: func(ctx context.Context, pendingID string) error {
				rejected = pendingID
				return nil
			},
		},
	}

	req := httptest.NewRequest("DELETE", "/api/v1/review/questions/pending-1", nil)
	req.SetPathValue("id", "pending-1")
	rr := httptest.NewRecorder()

	server.handleRejectQuestion(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if rejected != "pending-1" {
		t.Errorf("rejected = %q, want pending-1", rejected)
	}
}

// Route wiring

func TestRoutes_HRRequiredForKnowledge(t *testing.T) {
	server := NewServer(
		DefaultConfig(),
		&mockAuthService{
			validateTokenFn: func(ctx context.Context, token string) (*domain.AuthContext, error) {
				return employeeCtx(), nil
			},
		},
		&mockUserService{},
		&mockChatService{},
		&mockKnowledgeService{},
		&mockDocumentService{},
		&mockReviewService{},
		nil,
		nil,
	)

	req := httptest.NewRequest("GET", "/api/v1/knowledge", nil)
	req.Header.Set("Authorization", "Bearer employee-token")
	rr := httptest.NewRecorder()

	server.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Errorf("expected status 403 for employee, got %d", rr.Code)
	}
}

func TestRoutes_ChatOpenToEmployees(t *testing.T) {
	server := NewServer(
		DefaultConfig(),
		&mockAuthService{
			validateTokenFn: func(ctx context.Context, token string) (*domain.AuthContext, error) {
				return employeeCtx(), nil
			},
		},
		&mockUserService{},
		&mockChatService{
			askFn: func(ctx context.Context, asker driving.Asker, message string) (*domain.ChatAnswer, error) {
				return &domain.ChatAnswer{Response: "jawaban"}, nil
			},
		},
		&mockKnowledgeService{},
		&mockDocumentService{},
		&mockReviewService{},
		nil,
		nil,
	)

	body, _ := json.Marshal(chatRequest{Message: "pertanyaan"})
	req := httptest.NewRequest("POST", "/api/v1/chat", bytes.NewBuffer(body))
	req.Header.Set("Authorization", "Bearer employee-token")
	rr := httptest.NewRecorder()

	server.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200 for employee chat, got %d (body %s)", rr.Code, rr.Body.String())
	}
}
