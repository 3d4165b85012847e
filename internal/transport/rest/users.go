package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/vocab-trainer-backend/internal/domain"
	"github.com/heartmarshall/vocab-trainer-backend/internal/service/user"
)

type userService interface {
	SetRole(ctx context.Context, input user.SetRoleInput) (domain.User, error)
	ListUsers(ctx context.Context, input user.ListInput) ([]domain.User, int, error)
}

// UserHandler serves user administration endpoints.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

type listUsersResponse struct {
	Users []userResponse `json:"users"`
	Total int            `json:"total"`
}

// List handles GET /api/admin/users?limit=&offset=.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("limit", "must be an integer"), "")
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("offset", "must be an integer"), "")
		return
	}

	users, total, err := h.svc.ListUsers(r.Context(), user.ListInput{Limit: limit, Offset: offset})
	if err != nil {
		handleError(h.log, w, r, err, "Failed to list users")
		return
	}

	resp := listUsersResponse{Users: make([]userResponse, 0, len(users)), Total: total}
	for _, u := range users {
		resp.Users = append(resp.Users, toUser(u))
	}
	writeJSON(w, http.StatusOK, resp)
}

type setRoleRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// SetRole handles POST /api/admin/users/role.
func (h *UserHandler) SetRole(w http.ResponseWriter, r *http.Request) {
	var req setRoleRequest
	if err := decodeJSON(w, r, maxJSONBody, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.svc.SetRole(r.Context(), user.SetRoleInput{Email: req.Email, Role: domain.UserRole(req.Role)})
	if err != nil {
		handleError(h.log, w, r, err, "Failed to update role")
		return
	}
	writeJSON(w, http.StatusOK, toUser(u))
}

func queryInt(r *http.Request, key string) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}
