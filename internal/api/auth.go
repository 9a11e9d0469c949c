package api

import (
	"context"
	"net/http"

	"laundry-booking-client/internal/model"
)

// AuthResult is the outcome of a successful credential exchange. Token is
// only set by backends that issue verifiable session tokens; against the
// original backend it is empty and the identity id serves as the bearer
// credential.
type AuthResult struct {
	Identity model.Identity
	Token    string
}

type loginRequest struct {
	StudentID string `json:"student_id"`
	Password  string `json:"password"`
}

type adminLoginRequest struct {
	AdminID  string `json:"admin_id"`
	Password string `json:"password"`
}

type registerRequest struct {
	StudentID string `json:"student_id"`
	Username  string `json:"username"`
	Password  string `json:"password"`
}

type googleAuthRequest struct {
	StudentID string `json:"student_id"`
	Username  string `json:"username,omitempty"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email"`
}

type userAuthResponse struct {
	Message string         `json:"message"`
	Token   string         `json:"token"`
	User    model.Identity `json:"user"`
}

type adminAuthResponse struct {
	Message string         `json:"message"`
	Token   string         `json:"token"`
	Admin   model.Identity `json:"admin"`
}

type registerResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
}

// Login exchanges a student id and password for a user identity.
func (c *Client) Login(ctx context.Context, studentID, password string) (AuthResult, error) {
	var resp userAuthResponse
	err := c.do(ctx, http.MethodPost, "/login", false, loginRequest{StudentID: studentID, Password: password}, &resp)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{Identity: resp.User, Token: resp.Token}, nil
}

// Register creates a new account. It does not authenticate; the caller is
// expected to route to login afterwards.
func (c *Client) Register(ctx context.Context, studentID, username, password string) (int64, error) {
	var resp registerResponse
	err := c.do(ctx, http.MethodPost, "/register", false, registerRequest{StudentID: studentID, Username: username, Password: password}, &resp)
	if err != nil {
		return 0, err
	}
	return resp.UserID, nil
}

// AdminLogin exchanges an admin id and password for an administrator identity.
func (c *Client) AdminLogin(ctx context.Context, adminID, password string) (AuthResult, error) {
	var resp adminAuthResponse
	err := c.do(ctx, http.MethodPost, "/admin/login", false, adminLoginRequest{AdminID: adminID, Password: password}, &resp)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{Identity: resp.Admin, Token: resp.Token}, nil
}

// GoogleLogin signs in an existing account using an identity derived from a
// federated assertion.
func (c *Client) GoogleLogin(ctx context.Context, studentID, name, email string) (AuthResult, error) {
	var resp userAuthResponse
	req := googleAuthRequest{StudentID: studentID, Name: name, Email: email}
	if err := c.do(ctx, http.MethodPost, "/google-login", false, req, &resp); err != nil {
		return AuthResult{}, err
	}
	return AuthResult{Identity: resp.User, Token: resp.Token}, nil
}

// GoogleRegister creates and signs in an account for a federated identity
// that has no existing local account.
func (c *Client) GoogleRegister(ctx context.Context, studentID, name, email string) (AuthResult, error) {
	var resp userAuthResponse
	req := googleAuthRequest{StudentID: studentID, Username: name, Email: email}
	if err := c.do(ctx, http.MethodPost, "/google-register", false, req, &resp); err != nil {
		return AuthResult{}, err
	}
	return AuthResult{Identity: resp.User, Token: resp.Token}, nil
}
