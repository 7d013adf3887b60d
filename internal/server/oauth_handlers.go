package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"portfolio/internal/models"
	"portfolio/internal/service"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/oauth2"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

type googleUserInfo struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// GoogleLogin redirects to Google's consent screen. The optional redirect
// query parameter is carried through the state so the callback can send the
// user back where they came from.
func (s *Server) GoogleLogin(c *fiber.Ctx) error {
	if s.oauthConfig == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "Google login is not configured")
	}

	state := c.Query("redirect", "/")
	if !strings.HasPrefix(state, "/") {
		state = "/"
	}

	url := s.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOnline)
	return c.Redirect(url, fiber.StatusTemporaryRedirect)
}

// GoogleCallback exchanges the authorization code, fetches the Google
// profile, logs the user in (creating an account on first login) and
// redirects back to the frontend with both token cookies set.
func (s *Server) GoogleCallback(c *fiber.Ctx) error {
	if s.oauthConfig == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "Google login is not configured")
	}

	code := c.Query("code")
	if code == "" {
		return models.NewBadRequestError("Missing authorization code")
	}

	ctx := c.UserContext()
	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return models.NewUnauthorizedError("OAuth code exchange failed")
	}

	info, err := s.fetchGoogleUserInfo(token)
	if err != nil {
		return err
	}

	user, err := s.authService.OAuthLogin(ctx, service.OAuthProfile{
		Provider:  models.ProviderGoogle,
		SubjectID: info.ID,
		Email:     info.Email,
		Name:      info.Name,
		Picture:   info.Picture,
	})
	if err != nil {
		return err
	}

	tokens, err := s.authService.IssueTokens(user)
	if err != nil {
		return err
	}
	s.setAuthCookies(c, tokens.AccessToken, tokens.RefreshToken)

	redirectPath := c.Query("state", "/")
	if !strings.HasPrefix(redirectPath, "/") {
		redirectPath = "/"
	}
	return c.Redirect(s.config.FrontendURL+redirectPath, fiber.StatusTemporaryRedirect)
}

func (s *Server) fetchGoogleUserInfo(token *oauth2.Token) (*googleUserInfo, error) {
	resp, err := s.oauthConfig.Client(context.Background(), token).Get(googleUserInfoURL)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, models.NewUnauthorizedError("Failed to fetch OAuth profile")
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, models.NewInternalError(err)
	}
	return &info, nil
}
