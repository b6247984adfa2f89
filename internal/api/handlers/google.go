package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rohits-web03/plotwise/internal/api/services"
	"github.com/rohits-web03/plotwise/internal/config"
	"github.com/rohits-web03/plotwise/internal/models"
	"github.com/rohits-web03/plotwise/internal/repositories"
	"gorm.io/gorm"
)

// Google sign-in only ever touches user-role accounts; the admin role
// stays password-and-role login only.

// GET /auth/google/login
func (h *Handler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	redirectType := r.URL.Query().Get("redirect") // "login" or "register"
	if redirectType == "" {
		redirectType = "login" // default
	}

	state, err := GenerateState(map[string]string{"flow": redirectType})
	if err != nil {
		http.Error(w, "Failed to generate OAuth state", http.StatusInternalServerError)
		return
	}

	url := services.GoogleOauthConfig.AuthCodeURL(state)
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

// GET /auth/google/callback
func (h *Handler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	frontend := config.Envs.Google.FrontendURL

	state := r.FormValue("state")
	stateData, err := DecodeState(state)
	if err != nil {
		http.Error(w, "Invalid OAuth state", http.StatusBadRequest)
		return
	}

	flowType := stateData["flow"] // "login" or "register"
	code := r.FormValue("code")

	token, err := services.GoogleOauthConfig.Exchange(context.Background(), code)
	if err != nil {
		http.Error(w, "Code exchange failed", http.StatusInternalServerError)
		fmt.Println("Exchange error:", err)
		return
	}

	client := services.GoogleOauthConfig.Client(context.Background(), token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		http.Error(w, "Failed to get user info", http.StatusInternalServerError)
		return
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)

	var googleUser struct {
		ID      string `json:"id"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}

	if err := json.Unmarshal(data, &googleUser); err != nil {
		http.Error(w, "Failed to parse user info", http.StatusInternalServerError)
		return
	}

	var account models.User

	switch flowType {
	case "register":
		account = models.User{
			Name:     googleUser.Name,
			Email:    googleUser.Email,
			Password: "", // Google-authenticated, no local credential
			Role:     models.RoleUser,
		}
		switch err := h.store.CreateUser(&account); {
		case err == nil:
			// created
		case errors.Is(err, repositories.ErrEmailTaken):
			http.Redirect(w, r, frontend+"/login?error=user_already_exists", http.StatusTemporaryRedirect)
			return
		default:
			http.Error(w, "Failed to create user", http.StatusInternalServerError)
			return
		}

	case "login":
		account, err = h.store.UserByEmailAndRole(googleUser.Email, models.RoleUser)
		if err == gorm.ErrRecordNotFound {
			http.Redirect(w, r, frontend+"/register?error=user_not_found", http.StatusTemporaryRedirect)
			return
		} else if err != nil {
			http.Error(w, "Database error", http.StatusInternalServerError)
			return
		}

	default:
		http.Error(w, "Invalid OAuth state", http.StatusBadRequest)
		return
	}

	if err := h.issueSession(w, account); err != nil {
		http.Error(w, "Failed to create JWT", http.StatusInternalServerError)
		return
	}

	redirectURL := frontend + "/dashboard?status=success_login"
	if flowType == "register" {
		redirectURL = frontend + "/dashboard?status=success_register"
	}

	http.Redirect(w, r, redirectURL, http.StatusTemporaryRedirect)
}
