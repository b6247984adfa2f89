package services

import (
	"github.com/rohits-web03/plotwise/internal/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

var GoogleOauthConfig = &oauth2.Config{
	ClientID:     config.Envs.Google.ClientID,
	ClientSecret: config.Envs.Google.ClientSecret,
	RedirectURL:  config.Envs.Google.RedirectURL,
	Scopes: []string{
		"https://www.googleapis.com/auth/userinfo.email",
		"https://www.googleapis.com/auth/userinfo.profile",
	},
	Endpoint: google.Endpoint,
}
