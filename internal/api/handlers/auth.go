package handlers

import (
	"errors"
	"net/http"

	"github.com/rohits-web03/travelstory/internal/services"
	"github.com/rohits-web03/travelstory/internal/utils"
)

const stateCookie = "oauth_state"

// POST /create-account
// RegisterUser godoc
// @Summary Create an account
// @Description Registers a user and returns an access token valid for 72 hours.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body services.RegisterInput true "Account details"
// @Success 201 {object} utils.Payload "Registration Successful"
// @Failure 400 {object} utils.Payload "Missing fields or email already registered"
// @Router /create-account [post]
func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var input services.RegisterInput
	if !decodeJSON(w, r, &input) {
		return
	}

	sess, err := h.auth.Register(r.Context(), input)
	if err != nil {
		h.fail(w, r, err, "User not found")
		return
	}

	utils.JSONResponse(w, http.StatusCreated, utils.Payload{
		Error:       false,
		User:        sess.User.Profile(),
		AccessToken: sess.AccessToken,
		Message:     "Registration Successful",
	})
}

// POST /login
// LoginUser godoc
// @Summary Log in
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body services.LoginInput true "Credentials"
// @Success 200 {object} utils.Payload "Login Successful"
// @Failure 400 {object} utils.Payload "Missing fields or wrong password"
// @Failure 404 {object} utils.Payload "User not found"
// @Router /login [post]
func (h *Handler) LoginUser(w http.ResponseWriter, r *http.Request) {
	var input services.LoginInput
	if !decodeJSON(w, r, &input) {
		return
	}

	sess, err := h.auth.Login(r.Context(), input)
	if err != nil {
		h.fail(w, r, err, "User not found")
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Error:       false,
		Message:     "Login Successful",
		AccessToken: sess.AccessToken,
		User:        sess.User.Profile(),
	})
}

// GET /get-user
// GetUser godoc
// @Summary Current user's profile
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Payload
// @Failure 401 "Missing or invalid token"
// @Failure 404 {object} utils.Payload "User not found"
// @Router /get-user [get]
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	user, err := h.auth.CurrentUser(r.Context(), userID)
	if err != nil {
		h.fail(w, r, err, "User not found")
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Error:   false,
		User:    user,
		Message: "",
	})
}

// GoogleEnabled reports whether the Google sign-in routes should be mounted.
func (h *Handler) GoogleEnabled() bool {
	return h.google != nil
}

// GET /auth/google/login
// HandleGoogleLogin godoc
// @Summary Start Google sign-in
// @Tags Auth
// @Success 307 "Redirect to Google's consent page"
// @Router /auth/google/login [get]
func (h *Handler) HandleGoogleLogin(w http.ResponseWriter, r *http.Request) {
	state, err := GenerateState([]byte(h.cfg.JWTSecret), stateTTL)
	if err != nil {
		h.fail(w, r, err, "")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    state,
		Path:     "/auth/google",
		MaxAge:   int(stateTTL.Seconds()),
		Secure:   h.cfg.IsProduction(),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, h.google.AuthCodeURL(state), http.StatusTemporaryRedirect)
}

// GET /auth/google/callback
// HandleGoogleCallback godoc
// @Summary Finish Google sign-in
// @Description Exchanges the authorization code, then logs in or creates the matching account.
// @Tags Auth
// @Produce json
// @Param state query string true "OAuth state"
// @Param code query string true "Authorization code"
// @Success 200 {object} utils.Payload "Login Successful"
// @Failure 400 {object} utils.Payload "Invalid OAuth state"
// @Router /auth/google/callback [get]
func (h *Handler) HandleGoogleCallback(w http.ResponseWriter, r *http.Request) {
	state := r.FormValue("state")
	cookie, err := r.Cookie(stateCookie)
	if err != nil || state == "" || cookie.Value != state {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid OAuth state")
		return
	}
	if err := VerifyState([]byte(h.cfg.JWTSecret), state); err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid OAuth state")
		return
	}

	// The state is single use.
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    "",
		Path:     "/auth/google",
		MaxAge:   -1,
		Secure:   h.cfg.IsProduction(),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	profile, err := h.google.Profile(r.Context(), r.FormValue("code"))
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			h.fail(w, r, err, "")
			return
		}
		h.log.WithError(err).Warn("Google code exchange failed")
		utils.ErrorResponse(w, http.StatusBadGateway, "Google sign-in failed")
		return
	}

	sess, err := h.auth.SignInWithGoogle(r.Context(), *profile)
	if err != nil {
		h.fail(w, r, err, "User not found")
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Error:       false,
		Message:     "Login Successful",
		AccessToken: sess.AccessToken,
		User:        sess.User.Profile(),
	})
}
