package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/rohits-web03/travelstory/internal/api/middleware"
	"github.com/rohits-web03/travelstory/internal/config"
	"github.com/rohits-web03/travelstory/internal/models"
	"github.com/rohits-web03/travelstory/internal/services"
	"github.com/rohits-web03/travelstory/internal/utils"
	"github.com/sirupsen/logrus"
)

const maxJSONBody = 1 << 20

type AuthService interface {
	Register(ctx context.Context, in services.RegisterInput) (*services.Session, error)
	Login(ctx context.Context, in services.LoginInput) (*services.Session, error)
	CurrentUser(ctx context.Context, userID uuid.UUID) (*models.User, error)
	SignInWithGoogle(ctx context.Context, profile services.GoogleProfile) (*services.Session, error)
}

type ImageService interface {
	Upload(ctx context.Context, up services.Upload) (string, error)
	Delete(ctx context.Context, ref string) error
}

type StoryService interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.Story, error)
	Add(ctx context.Context, userID uuid.UUID, in services.StoryInput) (*models.Story, error)
	Edit(ctx context.Context, userID uuid.UUID, id string, in services.StoryInput) (*models.Story, error)
	Delete(ctx context.Context, userID uuid.UUID, id string) error
	SetFavourite(ctx context.Context, userID uuid.UUID, id string, favourite bool) (*models.Story, error)
	Search(ctx context.Context, userID uuid.UUID, query string) ([]models.Story, error)
	Filter(ctx context.Context, userID uuid.UUID, start, end models.EpochMillis) ([]models.Story, error)
}

type GoogleAuth interface {
	AuthCodeURL(state string) string
	Profile(ctx context.Context, code string) (*services.GoogleProfile, error)
}

// Handler serves every JSON route of the API.
type Handler struct {
	auth    AuthService
	images  ImageService
	stories StoryService
	google  GoogleAuth
	cfg     config.Config
	log     logrus.FieldLogger
}

type Deps struct {
	Auth    AuthService
	Images  ImageService
	Stories StoryService
	// Google is nil when Google sign-in is not configured.
	Google GoogleAuth
	Config config.Config
	Log    logrus.FieldLogger
}

func New(d Deps) *Handler {
	return &Handler{
		auth:    d.Auth,
		images:  d.Images,
		stories: d.Stories,
		google:  d.Google,
		cfg:     d.Config,
		log:     d.Log,
	}
}

// currentUser reads the id the auth middleware stored. A token whose id is
// not a UUID was never issued by us.
func currentUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return uuid.Nil, false
	}
	return id, true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	if err := dec.Decode(dst); err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// fail maps a service error onto a status code and message. notFound is
// the message used for ErrNotFound, which differs per route.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	switch {
	case errors.Is(err, services.ErrValidation):
		utils.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrConflict):
		utils.ErrorResponse(w, http.StatusBadRequest, "User already exists!")
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid Credentials")
	case errors.Is(err, services.ErrInvalidImage):
		utils.ErrorResponse(w, http.StatusBadRequest, "Only images are allowed")
	case errors.Is(err, services.ErrNotFound):
		utils.ErrorResponse(w, http.StatusNotFound, notFound)
	default:
		h.log.WithError(err).WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
		}).Error("request failed")
		utils.ErrorResponse(w, http.StatusInternalServerError, err.Error())
	}
}
