package handlers

import (
	"net/http"
	"strconv"

	"github.com/rohits-web03/travelstory/internal/models"
	"github.com/rohits-web03/travelstory/internal/services"
	"github.com/rohits-web03/travelstory/internal/utils"
)

const storyNotFound = "Travel story not found"

// GET /get-all-stories
// GetAllStories godoc
// @Summary List the caller's stories
// @Description Favourites first, then newest first.
// @Tags Stories
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Payload
// @Router /get-all-stories [get]
func (h *Handler) GetAllStories(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	stories, err := h.stories.List(r.Context(), userID)
	if err != nil {
		h.fail(w, r, err, storyNotFound)
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Error:   false,
		Stories: stories,
	})
}

// POST /add-story
// AddStory godoc
// @Summary Add a story
// @Description visitedDate is milliseconds since the epoch. An empty imageUrl gets the placeholder image.
// @Tags Stories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.StoryInput true "Story"
// @Success 201 {object} utils.Payload
// @Failure 400 {object} utils.Payload "All fields are required"
// @Router /add-story [post]
func (h *Handler) AddStory(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	var input services.StoryInput
	if !decodeJSON(w, r, &input) {
		return
	}

	story, err := h.stories.Add(r.Context(), userID, input)
	if err != nil {
		h.fail(w, r, err, storyNotFound)
		return
	}

	utils.JSONResponse(w, http.StatusCreated, utils.Payload{
		Error:   false,
		Story:   story,
		Message: "Story Added Successfully",
	})
}

// POST /edit-story/{id}
// EditStory godoc
// @Summary Edit a story
// @Tags Stories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Story id"
// @Param body body services.StoryInput true "Story"
// @Success 200 {object} utils.Payload
// @Failure 400 {object} utils.Payload "All fields are required"
// @Failure 404 {object} utils.Payload "Travel story not found"
// @Router /edit-story/{id} [post]
func (h *Handler) EditStory(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	var input services.StoryInput
	if !decodeJSON(w, r, &input) {
		return
	}

	story, err := h.stories.Edit(r.Context(), userID, r.PathValue("id"), input)
	if err != nil {
		h.fail(w, r, err, storyNotFound)
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Error:   false,
		Story:   story,
		Message: "Story Updated Successfully",
	})
}

// DELETE /delete-story/{id}
// DeleteStory godoc
// @Summary Delete a story
// @Description The story's image is removed in the background.
// @Tags Stories
// @Produce json
// @Security BearerAuth
// @Param id path string true "Story id"
// @Success 200 {object} utils.Payload
// @Failure 404 {object} utils.Payload "Travel story not found"
// @Router /delete-story/{id} [delete]
func (h *Handler) DeleteStory(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.stories.Delete(r.Context(), userID, r.PathValue("id")); err != nil {
		h.fail(w, r, err, storyNotFound)
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Error:   false,
		Message: "Story Deleted Successfully",
	})
}

// PUT /update-is-favourite/{id}
// UpdateIsFavourite godoc
// @Summary Set or clear the favourite flag
// @Tags Stories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Story id"
// @Success 200 {object} utils.Payload
// @Failure 400 {object} utils.Payload "isFavourite is required"
// @Failure 404 {object} utils.Payload "Travel story not found"
// @Router /update-is-favourite/{id} [put]
func (h *Handler) UpdateIsFavourite(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	var input struct {
		IsFavourite *bool `json:"isFavourite"`
	}
	if !decodeJSON(w, r, &input) {
		return
	}
	if input.IsFavourite == nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "isFavourite is required")
		return
	}

	story, err := h.stories.SetFavourite(r.Context(), userID, r.PathValue("id"), *input.IsFavourite)
	if err != nil {
		h.fail(w, r, err, storyNotFound)
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Error:   false,
		Story:   story,
		Message: "Favourite Update Successful",
	})
}

// GET /search?query=
// SearchStories godoc
// @Summary Search the caller's stories
// @Description Case-insensitive substring match on title, story and visited locations.
// @Tags Stories
// @Produce json
// @Security BearerAuth
// @Param query query string true "Search text"
// @Success 200 {object} utils.Payload
// @Failure 400 {object} utils.Payload "Query is required"
// @Router /search [get]
func (h *Handler) SearchStories(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	stories, err := h.stories.Search(r.Context(), userID, r.URL.Query().Get("query"))
	if err != nil {
		h.fail(w, r, err, storyNotFound)
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Error:   false,
		Stories: stories,
	})
}

// GET /travel-stories/filter?startDate=&endDate=
// FilterStories godoc
// @Summary Stories visited within a date range
// @Description Both bounds are inclusive milliseconds since the epoch.
// @Tags Stories
// @Produce json
// @Security BearerAuth
// @Param startDate query int true "Range start (ms)"
// @Param endDate query int true "Range end (ms)"
// @Success 200 {object} utils.Payload
// @Failure 400 {object} utils.Payload "Missing or invalid range"
// @Router /travel-stories/filter [get]
func (h *Handler) FilterStories(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	start, errStart := strconv.ParseInt(q.Get("startDate"), 10, 64)
	end, errEnd := strconv.ParseInt(q.Get("endDate"), 10, 64)
	if errStart != nil || errEnd != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "startDate and endDate must be timestamps in milliseconds")
		return
	}

	stories, err := h.stories.Filter(r.Context(), userID, models.EpochMillis(start), models.EpochMillis(end))
	if err != nil {
		h.fail(w, r, err, storyNotFound)
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Error:   false,
		Stories: stories,
	})
}
