package api

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jmercer/portfolio-site-backend/database"
	"github.com/jmercer/portfolio-site-backend/errs"
	"github.com/jmercer/portfolio-site-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	minTitleLength       = 3
	minDescriptionLength = 10
)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
}

func newProjectHandler(projectRepo *database.ProjectRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
	}
}

// projectRequest is the request body for creating a project. Featured is a
// pointer so that an omitted field defaults to false without being
// indistinguishable from an explicit false.
type projectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	DemoURL     string `json:"demoUrl"`
	RepoURL     string `json:"repoUrl"`
	Category    string `json:"category"`
	Tags        string `json:"tags"`
	Featured    *bool  `json:"featured"`
}

// projectPatch is the request body for updating a project; nil fields are
// left unchanged.
type projectPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	DemoURL     *string `json:"demoUrl"`
	RepoURL     *string `json:"repoUrl"`
	Category    *string `json:"category"`
	Tags        *string `json:"tags"`
	Featured    *bool   `json:"featured"`
}

// wellFormedURL accepts absolute http(s)-style URLs and site-relative paths
func wellFormedURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.IsAbs() || strings.HasPrefix(s, "/")
}

// validateProjectRequest collects every missing or invalid field. The empty
// string on optional URL fields means "not provided" and passes.
func validateProjectRequest(req projectRequest) []string {
	var fields []string

	if len(strings.TrimSpace(req.Title)) < minTitleLength {
		fields = append(fields, "title")
	}
	if len(strings.TrimSpace(req.Description)) < minDescriptionLength {
		fields = append(fields, "description")
	}
	if req.ImageURL == "" || !wellFormedURL(req.ImageURL) {
		fields = append(fields, "imageUrl")
	}
	if req.DemoURL != "" && !wellFormedURL(req.DemoURL) {
		fields = append(fields, "demoUrl")
	}
	if req.RepoURL != "" && !wellFormedURL(req.RepoURL) {
		fields = append(fields, "repoUrl")
	}
	if !models.ValidCategory(req.Category) {
		fields = append(fields, "category")
	}
	if strings.TrimSpace(req.Tags) == "" {
		fields = append(fields, "tags")
	}

	return fields
}

// getAllProjects retrieves all projects, most recently created first
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find projects", "projects", err))
			return
		}

		if projects == nil {
			projects = []*models.Project{}
		}
		h.responder.WriteJSON(w, projects)
	}
}

// getProject retrieves a specific project by ID
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, apiErr := parseProjectID(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// createProject creates a new project. Authentication handled by middleware.
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req projectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("project", err))
			return
		}

		if fields := validateProjectRequest(req); len(fields) > 0 {
			h.responder.WriteError(w, errs.NewValidationError(fields))
			return
		}

		project := models.Project{
			Title:       req.Title,
			Description: req.Description,
			ImageURL:    req.ImageURL,
			DemoURL:     req.DemoURL,
			RepoURL:     req.RepoURL,
			Category:    req.Category,
			Tags:        req.Tags,
		}
		if req.Featured != nil {
			project.Featured = *req.Featured
		}

		if err := h.projectRepo.Add(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create project", "project", err))
			return
		}

		if email, err := ctxGetUserEmail(r.Context()); err == nil {
			h.logger.Info().Str("admin", email).Str("projectID", project.ID.String()).Msg("project created")
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, project)
	}
}

// updateProject applies a partial update to an existing project.
// Authentication handled by middleware.
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, apiErr := parseProjectID(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		var patch projectPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("project", err))
			return
		}

		changes, fields := patchToChanges(patch)
		if len(fields) > 0 {
			h.responder.WriteError(w, errs.NewValidationError(fields))
			return
		}

		project, err := h.projectRepo.Update(projectID, changes)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update project", "project", err))
			return
		}

		if adminID, err := ctxGetUserID(r.Context()); err == nil {
			h.logger.Info().Str("adminID", adminID).Str("projectID", projectID.String()).Msg("project updated")
		}

		h.responder.WriteJSON(w, project)
	}
}

// patchToChanges maps the supplied patch fields onto database columns,
// validating each supplied value. Returns the column changes and the list of
// invalid fields, if any.
func patchToChanges(patch projectPatch) (map[string]any, []string) {
	changes := make(map[string]any)
	var fields []string

	if patch.Title != nil {
		if len(strings.TrimSpace(*patch.Title)) < minTitleLength {
			fields = append(fields, "title")
		}
		changes["title"] = *patch.Title
	}
	if patch.Description != nil {
		if len(strings.TrimSpace(*patch.Description)) < minDescriptionLength {
			fields = append(fields, "description")
		}
		changes["description"] = *patch.Description
	}
	if patch.ImageURL != nil {
		if *patch.ImageURL == "" || !wellFormedURL(*patch.ImageURL) {
			fields = append(fields, "imageUrl")
		}
		changes["image_url"] = *patch.ImageURL
	}
	if patch.DemoURL != nil {
		if *patch.DemoURL != "" && !wellFormedURL(*patch.DemoURL) {
			fields = append(fields, "demoUrl")
		}
		changes["demo_url"] = *patch.DemoURL
	}
	if patch.RepoURL != nil {
		if *patch.RepoURL != "" && !wellFormedURL(*patch.RepoURL) {
			fields = append(fields, "repoUrl")
		}
		changes["repo_url"] = *patch.RepoURL
	}
	if patch.Category != nil {
		if !models.ValidCategory(*patch.Category) {
			fields = append(fields, "category")
		}
		changes["category"] = *patch.Category
	}
	if patch.Tags != nil {
		if strings.TrimSpace(*patch.Tags) == "" {
			fields = append(fields, "tags")
		}
		changes["tags"] = *patch.Tags
	}
	if patch.Featured != nil {
		changes["featured"] = *patch.Featured
	}

	return changes, fields
}

// deleteProject permanently removes a project by ID. Authentication handled
// by middleware.
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, apiErr := parseProjectID(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		if err := h.projectRepo.Delete(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete project", "project", err))
			return
		}

		if email, err := ctxGetUserEmail(r.Context()); err == nil {
			h.logger.Info().Str("admin", email).Str("projectID", projectID.String()).Msg("project deleted")
		}

		h.responder.WriteJSON(w, map[string]any{
			"success": true,
		})
	}
}

func parseProjectID(r *http.Request) (uuid.UUID, *errs.ApiErr) {
	projectIDStr := chi.URLParam(r, "projectID")
	if projectIDStr == "" {
		return uuid.Nil, errs.NewBadRequestError("missing projectID")
	}

	projectID, err := uuid.Parse(projectIDStr)
	if err != nil {
		return uuid.Nil, errs.NewBadRequestError("invalid projectID")
	}
	return projectID, nil
}
