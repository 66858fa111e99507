package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	comiccatalog "inkwell/contexts/catalog/comic-catalog-service"
	catalogerrors "inkwell/contexts/catalog/comic-catalog-service/domain/errors"
	cataloghttp "inkwell/contexts/catalog/comic-catalog-service/transport/http"
	chapteraccess "inkwell/contexts/reader-experience/chapter-access-service"
	accesserrors "inkwell/contexts/reader-experience/chapter-access-service/domain/errors"
	accesshttp "inkwell/contexts/reader-experience/chapter-access-service/transport/http"
	progression "inkwell/contexts/reader-experience/progression-service"
	progressionerrors "inkwell/contexts/reader-experience/progression-service/domain/errors"
	progressionhttp "inkwell/contexts/reader-experience/progression-service/transport/http"
	readinglist "inkwell/contexts/reader-experience/reading-list-service"
	listserrors "inkwell/contexts/reader-experience/reading-list-service/domain/errors"
	listshttp "inkwell/contexts/reader-experience/reading-list-service/transport/http"
	viewtracking "inkwell/contexts/reader-experience/view-tracking-service"
	viewerrors "inkwell/contexts/reader-experience/view-tracking-service/domain/errors"
	viewhttp "inkwell/contexts/reader-experience/view-tracking-service/transport/http"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "inkwell/internal/platform/httpserver/docs"
)

type Modules struct {
	Catalog     comiccatalog.Module
	Views       viewtracking.Module
	Progression progression.Module
	Access      chapteraccess.Module
	Lists       readinglist.Module
}

type Options struct {
	Addr           string
	JWTSecret      string
	HistoryCapture bool
	SwaggerUI      bool
}

type Server struct {
	mux            *http.ServeMux
	logger         *slog.Logger
	addr           string
	jwtSecret      []byte
	historyCapture bool

	catalog     comiccatalog.Module
	views       viewtracking.Module
	progression progression.Module
	access      chapteraccess.Module
	lists       readinglist.Module
}

func New(modules Modules, logger *slog.Logger, opts Options) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Addr == "" {
		opts.Addr = ":8080"
	}

	s := &Server{
		mux:            http.NewServeMux(),
		logger:         logger,
		addr:           opts.Addr,
		jwtSecret:      []byte(opts.JWTSecret),
		historyCapture: opts.HistoryCapture,
		catalog:        modules.Catalog,
		views:          modules.Views,
		progression:    modules.Progression,
		access:         modules.Access,
		lists:          modules.Lists,
	}
	s.registerRoutes(opts.SwaggerUI)
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the routed mux, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes(swaggerUI bool) {
	if swaggerUI {
		s.mux.Handle("/swagger/", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	s.mux.HandleFunc("POST /v1/comics", s.handleCreateComic)
	s.mux.HandleFunc("GET /v1/comics/top-viewed", s.handleTopViewed)
	s.mux.HandleFunc("GET /v1/comics/{comic_id}", s.handleGetComic)
	s.mux.HandleFunc("POST /v1/comics/{comic_id}/chapters", s.handleCreateChapter)
	s.mux.HandleFunc("GET /v1/comics/{comic_id}/chapters", s.handleListChapters)
	s.mux.HandleFunc("GET /v1/comics/{comic_id}/views", s.handleGetViews)

	s.mux.HandleFunc("GET /v1/chapters/{chapter_id}", s.handleReadChapter)

	s.mux.HandleFunc("POST /v1/users/{user_id}/points", s.handleAwardPoints)
	s.mux.HandleFunc("GET /v1/users/{user_id}/progress", s.handleGetProgress)
	s.mux.HandleFunc("POST /v1/users/{user_id}/achievements", s.handleAddAchievement)
	s.mux.HandleFunc("DELETE /v1/users/{user_id}/achievements/{achievement_id}", s.handleRemoveAchievement)
	s.mux.HandleFunc("GET /v1/levels/resolve", s.handleResolveLevel)

	s.mux.HandleFunc("GET /v1/users/{user_id}/lists", s.handleGetLists)
	s.mux.HandleFunc("GET /v1/users/{user_id}/history", s.handleGetHistory)
	s.mux.HandleFunc("POST /v1/users/{user_id}/history", s.handleAddHistory)
	s.mux.HandleFunc("DELETE /v1/users/{user_id}/history/{chapter_id}", s.handleRemoveHistory)
	s.mux.HandleFunc("GET /v1/users/{user_id}/saved", s.handleGetSaved)
	s.mux.HandleFunc("POST /v1/users/{user_id}/saved", s.handleAddSaved)
	s.mux.HandleFunc("DELETE /v1/users/{user_id}/saved/{comic_id}", s.handleRemoveSaved)
	s.mux.HandleFunc("GET /v1/users/{user_id}/likes", s.handleGetLikes)
	s.mux.HandleFunc("POST /v1/users/{user_id}/likes", s.handleAddLike)
	s.mux.HandleFunc("DELETE /v1/users/{user_id}/likes/{comic_id}", s.handleRemoveLike)
}

func (s *Server) handleCreateComic(w http.ResponseWriter, r *http.Request) {
	var req cataloghttp.CreateComicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeCatalogError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.catalog.Handler.CreateComicHandler(r.Context(), req)
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleGetComic(w http.ResponseWriter, r *http.Request) {
	resp, err := s.catalog.Handler.GetComicHandler(r.Context(), r.PathValue("comic_id"))
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateChapter(w http.ResponseWriter, r *http.Request) {
	var req cataloghttp.CreateChapterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeCatalogError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.catalog.Handler.CreateChapterHandler(r.Context(), r.PathValue("comic_id"), req)
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListChapters(w http.ResponseWriter, r *http.Request) {
	resp, err := s.catalog.Handler.ListChaptersHandler(r.Context(), r.PathValue("comic_id"))
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetViews(w http.ResponseWriter, r *http.Request) {
	resp, err := s.views.Handler.GetViewsHandler(r.Context(), r.PathValue("comic_id"))
	if err != nil {
		writeViewDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleTopViewed(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if limitRaw := r.URL.Query().Get("limit"); limitRaw != "" {
		value, err := strconv.Atoi(limitRaw)
		if err != nil {
			writeViewError(w, http.StatusBadRequest, "invalid_limit", "limit must be an integer")
			return
		}
		limit = value
	}
	resp, err := s.views.Handler.TopViewedHandler(r.Context(), limit)
	if err != nil {
		writeViewDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleReadChapter is the access gate: identity is optional and decides the
// free/VIP path. A successful authenticated read is also captured into the
// reader's history.
func (s *Server) handleReadChapter(w http.ResponseWriter, r *http.Request) {
	userID := s.resolveUserID(r)
	chapterID := r.PathValue("chapter_id")

	resp, err := s.access.Handler.ReadChapterHandler(r.Context(), userID, chapterID)
	if err != nil {
		writeAccessDomainError(w, err)
		return
	}

	if s.historyCapture && userID != "" {
		if _, err := s.lists.Service.AddToHistory(r.Context(), userID, chapterID); err != nil {
			s.logger.Warn("history capture failed",
				"event", "http_history_capture_failed",
				"module", "internal/platform/httpserver",
				"layer", "platform",
				"user_id", userID,
				"chapter_id", chapterID,
				"error", err.Error(),
			)
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAwardPoints(w http.ResponseWriter, r *http.Request) {
	if s.resolveUserID(r) == "" {
		writeProgressionError(w, http.StatusUnauthorized, "missing_user", "caller identity is required")
		return
	}
	var req progressionhttp.AwardPointsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProgressionError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.progression.Handler.AwardPointsHandler(r.Context(), r.PathValue("user_id"), req)
	if err != nil {
		writeProgressionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetProgress(w http.ResponseWriter, r *http.Request) {
	resp, err := s.progression.Handler.GetProgressHandler(r.Context(), r.PathValue("user_id"))
	if err != nil {
		writeProgressionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAddAchievement(w http.ResponseWriter, r *http.Request) {
	if s.resolveUserID(r) == "" {
		writeProgressionError(w, http.StatusUnauthorized, "missing_user", "caller identity is required")
		return
	}
	var req progressionhttp.AddAchievementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProgressionError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.progression.Handler.AddAchievementHandler(r.Context(), r.PathValue("user_id"), req)
	if err != nil {
		writeProgressionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRemoveAchievement(w http.ResponseWriter, r *http.Request) {
	if s.resolveUserID(r) == "" {
		writeProgressionError(w, http.StatusUnauthorized, "missing_user", "caller identity is required")
		return
	}
	resp, err := s.progression.Handler.RemoveAchievementHandler(
		r.Context(),
		r.PathValue("user_id"),
		r.PathValue("achievement_id"),
	)
	if err != nil {
		writeProgressionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleResolveLevel(w http.ResponseWriter, r *http.Request) {
	points, err := strconv.Atoi(r.URL.Query().Get("points"))
	if err != nil {
		writeProgressionError(w, http.StatusBadRequest, "invalid_points", "points must be an integer")
		return
	}
	writeJSON(w, http.StatusOK, s.progression.Handler.ResolveLevelHandler(r.Context(), points))
}

func (s *Server) handleGetLists(w http.ResponseWriter, r *http.Request) {
	resp, err := s.lists.Handler.GetListsHandler(r.Context(), r.PathValue("user_id"))
	if err != nil {
		writeListsDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetHistory(w http.ResponseWriter, r *http.Request) {
	resp, err := s.lists.Handler.GetHistoryHandler(r.Context(), r.PathValue("user_id"))
	if err != nil {
		writeListsDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAddHistory(w http.ResponseWriter, r *http.Request) {
	if s.resolveUserID(r) == "" {
		writeListsError(w, http.StatusUnauthorized, "missing_user", "caller identity is required")
		return
	}
	var req listshttp.AddHistoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeListsError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.lists.Handler.AddHistoryHandler(r.Context(), r.PathValue("user_id"), req)
	if err != nil {
		writeListsDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRemoveHistory(w http.ResponseWriter, r *http.Request) {
	if s.resolveUserID(r) == "" {
		writeListsError(w, http.StatusUnauthorized, "missing_user", "caller identity is required")
		return
	}
	resp, err := s.lists.Handler.RemoveHistoryHandler(r.Context(), r.PathValue("user_id"), r.PathValue("chapter_id"))
	if err != nil {
		writeListsDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetSaved(w http.ResponseWriter, r *http.Request) {
	resp, err := s.lists.Handler.GetSavedHandler(r.Context(), r.PathValue("user_id"))
	if err != nil {
		writeListsDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAddSaved(w http.ResponseWriter, r *http.Request) {
	if s.resolveUserID(r) == "" {
		writeListsError(w, http.StatusUnauthorized, "missing_user", "caller identity is required")
		return
	}
	var req listshttp.AddComicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeListsError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.lists.Handler.AddSavedHandler(r.Context(), r.PathValue("user_id"), req)
	if err != nil {
		writeListsDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRemoveSaved(w http.ResponseWriter, r *http.Request) {
	if s.resolveUserID(r) == "" {
		writeListsError(w, http.StatusUnauthorized, "missing_user", "caller identity is required")
		return
	}
	resp, err := s.lists.Handler.RemoveSavedHandler(r.Context(), r.PathValue("user_id"), r.PathValue("comic_id"))
	if err != nil {
		writeListsDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetLikes(w http.ResponseWriter, r *http.Request) {
	resp, err := s.lists.Handler.GetLikesHandler(r.Context(), r.PathValue("user_id"))
	if err != nil {
		writeListsDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAddLike(w http.ResponseWriter, r *http.Request) {
	if s.resolveUserID(r) == "" {
		writeListsError(w, http.StatusUnauthorized, "missing_user", "caller identity is required")
		return
	}
	var req listshttp.AddComicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeListsError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.lists.Handler.AddLikeHandler(r.Context(), r.PathValue("user_id"), req)
	if err != nil {
		writeListsDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRemoveLike(w http.ResponseWriter, r *http.Request) {
	if s.resolveUserID(r) == "" {
		writeListsError(w, http.StatusUnauthorized, "missing_user", "caller identity is required")
		return
	}
	resp, err := s.lists.Handler.RemoveLikeHandler(r.Context(), r.PathValue("user_id"), r.PathValue("comic_id"))
	if err != nil {
		writeListsDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeCatalogDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalogerrors.ErrComicNotFound):
		writeCatalogError(w, http.StatusNotFound, "comic_not_found", err.Error())
	case errors.Is(err, catalogerrors.ErrChapterNotFound):
		writeCatalogError(w, http.StatusNotFound, "chapter_not_found", err.Error())
	case errors.Is(err, catalogerrors.ErrSlugTaken):
		writeCatalogError(w, http.StatusConflict, "slug_taken", err.Error())
	case errors.Is(err, catalogerrors.ErrInvalidInput):
		writeCatalogError(w, http.StatusBadRequest, "invalid_input", err.Error())
	default:
		writeCatalogError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeViewDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, viewerrors.ErrViewRecordNotFound):
		writeViewError(w, http.StatusNotFound, "view_record_not_found", err.Error())
	case errors.Is(err, viewerrors.ErrViewRecordExists):
		writeViewError(w, http.StatusConflict, "view_record_exists", err.Error())
	case errors.Is(err, viewerrors.ErrInvalidInput):
		writeViewError(w, http.StatusBadRequest, "invalid_input", err.Error())
	default:
		writeViewError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeProgressionDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, progressionerrors.ErrReaderNotFound):
		writeProgressionError(w, http.StatusNotFound, "reader_not_found", err.Error())
	case errors.Is(err, progressionerrors.ErrAchievementNotFound):
		writeProgressionError(w, http.StatusNotFound, "achievement_not_found", err.Error())
	case errors.Is(err, progressionerrors.ErrAchievementAlreadyOwned):
		writeProgressionError(w, http.StatusBadRequest, "achievement_already_owned", err.Error())
	case errors.Is(err, progressionerrors.ErrAchievementNotOwned):
		writeProgressionError(w, http.StatusBadRequest, "achievement_not_owned", err.Error())
	case errors.Is(err, progressionerrors.ErrNotEnoughRuby):
		writeProgressionError(w, http.StatusForbidden, "not_enough_ruby", err.Error())
	case errors.Is(err, progressionerrors.ErrInvalidInput):
		writeProgressionError(w, http.StatusBadRequest, "invalid_input", err.Error())
	default:
		writeProgressionError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeAccessDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, accesserrors.ErrAuthenticationRequired):
		writeAccessError(w, http.StatusUnauthorized, "authentication_required", err.Error())
	case errors.Is(err, accesserrors.ErrNotEnoughRuby):
		writeAccessError(w, http.StatusForbidden, "not_enough_ruby", err.Error())
	case errors.Is(err, accesserrors.ErrChapterNotFound):
		writeAccessError(w, http.StatusNotFound, "chapter_not_found", err.Error())
	case errors.Is(err, accesserrors.ErrReaderNotFound):
		writeAccessError(w, http.StatusNotFound, "reader_not_found", err.Error())
	case errors.Is(err, accesserrors.ErrInvalidInput):
		writeAccessError(w, http.StatusBadRequest, "invalid_input", err.Error())
	default:
		writeAccessError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeListsDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, listserrors.ErrReaderNotFound):
		writeListsError(w, http.StatusNotFound, "reader_not_found", err.Error())
	case errors.Is(err, listserrors.ErrChapterNotFound):
		writeListsError(w, http.StatusNotFound, "chapter_not_found", err.Error())
	case errors.Is(err, listserrors.ErrComicNotFound):
		writeListsError(w, http.StatusNotFound, "comic_not_found", err.Error())
	case errors.Is(err, listserrors.ErrInvalidInput):
		writeListsError(w, http.StatusBadRequest, "invalid_input", err.Error())
	default:
		writeListsError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeCatalogError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, cataloghttp.ErrorResponse{Code: code, Message: message})
}

func writeViewError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, viewhttp.ErrorResponse{Code: code, Message: message})
}

func writeProgressionError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, progressionhttp.ErrorResponse{Code: code, Message: message})
}

func writeAccessError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, accesshttp.ErrorResponse{Code: code, Message: message})
}

func writeListsError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, listshttp.ErrorResponse{Code: code, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
