package http

import (
	"net/http"

	"github.com/vncsmyrnk/blog/internal/core/ports"
	"github.com/vncsmyrnk/blog/internal/core/services"
	"github.com/vncsmyrnk/blog/internal/logger"
)

type BlogHandler struct {
	service ports.BlogService
	logger  *logger.Logger
}

func NewBlogHandler(service ports.BlogService, logger *logger.Logger) *BlogHandler {
	return &BlogHandler{
		service: service,
		logger:  logger,
	}
}

type createBlogRequest struct {
	Title     string `json:"title"`
	Body      string `json:"body"`
	Published *bool  `json:"published"`
}

// CreateBlog godoc
// @Summary      Creates a blog
// @Description  Published defaults to true. With a bearer token the blog is owned by the caller.
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Success      201
// @Failure      400
// @Router       /blogs [post]
func (h *BlogHandler) CreateBlog(w http.ResponseWriter, r *http.Request) {
	var req createBlogRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDetail(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	input := ports.CreateBlogInput{
		Title:     req.Title,
		Body:      req.Body,
		Published: req.Published,
	}
	if user, ok := UserFromContext(r.Context()); ok {
		owner := user.ID
		input.OwnerID = &owner
	}

	blog, err := h.service.Create(r.Context(), input)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, blog)
}

// ListBlogs godoc
// @Summary      Lists blogs
// @Description  Filters on published and pages with limit (default 10) and a 1-based start (default 1).
// @Tags         blogs
// @Produce      json
// @Success      200
// @Failure      400
// @Router       /blogs [get]
func (h *BlogHandler) ListBlogs(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", services.DefaultLimit)
	if err != nil {
		writeDetail(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}
	start, err := queryInt(r, "start", services.DefaultStart)
	if err != nil {
		writeDetail(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}
	published, err := queryBool(r, "published", true)
	if err != nil {
		writeDetail(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	blogs, err := h.service.List(r.Context(), ports.ListBlogsInput{
		Limit:     limit,
		Start:     start,
		Published: published,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, nonNil(blogs))
}

func (h *BlogHandler) GetBlog(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeDetail(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	blog, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, blog)
}

func (h *BlogHandler) DeleteBlog(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeDetail(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, messageResponse{Message: "Blog deleted successfully"})
}
