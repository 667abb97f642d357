package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"blogapi/internal/middleware"
	"blogapi/internal/models"
	"blogapi/internal/monitoring"
	"blogapi/internal/repositories"
)

// BlogHandler serves the blog CRUD routes. All of them sit behind the auth
// middleware.
type BlogHandler struct {
	Blogs repositories.BlogRepository
	Users repositories.UserRepository
}

func NewBlogHandler(blogs repositories.BlogRepository, users repositories.UserRepository) *BlogHandler {
	return &BlogHandler{Blogs: blogs, Users: users}
}

type blogRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// resolveCaller maps the session's username to its user row, fresh on every
// call. A token whose subject no longer exists yields a server error; the
// response is already written when ok is false.
func (h *BlogHandler) resolveCaller(c *gin.Context) (*models.User, bool) {
	username, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Missing or invalid session token"})
		return nil, false
	}

	user, err := h.Users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logrus.WithField("username", username).Warn("Session subject no longer resolves to a user")
		} else {
			logrus.WithError(err).Error("Error resolving current user")
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error resolving current user"})
		return nil, false
	}
	return user, true
}

// List returns title and content for every blog, in storage order.
func (h *BlogHandler) List(c *gin.Context) {
	blogs, err := h.Blogs.List()
	if err != nil {
		logrus.WithError(err).Error("Error listing blogs")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching blogs"})
		return
	}

	res := make([]gin.H, 0, len(blogs))
	for _, blog := range blogs {
		res = append(res, gin.H{"title": blog.Title, "content": blog.Content})
	}
	c.JSON(http.StatusOK, gin.H{"data": res})
}

// Get returns a single blog by id.
func (h *BlogHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Blog not found"})
		return
	}

	blog, err := h.Blogs.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Blog not found"})
			return
		}
		logrus.WithError(err).Error("Error fetching blog")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching blog"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":      blog.ID,
		"title":   blog.Title,
		"content": blog.Content,
	})
}

// Create inserts a new blog owned by the caller. The author column captures
// the caller's username at creation time and is never updated afterwards.
func (h *BlogHandler) Create(c *gin.Context) {
	var req blogRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Title == "" || req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title and content are required"})
		return
	}

	user, ok := h.resolveCaller(c)
	if !ok {
		return
	}

	blog := &models.Blog{
		Title:   req.Title,
		Content: req.Content,
		Author:  user.Username,
		UserID:  user.ID,
	}
	if err := h.Blogs.Create(blog); err != nil {
		logrus.WithError(err).Error("Error inserting blog")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating blog"})
		return
	}

	monitoring.BlogsCreated.Inc()
	c.JSON(http.StatusCreated, gin.H{
		"message": "Blog created successfully",
		"id":      blog.ID,
	})
}

// Update overwrites title and content of a blog the caller owns.
func (h *BlogHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Blog not found"})
		return
	}

	user, ok := h.resolveCaller(c)
	if !ok {
		return
	}

	blog, err := h.Blogs.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Blog not found"})
			return
		}
		logrus.WithError(err).Error("Error fetching blog")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating blog"})
		return
	}

	if blog.UserID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{
			"message": "User " + user.Username + " unauthorized to update this blog",
		})
		return
	}

	var req blogRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Title == "" || req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title and content are required"})
		return
	}

	if err := h.Blogs.Update(id, req.Title, req.Content); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Blog not found"})
			return
		}
		logrus.WithError(err).Error("Error updating blog")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating blog"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Blog updated successfully"})
}

// Delete removes a blog the caller owns.
func (h *BlogHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Blog not found"})
		return
	}

	user, ok := h.resolveCaller(c)
	if !ok {
		return
	}

	blog, err := h.Blogs.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Blog not found"})
			return
		}
		logrus.WithError(err).Error("Error fetching blog")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting blog"})
		return
	}

	if blog.UserID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{
			"message": "User " + user.Username + " unauthorized to delete this blog",
		})
		return
	}

	if err := h.Blogs.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Blog not found"})
			return
		}
		logrus.WithError(err).Error("Error deleting blog")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting blog"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Blog deleted successfully"})
}
