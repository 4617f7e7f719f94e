package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/larekshop/larek-backend/internal/services"
)

type BlogHandler struct {
	blogService services.BlogService
}

func NewBlogHandler(blogService services.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

func (bh *BlogHandler) ListPosts(c *gin.Context) {
	posts, err := bh.blogService.ListPublished(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"posts": posts})
}

func (bh *BlogHandler) GetPost(c *gin.Context) {
	post, err := bh.blogService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"post": post})
}

func (bh *BlogHandler) CreatePost(c *gin.Context) {
	var req services.PostInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	post, err := bh.blogService.CreatePost(c.Request.Context(), req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"post": post})
}

func (bh *BlogHandler) UpdatePost(c *gin.Context) {
	var req services.PostInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	post, err := bh.blogService.UpdatePost(c.Request.Context(), c.Param("slug"), req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"post": post})
}

func (bh *BlogHandler) DeletePost(c *gin.Context) {
	slug := c.Param("slug")
	if err := bh.blogService.DeletePost(c.Request.Context(), slug); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": slug})
}
