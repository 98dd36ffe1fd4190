package ui

import (
	"encoding/json"
	"net/http"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"trekadmin/internal/errors"
	"trekadmin/models"
)

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := s.posts.ListPosts(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	if posts == nil {
		posts = []*models.Post{}
	}
	respondJSON(w, http.StatusOK, posts)
}

func (s *Server) handleGetPost(w http.ResponseWriter, r *http.Request) {
	postID, err := parseIDParam(r)
	if err != nil {
		respondError(w, err)
		return
	}

	post, err := s.posts.GetPostByID(r.Context(), postID)
	if err != nil {
		respondError(w, err)
		return
	}

	if r.URL.Query().Get("render") == "html" {
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"post": post,
			"html": renderMarkdown(post.Body),
		})
		return
	}
	respondJSON(w, http.StatusOK, post)
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	var post models.Post
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		respondError(w, errors.InvalidInput("invalid post payload"))
		return
	}
	if post.Title == "" {
		respondError(w, errors.InvalidInput("post title is required"))
		return
	}

	if err := s.posts.CreatePost(r.Context(), &post); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, &post)
}

func (s *Server) handleUpdatePost(w http.ResponseWriter, r *http.Request) {
	postID, err := parseIDParam(r)
	if err != nil {
		respondError(w, err)
		return
	}

	var post models.Post
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		respondError(w, errors.InvalidInput("invalid post payload"))
		return
	}
	post.ID = postID

	if err := s.posts.UpdatePost(r.Context(), &post); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, &post)
}

func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	postID, err := parseIDParam(r)
	if err != nil {
		respondError(w, err)
		return
	}

	if err := s.posts.DeletePost(r.Context(), postID); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// renderMarkdown converts a post body to HTML for preview
func renderMarkdown(body string) string {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return string(markdown.ToHTML([]byte(body), p, renderer))
}
