package controllers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"quill/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postCommentForm(r http.Handler, postID uint, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/posts/%d/comment/", postID), strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCommentCreate(t *testing.T) {
	r, db := setupTestApp(t)
	user, _ := createUserWithToken(t, db)

	t.Run("visitor comment redirects to detail and starts unapproved", func(t *testing.T) {
		post := createPublishedPost(t, db, user.ID, "title", "text")

		form := url.Values{}
		form.Set("author", "visitor")
		form.Set("text", "nice post")
		w := postCommentForm(r, post.ID, form)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, fmt.Sprintf("/posts/%d/", post.ID), w.Header().Get("Location"))

		var stored models.Comment
		require.NoError(t, db.Where("post_id = ?", post.ID).First(&stored).Error)
		assert.Equal(t, "visitor", stored.Author)
		assert.Equal(t, "nice post", stored.Text)
		assert.False(t, stored.Approved)
	})

	t.Run("unknown post is a 404 and writes nothing", func(t *testing.T) {
		var before int64
		require.NoError(t, db.Model(&models.Comment{}).Count(&before).Error)

		form := url.Values{}
		form.Set("author", "visitor")
		form.Set("text", "hello")
		req := httptest.NewRequest(http.MethodPost, "/posts/1234/comment/", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var after int64
		require.NoError(t, db.Model(&models.Comment{}).Count(&after).Error)
		assert.Equal(t, before, after)
	})

	t.Run("missing text is a 400", func(t *testing.T) {
		post := createPublishedPost(t, db, user.ID, "title", "text")

		form := url.Values{}
		form.Set("author", "visitor")
		w := postCommentForm(r, post.ID, form)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid Data")
	})
}

func TestCommentApprove(t *testing.T) {
	r, db := setupTestApp(t)
	user, token := createUserWithToken(t, db)
	post := createPublishedPost(t, db, user.ID, "title", "text")

	comment := &models.Comment{PostID: post.ID, Author: "visitor", Text: "hello"}
	require.NoError(t, db.Create(comment).Error)

	t.Run("approve redirects to the post and is idempotent", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/comments/%d/approve/", comment.ID), nil)
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusFound, w.Code)
			assert.Equal(t, fmt.Sprintf("/posts/%d/", post.ID), w.Header().Get("Location"))
		}

		var stored models.Comment
		require.NoError(t, db.First(&stored, comment.ID).Error)
		assert.True(t, stored.Approved)
	})

	t.Run("unknown comment is a 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/comments/1234/approve/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("anonymous approval redirects to login", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/comments/%d/approve/", comment.ID), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/auth/login/", w.Header().Get("Location"))
	})
}

func TestCommentRemove(t *testing.T) {
	r, db := setupTestApp(t)
	user, token := createUserWithToken(t, db)
	post := createPublishedPost(t, db, user.ID, "title", "text")

	t.Run("remove redirects to the post and deletes the row", func(t *testing.T) {
		comment := &models.Comment{PostID: post.ID, Author: "visitor", Text: "spam"}
		require.NoError(t, db.Create(comment).Error)

		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/comments/%d/remove/", comment.ID), nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, fmt.Sprintf("/posts/%d/", post.ID), w.Header().Get("Location"))

		var count int64
		require.NoError(t, db.Model(&models.Comment{}).Where("id = ?", comment.ID).Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("unknown comment is a 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/comments/1234/remove/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
